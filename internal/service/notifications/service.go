package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	notificationRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/notification"
	"github.com/m04kA/SMC-ServicePortal/internal/service/notifications/models"
)

// Service сервис уведомлений. Строка в базе данных является источником
// истины; запись в Redis и отправка письма выполняются по принципу
// лучшей попытки, их ошибки логируются и не прерывают основной сценарий.
type Service struct {
	repo   NotificationRepository
	cache  NotificationCache
	mailer Mailer
	logger Logger
}

// NewService создает новый экземпляр сервиса уведомлений.
// cache и mailer могут быть nil, если соответствующая интеграция отключена.
func NewService(repo NotificationRepository, cache NotificationCache, mailer Mailer, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		mailer: mailer,
		logger: logger,
	}
}

// NotifyAppointmentBooked уведомляет клиента о созданной записи
func (s *Service) NotifyAppointmentBooked(ctx context.Context, appt *domain.Appointment, customer *domain.Customer, serviceName string) {
	date := ""
	if appt.Slot != nil {
		date = fmt.Sprintf("%04d-%02d-%02d %s", appt.Slot.Year, appt.Slot.Month, appt.Slot.Day, appt.Slot.Clocktime)
	}

	s.notify(ctx, &domain.Notification{
		UserID:   customer.ID,
		UserType: domain.UserTypeCustomer,
		Title:    "New Appointment Booked",
		Message:  fmt.Sprintf("Your appointment for %s on %s has been booked successfully.", serviceName, date),
		Type:     domain.NotificationTypeAppointment,
		Link:     fmt.Sprintf("/appointments/%d", appt.ID),
	}, customer.Email)
}

// NotifyAppointmentStatusChanged уведомляет клиента о смене статуса записи
func (s *Service) NotifyAppointmentStatusChanged(ctx context.Context, appt *domain.Appointment, customer *domain.Customer, serviceName string) {
	var title, message string
	switch appt.Status {
	case domain.StatusScheduled:
		title = "Appointment Confirmed"
		message = fmt.Sprintf("Your appointment for %s has been confirmed.", serviceName)
	case domain.StatusInProgress:
		title = "Service Started"
		message = fmt.Sprintf("Your %s service has started.", serviceName)
	case domain.StatusCompleted:
		title = "Service Completed"
		message = fmt.Sprintf("Your %s service has been completed. Your vehicle is ready for pickup.", serviceName)
	case domain.StatusCancelled:
		title = "Appointment Cancelled"
		message = fmt.Sprintf("Your appointment for %s has been cancelled.", serviceName)
	default:
		title = "Appointment Update"
		message = fmt.Sprintf("Your appointment for %s has been updated to %s.", serviceName, appt.Status)
	}

	s.notify(ctx, &domain.Notification{
		UserID:   customer.ID,
		UserType: domain.UserTypeCustomer,
		Title:    title,
		Message:  message,
		Type:     domain.NotificationTypeAppointment,
		Link:     fmt.Sprintf("/appointments/%d", appt.ID),
	}, customer.Email)
}

// notify сохраняет уведомление и рассылает его по доступным каналам
func (s *Service) notify(ctx context.Context, n *domain.Notification, email string) {
	saved, err := s.repo.Insert(ctx, n)
	if err != nil {
		s.logger.Error("notify: failed to persist notification for user=%d: %v", n.UserID, err)
		return
	}

	if s.cache != nil {
		if err := s.cache.Store(ctx, saved); err != nil {
			s.logger.Warn("notify: failed to cache notification id=%d: %v", saved.ID, err)
		}
	}

	if s.mailer != nil && email != "" {
		if err := s.mailer.Send(email, saved.Title, saved.Message); err != nil {
			s.logger.Warn("notify: failed to send email for notification id=%d: %v", saved.ID, err)
		}
	}

	s.logger.Info("notify: created notification id=%d for user=%d (%s)", saved.ID, saved.UserID, saved.UserType)
}

// GetUserNotifications возвращает уведомления пользователя.
// Сначала пробует кэш, при промахе или ошибке читает из базы.
func (s *Service) GetUserNotifications(ctx context.Context, userID int64, userType string, onlyUnread bool) (*models.NotificationListResponse, error) {
	if s.cache != nil && !onlyUnread {
		cached, err := s.cache.GetUserNotifications(ctx, userID, userType)
		if err != nil {
			s.logger.Warn("GetUserNotifications: cache error for user=%d: %v", userID, err)
		} else if len(cached) > 0 {
			return models.FromDomainNotifications(cached), nil
		}
	}

	stored, err := s.repo.FindByUser(ctx, userID, userType, onlyUnread)
	if err != nil {
		s.logger.Error("GetUserNotifications: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserNotifications - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotifications(stored), nil
}

// MarkAsRead помечает уведомление прочитанным.
// Пользователь может читать только свои уведомления.
func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64, userType string) error {
	n, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkAsRead: repository error for notification id=%d: %v", notificationID, err)
		return fmt.Errorf("%w: MarkAsRead - repository error: %v", ErrInternal, err)
	}

	if n.UserID != userID || n.UserType != userType {
		s.logger.Warn("MarkAsRead: access denied for user=%d to notification id=%d", userID, notificationID)
		return ErrAccessDenied
	}

	if err := s.repo.MarkAsRead(ctx, notificationID); err != nil {
		s.logger.Error("MarkAsRead: failed to update notification id=%d: %v", notificationID, err)
		return fmt.Errorf("%w: MarkAsRead - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.MarkAsRead(ctx, notificationID, userID, userType); err != nil {
			s.logger.Warn("MarkAsRead: failed to update cache for notification id=%d: %v", notificationID, err)
		}
	}

	return nil
}
