package appointments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/appointment"
	staffRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/staff"
	"github.com/m04kA/SMC-ServicePortal/internal/service/appointments/models"
)

// Service сервис для чтения записей и управления их статусами.
// Создание и подтверждение записей вынесены в отдельные usecase.
type Service struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	referenceRepo   ReferenceRepository
	notifier        Notifier
	logger          Logger
	notifyWG        sync.WaitGroup
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	referenceRepo ReferenceRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		referenceRepo:   referenceRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetCustomerAppointments получает историю записей клиента
func (s *Service) GetCustomerAppointments(ctx context.Context, customerID int64) (*models.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointments(appointments), nil
}

// GetOutletAppointments получает записи сервисного центра
func (s *Service) GetOutletAppointments(ctx context.Context, outletID int64) (*models.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.FindByOutlet(ctx, outletID)
	if err != nil {
		s.logger.Error("GetOutletAppointments: repository error for outlet=%d: %v", outletID, err)
		return nil, fmt.Errorf("%w: GetOutletAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointments(appointments), nil
}

// GetStaffAppointments получает записи сервисного центра, в котором
// работает сотрудник
func (s *Service) GetStaffAppointments(ctx context.Context, staffID int64) (*models.AppointmentListResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetStaffAppointments: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaffAppointments: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffAppointments - repository error: %v", ErrInternal, err)
	}

	return s.GetOutletAppointments(ctx, member.OutletID)
}

// GetStaffSchedule получает рабочее расписание сотрудника на день.
// В расписание попадают только записи в статусах SCHEDULED и IN_PROGRESS:
// завершенная работа в план дня не входит.
func (s *Service) GetStaffSchedule(ctx context.Context, staffID int64, date string) (*models.StaffScheduleResponse, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		s.logger.Warn("GetStaffSchedule: invalid date=%s for staff=%d", date, staffID)
		return nil, fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
	}

	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetStaffSchedule: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaffSchedule: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffSchedule - repository error: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.FindByStaffAndDate(ctx, staffID, int16(day.Year()), int16(day.Month()), int16(day.Day()))
	if err != nil {
		s.logger.Error("GetStaffSchedule: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffSchedule - repository error: %v", ErrInternal, err)
	}

	items := make([]models.AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		if appt.Status != domain.StatusScheduled && appt.Status != domain.StatusInProgress {
			continue
		}
		items = append(items, *models.FromDomainAppointment(appt))
	}

	return &models.StaffScheduleResponse{
		StaffID:      member.ID,
		StaffName:    member.Name,
		Date:         date,
		Appointments: items,
	}, nil
}

// UpdateStatus переводит запись в новый статус с проверкой допустимости
// перехода и уведомляет клиента об изменении
func (s *Service) UpdateStatus(ctx context.Context, id int64, rawStatus string) (*models.AppointmentResponse, error) {
	next, ok := domain.ParseAppointmentStatus(rawStatus)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", rawStatus, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, rawStatus)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !appt.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for appointment id=%d", appt.Status, next, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, next)
	}

	appt.Status = next
	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		s.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved to %s", id, next)
	s.notifyStatusChange(appt)

	return models.FromDomainAppointment(appt), nil
}

// notifyStatusChange отправляет уведомление в фоне, не задерживая ответ
func (s *Service) notifyStatusChange(appt *domain.Appointment) {
	s.notifyWG.Add(1)
	go func() {
		defer s.notifyWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		customer, err := s.referenceRepo.FindCustomerByID(ctx, appt.CustomerID)
		if err != nil {
			s.logger.Warn("notifyStatusChange: failed to load customer=%d: %v", appt.CustomerID, err)
			return
		}

		serviceName := "service"
		if serviceType, err := s.referenceRepo.FindServiceTypeByID(ctx, appt.ServiceID); err == nil {
			serviceName = serviceType.Name
		}

		s.notifier.NotifyAppointmentStatusChanged(ctx, appt, customer, serviceName)
	}()
}

// Wait дожидается завершения фоновых уведомлений. Вызывается при
// остановке сервера, чтобы не терять уже принятые уведомления.
func (s *Service) Wait() {
	s.notifyWG.Wait()
}
