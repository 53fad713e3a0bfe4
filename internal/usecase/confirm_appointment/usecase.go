package confirm_appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/appointment"
	staffRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/staff"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// UseCase use case подтверждения записи: сотрудник центра закрепляется за
// записью, фиксируется расчетное время завершения и запись переходит в
// SCHEDULED. С этого момента она занимает время сотрудника.
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	referenceRepo   ReferenceRepository
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
	notifyWG        sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	referenceRepo ReferenceRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		referenceRepo:   referenceRepo,
		notifier:        notifier,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case подтверждения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmAppointment: appointment=%d", req.AppointmentID)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.StaffID != nil && *req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	// Время завершения, если передано, принимается строго в формате HH:MM:SS
	var finishTime *types.ClockTime
	if req.EstimatedFinishTime != nil {
		parsed, err := types.NewClockTimeFromString(*req.EstimatedFinishTime)
		if err != nil {
			uc.logger.Warn("ConfirmAppointment: bad finish time %q: %v", *req.EstimatedFinishTime, err)
			return nil, fmt.Errorf("%w: expected HH:MM:SS", ErrInvalidFinishTime)
		}
		finishTime = &parsed
	}

	var result *domain.Appointment

	// 2. Подтверждаем в сериализуемой транзакции с блокировкой строки,
	// чтобы параллельные подтверждения не назначили запись дважды
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := uc.appointmentRepo.GetByIDForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("ConfirmAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("ConfirmAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !appt.CanBeConfirmed() {
			uc.logger.Warn("ConfirmAppointment: appointment id=%d is %s, not PENDING", appt.ID, appt.Status)
			return fmt.Errorf("%w: status is %s", ErrInvalidState, appt.Status)
		}

		if finishTime != nil && appt.Slot != nil && !finishTime.IsAfter(appt.Slot.Clocktime) {
			uc.logger.Warn("ConfirmAppointment: finish %s not after start %s for appointment id=%d",
				*finishTime, appt.Slot.Clocktime, appt.ID)
			return fmt.Errorf("%w: finish time must be after slot start", ErrInvalidFinishTime)
		}

		if req.StaffID != nil {
			member, err := uc.staffRepo.GetByID(txCtx, *req.StaffID)
			if err != nil {
				if errors.Is(err, staffRepo.ErrStaffNotFound) {
					uc.logger.Warn("ConfirmAppointment: staff id=%d not found", *req.StaffID)
					return ErrStaffNotFound
				}
				uc.logger.Error("ConfirmAppointment: failed to get staff id=%d: %v", *req.StaffID, err)
				return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
			}

			if member.OutletID != appt.OutletID {
				uc.logger.Warn("ConfirmAppointment: staff id=%d works at outlet=%d, appointment is at outlet=%d",
					member.ID, member.OutletID, appt.OutletID)
				return ErrStaffWrongOutlet
			}

			appt.StaffID = &member.ID
		}
		if finishTime != nil {
			appt.EstimatedFinishTime = finishTime
		}
		appt.Status = domain.StatusScheduled

		if err := uc.appointmentRepo.Update(txCtx, appt); err != nil {
			uc.logger.Error("ConfirmAppointment: failed to update appointment id=%d: %v", appt.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmAppointment: appointment id=%d confirmed", result.ID)

	// 3. Уведомляем клиента, не задерживая ответ
	uc.notifyConfirmed(result)

	resp := &Response{
		ID:                  result.ID,
		CustomerID:          result.CustomerID,
		OutletID:            result.OutletID,
		StaffID:             result.StaffID,
		TimeSlotID:          result.TimeSlotID,
		EstimatedFinishTime: result.EstimatedFinishTime,
		Status:              string(result.Status),
		UpdatedAt:           result.UpdatedAt,
	}
	if result.Slot != nil {
		resp.StartTime = result.Slot.Clocktime
	}
	return resp, nil
}

// notifyConfirmed отправляет уведомление в фоне
func (uc *UseCase) notifyConfirmed(appt *domain.Appointment) {
	uc.notifyWG.Add(1)
	go func() {
		defer uc.notifyWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		customer, err := uc.referenceRepo.FindCustomerByID(ctx, appt.CustomerID)
		if err != nil {
			uc.logger.Warn("ConfirmAppointment: failed to load customer=%d for notification: %v", appt.CustomerID, err)
			return
		}

		serviceName := "service"
		if serviceType, err := uc.referenceRepo.FindServiceTypeByID(ctx, appt.ServiceID); err == nil {
			serviceName = serviceType.Name
		}

		uc.notifier.NotifyAppointmentStatusChanged(ctx, appt, customer, serviceName)
	}()
}

// Wait дожидается завершения фоновых уведомлений. Вызывается при
// остановке сервера, чтобы не терять уже принятые уведомления.
func (uc *UseCase) Wait() {
	uc.notifyWG.Wait()
}
