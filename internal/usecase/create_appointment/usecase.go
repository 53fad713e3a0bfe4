package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	referenceRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/reference"
	timeslotRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/timeslot"
)

// UseCase use case для создания записи на обслуживание.
// Новая запись всегда создается в статусе PENDING без назначенного
// сотрудника: она не занимает ничье время, пока персонал центра не
// подтвердит ее.
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeSlotRepo    TimeSlotRepository
	referenceRepo   ReferenceRepository
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
	notifyWG        sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	timeSlotRepo TimeSlotRepository,
	referenceRepo ReferenceRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeSlotRepo:    timeSlotRepo,
		referenceRepo:   referenceRepo,
		notifier:        notifier,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, service=%d, outlet=%d, vehicle=%d, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.OutletID, req.VehicleID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем справочные данные
	customer, err := uc.referenceRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, referenceRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	vehicle, err := uc.referenceRepo.FindVehicleByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, referenceRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateAppointment: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	if vehicle.CustomerID != req.CustomerID {
		uc.logger.Warn("CreateAppointment: vehicle id=%d belongs to customer=%d, not %d",
			req.VehicleID, vehicle.CustomerID, req.CustomerID)
		return nil, ErrVehicleNotOwned
	}

	serviceType, err := uc.referenceRepo.FindServiceTypeByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, referenceRepo.ErrServiceTypeNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if _, err := uc.referenceRepo.FindOutletByID(ctx, req.OutletID); err != nil {
		if errors.Is(err, referenceRepo.ErrOutletNotFound) {
			uc.logger.Warn("CreateAppointment: outlet id=%d not found", req.OutletID)
			return nil, ErrOutletNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get outlet id=%d: %v", req.OutletID, err)
		return nil, fmt.Errorf("%w: failed to get outlet: %v", ErrInternal, err)
	}

	duration := serviceType.DurationMinutes
	if duration <= 0 {
		duration = domain.SlotDurationMinutes
	}

	// 3. Разрешаем слот до транзакции: конфликт уникального индекса
	// откатывает транзакцию Postgres целиком, и перечитать победивший
	// слот изнутри нее уже нельзя
	slot, err := uc.getOrCreateTimeSlot(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Создаем запись в сериализуемой транзакции
	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt := &domain.Appointment{
			CustomerID:      req.CustomerID,
			ServiceID:       req.ServiceID,
			OutletID:        req.OutletID,
			VehicleID:       req.VehicleID,
			TimeSlotID:      slot.ID,
			StaffID:         nil,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		created.Slot = slot
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for customer=%d", result.ID, req.CustomerID)

	// 5. Уведомляем клиента, не задерживая ответ
	uc.notifyBooked(result, customer, serviceType.Name)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		ServiceID:       result.ServiceID,
		OutletID:        result.OutletID,
		VehicleID:       result.VehicleID,
		TimeSlotID:      result.TimeSlotID,
		Date:            req.Date,
		StartTime:       result.Slot.Clocktime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     serviceType.Name,
		ServicePrice:    serviceType.Price,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// getOrCreateTimeSlot находит сохраненный слот на дату и время либо
// создает новый. Гонку параллельных вставок разрешает уникальный индекс:
// при конфликте слот перечитывается. Выполняется на пуле соединений, вне
// транзакции: после ошибки 23505 Postgres отклоняет любые запросы в той
// же транзакции, а сериализуемый снимок не увидит чужую вставку.
func (uc *UseCase) getOrCreateTimeSlot(ctx context.Context, req *Request) (*domain.TimeSlot, error) {
	year := int16(req.Date.Year())
	month := int16(req.Date.Month())
	day := int16(req.Date.Day())

	slot, err := uc.timeSlotRepo.FindByExactDateTime(ctx, year, month, day, req.StartTime)
	if err == nil {
		return slot, nil
	}
	if !errors.Is(err, timeslotRepo.ErrSlotNotFound) {
		uc.logger.Error("CreateAppointment: failed to find time slot: %v", err)
		return nil, fmt.Errorf("%w: failed to find time slot: %v", ErrInternal, err)
	}

	candidate := domain.NewTimeSlot(year, month, day, req.StartTime)
	created, err := uc.timeSlotRepo.Insert(ctx, &candidate)
	if err == nil {
		uc.logger.Info("CreateAppointment: created time slot id=%d for %04d-%02d-%02d %s",
			created.ID, year, month, day, req.StartTime)
		return created, nil
	}
	if !errors.Is(err, timeslotRepo.ErrDuplicateSlot) {
		uc.logger.Error("CreateAppointment: failed to insert time slot: %v", err)
		return nil, fmt.Errorf("%w: failed to insert time slot: %v", ErrInternal, err)
	}

	// Слот успел создать кто-то другой
	slot, err = uc.timeSlotRepo.FindByExactDateTime(ctx, year, month, day, req.StartTime)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to re-read time slot after conflict: %v", err)
		return nil, fmt.Errorf("%w: failed to re-read time slot: %v", ErrInternal, err)
	}
	return slot, nil
}

// notifyBooked отправляет уведомление в фоне
func (uc *UseCase) notifyBooked(appt *domain.Appointment, customer *domain.Customer, serviceName string) {
	uc.notifyWG.Add(1)
	go func() {
		defer uc.notifyWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		uc.notifier.NotifyAppointmentBooked(ctx, appt, customer, serviceName)
	}()
}

// Wait дожидается завершения фоновых уведомлений. Вызывается при
// остановке сервера, чтобы не терять уже принятые уведомления.
func (uc *UseCase) Wait() {
	uc.notifyWG.Wait()
}
