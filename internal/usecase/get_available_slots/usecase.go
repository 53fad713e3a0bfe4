package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	referenceRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/reference"
)

// UseCase use case для получения доступных слотов сервисного центра
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	timeSlotRepo    TimeSlotRepository
	referenceRepo   ReferenceRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	timeSlotRepo TimeSlotRepository,
	referenceRepo ReferenceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		timeSlotRepo:    timeSlotRepo,
		referenceRepo:   referenceRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: outlet=%d, date=%s",
		req.OutletID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование сервисного центра
	if _, err := uc.referenceRepo.FindOutletByID(ctx, req.OutletID); err != nil {
		if errors.Is(err, referenceRepo.ErrOutletNotFound) {
			uc.logger.Warn("GetAvailableSlots: outlet id=%d not found", req.OutletID)
			return nil, ErrOutletNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get outlet id=%d: %v", req.OutletID, err)
		return nil, fmt.Errorf("%w: failed to get outlet: %v", ErrInternal, err)
	}

	year := int16(req.Date.Year())
	month := int16(req.Date.Month())
	day := int16(req.Date.Day())

	// 3. Получаем сотрудников центра
	staff, err := uc.staffRepo.ListByOutlet(ctx, req.OutletID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list staff for outlet=%d: %v", req.OutletID, err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	// Без сотрудников свободных слотов нет
	if len(staff) == 0 {
		uc.logger.Info("GetAvailableSlots: outlet=%d has no staff", req.OutletID)
		return &Response{Date: req.Date, OutletID: req.OutletID, Slots: []Slot{}}, nil
	}

	// 4. Получаем записи на эту дату
	appointments, err := uc.appointmentRepo.FindByOutletAndDate(ctx, req.OutletID, year, month, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for outlet=%d: %v", req.OutletID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Вычисляем свободные интервалы каждого сотрудника
	freeRanges := buildStaffFreeRanges(staff, appointments)

	// 6. Генерируем часовые слоты рабочего дня
	starts, err := generateHourlySlotStarts()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slot starts: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 7. Подтягиваем сохраненные слоты, чтобы переиспользовать их ID
	persisted, err := uc.timeSlotRepo.FindByDate(ctx, year, month, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get persisted slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get persisted slots: %v", ErrInternal, err)
	}

	// 8. Собираем доступные слоты
	slots, err := calculateAvailableSlots(starts, freeRanges, persisted)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to calculate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for outlet=%d, date=%s",
		len(slots), req.OutletID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		OutletID: req.OutletID,
		Slots:    slots,
	}, nil
}
