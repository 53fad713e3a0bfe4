package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	// FindByOutletAndDate получает все записи сервисного центра на конкретную дату
	FindByOutletAndDate(ctx context.Context, outletID int64, year, month, day int16) ([]*domain.Appointment, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	ListByOutlet(ctx context.Context, outletID int64) ([]*domain.Staff, error)
}

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	// FindByDate получает сохраненные слоты на конкретную дату
	FindByDate(ctx context.Context, year, month, day int16) ([]*domain.TimeSlot, error)
}

// ReferenceRepository интерфейс репозитория справочных данных
type ReferenceRepository interface {
	FindOutletByID(ctx context.Context, id int64) (*domain.Outlet, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
