package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	FindByExactDateTime(ctx context.Context, year, month, day int16, clocktime types.ClockTime) (*domain.TimeSlot, error)
	Insert(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
}

// ReferenceRepository интерфейс репозитория справочных данных
type ReferenceRepository interface {
	FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindVehicleByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	FindServiceTypeByID(ctx context.Context, id int64) (*domain.ServiceType, error)
	FindOutletByID(ctx context.Context, id int64) (*domain.Outlet, error)
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	NotifyAppointmentBooked(ctx context.Context, appt *domain.Appointment, customer *domain.Customer, serviceName string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
