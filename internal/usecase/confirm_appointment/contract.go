package confirm_appointment

import (
	"context"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	// GetByIDForUpdate читает запись с блокировкой строки внутри транзакции
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) error
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// ReferenceRepository интерфейс репозитория справочных данных
type ReferenceRepository interface {
	FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindServiceTypeByID(ctx context.Context, id int64) (*domain.ServiceType, error)
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	NotifyAppointmentStatusChanged(ctx context.Context, appt *domain.Appointment, customer *domain.Customer, serviceName string)
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
