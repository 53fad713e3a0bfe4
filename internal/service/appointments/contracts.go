package appointments

import (
	"context"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) error
	FindByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error)
	FindByOutlet(ctx context.Context, outletID int64) ([]*domain.Appointment, error)
	FindByStaffAndDate(ctx context.Context, staffID int64, year, month, day int16) ([]*domain.Appointment, error)
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
