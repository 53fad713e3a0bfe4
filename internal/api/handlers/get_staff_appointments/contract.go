package get_staff_appointments

import (
	"context"

	"github.com/m04kA/SMC-ServicePortal/internal/service/appointments/models"
)

type AppointmentService interface {
	GetStaffAppointments(ctx context.Context, staffID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
