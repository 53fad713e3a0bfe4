package get_staff_schedule

import (
	"context"

	"github.com/m04kA/SMC-ServicePortal/internal/service/appointments/models"
)

type AppointmentService interface {
	GetStaffSchedule(ctx context.Context, staffID int64, date string) (*models.StaffScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
