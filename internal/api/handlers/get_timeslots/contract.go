package get_timeslots

import (
	"context"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

type TimeSlotProvider interface {
	FindByDate(ctx context.Context, year, month, day int16) ([]*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
