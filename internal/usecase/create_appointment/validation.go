package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.OutletID <= 0 {
		return fmt.Errorf("%w: outletID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime must be HH:MM:SS", ErrInvalidInput)
	}

	return validateBusinessHours(req.StartTime)
}

// validateBusinessHours проверяет, что часовой слот целиком лежит в рабочем дне
func validateBusinessHours(start types.ClockTime) error {
	if start.IsBefore(domain.BusinessHoursStart) {
		return ErrInvalidTime
	}

	end, err := start.AddMinutes(domain.SlotDurationMinutes)
	if err != nil {
		return ErrInvalidTime
	}
	if end.IsAfter(domain.BusinessHoursEnd) {
		return ErrInvalidTime
	}

	return nil
}
