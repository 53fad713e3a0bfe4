package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	createAppointment "github.com/m04kA/SMC-ServicePortal/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerID int64  `json:"customerId"`
	ServiceID  int64  `json:"serviceId"`
	OutletID   int64  `json:"outletId"`
	VehicleID  int64  `json:"vehicleId"`
	Date       string `json:"date"`      // "2026-09-01"
	StartTime  string `json:"startTime"` // "10:00:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	ServiceID       int64   `json:"serviceId"`
	OutletID        int64   `json:"outletId"`
	VehicleID       int64   `json:"vehicleId"`
	TimeSlotID      int64   `json:"timeSlotId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewClockTimeFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID: r.CustomerID,
		ServiceID:  r.ServiceID,
		OutletID:   r.OutletID,
		VehicleID:  r.VehicleID,
		Date:       date,
		StartTime:  startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		ServiceID:       resp.ServiceID,
		OutletID:        resp.OutletID,
		VehicleID:       resp.VehicleID,
		TimeSlotID:      resp.TimeSlotID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
