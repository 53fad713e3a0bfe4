package confirm_appointment

import (
	"time"

	confirmAppointment "github.com/m04kA/SMC-ServicePortal/internal/usecase/confirm_appointment"
)

// ConfirmAppointmentRequest HTTP request model. Оба поля опциональны.
type ConfirmAppointmentRequest struct {
	StaffID             *int64  `json:"staffId,omitempty"`
	EstimatedFinishTime *string `json:"estimatedFinishTime,omitempty"` // "11:30:00"
}

// ConfirmedAppointmentResponse HTTP response model
type ConfirmedAppointmentResponse struct {
	ID                  int64  `json:"id"`
	CustomerID          int64  `json:"customerId"`
	OutletID            int64  `json:"outletId"`
	StaffID             *int64 `json:"staffId,omitempty"`
	TimeSlotID          int64  `json:"timeSlotId"`
	StartTime           string `json:"startTime"`
	EstimatedFinishTime string `json:"estimatedFinishTime,omitempty"`
	Status              string `json:"status"`
	UpdatedAt           string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmAppointment.Response) *ConfirmedAppointmentResponse {
	out := &ConfirmedAppointmentResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		OutletID:   resp.OutletID,
		StaffID:    resp.StaffID,
		TimeSlotID: resp.TimeSlotID,
		StartTime:  resp.StartTime.String(),
		Status:     resp.Status,
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.EstimatedFinishTime != nil {
		out.EstimatedFinishTime = resp.EstimatedFinishTime.String()
	}
	return out
}
