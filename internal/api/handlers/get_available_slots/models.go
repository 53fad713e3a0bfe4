package get_available_slots

import (
	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ServicePortal/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель доступного слота
type SlotResponse struct {
	TimeSlotID      int64  `json:"timeSlotId"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	AvailableStaff  int    `json:"availableStaff"`
}

// AvailableSlotsResponse HTTP модель ответа
type AvailableSlotsResponse struct {
	Date     string         `json:"date"`
	OutletID int64          `json:"outletId"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			TimeSlotID:      slot.TimeSlotID,
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			AvailableStaff:  slot.AvailableStaff,
		})
	}
	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		OutletID: resp.OutletID,
		Slots:    slots,
	}
}
