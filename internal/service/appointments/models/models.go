package models

import (
	"time"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

// TimeSlotResponse временной слот в ответе API
type TimeSlotResponse struct {
	ID      int64  `json:"id"`
	Year    int16  `json:"year"`
	Quarter int16  `json:"quarter"`
	Month   int16  `json:"month"`
	Day     int16  `json:"day"`
	Time    string `json:"time"`
}

// AppointmentResponse запись на обслуживание в ответе API
type AppointmentResponse struct {
	ID                  int64             `json:"id"`
	CustomerID          int64             `json:"customerId"`
	ServiceID           int64             `json:"serviceId"`
	OutletID            int64             `json:"outletId"`
	VehicleID           int64             `json:"vehicleId"`
	StaffID             *int64            `json:"staffId,omitempty"`
	TimeSlot            *TimeSlotResponse `json:"timeSlot,omitempty"`
	DurationMinutes     int               `json:"durationMinutes"`
	EstimatedFinishTime *string           `json:"estimatedFinishTime,omitempty"`
	Status              string            `json:"status"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// StaffScheduleResponse расписание сотрудника на день
type StaffScheduleResponse struct {
	StaffID      int64                 `json:"staffId"`
	StaffName    string                `json:"staffName"`
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainTimeSlot конвертирует domain слот в response
func FromDomainTimeSlot(slot *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:      slot.ID,
		Year:    slot.Year,
		Quarter: slot.Quarter,
		Month:   slot.Month,
		Day:     slot.Day,
		Time:    slot.Clocktime.String(),
	}
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              appt.ID,
		CustomerID:      appt.CustomerID,
		ServiceID:       appt.ServiceID,
		OutletID:        appt.OutletID,
		VehicleID:       appt.VehicleID,
		StaffID:         appt.StaffID,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
	if appt.Slot != nil {
		resp.TimeSlot = FromDomainTimeSlot(appt.Slot)
	}
	if appt.EstimatedFinishTime != nil && !appt.EstimatedFinishTime.IsZero() {
		finish := appt.EstimatedFinishTime.String()
		resp.EstimatedFinishTime = &finish
	}
	return resp
}

// FromDomainAppointments конвертирует список domain моделей в response
func FromDomainAppointments(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		items = append(items, *FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}
}
