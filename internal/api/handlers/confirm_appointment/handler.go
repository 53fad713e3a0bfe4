package confirm_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServicePortal/internal/api/handlers"
	confirmAppointment "github.com/m04kA/SMC-ServicePortal/internal/usecase/confirm_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgAppointmentNotFound  = "запись не найдена"
	msgStaffNotFound        = "сотрудник не найден"
	msgStaffWrongOutlet     = "сотрудник работает в другом сервисном центре"
	msgInvalidState         = "запись нельзя подтвердить из текущего статуса"
	msgInvalidFinishTime    = "некорректное время завершения, ожидается HH:MM:SS"
	msgInvalidInput         = "некорректные параметры запроса"
)

type Handler struct {
	useCase ConfirmAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{id}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/confirm - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req ConfirmAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/%d/confirm - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmAppointment.Request{
		AppointmentID:       appointmentID,
		StaffID:             req.StaffID,
		EstimatedFinishTime: req.EstimatedFinishTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/%d/confirm - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, confirmAppointment.ErrStaffNotFound):
			h.logger.Warn("PUT /appointments/%d/confirm - Staff not found", appointmentID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, confirmAppointment.ErrStaffWrongOutlet):
			h.logger.Warn("PUT /appointments/%d/confirm - Staff from another outlet", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgStaffWrongOutlet)

		case errors.Is(err, confirmAppointment.ErrInvalidState):
			h.logger.Warn("PUT /appointments/%d/confirm - Invalid state: %v", appointmentID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, confirmAppointment.ErrInvalidFinishTime):
			h.logger.Warn("PUT /appointments/%d/confirm - Invalid finish time: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidFinishTime)

		case errors.Is(err, confirmAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/%d/confirm - Invalid input: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /appointments/%d/confirm - Failed: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/%d/confirm - Confirmed", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
