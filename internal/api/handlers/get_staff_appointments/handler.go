package get_staff_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServicePortal/internal/api/handlers"
	"github.com/m04kA/SMC-ServicePortal/internal/service/appointments"
)

const (
	msgInvalidStaffID = "некорректный идентификатор сотрудника"
	msgStaffNotFound  = "сотрудник не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{staffId}/appointments - Invalid staff id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.GetStaffAppointments(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrStaffNotFound):
			h.logger.Warn("GET /staff/%d/appointments - Staff not found", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /staff/%d/appointments - Failed: %v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
