package get_staff_schedule

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
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/staff/{staffId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{staffId}/schedule - Invalid staff id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.GetStaffSchedule(r.Context(), staffID, r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrStaffNotFound):
			h.logger.Warn("GET /staff/%d/schedule - Staff not found", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, appointments.ErrInvalidDate):
			h.logger.Warn("GET /staff/%d/schedule - Invalid date: %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /staff/%d/schedule - Failed: %v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
