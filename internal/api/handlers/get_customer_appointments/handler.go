package get_customer_appointments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServicePortal/internal/api/handlers"
)

const msgInvalidCustomerID = "некорректный идентификатор клиента"

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

// Handle GET /api/v1/customers/{custId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(mux.Vars(r)["custId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{custId}/appointments - Invalid customer id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), customerID)
	if err != nil {
		h.logger.Error("GET /customers/%d/appointments - Failed: %v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
