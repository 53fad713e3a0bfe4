package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ServicePortal/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-ServicePortal/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM:SS"
	msgCustomerNotFound   = "клиент не найден"
	msgVehicleNotFound    = "автомобиль не найден"
	msgVehicleNotOwned    = "автомобиль принадлежит другому клиенту"
	msgServiceNotFound    = "тип услуги не найден"
	msgOutletNotFound     = "сервисный центр не найден"
	msgInvalidTime        = "время вне рабочих часов сервисного центра"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrVehicleNotFound):
			h.logger.Warn("POST /appointments - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createAppointment.ErrVehicleNotOwned):
			h.logger.Warn("POST /appointments - Vehicle not owned: customer_id=%d, vehicle_id=%d",
				req.CustomerID, req.VehicleID)
			handlers.RespondError(w, http.StatusForbidden, msgVehicleNotOwned)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrOutletNotFound):
			h.logger.Warn("POST /appointments - Outlet not found: outlet_id=%d", req.OutletID)
			handlers.RespondNotFound(w, msgOutletNotFound)

		case errors.Is(err, createAppointment.ErrInvalidTime):
			h.logger.Warn("POST /appointments - Time outside business hours: customer_id=%d, time=%s",
				req.CustomerID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%d",
		result.ID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
