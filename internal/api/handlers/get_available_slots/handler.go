package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServicePortal/internal/api/handlers"
	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ServicePortal/internal/usecase/get_available_slots"
)

const (
	msgInvalidOutletID = "некорректный идентификатор сервисного центра"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgOutletNotFound  = "сервисный центр не найден"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/outlets/{outletId}/available-timeslots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	outletID, err := strconv.ParseInt(mux.Vars(r)["outletId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /outlets/{outletId}/available-timeslots - Invalid outlet id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOutletID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /outlets/%d/available-timeslots - Invalid date: %v", outletID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		OutletID: outletID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrOutletNotFound):
			h.logger.Warn("GET /outlets/%d/available-timeslots - Outlet not found", outletID)
			handlers.RespondNotFound(w, msgOutletNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput), errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /outlets/%d/available-timeslots - Invalid input: %v", outletID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /outlets/%d/available-timeslots - Failed: %v", outletID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
