package get_timeslots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ServicePortal/internal/api/handlers"
	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

// TimeSlotResponse HTTP модель сохраненного слота
type TimeSlotResponse struct {
	ID      int64  `json:"id"`
	Year    int16  `json:"year"`
	Quarter int16  `json:"quarter"`
	Month   int16  `json:"month"`
	Day     int16  `json:"day"`
	Time    string `json:"time"`
}

// TimeSlotListResponse HTTP модель списка слотов
type TimeSlotListResponse struct {
	Date      string             `json:"date"`
	TimeSlots []TimeSlotResponse `json:"timeSlots"`
}

type Handler struct {
	slots  TimeSlotProvider
	logger Logger
}

func NewHandler(slots TimeSlotProvider, logger Logger) *Handler {
	return &Handler{
		slots:  slots,
		logger: logger,
	}
}

// Handle GET /api/v1/timeslots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /timeslots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.slots.FindByDate(r.Context(), int16(date.Year()), int16(date.Month()), int16(date.Day()))
	if err != nil {
		h.logger.Error("GET /timeslots - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]TimeSlotResponse, 0, len(slots))
	for _, slot := range slots {
		items = append(items, TimeSlotResponse{
			ID:      slot.ID,
			Year:    slot.Year,
			Quarter: slot.Quarter,
			Month:   slot.Month,
			Day:     slot.Day,
			Time:    slot.Clocktime.String(),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, TimeSlotListResponse{
		Date:      date.Format(domain.DateFormat),
		TimeSlots: items,
	})
}
