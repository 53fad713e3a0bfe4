package get_notifications

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServicePortal/internal/api/handlers"
	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

const (
	msgInvalidUserID   = "некорректный идентификатор пользователя"
	msgInvalidUserType = "некорректный тип пользователя"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/notifications?type=customer&unread=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/notifications - Invalid user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	userType := r.URL.Query().Get("type")
	if userType == "" {
		userType = domain.UserTypeCustomer
	}
	if userType != domain.UserTypeCustomer && userType != domain.UserTypeStaff {
		h.logger.Warn("GET /users/%d/notifications - Invalid user type: %s", userID, userType)
		handlers.RespondBadRequest(w, msgInvalidUserType)
		return
	}

	onlyUnread := r.URL.Query().Get("unread") == "true"

	result, err := h.service.GetUserNotifications(r.Context(), userID, userType, onlyUnread)
	if err != nil {
		h.logger.Error("GET /users/%d/notifications - Failed: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
