package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServicePortal/internal/api/handlers"
	"github.com/m04kA/SMC-ServicePortal/internal/api/middleware"
	"github.com/m04kA/SMC-ServicePortal/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный идентификатор уведомления"
	msgNotificationNotFound  = "уведомление не найдено"
	msgAccessDenied          = "нет доступа к этому уведомлению"
	msgUnauthorized          = "пользователь не аутентифицирован"
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

// Handle PUT /api/v1/notifications/{id}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	notificationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /notifications/{id}/read - Invalid notification id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	userType := middleware.UserTypeFromContext(r.Context())

	if err := h.service.MarkAsRead(r.Context(), notificationID, userID, userType); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("PUT /notifications/%d/read - Not found", notificationID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		case errors.Is(err, notifications.ErrAccessDenied):
			h.logger.Warn("PUT /notifications/%d/read - Access denied for user=%d", notificationID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("PUT /notifications/%d/read - Failed: %v", notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /notifications/%d/read - Marked as read by user=%d", notificationID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
