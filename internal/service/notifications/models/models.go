package models

import (
	"time"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

// NotificationResponse уведомление в ответе API
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse список уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

// FromDomainNotification конвертирует domain модель в response
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		Link:      n.Link,
		CreatedAt: n.CreatedAt,
	}
}

// FromDomainNotifications конвертирует список domain моделей в response
func FromDomainNotifications(notifications []*domain.Notification) *NotificationListResponse {
	items := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, *FromDomainNotification(n))
	}
	return &NotificationListResponse{
		Notifications: items,
		Total:         len(items),
	}
}
