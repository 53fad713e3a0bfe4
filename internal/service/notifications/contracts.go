package notifications

import (
	"context"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id int64) (*domain.Notification, error)
	FindByUser(ctx context.Context, userID int64, userType string, onlyUnread bool) ([]*domain.Notification, error)
	MarkAsRead(ctx context.Context, id int64) error
}

// NotificationCache интерфейс кэша уведомлений
type NotificationCache interface {
	Store(ctx context.Context, n *domain.Notification) error
	GetUserNotifications(ctx context.Context, userID int64, userType string) ([]*domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID, userID int64, userType string) error
}

// Mailer интерфейс почтового клиента
type Mailer interface {
	Send(to, subject, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
