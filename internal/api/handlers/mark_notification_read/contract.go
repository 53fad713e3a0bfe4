package mark_notification_read

import "context"

type NotificationService interface {
	MarkAsRead(ctx context.Context, notificationID, userID int64, userType string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
