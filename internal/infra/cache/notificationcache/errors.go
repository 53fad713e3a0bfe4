package notificationcache

import "errors"

var (
	// ErrMarshal ошибка сериализации уведомления
	ErrMarshal = errors.New("notification.cache: failed to marshal notification")
	// ErrUnmarshal ошибка десериализации уведомления
	ErrUnmarshal = errors.New("notification.cache: failed to unmarshal notification")
	// ErrRedisSet ошибка записи в Redis
	ErrRedisSet = errors.New("notification.cache: failed to set value")
	// ErrRedisGet ошибка чтения из Redis
	ErrRedisGet = errors.New("notification.cache: failed to get value")
)
