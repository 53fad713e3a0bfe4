package notificationcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

// notificationTTL время жизни уведомлений в кэше
const notificationTTL = 30 * 24 * time.Hour

// Cache хранит копии уведомлений в Redis для быстрой выдачи.
// Запись лучшая попытка: при недоступности Redis источником
// остается база данных.
type Cache struct {
	client *redis.Client
}

// New создает новый кэш уведомлений
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Store сохраняет уведомление и добавляет его ID в список пользователя
func (c *Cache) Store(ctx context.Context, n *domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	key := notificationKey(n.UserType, n.UserID, n.ID)
	listKey := notificationListKey(n.UserType, n.UserID)

	if err := c.client.Set(ctx, key, payload, notificationTTL).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisSet, err)
	}
	if err := c.client.LPush(ctx, listKey, strconv.FormatInt(n.ID, 10)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisSet, err)
	}
	if err := c.client.Expire(ctx, listKey, notificationTTL).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisSet, err)
	}

	return nil
}

// GetUserNotifications возвращает уведомления пользователя из кэша.
// Записи, истекшие по TTL, пропускаются.
func (c *Cache) GetUserNotifications(ctx context.Context, userID int64, userType string) ([]*domain.Notification, error) {
	listKey := notificationListKey(userType, userID)

	ids, err := c.client.LRange(ctx, listKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRedisGet, err)
	}

	notifications := make([]*domain.Notification, 0, len(ids))
	for _, rawID := range ids {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}

		payload, err := c.client.Get(ctx, notificationKey(userType, userID, id)).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRedisGet, err)
		}

		var n domain.Notification
		if err := json.Unmarshal([]byte(payload), &n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnmarshal, err)
		}
		notifications = append(notifications, &n)
	}

	return notifications, nil
}

// MarkAsRead помечает уведомление прочитанным в кэше.
// Отсутствующая запись не считается ошибкой.
func (c *Cache) MarkAsRead(ctx context.Context, notificationID, userID int64, userType string) error {
	key := notificationKey(userType, userID, notificationID)

	payload, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisGet, err)
	}

	var n domain.Notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return fmt.Errorf("%w: %v", ErrUnmarshal, err)
	}

	n.Read = true
	updated, err := json.Marshal(&n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if err := c.client.Set(ctx, key, updated, notificationTTL).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisSet, err)
	}

	return nil
}

func notificationKey(userType string, userID, notificationID int64) string {
	return fmt.Sprintf("notification:%s:%d:%d", userType, userID, notificationID)
}

func notificationListKey(userType string, userID int64) string {
	return fmt.Sprintf("notifications:%s:%d", userType, userID)
}
