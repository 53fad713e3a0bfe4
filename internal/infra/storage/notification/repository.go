package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	"github.com/m04kA/SMC-ServicePortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServicePortal/pkg/psqlbuilder"
)

var notificationColumns = []string{
	"id",
	"user_id",
	"user_type",
	"title",
	"message",
	"type",
	"read",
	"link",
	"created_at",
}

// Repository репозиторий уведомлений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет уведомление, заполняя ID и время создания
func (r *Repository) Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_id", "user_type", "title", "message", "type", "read", "link").
		Values(n.UserID, n.UserType, n.Title, n.Message, n.Type, n.Read, n.Link).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}
	n.CreatedAt = createdAt.Time

	return n, nil
}

// FindByID получает уведомление по ID
func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	var n domain.Notification
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&n.ID, &n.UserID, &n.UserType, &n.Title, &n.Message, &n.Type, &n.Read, &n.Link, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - scan notification: %v", ErrScanRow, err)
	}
	n.CreatedAt = createdAt.Time

	return &n, nil
}

// FindByUser получает уведомления пользователя (сначала новые).
// При onlyUnread возвращает только непрочитанные.
func (r *Repository) FindByUser(ctx context.Context, userID int64, userType string, onlyUnread bool) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID, "user_type": userType}).
		OrderBy("created_at DESC")

	if onlyUnread {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"read": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var createdAt sql.NullTime
		err := rows.Scan(&n.ID, &n.UserID, &n.UserType, &n.Title, &n.Message, &n.Type, &n.Read, &n.Link, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: FindByUser - scan notification: %v", ErrScanRow, err)
		}
		n.CreatedAt = createdAt.Time
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindByUser - iterate rows: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkAsRead помечает уведомление прочитанным
func (r *Repository) MarkAsRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkAsRead - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkAsRead - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkAsRead - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
