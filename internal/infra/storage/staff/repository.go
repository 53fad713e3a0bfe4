package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	"github.com/m04kA/SMC-ServicePortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServicePortal/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"staff_name",
	"staff_role",
	"staff_phone",
	"outlet_id",
}

// Repository репозиторий сотрудников
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.Name, &s.Role, &s.Phone, &s.OutletID,
	)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListByOutlet получает активный состав точки обслуживания.
// Неназначенные записи моделируются NULL-ссылкой на сотрудника,
// поэтому никакого sentinel-ряда в таблице нет и фильтровать нечего.
func (r *Repository) ListByOutlet(ctx context.Context, outletID int64) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"outlet_id": outletID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOutlet - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOutlet - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roster := make([]*domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Phone, &s.OutletID); err != nil {
			return nil, fmt.Errorf("%w: ListByOutlet - scan staff: %v", ErrScanRow, err)
		}
		roster = append(roster, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOutlet - iterate rows: %v", ErrScanRow, err)
	}

	return roster, nil
}
