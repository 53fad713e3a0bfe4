package timeslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	"github.com/m04kA/SMC-ServicePortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServicePortal/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var slotColumns = []string{
	"id",
	"time_year",
	"time_quarter",
	"time_month",
	"time_day",
	"time_clocktime",
}

// Repository репозиторий временных слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByExactDateTime получает слот по точному сочетанию даты и времени
func (r *Repository) FindByExactDateTime(ctx context.Context, year, month, day int16, clocktime types.ClockTime) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("timeslots").
		Where(squirrel.Eq{
			"time_year":      year,
			"time_month":     month,
			"time_day":       day,
			"time_clocktime": clocktime,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByExactDateTime - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...))
}

// FindByDate получает все сохранённые слоты на дату, по возрастанию времени
func (r *Repository) FindByDate(ctx context.Context, year, month, day int16) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("timeslots").
		Where(squirrel.Eq{
			"time_year":  year,
			"time_month": month,
			"time_day":   day,
		}).
		OrderBy("time_clocktime ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.Year, &slot.Quarter, &slot.Month, &slot.Day, &slot.Clocktime); err != nil {
			return nil, fmt.Errorf("%w: FindByDate - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindByDate - iterate rows: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Insert сохраняет новый слот. Нарушение уникального индекса
// (time_year, time_month, time_day, time_clocktime) транслируется в
// ErrDuplicateSlot, и вызывающая сторона перечитывает победителя гонки.
func (r *Repository) Insert(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("timeslots").
		Columns("time_year", "time_quarter", "time_month", "time_day", "time_clocktime").
		Values(slot.Year, slot.Quarter, slot.Month, slot.Day, slot.Clocktime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

func (r *Repository) scanOne(row *sql.Row) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	err := row.Scan(&slot.ID, &slot.Year, &slot.Quarter, &slot.Month, &slot.Day, &slot.Clocktime)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan time slot: %v", ErrScanRow, err)
	}
	return &slot, nil
}
