package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	"github.com/m04kA/SMC-ServicePortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServicePortal/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// Колонки appointments с алиасом a, плюс joined слот с алиасом t
var appointmentColumns = []string{
	"a.id",
	"a.cust_id",
	"a.service_id",
	"a.outlet_id",
	"a.veh_id",
	"a.time_id",
	"a.staff_id",
	"a.duration_minutes",
	"a.estimated_finish_time",
	"a.status",
	"a.created_at",
	"a.updated_at",
	"t.id",
	"t.time_year",
	"t.time_quarter",
	"t.time_month",
	"t.time_day",
	"t.time_clocktime",
}

// Repository репозиторий для работы с записями на обслуживание
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на обслуживание.
// Если в контексте есть активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"cust_id",
			"service_id",
			"outlet_id",
			"veh_id",
			"time_id",
			"staff_id",
			"duration_minutes",
			"estimated_finish_time",
			"status",
		).
		Values(
			appt.CustomerID,
			appt.ServiceID,
			appt.OutletID,
			appt.VehicleID,
			appt.TimeSlotID,
			appt.StaffID,
			appt.DurationMinutes,
			appt.EstimatedFinishTime,
			appt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID вместе с её временным слотом
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает запись по ID с блокировкой строки (FOR UPDATE).
// Используется при подтверждении записи внутри транзакции, чтобы два
// параллельных подтверждения не прочитали статус PENDING одновременно.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("timeslots t ON t.id = a.time_id").
		Where(squirrel.Eq{"a.id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appts, err := r.scanAppointments(rows)
	if err != nil {
		return nil, err
	}
	if len(appts) == 0 {
		return nil, ErrAppointmentNotFound
	}
	return appts[0], nil
}

// Update обновляет статус, назначенного сотрудника и расчетное время
// завершения. Возвращает ErrAppointmentNotFound, если строка не затронута.
func (r *Repository) Update(ctx context.Context, appt *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("staff_id", appt.StaffID).
		Set("estimated_finish_time", appt.EstimatedFinishTime).
		Set("status", appt.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appt.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// FindByOutletAndDate получает все записи точки обслуживания на конкретную
// дату (любые статусы), отсортированные по времени слота
func (r *Repository) FindByOutletAndDate(ctx context.Context, outletID int64, year, month, day int16) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("timeslots t ON t.id = a.time_id").
		Where(squirrel.Eq{
			"a.outlet_id":  outletID,
			"t.time_year":  year,
			"t.time_month": month,
			"t.time_day":   day,
		}).
		OrderBy("t.time_clocktime ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByOutletAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByOutletAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// FindByCustomer получает историю записей клиента (сначала новые)
func (r *Repository) FindByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("timeslots t ON t.id = a.time_id").
		Where(squirrel.Eq{"a.cust_id": customerID}).
		OrderBy("t.time_year DESC, t.time_month DESC, t.time_day DESC, t.time_clocktime DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// FindByOutlet получает все записи точки обслуживания (сначала новые)
func (r *Repository) FindByOutlet(ctx context.Context, outletID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("timeslots t ON t.id = a.time_id").
		Where(squirrel.Eq{"a.outlet_id": outletID}).
		OrderBy("t.time_year DESC, t.time_month DESC, t.time_day DESC, t.time_clocktime DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByOutlet - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByOutlet - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// FindByStaffAndDate получает записи сотрудника на конкретную дату
func (r *Repository) FindByStaffAndDate(ctx context.Context, staffID int64, year, month, day int16) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("timeslots t ON t.id = a.time_id").
		Where(squirrel.Eq{
			"a.staff_id":   staffID,
			"t.time_year":  year,
			"t.time_month": month,
			"t.time_day":   day,
		}).
		OrderBy("t.time_clocktime ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByStaffAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByStaffAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует строки результата в доменные модели
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appts := make([]*domain.Appointment, 0)

	for rows.Next() {
		var (
			appt       domain.Appointment
			slot       domain.TimeSlot
			staffID    sql.NullInt64
			finishTime sql.NullTime
			createdAt  sql.NullTime
			updatedAt  sql.NullTime
		)

		err := rows.Scan(
			&appt.ID,
			&appt.CustomerID,
			&appt.ServiceID,
			&appt.OutletID,
			&appt.VehicleID,
			&appt.TimeSlotID,
			&staffID,
			&appt.DurationMinutes,
			&finishTime,
			&appt.Status,
			&createdAt,
			&updatedAt,
			&slot.ID,
			&slot.Year,
			&slot.Quarter,
			&slot.Month,
			&slot.Day,
			&slot.Clocktime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment: %v", ErrScanRow, err)
		}

		if staffID.Valid {
			appt.StaffID = &staffID.Int64
		}
		if finishTime.Valid {
			ft := types.NewClockTime(finishTime.Time)
			appt.EstimatedFinishTime = &ft
		}
		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time
		appt.Slot = &slot

		appts = append(appts, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrScanRow, err)
	}

	return appts, nil
}
