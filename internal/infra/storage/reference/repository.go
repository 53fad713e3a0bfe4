package reference

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	"github.com/m04kA/SMC-ServicePortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServicePortal/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных: клиенты, автомобили,
// типы услуг и сервисные центры
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочных данных
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindCustomerByID получает клиента по ID
func (r *Repository) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone", "email", "address").
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindCustomerByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindCustomerByID - scan customer: %v", ErrScanRow, err)
	}

	return &c, nil
}

// FindVehicleByID получает автомобиль по ID
func (r *Repository) FindVehicleByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "plate_no", "model", "brand", "type", "year", "customer_id").
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindVehicleByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Vehicle
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.PlateNo, &v.Model, &v.Brand, &v.Type, &v.Year, &v.CustomerID)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindVehicleByID - scan vehicle: %v", ErrScanRow, err)
	}

	return &v, nil
}

// FindServiceTypeByID получает тип услуги по ID
func (r *Repository) FindServiceTypeByID(ctx context.Context, id int64) (*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "category", "price", "duration_minutes").
		From("service_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindServiceTypeByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ServiceType
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.Price, &s.DurationMinutes)
	if err == sql.ErrNoRows {
		return nil, ErrServiceTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindServiceTypeByID - scan service type: %v", ErrScanRow, err)
	}

	return &s, nil
}

// FindOutletByID получает сервисный центр по ID
func (r *Repository) FindOutletByID(ctx context.Context, id int64) (*domain.Outlet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "address", "city", "state", "postal_code").
		From("outlets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOutletByID - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Outlet
	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.Name, &o.Address, &o.City, &o.State, &o.PostalCode)
	if err == sql.ErrNoRows {
		return nil, ErrOutletNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOutletByID - scan outlet: %v", ErrScanRow, err)
	}

	return &o, nil
}
