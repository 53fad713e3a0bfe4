package reference

import "errors"

var (
	// ErrCustomerNotFound клиент не найден
	ErrCustomerNotFound = errors.New("reference.repository: customer not found")
	// ErrVehicleNotFound автомобиль не найден
	ErrVehicleNotFound = errors.New("reference.repository: vehicle not found")
	// ErrServiceTypeNotFound тип услуги не найден
	ErrServiceTypeNotFound = errors.New("reference.repository: service type not found")
	// ErrOutletNotFound сервисный центр не найден
	ErrOutletNotFound = errors.New("reference.repository: outlet not found")
	// ErrBuildQuery ошибка сборки SQL запроса
	ErrBuildQuery = errors.New("reference.repository: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("reference.repository: failed to execute query")
	// ErrScanRow ошибка чтения строки результата
	ErrScanRow = errors.New("reference.repository: failed to scan row")
)
