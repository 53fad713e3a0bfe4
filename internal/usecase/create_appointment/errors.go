package create_appointment

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleNotOwned возвращается, когда автомобиль принадлежит другому клиенту
	ErrVehicleNotOwned = errors.New("vehicle does not belong to customer")

	// ErrServiceNotFound возвращается, когда тип услуги не найден
	ErrServiceNotFound = errors.New("service type not found")

	// ErrOutletNotFound возвращается, когда сервисный центр не найден
	ErrOutletNotFound = errors.New("outlet not found")

	// ErrInvalidTime возвращается, когда время вне рабочих часов
	ErrInvalidTime = errors.New("time is outside business hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
