package get_available_slots

import "errors"

var (
	// ErrOutletNotFound возвращается, когда сервисный центр не найден
	ErrOutletNotFound = errors.New("outlet not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
