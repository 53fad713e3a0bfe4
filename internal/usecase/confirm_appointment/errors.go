package confirm_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrStaffWrongOutlet возвращается, когда сотрудник работает в другом центре
	ErrStaffWrongOutlet = errors.New("staff member belongs to another outlet")

	// ErrInvalidState возвращается, когда запись нельзя подтвердить из текущего статуса
	ErrInvalidState = errors.New("appointment cannot be confirmed in its current status")

	// ErrInvalidFinishTime возвращается при некорректном времени завершения
	ErrInvalidFinishTime = errors.New("invalid estimated finish time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
