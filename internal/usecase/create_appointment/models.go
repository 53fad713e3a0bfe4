package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64           // ID клиента
	ServiceID  int64           // ID типа услуги
	OutletID   int64           // ID сервисного центра
	VehicleID  int64           // ID автомобиля
	Date       time.Time       // Дата записи (без времени)
	StartTime  types.ClockTime // Время начала слота
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64           // ID созданной записи
	CustomerID      int64           // ID клиента
	ServiceID       int64           // ID типа услуги
	OutletID        int64           // ID сервисного центра
	VehicleID       int64           // ID автомобиля
	TimeSlotID      int64           // ID временного слота
	Date            time.Time       // Дата записи
	StartTime       types.ClockTime // Время начала
	DurationMinutes int             // Длительность в минутах
	Status          string          // Статус записи

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
