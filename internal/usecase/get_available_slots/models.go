package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	OutletID int64     // ID сервисного центра
	Date     time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     time.Time // Дата, на которую запрашивались слоты
	OutletID int64     // ID сервисного центра
	Slots    []Slot    // Список доступных слотов
}

// Slot модель доступного временного слота.
// TimeSlotID равен нулю, если слот еще не сохранен в базе.
type Slot struct {
	TimeSlotID      int64           // ID сохраненного слота либо 0
	StartTime       types.ClockTime // Время начала слота
	DurationMinutes int             // Длительность слота в минутах
	AvailableStaff  int             // Количество свободных сотрудников
}
