package confirm_appointment

import (
	"time"

	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// Request модель запроса на подтверждение записи.
// StaffID и EstimatedFinishTime опциональны: подтверждение без них
// переводит запись в SCHEDULED, не назначая сотрудника и не фиксируя
// время завершения.
type Request struct {
	AppointmentID       int64   // ID записи
	StaffID             *int64  // ID назначаемого сотрудника
	EstimatedFinishTime *string // Расчетное время завершения (HH:MM:SS)
}

// Response модель ответа с подтвержденной записью
type Response struct {
	ID                  int64            // ID записи
	CustomerID          int64            // ID клиента
	OutletID            int64            // ID сервисного центра
	StaffID             *int64           // ID назначенного сотрудника
	TimeSlotID          int64            // ID временного слота
	StartTime           types.ClockTime  // Время начала
	EstimatedFinishTime *types.ClockTime // Расчетное время завершения
	Status              string           // Статус записи
	UpdatedAt           time.Time        // Время обновления
}
