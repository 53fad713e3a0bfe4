package get_available_slots

import (
	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// generateHourlySlotStarts генерирует времена начала часовых слотов в
// пределах рабочего дня. Последний слот начинается так, чтобы его конец
// не выходил за время закрытия.
func generateHourlySlotStarts() ([]types.ClockTime, error) {
	starts := make([]types.ClockTime, 0, 8)
	current := domain.BusinessHoursStart

	for current.IsBefore(domain.BusinessHoursEnd) {
		slotEnd, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(domain.BusinessHoursEnd) {
			break
		}

		starts = append(starts, current)
		current = slotEnd
	}

	return starts, nil
}

// calculateAvailableSlots собирает итоговый список доступных слотов.
// Слот доступен, когда хотя бы у одного сотрудника он целиком помещается
// в свободный интервал. Для доступных слотов подставляется ID уже
// сохраненного слота на эту дату и время, если такой есть; слоты без
// записи в базе отдаются с нулевым ID, вставка при чтении не выполняется.
func calculateAvailableSlots(
	starts []types.ClockTime,
	freeRanges map[int64][]domain.TimeRange,
	persisted []*domain.TimeSlot,
) ([]Slot, error) {
	persistedByTime := make(map[types.ClockTime]*domain.TimeSlot, len(persisted))
	for _, slot := range persisted {
		persistedByTime[slot.Clocktime] = slot
	}

	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		end, err := start.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}

		available := countStaffWithRoom(freeRanges, start, end)
		if available == 0 {
			continue
		}

		var slotID int64
		if stored, ok := persistedByTime[start]; ok {
			slotID = stored.ID
		}

		slots = append(slots, Slot{
			TimeSlotID:      slotID,
			StartTime:       start,
			DurationMinutes: domain.SlotDurationMinutes,
			AvailableStaff:  available,
		})
	}

	return slots, nil
}
