package get_available_slots

import (
	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// buildStaffFreeRanges вычисляет свободные интервалы каждого сотрудника.
// Каждый сотрудник начинает день с полного рабочего диапазона, из которого
// вычитаются интервалы его записей. Записи без назначенного сотрудника и
// записи, не занимающие время (PENDING, CANCELLED), не уменьшают
// доступность.
func buildStaffFreeRanges(staff []*domain.Staff, appointments []*domain.Appointment) map[int64][]domain.TimeRange {
	freeRanges := make(map[int64][]domain.TimeRange, len(staff))
	for _, member := range staff {
		freeRanges[member.ID] = []domain.TimeRange{domain.NewBusinessHoursRange()}
	}

	for _, appt := range appointments {
		if !appt.IsAssigned() || !appt.ConsumesStaffTime() {
			continue
		}

		ranges, ok := freeRanges[*appt.StaffID]
		if !ok {
			// Запись закреплена за сотрудником другого центра
			continue
		}

		busyStart, busyEnd, ok := appt.BusyInterval()
		if !ok {
			continue
		}

		remaining := make([]domain.TimeRange, 0, len(ranges))
		for _, r := range ranges {
			remaining = append(remaining, r.Subtract(busyStart, busyEnd)...)
		}
		freeRanges[*appt.StaffID] = remaining
	}

	return freeRanges
}

// countStaffWithRoom подсчитывает сотрудников, у которых слот целиком
// помещается в один из свободных интервалов
func countStaffWithRoom(freeRanges map[int64][]domain.TimeRange, slotStart, slotEnd types.ClockTime) int {
	count := 0
	for _, ranges := range freeRanges {
		for _, r := range ranges {
			if r.Contains(slotStart, slotEnd) {
				count++
				break
			}
		}
	}
	return count
}
