package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServicePortal/pkg/ptr"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{StatusPending, StatusScheduled, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},
		{StatusScheduled, StatusInProgress, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.from}
		assert.Equal(t, tt.want, a.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestConsumesStaffTime(t *testing.T) {
	assert.False(t, (&Appointment{Status: StatusPending}).ConsumesStaffTime())
	assert.False(t, (&Appointment{Status: StatusCancelled}).ConsumesStaffTime())
	assert.True(t, (&Appointment{Status: StatusScheduled}).ConsumesStaffTime())
	assert.True(t, (&Appointment{Status: StatusInProgress}).ConsumesStaffTime())
	assert.True(t, (&Appointment{Status: StatusCompleted}).ConsumesStaffTime())
}

func TestBusyInterval(t *testing.T) {
	slot := &TimeSlot{Clocktime: types.ClockTime("10:00:00")}

	t.Run("uses duration when no finish time", func(t *testing.T) {
		a := &Appointment{Slot: slot, DurationMinutes: 90}
		start, end, ok := a.BusyInterval()
		require.True(t, ok)
		assert.Equal(t, types.ClockTime("10:00:00"), start)
		assert.Equal(t, types.ClockTime("11:30:00"), end)
	})

	t.Run("estimated finish time wins over duration", func(t *testing.T) {
		a := &Appointment{
			Slot:                slot,
			DurationMinutes:     60,
			EstimatedFinishTime: ptr.Ptr(types.ClockTime("12:15:00")),
		}
		_, end, ok := a.BusyInterval()
		require.True(t, ok)
		assert.Equal(t, types.ClockTime("12:15:00"), end)
	})

	t.Run("missing slot yields no interval", func(t *testing.T) {
		a := &Appointment{DurationMinutes: 60}
		_, _, ok := a.BusyInterval()
		assert.False(t, ok)
	})
}

func TestParseAppointmentStatus(t *testing.T) {
	status, ok := ParseAppointmentStatus("SCHEDULED")
	require.True(t, ok)
	assert.Equal(t, StatusScheduled, status)

	_, ok = ParseAppointmentStatus("scheduled")
	assert.False(t, ok)

	_, ok = ParseAppointmentStatus("NO_SHOW")
	assert.False(t, ok)
}

func TestQuarterForMonth(t *testing.T) {
	quarters := map[int16]int16{
		1: 1, 2: 1, 3: 1,
		4: 2, 5: 2, 6: 2,
		7: 3, 8: 3, 9: 3,
		10: 4, 11: 4, 12: 4,
	}
	for month, want := range quarters {
		assert.Equal(t, want, QuarterForMonth(month), "month %d", month)
	}
}
