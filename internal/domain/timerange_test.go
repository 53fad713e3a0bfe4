package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

func ct(s string) types.ClockTime {
	return types.ClockTime(s)
}

func TestTimeRangeSubtract(t *testing.T) {
	full := TimeRange{Start: ct("09:00:00"), End: ct("17:00:00")}

	tests := []struct {
		name      string
		rng       TimeRange
		busyStart string
		busyEnd   string
		want      []TimeRange
	}{
		{
			name:      "busy strictly inside splits the range",
			rng:       full,
			busyStart: "10:00:00",
			busyEnd:   "11:00:00",
			want: []TimeRange{
				{Start: ct("09:00:00"), End: ct("10:00:00")},
				{Start: ct("11:00:00"), End: ct("17:00:00")},
			},
		},
		{
			name:      "busy covering the range consumes it",
			rng:       TimeRange{Start: ct("10:00:00"), End: ct("11:00:00")},
			busyStart: "09:00:00",
			busyEnd:   "12:00:00",
			want:      []TimeRange{},
		},
		{
			name:      "busy equal to the range consumes it",
			rng:       TimeRange{Start: ct("10:00:00"), End: ct("11:00:00")},
			busyStart: "10:00:00",
			busyEnd:   "11:00:00",
			want:      []TimeRange{},
		},
		{
			name:      "overlap at the head trims the start",
			rng:       full,
			busyStart: "08:00:00",
			busyEnd:   "10:00:00",
			want:      []TimeRange{{Start: ct("10:00:00"), End: ct("17:00:00")}},
		},
		{
			name:      "overlap at the tail trims the end",
			rng:       full,
			busyStart: "16:00:00",
			busyEnd:   "18:00:00",
			want:      []TimeRange{{Start: ct("09:00:00"), End: ct("16:00:00")}},
		},
		{
			name:      "disjoint busy leaves the range unchanged",
			rng:       TimeRange{Start: ct("09:00:00"), End: ct("12:00:00")},
			busyStart: "13:00:00",
			busyEnd:   "14:00:00",
			want:      []TimeRange{{Start: ct("09:00:00"), End: ct("12:00:00")}},
		},
		{
			name:      "busy ending exactly at range start does not overlap",
			rng:       TimeRange{Start: ct("10:00:00"), End: ct("17:00:00")},
			busyStart: "09:00:00",
			busyEnd:   "10:00:00",
			want:      []TimeRange{{Start: ct("10:00:00"), End: ct("17:00:00")}},
		},
		{
			name:      "busy starting exactly at range end does not overlap",
			rng:       TimeRange{Start: ct("09:00:00"), End: ct("10:00:00")},
			busyStart: "10:00:00",
			busyEnd:   "11:00:00",
			want:      []TimeRange{{Start: ct("09:00:00"), End: ct("10:00:00")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rng.Subtract(ct(tt.busyStart), ct(tt.busyEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeRangeContains(t *testing.T) {
	rng := TimeRange{Start: ct("09:00:00"), End: ct("12:00:00")}

	tests := []struct {
		name      string
		slotStart string
		slotEnd   string
		want      bool
	}{
		{name: "slot strictly inside", slotStart: "10:00:00", slotEnd: "11:00:00", want: true},
		{name: "slot equal to range boundaries", slotStart: "09:00:00", slotEnd: "12:00:00", want: true},
		{name: "slot aligned with range start", slotStart: "09:00:00", slotEnd: "10:00:00", want: true},
		{name: "slot aligned with range end", slotStart: "11:00:00", slotEnd: "12:00:00", want: true},
		{name: "slot overhanging the end", slotStart: "11:30:00", slotEnd: "12:30:00", want: false},
		{name: "slot before the range", slotStart: "08:00:00", slotEnd: "09:00:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rng.Contains(ct(tt.slotStart), ct(tt.slotEnd)))
		})
	}
}

func TestNewBusinessHoursRange(t *testing.T) {
	rng := NewBusinessHoursRange()
	assert.Equal(t, BusinessHoursStart, rng.Start)
	assert.Equal(t, BusinessHoursEnd, rng.End)
	assert.False(t, rng.IsEmpty())
}
