package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClockTimeFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ClockTime
		wantErr bool
	}{
		{name: "valid morning", input: "09:00:00", want: "09:00:00"},
		{name: "valid end of day", input: "23:59:59", want: "23:59:59"},
		{name: "missing seconds", input: "09:00", wantErr: true},
		{name: "trailing fractional seconds", input: "11:30:00.000", wantErr: true},
		{name: "trailing space", input: "11:30:00 ", wantErr: true},
		{name: "hour out of range", input: "25:00:00", wantErr: true},
		{name: "garbage", input: "schedule", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewClockTimeFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockTimeComparison(t *testing.T) {
	a := ClockTime("09:00:00")
	b := ClockTime("10:30:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestClockTimeAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   ClockTime
		minutes int
		want    ClockTime
		wantErr error
	}{
		{name: "one hour", start: "09:00:00", minutes: 60, want: "10:00:00"},
		{name: "partial hour", start: "16:15:00", minutes: 45, want: "17:00:00"},
		{name: "crosses midnight", start: "23:30:00", minutes: 60, wantErr: ErrClockTimeOverflow},
		{name: "invalid receiver", start: "not-a-time", minutes: 10, wantErr: ErrInvalidClockTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockTimeScan(t *testing.T) {
	var c ClockTime
	require.NoError(t, c.Scan(time.Date(2026, 3, 14, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, ClockTime("13:45:00"), c)

	require.NoError(t, c.Scan("08:00:00"))
	assert.Equal(t, ClockTime("08:00:00"), c)

	require.NoError(t, c.Scan([]byte("17:00:00")))
	assert.Equal(t, ClockTime("17:00:00"), c)

	assert.Error(t, c.Scan(42))
}

func TestClockTimeValue(t *testing.T) {
	v, err := ClockTime("11:00:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00:00", v)

	v, err = ClockTime("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ClockTime("bad").Value()
	assert.Error(t, err)

	_, err = ClockTime("11:00:00.500").Value()
	assert.ErrorIs(t, err, ErrInvalidClockTime)
}
