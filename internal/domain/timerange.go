package domain

import "github.com/m04kA/SMC-ServicePortal/pkg/types"

// TimeRange is a contiguous half-open interval [Start, End) within a single
// calendar day. Ranges are ephemeral values used during availability
// calculation and are never persisted.
//
// Boundary convention: busy intervals are half-open, so an interval that ends
// exactly where another starts does not overlap it. Subtract uses strict
// comparisons; Contains is inclusive on both ends, so a slot may start exactly
// at a range's start and end exactly at its end.
type TimeRange struct {
	Start types.ClockTime
	End   types.ClockTime
}

// NewBusinessHoursRange returns the full working-day range
func NewBusinessHoursRange() TimeRange {
	return TimeRange{Start: BusinessHoursStart, End: BusinessHoursEnd}
}

// IsEmpty reports whether the range holds no time
func (r TimeRange) IsEmpty() bool {
	return !r.Start.IsBefore(r.End)
}

// Subtract removes the busy interval [busyStart, busyEnd) from the range and
// returns the remaining free ranges: the original range when disjoint (or
// merely touching), one trimmed range on partial overlap, two ranges when the
// busy interval falls strictly inside, and none when it covers the range.
func (r TimeRange) Subtract(busyStart, busyEnd types.ClockTime) []TimeRange {
	// No real overlap: touching boundaries do not consume time
	if !busyStart.IsBefore(r.End) || !busyEnd.IsAfter(r.Start) {
		return []TimeRange{r}
	}

	result := make([]TimeRange, 0, 2)
	if busyStart.IsAfter(r.Start) {
		result = append(result, TimeRange{Start: r.Start, End: busyStart})
	}
	if busyEnd.IsBefore(r.End) {
		result = append(result, TimeRange{Start: busyEnd, End: r.End})
	}
	return result
}

// Contains reports whether the candidate slot [slotStart, slotEnd] fits
// entirely within the range, boundaries included
func (r TimeRange) Contains(slotStart, slotEnd types.ClockTime) bool {
	return !slotStart.IsBefore(r.Start) && !slotEnd.IsAfter(r.End)
}
