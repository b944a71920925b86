// Package rota implements the shift-cycle availability engine: pure
// calendar arithmetic over repeating on/off shift patterns, the
// per-porter availability resolver, and the per-date schedule assembler.
//
// Everything in this package is side-effect free; callers load the
// entity records and pass them in.
package rota

import (
	"time"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

// TruncateToDay normalizes a timestamp to UTC midnight of its civil
// date. All cycle arithmetic works at day granularity; every call site
// (live schedule endpoints and the freeze job alike) must go through
// this same truncation or their results diverge. Anchoring to UTC keeps
// day differences exact across DST transitions.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day difference to − from, after
// truncating both operands. Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	f := TruncateToDay(from)
	t := TruncateToDay(to)
	return int(t.Sub(f) / (24 * time.Hour))
}

// cyclePosition maps a day difference onto [0, cycleLength).
// The double-mod form keeps positions non-negative for dates before
// ground zero. cycleLength must be positive, guaranteed upstream where
// shifts are created (days_on >= 1, days_off >= 1).
func cyclePosition(daysDiff, cycleLength int) int {
	return ((daysDiff % cycleLength) + cycleLength) % cycleLength
}

// IsShiftActive reports whether the shift's repeating pattern has the
// shift on duty on the given date. The date's time-of-day component is
// ignored.
func IsShiftActive(date time.Time, shift *model.Shift) bool {
	if shift == nil {
		return false
	}
	daysDiff := DaysBetween(shift.GroundZeroDate, date) + shift.ShiftOffset
	pos := cyclePosition(daysDiff, shift.CycleLength())
	return pos < shift.DaysOn
}

// IsPorterActiveOnShift reports whether an individual porter on the
// shift is on duty on the given date. The porter's personal offset
// shifts the pattern's ground zero forward by porter_offset days, so
// members of the same shift can be staggered across the cycle.
func IsPorterActiveOnShift(date time.Time, porter *model.Porter, shift *model.Shift) bool {
	if porter == nil || shift == nil {
		return false
	}
	groundZero := shift.GroundZeroDate.AddDate(0, 0, porter.PorterOffset)
	daysDiff := DaysBetween(groundZero, date)
	pos := cyclePosition(daysDiff, shift.CycleLength())
	return pos < shift.DaysOn
}

// InTempAssignmentWindow reports whether date falls inside the porter's
// temporary-assignment window, inclusive on both ends, at day
// granularity. False when the window is not fully set.
func InTempAssignmentWindow(date time.Time, porter *model.Porter) bool {
	if porter == nil || porter.TempAssignmentStart == nil || porter.TempAssignmentEnd == nil {
		return false
	}
	d := TruncateToDay(date)
	start := TruncateToDay(*porter.TempAssignmentStart)
	end := TruncateToDay(*porter.TempAssignmentEnd)
	return !d.Before(start) && !d.After(end)
}
