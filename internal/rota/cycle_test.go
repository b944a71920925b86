package rota

import (
	"testing"
	"time"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

// ── test helpers ──

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fourOnFourOff(groundZero time.Time, offset int) *model.Shift {
	return &model.Shift{
		ShiftID:        "shift-1",
		Name:           "Day Shift A",
		StartsAt:       "07:00",
		EndsAt:         "19:00",
		DaysOn:         4,
		DaysOff:        4,
		ShiftOffset:    offset,
		GroundZeroDate: groundZero,
		IsActive:       true,
	}
}

// ── IsShiftActive ──

func TestIsShiftActive_GroundZeroDayIsActive(t *testing.T) {
	gz := date(2025, 1, 1)
	shift := fourOnFourOff(gz, 0)

	if !IsShiftActive(gz, shift) {
		t.Error("ground zero date must be active when shift_offset=0 (cycle position 0)")
	}
}

func TestIsShiftActive_FourOnFourOffPeriodicity(t *testing.T) {
	gz := date(2025, 1, 1)
	shift := fourOnFourOff(gz, 0)

	// Exactly 4 consecutive on-days out of every 8, starting at ground zero.
	for cycle := 0; cycle < 3; cycle++ {
		for pos := 0; pos < 8; pos++ {
			d := gz.AddDate(0, 0, cycle*8+pos)
			want := pos < 4
			if got := IsShiftActive(d, shift); got != want {
				t.Errorf("day %s (cycle %d, position %d): active=%v, want %v",
					d.Format("2006-01-02"), cycle, pos, got, want)
			}
		}
	}
}

func TestIsShiftActive_Period8Repeats(t *testing.T) {
	gz := date(2025, 1, 1)
	shift := fourOnFourOff(gz, 0)

	for i := 0; i < 40; i++ {
		d := gz.AddDate(0, 0, i)
		if IsShiftActive(d, shift) != IsShiftActive(d.AddDate(0, 0, 8), shift) {
			t.Errorf("activity must be periodic with period 8, differs at day %d", i)
		}
	}
}

func TestIsShiftActive_ShiftOffsetShiftsPattern(t *testing.T) {
	gz := date(2025, 1, 1)
	plain := fourOnFourOff(gz, 0)
	offset := fourOnFourOff(gz, 2)

	for i := -10; i < 10; i++ {
		d := gz.AddDate(0, 0, i)
		if IsShiftActive(d, offset) != IsShiftActive(d.AddDate(0, 0, 2), plain) {
			t.Errorf("shift_offset=2 must equal the plain pattern evaluated 2 days later, differs at day %d", i)
		}
	}
}

func TestIsShiftActive_DateBeforeGroundZero(t *testing.T) {
	// No negative-modulo bugs: ground zero 2025-01-10, 3 on / 3 off,
	// target 2025-01-01 → daysDiff = -9, position must land in [0,6).
	shift := &model.Shift{
		ShiftID:        "shift-neg",
		DaysOn:         3,
		DaysOff:        3,
		GroundZeroDate: date(2025, 1, 10),
	}
	target := date(2025, 1, 1)

	// -9 mod 6 normalized → 3, which is the first off day.
	if IsShiftActive(target, shift) {
		t.Error("2025-01-01 should be an off day (normalized cycle position 3)")
	}

	// The pattern before ground zero must still be periodic.
	for i := 1; i <= 30; i++ {
		d := shift.GroundZeroDate.AddDate(0, 0, -i)
		if IsShiftActive(d, shift) != IsShiftActive(d.AddDate(0, 0, -6), shift) {
			t.Errorf("pattern before ground zero must be periodic, differs %d days back", i)
		}
	}
}

func TestIsShiftActive_TimeOfDayIgnored(t *testing.T) {
	gz := date(2025, 1, 1)
	shift := fourOnFourOff(gz, 0)

	midnight := date(2025, 1, 3)
	lateEvening := time.Date(2025, 1, 3, 23, 45, 12, 0, time.UTC)

	if IsShiftActive(midnight, shift) != IsShiftActive(lateEvening, shift) {
		t.Error("time-of-day on the query date must not change the result")
	}
}

// ── IsPorterActiveOnShift ──

func TestIsPorterActiveOnShift_OffsetEquivalence(t *testing.T) {
	gz := date(2025, 1, 1)
	shift := fourOnFourOff(gz, 0)

	for _, k := range []int{0, 1, 3, 4, 7, -2} {
		porter := &model.Porter{PorterID: "p-1", PorterOffset: k}
		for i := -8; i < 24; i++ {
			d := gz.AddDate(0, 0, i)
			got := IsPorterActiveOnShift(d, porter, shift)
			want := IsShiftActive(d.AddDate(0, 0, -k), shift)
			if got != want {
				t.Errorf("porter_offset=%d day %d: porter-level check must equal shift check %d days earlier (got %v, want %v)",
					k, i, k, got, want)
			}
		}
	}
}

func TestIsPorterActiveOnShift_ZeroOffsetMatchesShift(t *testing.T) {
	gz := date(2025, 1, 1)
	shift := fourOnFourOff(gz, 0)
	porter := &model.Porter{PorterID: "p-1", PorterOffset: 0}

	for i := 0; i < 16; i++ {
		d := gz.AddDate(0, 0, i)
		if IsPorterActiveOnShift(d, porter, shift) != IsShiftActive(d, shift) {
			t.Errorf("zero porter offset must match the shift pattern exactly, differs at day %d", i)
		}
	}
}

func TestIsPorterActiveOnShift_NilInputs(t *testing.T) {
	shift := fourOnFourOff(date(2025, 1, 1), 0)
	if IsPorterActiveOnShift(date(2025, 1, 3), nil, shift) {
		t.Error("nil porter must not be active")
	}
	if IsPorterActiveOnShift(date(2025, 1, 3), &model.Porter{}, nil) {
		t.Error("nil shift must not be active")
	}
}

// ── DaysBetween / TruncateToDay ──

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from, to time.Time
		want     int
	}{
		{date(2025, 1, 1), date(2025, 1, 1), 0},
		{date(2025, 1, 1), date(2025, 1, 3), 2},
		{date(2025, 1, 10), date(2025, 1, 1), -9},
		{time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC), time.Date(2025, 1, 2, 0, 1, 0, 0, time.UTC), 1},
		{date(2024, 12, 31), date(2025, 1, 1), 1},
	}
	for _, c := range cases {
		if got := DaysBetween(c.from, c.to); got != c.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d",
				c.from.Format(time.RFC3339), c.to.Format(time.RFC3339), got, c.want)
		}
	}
}

func TestTruncateToDay_NormalizesAcrossLocations(t *testing.T) {
	loc := time.FixedZone("BST", 3600)
	local := time.Date(2025, 6, 15, 22, 30, 0, 0, loc)
	utc := time.Date(2025, 6, 15, 4, 0, 0, 0, time.UTC)

	if !TruncateToDay(local).Equal(TruncateToDay(utc)) {
		t.Error("same civil date must truncate to the same day regardless of location")
	}
}

// ── InTempAssignmentWindow ──

func TestInTempAssignmentWindow_InclusiveBothEnds(t *testing.T) {
	start := date(2025, 3, 10)
	end := date(2025, 3, 14)
	porter := &model.Porter{TempAssignmentStart: &start, TempAssignmentEnd: &end}

	cases := []struct {
		d    time.Time
		want bool
	}{
		{date(2025, 3, 9), false},
		{date(2025, 3, 10), true}, // start day inclusive
		{date(2025, 3, 12), true},
		{date(2025, 3, 14), true}, // end day inclusive
		{date(2025, 3, 15), false},
	}
	for _, c := range cases {
		if got := InTempAssignmentWindow(c.d, porter); got != c.want {
			t.Errorf("window check for %s = %v, want %v", c.d.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestInTempAssignmentWindow_UnsetWindow(t *testing.T) {
	start := date(2025, 3, 10)
	if InTempAssignmentWindow(date(2025, 3, 10), &model.Porter{TempAssignmentStart: &start}) {
		t.Error("a half-set window must never match")
	}
	if InTempAssignmentWindow(date(2025, 3, 10), &model.Porter{}) {
		t.Error("an unset window must never match")
	}
}
