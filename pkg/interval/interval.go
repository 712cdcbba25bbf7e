package interval

import (
	"fmt"
	"time"
)

const (
	// MinutesPerDay is the number of whole minutes in the 24-hour window.
	MinutesPerDay = 24 * 60

	// LastMinute is the last representable minute of the day (23:59).
	// Inverted or overflowing upper bounds are clamped here.
	LastMinute = MinutesPerDay - 1
)

// Position describes where one interval sits relative to another in the
// visual layout. It is the result of [Interval.Classify] and decides which
// adjacency list of the overlap graph an edge goes into.
type Position int

const (
	// PositionNone means the intervals have no temporal intersection.
	PositionNone Position = iota
	// PositionLeading means the other interval appears before this one.
	PositionLeading
	// PositionTrailing means the other interval appears after this one.
	PositionTrailing
)

// String returns the position name for logs and test output.
func (p Position) String() string {
	switch p {
	case PositionLeading:
		return "leading"
	case PositionTrailing:
		return "trailing"
	default:
		return "none"
	}
}

// Interval is a half-open minute range [Lower, Upper) within a single day.
// Both bounds are minutes since the day boundary, in [0, LastMinute].
// The invariant Lower < Upper holds for every interval built through New,
// FromClock, or SetUpper.
type Interval struct {
	Lower int // first minute contained in the range
	Upper int // first minute past the range
}

// New creates an interval from two minute bounds. Bounds are clamped into
// the day window, and an upper bound at or below the lower bound is clamped
// to LastMinute instead of producing an inverted or empty range.
func New(lower, upper int) Interval {
	lower = clampMinute(lower)
	upper = clampMinute(upper)
	if upper <= lower {
		upper = LastMinute
	}
	if lower >= upper {
		// Degenerate single-minute case at the very end of the day.
		lower = LastMinute - 1
	}
	return Interval{Lower: lower, Upper: upper}
}

// MinuteOfDay converts a wall-clock time to whole minutes since the given
// day boundary, clamped into [0, LastMinute]. The boundary is explicit so
// callers control which day (and which location) the timeline represents.
func MinuteOfDay(t, dayStart time.Time) int {
	return clampMinute(int(t.Sub(dayStart) / time.Minute))
}

// FromClock builds an interval for an item running from start to end on the
// day beginning at dayStart. An end at or before the start clamps the upper
// bound to LastMinute, matching the single-day rendering rule that such an
// item extends to 23:59.
func FromClock(start, end, dayStart time.Time) Interval {
	return New(MinuteOfDay(start, dayStart), MinuteOfDay(end, dayStart))
}

// Duration returns the number of minutes spanned by the interval.
func (i Interval) Duration() int { return i.Upper - i.Lower }

// Contains reports whether the given minute falls inside the half-open
// range: Lower <= minute < Upper.
func (i Interval) Contains(minute int) bool {
	return minute >= i.Lower && minute < i.Upper
}

// ContainsInterval reports whether both of the other interval's bounds fall
// inside this one.
func (i Interval) ContainsInterval(other Interval) bool {
	return i.Contains(other.Lower) && i.Contains(other.Upper)
}

// Classify answers where other sits relative to this interval.
//
// The rules are evaluated in order:
//  1. other fully contains this interval -> PositionLeading
//  2. other starts at or before this interval and contains its upper
//     bound -> PositionLeading
//  3. this interval contains other's lower bound and other ends at or
//     past this interval's upper bound -> PositionTrailing
//  4. otherwise -> PositionNone
//
// Rules 2 and 3 are intentionally not mirror images of each other; the
// placement algorithm depends on the exact asymmetry to route each edge
// into the correct adjacency list. Disjoint intervals always classify as
// PositionNone.
func (i Interval) Classify(other Interval) Position {
	switch {
	case other.ContainsInterval(i):
		return PositionLeading
	case other.Lower <= i.Lower && other.Contains(i.Upper):
		return PositionLeading
	case i.Contains(other.Lower) && other.Upper >= i.Upper:
		return PositionTrailing
	default:
		return PositionNone
	}
}

// SetUpper rewrites the upper bound while keeping the lower bound. A new
// bound at or below the lower bound is clamped to LastMinute so the
// interval never becomes inverted or empty.
func (i *Interval) SetUpper(upper int) {
	upper = clampMinute(upper)
	if upper <= i.Lower {
		upper = LastMinute
	}
	i.Upper = upper
}

// String formats the interval as "HH:MM-HH:MM".
func (i Interval) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", i.Lower/60, i.Lower%60, i.Upper/60, i.Upper%60)
}

func clampMinute(m int) int {
	if m < 0 {
		return 0
	}
	if m > LastMinute {
		return LastMinute
	}
	return m
}
