package interval

import (
	"testing"
	"time"
)

func TestContains_Minute(t *testing.T) {
	i := New(10, 70)

	tests := []struct {
		minute int
		want   bool
	}{
		{9, false},
		{10, true},
		{40, true},
		{69, true},
		{70, false},
		{71, false},
	}
	for _, tt := range tests {
		if got := i.Contains(tt.minute); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.minute, got, tt.want)
		}
	}
}

func TestContainsInterval(t *testing.T) {
	outer := New(0, 120)

	tests := []struct {
		name  string
		inner Interval
		want  bool
	}{
		{"fully inside", New(30, 60), true},
		{"same lower", New(0, 60), true},
		{"upper at bound", New(30, 119), true},
		{"upper past bound", New(30, 150), false},
		{"disjoint", New(200, 300), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsInterval(tt.inner); got != tt.want {
				t.Errorf("ContainsInterval(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want Position
	}{
		{"partial overlap forward", New(0, 60), New(30, 90), PositionTrailing},
		{"partial overlap reverse", New(30, 90), New(0, 60), PositionNone},
		{"other fully contains", New(30, 60), New(0, 120), PositionLeading},
		{"contains other", New(0, 120), New(30, 60), PositionNone},
		{"same lower other longer", New(0, 60), New(0, 90), PositionLeading},
		{"same lower other shorter", New(0, 90), New(0, 60), PositionNone},
		{"identical", New(0, 60), New(0, 60), PositionTrailing},
		{"touching endpoints", New(0, 60), New(60, 120), PositionNone},
		{"disjoint", New(0, 60), New(90, 120), PositionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Classify(tt.b); got != tt.want {
				t.Errorf("%v.Classify(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// The classification is deliberately asymmetric: for A=[0,60) and
// B=[30,90), A sees B trailing while B sees no relation to A at all.
// Placement correctness depends on this exact pair.
func TestClassify_AsymmetricPair(t *testing.T) {
	a := New(0, 60)
	b := New(30, 90)

	if got := a.Classify(b); got != PositionTrailing {
		t.Errorf("a.Classify(b) = %v, want trailing", got)
	}
	if got := b.Classify(a); got != PositionNone {
		t.Errorf("b.Classify(a) = %v, want none", got)
	}
}

func TestNew_ClampsInvertedUpper(t *testing.T) {
	// Start 10:00, end 09:30: the upper bound clamps to the last minute
	// of the day instead of going negative.
	i := New(10*60, 9*60+30)

	if i.Lower != 600 {
		t.Errorf("Lower = %d, want 600", i.Lower)
	}
	if i.Upper != LastMinute {
		t.Errorf("Upper = %d, want %d", i.Upper, LastMinute)
	}
	if i.Duration() <= 0 {
		t.Errorf("Duration() = %d, want positive", i.Duration())
	}
}

func TestNew_ClampsOutOfDayBounds(t *testing.T) {
	i := New(-30, 26*60)
	if i.Lower != 0 {
		t.Errorf("Lower = %d, want 0", i.Lower)
	}
	if i.Upper != LastMinute {
		t.Errorf("Upper = %d, want %d", i.Upper, LastMinute)
	}
}

func TestNew_DegenerateEndOfDay(t *testing.T) {
	i := New(LastMinute, LastMinute)
	if i.Lower >= i.Upper {
		t.Errorf("got inverted interval %v", i)
	}
}

func TestSetUpper(t *testing.T) {
	i := New(600, 660)

	i.SetUpper(720)
	if i.Upper != 720 {
		t.Errorf("Upper = %d, want 720", i.Upper)
	}

	// Re-bound below the lower bound clamps to the last minute.
	i.SetUpper(600)
	if i.Upper != LastMinute {
		t.Errorf("Upper = %d, want %d", i.Upper, LastMinute)
	}
}

func TestMinuteOfDay(t *testing.T) {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"midnight", day, 0},
		{"morning", day.Add(9*time.Hour + 30*time.Minute), 570},
		{"before day start", day.Add(-time.Hour), 0},
		{"past day end", day.Add(25 * time.Hour), LastMinute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinuteOfDay(tt.t, day); got != tt.want {
				t.Errorf("MinuteOfDay() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFromClock_ClampsInvertedEnd(t *testing.T) {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	start := day.Add(10 * time.Hour)
	end := day.Add(9*time.Hour + 30*time.Minute)

	i := FromClock(start, end, day)

	if i.Lower != 600 {
		t.Errorf("Lower = %d, want 600", i.Lower)
	}
	if i.Upper != LastMinute {
		t.Errorf("Upper = %d, want %d (23:59)", i.Upper, LastMinute)
	}
}

func TestString(t *testing.T) {
	if got := New(570, 615).String(); got != "09:30-10:15" {
		t.Errorf("String() = %q, want %q", got, "09:30-10:15")
	}
}
