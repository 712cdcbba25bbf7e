package schedule

import (
	"slices"
	"strings"
	"time"

	"github.com/fcollf/dayplan/pkg/interval"
	"github.com/fcollf/dayplan/pkg/layout"
)

// Event is one scheduled item on a day plan. The layout core only reads
// the identity and the interval; title and subtitle are opaque display
// strings carried through for renderers.
type Event struct {
	ID       string
	Title    string
	Subtitle string
	Start    time.Time
	Minutes  int

	span interval.Interval
}

// NewEvent builds an event running for the given number of minutes from
// start, on the day beginning at dayStart. The interval is derived once
// here; a non-positive duration clamps the end to the last minute of the
// day.
func NewEvent(id, title string, start time.Time, minutes int, dayStart time.Time) Event {
	return Event{
		ID:      id,
		Title:   title,
		Start:   start,
		Minutes: minutes,
		span:    interval.FromClock(start, start.Add(time.Duration(minutes)*time.Minute), dayStart),
	}
}

// ItemID returns the event's stable identity, satisfying layout.Item.
func (e Event) ItemID() string { return e.ID }

// Span returns the event's minute interval, satisfying layout.Item.
func (e Event) Span() interval.Interval { return e.span }

// Day is one loaded day plan: the reference date and its events.
type Day struct {
	Date   time.Time
	Events []Event
}

// Items adapts the day's events to the layout.Item slice consumed by
// layout.Graph.Reconcile.
func (d *Day) Items() []layout.Item {
	items := make([]layout.Item, len(d.Events))
	for i, e := range d.Events {
		items[i] = e
	}
	return items
}

// Event returns the event with the given ID, or false if the day has none.
func (d *Day) Event(id string) (Event, bool) {
	for _, e := range d.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// SortEvents orders events by interval lower bound ascending, duration
// descending, with ID as the final tiebreak so the result is fully
// deterministic regardless of input order.
func SortEvents(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		if c := a.span.Lower - b.span.Lower; c != 0 {
			return c
		}
		if c := b.span.Duration() - a.span.Duration(); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
