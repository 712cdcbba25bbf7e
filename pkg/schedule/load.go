package schedule

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingTitle is returned when an event has no title.
	ErrMissingTitle = errors.New("event has no title")

	// ErrMissingStart is returned when an event has no start time.
	ErrMissingStart = errors.New("event has no start time")

	// ErrMissingDuration is returned when an event specifies neither an
	// end time nor a duration in minutes.
	ErrMissingDuration = errors.New("event has neither end nor minutes")

	// ErrDuplicateID is returned when two events in the same day file
	// share an id.
	ErrDuplicateID = errors.New("duplicate event id")
)

// dayFile mirrors the YAML day-file schema.
type dayFile struct {
	Day    string      `yaml:"day"`
	Events []eventFile `yaml:"events"`
}

type eventFile struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Start    string `yaml:"start"`   // "HH:MM" wall clock
	End      string `yaml:"end"`     // "HH:MM", alternative to minutes
	Minutes  int    `yaml:"minutes"` // duration, used when end is absent
}

// LoadFile reads and decodes a YAML day file.
func LoadFile(path string) (*Day, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	day, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return day, nil
}

// Load decodes a YAML day file from r and validates it. Events missing an
// id are assigned a random UUID; events with an explicit end have their
// duration derived from it, with an end at or before the start treated as
// running to the last minute of the day.
func Load(r io.Reader) (*Day, error) {
	var file dayFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode day file: %w", err)
	}

	date, err := parseDate(file.Day)
	if err != nil {
		return nil, err
	}

	day := &Day{Date: date, Events: make([]Event, 0, len(file.Events))}
	seen := make(map[string]struct{}, len(file.Events))
	for i, ef := range file.Events {
		event, err := buildEvent(ef, date)
		if err != nil {
			return nil, fmt.Errorf("event %d (%q): %w", i, ef.Title, err)
		}
		if _, dup := seen[event.ID]; dup {
			return nil, fmt.Errorf("event %d (%q): %w: %s", i, ef.Title, ErrDuplicateID, event.ID)
		}
		seen[event.ID] = struct{}{}
		day.Events = append(day.Events, event)
	}
	SortEvents(day.Events)
	return day, nil
}

func buildEvent(ef eventFile, date time.Time) (Event, error) {
	if ef.Title == "" {
		return Event{}, ErrMissingTitle
	}
	if ef.Start == "" {
		return Event{}, ErrMissingStart
	}
	startMin, err := parseClock(ef.Start)
	if err != nil {
		return Event{}, err
	}

	minutes := ef.Minutes
	if ef.End != "" {
		endMin, err := parseClock(ef.End)
		if err != nil {
			return Event{}, err
		}
		// Inverted end runs to the last minute of the day; the interval
		// constructor applies the same clamp, keeping both in agreement.
		minutes = endMin - startMin
	} else if minutes <= 0 {
		return Event{}, ErrMissingDuration
	}

	id := ef.ID
	if id == "" {
		id = uuid.NewString()
	}

	start := date.Add(time.Duration(startMin) * time.Minute)
	event := NewEvent(id, ef.Title, start, minutes, date)
	event.Subtitle = ef.Subtitle
	return event, nil
}

// parseClock converts "HH:MM" to minutes past midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("bad clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// parseDate parses the optional day field. An empty value falls back to a
// fixed reference day; all layout math works in minutes past the day
// boundary, so the calendar date only matters for display.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad day value %q: %w", s, err)
	}
	return date, nil
}
