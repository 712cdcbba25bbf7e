package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fcollf/dayplan/pkg/schedule"
)

// ReadJSON decodes a JSON day file from r and validates it under the same
// rules as the YAML loader: every event needs a title, a start time, and a
// duration from either minutes or an end time, and ids must be unique.
// Events missing an id are assigned a random UUID. Layout blocks in the
// input are ignored.
func ReadJSON(r io.Reader) (*schedule.Day, error) {
	var file dayJSON
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode day: %w", err)
	}

	date := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	if file.Day != "" {
		var err error
		if date, err = time.Parse("2006-01-02", file.Day); err != nil {
			return nil, fmt.Errorf("bad day value %q: %w", file.Day, err)
		}
	}

	day := &schedule.Day{Date: date, Events: make([]schedule.Event, 0, len(file.Events))}
	seen := make(map[string]struct{}, len(file.Events))
	for i, ef := range file.Events {
		event, err := decodeEvent(ef, date)
		if err != nil {
			return nil, fmt.Errorf("event %d (%q): %w", i, ef.Title, err)
		}
		if _, dup := seen[event.ID]; dup {
			return nil, fmt.Errorf("event %d (%q): %w: %s", i, ef.Title, schedule.ErrDuplicateID, event.ID)
		}
		seen[event.ID] = struct{}{}
		day.Events = append(day.Events, event)
	}
	schedule.SortEvents(day.Events)
	return day, nil
}

// ImportJSON reads a day from a JSON file at path.
// This is a convenience wrapper around [ReadJSON] for file-based input.
func ImportJSON(path string) (*schedule.Day, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	day, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return day, nil
}

func decodeEvent(ef eventJSON, date time.Time) (schedule.Event, error) {
	if ef.Title == "" {
		return schedule.Event{}, schedule.ErrMissingTitle
	}
	if ef.Start == "" {
		return schedule.Event{}, schedule.ErrMissingStart
	}
	start, err := parseClock(ef.Start)
	if err != nil {
		return schedule.Event{}, err
	}

	minutes := ef.Minutes
	if ef.End != "" {
		end, err := parseClock(ef.End)
		if err != nil {
			return schedule.Event{}, err
		}
		minutes = end - start
	} else if minutes <= 0 {
		return schedule.Event{}, schedule.ErrMissingDuration
	}

	id := ef.ID
	if id == "" {
		id = uuid.NewString()
	}

	event := schedule.NewEvent(id, ef.Title, date.Add(time.Duration(start)*time.Minute), minutes, date)
	event.Subtitle = ef.Subtitle
	return event, nil
}

// parseClock converts "HH:MM" to minutes past midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("bad clock value %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
