package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fcollf/dayplan/pkg/layout"
	"github.com/fcollf/dayplan/pkg/schedule"
)

// dayJSON mirrors the JSON day-file schema.
type dayJSON struct {
	Day    string      `json:"day,omitempty"`
	Events []eventJSON `json:"events"`
}

type eventJSON struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Start    string `json:"start"` // "HH:MM" wall clock
	End      string `json:"end,omitempty"`
	Minutes  int    `json:"minutes,omitempty"`

	Layout *layoutJSON `json:"layout,omitempty"`
}

// layoutJSON is the computed placement of one event, written on export
// and ignored on import.
type layoutJSON struct {
	Interval string   `json:"interval"`
	Index    int      `json:"index"`
	Columns  int      `json:"columns"`
	Trailing []string `json:"trailing,omitempty"`
}

// WriteJSON encodes the day and its computed layout as JSON and writes it
// to w. Events appear in the graph's display order; events the graph does
// not know are appended without a layout block. A nil graph exports the
// events alone.
func WriteJSON(w io.Writer, g *layout.Graph, day *schedule.Day) error {
	out := dayJSON{Events: make([]eventJSON, 0, len(day.Events))}
	if !day.Date.IsZero() {
		out.Day = day.Date.Format("2006-01-02")
	}

	written := make(map[string]struct{}, len(day.Events))
	if g != nil {
		for _, id := range g.Order() {
			e, ok := day.Event(id)
			if !ok {
				continue
			}
			out.Events = append(out.Events, encodeEvent(e, g.Node(id)))
			written[id] = struct{}{}
		}
	}
	for _, e := range day.Events {
		if _, ok := written[e.ID]; !ok {
			out.Events = append(out.Events, encodeEvent(e, nil))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode day: %w", err)
	}
	return nil
}

// ExportJSON writes the day and its layout to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(path string, g *layout.Graph, day *schedule.Day) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, g, day)
}

func encodeEvent(e schedule.Event, n *layout.Node) eventJSON {
	out := eventJSON{
		ID:       e.ID,
		Title:    e.Title,
		Subtitle: e.Subtitle,
		Start:    e.Start.Format("15:04"),
		Minutes:  e.Minutes,
	}
	if n != nil {
		out.Layout = &layoutJSON{
			Interval: n.Span().String(),
			Index:    n.Index(),
			Columns:  n.Columns(),
			Trailing: n.Trailing(),
		}
	}
	return out
}
