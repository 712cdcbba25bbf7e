// Package io provides JSON import and export for day plans.
//
// # Overview
//
// This package serializes a day plan together with its computed layout to
// a simple JSON format, designed for:
//
//   - Feeding the layout to external tools (web views, other renderers)
//   - JSON day files as an alternative input to the YAML schema
//   - Round-tripping: export a day, re-import it, lay it out again
//
// # JSON Format
//
//	{
//	  "day": "2024-03-15",
//	  "events": [
//	    {
//	      "id": "standup",
//	      "title": "Standup",
//	      "start": "09:00",
//	      "minutes": 15,
//	      "layout": {"interval": "09:00-09:15", "index": 0, "columns": 2, "trailing": ["planning"]}
//	    }
//	  ]
//	}
//
// The layout block is written on export and ignored on import: column
// assignments are a function of the events and are recomputed when the
// day is laid out again.
//
// # Import
//
// Use [ImportJSON] to read a day from a file path, or [ReadJSON] to read
// from any io.Reader. Both validate the same constraints as the YAML
// loader in [schedule]: titles and start times are required, durations
// must come from either minutes or an end time, and ids must be unique.
//
// [schedule]: github.com/fcollf/dayplan/pkg/schedule
package io
