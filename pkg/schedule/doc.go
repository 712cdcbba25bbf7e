// Package schedule models the external item collection fed to the layout
// reconciler: a single day of titled events with wall-clock start times
// and durations in minutes.
//
// Events are usually loaded from a YAML day file with [LoadFile]:
//
//	day: 2026-08-26
//	events:
//	  - id: standup
//	    title: Standup
//	    subtitle: Zoom
//	    start: "09:30"
//	    minutes: 15
//	  - title: Lunch
//	    start: "12:00"
//	    end: "12:45"
//
// Events without an id are assigned a random UUID at load time, so
// hand-written day files need none; edits that should reconcile
// incrementally across reloads want stable ids, though.
//
// [Event] implements layout.Item, so a loaded day plugs straight into
// layout.Graph.Reconcile. Each event's interval is fixed at construction
// from the explicit day boundary; an end at or before the start clamps to
// 23:59, matching the layout core's single-day rule.
package schedule
