// Package pkg provides the core libraries for dayplan schedule layout.
//
// # Overview
//
// Dayplan lays out the items of a single-day schedule into side-by-side
// columns, so overlapping events render next to each other instead of
// stacking. The pkg directory is organized by stage:
//
//  1. [interval] - Minute intervals and their overlap classification
//  2. [layout] - The overlap graph, placement, and the reconciler
//  3. [schedule] - Day files: events, YAML loading, sorting
//  4. [io] - JSON import/export of a day and its computed layout
//  5. [render] - SVG day views and Graphviz overlap diagrams
//  6. [buildinfo] - Version metadata injected at build time
//
// # Architecture
//
// The typical data flow:
//
//	day file (YAML/JSON)
//	         ↓
//	schedule.Load → []Event
//	         ↓
//	layout.Graph.Reconcile → per-event column assignment
//	         ↓
//	render (dayview SVG, nodelink DOT/PNG) or io (JSON export)
//
// The layout core never touches files or display concerns: it consumes
// anything implementing [layout.Item] and exposes the computed placement
// through [layout.Node].
//
// [interval]: github.com/fcollf/dayplan/pkg/interval
// [layout]: github.com/fcollf/dayplan/pkg/layout
// [schedule]: github.com/fcollf/dayplan/pkg/schedule
// [io]: github.com/fcollf/dayplan/pkg/io
// [render]: github.com/fcollf/dayplan/pkg/render
// [buildinfo]: github.com/fcollf/dayplan/pkg/buildinfo
// [layout.Item]: github.com/fcollf/dayplan/pkg/layout.Item
// [layout.Node]: github.com/fcollf/dayplan/pkg/layout.Node
package pkg
