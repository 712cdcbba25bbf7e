// Package render groups the visual outputs of a laid-out day.
//
// # Overview
//
// Rendering is split by what the output shows:
//
//   - [dayview] draws the planner itself: an SVG hour grid with one block
//     per event, overlapping events sharing the width according to their
//     column assignment.
//   - [nodelink] exports the overlap graph that produced the layout, as
//     Graphviz DOT source or a rendered SVG/PNG diagram.
//
// Both renderers consume a [layout.Graph] and resolve display titles
// through a [schedule.Day]:
//
//	dayview.Render(w, g, day, dayview.Options{})
//
//	dot := nodelink.ToDOT(g, day, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [dayview]: github.com/fcollf/dayplan/pkg/render/dayview
// [nodelink]: github.com/fcollf/dayplan/pkg/render/nodelink
// [layout.Graph]: github.com/fcollf/dayplan/pkg/layout
// [schedule.Day]: github.com/fcollf/dayplan/pkg/schedule
package render
