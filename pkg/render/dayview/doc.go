// Package dayview renders a laid-out day plan as an SVG planner: an hour
// grid with one rounded block per event, where overlapping events share
// the horizontal space according to the column assignment computed by the
// layout graph.
//
// The renderer consumes only the layout core's outputs - interval, column
// index, and column count per node - plus the opaque display strings from
// the schedule. Geometry is the renderer's own concern; the core never
// sees pixels.
package dayview
