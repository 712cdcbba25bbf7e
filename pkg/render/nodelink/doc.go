// Package nodelink renders the overlap graph as a traditional node-link
// diagram.
//
// # Overview
//
// The day view shows the result of the layout; this package shows the
// topology that produced it. Each scheduled item appears as a box, and an
// arrow from A to B means B trails A in the visual layout (B is in A's
// trailing set). It is primarily a debugging surface for inspecting how
// placement and propagation shaped the graph.
//
// # Usage
//
// Convert a graph to DOT source, then render it:
//
//	dot := nodelink.ToDOT(g, day, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tooling. In-process rendering uses [github.com/goccy/go-graphviz].
package nodelink
