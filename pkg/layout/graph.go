package layout

import (
	"slices"

	"github.com/fcollf/dayplan/pkg/interval"
)

// Graph is the arena owning every node of the overlap layout, keyed by
// item ID, together with a cached display order. All structural edits go
// through the command methods, which run to completion before returning
// and report the IDs of nodes whose Index or Columns changed.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes map[string]*Node
	order []string // display order: Lower ascending, duration descending
}

// New creates an empty overlap graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node for the given item ID, or nil if no such node
// exists. The returned node stays owned by the graph; callers read its
// accessors and must not retain it across removals.
func (g *Graph) Node(id string) *Node { return g.nodes[id] }

// Nodes returns all nodes in display order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		if n, ok := g.nodes[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Order returns the cached display order as a list of item IDs: interval
// lower bound ascending, ties broken by duration descending. The order is
// refreshed after every reconciliation pass.
func (g *Graph) Order() []string {
	return slices.Clone(g.order)
}

// Add creates a node for the item, places it against the current graph,
// and refreshes the display order. It returns the IDs of all nodes whose
// placement changed, including the new node's. Adding an item whose ID is
// empty or already present is a no-op.
func (g *Graph) Add(item Item) []string {
	id := item.ItemID()
	if id == "" {
		return nil
	}
	if _, exists := g.nodes[id]; exists {
		return nil
	}
	changed := newChangeSet()
	g.add(id, item.Span(), changed)
	g.refreshOrder()
	return changed.sorted()
}

// Remove detaches the node for the given item ID, deletes it from the
// arena, and refreshes the display order. Removing an unknown ID is a
// no-op. The removed node's ID is included in the returned change set.
func (g *Graph) Remove(id string) []string {
	if _, ok := g.nodes[id]; !ok {
		return nil
	}
	changed := newChangeSet()
	g.remove(id, changed)
	g.refreshOrder()
	return changed.sorted()
}

// add creates and places a node, recording placement changes in changed.
// The caller is responsible for refreshing the display order.
func (g *Graph) add(id string, span interval.Interval, changed changeSet) {
	g.nodes[id] = newNode(id, span)
	g.order = append(g.order, id)
	changed.add(id)
	changed.merge(g.place(id))
}

// remove detaches and deletes a node, recording affected neighbors.
// The caller is responsible for refreshing the display order.
func (g *Graph) remove(id string, changed changeSet) {
	changed.merge(g.Detach(id))
	changed.add(id)
	delete(g.nodes, id)
	g.order = slices.DeleteFunc(g.order, func(s string) bool { return s == id })
}

// link records lead as a leading neighbor of trail, mirroring the edge
// into both adjacency sets. Linking an already-connected pair, or a node
// to itself, is a no-op.
func link(lead, trail *Node) {
	if lead.id == trail.id {
		return
	}
	trail.leading[lead.id] = struct{}{}
	lead.trailing[trail.id] = struct{}{}
}

// unlink removes the lead->trail edge from both adjacency sets.
func unlink(lead, trail *Node) {
	delete(trail.leading, lead.id)
	delete(lead.trailing, trail.id)
}

// refreshOrder rebuilds the cached display order: lower bound ascending,
// duration descending. The sort is stable so nodes untouched by an edit
// keep their relative positions.
func (g *Graph) refreshOrder() {
	slices.SortStableFunc(g.order, func(a, b string) int {
		na, nb := g.nodes[a], g.nodes[b]
		if c := na.span.Lower - nb.span.Lower; c != 0 {
			return c
		}
		return nb.span.Duration() - na.span.Duration()
	})
}

// sortedNodeIDs returns every arena key in sorted order, giving commands a
// deterministic iteration sequence over the node map.
func (g *Graph) sortedNodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// changeSet accumulates the IDs of nodes touched by a command.
type changeSet map[string]struct{}

func newChangeSet() changeSet { return make(changeSet) }

func (c changeSet) add(id string) { c[id] = struct{}{} }

func (c changeSet) merge(ids []string) {
	for _, id := range ids {
		c[id] = struct{}{}
	}
}

// sorted returns the accumulated IDs in sorted order, or nil when the
// command changed nothing.
func (c changeSet) sorted() []string {
	if len(c) == 0 {
		return nil
	}
	return sortedIDs(c)
}
