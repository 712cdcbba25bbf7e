package layout

import "github.com/fcollf/dayplan/pkg/interval"

// Detach removes the node with the given ID from the graph topology
// without deleting it from the arena. Leading/trailing pairs that still
// intersect are bridged directly, so chains that only ran through the
// detached node keep their connectivity and depth accounting. Affected
// clusters are then re-propagated from their roots.
//
// The detached node itself reverts to an unconnected placement (index 0,
// one column). Detaching an unknown or already-detached node is a no-op.
// It returns the IDs of nodes whose placement changed.
func (g *Graph) Detach(id string) []string {
	n := g.nodes[id]
	if n == nil || (len(n.leading) == 0 && len(n.trailing) == 0) {
		return nil
	}

	leading := sortedIDs(n.leading)
	trailing := sortedIDs(n.trailing)

	// Bridge the gap the node leaves behind: every leading/trailing pair
	// that still overlaps gets a direct edge.
	for _, lid := range leading {
		l := g.nodes[lid]
		if l == nil {
			continue
		}
		for _, tid := range trailing {
			t := g.nodes[tid]
			if t == nil || lid == tid {
				continue
			}
			if l.span.Classify(t.span) == interval.PositionTrailing {
				link(l, t)
			}
		}
	}

	for _, lid := range leading {
		if l := g.nodes[lid]; l != nil {
			unlink(l, n)
		}
	}
	for _, tid := range trailing {
		if t := g.nodes[tid]; t != nil {
			unlink(n, t)
		}
	}

	changed := newChangeSet()
	if n.index != 0 || n.columns != 1 {
		changed.add(id)
	}
	n.reset()

	affected := append(append([]string(nil), leading...), trailing...)
	changed.merge(g.propagate(g.rootsFrom(affected...)))
	return changed.sorted()
}

// Update rewrites the node's interval to [lower, upper) after fully
// detaching it, and leaves it unplaced for the caller to reconnect. An
// upper bound at or below lower is clamped to the last minute of the day.
// Updating an unknown ID is a no-op. It returns the IDs of nodes whose
// placement changed.
//
// There is no incremental path for temporal mutation: every time change
// is detach-then-reinsert. Use [Graph.Reschedule] to do both in one call.
func (g *Graph) Update(id string, lower, upper int) []string {
	n := g.nodes[id]
	if n == nil {
		return nil
	}
	changed := newChangeSet()
	changed.merge(g.Detach(id))
	if span := interval.New(lower, upper); span != n.span {
		n.span = span
		changed.add(id)
	}
	return changed.sorted()
}

// Move rewrites the node's start minute while keeping its duration, then
// leaves it unplaced like [Graph.Update].
func (g *Graph) Move(id string, lower int) []string {
	n := g.nodes[id]
	if n == nil {
		return nil
	}
	return g.Update(id, lower, lower+n.span.Duration())
}

// Reschedule is the complete time-change path: detach, rewrite the
// interval, and re-place the node against the current graph. It returns
// the IDs of all nodes whose placement changed and refreshes the display
// order.
func (g *Graph) Reschedule(id string, lower, upper int) []string {
	if g.nodes[id] == nil {
		return nil
	}
	changed := newChangeSet()
	changed.merge(g.Update(id, lower, upper))
	changed.merge(g.place(id))
	g.refreshOrder()
	return changed.sorted()
}
