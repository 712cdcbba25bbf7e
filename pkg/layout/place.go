package layout

import "github.com/fcollf/dayplan/pkg/interval"

// Connect attempts to splice the node with the given ID into the graph
// against a single existing node, then re-propagates column assignments if
// an edge was created. It returns the IDs of nodes whose placement
// changed. Unknown IDs, self-connection, and pairs that do not intersect
// in time are all no-ops.
//
// Most callers want [Graph.Add] or [Graph.Reconcile], which try every
// existing node; Connect is the single-node entry point for callers that
// manage candidate selection themselves.
func (g *Graph) Connect(againstID, id string) []string {
	e, n := g.nodes[againstID], g.nodes[id]
	if e == nil || n == nil || e.id == n.id {
		return nil
	}
	if !g.connect(e, n) {
		return nil
	}
	return g.propagate(g.roots())
}

// place runs the full placement pass for node id: it offers the node to
// every existing node in deterministic order, keeping every edge the
// chains will accept, then re-propagates if anything bound. It returns the
// IDs of nodes whose placement changed.
func (g *Graph) place(id string) []string {
	n := g.nodes[id]
	if n == nil {
		return nil
	}
	placed := false
	for _, eid := range g.sortedNodeIDs() {
		if eid == id {
			continue
		}
		e := g.nodes[eid]
		if e.span.Classify(n.span) == interval.PositionNone && n.span.Classify(e.span) == interval.PositionNone {
			continue
		}
		if g.connect(e, n) {
			placed = true
		}
	}
	if !placed {
		return nil
	}
	return g.propagate(g.roots())
}

// connect tries the two independent placements of n against the existing
// node e - leading and trailing - and reports whether either bound an
// edge. The existing node's classification is authoritative; only when it
// sees no relation at all is the pair retried from n's bookkeeping, which
// covers intersections the asymmetric classification only detects from
// one side (trying both sides unconditionally would give identical
// intervals a mutual edge). Propagation is the caller's responsibility.
func (g *Graph) connect(e, n *Node) bool {
	lead := g.push(e, n, directionLeading)
	trail := g.push(e, n, directionTrailing)
	if lead || trail {
		return true
	}
	lead = g.push(n, e, directionLeading)
	trail = g.push(n, e, directionTrailing)
	return lead || trail
}

// direction selects which side of the graph a placement walks.
type direction int

const (
	directionLeading direction = iota
	directionTrailing
)

// accepts reports whether e will take n on the given side: the
// classification of n relative to e must name that side, and a node never
// accepts itself.
func (d direction) accepts(e, n *Node) bool {
	if e.id == n.id {
		return false
	}
	switch d {
	case directionLeading:
		return e.span.Classify(n.span) == interval.PositionLeading
	default:
		return e.span.Classify(n.span) == interval.PositionTrailing
	}
}

// neighbors returns e's adjacency set on the given side.
func (d direction) neighbors(e *Node) map[string]struct{} {
	if d == directionLeading {
		return e.leading
	}
	return e.trailing
}

// bind records the edge between e and n on the given side, mirroring it
// into both nodes.
func (d direction) bind(e, n *Node) {
	if d == directionLeading {
		link(n, e)
		return
	}
	link(e, n)
}

// pushFrame is one level of the edge-seeking walk in push. children is a
// snapshot of the current node's same-side neighbors; accepted records
// whether any of them took the new node.
type pushFrame struct {
	node     *Node
	children []string
	next     int
	accepted bool
}

// push inserts n as far toward the graph's edge as the chains starting at
// e will carry it: before binding n to a node, every same-side neighbor
// that also accepts n is tried first, so n nests behind (or ahead of)
// existing chains instead of opening a new parallel branch. Only nodes
// whose neighbors all reject n bind it directly.
//
// The walk is a depth-first traversal over an explicit frame stack with a
// visited set, so shared predecessors are offered the node once and an
// accidental cycle cannot recurse unboundedly. It reports whether n was
// bound anywhere.
func (g *Graph) push(e, n *Node, dir direction) bool {
	if !dir.accepts(e, n) {
		return false
	}
	visited := map[string]struct{}{e.id: {}}
	stack := []*pushFrame{{node: e, children: sortedIDs(dir.neighbors(e))}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next < len(f.children) {
			cid := f.children[f.next]
			f.next++
			c := g.nodes[cid]
			if c == nil {
				continue
			}
			if _, seen := visited[cid]; seen {
				// Already offered through another path; it still counts
				// as an accepting neighbor if the classification holds.
				if dir.accepts(c, n) {
					f.accepted = true
				}
				continue
			}
			visited[cid] = struct{}{}
			if dir.accepts(c, n) {
				stack = append(stack, &pushFrame{node: c, children: sortedIDs(dir.neighbors(c))})
			}
			continue
		}
		stack = stack[:len(stack)-1]
		if !f.accepted {
			dir.bind(f.node, n)
		}
		if len(stack) > 0 {
			stack[len(stack)-1].accepted = true
		}
	}
	return true
}
