package layout

// Propagation turns graph topology into column assignments. For a node,
// leadingDepth is the longest chain reachable through leading edges and
// trailingDepth the longest through trailing edges; the node then occupies
// column leadingDepth out of 1+leadingDepth+trailingDepth total. Depths
// are a property of the whole connected cluster, so every pass runs to
// completion over its clusters - there is no partial update.

// node DFS states for the iterative depth computation.
const (
	stateUnvisited = iota
	stateOpen
	stateDone
)

// propagate finalizes Index and Columns for every node reachable from the
// given roots through trailing edges, and returns the IDs of nodes whose
// assignment changed. Each node is finalized once per pass; a visited set
// guards against re-entrant topologies.
func (g *Graph) propagate(roots []string) []string {
	lead := g.depths(directionLeading)
	trail := g.depths(directionTrailing)

	changed := newChangeSet()
	visited := make(map[string]struct{}, len(g.nodes))
	queue := append([]string(nil), roots...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		n := g.nodes[id]
		if n == nil {
			continue
		}
		index := lead[id]
		columns := 1 + lead[id] + trail[id]
		if n.index != index || n.columns != columns {
			n.index = index
			n.columns = columns
			changed.add(id)
		}
		queue = append(queue, sortedIDs(n.trailing)...)
	}
	return changed.sorted()
}

// roots returns every node with no leading neighbors, in sorted order.
// These are the starting points of a full propagation pass.
func (g *Graph) roots() []string {
	var roots []string
	for _, id := range g.sortedNodeIDs() {
		if len(g.nodes[id].leading) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// rootsFrom walks backward from the given nodes through leading edges
// until no further predecessor exists and returns the roots found. The
// walk is breadth-first with a visited set, so it terminates even on a
// re-entrant graph; a node trapped in a cycle with no true root simply
// contributes nothing.
func (g *Graph) rootsFrom(ids ...string) []string {
	roots := newChangeSet()
	visited := make(map[string]struct{})
	queue := append([]string(nil), ids...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		n := g.nodes[id]
		if n == nil {
			continue
		}
		if len(n.leading) == 0 {
			roots.add(id)
			continue
		}
		queue = append(queue, sortedIDs(n.leading)...)
	}
	return roots.sorted()
}

// depths computes the chain depth of every node on the given side:
// 0 for a node with no neighbors there, otherwise one past the deepest
// neighbor. The traversal is a post-order depth-first walk over an
// explicit stack; a neighbor still open on the stack belongs to a cycle
// and contributes no depth, bounding the walk to one visit per node.
func (g *Graph) depths(dir direction) map[string]int {
	state := make(map[string]int, len(g.nodes))
	depth := make(map[string]int, len(g.nodes))

	for _, start := range g.sortedNodeIDs() {
		if state[start] != stateUnvisited {
			continue
		}
		stack := []string{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			n := g.nodes[id]
			switch state[id] {
			case stateUnvisited:
				state[id] = stateOpen
				for _, nb := range sortedIDs(dir.neighbors(n)) {
					if state[nb] == stateUnvisited && g.nodes[nb] != nil {
						stack = append(stack, nb)
					}
				}
			case stateOpen:
				d := 0
				for nb := range dir.neighbors(n) {
					if state[nb] != stateDone {
						continue
					}
					if nd := depth[nb] + 1; nd > d {
						d = nd
					}
				}
				depth[id] = d
				state[id] = stateDone
				stack = stack[:len(stack)-1]
			default:
				stack = stack[:len(stack)-1]
			}
		}
	}
	return depth
}
