package layout

import (
	"slices"

	"github.com/fcollf/dayplan/pkg/interval"
)

// Item is the capability contract the graph requires from an external
// scheduled item: a stable identity and the minute range it occupies.
// The graph never interprets anything else about the item; titles,
// colors, and other display data stay with the caller.
type Item interface {
	// ItemID returns the stable identity of the item. Items with an
	// empty ID are ignored by [Graph.Reconcile].
	ItemID() string

	// Span returns the item's interval on the day timeline.
	Span() interval.Interval
}

// Node is one vertex of the overlap graph, wrapping a single item's
// interval and identity. Nodes are created and owned exclusively by a
// [Graph]; the leading and trailing sets hold neighbor IDs, never
// references, and are kept mirrored: if A is in B's leading set then B is
// in A's trailing set.
//
// The zero value is not usable - nodes are obtained from [Graph.Node] or
// [Graph.Nodes] after being created through [Graph.Add] or
// [Graph.Reconcile].
type Node struct {
	id   string
	span interval.Interval

	leading  map[string]struct{} // IDs of nodes that appear before this one
	trailing map[string]struct{} // IDs of nodes that appear after this one

	index   int // assigned column, 0-based
	columns int // total columns needed by this node's cluster
}

func newNode(id string, span interval.Interval) *Node {
	return &Node{
		id:       id,
		span:     span,
		leading:  make(map[string]struct{}),
		trailing: make(map[string]struct{}),
		columns:  1,
	}
}

// ID returns the node's stable identity.
func (n *Node) ID() string { return n.id }

// Span returns the node's current interval.
func (n *Node) Span() interval.Interval { return n.span }

// Index returns the zero-based column this node occupies. The invariant
// 0 <= Index < Columns holds after every completed command.
func (n *Node) Index() int { return n.index }

// Columns returns the total column count required by the connected
// cluster containing this node. A node with no overlaps reports 1.
func (n *Node) Columns() int { return n.columns }

// Leading returns the IDs of the node's leading neighbors in sorted order.
func (n *Node) Leading() []string { return sortedIDs(n.leading) }

// Trailing returns the IDs of the node's trailing neighbors in sorted order.
func (n *Node) Trailing() []string { return sortedIDs(n.trailing) }

// Overlaps answers where other sits relative to this node in the visual
// layout. Comparing a node with itself (or with nil) always yields
// [interval.PositionNone]; a node never links to itself.
func (n *Node) Overlaps(other *Node) interval.Position {
	if other == nil || other.id == n.id {
		return interval.PositionNone
	}
	return n.span.Classify(other.span)
}

// reset clears all adjacency and derived placement, returning the node to
// the state of a freshly created, unconnected vertex.
func (n *Node) reset() {
	clear(n.leading)
	clear(n.trailing)
	n.index = 0
	n.columns = 1
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
