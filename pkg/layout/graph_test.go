package layout

import (
	"slices"
	"testing"

	"github.com/fcollf/dayplan/pkg/interval"
)

// item is a minimal layout.Item for tests.
type item struct {
	id   string
	span interval.Interval
}

func (i item) ItemID() string          { return i.id }
func (i item) Span() interval.Interval { return i.span }

func span(lower, upper int) interval.Interval { return interval.New(lower, upper) }

// testingT is the subset of testing.T shared with rapid.T, letting the
// invariant helpers serve both regular and property-based tests.
type testingT interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// checkInvariants verifies the structural invariants that must hold after
// every completed command: mirrored adjacency and 0 <= index < columns.
func checkInvariants(t testingT, g *Graph) {
	t.Helper()
	for id, n := range g.nodes {
		if n.index < 0 || n.index >= n.columns {
			t.Errorf("node %s: index %d out of range for %d columns", id, n.index, n.columns)
		}
		for lid := range n.leading {
			l := g.nodes[lid]
			if l == nil {
				t.Errorf("node %s: leading edge to missing node %s", id, lid)
				continue
			}
			if _, ok := l.trailing[id]; !ok {
				t.Errorf("node %s: leading edge to %s is not mirrored", id, lid)
			}
		}
		for tid := range n.trailing {
			tr := g.nodes[tid]
			if tr == nil {
				t.Errorf("node %s: trailing edge to missing node %s", id, tid)
				continue
			}
			if _, ok := tr.leading[id]; !ok {
				t.Errorf("node %s: trailing edge to %s is not mirrored", id, tid)
			}
		}
	}
}

// placement asserts a node's column assignment.
func placement(t testingT, g *Graph, id string, index, columns int) {
	t.Helper()
	n := g.Node(id)
	if n == nil {
		t.Fatalf("node %s not found", id)
	}
	if n.Index() != index || n.Columns() != columns {
		t.Errorf("node %s: placement %d/%d, want %d/%d", id, n.Index(), n.Columns(), index, columns)
	}
}

func TestAdd_SingleNode(t *testing.T) {
	g := New()

	changed := g.Add(item{"a", span(0, 60)})

	if !slices.Contains(changed, "a") {
		t.Errorf("Add() changed = %v, want to contain a", changed)
	}
	placement(t, g, "a", 0, 1)
	checkInvariants(t, g)
}

func TestAdd_DuplicateIsNoop(t *testing.T) {
	g := New()
	g.Add(item{"a", span(0, 60)})

	if changed := g.Add(item{"a", span(30, 90)}); changed != nil {
		t.Errorf("duplicate Add() changed = %v, want nil", changed)
	}
	if got := g.Node("a").Span(); got != span(0, 60) {
		t.Errorf("duplicate Add() rewrote span to %v", got)
	}
}

func TestAdd_EmptyIDIsNoop(t *testing.T) {
	g := New()
	if changed := g.Add(item{"", span(0, 60)}); changed != nil {
		t.Errorf("Add() with empty ID changed = %v, want nil", changed)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
}

func TestAdd_TwoOverlapping(t *testing.T) {
	g := New()
	g.Add(item{"x", span(0, 60)})
	g.Add(item{"y", span(30, 90)})

	placement(t, g, "x", 0, 2)
	placement(t, g, "y", 1, 2)
	checkInvariants(t, g)
}

func TestAdd_DisjointStayIndependent(t *testing.T) {
	g := New()
	g.Add(item{"a", span(0, 60)})
	g.Add(item{"b", span(60, 120)}) // touching endpoints do not overlap

	placement(t, g, "a", 0, 1)
	placement(t, g, "b", 0, 1)
	checkInvariants(t, g)
}

func TestRemove(t *testing.T) {
	g := New()
	g.Add(item{"x", span(0, 60)})
	g.Add(item{"y", span(30, 90)})

	changed := g.Remove("y")

	if !slices.Contains(changed, "y") {
		t.Errorf("Remove() changed = %v, want to contain y", changed)
	}
	if g.Node("y") != nil {
		t.Error("node y still in arena after Remove")
	}
	placement(t, g, "x", 0, 1)
	checkInvariants(t, g)
}

func TestRemove_UnknownIsNoop(t *testing.T) {
	g := New()
	if changed := g.Remove("ghost"); changed != nil {
		t.Errorf("Remove(unknown) changed = %v, want nil", changed)
	}
}

func TestOverlaps_SelfIsNone(t *testing.T) {
	g := New()
	g.Add(item{"a", span(0, 60)})

	n := g.Node("a")
	if got := n.Overlaps(n); got != interval.PositionNone {
		t.Errorf("Overlaps(self) = %v, want none", got)
	}
	if got := n.Overlaps(nil); got != interval.PositionNone {
		t.Errorf("Overlaps(nil) = %v, want none", got)
	}
}

func TestOrder_SortsByLowerThenDuration(t *testing.T) {
	g := New()
	g.Reconcile([]Item{
		item{"short", span(540, 570)},
		item{"late", span(600, 660)},
		item{"long", span(540, 660)}, // same start as short, longer
		item{"early", span(480, 540)},
	})

	want := []string{"early", "long", "short", "late"}
	if got := g.Order(); !slices.Equal(got, want) {
		t.Errorf("Order() = %v, want %v", got, want)
	}
}
