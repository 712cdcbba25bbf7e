package layout

import (
	"slices"
	"testing"
)

func TestRoots(t *testing.T) {
	g := New()
	for _, it := range chainItems() {
		g.Add(it)
	}
	g.Add(item{"solo", span(600, 660)})

	want := []string{"a", "solo"}
	if got := g.roots(); !slices.Equal(got, want) {
		t.Errorf("roots() = %v, want %v", got, want)
	}
}

func TestRootsFrom(t *testing.T) {
	g := New()
	for _, it := range chainItems() {
		g.Add(it)
	}

	if got := g.rootsFrom("c"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("rootsFrom(c) = %v, want [a]", got)
	}
	if got := g.rootsFrom("ghost"); got != nil {
		t.Errorf("rootsFrom(unknown) = %v, want nil", got)
	}
}

func TestDepths_Chain(t *testing.T) {
	g := New()
	for _, it := range chainItems() {
		g.Add(it)
	}

	lead := g.depths(directionLeading)
	trail := g.depths(directionTrailing)

	wantLead := map[string]int{"a": 0, "b": 1, "c": 2}
	wantTrail := map[string]int{"a": 2, "b": 1, "c": 0}
	for id, want := range wantLead {
		if lead[id] != want {
			t.Errorf("leading depth of %s = %d, want %d", id, lead[id], want)
		}
	}
	for id, want := range wantTrail {
		if trail[id] != want {
			t.Errorf("trailing depth of %s = %d, want %d", id, trail[id], want)
		}
	}
}

// An accidentally-introduced cycle must degrade to each node processed
// once, never to non-termination.
func TestPropagate_ToleratesCycle(t *testing.T) {
	g := New()
	g.Add(item{"a", span(0, 60)})
	g.Add(item{"b", span(30, 90)})

	// Force the invariant violation directly: a and b each lead the other.
	link(g.nodes["b"], g.nodes["a"])

	g.propagate(g.roots()) // must terminate
	g.depths(directionLeading)
	g.depths(directionTrailing)
	if got := g.rootsFrom("a"); got != nil {
		t.Errorf("rootsFrom in a rootless cycle = %v, want nil", got)
	}
}

func TestPropagate_TwoSeparateClusters(t *testing.T) {
	g := New()
	g.Add(item{"m1", span(0, 60)})
	g.Add(item{"m2", span(30, 90)})
	g.Add(item{"e1", span(600, 700)})
	g.Add(item{"e2", span(630, 720)})
	g.Add(item{"e3", span(660, 730)})

	// Clusters are independent: the evening trio does not widen the
	// morning pair.
	placement(t, g, "m1", 0, 2)
	placement(t, g, "m2", 1, 2)
	placement(t, g, "e1", 0, 3)
	placement(t, g, "e2", 1, 3)
	placement(t, g, "e3", 2, 3)
	checkInvariants(t, g)
}
