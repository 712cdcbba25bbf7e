package layout

import (
	"slices"
	"testing"
)

func TestDetach_DisjointNeighborsRevert(t *testing.T) {
	g := New()
	for _, it := range chainItems() {
		g.Add(it)
	}

	// a and c do not overlap, so removing the middle of the chain must
	// not bridge them; both revert to a single column.
	changed := g.Detach("b")

	for _, id := range []string{"a", "b", "c"} {
		if !slices.Contains(changed, id) {
			t.Errorf("Detach() changed = %v, want to contain %s", changed, id)
		}
	}
	placement(t, g, "a", 0, 1)
	placement(t, g, "b", 0, 1)
	placement(t, g, "c", 0, 1)
	if len(g.Node("a").Trailing()) != 0 {
		t.Errorf("a still has trailing edges: %v", g.Node("a").Trailing())
	}
	checkInvariants(t, g)
}

func TestDetach_BridgesOverlappingNeighbors(t *testing.T) {
	g := New()
	g.Add(item{"a", span(0, 100)})
	g.Add(item{"b", span(30, 90)})
	g.Add(item{"c", span(60, 120)})

	g.Detach("b")

	// a and c still overlap, so the chain is stitched around b.
	if got := g.Node("a").Trailing(); !slices.Contains(got, "c") {
		t.Errorf("a.Trailing() = %v, want to contain c", got)
	}
	placement(t, g, "a", 0, 2)
	placement(t, g, "c", 1, 2)
	placement(t, g, "b", 0, 1)
	checkInvariants(t, g)
}

func TestDetach_AlreadyDetachedIsNoop(t *testing.T) {
	g := New()
	g.Add(item{"a", span(0, 60)})

	if changed := g.Detach("a"); changed != nil {
		t.Errorf("Detach(detached) changed = %v, want nil", changed)
	}
	if changed := g.Detach("ghost"); changed != nil {
		t.Errorf("Detach(unknown) changed = %v, want nil", changed)
	}
}

func TestUpdate_LeavesNodeUnplaced(t *testing.T) {
	g := New()
	g.Add(item{"x", span(0, 60)})
	g.Add(item{"y", span(30, 90)})

	g.Update("y", 300, 360)

	n := g.Node("y")
	if got := n.Span(); got != span(300, 360) {
		t.Errorf("Span() = %v, want %v", got, span(300, 360))
	}
	if len(n.Leading())+len(n.Trailing()) != 0 {
		t.Error("updated node still has edges")
	}
	placement(t, g, "x", 0, 1)
	checkInvariants(t, g)
}

func TestUpdate_ClampsInvertedEnd(t *testing.T) {
	g := New()
	g.Add(item{"x", span(600, 660)})

	g.Update("x", 600, 570)

	if got := g.Node("x").Span(); got != span(600, 570) {
		// span() applies the same constructor clamp, so the comparison
		// holds exactly when Update clamped the end to 23:59.
		t.Errorf("Span() = %v, want clamped %v", got, span(600, 570))
	}
}

func TestMove_KeepsDuration(t *testing.T) {
	g := New()
	g.Add(item{"x", span(600, 660)})

	g.Move("x", 300)

	if got := g.Node("x").Span(); got != span(300, 360) {
		t.Errorf("Span() = %v, want %v", got, span(300, 360))
	}
}

func TestReschedule_RepairsLayout(t *testing.T) {
	g := New()
	g.Add(item{"x", span(0, 60)})
	g.Add(item{"y", span(30, 90)})
	g.Add(item{"z", span(600, 660)})

	// Move y away from x and onto z.
	changed := g.Reschedule("y", 630, 690)

	for _, id := range []string{"x", "y", "z"} {
		if !slices.Contains(changed, id) {
			t.Errorf("Reschedule() changed = %v, want to contain %s", changed, id)
		}
	}
	placement(t, g, "x", 0, 1)
	placement(t, g, "z", 0, 2)
	placement(t, g, "y", 1, 2)
	checkInvariants(t, g)
}

func TestReschedule_UnknownIsNoop(t *testing.T) {
	g := New()
	if changed := g.Reschedule("ghost", 0, 60); changed != nil {
		t.Errorf("Reschedule(unknown) changed = %v, want nil", changed)
	}
}
