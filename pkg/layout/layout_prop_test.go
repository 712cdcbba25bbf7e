package layout

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// drawItems generates a small random day of items with stable ids.
func drawItems(t *rapid.T) []Item {
	count := rapid.IntRange(0, 8).Draw(t, "count")
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		lower := rapid.IntRange(0, 1380).Draw(t, fmt.Sprintf("lower%d", i))
		duration := rapid.IntRange(15, 180).Draw(t, fmt.Sprintf("duration%d", i))
		items = append(items, item{
			id:   fmt.Sprintf("e%d", i),
			span: span(lower, lower+duration),
		})
	}
	return items
}

func TestReconcile_InvariantsHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New()
		g.Reconcile(drawItems(t))
		checkInvariants(t, g)

		// Display order is sorted by lower bound, then duration descending.
		order := g.Order()
		for i := 1; i < len(order); i++ {
			prev, cur := g.Node(order[i-1]).Span(), g.Node(order[i]).Span()
			if prev.Lower > cur.Lower {
				t.Errorf("order violates lower-bound sort at %d: %v before %v", i, prev, cur)
			}
			if prev.Lower == cur.Lower && prev.Duration() < cur.Duration() {
				t.Errorf("order violates duration tiebreak at %d: %v before %v", i, prev, cur)
			}
		}
	})
}

func TestReconcile_IdempotentUnderPermutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := drawItems(t)
		g := New()
		g.Reconcile(items)
		before := snapshot(g)

		// The same collection in any order must be a structural no-op.
		permuted := rapid.Permutation(items).Draw(t, "permuted")
		if changed := g.Reconcile(permuted); changed != nil {
			t.Errorf("re-reconcile changed %v", changed)
		}
		after := snapshot(g)
		for i := range before {
			if i < len(after) && before[i] != after[i] {
				t.Errorf("state drifted: %q -> %q", before[i], after[i])
			}
		}
	})
}

func TestMutationSequence_InvariantsHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New()
		items := drawItems(t)
		for _, it := range items {
			g.Add(it)
		}

		steps := rapid.IntRange(0, 12).Draw(t, "steps")
		for s := 0; s < steps; s++ {
			if g.Len() == 0 {
				break
			}
			ids := g.sortedNodeIDs()
			id := rapid.SampledFrom(ids).Draw(t, fmt.Sprintf("target%d", s))
			switch rapid.IntRange(0, 2).Draw(t, fmt.Sprintf("op%d", s)) {
			case 0:
				g.Remove(id)
			case 1:
				lower := rapid.IntRange(0, 1380).Draw(t, fmt.Sprintf("moveLower%d", s))
				duration := rapid.IntRange(15, 180).Draw(t, fmt.Sprintf("moveDur%d", s))
				g.Reschedule(id, lower, lower+duration)
			case 2:
				g.Detach(id)
			}
			checkInvariants(t, g)
		}

		// Emptying the collection always empties the graph.
		g.Reconcile(nil)
		if g.Len() != 0 {
			t.Errorf("graph not empty after reconciling nil: %d nodes", g.Len())
		}
	})
}
