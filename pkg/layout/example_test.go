package layout_test

import (
	"fmt"

	"github.com/fcollf/dayplan/pkg/interval"
	"github.com/fcollf/dayplan/pkg/layout"
)

// event is a minimal layout.Item used by the examples.
type event struct {
	id   string
	span interval.Interval
}

func (e event) ItemID() string          { return e.id }
func (e event) Span() interval.Interval { return e.span }

func ExampleGraph_basic() {
	// Two overlapping events share the day column by column.
	g := layout.New()
	g.Add(event{"standup", interval.New(540, 600)})  // 09:00-10:00
	g.Add(event{"planning", interval.New(570, 660)}) // 09:30-11:00

	for _, id := range g.Order() {
		n := g.Node(id)
		fmt.Printf("%s: column %d of %d\n", id, n.Index()+1, n.Columns())
	}
	// Output:
	// standup: column 1 of 2
	// planning: column 2 of 2
}

func ExampleGraph_Reconcile() {
	// Reconcile drives the graph toward an external collection.
	g := layout.New()
	g.Reconcile([]layout.Item{
		event{"a", interval.New(0, 60)},
		event{"b", interval.New(30, 90)},
	})

	// A second pass with the same collection is a no-op.
	changed := g.Reconcile([]layout.Item{
		event{"b", interval.New(30, 90)},
		event{"a", interval.New(0, 60)},
	})
	fmt.Println("nodes:", g.Len())
	fmt.Println("changed:", changed)
	// Output:
	// nodes: 2
	// changed: []
}

func ExampleGraph_Detach() {
	g := layout.New()
	g.Add(event{"a", interval.New(0, 60)})
	g.Add(event{"b", interval.New(30, 90)})

	// Detaching frees the neighbor to reclaim the full width.
	g.Detach("b")
	fmt.Println("a columns:", g.Node("a").Columns())
	fmt.Println("b columns:", g.Node("b").Columns())
	// Output:
	// a columns: 1
	// b columns: 1
}
