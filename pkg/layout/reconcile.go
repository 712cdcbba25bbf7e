package layout

// Reconcile synchronizes the arena against a freshly supplied external
// item collection and returns the IDs of all nodes whose placement
// changed (including removed node IDs).
//
// The pass runs three phases to completion:
//
//  1. Nodes whose ID is absent from the collection are detached, with
//     their chains bridged, and deleted from the arena.
//  2. Nodes whose item interval moved since the last pass are routed
//     through the detach-then-reinsert path.
//  3. Items not yet in the arena get a node and a full placement pass.
//
// The display order is refreshed at the end: interval lower bound
// ascending, ties by duration descending, stable across passes so
// untouched nodes keep their relative positions. Reconciling twice with
// the same collection is idempotent; the second pass changes nothing and
// returns nil. Items with an empty ID are skipped.
func (g *Graph) Reconcile(items []Item) []string {
	present := make(map[string]Item, len(items))
	for _, item := range items {
		if id := item.ItemID(); id != "" {
			present[id] = item
		}
	}

	changed := newChangeSet()

	for _, id := range g.sortedNodeIDs() {
		if _, keep := present[id]; !keep {
			g.remove(id, changed)
		}
	}

	for _, id := range g.sortedNodeIDs() {
		item := present[id]
		if span := item.Span(); span != g.nodes[id].span {
			changed.merge(g.Update(id, span.Lower, span.Upper))
			changed.merge(g.place(id))
		}
	}

	for _, item := range items {
		id := item.ItemID()
		if id == "" {
			continue
		}
		if _, exists := g.nodes[id]; exists {
			continue
		}
		g.add(id, item.Span(), changed)
	}

	g.refreshOrder()
	return changed.sorted()
}
