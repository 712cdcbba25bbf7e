// Package layout maintains the overlap graph that turns a day's scheduled
// items into side-by-side columns.
//
// # Overview
//
// Items that overlap in time must render next to each other instead of
// stacking. The package keeps one [Node] per item in a flat arena owned by
// [Graph], linked through two mirrored adjacency sets: leading (nodes that
// appear before this one) and trailing (nodes that appear after). From that
// topology each node derives a zero-based column [Node.Index] and the total
// [Node.Columns] its overlap cluster needs.
//
// The problem is interval-graph coloring with incremental maintenance:
// items are added, removed, moved, and resized at runtime, and the graph is
// repaired around each edit instead of being rebuilt from scratch.
//
// # Commands
//
// All mutation goes through explicit commands that run to completion and
// return the IDs of nodes whose derived fields changed, leaving it to the
// caller to decide how to react:
//
//   - [Graph.Add] inserts one item and places it.
//   - [Graph.Detach] unlinks a node, bridging the chains around it.
//   - [Graph.Update] rewrites a node's interval and leaves it unplaced.
//   - [Graph.Reschedule] is the detach-then-reinsert path for time changes.
//   - [Graph.Reconcile] synchronizes the arena with an external collection.
//
// Placement pushes a new node as far toward the leading or trailing edge of
// the existing chains as any node will accept it, keeping the column count
// minimal. After every structural change a full propagation pass walks each
// cluster from its roots and reassigns Index and Columns; depth values are
// a property of the whole cluster, so there is no partial update path.
//
// # Edges as ID sets
//
// Two nodes can each be reachable from the other through leading/trailing
// chains, so edges are stored as non-owning ID sets resolved through the
// arena rather than as pointers between nodes. All traversals use explicit
// worklists with visited sets; an accidental cycle degrades to "each node
// processed once" instead of non-termination.
//
// # Concurrency
//
// A Graph is not safe for concurrent use without external synchronization.
// Mutating commands leave the arena in transiently inconsistent states
// while they run, so callers on multiple goroutines must serialize all
// calls, reads included, behind a single lock.
package layout
