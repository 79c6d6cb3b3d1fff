package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
)

// EventOp tags the kind of structural change an Event reports.
type EventOp int

const (
	// EventInsert reports a created node.
	EventInsert EventOp = iota
	// EventMove reports a reparented node.
	EventMove
	// EventReorder reports a node repositioned among its siblings.
	EventReorder
	// EventDelete reports a deleted node.
	EventDelete
	// EventData reports replaced node data.
	EventData
)

// Event describes one successful structural change of a guarded tree.
type Event struct {
	Op EventOp
	ID NodeID
}

// Guard wraps a Tree into a single-writer, multi-reader serialization point.
//
// The engine itself performs no locking; Guard adds it on the outside, the
// way a surrounding application would want it: mutations take a write lock,
// queries take a read lock, and every successful mutation is broadcast to
// subscribers. The embedded tree must not be touched directly while the
// guard is in use.
type Guard struct {
	mu   sync.RWMutex
	tree *Tree
	cast *caster.Caster // broadcaster for change events
}

// NewGuard wraps a tree. A nil tree starts a fresh one.
func NewGuard(t *Tree) *Guard {
	if t == nil {
		t = NewTree()
	}
	return &Guard{
		tree: t,
		cast: caster.New(nil),
	}
}

// Subscribe registers a change listener and returns its event channel. The
// channel carries Event values and is closed when ctx is done or the guard
// is closed. capacity is the channel buffer; slow subscribers with a full
// buffer miss events rather than blocking writers.
func (g *Guard) Subscribe(ctx context.Context, capacity uint) (chan any, bool) {
	return g.cast.Sub(ctx, capacity)
}

// Unsubscribe removes a change listener obtained from Subscribe.
func (g *Guard) Unsubscribe(ch chan any) {
	g.cast.Unsub(ch)
}

// Close shuts down event broadcasting and closes all subscriber channels.
func (g *Guard) Close() {
	g.cast.Close()
}

// Insert creates a node under the write lock. See Tree.Insert.
func (g *Guard) Insert(parent, id NodeID, at int) error {
	return g.mutate(Event{Op: EventInsert, ID: id}, func(t *Tree) error {
		return t.Insert(parent, id, at)
	})
}

// Append creates a node as a last child under the write lock. See Tree.Append.
func (g *Guard) Append(parent, id NodeID) error {
	return g.mutate(Event{Op: EventInsert, ID: id}, func(t *Tree) error {
		return t.Append(parent, id)
	})
}

// Move reparents a node under the write lock. See Tree.Move.
func (g *Guard) Move(id, parent NodeID, at int) error {
	return g.mutate(Event{Op: EventMove, ID: id}, func(t *Tree) error {
		return t.Move(id, parent, at)
	})
}

// MoveBefore moves a node in front of an anchor under the write lock.
func (g *Guard) MoveBefore(id, anchor NodeID) error {
	return g.mutate(Event{Op: EventMove, ID: id}, func(t *Tree) error {
		return t.MoveBefore(id, anchor)
	})
}

// MoveAfter moves a node behind an anchor under the write lock.
func (g *Guard) MoveAfter(id, anchor NodeID) error {
	return g.mutate(Event{Op: EventMove, ID: id}, func(t *Tree) error {
		return t.MoveAfter(id, anchor)
	})
}

// Reorder repositions a node among its siblings under the write lock.
func (g *Guard) Reorder(id NodeID, at int) error {
	return g.mutate(Event{Op: EventReorder, ID: id}, func(t *Tree) error {
		return t.Reorder(id, at)
	})
}

// Delete removes a node under the write lock. See Tree.Delete.
func (g *Guard) Delete(id NodeID, strategy DeleteStrategy) error {
	return g.mutate(Event{Op: EventDelete, ID: id}, func(t *Tree) error {
		return t.Delete(id, strategy)
	})
}

// SetData replaces a node's data under the write lock.
func (g *Guard) SetData(id NodeID, data map[string]any) error {
	return g.mutate(Event{Op: EventData, ID: id}, func(t *Tree) error {
		return t.SetData(id, data)
	})
}

// View runs a read-only callback on the tree under the read lock. The
// callback must not mutate the tree and must not let it escape.
func (g *Guard) View(f func(*Tree)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	f(g.tree)
}

// Has reports node existence under the read lock.
func (g *Guard) Has(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Has(id)
}

// Children returns the ordered children of a node under the read lock.
func (g *Guard) Children(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Children(id)
}

// Export flattens the tree under the read lock. See Tree.Export.
func (g *Guard) Export() map[string]map[string]any {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Export()
}

func (g *Guard) mutate(ev Event, f func(*Tree) error) error {
	g.mu.Lock()
	err := f(g.tree)
	g.mu.Unlock()
	if err == nil {
		g.cast.Pub(ev)
	}
	return err
}
