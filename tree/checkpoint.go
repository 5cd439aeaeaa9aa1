// File: checkpoint.go
// Role: transactional mark/rollback journal over one Tree.
//
// Model:
//   - mark is a counter; each open mark is one level of speculative change.
//   - entries maps a node id to its snapshots keyed by mark. A node is
//     "registered" exactly when it has an entry.
//   - Snapshots are lazy: the first mutation of a node under a mark stores
//     its pre-mutation state for that mark (registering the node if needed).
//     Later mutations under the same mark store nothing.
//   - touched[m] lists the nodes holding a snapshot for mark m, so Rollback
//     costs O(nodes changed under the mark), not O(registered nodes).
//
// Invariant: len(touched) == mark+1, and a node appears in touched[m] iff it
// holds (or held, before Unregister) a snapshot for mark m.

package tree

import "fmt"

// CheckpointStats counts journal activity since the checkpoint was created.
type CheckpointStats struct {
	Marks     int // Mark calls
	Rollbacks int // successful Rollback calls
	Snapshots int // snapshots stored
	Restores  int // snapshots applied by Rollback
}

// Checkpoint journals node mutations of a single Tree so that every change
// made after Mark can be undone by the matching Rollback. Marks nest LIFO.
type Checkpoint struct {
	tree    *Tree
	mark    int
	entries map[ID]map[int]Snapshot
	touched [][]ID
	stats   CheckpointStats
}

// NewCheckpoint attaches a new journal to t. A tree holds at most one
// checkpoint at a time; Close detaches it.
func NewCheckpoint(t *Tree) (*Checkpoint, error) {
	if t == nil {
		return nil, fmt.Errorf("NewCheckpoint: nil tree: %w", ErrNodeOutOfRange)
	}
	if t.log != nil {
		return nil, ErrCheckpointAttached
	}
	cp := &Checkpoint{
		tree:    t,
		entries: make(map[ID]map[int]Snapshot),
		touched: make([][]ID, 1),
	}
	t.log = cp

	return cp, nil
}

// Close detaches the checkpoint from its tree. Pending snapshots are dropped;
// the tree keeps its current state.
func (cp *Checkpoint) Close() {
	if cp.tree != nil && cp.tree.log == cp {
		cp.tree.log = nil
	}
	cp.tree = nil
	cp.entries = make(map[ID]map[int]Snapshot)
	cp.touched = make([][]ID, 1)
	cp.mark = 0
}

// Depth returns the number of open marks.
func (cp *Checkpoint) Depth() int { return cp.mark }

// Pending returns how many nodes are currently registered.
func (cp *Checkpoint) Pending() int { return len(cp.entries) }

// Registered reports whether id has an entry in the journal.
func (cp *Checkpoint) Registered(id ID) bool {
	_, ok := cp.entries[id]

	return ok
}

// Stats returns a copy of the activity counters.
func (cp *Checkpoint) Stats() CheckpointStats { return cp.stats }

// Mark opens a new level. Complexity: O(1).
func (cp *Checkpoint) Mark() {
	cp.mark++
	cp.touched = append(cp.touched, nil)
	cp.stats.Marks++
}

// Register adds id to the journal and snapshots it at the current mark.
// Registering an already registered node is a no-op.
func (cp *Checkpoint) Register(id ID) error {
	if cp.tree == nil || !cp.tree.Has(id) {
		return fmt.Errorf("Register(%s): %w", id, ErrNodeOutOfRange)
	}
	if _, ok := cp.entries[id]; ok {
		return nil
	}
	cp.snapshot(id)

	return nil
}

// Unregister drops id and all of its snapshots; its pending changes will not
// be undone.
func (cp *Checkpoint) Unregister(id ID) {
	delete(cp.entries, id)
}

// Rollback restores every node changed under the current mark to its state
// when the mark was opened (or when it was registered, if later), drops
// nodes left without snapshots and closes the mark.
//
// Complexity: O(nodes changed under the mark · their degree).
func (cp *Checkpoint) Rollback() error {
	if cp.mark == 0 {
		return ErrNoOpenMark
	}

	for _, id := range cp.touched[cp.mark] {
		snaps, ok := cp.entries[id]
		if !ok {
			continue // unregistered meanwhile
		}
		if s, ok := snaps[cp.mark]; ok {
			cp.tree.restore(id, s)
			delete(snaps, cp.mark)
			cp.stats.Restores++
		}
		if len(snaps) == 0 {
			delete(cp.entries, id)
		}
	}

	cp.touched[cp.mark] = nil
	cp.touched = cp.touched[:cp.mark]
	cp.mark--
	cp.stats.Rollbacks++

	return nil
}

// snapshot stores id's current state for the current mark unless one exists.
func (cp *Checkpoint) snapshot(id ID) {
	snaps, ok := cp.entries[id]
	if !ok {
		snaps = make(map[int]Snapshot, 2)
		cp.entries[id] = snaps
	}
	if _, ok = snaps[cp.mark]; ok {
		return
	}
	snaps[cp.mark] = snapshotOf(&cp.tree.nodes[id])
	cp.touched[cp.mark] = append(cp.touched[cp.mark], id)
	cp.stats.Snapshots++
}

// beforeChange is called by every Tree mutator. Outside an open mark there is
// nothing to restore to, so the change passes through unjournaled.
func (cp *Checkpoint) beforeChange(id ID) {
	if cp.mark == 0 {
		return
	}
	cp.snapshot(id)
}
