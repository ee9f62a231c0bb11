package vfs

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type txnLock struct {
	mu sync.RWMutex
}

// Snapshot identifies one read transaction over the tree. The tree contents
// are stable for as long as the snapshot's callback runs.
type Snapshot struct {
	id   uuid.UUID
	tree *Tree
}

func (s *Snapshot) ID() string {
	return s.id.String()
}

func (s *Snapshot) Tree() *Tree {
	return s.tree
}

// View runs fn under a shared read lock. Every resolver call is expected to
// execute inside one View, since the host mutates the underlying tree from
// its editing and indexing subsystems.
func (t *Tree) View(ctx context.Context, fn func(ctx context.Context, snap *Snapshot) error) error {
	t.txn.mu.RLock()
	defer t.txn.mu.RUnlock()

	snap := &Snapshot{id: uuid.New(), tree: t}
	zerolog.Ctx(ctx).Trace().Str("snapshot", snap.ID()).Msg("read transaction")
	return fn(ctx, snap)
}

// Update runs fn under the exclusive lock. The resolver core never calls
// this; it is the integration point for the host's editing subsystem.
func (t *Tree) Update(ctx context.Context, fn func(ctx context.Context, tree *Tree) error) error {
	t.txn.mu.Lock()
	defer t.txn.mu.Unlock()

	zerolog.Ctx(ctx).Trace().Msg("write transaction")
	return fn(ctx, t)
}
