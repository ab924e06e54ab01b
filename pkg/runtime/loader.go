package runtime

import (
	"sync/atomic"
)

// Loader of runtime configuration. Every call to Snapshot() returns
// the most recent snapshot. Callers should obtain a snapshot once per
// request and use it for all lookups performed as part of that
// request, so that they observe a consistent view.
type Loader interface {
	Snapshot() Snapshot
}

type staticLoader struct {
	snapshot Snapshot
}

// NewStaticLoader creates a Loader that always returns the same
// snapshot.
func NewStaticLoader(snapshot Snapshot) Loader {
	return staticLoader{
		snapshot: snapshot,
	}
}

func (l staticLoader) Snapshot() Snapshot {
	return l.snapshot
}

type snapshotHolder struct {
	snapshot Snapshot
}

// MutableLoader is a Loader whose snapshot can be replaced at any
// point in time. Replacement is atomic. Requests that already obtained
// a snapshot continue to use it, while subsequent requests observe the
// new one.
type MutableLoader struct {
	current atomic.Pointer[snapshotHolder]
}

var _ Loader = (*MutableLoader)(nil)

// NewMutableLoader creates a MutableLoader that initially returns the
// provided snapshot.
func NewMutableLoader(initial Snapshot) *MutableLoader {
	var l MutableLoader
	l.SetSnapshot(initial)
	return &l
}

// Snapshot returns the snapshot that was provided most recently.
func (l *MutableLoader) Snapshot() Snapshot {
	return l.current.Load().snapshot
}

// SetSnapshot replaces the snapshot returned by the loader.
func (l *MutableLoader) SetSnapshot(snapshot Snapshot) {
	if snapshot == nil {
		snapshot = EmptySnapshot
	}
	l.current.Store(&snapshotHolder{snapshot: snapshot})
}
