package store

import "sync"

// subscriberBuffer is the channel buffer per subscriber. A subscriber that
// falls this many snapshots behind starts missing updates.
const subscriberBuffer = 8

// SnapshotStore is an in-memory implementation of [Store].
//
// SnapshotStore holds exactly one snapshot at a time. Replace swaps it
// wholesale under a write lock, so a concurrent reader either sees the
// previous tick's complete snapshot or the new one — never a torn mix.
// The writer is never blocked behind a reader beyond that swap.
type SnapshotStore struct {
	mu      sync.RWMutex
	current Snapshot

	subMu       sync.RWMutex
	subscribers map[chan Snapshot]struct{}
}

// NewSnapshotStore creates an empty [SnapshotStore].
//
// Current returns the empty snapshot until the first Replace.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		subscribers: make(map[chan Snapshot]struct{}),
	}
}

// Replace atomically swaps in a new snapshot and notifies all subscribers.
func (s *SnapshotStore) Replace(snap Snapshot) {
	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	s.notifySubscribers(snap)
}

// Current returns the latest snapshot.
//
// The outcomes slice is copied; callers may not mutate stored state.
func (s *SnapshotStore) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := Snapshot{TakenAt: s.current.TakenAt}
	if s.current.Outcomes != nil {
		cp.Outcomes = make([]Outcome, len(s.current.Outcomes))
		copy(cp.Outcomes, s.current.Outcomes)
	}
	return cp
}

// Subscribe creates a new subscription and returns a channel receiving
// each published snapshot.
//
// Caller must call [SnapshotStore.Unsubscribe] when done to prevent
// resource leaks.
func (s *SnapshotStore) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, subscriberBuffer)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
//
// After calling Unsubscribe the channel is closed and receives nothing
// further. Safe to call multiple times or with an unknown channel.
func (s *SnapshotStore) Unsubscribe(ch <-chan Snapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for subCh := range s.subscribers {
		if subCh == ch {
			delete(s.subscribers, subCh)
			close(subCh)
			break
		}
	}
}

// notifySubscribers sends the snapshot to all active subscribers.
//
// Sends are non-blocking: a subscriber whose buffer is full misses this
// snapshot rather than blocking the publish path.
func (s *SnapshotStore) notifySubscribers(snap Snapshot) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()

	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// subscriber is slow, drop the snapshot
		}
	}
}
