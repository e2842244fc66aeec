// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "sync"

// ResetNotifier announces device resets to interested parties.
//
// A device reset means the host's GPU resources were invalidated (mode
// change, device loss recovery) and render targets must be reallocated.
// Subscribers receive the signal on a channel rather than through
// ambient event wiring, so the subscription is explicit and can be
// cancelled during teardown.
type ResetNotifier interface {
	// Subscribe registers a new subscriber. The returned channel carries
	// one element per reset; cancel removes the subscription and must be
	// safe to call more than once.
	Subscribe() (resets <-chan struct{}, cancel func())
}

// ResetSignal is the standard ResetNotifier implementation. The host
// calls Notify whenever its graphics device resets.
//
// The zero value is ready to use.
type ResetSignal struct {
	mu   sync.Mutex
	subs map[uint64]chan struct{}
	next uint64
}

// NewResetSignal returns an empty reset signal.
func NewResetSignal() *ResetSignal {
	return &ResetSignal{}
}

// Subscribe implements ResetNotifier.
func (s *ResetSignal) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[uint64]chan struct{})
	}

	id := s.next
	s.next++

	// Buffer of one: consecutive resets before the subscriber polls
	// collapse into a single rebuild, which is all a rebuild needs.
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}

// Notify signals every subscriber that the device has reset. Notify
// never blocks: a subscriber with a pending, unconsumed signal is
// skipped.
func (s *ResetSignal) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (s *ResetSignal) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

var _ ResetNotifier = (*ResetSignal)(nil)
