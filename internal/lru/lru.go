// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package lru provides a small thread-safe LRU cache used for loaded
// tile textures.
package lru

import "sync"

// Cache is a fixed-capacity LRU cache, safe for concurrent use.
//
// An optional eviction hook observes entries as they fall out. The hook
// runs with the cache lock held; it must not call back into the cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*node[K, V]
	head     *node[K, V] // most recently used
	tail     *node[K, V] // least recently used
	capacity int
	onEvict  func(K, V)
}

// node stores the value intrusively so eviction needs no second lookup.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// New creates a cache holding at most capacity entries. Capacities
// below one are clamped to one. onEvict may be nil.
func New[K comparable, V any](capacity int, onEvict func(K, V)) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		entries:  make(map[K]*node[K, V]),
		capacity: capacity,
		onEvict:  onEvict,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(n)
	return n.value, true
}

// Add inserts or replaces the value for key, evicting the least
// recently used entry if the cache is over capacity. Replacing an
// existing entry does not trigger the eviction hook for the old value.
func (c *Cache[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.value = value
		c.moveToFront(n)
		return
	}

	n := &node[K, V]{key: key, value: value}
	c.entries[key] = n
	c.pushFront(n)

	for len(c.entries) > c.capacity {
		c.evictOldest()
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear evicts every entry, running the hook for each.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.tail != nil {
		c.evictOldest()
	}
}

// evictOldest drops the tail entry. Caller holds c.mu.
func (c *Cache[K, V]) evictOldest() {
	n := c.tail
	if n == nil {
		return
	}
	c.unlink(n)
	delete(c.entries, n.key)
	if c.onEvict != nil {
		c.onEvict(n.key, n.value)
	}
}

// pushFront links n as the head. Caller holds c.mu.
func (c *Cache[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// moveToFront refreshes n's recency. Caller holds c.mu.
func (c *Cache[K, V]) moveToFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

// unlink detaches n from the list. Caller holds c.mu.
func (c *Cache[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
