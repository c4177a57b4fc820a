package queue

import (
	"sync"

	"github.com/huynhanx03/ringqueue/pkg/settings"
)

var _ Queue[int] = (*Locked[int])(nil)

// Locked guards a Ring with a mutex so several goroutines can share it.
// Operations never block on queue state: Push still fails when full and
// Pop still reports absence when empty.
type Locked[T any] struct {
	mu   sync.Mutex
	ring *Ring[T]
}

// NewLocked creates a Locked queue with the given capacity.
func NewLocked[T any](capacity int) (*Locked[T], error) {
	r, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Locked[T]{ring: r}, nil
}

// NewLockedFromSettings creates a Locked queue sized by cfg.Capacity.
func NewLockedFromSettings[T any](cfg settings.Queue) (*Locked[T], error) {
	return NewLocked[T](cfg.Capacity)
}

// Push adds an item. Returns false if the queue is full.
func (l *Locked[T]) Push(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Push(item)
}

// Pop removes and returns the oldest item. Returns false if the queue is empty.
func (l *Locked[T]) Pop() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Pop()
}

// PopInto exchanges *out with the oldest item.
func (l *Locked[T]) PopInto(out *T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.PopInto(out)
}

// PushBatch adds items in order until the queue fills. Returns count pushed.
func (l *Locked[T]) PushBatch(items []T) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, item := range items {
		if !l.ring.Push(item) {
			break
		}
		count++
	}
	return count
}

// PopBatch moves up to len(out) items into out. Returns count popped.
func (l *Locked[T]) PopBatch(out []T) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for i := range out {
		item, ok := l.ring.Pop()
		if !ok {
			break
		}
		out[i] = item
		count++
	}
	return count
}

// Len returns the number of queued items.
func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Len()
}

// Cap returns the declared capacity.
func (l *Locked[T]) Cap() int { return l.ring.Cap() }

// Clear drops every queued item.
func (l *Locked[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ring.Clear()
}
