package queue

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/ringqueue/pkg/settings"
)

var _ Queue[int] = (*Ring[int])(nil)

// MinCapacity is the smallest capacity a Ring can be constructed with.
// One slot is always kept free, so a Ring of capacity 2 holds one item.
const MinCapacity = 2

// ErrInvalidCapacity is returned when a Ring is requested with fewer than MinCapacity slots.
var ErrInvalidCapacity = errors.New("ring capacity must be at least 2")

// Ring is a fixed-capacity circular queue.
//
// A Ring of capacity N holds at most N-1 items: the slot in front of the
// read cursor is never written, so read == write always means empty.
// Storage is allocated once at construction and never grows.
//
// Ring is not safe for concurrent use. Wrap it with Locked when several
// goroutines share one queue.
type Ring[T any] struct {
	buf   []T
	read  int // next slot to pop
	write int // next slot to push
}

// New creates a Ring with exactly capacity slots.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity < MinCapacity {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &Ring[T]{buf: make([]T, capacity)}, nil
}

// MustNew is like New but panics if capacity is invalid.
func MustNew[T any](capacity int) *Ring[T] {
	r, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return r
}

// NewFromSettings creates a Ring sized by cfg.Capacity.
func NewFromSettings[T any](cfg settings.Queue) (*Ring[T], error) {
	return New[T](cfg.Capacity)
}

// NewOver creates a Ring backed by storage, usually a slice of a fixed-size
// array owned by the caller. The Ring does not allocate storage of its own.
// Existing contents of storage are cleared.
func NewOver[T any](storage []T) (*Ring[T], error) {
	if len(storage) < MinCapacity {
		return nil, errors.Wrapf(ErrInvalidCapacity, "storage length %d", len(storage))
	}
	clear(storage)
	return &Ring[T]{buf: storage}, nil
}

// Clone returns a Ring with its own copy of the storage and the same cursors.
// Copying the struct directly would share storage with r.
func (r *Ring[T]) Clone() *Ring[T] {
	c := &Ring[T]{read: r.read, write: r.write}
	if r.buf != nil {
		c.buf = make([]T, len(r.buf))
		copy(c.buf, r.buf)
	}
	return c
}

// incWrap returns (n + 1) mod Cap().
func (r *Ring[T]) incWrap(n int) int {
	n++
	if n == len(r.buf) {
		n = 0
	}
	return n
}

// Push stores item at the tail. Returns false without touching the queue if it is full.
func (r *Ring[T]) Push(item T) bool {
	if len(r.buf) < MinCapacity {
		return false
	}
	next := r.incWrap(r.write)
	if next == r.read {
		return false
	}
	r.buf[r.write] = item
	r.write = next
	return true
}

// Pop removes and returns the oldest item.
// The vacated slot is reset to the zero value.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.read == r.write {
		return zero, false
	}
	item := r.buf[r.read]
	r.buf[r.read] = zero
	r.read = r.incWrap(r.read)
	return item, true
}

// PopInto exchanges *out with the oldest item, so the previous value of *out
// becomes the placeholder of the vacated slot. A nil out discards the item.
func (r *Ring[T]) PopInto(out *T) bool {
	if r.read == r.write {
		return false
	}
	if out == nil {
		var zero T
		r.buf[r.read] = zero
	} else {
		*out, r.buf[r.read] = r.buf[r.read], *out
	}
	r.read = r.incWrap(r.read)
	return true
}

// Len returns the number of queued items.
func (r *Ring[T]) Len() int {
	n := r.write - r.read
	if n < 0 {
		n += len(r.buf)
	}
	return n
}

// Cap returns the number of slots. The Ring holds at most Cap()-1 items.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Free returns how many more items can be pushed before the Ring is full.
func (r *Ring[T]) Free() int {
	if len(r.buf) == 0 {
		return 0
	}
	return len(r.buf) - 1 - r.Len()
}

// IsEmpty reports whether the Ring holds no items.
func (r *Ring[T]) IsEmpty() bool { return r.read == r.write }

// IsFull reports whether the next Push would fail.
func (r *Ring[T]) IsFull() bool { return r.Free() == 0 }

// Clear drops every queued item and rewinds both cursors.
func (r *Ring[T]) Clear() {
	var zero T
	for r.read != r.write {
		r.buf[r.read] = zero
		r.read = r.incWrap(r.read)
	}
	r.read, r.write = 0, 0
}
