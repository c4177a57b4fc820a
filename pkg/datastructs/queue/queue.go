package queue

// Queue is a generic interface for bounded FIFO queues.
type Queue[T any] interface {
	// Push adds an item to the queue.
	// Returns true if successful, false if the queue is full.
	Push(item T) bool

	// Pop removes and returns the oldest item from the queue.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	Pop() (T, bool)

	// PopInto swaps the oldest item into *out.
	// Returns false and leaves *out untouched if the queue is empty.
	PopInto(out *T) bool

	// Len returns the number of queued items.
	Len() int

	// Cap returns the declared capacity of the queue.
	Cap() int
}
