package Queues

// ArrayQueue is a FIFO queue over a circular slice that grows by half when full.
// The zero value is an empty queue.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

func New[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

// resize to newLen>=sz, moving the content to the front.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head, u.tail = nc, 0, u.sz
	if u.tail == newLen {
		u.tail = 0
	}
}

// Shrink the backing slice to the current size.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz)
}

func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(max(u.sz*3/2, u.sz+1))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

// Pop the oldest item. Fails with *EmptyQueueError when the queue is empty.
func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

// Peek at the oldest item without removing it.
func (u *ArrayQueue[T]) Peek() (T, bool) {
	if u.Empty() {
		return *new(T), false
	}
	return u.content[u.head], true
}
