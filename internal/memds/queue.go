package memds

import (
	"errors"
	"fmt"
	"iter"

	"github.com/inoxlang/memds/internal/utils"
)

// thread unsafe FIFO queue backed by a singly linked list.
// Enqueue, Dequeue, Peek, Size and IsEmpty take constant time.
type Queue[T any] struct {
	first *node[T] //least recently added
	last  *node[T] //most recently added
	n     int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// IsEmpty returns true if the queue does not contain any item.
func (q *Queue[T]) IsEmpty() bool {
	return q.first == nil
}

// Size returns the number of items in the queue.
func (q *Queue[T]) Size() int {
	return q.n
}

// Peek returns the least recently added item without removing it, ErrQueueUnderflow is returned if the queue is empty.
func (q *Queue[T]) Peek() (item T, err error) {
	if q.IsEmpty() {
		err = ErrQueueUnderflow
		return
	}
	return q.first.item, nil
}

// Enqueue adds an item to the end of the queue.
func (q *Queue[T]) Enqueue(item T) {
	oldLast := q.last
	q.last = &node[T]{item: item}

	if q.IsEmpty() {
		q.first = q.last
	} else {
		oldLast.next = q.last
	}
	q.n++
}

// Dequeue removes the least recently added item and returns it, ErrQueueUnderflow is returned if the queue is empty.
func (q *Queue[T]) Dequeue() (item T, err error) {
	if q.IsEmpty() {
		err = ErrQueueUnderflow
		return
	}
	item = q.first.item
	q.first = q.first.next
	q.n--

	if q.IsEmpty() {
		//the last node is no longer part of the queue
		q.last = nil
	}
	return item, nil
}

// Iterator returns an iterator over the items of the queue in FIFO order.
func (q *Queue[T]) Iterator() *LinkedIterator[T] {
	return newLinkedIterator(q.first)
}

// All returns a sequence of the items in FIFO order.
func (q *Queue[T]) All() iter.Seq[T] {
	return chainSeq(q.first)
}

// Values returns all the items of the queue in FIFO order.
func (q *Queue[T]) Values() []T {
	return chainValues(q.first, q.n)
}

// String returns the items in FIFO order, separated by spaces.
func (q *Queue[T]) String() string {
	return joinItems(q.All())
}

func (q *Queue[T]) checkInvariants() error {
	var errs []error

	if q.n < 0 {
		errs = append(errs, fmt.Errorf("negative item count: %d", q.n))
	}

	if q.n == 0 {
		if q.first != nil || q.last != nil {
			errs = append(errs, errors.New("empty queue has a head or a tail"))
		}
		return utils.CombineErrors(errs...)
	}

	if q.first == nil || q.last == nil {
		return fmt.Errorf("queue with %d item(s) has no head or no tail", q.n)
	}

	if q.last.next != nil {
		errs = append(errs, errors.New("tail has a next node"))
	}

	//the tail should be reached in exactly n-1 steps.
	steps := 0
	x := q.first
	for x != q.last && x != nil && steps < q.n {
		x = x.next
		steps++
	}
	if x != q.last || steps != q.n-1 {
		errs = append(errs, fmt.Errorf("tail is not reached in %d step(s) from the head", q.n-1))
	}

	return utils.CombineErrors(errs...)
}
