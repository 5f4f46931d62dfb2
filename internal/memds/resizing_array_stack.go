package memds

import "iter"

const (
	INIT_CAPACITY = 8
)

// thread unsafe LIFO stack backed by a resizing array: the array is doubled when it is full
// and halved when it is one-quarter full. Push and Pop take constant amortized time,
// Size, Peek and IsEmpty take constant time.
type ResizingArrayStack[T any] struct {
	items []T //len(items) is the capacity
	n     int

	onResize func(oldCapacity, newCapacity int)
}

type ResizingArrayStackConfig[T any] struct {
	//defaults to INIT_CAPACITY if zero or negative.
	InitialCapacity int

	//optional, called after each growth or shrink of the underlying array.
	OnResize func(oldCapacity, newCapacity int)
}

func NewResizingArrayStack[T any]() *ResizingArrayStack[T] {
	return &ResizingArrayStack[T]{
		items: make([]T, INIT_CAPACITY),
	}
}

func NewResizingArrayStackWithConfig[T any](config ResizingArrayStackConfig[T]) *ResizingArrayStack[T] {
	capacity := config.InitialCapacity
	if capacity <= 0 {
		capacity = INIT_CAPACITY
	}

	return &ResizingArrayStack[T]{
		items:    make([]T, capacity),
		onResize: config.OnResize,
	}
}

// IsEmpty returns true if the stack does not contain any item.
func (s *ResizingArrayStack[T]) IsEmpty() bool {
	return s.n == 0
}

// Size returns the number of items in the stack.
func (s *ResizingArrayStack[T]) Size() int {
	return s.n
}

// Cap returns the capacity of the underlying array.
func (s *ResizingArrayStack[T]) Cap() int {
	return len(s.items)
}

func (s *ResizingArrayStack[T]) resize(capacity int) {
	if capacity < s.n {
		panic("new capacity is less than the item count")
	}
	oldCapacity := len(s.items)

	items := make([]T, capacity)
	copy(items, s.items[:s.n])
	s.items = items

	if s.onResize != nil {
		s.onResize(oldCapacity, capacity)
	}
}

// Push adds an item on top of the stack, the underlying array is doubled if it is full.
func (s *ResizingArrayStack[T]) Push(item T) {
	if s.n == len(s.items) {
		s.resize(2 * len(s.items))
	}
	s.items[s.n] = item
	s.n++
}

// Pop removes the item on top of the stack and returns it, ErrStackUnderflow is returned if the stack is empty.
// The underlying array is halved if it becomes one-quarter full.
func (s *ResizingArrayStack[T]) Pop() (item T, err error) {
	if s.IsEmpty() {
		err = ErrStackUnderflow
		return
	}
	var zero T

	item = s.items[s.n-1]
	s.items[s.n-1] = zero //do not retain the item
	s.n--

	if s.n > 0 && s.n == len(s.items)/4 {
		s.resize(len(s.items) / 2)
	}
	return item, nil
}

// Peek returns the item on top of the stack without removing it, ErrStackUnderflow is returned if the stack is empty.
func (s *ResizingArrayStack[T]) Peek() (item T, err error) {
	if s.IsEmpty() {
		err = ErrStackUnderflow
		return
	}
	return s.items[s.n-1], nil
}

// Iterator returns an iterator over the items of the stack in LIFO order.
func (s *ResizingArrayStack[T]) Iterator() *ReverseArrayIterator[T] {
	return &ReverseArrayIterator[T]{
		items: s.items[:s.n],
		i:     s.n,
	}
}

// All returns a sequence of the items in LIFO order.
func (s *ResizingArrayStack[T]) All() iter.Seq[T] {
	items := s.items[:s.n]

	return func(yield func(T) bool) {
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// Values returns all the items of the stack in LIFO order.
func (s *ResizingArrayStack[T]) Values() []T {
	values := make([]T, 0, s.n)
	for i := s.n - 1; i >= 0; i-- {
		values = append(values, s.items[i])
	}
	return values
}

// String returns the items in LIFO order, separated by spaces.
func (s *ResizingArrayStack[T]) String() string {
	return joinItems(s.All())
}

// ReverseArrayIterator iterates over the items of a ResizingArrayStack from the top to the bottom,
// the items present when the iterator was created are visited. Mutating the stack during the iteration
// is not supported.
type ReverseArrayIterator[T any] struct {
	items []T
	i     int
}

// Next moves the iterator to the next item, it returns false if there are no more items.
func (it *ReverseArrayIterator[T]) Next() bool {
	if it.i <= 0 {
		return false
	}
	it.i--
	return true
}

func (it *ReverseArrayIterator[T]) Value() T {
	return it.items[it.i]
}

// Index returns the number of items visited before the current one.
func (it *ReverseArrayIterator[T]) Index() int {
	return len(it.items) - 1 - it.i
}
