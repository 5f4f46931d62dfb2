package memds

import (
	"errors"
	"fmt"
	"iter"

	"github.com/inoxlang/memds/internal/utils"
)

// thread unsafe LIFO stack backed by a singly linked list, the head of the list is the top of the stack.
// Push, Pop, Peek, Size and IsEmpty take constant time.
type LinkedStack[T any] struct {
	first *node[T]
	n     int
}

func NewLinkedStack[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// IsEmpty returns true if the stack does not contain any item.
func (s *LinkedStack[T]) IsEmpty() bool {
	return s.first == nil
}

// Size returns the number of items in the stack.
func (s *LinkedStack[T]) Size() int {
	return s.n
}

// Push adds an item on top of the stack.
func (s *LinkedStack[T]) Push(item T) {
	s.first = &node[T]{item: item, next: s.first}
	s.n++
}

// Pop removes the item on top of the stack and returns it, ErrStackUnderflow is returned if the stack is empty.
func (s *LinkedStack[T]) Pop() (item T, err error) {
	if s.IsEmpty() {
		err = ErrStackUnderflow
		return
	}
	item = s.first.item
	s.first = s.first.next
	s.n--
	return item, nil
}

// Peek returns the item on top of the stack without removing it, ErrStackUnderflow is returned if the stack is empty.
func (s *LinkedStack[T]) Peek() (item T, err error) {
	if s.IsEmpty() {
		err = ErrStackUnderflow
		return
	}
	return s.first.item, nil
}

// Iterator returns an iterator over the items of the stack in LIFO order.
func (s *LinkedStack[T]) Iterator() *LinkedIterator[T] {
	return newLinkedIterator(s.first)
}

// All returns a sequence of the items in LIFO order.
func (s *LinkedStack[T]) All() iter.Seq[T] {
	return chainSeq(s.first)
}

// Values returns all the items of the stack in LIFO order.
func (s *LinkedStack[T]) Values() []T {
	return chainValues(s.first, s.n)
}

// String returns the items in LIFO order, separated by spaces.
func (s *LinkedStack[T]) String() string {
	return joinItems(s.All())
}

// checkInvariants checks that the item count is consistent with the linked list.
func (s *LinkedStack[T]) checkInvariants() error {
	var errs []error

	if s.n < 0 {
		errs = append(errs, fmt.Errorf("negative item count: %d", s.n))
	}
	if (s.n == 0) != (s.first == nil) {
		errs = append(errs, errors.New("item count and emptiness of the linked list disagree"))
	}
	if length := chainLength(s.first, s.n); length != s.n {
		errs = append(errs, fmt.Errorf("linked list has %d node(s) but the item count is %d", length, s.n))
	}

	return utils.CombineErrors(errs...)
}
