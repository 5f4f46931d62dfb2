package memds

import "iter"

// node is an element of a singly linked chain, the last node of a chain has a nil next.
type node[T any] struct {
	item T
	next *node[T]
}

// LinkedIterator iterates over a chain of nodes, starting from the node that was the head
// when the iterator was created. Mutating the container during the iteration is not supported.
type LinkedIterator[T any] struct {
	index   int
	next    *node[T]
	current *node[T]
}

func newLinkedIterator[T any](first *node[T]) *LinkedIterator[T] {
	return &LinkedIterator[T]{
		index: -1,
		next:  first,
	}
}

// Next moves the iterator to the next item, it returns false if there are no more items.
func (it *LinkedIterator[T]) Next() bool {
	if it.next == nil {
		return false
	}
	it.current = it.next
	it.next = it.next.next
	it.index++
	return true
}

// Value returns the current item, it panics if Next has not returned true.
func (it *LinkedIterator[T]) Value() T {
	return it.current.item
}

func (it *LinkedIterator[T]) Index() int {
	return it.index
}

func chainSeq[T any](first *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := first; x != nil; x = x.next {
			if !yield(x.item) {
				return
			}
		}
	}
}

func chainValues[T any](first *node[T], n int) []T {
	values := make([]T, 0, n)
	for x := first; x != nil; x = x.next {
		values = append(values, x.item)
	}
	return values
}

// chainLength counts the nodes reachable from first, it stops counting after limit+1 nodes
// so that a corrupted (cyclic) chain does not loop forever.
func chainLength[T any](first *node[T], limit int) int {
	count := 0
	for x := first; x != nil && count <= limit; x = x.next {
		count++
	}
	return count
}
