package memds

import "iter"

// thread unsafe bag (multiset) backed by a singly linked list, items cannot be removed.
type Bag[T any] struct {
	first *node[T]
	n     int
}

func NewBag[T any]() *Bag[T] {
	return &Bag[T]{}
}

// IsEmpty returns true if the bag does not contain any item.
func (b *Bag[T]) IsEmpty() bool {
	return b.first == nil
}

// Size returns the number of items in the bag.
func (b *Bag[T]) Size() int {
	return b.n
}

// Add adds an item to the bag, duplicates are allowed.
func (b *Bag[T]) Add(item T) {
	b.first = &node[T]{item: item, next: b.first}
	b.n++
}

// Iterator returns an iterator over the items of the bag, the most recently added item comes first.
func (b *Bag[T]) Iterator() *LinkedIterator[T] {
	return newLinkedIterator(b.first)
}

// All returns a sequence of the items in the same order as Iterator.
func (b *Bag[T]) All() iter.Seq[T] {
	return chainSeq(b.first)
}

// Values returns all the items of the bag, the most recently added item comes first.
func (b *Bag[T]) Values() []T {
	return chainValues(b.first, b.n)
}

func (b *Bag[T]) String() string {
	return joinItems(b.All())
}
