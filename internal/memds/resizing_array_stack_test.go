package memds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resizeEvent struct {
	oldCapacity, newCapacity int
}

func newRecordingStack[T any]() (*ResizingArrayStack[T], *[]resizeEvent) {
	var events []resizeEvent

	s := NewResizingArrayStackWithConfig(ResizingArrayStackConfig[T]{
		OnResize: func(oldCapacity, newCapacity int) {
			events = append(events, resizeEvent{oldCapacity, newCapacity})
		},
	})
	return s, &events
}

func TestResizingArrayStack(t *testing.T) {
	s := NewResizingArrayStack[int]()
	assert.Zero(t, s.Size())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, INIT_CAPACITY, s.Cap())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Size())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, []int{3, 2, 1}, s.Values())
	assert.Equal(t, "3 2 1", s.String())

	top, err := s.Peek()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 3, top)

	for _, expected := range []int{3, 2, 1} {
		item, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, expected, item)
	}
	assert.True(t, s.IsEmpty())
}

func TestResizingArrayStackUnderflow(t *testing.T) {
	s := NewResizingArrayStack[*int]()

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrUnderflow)
	assert.ErrorIs(t, err, ErrStackUnderflow)

	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrUnderflow)

	//nil is a legitimate item.
	s.Push(nil)
	item, err := s.Pop()
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestResizingArrayStackResizing(t *testing.T) {

	t.Run("growth", func(t *testing.T) {
		s, events := newRecordingStack[int]()

		for i := 0; i < INIT_CAPACITY; i++ {
			s.Push(i)
		}
		assert.Empty(t, *events)
		assert.Equal(t, INIT_CAPACITY, s.Cap())

		s.Push(INIT_CAPACITY)
		assert.Equal(t, []resizeEvent{{8, 16}}, *events)
		assert.Equal(t, 16, s.Cap())
		assert.Equal(t, 9, s.Size())
	})

	t.Run("shrink", func(t *testing.T) {
		s, events := newRecordingStack[int]()
		for i := 0; i < 9; i++ {
			s.Push(i)
		}

		//9 -> 5 items, no shrink.
		for i := 0; i < 4; i++ {
			s.Pop()
		}
		assert.Len(t, *events, 1)
		assert.Equal(t, 16, s.Cap())

		//4 items = capacity/4
		s.Pop()
		assert.Equal(t, 4, s.Size())
		assert.Equal(t, []resizeEvent{{8, 16}, {16, 8}}, *events)
		assert.Equal(t, 8, s.Cap())

		s.Pop()
		assert.Len(t, *events, 2)

		//2 items = capacity/4
		s.Pop()
		assert.Equal(t, 2, s.Size())
		assert.Equal(t, []resizeEvent{{8, 16}, {16, 8}, {8, 4}}, *events)
		assert.Equal(t, 4, s.Cap())
	})

	t.Run("no shrink when the stack becomes empty", func(t *testing.T) {
		s, events := newRecordingStack[int]()
		s.Push(1)
		s.Pop()

		assert.Empty(t, *events)
		assert.Equal(t, INIT_CAPACITY, s.Cap())
	})

	t.Run("no thrashing at the boundary", func(t *testing.T) {
		s, events := newRecordingStack[int]()
		for i := 0; i < 9; i++ {
			s.Push(i)
		}
		*events = nil

		for i := 0; i < 10; i++ {
			s.Pop()
			s.Push(i)
		}
		assert.Empty(t, *events)
	})

	t.Run("popped slots are cleared", func(t *testing.T) {
		s := NewResizingArrayStack[*int]()
		v := 3
		s.Push(&v)
		s.Push(&v)
		s.Pop()

		assert.Nil(t, s.items[1])
		assert.NotNil(t, s.items[0])
	})

	t.Run("custom initial capacity", func(t *testing.T) {
		s := NewResizingArrayStackWithConfig(ResizingArrayStackConfig[int]{InitialCapacity: 1})
		assert.Equal(t, 1, s.Cap())

		s.Push(1)
		s.Push(2)
		s.Push(3)
		assert.Equal(t, 4, s.Cap())
		assert.Equal(t, []int{3, 2, 1}, s.Values())
	})

	t.Run("invalid initial capacity", func(t *testing.T) {
		s := NewResizingArrayStackWithConfig(ResizingArrayStackConfig[int]{InitialCapacity: -2})
		assert.Equal(t, INIT_CAPACITY, s.Cap())
	})
}

func TestReverseArrayIterator(t *testing.T) {

	t.Run("empty", func(t *testing.T) {
		s := NewResizingArrayStack[int]()
		it := s.Iterator()

		assert.False(t, it.Next())
		assert.False(t, it.Next())
	})

	t.Run("two elements", func(t *testing.T) {
		s := NewResizingArrayStack[int]()
		s.Push(1)
		s.Push(2)
		it := s.Iterator()

		assert.True(t, it.Next())
		assert.Equal(t, 2, it.Value())
		assert.Equal(t, 0, it.Index())

		assert.True(t, it.Next())
		assert.Equal(t, 1, it.Value())
		assert.Equal(t, 1, it.Index())

		assert.False(t, it.Next())
	})

	t.Run("state at creation time", func(t *testing.T) {
		s := NewResizingArrayStack[int]()
		s.Push(1)
		it := s.Iterator()
		seq := s.All()

		s.Push(2)

		assert.True(t, it.Next())
		assert.Equal(t, 1, it.Value())
		assert.False(t, it.Next())

		var items []int
		for item := range seq {
			items = append(items, item)
		}
		assert.Equal(t, []int{1}, items)

		items = nil
		for item := range s.All() {
			items = append(items, item)
		}
		assert.Equal(t, []int{2, 1}, items)
	})
}
