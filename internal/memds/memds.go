// Package memds contains thread unsafe generic in-memory containers: a bag, a linked stack,
// a resizing array stack and a linked queue.
package memds

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrUnderflow      = errors.New("underflow")
	ErrStackUnderflow = fmt.Errorf("stack %w", ErrUnderflow)
	ErrQueueUnderflow = fmt.Errorf("queue %w", ErrUnderflow)
)

// joinItems formats the items of seq with the default format and separates them with a space.
func joinItems[T any](seq iter.Seq[T]) string {
	var b strings.Builder
	first := true

	for item := range seq {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, item)
	}
	return b.String()
}
