// Package search implements binary search over sorted integer slices.
package search

import (
	"golang.org/x/exp/constraints"
)

const (
	NOT_FOUND = -1
)

// IndexOf returns the index of key in a, or NOT_FOUND if a does not contain key.
// a should be sorted in ascending order, the result is unspecified otherwise.
// If several elements are equal to key the returned index is one of theirs, the same one for the same input.
func IndexOf[I constraints.Integer](a []I, key I) int {
	lo := 0
	hi := len(a) - 1

	for lo <= hi {
		//key is in a[lo..hi] or not present.
		mid := lo + (hi-lo)/2

		switch {
		case key < a[mid]:
			hi = mid - 1
		case key > a[mid]:
			lo = mid + 1
		default:
			return mid
		}
	}
	return NOT_FOUND
}

// Contains reports whether the sorted slice a contains key.
func Contains[I constraints.Integer](a []I, key I) bool {
	return IndexOf(a, key) != NOT_FOUND
}
