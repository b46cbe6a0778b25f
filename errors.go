package dlist

import (
	"github.com/pkg/errors"
)

var (
	// Returned when an iterator is unset, belongs to a different list,
	// rests on a boundary where a value is required, or is moved out of range.
	ErrInvalidIterator = errors.New("invalid iterator")

	// Returned when an element is requested or removed from a list of length 0.
	ErrEmptyContainer = errors.New("empty container")

	// Returned by Sort, Merge and Unique when the list was configured without
	// the comparator they need. See Configure and Ordered.
	ErrNoComparator = errors.New("no comparator configured")
)
