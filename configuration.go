package dlist

import (
	"golang.org/x/exp/constraints"
)

type Configuration[T any] struct {
	less  func(a, b T) bool
	equal func(a, b T) bool
}

// Create a configuration with no comparators set. Lists built from it support
// every operation except Sort, Merge and Unique.
func Configure[T any]() *Configuration[T] {
	return &Configuration[T]{}
}

// The strict less-than relation used by Sort and Merge
func (c *Configuration[T]) Less(less func(a, b T) bool) *Configuration[T] {
	c.less = less
	return c
}

// The equality relation used by Unique
func (c *Configuration[T]) Equal(equal func(a, b T) bool) *Configuration[T] {
	c.equal = equal
	return c
}

// A configuration pre-filled with < and == for ordered element types
func Ordered[T constraints.Ordered]() *Configuration[T] {
	return Configure[T]().
		Less(func(a, b T) bool { return a < b }).
		Equal(func(a, b T) bool { return a == b })
}
