package dlist

type node[T any] struct {
	prev  *node[T]
	next  *node[T]
	value T
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

// A sentinel bounds the chain and never carries a caller's value; its value
// field stays zero and is never exposed through the API.
func newSentinel[T any]() *node[T] {
	return &node[T]{}
}
