package dlist

import (
	"github.com/pkg/errors"
)

// A cursor addressing one position in a List. The zero value is unset and
// fails every operation. Iterators come from Begin, End, Insert and Erase;
// they never own the node they address and go stale once it is erased.
type Iterator[T any] struct {
	current *node[T]
	list    *List[T]
}

// Advance to the next position. End() cannot advance.
func (it *Iterator[T]) Next() error {
	if it.current == nil || it.current == it.list.tail {
		return errors.WithMessage(ErrInvalidIterator, "Next")
	}
	it.current = it.current.next
	return nil
}

// Retreat to the previous position. Begin() cannot retreat.
func (it *Iterator[T]) Prev() error {
	if it.current == nil || it.current == it.list.head.next {
		return errors.WithMessage(ErrInvalidIterator, "Prev")
	}
	it.current = it.current.prev
	return nil
}

// The value at the current position. Fails on an unset iterator and on either
// sentinel, End() included.
func (it Iterator[T]) Value() (T, error) {
	if it.current == nil || it.current == it.list.head || it.current == it.list.tail {
		var zero T
		return zero, errors.WithMessage(ErrInvalidIterator, "Value")
	}
	return it.current.value, nil
}

// A pointer to the stored value, for reading or updating fields in place.
// Same validity rules as Value.
func (it Iterator[T]) Ref() (*T, error) {
	if it.current == nil || it.current == it.list.head || it.current == it.list.tail {
		return nil, errors.WithMessage(ErrInvalidIterator, "Ref")
	}
	return &it.current.value, nil
}

// Overwrite the value at the current position. Same validity rules as Value.
func (it Iterator[T]) Set(value T) error {
	if it.current == nil || it.current == it.list.head || it.current == it.list.tail {
		return errors.WithMessage(ErrInvalidIterator, "Set")
	}
	it.current.value = value
	return nil
}

// Two iterators are equal when they address the same node; the owning list is
// not part of the comparison.
func (it Iterator[T]) Equal(rhs Iterator[T]) bool {
	return it.current == rhs.current
}

// A read-only view of the same position
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{current: it.current, list: it.list}
}
