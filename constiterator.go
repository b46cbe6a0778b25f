package dlist

import (
	"github.com/pkg/errors"
)

// The read-only counterpart of Iterator: same traversal and validity rules,
// no way to modify the element. Built by ConstBegin, ConstEnd or
// Iterator.Const().
type ConstIterator[T any] struct {
	current *node[T]
	list    *List[T]
}

func (it *ConstIterator[T]) Next() error {
	if it.current == nil || it.current == it.list.tail {
		return errors.WithMessage(ErrInvalidIterator, "Next")
	}
	it.current = it.current.next
	return nil
}

func (it *ConstIterator[T]) Prev() error {
	if it.current == nil || it.current == it.list.head.next {
		return errors.WithMessage(ErrInvalidIterator, "Prev")
	}
	it.current = it.current.prev
	return nil
}

func (it ConstIterator[T]) Value() (T, error) {
	if it.current == nil || it.current == it.list.head || it.current == it.list.tail {
		var zero T
		return zero, errors.WithMessage(ErrInvalidIterator, "Value")
	}
	return it.current.value, nil
}

// Equality is by node identity, exactly as for Iterator; compare across the
// two variants with Iterator.Const().
func (it ConstIterator[T]) Equal(rhs ConstIterator[T]) bool {
	return it.current == rhs.current
}
