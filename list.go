// A doubly-linked sequence container with iterator addressing and
// node-splicing algorithms
package dlist

import (
	"github.com/pkg/errors"
)

type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int

	less  func(a, b T) bool
	equal func(a, b T) bool
}

// Create a new list with the specified configuration
// See dlist.Configure() and dlist.Ordered() for creating a configuration
func New[T any](config *Configuration[T]) *List[T] {
	l := &List[T]{
		head: newSentinel[T](),
		tail: newSentinel[T](),
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	if config != nil {
		l.less = config.less
		l.equal = config.equal
	}
	return l
}

// Attach the detached node n before pos and grow the list. pos is never the
// head sentinel. This and unlink are the only code that rewires links.
func (l *List[T]) linkBefore(pos, n *node[T]) *node[T] {
	n.prev = pos.prev
	n.next = pos
	pos.prev.next = n
	pos.prev = n
	l.size++
	return n
}

// Detach the linked node n (never a sentinel) and shrink the list. The node
// keeps its value; the caller either drops it or relinks it elsewhere.
func (l *List[T]) unlink(n *node[T]) *node[T] {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.size--
	return n
}

func (l *List[T]) Empty() bool {
	return l.size == 0
}

func (l *List[T]) Len() int {
	return l.size
}

// The first value. Fails with ErrEmptyContainer when the list holds nothing.
func (l *List[T]) Front() (T, error) {
	if l.Empty() {
		var zero T
		return zero, errors.WithMessage(ErrEmptyContainer, "Front")
	}
	return l.head.next.value, nil
}

// The last value. Fails with ErrEmptyContainer when the list holds nothing.
func (l *List[T]) Back() (T, error) {
	if l.Empty() {
		var zero T
		return zero, errors.WithMessage(ErrEmptyContainer, "Back")
	}
	return l.tail.prev.value, nil
}

// An iterator at the first element, or equal to End() when the list is empty
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{current: l.head.next, list: l}
}

// The one-past-the-end iterator. It addresses the tail sentinel and can be
// used as an insertion position but never dereferenced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{current: l.tail, list: l}
}

func (l *List[T]) ConstBegin() ConstIterator[T] {
	return ConstIterator[T]{current: l.head.next, list: l}
}

func (l *List[T]) ConstEnd() ConstIterator[T] {
	return ConstIterator[T]{current: l.tail, list: l}
}

// Insert value before pos (pos may be End()). Returns an iterator to the
// inserted value. Fails with ErrInvalidIterator when pos is unset or belongs
// to a different list.
func (l *List[T]) Insert(pos Iterator[T], value T) (Iterator[T], error) {
	if pos.list != l || pos.current == nil {
		return Iterator[T]{}, errors.WithMessage(ErrInvalidIterator, "Insert")
	}
	n := l.linkBefore(pos.current, newNode(value))
	return Iterator[T]{current: n, list: l}, nil
}

// Remove the element at pos (End() is not erasable). Returns an iterator to
// the element that followed pos, or End() when pos was the last element.
// The empty check runs before the iterator check.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if l.Empty() {
		return Iterator[T]{}, errors.WithMessage(ErrEmptyContainer, "Erase")
	}
	if pos.list != l || pos.current == nil || pos.current == l.head || pos.current == l.tail {
		return Iterator[T]{}, errors.WithMessage(ErrInvalidIterator, "Erase")
	}
	next := pos.current.next
	l.unlink(pos.current)
	return Iterator[T]{current: next, list: l}, nil
}

// Add value at the end
func (l *List[T]) PushBack(value T) {
	l.linkBefore(l.tail, newNode(value))
}

// Add value at the beginning
func (l *List[T]) PushFront(value T) {
	l.linkBefore(l.head.next, newNode(value))
}

// Remove the last element. Fails with ErrEmptyContainer when there is none.
func (l *List[T]) PopBack() error {
	if l.Empty() {
		return errors.WithMessage(ErrEmptyContainer, "PopBack")
	}
	l.unlink(l.tail.prev)
	return nil
}

// Remove the first element. Fails with ErrEmptyContainer when there is none.
func (l *List[T]) PopFront() error {
	if l.Empty() {
		return errors.WithMessage(ErrEmptyContainer, "PopFront")
	}
	l.unlink(l.head.next)
	return nil
}

// Remove every element, releasing the nodes. The sentinels survive and the
// list stays usable.
func (l *List[T]) Clear() {
	for !l.Empty() {
		l.PopFront()
	}
}

// The values in list order
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head.next; n != l.tail; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// A deep copy: fresh nodes, copied values, same comparators. Mutating either
// list never affects the other.
func (l *List[T]) Clone() *List[T] {
	clone := New[T](nil)
	clone.less = l.less
	clone.equal = l.equal
	for n := l.head.next; n != l.tail; n = n.next {
		clone.PushBack(n.value)
	}
	return clone
}

// Replace the contents with a deep copy of other's values. The receiver keeps
// its own comparators. Self-assignment is a no-op.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	for n := other.head.next; n != other.tail; n = n.next {
		l.PushBack(n.value)
	}
}
