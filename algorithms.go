package dlist

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Sort the values ascending per the configured less-than relation. The values
// are copied into a contiguous buffer, sorted there, and written back into
// the existing nodes in list order; no node is allocated, freed or relinked.
// Equal elements may be reordered.
func (l *List[T]) Sort() error {
	if l.size <= 1 {
		return nil
	}
	if l.less == nil {
		return errors.WithMessage(ErrNoComparator, "Sort")
	}

	buffer := make([]T, 0, l.size)
	for n := l.head.next; n != l.tail; n = n.next {
		buffer = append(buffer, n.value)
	}
	slices.SortFunc(buffer, l.less)

	i := 0
	for n := l.head.next; n != l.tail; n = n.next {
		n.value = buffer[i]
		i++
	}
	return nil
}

// Merge the ascending-sorted other into this ascending-sorted list by
// relinking other's nodes; no value is copied or moved. An other node jumps
// ahead only when strictly less, so for equal values existing elements stay
// in front and the merge is stable. other ends empty, sentinels intact, and
// remains usable. Merging a list into itself is a no-op.
func (l *List[T]) Merge(other *List[T]) error {
	if l == other {
		return nil
	}
	if l.less == nil {
		return errors.WithMessage(ErrNoComparator, "Merge")
	}

	// Moved nodes always come off other's front, so other.head.next is the
	// other-side cursor throughout.
	cur := l.head.next
	for cur != l.tail && !other.Empty() {
		if l.less(other.head.next.value, cur.value) {
			l.linkBefore(cur, other.unlink(other.head.next))
		} else {
			cur = cur.next
		}
	}
	for !other.Empty() {
		l.linkBefore(l.tail, other.unlink(other.head.next))
	}
	return nil
}

// Reverse the element order in place: swap prev/next on every node, the
// sentinels included, then swap the head and tail roles. No allocation, no
// value movement.
func (l *List[T]) Reverse() {
	if l.size <= 1 {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = n.prev, next
		n = next
	}
	l.head, l.tail = l.tail, l.head
}

// Drop consecutive duplicates per the configured equality, keeping the first
// element of each equal run. Non-adjacent duplicates survive. After a
// removal the retained element is re-tested against its new neighbor.
func (l *List[T]) Unique() error {
	if l.size <= 1 {
		return nil
	}
	if l.equal == nil {
		return errors.WithMessage(ErrNoComparator, "Unique")
	}

	n := l.head.next
	for n.next != l.tail {
		if l.equal(n.value, n.next.value) {
			l.unlink(n.next)
		} else {
			n = n.next
		}
	}
	return nil
}
