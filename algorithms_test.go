package dlist

import (
	"testing"

	. "github.com/karlseguin/expect"
)

type AlgorithmTests struct{}

func Test_Algorithms(t *testing.T) {
	Expectify(new(AlgorithmTests), t)
}

func (_ *AlgorithmTests) SortsAscending() {
	l := listOf(5, 1, 4, 2, 3)
	Expect(l.Sort()).To.Equal(nil)
	assertList(l, 1, 2, 3, 4, 5)
}

func (_ *AlgorithmTests) SortIsIdempotent() {
	l := listOf(5, 1, 4, 2, 3)
	l.Sort()
	Expect(l.Sort()).To.Equal(nil)
	assertList(l, 1, 2, 3, 4, 5)
}

func (_ *AlgorithmTests) SortKeepsTheNodes() {
	l := listOf(3, 1, 2)
	first := l.head.next
	second := first.next
	third := second.next

	l.Sort()
	// values moved, the chain did not
	Expect(l.head.next == first).To.Equal(true)
	Expect(first.next == second).To.Equal(true)
	Expect(second.next == third).To.Equal(true)
	assertList(l, 1, 2, 3)
}

func (_ *AlgorithmTests) SortOfShortListsIsANoop() {
	l := New(Ordered[int]())
	Expect(l.Sort()).To.Equal(nil)
	l.PushBack(1)
	Expect(l.Sort()).To.Equal(nil)
	assertList(l, 1)
}

func (_ *AlgorithmTests) MergesTwoSortedLists() {
	a := listOf(1, 3, 5)
	b := listOf(2, 4, 6, 7)

	Expect(a.Merge(b)).To.Equal(nil)
	assertList(a, 1, 2, 3, 4, 5, 6, 7)
	assertList(b)
}

func (_ *AlgorithmTests) MergeKeepsExistingElementsAheadOnTies() {
	config := Configure[tagged]().Less(func(a, b tagged) bool { return a.value < b.value })

	a := New(config)
	for _, value := range []int{1, 3, 3, 5} {
		a.PushBack(tagged{value, "a"})
	}
	b := New(config)
	for _, value := range []int{2, 3, 4} {
		b.PushBack(tagged{value, "b"})
	}

	Expect(a.Merge(b)).To.Equal(nil)
	Expect(b.Empty()).To.Equal(true)

	values := a.Values()
	Expect(len(values)).To.Equal(7)
	for i, expected := range []tagged{
		{1, "a"}, {2, "b"}, {3, "a"}, {3, "a"}, {3, "b"}, {4, "b"}, {5, "a"},
	} {
		Expect(values[i]).To.Equal(expected)
	}
}

func (_ *AlgorithmTests) MergeMovesNodesWithoutCopying() {
	a := listOf(1, 3)
	b := listOf(2)
	moved := b.head.next

	a.Merge(b)
	assertList(a, 1, 2, 3)
	Expect(a.head.next.next == moved).To.Equal(true)
}

func (_ *AlgorithmTests) MergedListStaysUsable() {
	a := listOf(1, 2)
	b := listOf(3)

	a.Merge(b)
	assertList(b)

	b.PushBack(9)
	assertList(b, 9)
}

func (_ *AlgorithmTests) MergeIntoItselfIsANoop() {
	a := listOf(1, 2)
	Expect(a.Merge(a)).To.Equal(nil)
	assertList(a, 1, 2)
}

func (_ *AlgorithmTests) MergeDrainsTheLongerRemainder() {
	a := listOf(5)
	b := listOf(1, 2, 3)

	a.Merge(b)
	assertList(a, 1, 2, 3, 5)
	assertList(b)
}

func (_ *AlgorithmTests) ReversesTheOrder() {
	l := listOf(1, 2, 3, 4)
	l.Reverse()
	assertList(l, 4, 3, 2, 1)
}

func (_ *AlgorithmTests) ReverseTwiceRestoresTheOrder() {
	l := listOf(1, 2, 3, 4, 5)
	l.Reverse()
	l.Reverse()
	assertList(l, 1, 2, 3, 4, 5)
}

func (_ *AlgorithmTests) ReverseOfShortListsIsANoop() {
	l := New(Ordered[int]())
	l.Reverse()
	assertList(l)
	l.PushBack(1)
	l.Reverse()
	assertList(l, 1)
}

func (_ *AlgorithmTests) ReversedListAcceptsMutations() {
	l := listOf(1, 2, 3)
	l.Reverse()

	l.PushBack(0)
	l.PushFront(4)
	assertList(l, 4, 3, 2, 1, 0)
}

func (_ *AlgorithmTests) UniqueDropsOnlyConsecutiveDuplicates() {
	l := listOf(1, 1, 2, 1, 1)
	Expect(l.Unique()).To.Equal(nil)
	assertList(l, 1, 2, 1)
}

func (_ *AlgorithmTests) UniqueCollapsesLongRuns() {
	l := listOf(1, 1, 1, 1, 2, 2, 3)
	l.Unique()
	assertList(l, 1, 2, 3)
}

func (_ *AlgorithmTests) UniqueOfShortListsIsANoop() {
	l := New(Ordered[int]())
	Expect(l.Unique()).To.Equal(nil)
	l.PushBack(1)
	Expect(l.Unique()).To.Equal(nil)
	assertList(l, 1)
}

type tagged struct {
	value int
	tag   string
}
