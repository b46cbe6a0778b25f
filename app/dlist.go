package main

import (
	"fmt"

	"github.com/karlseguin/dlist"
)

func main() {
	l := dlist.New(dlist.Ordered[int]())
	for _, value := range []int{5, 1, 4, 4, 2, 3} {
		l.PushBack(value)
	}
	fmt.Println(l.Values())

	l.Sort()
	fmt.Println(l.Values())

	l.Unique()
	fmt.Println(l.Values())

	other := dlist.New(dlist.Ordered[int]())
	other.PushBack(2)
	other.PushBack(6)
	l.Merge(other)
	fmt.Println(l.Values(), other.Len())

	l.Reverse()
	fmt.Println(l.Values())

	for it := l.Begin(); !it.Equal(l.End()); it.Next() {
		if value, err := it.Value(); err == nil {
			fmt.Print(value, " ")
		}
	}
	fmt.Println()
}
