package bst

import "cmp"

type Sized interface {
	Size() int
	IsEmpty() bool
}

type Clearable interface {
	Clear()
}

// Collection is the base contract shared by containers in this package.
type Collection interface {
	Sized
	Clearable
}

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// New returns a tree ordered by the natural ordering of T, holding items.
func New[T cmp.Ordered](items ...T) *Tree[T] {
	return NewFunc(cmp.Compare[T], items...)
}

// NewFunc returns a tree ordered by compare, holding items.
// compare must define a total order and return a negative number, zero or
// a positive number when a < b, a == b or a > b.
func NewFunc[T any](compare func(a, b T) int, items ...T) *Tree[T] {
	t := &Tree[T]{cmp: compare}
	t.AddAll(items...)
	return t
}
