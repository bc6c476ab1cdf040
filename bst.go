package bst

import "errors"

const (
	traverseStop traverseAction = iota
	traverseContinue
)

var (
	ErrNotFound    = errors.New("item not in tree")
	ErrNoMoreItems = errors.New("there are no more items in the tree")
)

var _ Collection = (*Tree[int])(nil)

type (
	// Tree is an unbalanced binary search tree. Equal items are kept and
	// placed in the right subtree. The zero value is not usable, create
	// trees with New or NewFunc.
	//
	// A Tree is not safe for concurrent use.
	Tree[T any] struct {
		size int
		root *node[T]
		cmp  func(a, b T) int
	}

	node[T any] struct {
		item        T
		left, right *node[T]
	}

	iterator[T any] struct {
		stack []*node[T]
	}

	traverseAction int
)
