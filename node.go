package bst

import (
	"fmt"
	"strings"
)

// Side tells which link of its parent a node hangs from.
type Side int

const (
	SideRoot Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideRoot:
		return "root"
	case SideLeft:
		return "L"
	case SideRight:
		return "R"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

func newNode[T any](item T) *node[T] {
	return &node[T]{item: item}
}

// height of a nil node is -1
func (n *node[T]) height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.height(), n.right.height())
}

func (n *node[T]) minimum() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) maximum() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// liftMaxToTop replaces n's item with the maximum item of its left subtree
// and unlinks the node that held it. n must have a left child.
func (n *node[T]) liftMaxToTop() {
	parent, curr := n, n.left
	for curr.right != nil {
		parent, curr = curr, curr.right
	}
	n.item = curr.item
	if parent == n {
		n.left = curr.left
	} else {
		parent.right = curr.left
	}
}

func (n *node[T]) preorder(items []T) []T {
	if n == nil {
		return items
	}
	items = append(items, n.item)
	items = n.left.preorder(items)
	return n.right.preorder(items)
}

func (n *node[T]) postorder(items []T) []T {
	if n == nil {
		return items
	}
	items = n.left.postorder(items)
	items = n.right.postorder(items)
	return append(items, n.item)
}

// render writes the subtree rotated 90 degrees counterclockwise.
func (n *node[T]) render(sb *strings.Builder, level int) {
	if n == nil {
		return
	}
	n.right.render(sb, level+1)
	sb.WriteString(strings.Repeat("| ", level))
	fmt.Fprintf(sb, "%v\n", n.item)
	n.left.render(sb, level+1)
}
