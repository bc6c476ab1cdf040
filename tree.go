package bst

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

func (t *Tree[T]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *Tree[T]) IsEmpty() bool {
	return t.Size() == 0
}

// Clear drops every item. Nodes are released with the root.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Find returns the stored item equal to item.
func (t *Tree[T]) Find(item T) (T, bool) {
	for curr := t.root; curr != nil; {
		c := t.cmp(item, curr.item)
		switch {
		case c == 0:
			return curr.item, true
		case c < 0:
			curr = curr.left
		default:
			curr = curr.right
		}
	}
	var zero T
	return zero, false
}

func (t *Tree[T]) Contains(item T) bool {
	_, ok := t.Find(item)
	return ok
}

// Add inserts item. Items equal to an existing one go to its right subtree.
func (t *Tree[T]) Add(item T) {
	curNode := &t.root
	for *curNode != nil {
		if t.cmp(item, (*curNode).item) < 0 {
			curNode = &(*curNode).left
		} else {
			curNode = &(*curNode).right
		}
	}
	*curNode = newNode(item)
	t.size++
}

func (t *Tree[T]) AddAll(items ...T) {
	for _, item := range items {
		t.Add(item)
	}
}

// Remove deletes one occurrence of item and returns the stored value.
// It returns ErrNotFound and leaves the tree untouched if item is absent.
func (t *Tree[T]) Remove(item T) (T, error) {
	// preRoot.left aliases the root so that removing the root needs no
	// special case
	preRoot := &node[T]{left: t.root}
	parent, curr := preRoot, t.root
	side := SideLeft
	for curr != nil {
		c := t.cmp(curr.item, item)
		if c == 0 {
			break
		}
		parent = curr
		if c > 0 {
			side, curr = SideLeft, curr.left
		} else {
			side, curr = SideRight, curr.right
		}
	}

	if curr == nil {
		var zero T
		return zero, fmt.Errorf("remove %v: %w", item, ErrNotFound)
	}
	removed := curr.item

	if curr.left != nil && curr.right != nil {
		curr.liftMaxToTop()
	} else {
		child := curr.left
		if child == nil {
			child = curr.right
		}
		if side == SideLeft {
			parent.left = child
		} else {
			parent.right = child
		}
	}

	t.size--
	t.root = preRoot.left
	return removed, nil
}

// Replace overwrites the first stored item equal to item with newItem and
// returns the previous value. The node is not moved: newItem must sort at
// the same position as item, otherwise later searches may miss it. Use
// Remove followed by Add to change an item's ordering key.
func (t *Tree[T]) Replace(item, newItem T) (T, bool) {
	probe := t.root
	for probe != nil {
		c := t.cmp(probe.item, item)
		if c == 0 {
			old := probe.item
			probe.item = newItem
			return old, true
		}
		if c > 0 {
			probe = probe.left
		} else {
			probe = probe.right
		}
	}
	var zero T
	return zero, false
}

// Height returns the number of links on the longest root-to-leaf path.
// An empty tree has height -1.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

// IsBalanced reports whether the height is below 2*log2(n+1)-1.
func (t *Tree[T]) IsBalanced() bool {
	threshold := 2*math.Log2(float64(t.Size()+1)) - 1
	return float64(t.Height()) < threshold
}

func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.minimum().item, true
}

func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.maximum().item, true
}

// Successor returns the smallest item strictly greater than item.
func (t *Tree[T]) Successor(item T) (T, bool) {
	var found *node[T]
	for curr := t.root; curr != nil; {
		if t.cmp(curr.item, item) > 0 {
			found, curr = curr, curr.left
		} else {
			curr = curr.right
		}
	}
	if found == nil {
		var zero T
		return zero, false
	}
	return found.item, true
}

// Predecessor returns the largest item strictly less than item.
func (t *Tree[T]) Predecessor(item T) (T, bool) {
	var found *node[T]
	for curr := t.root; curr != nil; {
		if t.cmp(curr.item, item) < 0 {
			found, curr = curr, curr.right
		} else {
			curr = curr.left
		}
	}
	if found == nil {
		var zero T
		return zero, false
	}
	return found.item, true
}

// RangeFind returns the items x with low <= x <= high in ascending order.
func (t *Tree[T]) RangeFind(low, high T) []T {
	items := make([]T, 0)
	if t.cmp(low, high) > 0 {
		return items
	}
	return t.rangeFind(t.root, low, high, items)
}

func (t *Tree[T]) rangeFind(curr *node[T], low, high T, items []T) []T {
	if curr == nil {
		return items
	}
	// liftMaxToTop can leave copies of curr.item in the left subtree, so
	// it is only known to hold items <= curr.item
	lo, hi := t.cmp(low, curr.item), t.cmp(curr.item, high)
	if lo <= 0 {
		items = t.rangeFind(curr.left, low, high, items)
	}
	if lo <= 0 && hi <= 0 {
		items = append(items, curr.item)
	}
	if hi <= 0 {
		items = t.rangeFind(curr.right, low, high, items)
	}
	return items
}

// InOrder returns all items in ascending order.
func (t *Tree[T]) InOrder() []T {
	items := make([]T, 0, t.Size())
	t.ForEach(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

func (t *Tree[T]) PreOrder() []T {
	return t.root.preorder(make([]T, 0, t.Size()))
}

func (t *Tree[T]) PostOrder() []T {
	return t.root.postorder(make([]T, 0, t.Size()))
}

func (t *Tree[T]) LevelOrder() []T {
	items := make([]T, 0, t.Size())
	if t.root == nil {
		return items
	}
	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		items = append(items, curr.item)
		if curr.left != nil {
			queue = append(queue, curr.left)
		}
		if curr.right != nil {
			queue = append(queue, curr.right)
		}
	}
	return items
}

// ForEach calls callback on every item in ascending order until it returns false.
func (t *Tree[T]) ForEach(callback func(item T) bool) {
	t.recursiveForEach(t.root, callback)
}

func (t *Tree[T]) recursiveForEach(curr *node[T], callback func(item T) bool) traverseAction {
	if curr == nil {
		return traverseContinue
	}
	if t.recursiveForEach(curr.left, callback) == traverseStop {
		return traverseStop
	}
	if !callback(curr.item) {
		return traverseStop
	}
	return t.recursiveForEach(curr.right, callback)
}

// Walk visits the nodes in pre-order, passing each item with its depth and
// the side of its parent it hangs from. It stops when fn returns false.
func (t *Tree[T]) Walk(fn func(item T, depth int, side Side) bool) {
	t.walk(t.root, 0, SideRoot, fn)
}

func (t *Tree[T]) walk(curr *node[T], depth int, side Side, fn func(T, int, Side) bool) traverseAction {
	if curr == nil {
		return traverseContinue
	}
	if !fn(curr.item, depth, side) {
		return traverseStop
	}
	if t.walk(curr.left, depth+1, SideLeft, fn) == traverseStop {
		return traverseStop
	}
	return t.walk(curr.right, depth+1, SideRight, fn)
}

// Iterator returns a pre-order iterator over a snapshot of the current links.
// The tree must not be modified while iterating.
func (t *Tree[T]) Iterator() Iterator[T] {
	it := &iterator[T]{}
	if t.root != nil {
		it.stack = append(it.stack, t.root)
	}
	return it
}

// All is the range-over-func form of Iterator.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iterator()
		for it.HasNext() {
			item, _ := it.Next()
			if !yield(item) {
				return
			}
		}
	}
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreItems
	}
	top := len(it.stack) - 1
	cur := it.stack[top]
	it.stack = it.stack[:top]
	// right first so that the left child is popped next
	if cur.right != nil {
		it.stack = append(it.stack, cur.right)
	}
	if cur.left != nil {
		it.stack = append(it.stack, cur.left)
	}
	return cur.item, nil
}

// Rebalance empties t and returns a new minimum-height tree with the same
// items and ordering.
func (t *Tree[T]) Rebalance() *Tree[T] {
	items := make([]T, 0, t.Size())
	for item := range t.All() {
		items = append(items, item)
	}
	slices.SortStableFunc(items, t.cmp)

	t.Clear()
	balanced := &Tree[T]{cmp: t.cmp}
	balanced.addMedians(items)
	return balanced
}

// addMedians adds the middle of the sorted items, then each half.
func (t *Tree[T]) addMedians(sorted []T) {
	if len(sorted) == 0 {
		return
	}
	mid := len(sorted) / 2
	t.Add(sorted[mid])
	t.addMedians(sorted[:mid])
	t.addMedians(sorted[mid+1:])
}

// String draws the tree rotated 90 degrees counterclockwise, one item per
// line, indented by depth.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	t.root.render(&sb, 0)
	return sb.String()
}
