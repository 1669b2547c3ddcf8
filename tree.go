package bstmap

import (
	"fmt"
	"strings"
)

func (t *treeMap[K, V]) Size() int {
	if t == nil {
		return 0
	}
	return t.count
}

func (t *treeMap[K, V]) IsEmpty() bool {
	return t.Size() == 0
}

// Put inserts key with value, or overwrites the value of an existing key in
// place. It returns the previous value and true when an overwrite happened.
func (t *treeMap[K, V]) Put(key K, value V) (V, bool) {
	slot := &t.root
	for *slot != nil {
		curr := *slot
		if key == curr.key {
			prev := curr.value
			curr.value = value
			return prev, true
		}
		slot = curr.child(key)
	}
	*slot = newNode[K, V](key, value)
	t.count++

	var zero V
	return zero, false
}

func (t *treeMap[K, V]) Get(key K) (V, bool) {
	curr := t.root
	for curr != nil {
		if key == curr.key {
			return curr.value, true
		}
		curr = *curr.child(key)
	}

	var zero V
	return zero, false
}

// Remove detaches the node holding key and returns its value. Only leaf
// nodes may be removed: if the matching node has any child, Remove returns
// ErrNotLeaf and the tree is left untouched. A missing key is not an error,
// it reports false with a nil error.
func (t *treeMap[K, V]) Remove(key K) (V, bool, error) {
	var zero V

	slot := &t.root
	for *slot != nil {
		curr := *slot
		if key == curr.key {
			if !curr.isLeaf() {
				return zero, false, ErrNotLeaf
			}
			*slot = nil
			t.count--
			return curr.value, true, nil
		}
		slot = curr.child(key)
	}
	return zero, false, nil
}

func (t *treeMap[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := t.root.minimum()
	return n.key, n.value, true
}

func (t *treeMap[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := t.root.maximum()
	return n.key, n.value, true
}

// String renders every entry in ascending key order as
// "[ (k1, v1) (k2, v2) ... ]". The in-order walk keeps an explicit stack:
// without rebalancing a tree built from sorted input degenerates into a
// list of depth N, so recursion is not an option here.
func (t *treeMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")

	var stack []*node[K, V]
	curr := t.root
	for curr != nil || len(stack) > 0 {
		if curr != nil {
			stack = append(stack, curr)
			curr = curr.left
			continue
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(&sb, "(%v, %v) ", curr.key, curr.value)
		curr = curr.right
	}

	sb.WriteString("]")
	return sb.String()
}
