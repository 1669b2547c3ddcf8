package bstmap

import (
	"cmp"
	"errors"
)

var (
	// ErrNotLeaf is returned by Remove when the matching node still has a
	// child. The tree and its size are unchanged on this path.
	ErrNotLeaf = errors.New("ERROR: Only leaf nodes can be removed.")
)

type (
	treeMap[K cmp.Ordered, V any] struct {
		count int
		root  *node[K, V]
	}

	// each node owns its two children exclusively; no node is ever
	// referenced by more than one parent slot, so the structure is
	// acyclic by construction
	node[K cmp.Ordered, V any] struct {
		key   K
		value V
		left  *node[K, V]
		right *node[K, V]
	}
)

func newNode[K cmp.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
	}
}
