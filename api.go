package bstmap

import "cmp"

// Map is an ordered associative container backed by an unbalanced binary
// search tree. Tree shape is purely a function of insertion order; there is
// no rebalancing. A Map is not safe for concurrent use, callers must
// serialize all operations externally.
type Map[K cmp.Ordered, V any] interface {
	Size() int
	IsEmpty() bool
	Put(key K, value V) (V, bool)
	Get(key K) (V, bool)
	Remove(key K) (V, bool, error)
	Min() (K, V, bool)
	Max() (K, V, bool)
	String() string
}

func New[K cmp.Ordered, V any]() Map[K, V] {
	return &treeMap[K, V]{}
}
