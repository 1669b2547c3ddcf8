package bstmap

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// child returns the slot to descend into for key. Equality must be ruled
// out by the caller before calling.
func (n *node[K, V]) child(key K) **node[K, V] {
	if key > n.key {
		return &n.right
	}
	return &n.left
}

// find the minimum node under n
func (n *node[K, V]) minimum() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// find the maximum node under n
func (n *node[K, V]) maximum() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}
