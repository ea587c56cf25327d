package treemap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// node is a node of a binary search tree. Children are owned by their parent,
// the parent link is a back-reference used for navigation only.
//
// Some strategies keep balancing information in a node:
//
//   - AVL trees store the height of the subtree rooted at the node, where a leaf
//     has height 0 and an absent subtree counts as -1.
//   - Red-black trees store the node's color. New nodes are red.
//   - Splay trees and unbalanced trees do not use either of these.
type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	height int
	red    bool
}

func newNode[K cmp.Ordered, V any](key K, value V, parent *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		parent: parent,
		red:    true,
	}
}

// sever cuts a node off its tree. A removed node points to itself as its parent,
// which is how stale positions are detected.
func (n *node[K, V]) sever() {
	n.left = nil
	n.right = nil
	n.parent = n
}

func (n *node[K, V]) isRemoved() bool {
	return n.parent == n
}

func (n *node[K, V]) numChildren() int {
	cnt := 0
	if n.left != nil {
		cnt++
	}
	if n.right != nil {
		cnt++
	}
	return cnt
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// sibling returns the other child of n's parent, or nil.
func (n *node[K, V]) sibling() *node[K, V] {
	if n.parent == nil {
		return nil
	}
	if n == n.parent.left {
		return n.parent.right
	}
	return n.parent.left
}

// first returns the leftmost node of the subtree rooted at n.
func (n *node[K, V]) first() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the rightmost node of the subtree rooted at n.
func (n *node[K, V]) last() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, or nil.
func (n *node[K, V]) next() *node[K, V] {
	if n.right != nil {
		return n.right.first()
	}
	walk, above := n, n.parent
	for above != nil && walk == above.right {
		walk, above = above, above.parent
	}
	return above
}

// prev returns the in-order predecessor of n, or nil.
func (n *node[K, V]) prev() *node[K, V] {
	if n.left != nil {
		return n.left.last()
	}
	walk, above := n, n.parent
	for above != nil && walk == above.left {
		walk, above = above, above.parent
	}
	return above
}

// search descends from n looking for key. It returns the node carrying key, or
// the last node visited if key is not present in the subtree.
func (n *node[K, V]) search(key K) *node[K, V] {
	assert(n != nil, "search called with nil node")
	for {
		switch c := cmp.Compare(key, n.key); {
		case c == 0:
			return n
		case c < 0:
			if n.left == nil {
				return n
			}
			n = n.left
		default:
			if n.right == nil {
				return n
			}
			n = n.right
		}
	}
}

// height of a subtree, as stored in its root. Absent subtrees have height -1.
func (n *node[K, V]) storedHeight() int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[K, V]) isRed() bool {
	return n != nil && n.red
}
