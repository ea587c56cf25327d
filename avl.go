package treemap

import "cmp"

// avlTree keeps a tree height-balanced: for every node the heights of its two
// subtrees differ by at most one.
type avlTree[K cmp.Ordered, V any] struct{}

func (avlTree[K, V]) rebalanceInsert(m *Map[K, V], n *node[K, V]) {
	// a new leaf has height 0 already, the first height to change is its parent's
	avlRebalance(m, n.parent)
}

func (avlTree[K, V]) rebalanceDelete(m *Map[K, V], parent *node[K, V]) {
	avlRebalance(m, parent)
}

func (avlTree[K, V]) rebalanceAccess(*Map[K, V], *node[K, V]) {}

// avlRebalance walks up from n, recomputing heights and restructuring at
// unbalanced nodes. It stops as soon as a node's height is unchanged, as no
// ancestor above it can be affected.
func avlRebalance[K cmp.Ordered, V any](m *Map[K, V], n *node[K, V]) {
	for n != nil {
		oldHeight := n.height
		if !avlBalanced(n) {
			T().Debugf("treemap: AVL node %v out of balance", n.key)
			n = m.restructure(avlTallGrandchild(n))
			avlRecomputeHeight(n.left)
			avlRecomputeHeight(n.right)
		}
		avlRecomputeHeight(n)
		if n.height == oldHeight {
			return
		}
		n = n.parent
	}
}

func avlRecomputeHeight[K cmp.Ordered, V any](n *node[K, V]) {
	n.height = 1 + max(n.left.storedHeight(), n.right.storedHeight())
}

func avlBalanced[K cmp.Ordered, V any](n *node[K, V]) bool {
	d := n.left.storedHeight() - n.right.storedHeight()
	return d >= -1 && d <= 1
}

// avlTallChild returns the child of n with the greater height. On a tie the
// left child is returned if favorLeft is set, else the right one.
func avlTallChild[K cmp.Ordered, V any](n *node[K, V], favorLeft bool) *node[K, V] {
	bias := 0
	if favorLeft {
		bias = 1
	}
	if n.left.storedHeight()+bias > n.right.storedHeight() {
		return n.left
	}
	return n.right
}

// avlTallGrandchild returns the taller child of the taller child of n. Ties on
// the grandchild level are broken towards the side of the child, making
// the restructuring a single rotation whenever possible.
func avlTallGrandchild[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	child := avlTallChild(n, false)
	aligned := child == n.left
	return avlTallChild(child, aligned)
}
