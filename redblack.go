package treemap

import "cmp"

// redBlackTree keeps a tree balanced by coloring its nodes:
//
//   - the root is black,
//   - a red node has no red child,
//   - every path from a node down to an absent child passes the same number of
//     black nodes.
type redBlackTree[K cmp.Ordered, V any] struct{}

func (redBlackTree[K, V]) rebalanceInsert(m *Map[K, V], n *node[K, V]) {
	resolveRed(m, n)
}

func (redBlackTree[K, V]) rebalanceAccess(*Map[K, V], *node[K, V]) {}

// rebalanceDelete is called with the parent p of the node just spliced out.
// The number of children left at p tells what has been removed:
//
//   - one child c: a leaf was removed. If c is not a red leaf, the removed leaf
//     was black and the subtree at the removed leaf's spot lacks one black node.
//   - two children: a black node with a single red child was removed, and the
//     red child took its place. Coloring that child black restores the balance.
func (redBlackTree[K, V]) rebalanceDelete(m *Map[K, V], p *node[K, V]) {
	if m.size <= 1 || p == nil {
		if m.root != nil {
			m.root.red = false
		}
		return
	}
	switch p.numChildren() {
	case 1:
		c := p.left
		if c == nil {
			c = p.right
		}
		if !isRedLeaf(c) {
			fixDeficit(m, p, c)
		}
	case 2:
		if isRedLeaf(p.left) {
			p.left.red = false
		} else {
			p.right.red = false
		}
	}
	m.root.red = false
}

func isRedLeaf[K cmp.Ordered, V any](n *node[K, V]) bool {
	return n.isRed() && n.isLeaf()
}

// redChild returns a red child of n, preferring the left one, or nil.
func redChild[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n.left.isRed() {
		return n.left
	}
	if n.right.isRed() {
		return n.right
	}
	return nil
}

// resolveRed repairs a red node x with a possibly red parent.
func resolveRed[K cmp.Ordered, V any](m *Map[K, V], x *node[K, V]) {
	for {
		if x.parent == nil {
			x.red = false
			return
		}
		parent := x.parent
		if !parent.isRed() {
			return
		}
		// double red: parent is red and hence not the root
		uncle := parent.sibling()
		if !uncle.isRed() {
			middle := m.restructure(x)
			middle.red = false
			middle.left.red = true
			middle.right.red = true
			T().Debugf("treemap: red-black restructure at %v", middle.key)
			return
		}
		grand := parent.parent
		grand.red = true
		grand.left.red = false
		grand.right.red = false
		T().Debugf("treemap: red-black recolor at %v", grand.key)
		x = grand
	}
}

// fixDeficit resolves a black deficit below z. y is the child of z on the other
// side, i.e. the root of the subtree with the larger black height.
func fixDeficit[K cmp.Ordered, V any](m *Map[K, V], z, y *node[K, V]) {
	for {
		assert(y != nil, "red-black deficit without sibling")
		if y.isRed() {
			// rotate the red sibling above z and continue with z's new sibling
			m.rotate(y)
			y.red = false
			z.red = true
			if z == y.right {
				y = z.left
			} else {
				y = z.right
			}
			continue
		}
		if x := redChild(y); x != nil {
			wasRed := z.red
			middle := m.restructure(x)
			middle.red = wasRed
			middle.left.red = false
			middle.right.red = false
			T().Debugf("treemap: red-black deficit resolved at %v", middle.key)
			return
		}
		y.red = true
		if z.red {
			z.red = false
			return
		}
		if z.parent == nil {
			return
		}
		z, y = z.parent, z.sibling()
	}
}
