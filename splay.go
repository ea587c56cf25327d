package treemap

import "cmp"

// splayTree moves every node touched by an operation to the root. There is no
// shape invariant; the amortized cost per operation is O(log n).
type splayTree[K cmp.Ordered, V any] struct{}

func (splayTree[K, V]) rebalanceInsert(m *Map[K, V], n *node[K, V]) {
	splay(m, n)
}

func (splayTree[K, V]) rebalanceAccess(m *Map[K, V], n *node[K, V]) {
	splay(m, n)
}

func (splayTree[K, V]) rebalanceDelete(m *Map[K, V], parent *node[K, V]) {
	if parent != nil {
		splay(m, parent)
	}
}

// splay rotates x up until it is the root of the tree.
func splay[K cmp.Ordered, V any](m *Map[K, V], x *node[K, V]) {
	for x.parent != nil {
		parent := x.parent
		grand := parent.parent
		switch {
		case grand == nil: // zig
			m.rotate(x)
		case (parent == grand.left) == (x == parent.left): // zig-zig
			m.rotate(parent)
			m.rotate(x)
		default: // zig-zag
			m.rotate(x)
			m.rotate(x)
		}
	}
	assert(m.root == x, "splayed node did not become root")
}
