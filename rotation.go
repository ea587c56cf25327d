package treemap

// relink makes child the left or right child of parent. child may be nil.
func (m *Map[K, V]) relink(parent, child *node[K, V], makeLeft bool) {
	if makeLeft {
		parent.left = child
	} else {
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
}

// rotate promotes x above its parent y. y becomes a child of x, and the
// inner subtree of x moves over to y. The grandparent (or the tree root)
// is updated to point to x.
//
//	      y                x
//	     / \              / \
//	    x   c    ==>     a   y
//	   / \                  / \
//	  a   b                b   c
func (m *Map[K, V]) rotate(x *node[K, V]) {
	y := x.parent
	assert(y != nil, "rotate called for root node")
	z := y.parent
	if z == nil {
		m.root = x
		x.parent = nil
	} else {
		m.relink(z, x, y == z.left)
	}
	if x == y.left {
		m.relink(y, x.right, true)
		m.relink(x, y, false)
	} else {
		m.relink(y, x.left, false)
		m.relink(x, y, true)
	}
	T().Debugf("treemap: rotated %v above %v", x.key, y.key)
}

// restructure performs a trinode restructuring of x, its parent y and its
// grandparent z. If x and y are aligned (both left or both right children),
// a single rotation of y suffices (zig-zig); otherwise x is rotated twice
// (zig-zag). restructure returns the node which ends up in the middle, i.e. as
// the new local root of the three nodes.
func (m *Map[K, V]) restructure(x *node[K, V]) *node[K, V] {
	y := x.parent
	assert(y != nil && y.parent != nil, "restructure needs a grandparent")
	z := y.parent
	if (x == y.right) == (y == z.right) {
		m.rotate(y)
		return y
	}
	m.rotate(x)
	m.rotate(x)
	return x
}
