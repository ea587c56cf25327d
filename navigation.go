package treemap

import "iter"

// Root returns the position of the root entry, or the nil position for an
// empty map.
func (m *Map[K, V]) Root() Position[K, V] {
	if m == nil {
		return Position[K, V]{}
	}
	return m.position(m.root)
}

// First returns the position of the entry with the smallest key, or the nil
// position for an empty map.
func (m *Map[K, V]) First() Position[K, V] {
	if m == nil {
		return Position[K, V]{}
	}
	return m.position(m.root.first())
}

// Last returns the position of the entry with the largest key, or the nil
// position for an empty map.
func (m *Map[K, V]) Last() Position[K, V] {
	if m == nil {
		return Position[K, V]{}
	}
	return m.position(m.root.last())
}

// Parent returns the position of p's parent. For the root it returns the nil
// position.
func (m *Map[K, V]) Parent(p Position[K, V]) (Position[K, V], error) {
	n, err := m.validate(p)
	if err != nil {
		return Position[K, V]{}, err
	}
	return m.position(n.parent), nil
}

// Left returns the position of p's left child, or the nil position.
func (m *Map[K, V]) Left(p Position[K, V]) (Position[K, V], error) {
	n, err := m.validate(p)
	if err != nil {
		return Position[K, V]{}, err
	}
	return m.position(n.left), nil
}

// Right returns the position of p's right child, or the nil position.
func (m *Map[K, V]) Right(p Position[K, V]) (Position[K, V], error) {
	n, err := m.validate(p)
	if err != nil {
		return Position[K, V]{}, err
	}
	return m.position(n.right), nil
}

// Sibling returns the position of the other child of p's parent, or the nil
// position.
func (m *Map[K, V]) Sibling(p Position[K, V]) (Position[K, V], error) {
	n, err := m.validate(p)
	if err != nil {
		return Position[K, V]{}, err
	}
	return m.position(n.sibling()), nil
}

// NumChildren returns the number of children of p, which is 0, 1 or 2.
func (m *Map[K, V]) NumChildren(p Position[K, V]) (int, error) {
	n, err := m.validate(p)
	if err != nil {
		return 0, err
	}
	return n.numChildren(), nil
}

// Children returns an iterator over the children of p, left before right.
// The children are read when the iteration starts, not when Children is called.
func (m *Map[K, V]) Children(p Position[K, V]) (iter.Seq[Position[K, V]], error) {
	if _, err := m.validate(p); err != nil {
		return nil, err
	}
	return func(yield func(Position[K, V]) bool) {
		n := p.node
		if n.isRemoved() {
			return
		}
		if n.left != nil && !yield(m.position(n.left)) {
			return
		}
		if n.right != nil {
			yield(m.position(n.right))
		}
	}, nil
}

// IsRoot reports whether p is the root position of m.
func (m *Map[K, V]) IsRoot(p Position[K, V]) (bool, error) {
	n, err := m.validate(p)
	if err != nil {
		return false, err
	}
	return n == m.root, nil
}

// IsLeaf reports whether p has no children.
func (m *Map[K, V]) IsLeaf(p Position[K, V]) (bool, error) {
	n, err := m.validate(p)
	if err != nil {
		return false, err
	}
	return n.isLeaf(), nil
}

// Depth returns the number of ancestors of p. The root has depth 0.
func (m *Map[K, V]) Depth(p Position[K, V]) (int, error) {
	n, err := m.validate(p)
	if err != nil {
		return 0, err
	}
	depth := 0
	for n = n.parent; n != nil; n = n.parent {
		depth++
	}
	return depth, nil
}

// Before returns the position of the in-order predecessor of p, or the nil
// position if p is the first entry.
func (m *Map[K, V]) Before(p Position[K, V]) (Position[K, V], error) {
	n, err := m.validate(p)
	if err != nil {
		return Position[K, V]{}, err
	}
	return m.position(n.prev()), nil
}

// After returns the position of the in-order successor of p, or the nil
// position if p is the last entry.
func (m *Map[K, V]) After(p Position[K, V]) (Position[K, V], error) {
	n, err := m.validate(p)
	if err != nil {
		return Position[K, V]{}, err
	}
	return m.position(n.next()), nil
}
