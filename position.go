package treemap

import (
	"cmp"
	"fmt"
)

// Position is an opaque reference to an entry of a map.
//
// Positions survive structural changes of the tree due to rebalancing, as
// rotations do not change the identity of entries. A position becomes invalid
// when its entry is removed from the map. Operations on invalid positions, or
// on positions of a different map, fail with ErrInvalidPosition.
//
// The zero value of a Position is the nil position, returned by navigation
// operations whenever there is no target entry (e.g., the parent of the root).
type Position[K cmp.Ordered, V any] struct {
	tree *Map[K, V]
	node *node[K, V]
}

// IsNil reports whether p refers to no entry at all.
func (p Position[K, V]) IsNil() bool {
	return p.node == nil
}

// Key returns the key of the entry p refers to.
// For the nil position it returns the zero value of K.
func (p Position[K, V]) Key() K {
	if p.node == nil {
		var zero K
		return zero
	}
	return p.node.key
}

// Value returns the value of the entry p refers to.
// For the nil position it returns the zero value of V.
func (p Position[K, V]) Value() V {
	if p.node == nil {
		var zero V
		return zero
	}
	return p.node.value
}

func (p Position[K, V]) String() string {
	if p.node == nil {
		return "<nil>"
	}
	return fmt.Sprintf("@%v", p.node.key)
}

func (m *Map[K, V]) position(n *node[K, V]) Position[K, V] {
	if n == nil {
		return Position[K, V]{}
	}
	return Position[K, V]{tree: m, node: n}
}

// validate returns the node of p if p is a live position of m.
func (m *Map[K, V]) validate(p Position[K, V]) (*node[K, V], error) {
	if p.node == nil {
		return nil, fmt.Errorf("%w: nil position", ErrInvalidPosition)
	}
	if p.tree != m {
		return nil, fmt.Errorf("%w: position %v does not belong to this map", ErrInvalidPosition, p)
	}
	if p.node.isRemoved() {
		return nil, fmt.Errorf("%w: entry at %v has been removed", ErrInvalidPosition, p)
	}
	return p.node, nil
}
