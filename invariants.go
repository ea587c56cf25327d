package treemap

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of the tree underlying m:
//
//   - parent links match child links,
//   - keys are in strict BST order,
//   - the number of nodes matches Len(),
//   - AVL trees: stored heights are correct and balanced,
//   - red-black trees: coloring rules and uniform black height.
//
// Splay trees and unbalanced trees are checked for BST order only.
// Check is meant for tests; errors wrap ErrInvariantViolation.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrInvariantViolation)
	}
	if m.root == nil {
		if m.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariantViolation, m.size)
		}
		return nil
	}
	if m.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrInvariantViolation, m.root.key)
	}
	count, _, err := m.checkNode(m.root, nil, nil)
	if err != nil {
		return err
	}
	if count != m.size {
		return fmt.Errorf("%w: size mismatch (%d nodes != %d)", ErrInvariantViolation, count, m.size)
	}
	if m.strategy == RedBlack && m.root.red {
		return fmt.Errorf("%w: red root %v", ErrInvariantViolation, m.root.key)
	}
	return nil
}

// checkNode checks the subtree at n, with all keys strictly between lo and hi
// (if given). It returns the number of nodes and the black height of the subtree.
func (m *Map[K, V]) checkNode(n *node[K, V], lo, hi *K) (count int, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if n.isRemoved() {
		return 0, 0, fmt.Errorf("%w: removed node %v still linked", ErrInvariantViolation, n.key)
	}
	if (lo != nil && cmp.Compare(n.key, *lo) <= 0) || (hi != nil && cmp.Compare(n.key, *hi) >= 0) {
		return 0, 0, fmt.Errorf("%w: key %v out of BST order", ErrInvariantViolation, n.key)
	}
	for _, child := range [2]*node[K, V]{n.left, n.right} {
		if child != nil && child.parent != n {
			return 0, 0, fmt.Errorf("%w: child %v of %v has wrong parent link", ErrInvariantViolation,
				child.key, n.key)
		}
	}
	lcnt, lbh, err := m.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rcnt, rbh, err := m.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	switch m.strategy {
	case AVL:
		lh, rh := n.left.storedHeight(), n.right.storedHeight()
		if n.height != 1+max(lh, rh) {
			return 0, 0, fmt.Errorf("%w: node %v has height %d, should be %d", ErrInvariantViolation,
				n.key, n.height, 1+max(lh, rh))
		}
		if lh-rh > 1 || rh-lh > 1 {
			return 0, 0, fmt.Errorf("%w: node %v out of balance (%d/%d)", ErrInvariantViolation, n.key, lh, rh)
		}
	case RedBlack:
		if n.red && (n.left.isRed() || n.right.isRed()) {
			return 0, 0, fmt.Errorf("%w: red node %v has red child", ErrInvariantViolation, n.key)
		}
		if lbh != rbh {
			return 0, 0, fmt.Errorf("%w: black height differs below %v (%d/%d)", ErrInvariantViolation,
				n.key, lbh, rbh)
		}
		if !n.red {
			lbh++
		}
	}
	return lcnt + rcnt + 1, lbh, nil
}
