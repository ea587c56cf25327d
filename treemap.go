package treemap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"strings"
)

// Strategy selects the balancing algorithm of a map.
type Strategy int

// Balancing strategies. Unbalanced is the zero value, i.e. a plain binary
// search tree without any restructuring.
const (
	Unbalanced Strategy = iota
	AVL
	RedBlack
	Splay
)

var strategyNames = [...]string{"unbalanced", "avl", "redblack", "splay"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy returns the strategy for a name like "avl" or "red-black".
// Case is ignored.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unbalanced", "plain", "bst":
		return Unbalanced, nil
	case "avl":
		return AVL, nil
	case "redblack", "red-black", "rb":
		return RedBlack, nil
	case "splay":
		return Splay, nil
	}
	return Unbalanced, fmt.Errorf("%w: unknown balancing strategy %q", ErrIllegalArguments, name)
}

// balancer is implemented by the balancing strategies. The map calls the hooks
// after it has changed the node store, handing over the node where the change
// took place.
type balancer[K cmp.Ordered, V any] interface {
	// rebalanceInsert is called with a freshly inserted leaf.
	rebalanceInsert(m *Map[K, V], n *node[K, V])
	// rebalanceDelete is called with the parent of a node just spliced out of
	// the tree. The parent is nil if the root has been spliced.
	rebalanceDelete(m *Map[K, V], parent *node[K, V])
	// rebalanceAccess is called with a node found by a search, even if the
	// search was not successful.
	rebalanceAccess(m *Map[K, V], n *node[K, V])
}

type unbalanced[K cmp.Ordered, V any] struct{}

func (unbalanced[K, V]) rebalanceInsert(*Map[K, V], *node[K, V]) {}
func (unbalanced[K, V]) rebalanceDelete(*Map[K, V], *node[K, V]) {}
func (unbalanced[K, V]) rebalanceAccess(*Map[K, V], *node[K, V]) {}

// Map is an ordered map from keys of type K to values of type V.
//
// A map created by
//
//	Map[K, V]{}
//
// is a valid object and behaves like an empty, unbalanced binary search tree.
// Use New or one of NewAVL, NewRedBlack, NewSplay to create balanced maps.
//
// Maps are not safe for concurrent use, not even for reads: reading from a
// splay tree restructures it.
type Map[K cmp.Ordered, V any] struct {
	root     *node[K, V]
	size     int
	strategy Strategy
	bal      balancer[K, V]
}

// New creates an empty map balanced by strategy s.
func New[K cmp.Ordered, V any](s Strategy) (*Map[K, V], error) {
	var bal balancer[K, V]
	switch s {
	case Unbalanced:
		bal = unbalanced[K, V]{}
	case AVL:
		bal = avlTree[K, V]{}
	case RedBlack:
		bal = redBlackTree[K, V]{}
	case Splay:
		bal = splayTree[K, V]{}
	default:
		return nil, fmt.Errorf("%w: unknown balancing strategy %d", ErrIllegalArguments, int(s))
	}
	return &Map[K, V]{strategy: s, bal: bal}, nil
}

// NewAVL creates an empty map balanced as an AVL tree.
func NewAVL[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{strategy: AVL, bal: avlTree[K, V]{}}
}

// NewRedBlack creates an empty map balanced as a red-black tree.
func NewRedBlack[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{strategy: RedBlack, bal: redBlackTree[K, V]{}}
}

// NewSplay creates an empty map organized as a splay tree.
func NewSplay[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{strategy: Splay, bal: splayTree[K, V]{}}
}

func (m *Map[K, V]) balancer() balancer[K, V] {
	if m.bal == nil {
		return unbalanced[K, V]{}
	}
	return m.bal
}

// Strategy returns the balancing strategy of m.
func (m *Map[K, V]) Strategy() Strategy {
	return m.strategy
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// IsEmpty reports whether m has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m == nil || m.root == nil
}

// Height returns the height of the tree, where a single entry has height 0.
// The height of an empty map is -1.
func (m *Map[K, V]) Height() int {
	if m == nil {
		return -1
	}
	return subtreeHeight(m.root)
}

func subtreeHeight[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return 1 + max(subtreeHeight(n.left), subtreeHeight(n.right))
}

// Clear removes all entries from m. All positions of m become invalid.
func (m *Map[K, V]) Clear() {
	if m == nil || m.root == nil {
		return
	}
	var sever func(n *node[K, V])
	sever = func(n *node[K, V]) {
		if n == nil {
			return
		}
		l, r := n.left, n.right
		n.sever()
		sever(l)
		sever(r)
	}
	sever(m.root)
	m.root = nil
	m.size = 0
}

// --- Map operations --------------------------------------------------------

// locate searches for key and applies the access hook to the node found, which
// is either the node carrying key or the last node visited. It returns nil for
// an empty map.
func (m *Map[K, V]) locate(key K) *node[K, V] {
	if m.root == nil {
		return nil
	}
	n := m.root.search(key)
	m.balancer().rebalanceAccess(m, n)
	return n
}

// Get returns the value stored for key. If key is not present, Get returns
// an error wrapping ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if m == nil {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	n := m.locate(key)
	if n == nil || cmp.Compare(n.key, key) != 0 {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return n.value, nil
}

// Contains reports whether key is present in m.
func (m *Map[K, V]) Contains(key K) bool {
	_, err := m.Get(key)
	return err == nil
}

// Find returns the position of the entry for key. If key is not present, Find
// returns an error wrapping ErrKeyNotFound.
func (m *Map[K, V]) Find(key K) (Position[K, V], error) {
	if m == nil {
		return Position[K, V]{}, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	n := m.locate(key)
	if n == nil || cmp.Compare(n.key, key) != 0 {
		return Position[K, V]{}, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return m.position(n), nil
}

// Set stores value for key, replacing a previous value for key, if any.
func (m *Map[K, V]) Set(key K, value V) {
	assert(m != nil, "Set called for nil map")
	if m.root == nil {
		m.root = newNode(key, value, nil)
		m.size = 1
		m.balancer().rebalanceInsert(m, m.root)
		return
	}
	p := m.root.search(key)
	if cmp.Compare(p.key, key) == 0 {
		p.value = value
		m.balancer().rebalanceAccess(m, p)
		return
	}
	leaf := newNode(key, value, p)
	if cmp.Less(key, p.key) {
		p.left = leaf
	} else {
		p.right = leaf
	}
	m.size++
	m.balancer().rebalanceInsert(m, leaf)
}

// Delete removes the entry for key. If key is not present, Delete returns an
// error wrapping ErrKeyNotFound and leaves the entries of m untouched.
func (m *Map[K, V]) Delete(key K) error {
	if m == nil || m.root == nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	n := m.root.search(key)
	if cmp.Compare(n.key, key) != 0 {
		m.balancer().rebalanceAccess(m, n)
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	m.deleteNode(n)
	return nil
}

// DeleteAt removes the entry at position p.
//
// If the entry has two children in the underlying tree, its in-order
// predecessor's entry is moved to p and the predecessor's node is removed
// instead. Consequently p stays valid (now referring to the predecessor's key),
// while positions referring to the predecessor become invalid.
func (m *Map[K, V]) DeleteAt(p Position[K, V]) error {
	n, err := m.validate(p)
	if err != nil {
		return err
	}
	m.deleteNode(n)
	return nil
}

func (m *Map[K, V]) deleteNode(n *node[K, V]) {
	if n.left != nil && n.right != nil {
		pred := n.left.last()
		n.key, n.value = pred.key, pred.value
		n = pred
	}
	parent := n.parent
	m.splice(n)
	m.size--
	m.balancer().rebalanceDelete(m, parent)
}

// splice removes a node with at most one child, linking the child to the
// node's parent.
func (m *Map[K, V]) splice(n *node[K, V]) {
	assert(n.numChildren() < 2, "splice called for node with two children")
	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	if child != nil {
		child.parent = parent
	}
	if parent == nil {
		m.root = child
	} else if n == parent.left {
		parent.left = child
	} else {
		parent.right = child
	}
	n.sever()
}

// FindMin returns the entry with the smallest key. ok is false for an empty map.
func (m *Map[K, V]) FindMin() (key K, value V, ok bool) {
	if m.IsEmpty() {
		return key, value, false
	}
	n := m.root.first()
	return n.key, n.value, true
}

// FindMax returns the entry with the largest key. ok is false for an empty map.
func (m *Map[K, V]) FindMax() (key K, value V, ok bool) {
	if m.IsEmpty() {
		return key, value, false
	}
	n := m.root.last()
	return n.key, n.value, true
}

// FindGE returns the entry with the smallest key greater than or equal to key.
// ok is false if there is no such entry.
func (m *Map[K, V]) FindGE(key K) (K, V, bool) {
	var zk K
	var zv V
	if m.IsEmpty() {
		return zk, zv, false
	}
	n := m.ceiling(key)
	if n == nil {
		return zk, zv, false
	}
	return n.key, n.value, true
}

// FindLE returns the entry with the largest key less than or equal to key.
// ok is false if there is no such entry.
func (m *Map[K, V]) FindLE(key K) (K, V, bool) {
	var zk K
	var zv V
	if m.IsEmpty() {
		return zk, zv, false
	}
	n := m.locate(key)
	if n != nil && cmp.Less(key, n.key) {
		n = n.prev()
	}
	if n == nil {
		return zk, zv, false
	}
	return n.key, n.value, true
}

// ceiling locates the node with the smallest key >= key, or nil.
func (m *Map[K, V]) ceiling(key K) *node[K, V] {
	n := m.locate(key)
	if n != nil && cmp.Less(n.key, key) {
		n = n.next()
	}
	return n
}
