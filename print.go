package treemap

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// PrintConfig controls the output of Map.Print.
type PrintConfig struct {
	Values bool // print values together with keys
	Colors bool // use terminal colors
	// Palette maps node classes to colors. It may contain a subset of
	// the classes; missing ones are printed without color.
	Palette map[NodeClass]*color.Color
}

// NodeClass classifies nodes for colored output.
type NodeClass int

// Node classes used in palettes.
const (
	PlainNode NodeClass = iota // nodes of unbalanced and splay trees
	RedNode                    // red nodes of red-black trees
	BlackNode                  // black nodes of red-black trees
	AVLNode                    // nodes of AVL trees
)

// DefaultPalette creates the palette used if a PrintConfig does not
// provide one.
func DefaultPalette() map[NodeClass]*color.Color {
	palette := map[NodeClass]*color.Color{
		PlainNode: color.New(color.FgBlue),
		RedNode:   color.New(color.FgRed, color.Bold),
		BlackNode: color.New(color.FgHiBlack, color.Bold),
		AVLNode:   color.New(color.FgCyan),
	}
	for _, c := range palette {
		c.EnableColor()
	}
	return palette
}

// ConfigFromTerminal is a simple helper for creating a print config.
// It checks whether stdout is a terminal, and if so switches on colors.
func ConfigFromTerminal() *PrintConfig {
	config := &PrintConfig{}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		config.Colors = true
		config.Palette = DefaultPalette()
	}
	return config
}

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print displays an ASCII graphic representation of the tree, rotated by 90
// degrees: the root is at the left margin and right subtrees are printed above
// their parents. It returns the number of levels of the tree.
//
// If config is nil, ConfigFromTerminal is used.
func (m *Map[K, V]) Print(w io.Writer, config *PrintConfig) int {
	if config == nil {
		config = ConfigFromTerminal()
	}
	cfg := *config
	if cfg.Colors && cfg.Palette == nil {
		cfg.Palette = DefaultPalette()
	}
	if m == nil {
		return 0
	}
	return m.printTree(w, m.root, "", rootBranch, &cfg)
}

func (m *Map[K, V]) printTree(w io.Writer, n *node[K, V], prefix string, br branch, config *PrintConfig) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = m.printTree(w, n.right, prefix+t, rightBranch, config)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	m.printNode(w, n, config)
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = m.printTree(w, n.left, prefix+t, leftBranch, config)
	}
	return 1 + max(rd, ld)
}

func (m *Map[K, V]) printNode(w io.Writer, n *node[K, V], config *PrintConfig) {
	label := fmt.Sprintf("%v", n.key)
	if config.Values {
		label = fmt.Sprintf("%v → %v", n.key, n.value)
	}
	class := nodeClass(n, m.strategy)
	switch class {
	case AVLNode:
		label = fmt.Sprintf("%s [h=%d]", label, n.height)
	case RedNode:
		label += " (R)"
	case BlackNode:
		label += " (B)"
	}
	if config.Colors {
		if c, ok := config.Palette[class]; ok {
			c.Fprint(w, label)
			io.WriteString(w, "\n")
			return
		}
	}
	io.WriteString(w, label)
	io.WriteString(w, "\n")
}

func nodeClass[K cmp.Ordered, V any](n *node[K, V], s Strategy) NodeClass {
	switch s {
	case AVL:
		return AVLNode
	case RedBlack:
		if n.red {
			return RedNode
		}
		return BlackNode
	}
	return PlainNode
}
