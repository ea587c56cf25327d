package treemap

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// dotEscaper quotes characters which would end a DOT string label.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

type nodeids[K cmp.Ordered, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K cmp.Ordered, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Map2Dot outputs the internal structure of a map in Graphviz DOT format
// (for debugging purposes).
//
// Red-black trees are drawn with colored nodes, AVL nodes are labeled with
// their height. Absent children are drawn as small empty circles if their
// sibling is present, to keep left and right apart.
func Map2Dot[K cmp.Ordered, V any](m *Map[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	var nodelist, edgelist strings.Builder
	nilid := 0
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		ID := ids.alloc(n)
		label := dotEscaper.Replace(fmt.Sprint(n.key))
		if m.strategy == AVL {
			label = fmt.Sprintf("%s\\nh=%d", label, n.height)
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n, m.strategy))
		if n.isLeaf() {
			return
		}
		for _, child := range [2]*node[K, V]{n.left, n.right} {
			if child == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if m != nil && m.root != nil {
		walk(m.root)
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[K cmp.Ordered, V any](n *node[K, V], s Strategy) string {
	st := ",style=filled,shape=circle"
	if s == RedBlack {
		if n.red {
			st += ",color=black,fillcolor=\"#ee4444\",fontcolor=white"
		} else {
			st += ",color=black,fillcolor=black,fontcolor=white"
		}
		return st
	}
	return st + ",color=black,fillcolor=\"#a3d7e4\""
}
