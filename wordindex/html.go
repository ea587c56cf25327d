package wordindex

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// FromHTML creates an index for the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text,
// skipping scripts and style sheets. Spans refer to positions within the
// concatenated text nodes.
func FromHTML(input io.Reader, config Config) (*Index, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, fmt.Errorf("wordindex: parsing HTML: %w", err)
	}
	ix, err := New(config)
	if err != nil {
		return nil, err
	}
	var pos uint64
	for _, n := range nodes {
		pos = ix.collectText(n, pos)
	}
	return ix, nil
}

// IndexHTML adds the inner text of an HTML element and all its descendents
// to ix, starting at offset base. It returns the offset after the text.
func (ix *Index) IndexHTML(n *html.Node, base uint64) uint64 {
	if n == nil {
		return base
	}
	return ix.collectText(n, base)
}

func (ix *Index) collectText(n *html.Node, pos uint64) uint64 {
	switch n.Type {
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return pos
		}
	case html.TextNode:
		ix.Add(n.Data, pos)
		pos += uint64(len(n.Data))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		pos = ix.collectText(c, pos)
	}
	return pos
}
