package ui

import "strings"

// Heading is the fixed title rendered above the article list.
const Heading = "all articles"

// Item is one rendered article: Key identifies it, Text is displayed.
type Item struct {
	Key  string
	Text string
}

// Tree is the structure a view renders: a root container holding a heading
// followed by zero or more items. Status is not an item.
type Tree struct {
	Heading string
	Items   []Item
	Status  LoadState
}

// String renders the tree without styling: the heading, then one title per
// line.
func (t Tree) String() string {
	var b strings.Builder
	b.WriteString(t.Heading)
	b.WriteString("\n")
	for _, it := range t.Items {
		b.WriteString(it.Text)
		b.WriteString("\n")
	}
	return b.String()
}
