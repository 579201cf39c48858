// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

import "strings"

// A Node is an element of a [Tag]'s content: a [Char] or a *[Tag].
type Node interface {
	isNode()
}

// A Char is a single literal character (grapheme cluster) of tag content.
type Char string

func (Char) isNode() {}

// A Tag is an element of the rendered tree, such as <p> or <em>,
// with its attributes and its content in order.
type Tag struct {
	Name    string
	Attr    map[string]string
	Content []Node
}

func (*Tag) isNode() {}

// NewTag returns a new tag with the given name, attributes, and content.
func NewTag(name string, attr map[string]string, content ...Node) *Tag {
	return &Tag{Name: name, Attr: attr, Content: content}
}

// NewTextTag returns a new tag whose content is the characters of text.
func NewTextTag(name string, attr map[string]string, text string) *Tag {
	return &Tag{Name: name, Attr: attr, Content: charNodes(text)}
}

// charNodes returns the characters of s as content nodes.
func charNodes(s string) []Node {
	var list []Node
	for _, c := range chars(s) {
		list = append(list, Char(c))
	}
	return list
}

// Text returns the character content of t and all its descendants,
// without any markup.
func (t *Tag) Text() string {
	var b strings.Builder
	t.writeText(&b)
	return b.String()
}

func (t *Tag) writeText(b *strings.Builder) {
	for _, n := range t.Content {
		switch n := n.(type) {
		case Char:
			b.WriteString(string(n))
		case *Tag:
			n.writeText(b)
		}
	}
}
