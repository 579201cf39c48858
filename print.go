// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// WriteHTML writes the HTML for t to w.
// Attributes are written in sorted order, and adjacent characters
// are written as a single escaped text run.
func WriteHTML(w io.Writer, t *Tag) error {
	return html.Render(w, htmlNode(t))
}

// ToHTML returns the HTML for t.
func ToHTML(t *Tag) string {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, t); err != nil {
		// html.Render only fails for write errors, which bytes.Buffer never returns,
		// and for void elements with content, which Render never produces.
		panic("docmark: " + err.Error())
	}
	return buf.String()
}

// htmlNode converts t to an HTML element node.
func htmlNode(t *Tag) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: t.Name}
	keys := make([]string, 0, len(t.Attr))
	for k := range t.Attr {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: k, Val: t.Attr[k]})
	}

	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: text.String()})
			text.Reset()
		}
	}
	for _, c := range t.Content {
		switch c := c.(type) {
		case Char:
			text.WriteString(string(c))
		case *Tag:
			flush()
			n.AppendChild(htmlNode(c))
		}
	}
	flush()
	return n
}

// dump returns a debugging dump of the tree rooted at t,
// one tag per line with runs of characters quoted.
func dump(t *Tag) string {
	var buf bytes.Buffer
	printTag(&buf, t, "")
	return buf.String()
}

func printTag(buf *bytes.Buffer, t *Tag, prefix string) {
	fmt.Fprintf(buf, "(%s", t.Name)
	keys := make([]string, 0, len(t.Attr))
	for k := range t.Attr {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, " %s=%q", k, t.Attr[k])
	}
	prefix += "\t"
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			fmt.Fprintf(buf, "\n%s%q", prefix, text.String())
			text.Reset()
		}
	}
	for _, c := range t.Content {
		switch c := c.(type) {
		case Char:
			text.WriteString(string(c))
		case *Tag:
			flush()
			fmt.Fprintf(buf, "\n%s", prefix)
			printTag(buf, c, prefix)
		}
	}
	flush()
	fmt.Fprintf(buf, ")")
}
