// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"rsc.io/docmark"
)

// A treePrinter draws tag trees, styled for the terminal behind w.
// When w is not a terminal the output is plain text.
type treePrinter struct {
	tag  lipgloss.Style
	text lipgloss.Style
	enum lipgloss.Style
}

func newTreePrinter(w io.Writer) *treePrinter {
	r := lipgloss.NewRenderer(w)
	return &treePrinter{
		tag:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		text: r.NewStyle(),
		enum: r.NewStyle().Foreground(lipgloss.Color("90")),
	}
}

// String returns the drawing of t.
func (p *treePrinter) String(t *docmark.Tag) string {
	return p.tree(t).String()
}

func (p *treePrinter) tree(t *docmark.Tag) *tree.Tree {
	n := tree.Root(p.label(t)).
		EnumeratorStyle(p.enum).
		RootStyle(p.tag)

	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			n.Child(p.text.Render(strconv.Quote(text.String())))
			text.Reset()
		}
	}
	for _, c := range t.Content {
		switch c := c.(type) {
		case docmark.Char:
			text.WriteString(string(c))
		case *docmark.Tag:
			flush()
			n.Child(p.tree(c))
		}
	}
	flush()
	return n
}

// label returns the tag name followed by its attributes in sorted order.
func (p *treePrinter) label(t *docmark.Tag) string {
	keys := make([]string, 0, len(t.Attr))
	for k := range t.Attr {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := t.Name
	for _, k := range keys {
		s += " " + k + "=" + strconv.Quote(t.Attr[k])
	}
	return s
}
