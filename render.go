// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

import (
	"fmt"
	"strings"
)

// A Root is the kind of tag that [Render] wraps the rendered markup in.
type Root int

const (
	Paragraph Root = iota // <p>
	Anchor                // <a>
)

func (r Root) String() string {
	switch r {
	case Paragraph:
		return "p"
	case Anchor:
		return "a"
	}
	return fmt.Sprintf("Root(%d)", int(r))
}

// Render parses s using the default options and returns the tag tree for it,
// wrapped in a root tag of the given kind with the given attributes.
func Render(root Root, attr map[string]string, s string) *Tag {
	var p Parser
	return p.Render(root, attr, s)
}

// Render parses s and returns the tag tree for it,
// wrapped in a root tag of the given kind with the given attributes.
func (p *Parser) Render(root Root, attr map[string]string, s string) *Tag {
	return render(root, attr, p.Parse(s))
}

// Resolving Delimiters
//
// Emphasis and code are resolved with a stack of open frames.
// The bottom frame is the root tag; every other frame is a delimiter
// (***, **, *, or a run of n backticks) that has been opened but not closed.
// Each element is added to the content of the top frame,
// except that delimiters open, close, or reshape frames according to
// what is on top of the stack:
//
//	token  top     action
//	***    ***     close as <em><strong>...</strong></em>
//	***    **      close <strong>, open *
//	***    *       close <em>, open **
//	**     ***     reopen as * containing <strong>...</strong>
//	**     **      close <strong>
//	**     *       close <em>, open *
//	*      ***     reopen as ** containing <em>...</em>
//	*      *       close <em>
//	`×n    `×n     close <code>
//	`×n    `×m     literal backticks
//	any    code    *, **, *** are literal
//	any    other   open a new frame
//
// Delimiters are matched regardless of the surrounding characters:
// there are no left- or right-flanking rules.
// At the end, frames still open did not find their closers.
// They are flattened back into literal delimiter text followed by
// their already-resolved content, innermost first.

// A frameKind is the kind of an open frame.
type frameKind int

const (
	rootFrame   frameKind = iota // the root <p> or <a>
	tripleFrame                  // ***
	strongFrame                  // **
	emFrame                      // *
	codeFrame                    // run of count backticks
)

// A frame is an entry on the delimiter stack.
type frame struct {
	kind    frameKind
	count   int // backtick count, for codeFrame
	attr    map[string]string
	content []Node
}

// delim returns the delimiter text that opened f.
func (f *frame) delim() string {
	switch f.kind {
	case tripleFrame:
		return "***"
	case strongFrame:
		return "**"
	case emFrame:
		return "*"
	case codeFrame:
		return strings.Repeat("`", f.count)
	}
	return ""
}

// A frameStack is the stack of open frames. It is never empty.
type frameStack []*frame

func (s *frameStack) top() *frame {
	return (*s)[len(*s)-1]
}

func (s *frameStack) push(f *frame) {
	*s = append(*s, f)
}

func (s *frameStack) pop() *frame {
	f := s.top()
	*s = (*s)[:len(*s)-1]
	return f
}

// add appends content to the top frame.
func (s *frameStack) add(nodes ...Node) {
	f := s.top()
	f.content = append(f.content, nodes...)
}

// addLiteral appends the characters of text to the top frame.
func (s *frameStack) addLiteral(text string) {
	s.add(charNodes(text)...)
}

// closeAs pops the top frame and adds it to the new top as a <name> tag.
func (s *frameStack) closeAs(name string) {
	f := s.pop()
	s.add(NewTag(name, f.attr, f.content...))
}

// render resolves list into a tag tree rooted at a tag of the given kind.
func render(root Root, attr map[string]string, list []Element) *Tag {
	stk := frameStack{{kind: rootFrame, attr: attr}}
	for _, x := range list {
		stk.apply(x)
	}
	return NewTag(root.String(), attr, stk.flatten()...)
}

// apply adds the element x to the stack.
func (s *frameStack) apply(x Element) {
	switch x := x.(type) {
	case SymbolLink:
		s.add(NewTextTag("code", nil, x.Name()))
	case Link:
		s.add(renderLink(x))
	case Text:
		s.token(x)
	default:
		panic(fmt.Sprintf("docmark: unexpected element %T", x))
	}
}

// renderLink returns the <a> tag for l.
func renderLink(l Link) *Tag {
	attr := map[string]string{"href": l.URL, "target": "_blank"}
	if len(l.Classes) > 0 {
		attr["class"] = strings.Join(l.Classes, " ")
	}
	list := make([]Element, len(l.Text))
	for i, t := range l.Text {
		list[i] = t
	}
	return render(Anchor, attr, list)
}

// token applies the text token x to the stack.
// See the table in the “Resolving Delimiters” comment above.
func (s *frameStack) token(x Text) {
	top := s.top()
	switch x.Kind {
	case Wildcard:
		s.add(Char(x.Char))

	case Star3:
		switch top.kind {
		case tripleFrame:
			f := s.pop()
			s.add(NewTag("em", nil, NewTag("strong", f.attr, f.content...)))
		case strongFrame: // ** *
			s.closeAs("strong")
			s.push(&frame{kind: emFrame})
		case emFrame: // * **
			s.closeAs("em")
			s.push(&frame{kind: strongFrame})
		case codeFrame:
			s.addLiteral(x.delim())
		default:
			s.push(&frame{kind: tripleFrame})
		}

	case Star2:
		switch top.kind {
		case tripleFrame:
			f := s.pop()
			s.push(&frame{kind: emFrame, attr: f.attr, content: []Node{NewTag("strong", nil, f.content...)}})
		case strongFrame:
			s.closeAs("strong")
		case emFrame: // * *
			s.closeAs("em")
			s.push(&frame{kind: emFrame})
		case codeFrame:
			s.addLiteral(x.delim())
		default:
			s.push(&frame{kind: strongFrame})
		}

	case Star1:
		switch top.kind {
		case tripleFrame:
			f := s.pop()
			s.push(&frame{kind: strongFrame, attr: f.attr, content: []Node{NewTag("em", nil, f.content...)}})
		case emFrame:
			s.closeAs("em")
		case codeFrame:
			s.addLiteral(x.delim())
		default:
			s.push(&frame{kind: emFrame})
		}

	case Backtick:
		switch {
		case top.kind == codeFrame && top.count == x.Count:
			s.closeAs("code")
		case top.kind == codeFrame:
			s.addLiteral(x.delim())
		default:
			s.push(&frame{kind: codeFrame, count: x.Count})
		}

	default:
		panic(fmt.Sprintf("docmark: unexpected token %v", x.Kind))
	}
}

// flatten flattens any unclosed frames into literal text,
// leaving only the root frame, and returns the root's content.
//
// Popping each frame into its parent in turn would recopy the inner
// content once per level, and the stack can be arbitrarily deep:
// **x*a*** *a*** *a*** ... opens a new ** for every *a***.
// Since each frame ends up appended to the end of its parent,
// the result is the same as appending every frame to the root,
// bottom to top, which copies each node once.
func (s *frameStack) flatten() []Node {
	root := (*s)[0]
	for _, f := range (*s)[1:] {
		root.content = append(root.content, charNodes(f.delim())...)
		root.content = append(root.content, f.content...)
	}
	*s = (*s)[:1]
	return root.content
}
