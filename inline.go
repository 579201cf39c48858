// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

// An Element is one parsed unit of inline markup:
// a [SymbolLink], a [Link], or a [Text] token.
type Element interface {
	isElement()
}

// A Parser holds options for parsing and rendering inline markup.
// The zero Parser is ready to use, and a Parser may be used
// by multiple goroutines at once as long as its fields are not modified.
type Parser struct {
	// LinkClasses lists the classes to attach to every parsed [Link].
	LinkClasses []string
}

// parseElement parses a single [Element].
// Symbol links are tried first, then links, then plain text tokens.
// A symbol link or link that fails partway, even fatally,
// is abandoned in favor of the next alternative, so that malformed
// markup falls back to literal text.
var parseElement = alt(
	convert(parser[SymbolLink](parseSymbolLink), func(x SymbolLink) Element { return x }),
	convert(parser[Link](parseLink), func(x Link) Element { return x }),
	convert(parseText, func(x Text) Element { return x }),
)

var parseElements = many(parseElement)

// Parse parses s into a sequence of elements.
// Because any character can be a [Text] token, the entire input is consumed
// and Parse cannot fail.
func (p *Parser) Parse(s string) []Element {
	list, _, err := parseElements(newInput(s), 0)
	if err != nil {
		// parseText only fails at end of input, so neither can many(parseElement).
		panic("docmark: " + err.Error())
	}
	if len(p.LinkClasses) > 0 {
		for i, x := range list {
			if l, ok := x.(Link); ok {
				l.Classes = p.LinkClasses
				list[i] = l
			}
		}
	}
	return list
}

// ParseElements parses s into a sequence of elements using the default options.
func ParseElements(s string) []Element {
	var p Parser
	return p.Parse(s)
}
