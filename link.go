// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

import (
	"strings"
)

// A Path is one backtick-quoted, dot-separated symbol path in a [SymbolLink],
// such as `Array.append` or `(Swift).Array.append`.
// The parenthesized qualifier, if any, is the Prefix.
type Path struct {
	Prefix      []string // possibly empty
	Identifiers []string // never empty
}

// A SymbolLink is an [Element] representing a documentation cross-reference
// such as [`Array.append`] or [`Array``Element`].
// It renders as code naming the qualified symbol.
type SymbolLink struct {
	Paths  []Path   // never empty
	Suffix []string // trailing bare identifiers, each followed by a backtick
}

func (SymbolLink) isElement() {}

// Name returns the dotted name of the symbol:
// the identifiers of all the paths, then the suffix,
// joined by periods. Path prefixes are not part of the name.
func (x SymbolLink) Name() string {
	var list []string
	for _, p := range x.Paths {
		list = append(list, p.Identifiers...)
	}
	list = append(list, x.Suffix...)
	return strings.Join(list, ".")
}

// A Link is an [Element] representing a hyperlink [text](url).
// The text may contain emphasis and code; the URL is taken literally.
type Link struct {
	Text    []Text
	URL     string
	Classes []string // class attribute values, possibly empty
}

func (Link) isElement() {}

var (
	openBracket  = terminal("[")
	closeBracket = terminal("]")
	openParen    = terminal("(")
	closeParen   = terminal(")")
	period       = terminal(".")
)

// parseIdentifier parses a single identifier.
var parseIdentifier = convert(seq2(class(identHead), span(identChar)),
	func(x pair[string, []string]) string {
		return x.first + strings.Join(x.second, "")
	})

// parseIdentifiers parses one or more period-separated identifiers.
var parseIdentifiers = convert(seq2(parseIdentifier, many(skipThen(period, parseIdentifier))),
	func(x pair[string, []string]) []string {
		return append([]string{x.first}, x.second...)
	})

// parsePathPrefix parses the optional qualifier “(A.B).” at the start of a path.
var parsePathPrefix = optional(skipThen(openParen, thenSkip(thenSkip(parseIdentifiers, closeParen), period)))

// parsePath parses a [Path]:
//
//	Path ::= '`' ( '(' Identifiers ').' )? Identifiers '`'
//
// The opening backtick commits to a path; any later failure is fatal.
func parsePath(in *input, pos int) (Path, int, error) {
	_, pos, err := backtick(in, pos)
	if err != nil {
		return Path{}, 0, err
	}
	prefix, pos, err := parsePathPrefix(in, pos)
	if err != nil {
		return Path{}, 0, commit(err)
	}
	ids, pos, err := parseIdentifiers(in, pos)
	if err != nil {
		return Path{}, 0, commit(err)
	}
	if _, pos, err = backtick(in, pos); err != nil {
		return Path{}, 0, commit(err)
	}
	return Path{Prefix: prefix.val, Identifiers: ids}, pos, nil
}

var (
	parsePaths  = many(parser[Path](parsePath))
	parseSuffix = many(thenSkip(parseIdentifier, backtick))
)

// parseSymbolLink parses a [SymbolLink]:
//
//	SymbolLink ::= '[' Path Path* ( Identifier '`' )* ']'
func parseSymbolLink(in *input, pos int) (SymbolLink, int, error) {
	_, pos, err := openBracket(in, pos)
	if err != nil {
		return SymbolLink{}, 0, err
	}
	head, pos, err := parsePath(in, pos)
	if err != nil {
		return SymbolLink{}, 0, err
	}
	body, pos, err := parsePaths(in, pos)
	if err != nil {
		return SymbolLink{}, 0, err
	}
	suffix, pos, err := parseSuffix(in, pos)
	if err != nil {
		return SymbolLink{}, 0, err
	}
	if _, pos, err = closeBracket(in, pos); err != nil {
		return SymbolLink{}, 0, err
	}
	return SymbolLink{Paths: append([]Path{head}, body...), Suffix: suffix}, pos, nil
}

var (
	parseLinkText = span(notCloseBracket)
	parseLinkDest = span(notCloseParen)
)

// parseLink parses a [Link]:
//
//	Link ::= '[' [^\]\n]* '](' [^)\n]* ')'
//
// The bracketed text is then tokenized on its own as a sequence of [Text],
// so that a link can contain emphasis and code but not other links.
func parseLink(in *input, pos int) (Link, int, error) {
	_, pos, err := openBracket(in, pos)
	if err != nil {
		return Link{}, 0, err
	}
	text, pos, err := parseLinkText(in, pos)
	if err != nil {
		return Link{}, 0, err
	}
	if _, pos, err = closeBracket(in, pos); err != nil {
		return Link{}, 0, err
	}
	if _, pos, err = openParen(in, pos); err != nil {
		return Link{}, 0, err
	}
	url, pos, err := parseLinkDest(in, pos)
	if err != nil {
		return Link{}, 0, err
	}
	if _, pos, err = closeParen(in, pos); err != nil {
		return Link{}, 0, err
	}

	toks, _, err := parseTexts(&input{chars: text}, 0)
	if err != nil {
		return Link{}, 0, err
	}
	return Link{Text: toks, URL: strings.Join(url, "")}, pos, nil
}
