// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// An input is the character sequence being parsed.
// A character is a single extended grapheme cluster,
// so that "\r\n" is one character and so is a * carrying a combining accent
// (which therefore does not act as a delimiter).
type input struct {
	chars []string

	// runs caches, per character class, the end of the maximal run
	// of that class starting at each offset. See runEnd.
	runs map[*charClass][]int
}

// newInput returns the input for s.
// The characters are kept exactly as written; see sameChar for matching.
func newInput(s string) *input {
	return &input{chars: chars(s)}
}

// chars splits s into grapheme clusters.
func chars(s string) []string {
	var list []string
	state := -1
	for s != "" {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		list = append(list, c)
	}
	return list
}

// A charClass is a named predicate on characters.
type charClass struct {
	name string
	test func(c string) bool
}

var (
	anyChar = &charClass{"character", func(string) bool { return true }}

	notCloseBracket = &charClass{"link text character", func(c string) bool {
		return c != "]" && !isNewline(c)
	}}

	notCloseParen = &charClass{"link destination character", func(c string) bool {
		return c != ")" && !isNewline(c)
	}}

	identHead = &charClass{"identifier", isIdentHead}
	identChar = &charClass{"identifier character", isIdentChar}
)

// runEnd returns the end of the maximal run of characters in class c
// that starts at pos.
//
// Link parsing scans forward over runs like “not a closing bracket”
// and then fails if the run is not followed by the expected closer.
// Done naively, an input like [a[a[a[a... rescans the rest of the line
// from every [, which is quadratic.
// Instead the first request for a class computes the run ends for
// every offset in a single backward pass, and later requests are lookups.
func (in *input) runEnd(c *charClass, pos int) int {
	ends, ok := in.runs[c]
	if !ok {
		ends = make([]int, len(in.chars)+1)
		end := len(in.chars)
		ends[end] = end
		for i := len(in.chars) - 1; i >= 0; i-- {
			if !c.test(in.chars[i]) {
				end = i
			}
			ends[i] = end
		}
		if in.runs == nil {
			in.runs = make(map[*charClass][]int)
		}
		in.runs[c] = ends
	}
	return ends[pos]
}

// sameChar reports whether the characters a and b are canonically equivalent,
// such as "\u00e9" and "e\u0301".
func sameChar(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) == 1 && len(b) == 1 {
		return false
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// firstRune returns the base rune of the character c.
func firstRune(c string) rune {
	r, _ := utf8.DecodeRuneInString(c)
	return r
}

// isNewline reports whether c is a line-breaking character.
// "\r\n" is a single character whose first rune is '\r'.
func isNewline(c string) bool {
	switch firstRune(c) {
	case '\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// isIdentHead reports whether c can start an identifier.
func isIdentHead(c string) bool {
	r := firstRune(c)
	return r == '_' || unicode.IsLetter(r)
}

// isIdentChar reports whether c can continue an identifier.
func isIdentChar(c string) bool {
	r := firstRune(c)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc)
}
