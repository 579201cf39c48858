// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

import (
	"fmt"
	"strings"
)

// A TextKind is the kind of a [Text] token.
type TextKind int

const (
	Star3    TextKind = iota // ***
	Star2                    // **
	Star1                    // *
	Backtick                 // run of Count backticks
	Wildcard                 // any other single character
)

var textKindNames = [...]string{
	Star3:    "Star3",
	Star2:    "Star2",
	Star1:    "Star1",
	Backtick: "Backtick",
	Wildcard: "Wildcard",
}

func (k TextKind) String() string {
	if 0 <= k && int(k) < len(textKindNames) {
		return textKindNames[k]
	}
	return fmt.Sprintf("TextKind(%d)", int(k))
}

// A Text is an [Element] representing a single text token:
// an emphasis delimiter, a backtick run, or an ordinary character.
type Text struct {
	Kind  TextKind
	Count int    // number of backticks, for Backtick
	Char  string // the character, for Wildcard
}

func (Text) isElement() {}

// delim returns the literal text of a delimiter token.
func (x Text) delim() string {
	switch x.Kind {
	case Star3:
		return "***"
	case Star2:
		return "**"
	case Star1:
		return "*"
	case Backtick:
		return strings.Repeat("`", x.Count)
	}
	return x.Char
}

func (x Text) String() string {
	return fmt.Sprintf("%v(%q)", x.Kind, x.delim())
}

var backtick = terminal("`")

// parseText is the parser for a single [Text] token.
//
// The alternatives are tried longest delimiter first:
// otherwise *** would split into * and **.
// The final wildcard alternative matches any character,
// so parseText fails only at the end of the input.
var parseText = alt(
	convert(terminal("***"), func(string) Text { return Text{Kind: Star3} }),
	convert(terminal("**"), func(string) Text { return Text{Kind: Star2} }),
	convert(terminal("*"), func(string) Text { return Text{Kind: Star1} }),
	convert(many1(backtick), func(ticks []string) Text { return Text{Kind: Backtick, Count: len(ticks)} }),
	convert(class(anyChar), func(c string) Text { return Text{Kind: Wildcard, Char: c} }),
)

// parseTexts tokenizes all of in.
var parseTexts = many(parseText)
