// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal(t *testing.T) {
	in := newInput("aba")
	ab := terminal("ab")

	x, end, err := ab(in, 0)
	require.NoError(t, err)
	assert.Equal(t, "ab", x)
	assert.Equal(t, 2, end)

	_, _, err = ab(in, 1)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, _, err = ab(in, 2)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Pos)
	assert.False(t, pe.Fatal)
}

func TestTerminalEquivalence(t *testing.T) {
	in := newInput("e\u0301")
	x, end, err := terminal("\u00e9")(in, 0)
	require.NoError(t, err)
	assert.Equal(t, "\u00e9", x)
	assert.Equal(t, 1, end)
}

func TestClass(t *testing.T) {
	in := newInput("a]")
	p := class(notCloseBracket)

	x, end, err := p(in, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", x)
	assert.Equal(t, 1, end)

	_, _, err = p(in, 1)
	assert.ErrorIs(t, err, ErrNoMatch)
	_, _, err = p(in, 2)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestOptional(t *testing.T) {
	in := newInput("ab")
	p := optional(terminal("a"))

	x, end, err := p(in, 0)
	require.NoError(t, err)
	assert.True(t, x.ok)
	assert.Equal(t, "a", x.val)
	assert.Equal(t, 1, end)

	x, end, err = p(in, 1)
	require.NoError(t, err)
	assert.False(t, x.ok)
	assert.Equal(t, 1, end, "absent optional must not move the cursor")
}

func TestMany(t *testing.T) {
	in := newInput("aaab")
	p := many(terminal("a"))

	x, end, err := p(in, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a", "a"}, x)
	assert.Equal(t, 3, end)

	x, end, err = p(in, 3)
	require.NoError(t, err)
	assert.Empty(t, x)
	assert.Equal(t, 3, end)

	_, _, err = many1(terminal("a"))(in, 3)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestManyEmptyMatch(t *testing.T) {
	// span matches the empty string; many must not loop on it.
	in := newInput("]]")
	x, end, err := many(span(notCloseBracket))(in, 0)
	require.NoError(t, err)
	assert.Empty(t, x)
	assert.Equal(t, 0, end)
}

func TestSeqAtomic(t *testing.T) {
	in := newInput("ax")
	p := seq2(terminal("a"), terminal("b"))

	pos := 0
	_, _, err := p(in, pos)
	require.Error(t, err)
	assert.Equal(t, 0, pos)

	// The failed sequence leaves nothing consumed for the next alternative.
	q := alt(
		convert(p, func(pair[string, string]) string { return "ab" }),
		terminal("a"),
	)
	x, end, err := q(in, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", x)
	assert.Equal(t, 1, end)
}

func TestAltOrder(t *testing.T) {
	in := newInput("**")
	p := alt(terminal("*"), terminal("**"))
	x, end, err := p(in, 0)
	require.NoError(t, err)
	assert.Equal(t, "*", x, "first matching alternative wins")
	assert.Equal(t, 1, end)

	_, _, err = alt(terminal("x"), terminal("y"))(in, 0)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFatal(t *testing.T) {
	in := newInput("`a.")

	_, _, err := parsePath(in, 0)
	require.Error(t, err)
	assert.True(t, isFatal(err), "failure after the opening backtick is fatal: %v", err)
	assert.ErrorIs(t, err, ErrNoMatch)

	// optional and many pass fatal errors through.
	_, _, err = optional(parser[Path](parsePath))(in, 0)
	assert.True(t, isFatal(err))
	_, _, err = many(parser[Path](parsePath))(in, 0)
	assert.True(t, isFatal(err))

	// alt abandons the fatal alternative.
	p := alt(
		convert(parser[Path](parsePath), func(Path) string { return "path" }),
		terminal("`"),
	)
	x, end, err := p(in, 0)
	require.NoError(t, err)
	assert.Equal(t, "`", x)
	assert.Equal(t, 1, end)

	// A path that never starts is not fatal.
	_, _, err = parsePath(newInput("a"), 0)
	require.Error(t, err)
	assert.False(t, isFatal(err))
}

func TestParseErrorMessage(t *testing.T) {
	err := commit(&ParseError{Pos: 3, Expected: `"]"`, Kind: ErrUnexpectedEOF})
	assert.EqualError(t, err, `offset 3: unexpected end of input: expected "]" (committed)`)
}
