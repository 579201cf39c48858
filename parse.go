// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

import (
	"errors"
	"fmt"
)

// Parsing
//
// The grammar is written as a handful of small parsers composed by
// higher-order combinators. A parser is a function of the input and a
// cursor position. It either succeeds, returning a value and the position
// just past what it consumed, or fails with an error.
// The cursor is passed by value, so a failing parser cannot move the
// caller's cursor: backtracking is simply trying the next parser
// at the same position.
//
// There are two kinds of failure. Most failures are “no match”: the
// parser did not recognize its construct here, and an enclosing optional,
// repetition, or alternation may try something else. Some constructs commit
// once they have seen their leading token (a backtick in a symbol path,
// for example), and failures after that point are fatal: optional and
// repetition pass them through instead of treating them as absence.
// Only an alternation, which is where the grammar decides between whole
// constructs, abandons a fatally failed alternative and tries the next.

// A parser parses a T from in at pos, returning the T and the position
// where it ends. On failure it returns a *ParseError.
type parser[T any] func(in *input, pos int) (x T, end int, err error)

// The kinds of [ParseError].
var (
	ErrNoMatch       = errors.New("no match")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// A ParseError describes a failed parse.
// Its Kind is [ErrNoMatch] or [ErrUnexpectedEOF],
// and errors.Is reports a ParseError as matching its Kind.
type ParseError struct {
	Pos      int    // character offset of the failure
	Expected string // description of what was expected
	Kind     error  // ErrNoMatch or ErrUnexpectedEOF
	Fatal    bool   // failure inside a committed construct
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("offset %d: %v: expected %s", e.Pos, e.Kind, e.Expected)
	if e.Fatal {
		msg += " (committed)"
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Kind }

// fail returns a ParseError at pos, choosing the kind
// by whether the input was exhausted.
func fail(in *input, pos int, expected string) error {
	kind := ErrNoMatch
	if pos >= len(in.chars) {
		kind = ErrUnexpectedEOF
	}
	return &ParseError{Pos: pos, Expected: expected, Kind: kind}
}

// commit marks err as fatal.
func commit(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) && !pe.Fatal {
		e := *pe
		e.Fatal = true
		return &e
	}
	return err
}

// isFatal reports whether err is a fatal ParseError.
func isFatal(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Fatal
}

// terminal returns a parser for the literal token tok,
// which matches only if every character of tok is present,
// up to canonical equivalence.
func terminal(tok string) parser[string] {
	want := chars(tok)
	expected := fmt.Sprintf("%q", tok)
	return func(in *input, pos int) (string, int, error) {
		for i, c := range want {
			if pos+i >= len(in.chars) {
				return "", 0, &ParseError{Pos: pos, Expected: expected, Kind: ErrUnexpectedEOF}
			}
			if !sameChar(in.chars[pos+i], c) {
				return "", 0, &ParseError{Pos: pos, Expected: expected, Kind: ErrNoMatch}
			}
		}
		return tok, pos + len(want), nil
	}
}

// class returns a parser for a single character in class c.
func class(c *charClass) parser[string] {
	return func(in *input, pos int) (string, int, error) {
		if pos >= len(in.chars) || !c.test(in.chars[pos]) {
			return "", 0, fail(in, pos, c.name)
		}
		return in.chars[pos], pos + 1, nil
	}
}

// span returns a parser for a possibly empty run of characters in class c.
// It never fails. It is equivalent to many(class(c)) but runs in
// amortized constant time; see [input.runEnd].
func span(c *charClass) parser[[]string] {
	return func(in *input, pos int) ([]string, int, error) {
		end := in.runEnd(c, pos)
		return in.chars[pos:end], end, nil
	}
}

// An option is the result of an optional parse.
type option[T any] struct {
	val T
	ok  bool
}

// optional returns a parser for an optional p.
// If p does not match, the result is absent and no input is consumed.
// Fatal errors from p are returned.
func optional[T any](p parser[T]) parser[option[T]] {
	return func(in *input, pos int) (option[T], int, error) {
		x, end, err := p(in, pos)
		if err != nil {
			if isFatal(err) {
				return option[T]{}, 0, err
			}
			return option[T]{}, pos, nil
		}
		return option[T]{x, true}, end, nil
	}
}

// many returns a parser for zero or more repetitions of p, taken greedily.
// It stops at the first position where p does not match.
// Fatal errors from p are returned.
func many[T any](p parser[T]) parser[[]T] {
	return func(in *input, pos int) ([]T, int, error) {
		var list []T
		for {
			x, end, err := p(in, pos)
			if err != nil {
				if isFatal(err) {
					return nil, 0, err
				}
				return list, pos, nil
			}
			if end == pos {
				// p matched nothing; repeating it would loop forever.
				return list, pos, nil
			}
			list = append(list, x)
			pos = end
		}
	}
}

// many1 returns a parser for one or more repetitions of p.
func many1[T any](p parser[T]) parser[[]T] {
	rest := many(p)
	return func(in *input, pos int) ([]T, int, error) {
		x, pos, err := p(in, pos)
		if err != nil {
			return nil, 0, err
		}
		list, pos, err := rest(in, pos)
		if err != nil {
			return nil, 0, err
		}
		return append([]T{x}, list...), pos, nil
	}
}

// alt returns a parser that tries each of ps in order at the same position
// and returns the first success. If all fail, it returns the error from the
// last alternative.
func alt[T any](ps ...parser[T]) parser[T] {
	return func(in *input, pos int) (T, int, error) {
		var err error
		for _, p := range ps {
			var x T
			var end int
			x, end, err = p(in, pos)
			if err == nil {
				return x, end, nil
			}
		}
		var zero T
		return zero, 0, err
	}
}

// seq2 returns a parser for p followed by q.
// If either fails, the whole sequence fails.
func seq2[A, B any](p parser[A], q parser[B]) parser[pair[A, B]] {
	return func(in *input, pos int) (pair[A, B], int, error) {
		a, pos, err := p(in, pos)
		if err != nil {
			return pair[A, B]{}, 0, err
		}
		b, pos, err := q(in, pos)
		if err != nil {
			return pair[A, B]{}, 0, err
		}
		return pair[A, B]{a, b}, pos, nil
	}
}

type pair[A, B any] struct {
	first  A
	second B
}

// skipThen returns a parser for p followed by q, keeping only q's result.
func skipThen[A, B any](p parser[A], q parser[B]) parser[B] {
	return convert(seq2(p, q), func(x pair[A, B]) B { return x.second })
}

// thenSkip returns a parser for p followed by q, keeping only p's result.
func thenSkip[A, B any](p parser[A], q parser[B]) parser[A] {
	return convert(seq2(p, q), func(x pair[A, B]) A { return x.first })
}

// convert returns a parser that applies f to the result of p.
func convert[A, B any](p parser[A], f func(A) B) parser[B] {
	return func(in *input, pos int) (B, int, error) {
		x, end, err := p(in, pos)
		if err != nil {
			var zero B
			return zero, 0, err
		}
		return f(x), end, nil
	}
}
