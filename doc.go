// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docmark parses and renders the inline markup used in
// generated documentation.
//
// The markup is a small dialect of Markdown's inline syntax:
//
//	*emphasis*, **strong**, ***both***
//	`code`, ``code containing ` backticks``
//	[link text](https://example.com/)
//	[`Array.append`]              symbol link, rendered as code
//	[`(Swift).Array.append`]      symbol link with a qualifier
//
// Each call to [Render] handles one paragraph or other run of text;
// splitting a document into paragraphs is up to the caller.
// Rendering never fails: delimiters that cannot be matched
// are rendered as literal text.
//
// Emphasis delimiters are matched without regard to the surrounding
// characters, unlike in CommonMark: a * between two words
// opens or closes emphasis just as it would next to a space.
//
// The result is a tree of [Tag] values, which [ToHTML] converts to HTML.
package docmark
