// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmark

import (
	"strings"
	"testing"
)

// Each case exercises one row of the delimiter table in render.go.
var transitionTests = []struct {
	name string
	in   string
	out  string
}{
	{"triple/triple", "***a***", "<p><em><strong>a</strong></em></p>"},
	{"triple/strong", "**a***b*", "<p><strong>a</strong><em>b</em></p>"},
	{"triple/em", "*a***b**", "<p><em>a</em><strong>b</strong></p>"},
	{"triple/code", "`***`", "<p><code>***</code></p>"},
	{"triple/root", "***a", "<p>***a</p>"},
	{"strong/triple", "***a**b*", "<p><em><strong>a</strong>b</em></p>"},
	{"strong/strong", "**a**", "<p><strong>a</strong></p>"},
	{"strong/em", "*a**b*", "<p><em>a</em><em>b</em></p>"},
	{"strong/code", "`**`", "<p><code>**</code></p>"},
	{"strong/root", "**a", "<p>**a</p>"},
	{"em/triple", "***a*b**", "<p><strong><em>a</em>b</strong></p>"},
	{"em/em", "*a*", "<p><em>a</em></p>"},
	{"em/strong", "**a*b*c**", "<p><strong>a<em>b</em>c</strong></p>"},
	{"em/code", "`*`", "<p><code>*</code></p>"},
	{"em/root", "*a", "<p>*a</p>"},
	{"tick/same", "``a``", "<p><code>a</code></p>"},
	{"tick/other", "``a`b``", "<p><code>a`b</code></p>"},
	{"tick/em", "*`a`*", "<p><em><code>a</code></em></p>"},
	{"tick/root", "`a", "<p>`a</p>"},
	{"flatten/reshaped", "***a**", "<p>*<strong>a</strong></p>"},
	{"flatten/nested", "*`a*", "<p>*`a*</p>"},
	{"flatten/inner", "*a**b", "<p><em>a</em>*b</p>"},
	{"flatten/code-after", "`*a`*", "<p><code>*a</code>*</p>"},
	{"symbol", "[`Foo.bar`]", "<p><code>Foo.bar</code></p>"},
	{"symbol/in-em", "*[`A`]*", "<p><em><code>A</code></em></p>"},
	{"link/in-em", "*[a](b)*", `<p><em><a href="b" target="_blank">a</a></em></p>`},
	{"link/unclosed-inside", "[*a](b)", `<p><a href="b" target="_blank">*a</a></p>`},
}

func TestTransitions(t *testing.T) {
	for _, tt := range transitionTests {
		t.Run(tt.name, func(t *testing.T) {
			tag := Render(Paragraph, nil, tt.in)
			if out := ToHTML(tag); out != tt.out {
				t.Errorf("Render(%q):\nhave %s\nwant %s\nparse:\n%s", tt.in, out, tt.out, dump(tag))
			}
		})
	}
}

func TestRenderRoot(t *testing.T) {
	tag := Render(Anchor, map[string]string{"href": "/x"}, "*a*")
	if tag.Name != "a" || tag.Attr["href"] != "/x" {
		t.Fatalf("root = <%s %v>, want <a href=/x>", tag.Name, tag.Attr)
	}
	if out, want := ToHTML(tag), `<a href="/x"><em>a</em></a>`; out != want {
		t.Errorf("have %s\nwant %s", out, want)
	}

	tag = Render(Paragraph, nil, "")
	if tag.Name != "p" || len(tag.Content) != 0 {
		t.Errorf("Render of empty input = %s", dump(tag))
	}
}

func TestRootString(t *testing.T) {
	for _, tt := range []struct {
		r    Root
		want string
	}{
		{Paragraph, "p"},
		{Anchor, "a"},
		{Root(7), "Root(7)"},
	} {
		if s := tt.r.String(); s != tt.want {
			t.Errorf("Root(%d).String() = %q, want %q", int(tt.r), s, tt.want)
		}
	}
}

func TestCodeIdempotent(t *testing.T) {
	inputs := []string{
		"`a*b**c***d`",
		"``x`y```z``",
		"`***`*`**`",
		"a `b` c ``d`` e",
	}
	for _, in := range inputs {
		var check func(*Tag)
		check = func(tag *Tag) {
			for _, n := range tag.Content {
				c, ok := n.(*Tag)
				if !ok {
					continue
				}
				if c.Name != "code" {
					check(c)
					continue
				}
				for _, cn := range c.Content {
					if _, ok := cn.(Char); !ok {
						t.Errorf("%q: <code> contains markup: %s", in, dump(c))
					}
				}
				again := NewTextTag("code", nil, c.Text())
				if ToHTML(again) != ToHTML(c) {
					t.Errorf("%q: code re-render changed:\nhave %s\nwant %s", in, ToHTML(again), ToHTML(c))
				}
			}
		}
		check(Render(Paragraph, nil, in))
	}
}

var inlineTags = map[string]bool{
	"p":      true,
	"a":      true,
	"em":     true,
	"strong": true,
	"code":   true,
}

// checkTags reports an error for any tag in the tree that
// the renderer should never produce.
func checkTags(t *testing.T, in string, tag *Tag) {
	t.Helper()
	if !inlineTags[tag.Name] {
		t.Errorf("%q: unexpected tag <%s>", in, tag.Name)
	}
	for _, n := range tag.Content {
		if c, ok := n.(*Tag); ok {
			checkTags(t, in, c)
		}
	}
}

// strip removes emphasis and code delimiters from s.
func strip(s string) string {
	return strings.NewReplacer("*", "", "`", "").Replace(s)
}

// countTags returns the number of tags named name in the tree below t.
func countTags(t *Tag, name string) int {
	n := 0
	for _, c := range t.Content {
		if c, ok := c.(*Tag); ok {
			if c.Name == name {
				n++
			}
			n += countTags(c, name)
		}
	}
	return n
}

// checkConservation checks that rendering the link-free input in
// kept every character: each * and ` either became half of a tag boundary
// or is still present as literal text, and all other characters
// appear unchanged and in order.
func checkConservation(t *testing.T, in string, tag *Tag) {
	t.Helper()
	text := tag.Text()
	if have, want := strip(text), strip(in); have != want {
		t.Errorf("%q: text %q, want %q", in, have, want)
	}

	em, strong, code := countTags(tag, "em"), countTags(tag, "strong"), countTags(tag, "code")
	if have, want := strings.Count(text, "*")+2*em+4*strong, strings.Count(in, "*"); have != want {
		t.Errorf("%q: %d literal * + %d <em> + %d <strong> account for %d *, want %d\n%s",
			in, strings.Count(text, "*"), em, strong, have, want, dump(tag))
	}
	// Each <code> takes an equal run of backticks on either side.
	d := strings.Count(in, "`") - strings.Count(text, "`")
	if code == 0 && d != 0 || d%2 != 0 || d < 2*code {
		t.Errorf("%q: %d backticks consumed by %d <code>\n%s", in, d, code, dump(tag))
	}
	if em+strong+code == 0 && text != in {
		t.Errorf("%q: untagged text changed to %q", in, text)
	}
}

func TestConservation(t *testing.T) {
	inputs := []string{
		"*a **b *c***",
		"***x** y* z",
		"`a``b```c",
		"**x*a*** *a*** *a***",
		"* ** *** **** *****",
		"`*` **`**",
		"``a`` `b` ```c```",
		"**a `b** c`",
		"***",
		"`",
	}
	for _, in := range inputs {
		tag := Render(Paragraph, nil, in)
		checkTags(t, in, tag)
		checkConservation(t, in, tag)
	}
}

// Text is not normalized: canonically or compatibly equivalent
// spellings come back exactly as written.
func TestTextPreserved(t *testing.T) {
	inputs := []string{
		"e\u0301",
		"\u212b",
		"x\u0323\u0307",
		"\uf900",
		"*e\u0301* `\u212b`",
	}
	for _, in := range inputs {
		tag := Render(Paragraph, nil, in)
		if have, want := tag.Text(), strip(in); have != want {
			t.Errorf("Render(%q).Text() = %+q, want %+q", in, have, want)
		}
		if !strings.Contains(ToHTML(tag), strings.Fields(strip(in))[0]) {
			t.Errorf("ToHTML(Render(%q)) = %+q, lost original bytes", in, ToHTML(tag))
		}
	}
}

func TestParserRenderClasses(t *testing.T) {
	p := &Parser{LinkClasses: []string{"ext"}}
	out := ToHTML(p.Render(Paragraph, nil, "[a](b)"))
	want := `<p><a class="ext" href="b" target="_blank">a</a></p>`
	if out != want {
		t.Errorf("have %s\nwant %s", out, want)
	}
}
