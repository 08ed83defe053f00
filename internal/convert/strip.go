// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockEnds get a trailing newline so that, together with the newline the
// renderer writes between blocks, paragraphs are separated by a blank line.
var blockEnds = map[atom.Atom]bool{
	atom.P: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Ul: true, atom.Ol: true, atom.Blockquote: true, atom.Pre: true,
	atom.Table: true, atom.Div: true,
}

var headings = map[atom.Atom]bool{
	atom.H1: true, atom.H2: true, atom.H3: true,
}

// StripHTML returns the text content of s with tags removed and entities
// unescaped, plus the text of the first h1-h3 heading.
func StripHTML(s string) (text, heading string, err error) {
	z := html.NewTokenizer(strings.NewReader(s))

	var (
		out      strings.Builder
		head     strings.Builder
		inHead   atom.Atom
		headDone bool
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return out.String(), strings.TrimSpace(head.String()), nil
			}
			return "", "", eris.Wrap(z.Err(), "convert: tokenize html")

		case html.TextToken:
			t := string(z.Text())
			out.WriteString(t)
			if inHead != 0 {
				head.WriteString(t)
			}

		case html.StartTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if headings[a] && !headDone && inHead == 0 {
				inHead = a
			}
			if a == atom.Hr {
				out.WriteByte('\n')
			}

		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.Hr {
				out.WriteByte('\n')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == inHead {
				inHead = 0
				// An empty heading does not name the document.
				headDone = strings.TrimSpace(head.String()) != ""
			}
			if blockEnds[a] {
				out.WriteByte('\n')
			}
		}
	}
}
