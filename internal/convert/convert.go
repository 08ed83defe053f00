// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns Markdown profiles into HTML and plain text for the
// heuristic profile extractor.
package convert

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Document is a converted Markdown source.
type Document struct {
	// HTML is the rendered Markdown.
	HTML string

	// Text is HTML with tags stripped. Case and whitespace are preserved and
	// block elements end with a blank line, so paragraphs are separated by
	// "\n\n".
	Text string

	// Heading is the text of the first h1, h2 or h3 in document order, or
	// "" when the document has none.
	Heading string
}

// Converter transforms Markdown source into a Document. The goldmark
// backend is the only implementation; tests substitute failing fakes.
type Converter interface {
	Convert(src []byte) (Document, error)
}

// GoldmarkConverter renders Markdown with goldmark. Raw HTML in the source
// is passed through so it can be stripped like generated markup.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter returns a converter with goldmark's CommonMark
// defaults.
func NewGoldmarkConverter() *GoldmarkConverter {
	return &GoldmarkConverter{
		md: goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe())),
	}
}

// Convert renders src to HTML and strips it to text. Sources that are not
// valid UTF-8 are rejected.
func (c *GoldmarkConverter) Convert(src []byte) (Document, error) {
	if !utf8.Valid(src) {
		return Document{}, eris.New("convert: source is not valid UTF-8")
	}

	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return Document{}, eris.Wrap(err, "convert: render markdown")
	}

	text, heading, err := StripHTML(buf.String())
	if err != nil {
		return Document{}, err
	}

	return Document{
		HTML:    buf.String(),
		Text:    text,
		Heading: heading,
	}, nil
}

// ConvertFile reads path and converts its contents.
func ConvertFile(c Converter, path string) (Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Document{}, eris.Wrapf(err, "convert: read %s", path)
	}
	doc, err := c.Convert(src)
	if err != nil {
		return Document{}, eris.Wrapf(err, "convert: %s", path)
	}
	return doc, nil
}
