// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// failingConverter implements Converter and always returns err.
type failingConverter struct {
	err error
}

func (f *failingConverter) Convert(src []byte) (Document, error) {
	return Document{}, f.err
}

func TestGoldmarkConverter(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		wantHeading string
		wantText    []string // substrings expected in Text
		absentText  []string // substrings that must not appear
	}{
		{
			name:        "first h1 names document",
			src:         "# Peak Capital\n\nAbout: We back founders.\n\n## Team\n",
			wantHeading: "Peak Capital",
			wantText:    []string{"Peak Capital\n\n", "About: We back founders.\n\n", "Team"},
			absentText:  []string{"<p>", "<h1>", "#"},
		},
		{
			name:        "h2 before h3",
			src:         "Intro text.\n\n## North Fund\n\n### Details\n",
			wantHeading: "North Fund",
		},
		{
			name:        "h4 does not name document",
			src:         "#### Small\n\nbody\n",
			wantHeading: "",
			wantText:    []string{"Small", "body"},
		},
		{
			name:        "no heading",
			src:         "Just a paragraph.",
			wantHeading: "",
			wantText:    []string{"Just a paragraph.\n\n"},
		},
		{
			name:        "case and inline markup",
			src:         "Thesis: **Deep-Tech** and _Climate_\nsecond line\n",
			wantText:    []string{"Thesis: Deep-Tech and Climate\nsecond line\n\n"},
			absentText:  []string{"**", "<strong>"},
			wantHeading: "",
		},
		{
			name:        "entities unescaped",
			src:         "# Bob &amp; Co\n\nR&D, M&A\n",
			wantHeading: "Bob & Co",
			wantText:    []string{"R&D, M&A"},
		},
		{
			name:        "raw html stripped",
			src:         "<div>Overview: hidden gem</div>\n\nnext\n",
			wantText:    []string{"Overview: hidden gem"},
			absentText:  []string{"<div>"},
			wantHeading: "",
		},
		{
			name:        "empty heading skipped",
			src:         "#\n\n## Real Name\n",
			wantHeading: "Real Name",
		},
	}

	c := NewGoldmarkConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := c.Convert([]byte(tt.src))
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if doc.Heading != tt.wantHeading {
				t.Errorf("Heading = %q, want %q", doc.Heading, tt.wantHeading)
			}
			for _, s := range tt.wantText {
				if !strings.Contains(doc.Text, s) {
					t.Errorf("Text %q does not contain %q", doc.Text, s)
				}
			}
			for _, s := range tt.absentText {
				if strings.Contains(doc.Text, s) {
					t.Errorf("Text %q should not contain %q", doc.Text, s)
				}
			}
			if doc.HTML == "" {
				t.Error("HTML should not be empty")
			}
		})
	}
}

func TestGoldmarkConverter_InvalidUTF8(t *testing.T) {
	_, err := NewGoldmarkConverter().Convert([]byte{'#', ' ', 0xff, 0xfe})
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestStripHTML(t *testing.T) {
	text, heading, err := StripHTML("<h3>Fund</h3>\n<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n<hr>\n<p>x</p>\n")
	if err != nil {
		t.Fatal(err)
	}
	if heading != "Fund" {
		t.Errorf("heading = %q", heading)
	}
	if !strings.HasPrefix(text, "Fund\n\n") {
		t.Errorf("text %q should start with heading and a blank line", text)
	}
	if !strings.Contains(text, "a\nb\n") {
		t.Errorf("tight list items should stay on consecutive lines: %q", text)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fund.md")
	if err := os.WriteFile(path, []byte("# Fund\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ConvertFile(NewGoldmarkConverter(), path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Heading != "Fund" {
		t.Errorf("Heading = %q", doc.Heading)
	}

	if _, err := ConvertFile(NewGoldmarkConverter(), filepath.Join(dir, "missing.md")); err == nil {
		t.Error("expected error for missing file")
	}

	_, err = ConvertFile(&failingConverter{err: errors.New("boom")}, path)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected wrapped converter error, got %v", err)
	}
}
