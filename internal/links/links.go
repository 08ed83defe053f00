// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links turns a CSV list of fund website URLs into investor records.
// The company identity is derived from each URL's domain.
package links

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/investor-seed/internal/identity"
	"github.com/pdiddy/investor-seed/pkg/types"
)

// headerMarker marks the first row as a header when found in its first cell.
const headerMarker = "url"

// ExtractCompany derives a human-readable company name from the host of
// rawURL: "https://www.acme-capital.com" yields "Acme Capital". The URL is
// returned unchanged. ok is false when no name can be derived.
func ExtractCompany(rawURL string) (name, original string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL, false
	}

	host := strings.TrimPrefix(u.Host, "www.")
	token, _, _ := strings.Cut(host, ".")
	if token == "" {
		return "", rawURL, false
	}

	pieces := strings.Split(token, "-")
	for i, p := range pieces {
		pieces[i] = capitalize(p)
	}
	return strings.Join(pieces, " "), rawURL, true
}

// capitalize upper-cases the first rune of s and lower-cases the rest, so
// "3i" stays "3i" and "bigfund" becomes "Bigfund".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + cases.Lower(language.Und).String(s[size:])
}

// Parser builds investor records from link rows.
type Parser struct {
	newID  identity.IDFunc
	synth  *identity.Synthesizer
	logger *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithIDFunc overrides record id generation.
func WithIDFunc(f identity.IDFunc) Option {
	return func(p *Parser) { p.newID = f }
}

// WithLogger sets the logger for skipped-row diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// NewParser returns a Parser synthesizing contact fields with cfg.
func NewParser(cfg types.IdentityConfig, opts ...Option) *Parser {
	p := &Parser{
		newID:  identity.NewID,
		synth:  identity.NewSynthesizer(cfg),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ParseFile opens path and parses it with Parse. A missing or malformed
// file is returned as an error; callers treat it as fatal.
func (p *Parser) ParseFile(ctx context.Context, path string, w io.Writer) ([]types.InvestorRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "links: open %s", path)
	}
	defer f.Close()

	records, err := p.Parse(ctx, f, w)
	if err != nil {
		return nil, eris.Wrapf(err, "links: parse %s", path)
	}
	return records, nil
}

// Parse reads URLs from the first column of r. The first row is skipped
// when its first cell contains "url" in any case. Rows whose URL yields no
// company name are skipped.
func (p *Parser) Parse(ctx context.Context, r io.Reader, w io.Writer) ([]types.InvestorRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var records []types.InvestorRecord
	for row := 0; ; row++ {
		if err := ctx.Err(); err != nil {
			return records, eris.Wrap(err, "links: context cancelled")
		}

		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return records, eris.Wrapf(err, "links: read row %d", row)
		}
		if len(fields) == 0 {
			continue
		}

		first := strings.TrimSpace(fields[0])
		if row == 0 && strings.Contains(strings.ToLower(first), headerMarker) {
			continue
		}
		if first == "" {
			continue
		}

		name, original, ok := ExtractCompany(first)
		if !ok {
			p.logger.Debug("links: no company in url", zap.Int("row", row), zap.String("url", first))
			fmt.Fprintf(w, "skipped  %s\n", first)
			continue
		}

		records = append(records, p.record(name, original))
		fmt.Fprintf(w, "link     %s\n", name)
	}

	return records, nil
}

func (p *Parser) record(name, website string) types.InvestorRecord {
	return types.InvestorRecord{
		ID:          p.newID(),
		CompanyName: name,
		FullName:    p.synth.FullName(name),
		Email:       p.synth.Email(name),
		WebsiteURL:  website,
		UserType:    types.UserTypeInvestor,
		AvatarURL:   p.synth.AvatarURL(name),
	}
}
