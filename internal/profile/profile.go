// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile builds investor records from free-text Markdown fund
// profiles. Extraction is a fixed sequence of "try pattern, else default"
// steps over the document's plain text; it is a best-effort matcher, not a
// parser.
package profile

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pdiddy/investor-seed/internal/convert"
	"github.com/pdiddy/investor-seed/internal/identity"
	"github.com/pdiddy/investor-seed/pkg/types"
)

// ErrNoCompanyName is returned when neither the document nor its filename
// yields a company name. It is the only error ParseFile returns.
var ErrNoCompanyName = eris.New("profile: no company name")

// Extractor parses Markdown profiles into investor records.
type Extractor struct {
	defaults types.ProfileDefaults
	fallback types.FallbackDefaults
	currency string

	conv   convert.Converter
	newID  identity.IDFunc
	synth  *identity.Synthesizer
	logger *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConverter replaces the goldmark converter.
func WithConverter(c convert.Converter) Option {
	return func(e *Extractor) { e.conv = c }
}

// WithIDFunc overrides record id generation.
func WithIDFunc(f identity.IDFunc) Option {
	return func(e *Extractor) { e.newID = f }
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// NewExtractor returns an Extractor using the defaults, fallback values,
// currency and identity templates from cfg.
func NewExtractor(cfg types.SeedConfig, opts ...Option) *Extractor {
	e := &Extractor{
		defaults: cfg.Profile,
		fallback: cfg.Fallback,
		currency: cfg.Currency,
		conv:     convert.NewGoldmarkConverter(),
		newID:    identity.NewID,
		synth:    identity.NewSynthesizer(cfg.Identity),
		logger:   zap.NewNop(),
	}
	if e.defaults.SizeFactor == 0 {
		e.defaults.SizeFactor = 1000
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// ParseFile reads and parses the profile at path. Read, encoding and
// conversion failures are logged and answered with a minimal record named
// after the file; they are never returned. The only error is
// ErrNoCompanyName, when even the filename yields no name.
func (e *Extractor) ParseFile(path string) (rec types.InvestorRecord, err error) {
	name := BaseName(path)

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("profile: extraction panicked, using fallback record",
				zap.String("path", path), zap.Any("panic", r))
			rec, err = e.Fallback(name)
		}
	}()

	doc, cerr := convert.ConvertFile(e.conv, path)
	if cerr != nil {
		e.logger.Warn("profile: cannot convert, using fallback record",
			zap.String("path", path), zap.Error(cerr))
		return e.Fallback(name)
	}

	rec, err = e.FromDocument(doc, name)
	if err != nil {
		return types.InvestorRecord{}, eris.Wrapf(err, "profile: %s", path)
	}
	return rec, nil
}

// FromDocument applies the heuristic extraction to a converted document.
// fallbackName names the record when the document has no h1-h3 heading.
func (e *Extractor) FromDocument(doc convert.Document, fallbackName string) (types.InvestorRecord, error) {
	name := strings.TrimSpace(doc.Heading)
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		return types.InvestorRecord{}, ErrNoCompanyName
	}

	text := doc.Text
	d := e.defaults

	bio := firstOr(bioPattern, text, d.Bio)
	thesis := firstOr(thesisPattern, text, d.Thesis)
	sectors := listOr(sectorsPattern, text, d.Sectors)
	stages := listOr(stagesPattern, text, d.Stages)

	minSize, maxSize := d.MinSize, d.MaxSize
	if sizeText, ok := findSection(sizePattern, text); ok {
		if lo, hi, ok := SizeRange(Numbers(sizeText), d.SizeFactor); ok {
			minSize, maxSize = lo, hi
		}
	}

	return types.InvestorRecord{
		ID:                  e.newID(),
		CompanyName:         name,
		FullName:            name,
		Email:               e.synth.Email(name),
		Bio:                 bio,
		UserType:            types.UserTypeInvestor,
		AvatarURL:           e.synth.AvatarURL(name),
		InvestmentThesis:    thesis,
		InvestmentStages:    stages,
		PreferredIndustries: sectors,
		InvestmentSizes: &types.InvestmentSizes{
			Min:      minSize,
			Max:      maxSize,
			Currency: e.currency,
		},
	}, nil
}

// Fallback returns the minimal record used when a profile cannot be read.
func (e *Extractor) Fallback(name string) (types.InvestorRecord, error) {
	if name == "" {
		return types.InvestorRecord{}, ErrNoCompanyName
	}
	f := e.fallback
	return types.InvestorRecord{
		ID:                  e.newID(),
		CompanyName:         name,
		FullName:            name,
		Email:               e.synth.Email(name),
		Bio:                 f.Bio,
		UserType:            types.UserTypeInvestor,
		AvatarURL:           e.synth.AvatarURL(name),
		InvestmentThesis:    f.Thesis,
		InvestmentStages:    append([]string(nil), f.Stages...),
		PreferredIndustries: append([]string(nil), f.Industries...),
		InvestmentSizes: &types.InvestmentSizes{
			Min:      e.defaults.MinSize,
			Max:      e.defaults.MaxSize,
			Currency: e.currency,
		},
	}, nil
}

// BaseName returns the file name of path up to its first '.', so
// "Fund-data/venture capital-NL.md" names "venture capital-NL".
func BaseName(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	name, _, _ := strings.Cut(base, ".")
	return name
}

func firstOr(re *regexp.Regexp, text, def string) string {
	if v, ok := findSection(re, text); ok {
		return v
	}
	return def
}

func listOr(re *regexp.Regexp, text string, def []string) []string {
	if v, ok := findSection(re, text); ok {
		return splitList(v)
	}
	return append([]string(nil), def...)
}

// String renders a one-line summary for progress output.
func String(r types.InvestorRecord) string {
	s := r.InvestmentSizes
	if s == nil {
		return r.CompanyName
	}
	return fmt.Sprintf("%s (%d-%d %s, %d stages, %d sectors)",
		r.CompanyName, s.Min, s.Max, s.Currency, len(r.InvestmentStages), len(r.PreferredIndustries))
}
