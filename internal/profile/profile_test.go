// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/investor-seed/internal/convert"
	"github.com/pdiddy/investor-seed/internal/identity"
	"github.com/pdiddy/investor-seed/pkg/types"
)

const peakProfile = `# Peak Capital

About: Peak Capital backs Dutch B2B software founders.

Investment Thesis: Backing deep-tech founders.

Sectors: SaaS, FinTech; Climate

Investment Stages: Pre-seed, Seed

Ticket size: 250 - 2,000 (EUR thousands)
`

func newTestExtractor(t *testing.T, opts ...Option) *Extractor {
	t.Helper()
	base := []Option{
		WithIDFunc(identity.Sequence("md")),
		WithLogger(zaptest.NewLogger(t)),
	}
	return NewExtractor(types.DefaultSeedConfig(), append(base, opts...)...)
}

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFileFullProfile(t *testing.T) {
	path := writeProfile(t, "peak.md", peakProfile)

	rec, err := newTestExtractor(t).ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "md-1", rec.ID)
	assert.Equal(t, "Peak Capital", rec.CompanyName)
	assert.Equal(t, "Peak Capital", rec.FullName)
	assert.Equal(t, "contact@peakcapital.example.com", rec.Email)
	assert.Equal(t, "Peak Capital backs Dutch B2B software founders.", rec.Bio)
	assert.Equal(t, "Backing deep-tech founders.", rec.InvestmentThesis)
	assert.Equal(t, []string{"SaaS", "FinTech", "Climate"}, rec.PreferredIndustries)
	assert.Equal(t, []string{"Pre-seed", "Seed"}, rec.InvestmentStages)
	assert.Equal(t, &types.InvestmentSizes{Min: 250000, Max: 2000000, Currency: "EUR"}, rec.InvestmentSizes)
	assert.Equal(t, types.UserTypeInvestor, rec.UserType)
	assert.Empty(t, rec.WebsiteURL)
}

func TestThesisSection(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{"explicit thesis", "# F\n\nInvestment Thesis: Backing deep-tech founders.\n\n", "Backing deep-tech founders."},
		{"strategy key", "# F\n\nOur strategy: Buy and build.\n", "Buy and build."},
		{"multi-line paragraph", "# F\n\nThesis: line one\nline two\n\nNext", "line one\nline two"},
		{"absent", "# F\n\nNothing to see.\n", types.DefaultSeedConfig().Profile.Thesis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := newTestExtractor(t).ParseFile(writeProfile(t, "f.md", tt.md))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.InvestmentThesis)
		})
	}
}

func TestDefaultsWhenSectionsAbsent(t *testing.T) {
	rec, err := newTestExtractor(t).ParseFile(writeProfile(t, "f.md", "# Plain Fund\n\nHello.\n"))
	require.NoError(t, err)

	d := types.DefaultSeedConfig().Profile
	assert.Equal(t, d.Bio, rec.Bio)
	assert.Equal(t, []string{"Technology", "Software", "Consumer"}, rec.PreferredIndustries)
	assert.Equal(t, []string{"Seed", "Series A"}, rec.InvestmentStages)
	assert.Equal(t, int64(100000), rec.InvestmentSizes.Min)
	assert.Equal(t, int64(1000000), rec.InvestmentSizes.Max)
}

func TestTicketSizes(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantMin int64
		wantMax int64
	}{
		{"two numbers", "Ticket size: 50 to 500\n\n", 50000, 500000},
		{"one number", "Investment size: 200\n\n", 100000, 300000},
		{"stops at k suffix", "Check size: 50k - 500k\n\n", 25000, 75000},
		{"stops at euro sign", "Ticket size: 100 - €300\n\n", 50000, 150000},
		{"thousands separator", "Ticket size: 1,000 and 2,500\n\n", 1000000, 2500000},
		{"no numbers", "Ticket size: flexible\n\n", 100000, 1000000},
		{"absent", "Nothing here\n", 100000, 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := newTestExtractor(t).ParseFile(writeProfile(t, "f.md", "# F\n\n"+tt.line))
			require.NoError(t, err)
			require.NotNil(t, rec.InvestmentSizes)
			assert.Equal(t, tt.wantMin, rec.InvestmentSizes.Min)
			assert.Equal(t, tt.wantMax, rec.InvestmentSizes.Max)
			assert.Equal(t, "EUR", rec.InvestmentSizes.Currency)
			assert.LessOrEqual(t, rec.InvestmentSizes.Min, rec.InvestmentSizes.Max)
		})
	}
}

func TestNameFallsBackToFilename(t *testing.T) {
	rec, err := newTestExtractor(t).ParseFile(writeProfile(t, "venture capital-NL.md", "No headings here.\n"))
	require.NoError(t, err)
	assert.Equal(t, "venture capital-NL", rec.CompanyName)
	assert.Equal(t, "contact@venturecapital-nl.example.com", rec.Email)
}

func TestParseFileFailuresUseFallbackRecord(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		opts []Option
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "antler.md") },
		},
		{
			name: "invalid utf-8",
			path: func(t *testing.T) string { return writeProfile(t, "antler.md", "# \xff\xfe") },
		},
		{
			name: "converter error",
			path: func(t *testing.T) string { return writeProfile(t, "antler.md", "# Real") },
			opts: []Option{WithConverter(errConverter{err: errors.New("render failed")})},
		},
		{
			name: "converter panic",
			path: func(t *testing.T) string { return writeProfile(t, "antler.md", "# Real") },
			opts: []Option{WithConverter(panicConverter{})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := newTestExtractor(t, tt.opts...).ParseFile(tt.path(t))
			require.NoError(t, err)

			assert.Equal(t, "antler", rec.CompanyName)
			assert.Equal(t, "antler", rec.FullName)
			assert.Equal(t, "Investment firm", rec.Bio)
			assert.Equal(t, "Investing in innovative companies", rec.InvestmentThesis)
			assert.Equal(t, []string{"Seed", "Series A"}, rec.InvestmentStages)
			assert.Equal(t, []string{"Technology"}, rec.PreferredIndustries)
			assert.Equal(t, &types.InvestmentSizes{Min: 100000, Max: 1000000, Currency: "EUR"}, rec.InvestmentSizes)
			assert.NotEmpty(t, rec.ID)
		})
	}
}

func TestParseFileNoName(t *testing.T) {
	dir := t.TempDir()

	_, err := newTestExtractor(t).ParseFile(filepath.Join(dir, ".md"))
	assert.True(t, errors.Is(err, ErrNoCompanyName))

	path := filepath.Join(dir, ".hidden.md")
	require.NoError(t, os.WriteFile(path, []byte("no heading"), 0o644))
	_, err = newTestExtractor(t).ParseFile(path)
	assert.True(t, errors.Is(err, ErrNoCompanyName))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "antler", BaseName("Fund-data/antler.md"))
	assert.Equal(t, "venture capital-NL", BaseName("Fund-data/venture capital-NL.md"))
	assert.Equal(t, "a", BaseName("/x/a.b.md"))
	assert.Equal(t, "", BaseName(""))
}

func TestSizeRange(t *testing.T) {
	tests := []struct {
		name   string
		nums   []float64
		wantLo int64
		wantHi int64
		wantOK bool
	}{
		{"pair", []float64{50, 500}, 50000, 500000, true},
		{"single average", []float64{200}, 100000, 300000, true},
		{"fractional", []float64{1.5}, 750, 2250, true},
		{"none", nil, 0, 0, false},
		{"single too large", Numbers("4,000,000,000,000,000"), 0, 0, false},
		{"beyond int64", Numbers("99999999999999999999"), 0, 0, false},
		{"pair with one too large", Numbers("10 - 99999999999999999999"), 0, 0, false},
		{"large but in range", []float64{1e9}, 500000000000, 1500000000000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := SizeRange(tt.nums, 1000)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
			assert.LessOrEqual(t, lo, hi)
		})
	}
}

func TestHugeTicketSizeUsesDefaults(t *testing.T) {
	path := writeProfile(t, "huge.md", "# Huge Fund\n\nTicket size: 4,000,000,000,000,000\n")

	rec, err := newTestExtractor(t).ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, &types.InvestmentSizes{Min: 100000, Max: 1000000, Currency: "EUR"}, rec.InvestmentSizes)
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, []float64{1500, 2.5, 3}, Numbers("from 1,500 to 2.5 or 3"))
	assert.Empty(t, Numbers("none"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList(" a, b ;c "))
	assert.Equal(t, []string{"a", ""}, splitList("a,"))
}

func TestString(t *testing.T) {
	rec := types.InvestorRecord{
		CompanyName:         "F",
		InvestmentStages:    []string{"Seed"},
		PreferredIndustries: []string{"A", "B"},
		InvestmentSizes:     &types.InvestmentSizes{Min: 1, Max: 2, Currency: "EUR"},
	}
	assert.Equal(t, "F (1-2 EUR, 1 stages, 2 sectors)", String(rec))
	assert.Equal(t, "G", String(types.InvestorRecord{CompanyName: "G"}))
}

type errConverter struct{ err error }

func (c errConverter) Convert([]byte) (convert.Document, error) {
	return convert.Document{}, c.err
}

type panicConverter struct{}

func (panicConverter) Convert([]byte) (convert.Document, error) {
	panic("unexpected structure")
}
