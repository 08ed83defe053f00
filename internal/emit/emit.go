// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit renders investor and portfolio records as static SQL text
// that seeds the profiles, investor_profiles, funding_opportunities and
// investor_opportunity_links tables. Nothing is executed: the output is a
// script, and free text is made safe only by doubling single quotes.
package emit

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdiddy/investor-seed/internal/identity"
	"github.com/pdiddy/investor-seed/pkg/types"
)

const (
	tableProfiles         = "public.profiles"
	tableInvestorProfiles = "public.investor_profiles"
	tableOpportunities    = "public.funding_opportunities"
	tableLinks            = "public.investor_opportunity_links"
)

var (
	profileColumns = []string{
		"id", "email", "full_name", "user_type", "company_name", "bio", "website_url", "avatar_url",
	}
	investorProfileColumns = []string{
		"profile_id", "investment_thesis", "investment_stages", "preferred_industries", "investment_sizes",
	}
	opportunityColumns = []string{
		"id", "title", "fund_provider", "sector", "amount_description", "amount_min", "amount_max",
		"location", "description", "relevant_links", "display_type", "funding_type", "created_at",
	}
	linkColumns = []string{
		"id", "investor_id", "opportunity_id", "relationship_type",
	}
)

// Input is everything a script is rendered from.
type Input struct {
	Investors []types.InvestorRecord
	Portfolio []types.PortfolioCompany

	// PortfolioOwnerID is the profile id receiving the portfolio. No
	// portfolio update is emitted when it is empty.
	PortfolioOwnerID string
}

// Emitter renders SQL statements.
type Emitter struct {
	cfg     types.EmitConfig
	sizes   types.InvestmentSizes
	newID   identity.IDFunc
	amounts *message.Printer
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithIDFunc overrides opportunity and link id generation.
func WithIDFunc(f identity.IDFunc) Option {
	return func(e *Emitter) { e.newID = f }
}

// New returns an Emitter using the emit constants, currency and default
// size range from cfg.
func New(cfg types.SeedConfig, opts ...Option) *Emitter {
	e := &Emitter{
		cfg: cfg.Emit,
		sizes: types.InvestmentSizes{
			Min:      cfg.Profile.MinSize,
			Max:      cfg.Profile.MaxSize,
			Currency: cfg.Currency,
		},
		newID:   identity.NewID,
		amounts: message.NewPrinter(language.English),
	}
	if e.cfg.MaxSectors <= 0 {
		e.cfg.MaxSectors = 3
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Script renders the full import script: header, profile inserts,
// investor-profile upserts, the portfolio update, then opportunities with
// their links.
func (e *Emitter) Script(in Input) (string, error) {
	var b strings.Builder
	b.WriteString(e.cfg.Header + "\n\n")

	b.WriteString("\n-- Insert VC profiles\n\n")
	for _, r := range in.Investors {
		b.WriteString(e.Profile(r) + "\n")
	}

	b.WriteString("\n-- Insert investor profiles\n\n")
	for _, r := range in.Investors {
		stmt, ok, err := e.InvestorProfile(r)
		if err != nil {
			return "", err
		}
		if ok {
			b.WriteString(stmt + "\n")
		}
	}

	if in.PortfolioOwnerID != "" {
		stmt, err := e.Portfolio(in.PortfolioOwnerID, in.Portfolio)
		if err != nil {
			return "", err
		}
		b.WriteString("\n-- Update portfolio\n\n")
		b.WriteString(stmt + "\n")
	}

	b.WriteString("\n-- Insert funding opportunities\n\n")
	for _, r := range in.Investors {
		b.WriteString(e.Opportunity(r) + "\n")
	}

	return b.String(), nil
}

// WriteFile writes script to path.
func WriteFile(path, script string) error {
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return eris.Wrapf(err, "emit: write %s", path)
	}
	return nil
}

// Profile renders the profiles insert for r. Existing ids are left alone.
func (e *Emitter) Profile(r types.InvestorRecord) string {
	bio := r.Bio
	if bio == "" {
		bio = e.cfg.DefaultBio
	}
	return insert(tableProfiles, profileColumns, []string{
		Quote(r.ID),
		Quote(r.Email),
		Quote(r.FullName),
		Quote(types.UserTypeInvestor),
		Quote(r.CompanyName),
		Quote(bio),
		Quote(r.WebsiteURL),
		Quote(r.AvatarURL),
	}, fmt.Sprintf("ON CONFLICT (%s) DO NOTHING;", Column("id")))
}

// InvestorProfile renders the investor_profiles upsert for r. ok is false
// when r has no investment thesis.
func (e *Emitter) InvestorProfile(r types.InvestorRecord) (stmt string, ok bool, err error) {
	if !r.HasThesis() {
		return "", false, nil
	}

	sizes, err := JSONLiteral(e.sizesOf(r))
	if err != nil {
		return "", false, eris.Wrapf(err, "emit: investment sizes for %s", r.CompanyName)
	}

	var set []string
	for _, c := range investorProfileColumns[1:] {
		set = append(set, fmt.Sprintf("    %s = EXCLUDED.%s", Column(c), Column(c)))
	}
	conflict := fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET\n%s;",
		Column("profile_id"), strings.Join(set, ",\n"))

	return insert(tableInvestorProfiles, investorProfileColumns, []string{
		Quote(r.ID),
		Quote(r.InvestmentThesis),
		ArrayLiteral(orDefault(r.InvestmentStages, e.cfg.DefaultStage)),
		ArrayLiteral(orDefault(r.PreferredIndustries, e.cfg.DefaultIndustry)),
		sizes + "::jsonb",
	}, conflict), true, nil
}

// Portfolio renders the update attaching companies to the investor profile
// with the given id. The JSON array is expanded into a jsonb[] value.
func (e *Emitter) Portfolio(profileID string, companies []types.PortfolioCompany) (string, error) {
	if companies == nil {
		companies = []types.PortfolioCompany{}
	}
	lit, err := JSONLiteral(companies)
	if err != nil {
		return "", eris.Wrap(err, "emit: portfolio")
	}
	return fmt.Sprintf("\nUPDATE %s\nSET %s = ARRAY(SELECT jsonb_array_elements(%s::jsonb))\nWHERE %s = %s;\n",
		Table(tableInvestorProfiles), Column("portfolio"), lit, Column("profile_id"), Quote(profileID)), nil
}

// Opportunity renders one synthesized funding opportunity for r followed
// by the link row tying it to r.
func (e *Emitter) Opportunity(r types.InvestorRecord) string {
	sizes := e.sizesOf(r)
	stages := orDefault(r.InvestmentStages, e.cfg.DefaultStage)
	industries := orDefault(r.PreferredIndustries, e.cfg.DefaultIndustry)

	top := industries
	if len(top) > e.cfg.MaxSectors {
		top = top[:e.cfg.MaxSectors]
	}
	sector := strings.Join(top, ", ")

	description := fmt.Sprintf("%s invests in %s companies at %s stages.",
		r.CompanyName, sector, strings.Join(stages, ", "))

	var links []string
	if r.WebsiteURL != "" {
		links = []string{r.WebsiteURL}
	}

	oppID := e.newID()
	opp := insert(tableOpportunities, opportunityColumns, []string{
		Quote(oppID),
		Quote(fmt.Sprintf("%s %s Fund", r.CompanyName, stages[0])),
		Quote(r.CompanyName),
		Quote(sector),
		Quote(e.AmountDescription(sizes)),
		fmt.Sprintf("%d", sizes.Min),
		fmt.Sprintf("%d", sizes.Max),
		Quote(e.cfg.Location),
		Quote(description),
		ArrayLiteral(links),
		Quote(e.cfg.DisplayType),
		Quote(stages[0]),
		"NOW()",
	}, "ON CONFLICT DO NOTHING;")

	link := insert(tableLinks, linkColumns, []string{
		Quote(e.newID()),
		Quote(r.ID),
		Quote(oppID),
		Quote(e.cfg.RelationshipType),
	}, "ON CONFLICT DO NOTHING;")

	return opp + "\n-- Link opportunity to investor profile" + link
}

// AmountDescription renders a size range with grouped digits, for example
// "100,000 - 1,000,000 EUR".
func (e *Emitter) AmountDescription(s types.InvestmentSizes) string {
	return e.amounts.Sprintf("%d - %d %s", s.Min, s.Max, s.Currency)
}

func (e *Emitter) sizesOf(r types.InvestorRecord) types.InvestmentSizes {
	if r.InvestmentSizes == nil {
		return e.sizes
	}
	return *r.InvestmentSizes
}

func orDefault(items []string, def string) []string {
	if len(items) == 0 {
		return []string{def}
	}
	return items
}

// insert lays out an INSERT statement with one value per line.
func insert(table string, cols, values []string, conflict string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nINSERT INTO %s (%s)\nVALUES (\n", Table(table), ColumnList(cols))
	for i, v := range values {
		b.WriteString("    " + v)
		if i < len(values)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(")\n" + conflict + "\n")
	return b.String()
}
