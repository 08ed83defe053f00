// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// InputConfig holds the fixed input paths read by each stage.
type InputConfig struct {
	// LinksCSV lists fund website URLs, one per row in the first column.
	LinksCSV string `json:"links_csv" yaml:"links_csv" mapstructure:"links_csv"`

	// PortfolioCSV is the portfolio export attached to the designated investor.
	PortfolioCSV string `json:"portfolio_csv" yaml:"portfolio_csv" mapstructure:"portfolio_csv"`

	// PrimaryMarkdown is the first fund profile. Its record is dropped when
	// the file cannot be parsed at all.
	PrimaryMarkdown string `json:"primary_markdown" yaml:"primary_markdown" mapstructure:"primary_markdown"`

	// DesignatedMarkdown is the second fund profile. Its investor owns the
	// portfolio and is replaced by FallbackInvestor when unparseable.
	DesignatedMarkdown string `json:"designated_markdown" yaml:"designated_markdown" mapstructure:"designated_markdown"`
}

// ProfileDefaults holds the generic values substituted when a heuristic
// pattern finds nothing in a Markdown profile.
type ProfileDefaults struct {
	Bio        string   `json:"bio" yaml:"bio" mapstructure:"bio"`
	Thesis     string   `json:"thesis" yaml:"thesis" mapstructure:"thesis"`
	Sectors    []string `json:"sectors" yaml:"sectors" mapstructure:"sectors"`
	Stages     []string `json:"stages" yaml:"stages" mapstructure:"stages"`
	MinSize    int64    `json:"min_size" yaml:"min_size" mapstructure:"min_size"`
	MaxSize    int64    `json:"max_size" yaml:"max_size" mapstructure:"max_size"`
	SizeFactor int64    `json:"size_factor" yaml:"size_factor" mapstructure:"size_factor"`
}

// FallbackDefaults holds the values of the minimal record built from a
// filename when a Markdown profile cannot be read or converted.
type FallbackDefaults struct {
	Bio        string   `json:"bio" yaml:"bio" mapstructure:"bio"`
	Thesis     string   `json:"thesis" yaml:"thesis" mapstructure:"thesis"`
	Stages     []string `json:"stages" yaml:"stages" mapstructure:"stages"`
	Industries []string `json:"industries" yaml:"industries" mapstructure:"industries"`
}

// IdentityConfig holds the placeholder templates used to synthesize
// contact and avatar fields.
type IdentityConfig struct {
	// EmailDomain is appended to "contact@<slug>" (e.g. ".example.com").
	EmailDomain string `json:"email_domain" yaml:"email_domain" mapstructure:"email_domain"`

	// AvatarTemplate is a fmt template taking the avatar index.
	AvatarTemplate string `json:"avatar_template" yaml:"avatar_template" mapstructure:"avatar_template"`

	// AvatarSlots bounds the avatar index to [0, AvatarSlots).
	AvatarSlots uint64 `json:"avatar_slots" yaml:"avatar_slots" mapstructure:"avatar_slots"`

	// FullNameSuffix is appended to link-derived company names.
	FullNameSuffix string `json:"full_name_suffix" yaml:"full_name_suffix" mapstructure:"full_name_suffix"`
}

// EmitConfig holds the constants the SQL emitter stamps on rows and the
// defaults it substitutes for fields a record does not carry.
type EmitConfig struct {
	// Header is the comment opening the generated script.
	Header string `json:"header" yaml:"header" mapstructure:"header"`

	Location         string `json:"location" yaml:"location" mapstructure:"location"`
	DisplayType      string `json:"display_type" yaml:"display_type" mapstructure:"display_type"`
	RelationshipType string `json:"relationship_type" yaml:"relationship_type" mapstructure:"relationship_type"`
	DefaultStage     string `json:"default_stage" yaml:"default_stage" mapstructure:"default_stage"`
	DefaultIndustry  string `json:"default_industry" yaml:"default_industry" mapstructure:"default_industry"`
	DefaultBio       string `json:"default_bio" yaml:"default_bio" mapstructure:"default_bio"`
	MaxSectors       int    `json:"max_sectors" yaml:"max_sectors" mapstructure:"max_sectors"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" for development output or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// SeedConfig is the single configuration object for a run. It is built once
// at startup and treated as read-only by every stage.
type SeedConfig struct {
	Inputs InputConfig `json:"inputs" yaml:"inputs" mapstructure:"inputs"`

	// OutputSQL is the path of the generated SQL script.
	OutputSQL string `json:"output_sql" yaml:"output_sql" mapstructure:"output_sql"`

	// Currency is the ISO code attached to every investment size.
	Currency string `json:"currency" yaml:"currency" mapstructure:"currency"`

	Identity IdentityConfig   `json:"identity" yaml:"identity" mapstructure:"identity"`
	Profile  ProfileDefaults  `json:"profile" yaml:"profile" mapstructure:"profile"`
	Fallback FallbackDefaults `json:"fallback" yaml:"fallback" mapstructure:"fallback"`
	Emit     EmitConfig       `json:"emit" yaml:"emit" mapstructure:"emit"`

	// FallbackInvestor replaces the designated investor when its Markdown
	// profile cannot be parsed at all. Its ID is generated at run time.
	FallbackInvestor InvestorRecord `json:"fallback_investor" yaml:"fallback_investor" mapstructure:"fallback_investor"`

	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultSeedConfig returns the constants used when no config file or
// environment override is present.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Inputs: InputConfig{
			LinksCSV:           "Fund-data/Website-Links.csv",
			PortfolioCSV:       "Fund-data/antler_portfolio2.csv",
			PrimaryMarkdown:    "Fund-data/venture capital-NL.md",
			DesignatedMarkdown: "Fund-data/antler.md",
		},
		OutputSQL: "fund_data_import.sql",
		Currency:  "EUR",
		Identity: IdentityConfig{
			EmailDomain:    ".example.com",
			AvatarTemplate: "https://randomuser.me/api/portraits/men/%d.jpg",
			AvatarSlots:    99,
			FullNameSuffix: " Ventures",
		},
		Profile: ProfileDefaults{
			Bio:        "Investment firm focused on innovative companies.",
			Thesis:     "Investing in innovative technology companies with high growth potential.",
			Sectors:    []string{"Technology", "Software", "Consumer"},
			Stages:     []string{"Seed", "Series A"},
			MinSize:    100000,
			MaxSize:    1000000,
			SizeFactor: 1000,
		},
		Fallback: FallbackDefaults{
			Bio:        "Investment firm",
			Thesis:     "Investing in innovative companies",
			Stages:     []string{"Seed", "Series A"},
			Industries: []string{"Technology"},
		},
		Emit: EmitConfig{
			Header:           "-- Generated SQL for importing fund data",
			Location:         "Netherlands",
			DisplayType:      "default",
			RelationshipType: "provider",
			DefaultStage:     "Seed",
			DefaultIndustry:  "Technology",
			DefaultBio:       "Investment firm",
			MaxSectors:       3,
		},
		FallbackInvestor: InvestorRecord{
			CompanyName:         "Antler",
			FullName:            "Antler Global",
			Email:               "contact@antler.co",
			Bio:                 "Antler is a global early-stage VC enabling exceptional entrepreneurs.",
			WebsiteURL:          "https://www.antler.co",
			UserType:            UserTypeInvestor,
			AvatarURL:           "https://randomuser.me/api/portraits/men/42.jpg",
			InvestmentThesis:    "Invests in exceptional founders from day zero across sectors globally.",
			InvestmentStages:    []string{"Pre-seed", "Seed"},
			PreferredIndustries: []string{"Technology", "SaaS", "FinTech", "HealthTech"},
			InvestmentSizes: &InvestmentSizes{
				Min:      100000,
				Max:      500000,
				Currency: "EUR",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
