// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records and configuration of the
// investor-seed pipeline.
package types

// UserTypeInvestor is the profile user type for every seeded record.
const UserTypeInvestor = "investor"

// InvestmentSizes is the ticket range an investor writes.
type InvestmentSizes struct {
	Min      int64  `json:"min" yaml:"min" mapstructure:"min"`
	Max      int64  `json:"max" yaml:"max" mapstructure:"max"`
	Currency string `json:"currency" yaml:"currency" mapstructure:"currency"`
}

// InvestorRecord is one investment firm destined for the profiles tables.
// Records are built once by a source parser and never mutated afterwards.
type InvestorRecord struct {
	// ID is the generated UUID joining profiles, investor_profiles and
	// opportunity links.
	ID string `json:"id" yaml:"id" mapstructure:"id"`

	// CompanyName is never empty; parsers drop records that lack one.
	CompanyName string `json:"company_name" yaml:"company_name" mapstructure:"company_name"`

	FullName string `json:"full_name" yaml:"full_name" mapstructure:"full_name"`

	// Email is a synthesized placeholder and is never used for delivery.
	Email string `json:"email" yaml:"email" mapstructure:"email"`

	Bio        string `json:"bio,omitempty" yaml:"bio,omitempty" mapstructure:"bio"`
	WebsiteURL string `json:"website_url,omitempty" yaml:"website_url,omitempty" mapstructure:"website_url"`
	AvatarURL  string `json:"avatar_url" yaml:"avatar_url" mapstructure:"avatar_url"`
	UserType   string `json:"user_type" yaml:"user_type" mapstructure:"user_type"`

	// InvestmentThesis gates the investor_profiles upsert: records without
	// one only get a profiles row and an opportunity.
	InvestmentThesis    string           `json:"investment_thesis,omitempty" yaml:"investment_thesis,omitempty" mapstructure:"investment_thesis"`
	InvestmentStages    []string         `json:"investment_stages,omitempty" yaml:"investment_stages,omitempty" mapstructure:"investment_stages"`
	PreferredIndustries []string         `json:"preferred_industries,omitempty" yaml:"preferred_industries,omitempty" mapstructure:"preferred_industries"`
	InvestmentSizes     *InvestmentSizes `json:"investment_sizes,omitempty" yaml:"investment_sizes,omitempty" mapstructure:"investment_sizes"`
}

// HasThesis reports whether the record carries an investment thesis.
func (r InvestorRecord) HasThesis() bool {
	return r.InvestmentThesis != ""
}
