// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PortfolioCompany is one row of a fund's portfolio export. All fields are
// plain strings and default to "" when the source column is missing.
type PortfolioCompany struct {
	CompanyName string `json:"company_name" yaml:"company_name" csv:"Company Name"`
	Year        string `json:"year" yaml:"year" csv:"Year"`
	Location    string `json:"location" yaml:"location" csv:"Location"`
	Sector      string `json:"sector" yaml:"sector" csv:"Sector"`
	Website     string `json:"website" yaml:"website" csv:"Website"`
	Description string `json:"description" yaml:"description" csv:"Description"`
}
