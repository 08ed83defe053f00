// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/investor-seed/pkg/types"
)

// Dataset is the parsed input of one run. Investors are ordered link
// records first, then the primary profile, then the designated profile.
// The primary profile is omitted when it cannot be processed; the
// designated profile is replaced by the configured fallback investor.
type Dataset struct {
	Investors        []types.InvestorRecord   `json:"investors" yaml:"investors"`
	Portfolio        []types.PortfolioCompany `json:"portfolio" yaml:"portfolio"`
	PortfolioOwnerID string                   `json:"portfolio_owner_id" yaml:"portfolio_owner_id"`
}

// ExportYAML writes the dataset to path as YAML.
func (d Dataset) ExportYAML(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return eris.Wrap(err, "pipeline: marshal yaml")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "pipeline: write %s", path)
	}
	return nil
}

// ExportJSON writes the dataset to path as indented JSON.
func (d Dataset) ExportJSON(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return eris.Wrap(err, "pipeline: marshal json")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "pipeline: write %s", path)
	}
	return nil
}
