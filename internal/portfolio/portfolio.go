// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package portfolio reads a fund's portfolio export into PortfolioCompany
// records. Columns are matched by header name, so their order is irrelevant.
package portfolio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pdiddy/investor-seed/pkg/types"
)

// ParseFile opens path and parses it with Parse.
func ParseFile(ctx context.Context, path string, w io.Writer, logger *zap.Logger) ([]types.PortfolioCompany, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "portfolio: open %s", path)
	}
	defer f.Close()

	companies, err := Parse(ctx, f, w, logger)
	if err != nil {
		return nil, eris.Wrapf(err, "portfolio: parse %s", path)
	}
	return companies, nil
}

// Parse decodes portfolio rows from r. Missing columns decode as "", every
// value is trimmed, and rows without a company name are dropped. An empty
// input yields no companies and no error.
func Parse(ctx context.Context, r io.Reader, w io.Writer, logger *zap.Logger) ([]types.PortfolioCompany, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "portfolio: read header")
	}

	var companies []types.PortfolioCompany
	dropped := 0
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return companies, eris.Wrap(err, "portfolio: context cancelled")
		}

		var c types.PortfolioCompany
		if err := dec.Decode(&c); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return companies, eris.Wrapf(err, "portfolio: decode row %d", row)
		}

		c = trim(c)
		if c.CompanyName == "" {
			dropped++
			continue
		}
		companies = append(companies, c)
	}

	if dropped > 0 {
		logger.Debug("portfolio: dropped rows without company name", zap.Int("count", dropped))
	}
	fmt.Fprintf(w, "portfolio %d companies (%d dropped)\n", len(companies), dropped)
	return companies, nil
}

func trim(c types.PortfolioCompany) types.PortfolioCompany {
	return types.PortfolioCompany{
		CompanyName: strings.TrimSpace(c.CompanyName),
		Year:        strings.TrimSpace(c.Year),
		Location:    strings.TrimSpace(c.Location),
		Sector:      strings.TrimSpace(c.Sector),
		Website:     strings.TrimSpace(c.Website),
		Description: strings.TrimSpace(c.Description),
	}
}
