// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the seed import end to end: link CSV, portfolio
// CSV, the two Markdown profiles, then SQL emission to a single file.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pdiddy/investor-seed/internal/convert"
	"github.com/pdiddy/investor-seed/internal/emit"
	"github.com/pdiddy/investor-seed/internal/identity"
	"github.com/pdiddy/investor-seed/internal/links"
	"github.com/pdiddy/investor-seed/internal/portfolio"
	"github.com/pdiddy/investor-seed/internal/profile"
	"github.com/pdiddy/investor-seed/pkg/types"
)

// Summary reports what a run produced.
type Summary struct {
	OutputPath         string
	Investors          int
	PortfolioCompanies int
}

// Options holds collaborators for a run. Zero values select production
// defaults.
type Options struct {
	Logger    *zap.Logger
	NewID     identity.IDFunc
	Converter convert.Converter
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.NewID == nil {
		o.NewID = identity.NewID
	}
	if o.Converter == nil {
		o.Converter = convert.NewGoldmarkConverter()
	}
	return o
}

// Run extracts every input named in cfg, renders the import script and
// writes it to cfg.OutputSQL. Progress lines go to w.
func Run(ctx context.Context, cfg types.SeedConfig, w io.Writer, opts Options) (Summary, error) {
	opts = opts.withDefaults()

	ds, err := Extract(ctx, cfg, w, opts)
	if err != nil {
		return Summary{}, err
	}

	em := emit.New(cfg, emit.WithIDFunc(opts.NewID))
	script, err := em.Script(emit.Input{
		Investors:        ds.Investors,
		Portfolio:        ds.Portfolio,
		PortfolioOwnerID: ds.PortfolioOwnerID,
	})
	if err != nil {
		return Summary{}, eris.Wrap(err, "pipeline: render script")
	}
	if err := emit.WriteFile(cfg.OutputSQL, script); err != nil {
		return Summary{}, err
	}

	fmt.Fprintf(w, "wrote    %s\n", cfg.OutputSQL)
	opts.Logger.Info("pipeline: script written",
		zap.String("path", cfg.OutputSQL),
		zap.Int("investors", len(ds.Investors)),
		zap.Int("portfolio", len(ds.Portfolio)))

	return Summary{
		OutputPath:         cfg.OutputSQL,
		Investors:          len(ds.Investors),
		PortfolioCompanies: len(ds.Portfolio),
	}, nil
}

// Extract runs the parsing stages without emitting SQL. CSV failures are
// returned; Markdown failures are logged and recovered as documented on
// Dataset.
func Extract(ctx context.Context, cfg types.SeedConfig, w io.Writer, opts Options) (Dataset, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	lp := links.NewParser(cfg.Identity, links.WithIDFunc(opts.NewID), links.WithLogger(log))
	linked, err := lp.ParseFile(ctx, cfg.Inputs.LinksCSV, w)
	if err != nil {
		return Dataset{}, err
	}

	companies, err := portfolio.ParseFile(ctx, cfg.Inputs.PortfolioCSV, w, log)
	if err != nil {
		return Dataset{}, err
	}

	if err := ctx.Err(); err != nil {
		return Dataset{}, eris.Wrap(err, "pipeline: cancelled")
	}

	ex := profile.NewExtractor(cfg,
		profile.WithConverter(opts.Converter),
		profile.WithIDFunc(opts.NewID),
		profile.WithLogger(log))

	ds := Dataset{Investors: linked, Portfolio: companies}

	if rec, ok := parseProfile(ex, cfg.Inputs.PrimaryMarkdown, w, log); ok {
		ds.Investors = append(ds.Investors, rec)
	}

	rec, ok := parseProfile(ex, cfg.Inputs.DesignatedMarkdown, w, log)
	if !ok {
		rec = cfg.FallbackInvestor
		rec.ID = opts.NewID()
		fmt.Fprintf(w, "fallback %s\n", rec.CompanyName)
	}
	ds.Investors = append(ds.Investors, rec)
	ds.PortfolioOwnerID = rec.ID

	return ds, nil
}

// parseProfile converts one Markdown profile. A panic or a returned error
// is logged and reported as ok=false.
func parseProfile(ex *profile.Extractor, path string, w io.Writer, log *zap.Logger) (rec types.InvestorRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("pipeline: profile panicked", zap.String("path", path), zap.Any("panic", r))
			fmt.Fprintf(w, "failed   %s\n", path)
			rec, ok = types.InvestorRecord{}, false
		}
	}()

	rec, err := ex.ParseFile(path)
	if err != nil {
		log.Warn("pipeline: cannot process profile", zap.String("path", path), zap.Error(err))
		fmt.Fprintf(w, "failed   %s\n", path)
		return types.InvestorRecord{}, false
	}
	fmt.Fprintf(w, "profile  %s\n", profile.String(rec))
	return rec, true
}
