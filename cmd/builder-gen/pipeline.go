package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"builder-generator/internal/analyze"
	"builder-generator/internal/config"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/plan"
)

// pipeline is the shared front half of every command: load, extract, plan.
type pipeline struct {
	cfg    config.Config
	logger zerolog.Logger
	plan   *plan.Plan
	diags  diagnostic.Diagnostics
}

func runPipeline(cmd *cobra.Command, opts *options, patterns []string) (*pipeline, error) {
	logger := newLogger(cmd.ErrOrStderr(), opts)

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	logger.Debug().Strs("patterns", patterns).Strs("types", opts.typeNames).Msg("Loading packages")

	res, err := analyze.NewLoader(analyze.Options{
		TypeNames: opts.typeNames,
		Tag:       cfg.Tag,
		Directive: cfg.Directive,
		Logger:    logger,
	}).Load(patterns...)
	if err != nil {
		return nil, err
	}

	p := plan.NewResolver(plan.Options{
		AccessorKey: cfg.AccessorKey,
		Naming:      cfg.SynthOptions(),
		Logger:      logger,
	}).Resolve(res.Records)

	pl := &pipeline{cfg: cfg, logger: logger, plan: p}
	pl.diags.Merge(res.Diagnostics)
	pl.diags.Merge(p.Diagnostics)
	pl.report()

	return pl, nil
}

func (pl *pipeline) report() {
	for _, d := range pl.diags.Infos {
		logDiagnostic(pl.logger.Info(), d)
	}

	for _, d := range pl.diags.Warnings {
		logDiagnostic(pl.logger.Warn(), d)
	}

	for _, d := range pl.diags.Errors {
		logDiagnostic(pl.logger.Error(), d)
	}
}

func logDiagnostic(ev *zerolog.Event, d diagnostic.Diagnostic) {
	ev = ev.Str("code", d.Code).Str("record", d.Record)
	if d.Field != "" {
		ev = ev.Str("field", d.Field)
	}

	ev.Msg(d.Message)
}

// err reports whether any record was rejected.
func (pl *pipeline) err() error {
	if !pl.diags.HasErrors() {
		return nil
	}

	return fmt.Errorf("%d record(s) rejected: %w", len(pl.diags.Errors), pl.diags.Error())
}
