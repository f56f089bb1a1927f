// internal/cli/evaluate.go
package cli

import (
	"context"
	"errors"

	"hairpin/core/hairpin"
	"hairpin/core/thermo"
	"hairpin/internal/cmdutil"
	"hairpin/internal/pipeline"
	"hairpin/internal/pretty"
	"hairpin/internal/settings"
	"hairpin/internal/writers"
)

// load merges the settings layers for this invocation.
func (a *app) load() (settings.Settings, error) {
	s, err := settings.Load(a.v, a.cfgFile)
	if err != nil {
		return s, withCode(ExitUsage, err)
	}
	if a.noHeader {
		s.Header = false
	}
	return s, nil
}

func calculator(s settings.Settings) (*hairpin.Calculator, error) {
	cfg, err := s.HairpinConfig()
	if err != nil {
		return nil, err
	}
	var tables *thermo.Tables
	if s.Tables != "" {
		if tables, err = thermo.Load(s.Tables); err != nil {
			return nil, err
		}
	}
	return hairpin.NewCalculator(cfg, tables)
}

// evaluate runs src through the pipeline and writes the kept outcomes.
// Sequences the calculator rejects are skipped with a warning.
func (a *app) evaluate(ctx context.Context, s settings.Settings, src pipeline.Source, total int64) error {
	calc, err := calculator(s)
	if err != nil {
		return withCode(ExitUsage, err)
	}

	pcfg := pipeline.Config{Threads: s.Threads, Total: total}
	if s.Progress && !s.Quiet {
		pcfg.Progress = a.stderr
	}

	in, errCh := writers.StartHairpinWriter(a.stdout, s.Output, s.Header, s.Pretty, pretty.DefaultOptions, 64)
	found := 0
	_, runErr := cmdutil.RunStream(ctx, pcfg, calc, src,
		func(o pipeline.Outcome) (bool, pipeline.Outcome, error) {
			if o.Err != nil {
				cmdutil.Warnf(a.stderr, s.Quiet, "%s: %v (skipped)", o.Oligo.ID, o.Err)
				return false, o, nil
			}
			if o.Result.IsHairpin {
				found++
			}
			return s.Keep(o.Result), o, nil
		},
		func(o pipeline.Outcome) error {
			in <- o
			return nil
		},
	)
	close(in)
	writeErr := <-errCh

	switch {
	case runErr != nil && (ctx.Err() != nil || errors.Is(runErr, context.Canceled)):
		return withCode(ExitSignal, runErr)
	case runErr != nil:
		return withCode(ExitUsage, runErr)
	case writeErr != nil:
		return withCode(ExitOutput, writeErr)
	case found == 0 && s.FailOnNone:
		return withCode(ExitNone, nil)
	}
	return nil
}
