package app

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"

	"github.com/vk/paramgrid/expand"
	"github.com/vk/paramgrid/internal/ctxlog"
	"github.com/vk/paramgrid/naming"
	"github.com/vk/paramgrid/paramfile"
	"github.com/vk/paramgrid/params"
	"github.com/vk/paramgrid/provenance"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	experiments, err := a.loader.Load(ctx, appConfig.SpecPath)
	if err != nil {
		return fmt.Errorf("failed to load experiments: %w", err)
	}
	if len(experiments) == 0 {
		return fmt.Errorf("no experiments found in %q", appConfig.SpecPath)
	}
	a.logger.Debug("Experiments loaded.", "count", len(experiments))

	for _, exp := range experiments {
		if err := a.runExperiment(ctx, appConfig, exp); err != nil {
			return fmt.Errorf("experiment %q: %w", exp.Name, err)
		}
	}
	return nil
}

// runExperiment expands one experiment, optionally tags every resulting
// configuration with provenance, and prints the result.
func (a *App) runExperiment(ctx context.Context, appConfig *Config, exp *paramfile.Experiment) error {
	total, err := expand.Count(exp.Params)
	if err != nil {
		return err
	}

	expanded, err := expand.All(exp.Params)
	if err != nil {
		return err
	}
	a.logger.Info("Experiment expanded.", "name", exp.Name, "configurations", total)

	if appConfig.Tag {
		if err := a.tagAll(ctx, appConfig, exp, expanded); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.outW, "experiment %q: %d configurations\n", exp.Name, total)
	if appConfig.Table {
		a.printTable(expanded)
		return nil
	}
	return a.printNames(exp, expanded)
}

// tagAll tags the expanded configurations concurrently. Each mapping is
// independent and the repository query is read-only, so a bounded worker
// pool is all the coordination this needs.
func (a *App) tagAll(ctx context.Context, appConfig *Config, exp *paramfile.Experiment, expanded []*params.Mapping) error {
	loc := provenance.SourceLocation{File: exp.File}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(appConfig.WorkerCount)
	for _, m := range expanded {
		m := m
		g.Go(func() error {
			provenance.TagRevisionAndSource(gctx, m, a.repo, appConfig.RepoPath, loc)
			return nil
		})
	}
	return g.Wait()
}

// printNames writes one derived name per configuration.
func (a *App) printNames(exp *paramfile.Experiment, expanded []*params.Mapping) error {
	opts := naming.DefaultOptions()
	opts.Prefix = exp.Prefix
	for _, m := range expanded {
		name, err := naming.Name(m, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.outW, name)
	}
	return nil
}

// printTable renders the expanded configurations as one row per mapping.
// All mappings produced by one expansion share the same key set, so the
// first mapping's keys serve as the header.
func (a *App) printTable(expanded []*params.Mapping) {
	if len(expanded) == 0 {
		return
	}

	keys := expanded[0].Keys()
	table := tablewriter.NewWriter(a.outW)
	table.SetHeader(keys)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, m := range expanded {
		row := make([]string, len(keys))
		for i, key := range keys {
			v, _ := m.Get(key)
			cell, ok := naming.FormatValue(v.Scalar(), 0)
			if !ok {
				cell = "-"
			}
			row[i] = cell
		}
		table.Append(row)
	}
	table.Render()
}
