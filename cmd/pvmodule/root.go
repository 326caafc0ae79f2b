// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pvmod/config"
	"github.com/katalvlaran/pvmod/module"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	log    *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "pvmodule",
		Short: "PV module I-V curves under partial shading",
		Long: "pvmodule builds a photovoltaic module from per-cell diode curves, applies a shading\n" +
			"scenario and reports or plots the resulting module I-V and P-V characteristics.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .pvmodule.{yaml,toml})")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.Int("cells", module.DefaultNumberCells, "number of cells")
	pf.String("layout", config.LayoutStandard, "cell layout: standard, std96, tct96")
	pf.IntSlice("substrings", nil, "cells per substring, e.g. 24,48,24")
	pf.Float64("irradiance", module.DefaultIrradiance, "uniform irradiance [suns]")
	pf.Int("parallelism", module.DefaultParallelism, "goroutines per recompute")
	pf.Int("points", 0, "samples per cell curve branch (0: config default)")
	pf.String("scenario", "", "TOML shading scenario")

	for key, flag := range map[string]string{
		"verbose":     "verbose",
		"cells":       "cells",
		"layout":      "layout",
		"substrings":  "substrings",
		"irradiance":  "irradiance",
		"parallelism": "parallelism",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(newCurveCmd(a), newPlotCmd(a))
	return root
}

// init reads the config file, environment and flags, then installs the
// logger.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		a.v.SetConfigName(".pvmodule")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		// a missing default file is fine; defaults apply
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if cmd.Flags().Changed("points") {
		n, _ := cmd.Flags().GetInt("points")
		a.v.Set("cell.points", n)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)
	a.log.Debug("configuration loaded", "file", a.v.ConfigFileUsed(), "cells", cfg.Cells, "layout", cfg.Layout)

	return nil
}

// module builds the configured module and applies --scenario, if any.
func (a *app) module(cmd *cobra.Command) (*module.Module, error) {
	opts, err := a.cfg.Options(a.log)
	if err != nil {
		return nil, err
	}
	m, err := module.New(opts...)
	if err != nil {
		return nil, err
	}

	path, _ := cmd.Flags().GetString("scenario")
	if path == "" {
		return m, nil
	}
	s, err := config.LoadScenario(path)
	if err != nil {
		return nil, err
	}
	if err = s.Apply(m); err != nil {
		return nil, fmt.Errorf("applying %s: %w", path, err)
	}
	a.log.Info("scenario applied", "name", s.Name, "shades", len(s.Shade))

	return m, nil
}
