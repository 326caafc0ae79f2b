// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/pvmod/cell"
	"github.com/katalvlaran/pvmod/module"
	"github.com/katalvlaran/pvmod/topology"
)

// EnvPrefix is the prefix of environment overrides, e.g. PVMODULE_CELLS.
const EnvPrefix = "PVMODULE"

// Layout names accepted by Config.Layout.
const (
	LayoutStandard = "standard"
	LayoutSTD96    = "std96"
	LayoutTCT96    = "tct96"
)

// CellConfig holds the reference cell model parameters.
type CellConfig struct {
	Points      int     `mapstructure:"points"`
	Temperature float64 `mapstructure:"temperature"`
	Isc0        float64 `mapstructure:"isc0"`
	Rs          float64 `mapstructure:"rs"`
	Rsh         float64 `mapstructure:"rsh"`
	Vbypass     float64 `mapstructure:"vbypass"`
}

// PlotConfig holds figure settings.
type PlotConfig struct {
	Format string  `mapstructure:"format"`
	Width  float64 `mapstructure:"width"`  // [in]
	Height float64 `mapstructure:"height"` // [in]
}

// Config holds all runtime configuration for a pvmodule run.
type Config struct {
	Cells       int        `mapstructure:"cells"`
	Layout      string     `mapstructure:"layout"`
	Substrings  []int      `mapstructure:"substrings"`
	Irradiance  float64    `mapstructure:"irradiance"`
	Parallelism int        `mapstructure:"parallelism"`
	Verbose     bool       `mapstructure:"verbose"`
	Cell        CellConfig `mapstructure:"cell"`
	Plot        PlotConfig `mapstructure:"plot"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("cells", module.DefaultNumberCells)
	v.SetDefault("layout", LayoutStandard)
	v.SetDefault("substrings", []int{})
	v.SetDefault("irradiance", module.DefaultIrradiance)
	v.SetDefault("parallelism", module.DefaultParallelism)
	v.SetDefault("verbose", false)
	v.SetDefault("cell.points", cell.DefaultNpts)
	v.SetDefault("cell.temperature", cell.DefaultTcell)
	v.SetDefault("cell.isc0", cell.DefaultIsc0)
	v.SetDefault("cell.rs", cell.DefaultRs)
	v.SetDefault("cell.rsh", cell.DefaultRsh)
	v.SetDefault("cell.vbypass", cell.DefaultVbypass)
	v.SetDefault("plot.format", "png")
	v.SetDefault("plot.width", 8.0)
	v.SetDefault("plot.height", 8.0)
}

// Load reads configuration from v, applying built-in defaults for any value
// not set by config file, environment or flags, and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Layout = strings.ToLower(cfg.Layout)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the ranges that module options would otherwise panic on.
func (c Config) Validate() error {
	switch {
	case c.Cells < 1:
		return fmt.Errorf("cells=%d: %w", c.Cells, ErrInvalidConfig)
	case c.Parallelism < 1:
		return fmt.Errorf("parallelism=%d: %w", c.Parallelism, ErrInvalidConfig)
	case c.Cell.Points < 2:
		return fmt.Errorf("cell.points=%d: %w", c.Cell.Points, ErrInvalidConfig)
	case c.Cell.Temperature <= 0:
		return fmt.Errorf("cell.temperature=%v: %w", c.Cell.Temperature, ErrInvalidConfig)
	case c.Cell.Isc0 <= 0:
		return fmt.Errorf("cell.isc0=%v: %w", c.Cell.Isc0, ErrInvalidConfig)
	case c.Cell.Rs < 0 || c.Cell.Rsh <= 0:
		return fmt.Errorf("cell.rs=%v cell.rsh=%v: %w", c.Cell.Rs, c.Cell.Rsh, ErrInvalidConfig)
	case c.Cell.Vbypass > 0:
		return fmt.Errorf("cell.vbypass=%v: %w", c.Cell.Vbypass, ErrInvalidConfig)
	case c.Plot.Width <= 0 || c.Plot.Height <= 0:
		return fmt.Errorf("plot size %vx%v: %w", c.Plot.Width, c.Plot.Height, ErrInvalidConfig)
	}
	for _, s := range c.Substrings {
		if s < 1 {
			return fmt.Errorf("substrings=%v: %w", c.Substrings, ErrInvalidConfig)
		}
	}
	if _, err := c.layout(); err != nil {
		return err
	}
	return nil
}

// Provider builds the reference cell model.
func (c Config) Provider() *cell.Model {
	return cell.NewModel(
		cell.WithPoints(c.Cell.Points),
		cell.WithTemperature(c.Cell.Temperature),
		cell.WithIsc0(c.Cell.Isc0),
		cell.WithSeriesResistance(c.Cell.Rs),
		cell.WithShuntResistance(c.Cell.Rsh),
		cell.WithBypassVoltage(c.Cell.Vbypass),
	)
}

// Options converts the configuration into module options.
func (c Config) Options(logger *slog.Logger) ([]module.Option, error) {
	l, err := c.layout()
	if err != nil {
		return nil, err
	}
	opts := []module.Option{
		module.WithNumberCells(c.Cells),
		module.WithLayout(l),
		module.WithIrradiance(c.Irradiance),
		module.WithProvider(c.Provider()),
		module.WithParallelism(c.Parallelism),
	}
	if len(c.Substrings) > 0 {
		opts = append(opts, module.WithSubstrings(c.Substrings...))
	}
	if logger != nil {
		opts = append(opts, module.WithLogger(logger))
	}
	return opts, nil
}

func (c Config) layout() (topology.Layout, error) {
	switch c.Layout {
	case LayoutStandard, "":
		l, err := topology.Standard(c.Cells)
		if err != nil {
			return topology.Layout{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return l, nil
	case LayoutSTD96, LayoutTCT96:
		if c.Cells != 96 {
			return topology.Layout{}, fmt.Errorf("layout %s needs 96 cells, got %d: %w", c.Layout, c.Cells, ErrInvalidConfig)
		}
		if c.Layout == LayoutSTD96 {
			return topology.STD96(), nil
		}
		return topology.TCT96(), nil
	default:
		return topology.Layout{}, fmt.Errorf("unknown layout %q: %w", c.Layout, ErrInvalidConfig)
	}
}
