// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/cofactor/determinant"
	"github.com/katalvlaran/cofactor/loader"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Engine names accepted by --engine.
const (
	EngineSequential = "seq"
	EngineParallel   = "par"
	EngineBoth       = "both"
)

// Defaults for the layered configuration.
const (
	DefaultEngine = EngineParallel
	DefaultFormat = string(loader.FormatAuto)
	envPrefix     = "COFACTOR_"
)

// configFileNames are looked up in the working directory when --config is not set.
var configFileNames = []string{"cofactor.yaml", "cofactor.yml"}

// ErrInvalidConfig is returned when a setting is out of range.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	Engine    string `koanf:"engine"`
	Workers   int    `koanf:"workers"` // 0 means GOMAXPROCS
	Cutoff    int    `koanf:"cutoff"`
	Unbounded bool   `koanf:"unbounded"`
	Format    string `koanf:"format"`
	Print     bool   `koanf:"print"`
	Verbose   bool   `koanf:"verbose"`

	// FileUsed is the config file that was read, if any.
	FileUsed string `koanf:"-"`
}

// findConfigFile returns the explicit path, or the first default name that exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// LoadConfig resolves configuration from defaults, a YAML file, COFACTOR_*
// environment variables and explicitly set flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"engine":    DefaultEngine,
		"workers":   determinant.DefaultWorkers,
		"cutoff":    determinant.DefaultSequentialCutoff,
		"unbounded": determinant.DefaultUnboundedFanOut,
		"format":    DefaultFormat,
		"print":     false,
		"verbose":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: COFACTOR_CUTOFF -> cutoff
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those set on the command line
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges so that building engine options cannot panic.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineSequential, EngineParallel, EngineBoth:
	default:
		return fmt.Errorf("%w: engine %q (want %s, %s or %s)",
			ErrInvalidConfig, c.Engine, EngineSequential, EngineParallel, EngineBoth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Cutoff < determinant.MinOrder {
		return fmt.Errorf("%w: cutoff must be >= %d, got %d", ErrInvalidConfig, determinant.MinOrder, c.Cutoff)
	}
	if _, err := loader.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ParallelOptions translates the config into engine options.
func (c *Config) ParallelOptions() []determinant.Option {
	opts := []determinant.Option{determinant.WithSequentialCutoff(c.Cutoff)}
	if c.Workers > 0 {
		opts = append(opts, determinant.WithWorkers(c.Workers))
	}
	if c.Unbounded {
		opts = append(opts, determinant.WithUnboundedFanOut())
	}

	return opts
}
