// Package config loads seamcarve CLI settings.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults (Default)
//  2. a YAML file named by -config or SEAMCARVE_CONFIG
//  3. a .env file (variables already set in the environment are kept)
//  4. SEAMCARVE_* environment variables
//  5. command-line flags that were set explicitly
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SEAMCARVE_"

// Finder and solver names accepted by Validate.
var (
	Finders = []string{"adjacency", "dp", "generative"}
	Solvers = []string{"dijkstra", "bellmanford", "spfa", "toposort", "astar"}
)

// ErrInvalid wraps every problem reported by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every CLI setting.
type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Width and Height are target dimensions; 0 keeps the current size.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Finder        string `yaml:"finder"`
	Solver        string `yaml:"solver"`
	EnergyCache   int    `yaml:"energy_cache"`
	ValidateSeams bool   `yaml:"validate"`

	// MetricsAddr, when set, serves /metrics on that address.
	MetricsAddr string `yaml:"metrics_addr"`

	// DotEnv is the .env file consulted by Load; missing files are ignored.
	DotEnv string `yaml:"-"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Output = "out.png"
	c.Finder = "adjacency"
	c.Solver = "toposort"
	c.DotEnv = ".env"
	c.Logging.Level = "info"
	c.Logging.Pretty = true

	return c
}

// Load builds a Config from args (without the program name) and the
// process environment. It does not call Validate.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("seamcarve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var f Config
	path := fs.String("config", "", "YAML configuration file")
	fs.StringVar(&f.DotEnv, "env-file", ".env", "dotenv file with SEAMCARVE_* variables")
	fs.StringVar(&f.Input, "in", "", "input image (PNG or JPEG)")
	fs.StringVar(&f.Output, "out", "", "output PNG")
	fs.IntVar(&f.Width, "width", 0, "target width (0 keeps the current width)")
	fs.IntVar(&f.Height, "height", 0, "target height (0 keeps the current height)")
	fs.StringVar(&f.Finder, "finder", "", "seam finder: "+strings.Join(Finders, "|"))
	fs.StringVar(&f.Solver, "solver", "", "shortest-path backend: "+strings.Join(Solvers, "|"))
	fs.IntVar(&f.EnergyCache, "energy-cache", 0, "per-seam energy LRU size (0 disables)")
	fs.BoolVar(&f.ValidateSeams, "validate", false, "validate every seam before removal")
	fs.StringVar(&f.MetricsAddr, "metrics-addr", "", "address serving /metrics")
	fs.StringVar(&f.Logging.Level, "log-level", "", "log level")
	fs.BoolVar(&f.Logging.Pretty, "log-pretty", false, "human-readable logs")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	c := Default()

	// 1) YAML file.
	if *path == "" {
		*path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if *path != "" {
		if err := c.readYAML(*path); err != nil {
			return Config{}, err
		}
	}

	// 2) .env, then the environment.
	if set["env-file"] {
		c.DotEnv = f.DotEnv
	}
	if c.DotEnv != "" {
		if err := godotenv.Load(c.DotEnv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", c.DotEnv, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return Config{}, err
	}

	// 3) Explicit flags.
	for name := range set {
		switch name {
		case "in":
			c.Input = f.Input
		case "out":
			c.Output = f.Output
		case "width":
			c.Width = f.Width
		case "height":
			c.Height = f.Height
		case "finder":
			c.Finder = f.Finder
		case "solver":
			c.Solver = f.Solver
		case "energy-cache":
			c.EnergyCache = f.EnergyCache
		case "validate":
			c.ValidateSeams = f.ValidateSeams
		case "metrics-addr":
			c.MetricsAddr = f.MetricsAddr
		case "log-level":
			c.Logging.Level = f.Logging.Level
		case "log-pretty":
			c.Logging.Pretty = f.Logging.Pretty
		}
	}

	return c, nil
}

func (c *Config) readYAML(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	return nil
}

// applyEnv overlays SEAMCARVE_* variables. Malformed numbers and booleans
// are reported together.
func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs error
	num := func(key string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, key, v))
				return
			}
			*dst = n
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, key, v))
				return
			}
			*dst = b
		}
	}

	str("INPUT", &c.Input)
	str("OUTPUT", &c.Output)
	num("WIDTH", &c.Width)
	num("HEIGHT", &c.Height)
	str("FINDER", &c.Finder)
	str("SOLVER", &c.Solver)
	num("ENERGY_CACHE", &c.EnergyCache)
	boolean("VALIDATE", &c.ValidateSeams)
	str("METRICS_ADDR", &c.MetricsAddr)
	str("LOG_LEVEL", &c.Logging.Level)
	boolean("LOG_PRETTY", &c.Logging.Pretty)

	return errs
}

// Validate reports every invalid setting at once. Use multierr.Errors to
// list them individually.
func (c Config) Validate() error {
	var errs error
	if c.Input == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: input is required", ErrInvalid))
	}
	if c.Output == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: output is required", ErrInvalid))
	}
	if c.Width < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: width %d is negative", ErrInvalid, c.Width))
	}
	if c.Height < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: height %d is negative", ErrInvalid, c.Height))
	}
	if !slices.Contains(Finders, c.Finder) {
		errs = multierr.Append(errs, fmt.Errorf("%w: finder %q, want one of %v", ErrInvalid, c.Finder, Finders))
	}
	if !slices.Contains(Solvers, c.Solver) {
		errs = multierr.Append(errs, fmt.Errorf("%w: solver %q, want one of %v", ErrInvalid, c.Solver, Solvers))
	}
	if c.EnergyCache < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: energy_cache %d is negative", ErrInvalid, c.EnergyCache))
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level))
	}

	return errs
}
