package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"carbon-credits/internal/export"
	"carbon-credits/internal/model"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultOutputPath is where the dataset is written when nothing else is configured.
const DefaultOutputPath = "ai_infrastructure_carbon_credits.csv"

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type GeneratorConfig struct {
	// Seed pins both random streams. nil means model.DefaultSeed.
	Seed *uint64 `yaml:"seed"`
	// AsOf is an optional YYYY-MM-DD; empty means "today" at the entry point.
	AsOf string `yaml:"as_of"`
}

type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{Logging: LoggingConfig{Pretty: true}}
	c.ApplyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked parses the file without defaults or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// ApplyDefaults fills zero fields.
func (c *Config) ApplyDefaults() {
	if c.Generator.Seed == nil {
		seed := model.DefaultSeed
		c.Generator.Seed = &seed
	}
	if c.Output.Format == "" {
		c.Output.Format = string(export.FormatCSV)
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultPathFor(c.Output.Format)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = zerolog.InfoLevel.String()
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Generator.AsOf != "" {
		asOf, err := time.Parse(model.DateLayout, c.Generator.AsOf)
		if err != nil {
			return fmt.Errorf("generator.as_of must be YYYY-MM-DD: %w", err)
		}
		if asOf.IsZero() {
			return fmt.Errorf("generator.as_of %q is out of range", c.Generator.AsOf)
		}
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.New("output.path is required")
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// DefaultPathFor returns DefaultOutputPath with the extension matching format.
func DefaultPathFor(format string) string {
	if strings.EqualFold(strings.TrimSpace(format), string(export.FormatXLSX)) {
		return strings.TrimSuffix(DefaultOutputPath, ".csv") + ".xlsx"
	}
	return DefaultOutputPath
}

// SeedValue returns the configured seed, or model.DefaultSeed when unset.
func (g GeneratorConfig) SeedValue() uint64 {
	if g.Seed == nil {
		return model.DefaultSeed
	}
	return *g.Seed
}

// AsOfTime resolves the as-of date. An empty AsOf returns now.
func (g GeneratorConfig) AsOfTime(now time.Time) (time.Time, error) {
	if g.AsOf == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(model.DateLayout, g.AsOf, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse as_of %q: %w", g.AsOf, err)
	}
	return t, nil
}

// OutputFormat returns the parsed output format.
func (o OutputConfig) OutputFormat() (export.Format, error) {
	return export.ParseFormat(o.Format)
}
