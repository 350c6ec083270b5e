// Package config loads the YAML run configuration of the generator.
//
//	variant: grid            # preset variant to generate
//	format: json             # json | yaml
//	indent: true             # pretty-print JSON
//	geometry:                # 0 or omitted keeps the variant's default
//	  columns: 8
//	  rows: 5
//	  channels: 8
//	timing:
//	  long_press_ms: 1000
//	  single_press_max_ms: 200
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"preset-generator/internal/assembly"
	"preset-generator/internal/document"
	"preset-generator/internal/preset"
)

// Defaults applied to omitted fields.
const (
	DefaultVariant          = preset.VariantGrid
	DefaultFormat           = "json"
	DefaultLongPressMs      = preset.DefaultLongPressMs
	DefaultSinglePressMaxMs = preset.DefaultSinglePressMaxMs
)

// Config is the root of a run configuration file.
type Config struct {
	// Variant names the preset variant.
	Variant string `yaml:"variant,omitempty"`

	// Format is the output serialization.
	Format string `yaml:"format,omitempty"`

	// Indent pretty-prints JSON output. Defaults to true.
	Indent *bool `yaml:"indent,omitempty"`

	// Geometry overrides the variant's controller size per axis.
	Geometry assembly.Geometry `yaml:"geometry,omitempty"`

	// Timing configures press-timing fire modes.
	Timing Timing `yaml:"timing,omitempty"`
}

// Timing holds fire mode durations in milliseconds.
type Timing struct {
	LongPressMs      int `yaml:"long_press_ms,omitempty"`
	SinglePressMaxMs int `yaml:"single_press_max_ms,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Variant == "" {
		c.Variant = DefaultVariant
	}

	if c.Format == "" {
		c.Format = DefaultFormat
	}

	if c.Indent == nil {
		indent := true
		c.Indent = &indent
	}

	if c.Timing.LongPressMs == 0 {
		c.Timing.LongPressMs = DefaultLongPressMs
	}

	if c.Timing.SinglePressMaxMs == 0 {
		c.Timing.SinglePressMaxMs = DefaultSinglePressMaxMs
	}
}

// Validate checks values that defaults cannot fix. knownVariants lists the
// variant names the caller can generate.
func (c *Config) Validate(knownVariants []string) error {
	found := false

	for _, v := range knownVariants {
		if v == c.Variant {
			found = true
			break
		}
	}

	if !found {
		return fmt.Errorf("unknown variant %q (known: %v)", c.Variant, knownVariants)
	}

	if _, err := document.ParseFormat(c.Format); err != nil {
		return err
	}

	if err := c.Geometry.Validate(); err != nil {
		return err
	}

	if c.Timing.LongPressMs < 0 || c.Timing.SinglePressMaxMs < 0 {
		return fmt.Errorf("timing values must not be negative: %+v", c.Timing)
	}

	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() document.Format {
	f, err := document.ParseFormat(c.Format)
	if err != nil {
		return document.FormatJSON
	}

	return f
}

// IndentOutput reports whether JSON output is pretty-printed.
func (c *Config) IndentOutput() bool {
	return c.Indent == nil || *c.Indent
}
