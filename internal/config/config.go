package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the full converter configuration.
//
// Pointer members distinguish "not set" from a zero value so that a later
// layer can set indent 0 or json false over an earlier one.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig controls where and how the document is written.
type OutputConfig struct {
	Suffix string `yaml:"suffix" validate:"required"`
	Format string `yaml:"format" validate:"oneof=json yaml yml"`
	Indent *int   `yaml:"indent" validate:"required,min=0,max=8"`
}

// LogConfig controls the diagnostic log on stderr.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  *bool  `yaml:"json"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	indent := 2
	jsonLog := false

	return &Config{
		Output: OutputConfig{
			Suffix: "_enhanced",
			Format: "json",
			Indent: &indent,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  &jsonLog,
		},
	}
}

// Parse decodes a YAML layer. Unset keys stay at their zero value.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Merge overlays the set members of other onto c.
func (c *Config) Merge(other *Config) error {
	if other == nil {
		return nil
	}

	return mergo.Merge(c, other, mergo.WithOverride, mergo.WithoutDereference)
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// IndentWidth returns the configured indent, or 0 when unset.
func (c *Config) IndentWidth() int {
	if c.Output.Indent == nil {
		return 0
	}

	return *c.Output.Indent
}

// JSONLog reports whether logs are written as JSON.
func (c *Config) JSONLog() bool {
	return c.Log.JSON != nil && *c.Log.JSON
}
