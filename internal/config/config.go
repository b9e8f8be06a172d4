// Package config defines the configuration for the tinkerbridge CLI: the
// translation options applied to every document plus logging settings. It is
// loaded from a YAML file with ${ENV_VAR} interpolation and validated with
// struct tags.
package config

import (
	"github.com/tinkerbridge/tinkerbridge/pkg/graphson"
)

// Config is the root configuration for tinkerbridge.
type Config struct {
	Translate TranslateConfig `mapstructure:"translate" yaml:"translate"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// TranslateConfig contains the translation options. String fields use the
// wire-level spellings; empty values fall back to the library defaults.
type TranslateConfig struct {
	// IntWidth tags integers in the output: "int64" or "int32".
	IntWidth string `mapstructure:"int_width" yaml:"int_width" validate:"omitempty,oneof=int64 int32"`

	// FloatWidth tags floating-point numbers: "double" or "float".
	FloatWidth string `mapstructure:"float_width" yaml:"float_width" validate:"omitempty,oneof=double float"`

	// DefaultLabel substitutes for missing vertex/edge labels instead of
	// failing the decode. Empty keeps strict behavior.
	DefaultLabel string `mapstructure:"default_label" yaml:"default_label"`

	// CollapseSingleProperties emits single-value property lists as a single
	// tagged object.
	CollapseSingleProperties bool `mapstructure:"collapse_single_properties" yaml:"collapse_single_properties"`

	// Extensions is the handling of vendor-specific fields: "preserve" or
	// "drop".
	Extensions string `mapstructure:"extensions" yaml:"extensions" validate:"omitempty,oneof=preserve drop"`
}

// Options converts the config section into library options. Validation has
// already rejected unknown spellings, so the conversion is a plain mapping.
func (c TranslateConfig) Options() graphson.Options {
	return graphson.Options{
		IntWidth:                 graphson.IntWidth(c.IntWidth),
		FloatWidth:               graphson.FloatWidth(c.FloatWidth),
		DefaultLabel:             c.DefaultLabel,
		CollapseSingleProperties: c.CollapseSingleProperties,
		Extensions:               graphson.ExtensionPolicy(c.Extensions),
	}
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=text json"`
}
