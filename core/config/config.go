// Package config loads the optional mintsh configuration file.
package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ConfigurationName is the file name looked up inside the config directory.
const ConfigurationName = "config.yaml"

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Config is the process configuration. Everything here has a sensible
// default; the file is optional.
type Config struct {
	// Banner is printed once at startup.
	Banner string `json:"banner"`

	// Prompt template. Supports the escapes \u (user), \h (hostname),
	// \w (working directory, ~-abbreviated) and \$ (# for root, $ else).
	Prompt string `json:"prompt" validate:"required"`

	// Color controls the Mint palette: always, auto or never.
	Color string `json:"color" validate:"oneof=always auto never"`

	// HistoryLimit caps the line editor's recall buffer.
	HistoryLimit int `json:"history_limit" validate:"gte=0"`

	// FollowIntervalMillis is the tail -f poll interval.
	FollowIntervalMillis int `json:"follow_interval_millis" validate:"gt=0"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Banner:               "mintsh - type 'help' for the command list",
		Prompt:               `\u@\h:\w> `,
		Color:                ColorAuto,
		HistoryLimit:         500,
		FollowIntervalMillis: 200,
	}
}

// Validate checks the configuration for semantic errors, reporting fields
// by their YAML names.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// FollowInterval returns the poll interval as a duration.
func (c *Config) FollowInterval() time.Duration {
	return time.Duration(c.FollowIntervalMillis) * time.Millisecond
}
