package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/agbru/fraccalc/internal/errors"
)

// FileConfig mirrors the settings accepted in a TOML configuration file.
// Nil fields were absent from the file.
//
//	theme = "light"
//	no_color = false
//	quiet = true
//	verbose = false
//	metrics = true
//	trace = false
//	timeout = "30s"
type FileConfig struct {
	Theme   *string `toml:"theme"`
	NoColor *bool   `toml:"no_color"`
	Quiet   *bool   `toml:"quiet"`
	Verbose *bool   `toml:"verbose"`
	Metrics *bool   `toml:"metrics"`
	Trace   *bool   `toml:"trace"`
	Timeout *string `toml:"timeout"`
}

// LoadFile reads and strictly decodes a TOML configuration file. Unknown
// keys and malformed durations are configuration errors.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, apperrors.NewConfigError("reading config file: %v", err)
	}

	var fc FileConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return FileConfig{}, apperrors.NewConfigError("config file %s: %s", path, strict.String())
		}
		return FileConfig{}, apperrors.NewConfigError("config file %s: %v", path, err)
	}
	if fc.Timeout != nil {
		if _, err := time.ParseDuration(*fc.Timeout); err != nil {
			return FileConfig{}, apperrors.NewConfigError("config file %s: timeout: %v", path, err)
		}
	}
	return fc, nil
}

// apply copies file values into config for settings not given as flags.
func (fc FileConfig) apply(config *AppConfig, fs *flag.FlagSet) {
	if fc.Theme != nil && !isFlagSet(fs, "theme") {
		config.Theme = *fc.Theme
	}
	if fc.Timeout != nil && !isFlagSet(fs, "timeout") {
		// Validated by LoadFile.
		config.Timeout, _ = time.ParseDuration(*fc.Timeout)
	}
	setBool(&config.NoColor, fc.NoColor, fs, "no-color")
	setBool(&config.Quiet, fc.Quiet, fs, "q", "quiet")
	setBool(&config.Verbose, fc.Verbose, fs, "v", "verbose")
	setBool(&config.Metrics, fc.Metrics, fs, "metrics")
	setBool(&config.Trace, fc.Trace, fs, "trace")
}

func setBool(dst *bool, src *bool, fs *flag.FlagSet, flags ...string) {
	if src != nil && !isFlagSetAny(fs, flags...) {
		*dst = *src
	}
}
