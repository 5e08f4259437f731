// Package config resolves program settings from defaults, an optional YAML
// file, LVLEARN_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix; "-" in keys becomes "_".
const EnvPrefix = "LVLEARN"

// ErrInvalidConfig indicates a setting outside its documented range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Shared keys.
const (
	keyConfig   = "config"
	keyDebug    = "debug"
	keyTerminal = "terminal"
)

// invalid wraps ErrInvalidConfig with the offending key.
func invalid(key string, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", key, fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// finite reports whether every v is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// registerShared adds the flags every program understands.
func registerShared(cmd *cobra.Command) {
	cmd.PersistentFlags().String(keyConfig, "", "optional YAML config file")
	cmd.PersistentFlags().Bool(keyDebug, false, "enable debug logging")
	cmd.Flags().String(keyTerminal, "png", "image format: png, svg, pdf, eps, jpg, tif")
}

// load builds a viper instance over the flags of cmd (whose defaults are
// the program defaults), the optional config file and the environment, then
// unmarshals it into out.
func load(cmd *cobra.Command, out any) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("config: bind flags: %w", err)
	}
	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return fmt.Errorf("config: bind flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: reading %s: %w", file, err)
		}
	}
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("config: unable to unmarshal: %w", err)
	}

	return nil
}
