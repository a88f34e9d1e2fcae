// Package envconfig reads jennifer settings from JENNIFER_* environment variables.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/born-ml/jennifer/internal/tensor"
)

// Var returns an environment variable stripped of surrounding spaces and quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Bool returns a reader for a boolean variable (default false).
// Any non-empty value that does not parse as a bool counts as true.
func Bool(key string) func() bool {
	return func() bool {
		if s := Var(key); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return false
	}
}

// Uint64 returns a reader for an unsigned integer variable.
func Uint64(key string, defaultValue uint64) func() uint64 {
	return func() uint64 {
		if s := Var(key); s != "" {
			n, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
				return defaultValue
			}
			return n
		}
		return defaultValue
	}
}

// LogLevel returns the log level from JENNIFER_DEBUG.
// A true value selects debug; an integer n selects level -4*n, so 2 enables trace.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("JENNIFER_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

var (
	// Seed seeds random initialization. Zero leaves it unseeded.
	Seed = Uint64("JENNIFER_SEED", 0)
	// ShowPrecision is the number of decimals printed for floating-point elements.
	ShowPrecision = Uint64("JENNIFER_SHOW_PRECISION", tensor.DefaultShowPrecision)
)

// RandSource returns a source seeded from JENNIFER_SEED, or nil when unset
// so that sampling falls back to the global source.
func RandSource() rand.Source {
	seed := Seed()
	if seed == 0 {
		return nil
	}
	return rand.NewSource(seed)
}

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every configuration variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"JENNIFER_DEBUG":          {"JENNIFER_DEBUG", LogLevel(), "Show additional debug information (e.g. JENNIFER_DEBUG=1)"},
		"JENNIFER_SEED":           {"JENNIFER_SEED", Seed(), "Seed for random initialization (0 = unseeded)"},
		"JENNIFER_SHOW_PRECISION": {"JENNIFER_SHOW_PRECISION", ShowPrecision(), "Decimals printed for floating-point elements"},
	}
}

// Values returns the current configuration rendered as strings.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
