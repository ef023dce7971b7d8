// Package value defines the contract between the parsing engine and leaf
// value parsers, plus the small set of built-in parsers the engine's own
// tests and examples rely on. The engine never looks past this contract:
// richer domain parsers (addresses, locales, port ranges and the like) are
// expected to live in their own packages and implement the same interface.
package value

import (
	"github.com/iancoleman/strcase"

	"github.com/napalu/combopt/errs"
)

// Parser validates and converts a single token into a typed value.
type Parser interface {
	// Metavar is the display name used in usage lines and error messages,
	// e.g. "PORT".
	Metavar() string
	// Parse converts a token. Failures are translatable error values, not
	// panics.
	Parse(token string) (interface{}, error)
	// Format renders a previously parsed value back to token form.
	Format(value interface{}) string
}

// Suggester is optionally implemented by value parsers that can propose
// completions for a partial token.
type Suggester interface {
	Suggest(partial string) []string
}

// Config collects the settings shared by all built-in value parsers.
type Config struct {
	metavar string
}

// ConfigureValueFunc is used when configuring built-in value parsers.
type ConfigureValueFunc func(cfg *Config)

// WithMetavar overrides a parser's display name. The name is normalized to
// SCREAMING_SNAKE form, so WithMetavar("listen port") yields "LISTEN_PORT".
// An empty name is a construction defect and panics.
func WithMetavar(name string) ConfigureValueFunc {
	if name == "" {
		panic(errs.ErrEmptyMetavar)
	}
	normalized := strcase.ToScreamingSnake(name)
	return func(cfg *Config) {
		cfg.metavar = normalized
	}
}

func applyConfig(metavar string, configs []ConfigureValueFunc) Config {
	cfg := Config{metavar: metavar}
	for _, config := range configs {
		config(&cfg)
	}
	return cfg
}
