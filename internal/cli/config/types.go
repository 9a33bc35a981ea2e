// Package config provides configuration management for the pyxgen CLI.
//
// Configuration is layered: defaults, then pyxgen.yaml, then PYXGEN_*
// environment variables, then command-line flags, highest last.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Dialect is the target dialect name (cython, pure).
	Dialect string `koanf:"dialect"`
	// OutDir is where build output is written (empty: beside the source).
	OutDir string `koanf:"out_dir"`
	// OutputFormat selects command output rendering (auto|text|markdown|json).
	OutputFormat string `koanf:"output"`
	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDialect = "cython"
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
