package commands

import (
	"log/slog"
	"os"

	"github.com/pyxgen/pyxgen/internal/cli/config"
	"github.com/pyxgen/pyxgen/internal/cli/output"
	"github.com/pyxgen/pyxgen/internal/engine"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with an engine and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	eng, err := engine.New(engine.Config{
		Dialect: cfg.Dialect,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   eng,
		Renderer: r,
	}, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that don't need a dialect resolved.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	dialect := getEnvOrDefault("PYXGEN_DIALECT", config.DefaultDialect)
	outDir := os.Getenv("PYXGEN_OUT_DIR")
	outputFormat := getEnvOrDefault("PYXGEN_OUTPUT", config.DefaultOutput)
	verbose := os.Getenv("PYXGEN_VERBOSE") == "true"

	return &config.Config{
		Dialect:      dialect,
		OutDir:       outDir,
		OutputFormat: outputFormat,
		Verbose:      verbose,
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
