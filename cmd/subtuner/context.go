package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"subtuner/internal/config"
	"subtuner/internal/logging"
)

// commandContext is shared across every subcommand constructor, grounded on
// the teacher's cmd/spindle/context.go: one lazily-loaded config, resolved
// once per process regardless of how many subcommands touch it.
type commandContext struct {
	configFlag *string
	logLevel   *string
	jsonOutput *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevel *string, jsonOutput *bool) *commandContext {
	return &commandContext{configFlag: configFlag, logLevel: logLevel, jsonOutput: jsonOutput}
}

func (c *commandContext) jsonMode() bool {
	return c != nil && c.jsonOutput != nil && *c.jsonOutput
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) resolvedLogLevel(cfg *config.Config) string {
	if c != nil && c.logLevel != nil {
		if trimmed := strings.TrimSpace(*c.logLevel); trimmed != "" {
			return trimmed
		}
	}
	if cfg != nil && strings.TrimSpace(cfg.LogLevel) != "" {
		return cfg.LogLevel
	}
	return "info"
}

func (c *commandContext) newCLILogger(cfg *config.Config) (*slog.Logger, error) {
	opts := logging.Options{
		Level:       c.resolvedLogLevel(cfg),
		Format:      "console",
		OutputPaths: []string{"stderr"},
	}
	logger, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}
