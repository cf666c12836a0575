package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"mediatable/internal/config"
	"mediatable/internal/logging"
)

// annotationOwnConfig marks commands that read or write the config file
// themselves and must not fail on a broken one.
const annotationOwnConfig = "mediatable/own-config"

// commandContext carries the persistent flags and the config shared by every
// subcommand. The config is loaded at most once per invocation.
type commandContext struct {
	configPath *string
	logLevel   *string

	once   sync.Once
	cfg    *config.Config
	cfgErr error
}

func newCommandContext(configPath, logLevel *string) *commandContext {
	return &commandContext{configPath: configPath, logLevel: logLevel}
}

// configFlag returns the trimmed --config value, or "" to search the default
// locations.
func (c *commandContext) configFlag() string {
	if c.configPath == nil {
		return ""
	}
	return strings.TrimSpace(*c.configPath)
}

func (c *commandContext) loadConfig() (*config.Config, error) {
	c.once.Do(func() {
		c.cfg, _, _, c.cfgErr = config.Load(c.configFlag())
	})
	return c.cfg, c.cfgErr
}

// newLogger builds the run logger on the command's stderr. --log-level
// overrides the configured level without touching the shared config.
func (c *commandContext) newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	effective := *cfg
	if c.logLevel != nil && strings.TrimSpace(*c.logLevel) != "" {
		effective.Logging.Level = *c.logLevel
	}
	logger, err := logging.NewFromConfig(&effective, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return logger, nil
}

func ownsConfig(cmd *cobra.Command) bool {
	for ; cmd != nil; cmd = cmd.Parent() {
		if _, ok := cmd.Annotations[annotationOwnConfig]; ok {
			return true
		}
	}
	return false
}
