package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"umdproc/internal/config"
	"umdproc/internal/dump"
)

type commandContext struct {
	configFlag *string
	mediaFlag  *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, mediaFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		mediaFlag:  mediaFlag,
	}
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
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// mediaType resolves the dump media type: the --media flag when given,
// otherwise the configured default.
func (c *commandContext) mediaType() dump.MediaType {
	if c.mediaFlag != nil && strings.TrimSpace(*c.mediaFlag) != "" {
		return dump.ParseMediaType(strings.TrimSpace(*c.mediaFlag))
	}
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return dump.MediaUMD
	}
	return dump.ParseMediaType(cfg.Processing.MediaType)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
