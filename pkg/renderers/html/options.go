package html

import (
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/pkg/fields"
)

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	templateFS fs.FS
	registry   *fields.Registry[FieldRenderer]
	theme      *theme.RendererConfig
	logger     *zap.Logger
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithRegistry overrides the field renderer registry.
func WithRegistry(reg *fields.Registry[FieldRenderer]) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// WithTheme applies a go-theme renderer configuration. Tokens become CSS
// variables when the configuration carries none of its own.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithLogger injects a logger. Nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
