package scene

import (
	"log/slog"

	"github.com/gogpu/glyphmesh"
)

// Option configures Assemble.
//
// Example:
//
//	mesh, err := scene.Assemble(cat, layout, scene.WithLogger(slog.Default()))
type Option func(*options)

type options struct {
	logger *slog.Logger
	cache  *PartCache
}

func defaultOptions() options {
	return options{
		logger: nil, // falls back to glyphmesh.Logger()
		cache:  nil, // every part is extruded
	}
}

// WithPartCache reuses extruded parts from c and stores new ones in it.
// Share one cache between assemblies of the same catalog to skip
// re-extruding unchanged parts.
func WithPartCache(c *PartCache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithLogger routes assembly diagnostics to l instead of the package logger
// set with glyphmesh.SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return glyphmesh.Logger()
}
