// SPDX-License-Identifier: MIT

package family

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/modulus/prim_kruskal"
)

// Options configures family construction.
type Options struct {
	// Logger receives construction and per-call diagnostics.
	// Default is zap.NewNop().
	Logger *zap.Logger

	// Method selects the spanning-forest algorithm (prim_kruskal.MethodKruskal
	// or prim_kruskal.MethodPrim). Ignored by the path family.
	Method string
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a silent logger and Kruskal.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Method: prim_kruskal.MethodKruskal,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMethod selects the spanning-forest algorithm. Unknown names are
// rejected by NewMinimumSpanningTree with ErrConfiguration.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
