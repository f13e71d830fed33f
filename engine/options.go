// File: options.go
// Role: functional options for EdgeMap.
package engine

// OutputMode selects whether EdgeMap constructs an output VertexSubset
// or only runs callbacks for their side effects.
type OutputMode int

const (
	// WithOutput constructs and returns the output subset (the default).
	WithOutput OutputMode = iota
	// NoOutput skips output construction and returns an empty subset;
	// every qualifying edge is still visited regardless of what
	// Update/UpdateAtomic return, so cumulative-effect operators see
	// every contribution.
	NoOutput
)

// edgeMapConfig holds the resolved options for one EdgeMap call.
type edgeMapConfig struct {
	threshold  int64 // -1 means "never choose pull"
	outputMode OutputMode
}

// Option configures one EdgeMap call.
type Option func(*edgeMapConfig)

// WithThreshold overrides the push/pull switchover point. The default
// is graph.M()/20. A negative threshold means "never choose pull":
// WithThreshold(-1) forces the push plan unconditionally.
func WithThreshold(w int64) Option {
	return func(c *edgeMapConfig) {
		c.threshold = w
	}
}

// WithOutputMode selects WithOutput (default) or NoOutput.
func WithOutputMode(mode OutputMode) Option {
	return func(c *edgeMapConfig) {
		c.outputMode = mode
	}
}

func resolveConfig(defaultThreshold int64, opts []Option) edgeMapConfig {
	c := edgeMapConfig{threshold: defaultThreshold, outputMode: WithOutput}
	for _, o := range opts {
		o(&c)
	}
	return c
}
