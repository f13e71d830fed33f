// Package pagerank computes PageRank by iterating EdgeMap/VertexMap
// over the full vertex set until the L1 distance between successive
// iterates drops below epsilon or a maximum iteration count is reached.
//
// Each round is one EdgeMap call in NoOutput mode, so every edge
// contributes p_curr[s]/outdeg(s) to p_next[d] regardless of what the
// operator returns, followed by a vertex-map pass that applies damping
// and the p_curr/p_next ping-pong swap.
package pagerank

// Options configures one PageRank run.
type Options struct {
	MaxIters int
	Damping  float64
	Epsilon  float64
}

// Option configures Options.
type Option func(*Options)

// WithMaxIters overrides the default iteration cap of 100.
func WithMaxIters(n int) Option {
	return func(o *Options) { o.MaxIters = n }
}

// WithDamping overrides the default damping factor of 0.85.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithEpsilon overrides the default L1 convergence threshold of 1e-7.
func WithEpsilon(e float64) Option {
	return func(o *Options) { o.Epsilon = e }
}

func defaultOptions() Options {
	return Options{MaxIters: 100, Damping: 0.85, Epsilon: 1e-7}
}

// Result holds the outcome of a PageRank run.
type Result struct {
	// P[v] is v's final rank.
	P []float64

	// Iterations is the number of EdgeMap rounds performed.
	Iterations int

	// Converged reports whether the L1 distance dropped below Epsilon
	// before MaxIters was reached.
	Converged bool
}
