package demo

import (
	"io"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"
)

// options defines all configuration options for the runner.
type options struct {
	out    io.Writer   // Where results are printed
	logger *zap.Logger // Structured logger for diagnostics
	rng    *rand.Rand  // Source for random sequences
}

// Option is a function that configures the runner options.
type Option func(*options)

// WithOutput sets the writer results are printed to.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRand sets the random source used by Runner.Random.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds a deterministic random source for Runner.Random.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		out:    os.Stdout,
		logger: zap.NewNop(),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}
