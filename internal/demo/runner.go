// Package demo runs the maximal-product algorithms on a single sequence and
// prints the input, the chosen range and its product.
package demo

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/davidvella/maxprod/maxprod"
	"github.com/davidvella/maxprod/segment"
	"github.com/davidvella/maxprod/sequence"
	"go.uber.org/zap"
)

var (
	// ErrEmptySequence is returned when a run is asked for on no elements.
	ErrEmptySequence = errors.New("empty sequence")
	// ErrInvalidBounds is returned when a random draw has an empty or
	// negative interval.
	ErrInvalidBounds = errors.New("invalid bounds")
)

// Result is the outcome of one run.
type Result[T sequence.Number] struct {
	Input   []T
	Range   sequence.Range
	Product T
}

// Runner prints one maximal-product computation per call.
type Runner struct {
	opts options
}

// NewRunner creates a runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner{opts: o}
}

// Int runs the zero-segmented scan over seq.
func (r *Runner) Int(seq []uint64) (Result[uint64], error) {
	if len(seq) == 0 {
		return Result[uint64]{}, fmt.Errorf("int: %w", ErrEmptySequence)
	}

	begin := time.Now()
	span := maxprod.Int(seq)
	res := Result[uint64]{Input: seq, Range: span, Product: sequence.Product(seq, span)}

	r.opts.logger.Debug("int scan finished",
		zap.Int("length", len(seq)),
		zap.Stringer("range", span),
		zap.Duration("elapsed", time.Since(begin)))

	return res, r.print(res.Input, res.Range, res.Product)
}

// Real compresses seq into runs and reduces them.
func (r *Runner) Real(seq []float64) (Result[float64], error) {
	if len(seq) == 0 {
		return Result[float64]{}, fmt.Errorf("real: %w", ErrEmptySequence)
	}

	begin := time.Now()
	runs := segment.Compress(seq)
	if ce := r.opts.logger.Check(zap.DebugLevel, "compressed runs"); ce != nil {
		for run := range runs.All() {
			r.opts.logger.Debug("run",
				zap.Float64("product", run.Product),
				zap.Int("start", run.Start),
				zap.Int("end", run.End))
		}
		ce.Write(zap.Int("runs", runs.Len()))
	}

	best := maxprod.Reduce(runs)
	res := Result[float64]{Input: seq, Range: best.Range(), Product: sequence.Product(seq, best.Range())}

	r.opts.logger.Debug("real reduction finished",
		zap.Int("length", len(seq)),
		zap.Stringer("range", res.Range),
		zap.Float64("reduced_product", best.Product),
		zap.Duration("elapsed", time.Since(begin)))

	return res, r.print(res.Input, res.Range, res.Product)
}

// Random draws n values uniformly from [low, high) and runs Real on them.
func (r *Runner) Random(n int, low, high float64) (Result[float64], error) {
	if n <= 0 {
		return Result[float64]{}, fmt.Errorf("random: %w", ErrEmptySequence)
	}
	if low < 0 || high <= low {
		return Result[float64]{}, fmt.Errorf("random [%v, %v): %w", low, high, ErrInvalidBounds)
	}

	seq := make([]float64, n)
	for i := range seq {
		seq[i] = low + r.opts.rng.Float64()*(high-low)
	}
	return r.Real(seq)
}

// RandomInt draws n integers uniformly from [0, limit] and runs Int on them.
func (r *Runner) RandomInt(n int, limit uint64) (Result[uint64], error) {
	if n <= 0 {
		return Result[uint64]{}, fmt.Errorf("random int: %w", ErrEmptySequence)
	}
	if limit == math.MaxUint64 {
		return Result[uint64]{}, fmt.Errorf("random int [0, %d]: %w", limit, ErrInvalidBounds)
	}

	seq := make([]uint64, n)
	for i := range seq {
		seq[i] = r.opts.rng.Uint64N(limit + 1)
	}
	return r.Int(seq)
}

func (r *Runner) print(input any, span sequence.Range, product any) error {
	if _, err := fmt.Fprintf(r.opts.out, "F = %v\n", input); err != nil {
		return fmt.Errorf("error writing input: %w", err)
	}
	if _, err := fmt.Fprintf(r.opts.out, "F[%d .. %d] = %v\n", span.Start, span.End, product); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}
