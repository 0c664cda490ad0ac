package demo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrOutOfDomain is returned for negative or NaN real arguments.
var ErrOutOfDomain = errors.New("value is not a non-negative real")

// ParseUints parses each argument as a base-10 unsigned integer. Arguments may
// also hold several comma-separated values.
func ParseUints(args []string) ([]uint64, error) {
	var seq []uint64
	for _, field := range fields(args) {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", field, err)
		}
		seq = append(seq, v)
	}
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	return seq, nil
}

// ParseFloats parses each argument as a non-negative real.
func ParseFloats(args []string) ([]float64, error) {
	var seq []float64
	for _, field := range fields(args) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", field, err)
		}
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%q: %w", field, ErrOutOfDomain)
		}
		seq = append(seq, v)
	}
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	return seq, nil
}

func fields(args []string) []string {
	var out []string
	for _, arg := range args {
		for _, f := range strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		}) {
			out = append(out, f)
		}
	}
	return out
}
