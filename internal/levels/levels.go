// Package levels builds the sequences of values at which contour lines are
// drawn.
package levels

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Strategy names a way of choosing contour levels.
type Strategy string

const (
	// Hybrid is a dense linear run followed by a sparse logarithmic tail.
	Hybrid Strategy = "hybrid"
	// LogExtrema spaces levels as 10^e for e evenly spaced between the
	// field extrema, so the extrema are read as exponents.
	LogExtrema Strategy = "log-extrema"
	// Linear spaces levels evenly between the field extrema.
	Linear Strategy = "linear"
)

// Hybrid layout.
const (
	HybridLinearCount = 35
	HybridLinearMax   = 80.0
	HybridLogCount    = 20
	HybridLogMin      = 81.0
	HybridLogMax      = 1000.0
)

const DefaultCount = 10

var strategies = map[Strategy]bool{
	Hybrid:     true,
	LogExtrema: true,
	Linear:     true,
}

// ParseStrategy maps a name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(name)
	if !strategies[s] {
		return "", fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, name, Names())
	}
	return s, nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for s := range strategies {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return names
}

// Build returns the levels for strategy s given the field extrema lo and hi.
// n is the level count for the extrema-based strategies; Hybrid ignores
// lo, hi and n.
func Build(s Strategy, lo, hi float64, n int) ([]float64, error) {
	switch s {
	case Hybrid:
		return HybridLevels(), nil
	case LogExtrema:
		return LogSpaceExponents(lo, hi, n)
	case Linear:
		if n < 2 {
			return nil, fmt.Errorf("%w: got %d", ErrLevelCount, n)
		}
		if !finite(lo) || !finite(hi) {
			return nil, fmt.Errorf("%w: min=%v max=%v", ErrLevelDomain, lo, hi)
		}
		return floats.Span(make([]float64, n), lo, hi), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// HybridLevels returns 35 levels evenly spaced over [0, 80] followed by 20
// levels logarithmically spaced over [81, 1000].
func HybridLevels() []float64 {
	lin := floats.Span(make([]float64, HybridLinearCount), 0, HybridLinearMax)
	log := floats.LogSpan(make([]float64, HybridLogCount), HybridLogMin, HybridLogMax)
	return append(lin, log...)
}

// LogSpaceExponents returns 10^e for n values of e evenly spaced over
// [lo, hi]. A non-positive or non-finite extremum is an ErrLevelDomain, as
// is any level that overflows.
func LogSpaceExponents(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrLevelCount, n)
	}
	if !finite(lo) || !finite(hi) || lo <= 0 {
		return nil, fmt.Errorf("%w: min=%v max=%v", ErrLevelDomain, lo, hi)
	}

	out := floats.Span(make([]float64, n), lo, hi)
	for i, e := range out {
		out[i] = math.Pow(10, e)
		if math.IsInf(out[i], 0) {
			return nil, fmt.Errorf("%w: 10^%v overflows", ErrLevelDomain, e)
		}
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
