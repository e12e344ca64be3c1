// Package sweep renders one frame per point of a parameter grid.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/equipot/internal/config"
	"github.com/san-kum/equipot/internal/renderer"
)

var (
	ErrUnknownParam = errors.New("sweep: unknown parameter")
	ErrBadValues    = errors.New("sweep: bad parameter values")
)

// Grid is the cartesian product of values for each named parameter. The
// first parameter varies slowest.
type Grid struct {
	names  []string
	values [][]float64
}

func New(names []string, values [][]float64) (*Grid, error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("%w: %d names for %d value lists", ErrBadValues, len(names), len(values))
	}
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if err := set(&config.Config{}, name, 0); err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s given twice", ErrBadValues, name)
		}
		seen[name] = true
		if len(values[i]) == 0 {
			return nil, fmt.Errorf("%w: no values for %s", ErrBadValues, name)
		}
	}
	return &Grid{names: names, values: values}, nil
}

// ParseParam reads "name=v1,v2,...".
func ParseParam(s string) (string, []float64, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok || list == "" {
		return "", nil, fmt.Errorf("%w: %q, want name=v1,v2", ErrBadValues, s)
	}
	var vals []float64
	for _, f := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %s: %v", ErrBadValues, name, err)
		}
		vals = append(vals, v)
	}
	return strings.TrimSpace(name), vals, nil
}

func set(cfg *config.Config, name string, v float64) error {
	switch name {
	case "m1":
		cfg.M1 = v
	case "m2":
		cfg.M2 = v
	case "d":
		cfg.Distance = v
	case "g":
		cfg.G = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

// Points enumerates every parameter combination.
func (g *Grid) Points() []map[string]float64 {
	var out []map[string]float64
	g.collect(0, map[string]float64{}, &out)
	return out
}

func (g *Grid) collect(depth int, current map[string]float64, out *[]map[string]float64) {
	if depth == len(g.names) {
		*out = append(*out, current)
		return
	}
	for _, v := range g.values[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, cv := range current {
			next[k] = cv
		}
		next[g.names[depth]] = v
		g.collect(depth+1, next, out)
	}
}

// Frame is the outcome of one grid point. Err is set when that point could
// not be rendered; the sweep carries on.
type Frame struct {
	Params map[string]float64
	Path   string
	Levels int
	Err    error
}

func (g *Grid) name(i int, params map[string]float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame_%03d", i)
	for _, n := range g.names {
		fmt.Fprintf(&b, "_%s-%g", n, params[n])
	}
	return b.String()
}

// Run renders every point over base into dir, using ext as the image
// format. It stops early only when ctx is done.
func (g *Grid) Run(ctx context.Context, base *config.Config, dir, ext string) ([]Frame, error) {
	points := g.Points()
	frames := make([]Frame, 0, len(points))

	for i, params := range points {
		if err := ctx.Err(); err != nil {
			return frames, err
		}

		cfg := *base
		for name, v := range params {
			_ = set(&cfg, name, v)
		}
		cfg.Output = filepath.Join(dir, g.name(i, params)+ext)

		frame := Frame{Params: params, Path: cfg.Output}
		res, err := renderer.Render(&cfg)
		if err != nil {
			frame.Err = err
		} else {
			frame.Levels = len(res.Levels)
		}
		frames = append(frames, frame)
	}

	return frames, nil
}
