// Package renderer turns a configuration into a contour plot of the
// effective potential: validate, sample, optionally negate, pick levels,
// draw.
package renderer

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/san-kum/equipot/internal/config"
	"github.com/san-kum/equipot/internal/field"
	"github.com/san-kum/equipot/internal/levels"
	"github.com/san-kum/equipot/internal/potential"
	"github.com/san-kum/equipot/internal/render"
)

type Result struct {
	System  potential.System
	Field   *field.Field
	Levels  []float64
	Plot    *plot.Plot
	Options render.Options
}

// Compute samples the field and builds its contour levels without drawing.
func Compute(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sys, err := cfg.System()
	if err != nil {
		return nil, err
	}
	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, err
	}

	f, err := field.Sample(sys, cfg.Grid.Resolution, cfg.Grid.Extent)
	if err != nil {
		return nil, err
	}
	if cfg.Negate {
		f.Negate()
	}

	lo, hi := f.Extrema()
	lv, err := levels.Build(strategy, lo, hi, cfg.Levels.Count)
	if err != nil {
		return nil, fmt.Errorf("%s levels: %w", strategy, err)
	}

	x1, x2 := sys.Positions()
	return &Result{
		System: sys,
		Field:  f,
		Levels: lv,
		Options: render.Options{
			Filled:   cfg.Filled,
			HideAxes: cfg.HideAxes,
			Title:    cfg.Title,
			Markers:  plotter.XYs{{X: x1}, {X: x2}},
		},
	}, nil
}

// Run computes the field and draws it.
func Run(cfg *config.Config) (*Result, error) {
	res, err := Compute(cfg)
	if err != nil {
		return nil, err
	}

	res.Plot, err = render.Plot(res.Field, res.Levels, res.Options)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Render runs cfg and writes the plot to cfg.Output.
func Render(cfg *config.Config) (*Result, error) {
	res, err := Run(cfg)
	if err != nil {
		return nil, err
	}
	if err := render.Save(res.Plot, cfg.Output, res.Options); err != nil {
		return nil, fmt.Errorf("save %s: %w", cfg.Output, err)
	}
	return res, nil
}
