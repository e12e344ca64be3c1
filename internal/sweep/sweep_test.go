package sweep

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/equipot/internal/config"
	"github.com/san-kum/equipot/internal/levels"
)

func smallBase() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Grid.Resolution = 20
	return cfg
}

func TestParseParam(t *testing.T) {
	name, vals, err := ParseParam("m2=1, 10,40")
	require.NoError(t, err)
	assert.Equal(t, "m2", name)
	assert.Equal(t, []float64{1, 10, 40}, vals)

	for _, bad := range []string{"m2", "m2=", "m2=a,b"} {
		_, _, err := ParseParam(bad)
		assert.ErrorIs(t, err, ErrBadValues, bad)
	}
}

func TestNewRejectsBadGrids(t *testing.T) {
	_, err := New([]string{"mass"}, [][]float64{{1}})
	assert.ErrorIs(t, err, ErrUnknownParam)

	_, err = New([]string{"m1", "m1"}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrBadValues)

	_, err = New([]string{"m1"}, [][]float64{{}})
	assert.ErrorIs(t, err, ErrBadValues)

	_, err = New([]string{"m1"}, nil)
	assert.ErrorIs(t, err, ErrBadValues)
}

func TestPointsOrder(t *testing.T) {
	g, err := New([]string{"m1", "m2"}, [][]float64{{1, 2}, {10, 20, 30}})
	require.NoError(t, err)

	pts := g.Points()
	require.Len(t, pts, 6)
	assert.Equal(t, map[string]float64{"m1": 1, "m2": 10}, pts[0])
	assert.Equal(t, map[string]float64{"m1": 1, "m2": 30}, pts[2])
	assert.Equal(t, map[string]float64{"m1": 2, "m2": 10}, pts[3])
}

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	g, err := New([]string{"m2"}, [][]float64{{10, 40}})
	require.NoError(t, err)

	frames, err := g.Run(context.Background(), smallBase(), dir, ".svg")
	require.NoError(t, err)
	require.Len(t, frames, 2)

	for _, f := range frames {
		require.NoError(t, f.Err)
		assert.Equal(t, 55, f.Levels)
		assert.Equal(t, dir, filepath.Dir(f.Path))
		_, err := os.Stat(f.Path)
		assert.NoError(t, err)
	}
	assert.Equal(t, "frame_001_m2-40.svg", filepath.Base(frames[1].Path))
}

func TestRunRecordsPerFrameErrors(t *testing.T) {
	base := smallBase()
	base.Negate = false
	base.Levels.Strategy = string(levels.LogExtrema)

	g, err := New([]string{"m1", "m2"}, [][]float64{{5}, {10}})
	require.NoError(t, err)

	frames, err := g.Run(context.Background(), base, t.TempDir(), ".png")
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.True(t, errors.Is(frames[0].Err, levels.ErrLevelDomain))
}

func TestRunHonoursCancel(t *testing.T) {
	g, err := New([]string{"m2"}, [][]float64{{10, 20}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames, err := g.Run(ctx, smallBase(), t.TempDir(), ".png")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, frames)
}
