package puzzlecfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/puzzlecfg"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDocumentedDefaults(t *testing.T) {
	path := writeConfig(t, "width: 20\n")

	cfg, err := puzzlecfg.Load(path)
	require.NoError(t, err)

	assert.Equal(t, board.Square, cfg.Kind)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
	assert.Equal(t, 3, cfg.MinShapeSize)
	assert.Equal(t, 5, cfg.MaxShapeSize)
	assert.Equal(t, 15, cfg.MinBundleArea)
	assert.Equal(t, 25, cfg.MaxBundleArea)
}

func TestLoad_HonoursExplicitValues(t *testing.T) {
	path := writeConfig(t, `
width: 6
height: 8
grid_type: 1
min_shape_size: 2
max_shape_size: 4
min_bundle_area: 6
max_bundle_area: 10
`)

	cfg, err := puzzlecfg.Load(path)
	require.NoError(t, err)

	assert.Equal(t, board.Hexagon, cfg.Kind)
	assert.Equal(t, 6, cfg.Width)
	assert.Equal(t, 8, cfg.Height)
	assert.Equal(t, 2, cfg.MinShapeSize)
	assert.Equal(t, 4, cfg.MaxShapeSize)
	assert.Equal(t, 6, cfg.MinBundleArea)
	assert.Equal(t, 10, cfg.MaxBundleArea)
}

func TestLoad_RejectsInvertedBounds(t *testing.T) {
	path := writeConfig(t, "min_shape_size: 8\nmax_shape_size: 3\n")

	_, err := puzzlecfg.Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownGridType(t *testing.T) {
	path := writeConfig(t, "grid_type: 9\n")

	_, err := puzzlecfg.Load(path)
	assert.Error(t, err)
}
