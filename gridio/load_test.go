package gridio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridio"
)

func TestLoad_Basic(t *testing.T) {
	g, err := gridio.Load(strings.NewReader("0 0 5\n5 0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, [][]grid.Kind{
		{grid.Open, grid.Open, grid.Obstacle},
		{grid.Obstacle, grid.Open, grid.Open},
	}, g.Kinds())
}

// TestLoad_SpacesDropped: spaces never count as columns, wherever they are.
func TestLoad_SpacesDropped(t *testing.T) {
	a, err := gridio.Load(strings.NewReader("  0 5  0\n0   0 0 \n"))
	require.NoError(t, err)
	b, err := gridio.Load(strings.NewReader("050\n000\n"))
	require.NoError(t, err)
	assert.Equal(t, b.Kinds(), a.Kinds())
	assert.Equal(t, 3, a.Width())
}

// TestLoad_AnnotationsStripped re-reads rendered output as terrain.
func TestLoad_AnnotationsStripped(t *testing.T) {
	g, err := gridio.Load(strings.NewReader("3 1 5\r\n0 3 3\r\n\r\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]grid.Kind{
		{grid.Open, grid.Open, grid.Obstacle},
		{grid.Open, grid.Open, grid.Open},
	}, g.Kinds())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
		msg   string
	}{
		{"Letter", "00\n0x\n", gridio.ErrMalformedInput, "line 2, offset 2"},
		{"UnknownDigit", "02\n", gridio.ErrMalformedInput, `'2'`},
		{"Tab", "0\t0\n", gridio.ErrMalformedInput, "line 1"},
		{"Empty", "", grid.ErrEmptyGrid, ""},
		{"OnlyBlankLines", "\n\n", grid.ErrEmptyGrid, ""},
		{"Ragged", "000\n00\n", grid.ErrNonRectangular, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridio.Load(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.err)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 5\n0 0\n"), 0o600))

	g, err := gridio.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, grid.Obstacle, g.At(1, 0).Kind())

	_, err = gridio.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("0?\n"), 0o600))
	_, err = gridio.LoadFile(bad)
	assert.ErrorIs(t, err, gridio.ErrMalformedInput)
	assert.Contains(t, err.Error(), bad)
}
