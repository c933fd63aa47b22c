package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Load parses a grid from r.
// Returns ErrMalformedInput (with row and column) for unknown characters,
// grid.ErrEmptyGrid for input with no cells and grid.ErrNonRectangular for
// rows of different lengths.
func Load(r io.Reader) (*grid.Grid, error) {
	var rows [][]grid.Kind
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			continue
		}
		row, err := parseRow(text, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read: %w", err)
	}

	return grid.FromKinds(rows)
}

// parseRow converts one line. Spaces are skipped and do not advance the column.
func parseRow(text string, line int) ([]grid.Kind, error) {
	row := make([]grid.Kind, 0, len(text))
	for i, r := range text {
		if r == ' ' {
			continue
		}
		k, ok := kindOf(r)
		if !ok {
			return nil, fmt.Errorf("%w: line %d, offset %d: unexpected %q", ErrMalformedInput, line, i+1, r)
		}
		row = append(row, k)
	}
	return row, nil
}

func kindOf(r rune) (grid.Kind, bool) {
	switch r {
	case '0', '1', '3':
		return grid.Open, true
	case '5':
		return grid.Obstacle, true
	}
	return 0, false
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: %w", err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
