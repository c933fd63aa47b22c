package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/gridpath/grid"
)

// Render writes g to w, one row per line.
// This output is diagnostic; the authoritative result is astar.Result.
func Render(w io.Writer, g *grid.Grid, opts ...RenderOption) error {
	o := RenderOptions{Mode: ModeKind}
	for _, opt := range opts {
		opt(&o)
	}

	tokens := make([]string, g.Len())
	width := 0
	for id := range tokens {
		tokens[id] = token(g.Cell(id), o.Mode)
		if len(tokens[id]) > width {
			width = len(tokens[id])
		}
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			c := g.At(x, y)
			tok := fmt.Sprintf("%*s", width, tokens[c.ID()])
			if o.Color {
				fmt.Fprintf(bw, "%s", colorize(c.Kind(), tok))
			} else {
				bw.WriteString(tok)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// RenderString is Render into a string.
func RenderString(g *grid.Grid, opts ...RenderOption) string {
	var sb strings.Builder
	_ = Render(&sb, g, opts...)
	return sb.String()
}

func token(c *grid.Cell, m Mode) string {
	if m == ModeFCost {
		if !c.Evaluated() {
			return InfToken
		}
		return strconv.FormatFloat(c.FCost(), 'f', 2, 64)
	}
	return strconv.Itoa(int(c.Kind()))
}

func colorize(k grid.Kind, tok string) interface{} {
	switch k {
	case grid.Obstacle:
		return aurora.Red(tok)
	case grid.OnPath:
		return aurora.Green(tok)
	case grid.Finalized:
		return aurora.Cyan(tok)
	}
	return tok
}
