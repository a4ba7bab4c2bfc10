// Package render draws a grid and its search state as text.
//
// Each cell becomes one Glyph, chosen by Classify. A frame without search
// state uses the same characters as grid.FromLayout, so it can be parsed
// back. Colour is optional and handled by github.com/gookit/color, which
// drops the escape codes when the terminal does not support them.
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/pathgrid/grid"
)

// Glyph is the character drawn for one cell.
type Glyph rune

// Glyphs, in drawing priority order.
const (
	Start    Glyph = grid.GlyphStart
	Goal     Glyph = grid.GlyphGoal
	Path     Glyph = '*'
	Closed   Glyph = 'x'
	Open     Glyph = 'o'
	Wall     Glyph = grid.GlyphWall
	Normal   Glyph = grid.GlyphNormal
	Sand     Glyph = grid.GlyphSand
	Water    Glyph = grid.GlyphWater
	Mountain Glyph = grid.GlyphMountain
)

var styles = map[Glyph]color.Style{
	Start:    color.New(color.FgBlack, color.BgGreen, color.OpBold),
	Goal:     color.New(color.FgBlack, color.BgRed, color.OpBold),
	Path:     color.New(color.FgYellow, color.OpBold),
	Closed:   color.New(color.FgMagenta),
	Open:     color.New(color.FgCyan),
	Wall:     color.New(color.FgGray),
	Normal:   color.New(color.FgWhite),
	Sand:     color.New(color.FgLightYellow),
	Water:    color.New(color.FgBlue),
	Mountain: color.New(color.FgLightRed),
}

// Classify picks the glyph for c: start, goal, path, closed, open, wall,
// then terrain, first match wins.
func Classify(c *grid.Cell, start, goal grid.Coord) Glyph {
	switch {
	case c.Coord() == start:
		return Start
	case c.Coord() == goal:
		return Goal
	case c.InPath():
		return Path
	case c.InClosedSet():
		return Closed
	case c.InOpenSet():
		return Open
	case c.IsWall():
		return Wall
	}
	switch c.Terrain() {
	case grid.Sand:
		return Sand
	case grid.Water:
		return Water
	case grid.Mountain:
		return Mountain
	}

	return Normal
}

// Option configures Frame.
type Option func(*Options)

// Options holds Frame settings.
type Options struct {
	// Color wraps each glyph in ANSI colour codes.
	Color bool
}

// WithColor turns colour output on or off.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// Frame writes one line per grid row.
func Frame(w io.Writer, g *grid.Grid, start, goal grid.Coord, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			glyph := Classify(g.Cell(r, c), start, goal)
			if o.Color {
				bw.WriteString(styles[glyph].Sprint(string(glyph)))
				continue
			}
			bw.WriteRune(rune(glyph))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Rows renders the frame as one uncoloured string per grid row.
func Rows(g *grid.Grid, start, goal grid.Coord) []string {
	out := make([]string, g.Rows())
	var sb strings.Builder
	for r := range out {
		sb.Reset()
		for c := 0; c < g.Cols(); c++ {
			sb.WriteRune(rune(Classify(g.Cell(r, c), start, goal)))
		}
		out[r] = sb.String()
	}

	return out
}
