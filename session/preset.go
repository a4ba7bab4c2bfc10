package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/grid"
)

// Preset is a named grid size.
type Preset struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

// Grid sizes offered by the driver.
var (
	Small      = Preset{Name: "small", Rows: 20, Cols: 30}
	Medium     = Preset{Name: "medium", Rows: 40, Cols: 60}
	Large      = Preset{Name: "large", Rows: 60, Cols: 90}
	ExtraLarge = Preset{Name: "xlarge", Rows: 80, Cols: 120}
)

// Presets lists the sizes from smallest to largest.
func Presets() []Preset {
	return []Preset{Small, Medium, Large, ExtraLarge}
}

// String formats p as "name (rows×cols)".
func (p Preset) String() string {
	return fmt.Sprintf("%s (%d×%d)", p.Name, p.Rows, p.Cols)
}

// ParsePreset looks a preset up by name, case-insensitively. "xl" and
// "extralarge" are accepted for ExtraLarge.
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small", "s":
		return Small, nil
	case "medium", "m":
		return Medium, nil
	case "large", "l":
		return Large, nil
	case "xlarge", "xl", "extralarge", "extra-large":
		return ExtraLarge, nil
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// DefaultEndpoints returns the start and goal a fresh grid of the given
// size gets: (0,0) and (min(10,rows-1), min(10,cols-1)).
func DefaultEndpoints(rows, cols int) (start, goal grid.Coord) {
	return grid.Coord{}, grid.Coord{Row: min(10, rows-1), Col: min(10, cols-1)}
}
