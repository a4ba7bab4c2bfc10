package grid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates rows or cols is not positive.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive")

	// ErrOptionViolation indicates an invalid Option was supplied to New.
	ErrOptionViolation = errors.New("grid: invalid option supplied")

	// ErrOutOfBounds indicates an edit referenced a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrEdgeNotFound indicates no edge connects two cells.
	ErrEdgeNotFound = errors.New("grid: edge not found")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("grid: edge weight must be positive")

	// ErrBadCoord indicates a coordinate string that does not parse as "row,col".
	ErrBadCoord = errors.New("grid: coordinate must look like \"row,col\"")

	// ErrUnknownTerrain indicates a terrain name that does not parse.
	ErrUnknownTerrain = errors.New("grid: unknown terrain")
)

// Coord identifies a cell by row and column. It is the non-owning handle
// used for predecessor links and paths.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats c as "row,col", the same form ParseCoord accepts.
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// ParseCoord parses "row,col" with optional surrounding whitespace.
// It does not check bounds; use Grid.InBounds for that.
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}

	return Coord{Row: row, Col: col}, nil
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Coord) float64 {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return float64(dr + dc)
}

// Terrain is the kind of ground a cell is made of. Each kind has a fixed
// traversal cost; Wall is impassable.
type Terrain int

const (
	// Normal ground, cost 1.
	Normal Terrain = iota
	// Sand, cost 2.
	Sand
	// Water, cost 5.
	Water
	// Mountain, cost 10.
	Mountain
	// Wall is impassable (cost +Inf).
	Wall
)

var terrainNames = [...]string{"normal", "sand", "water", "mountain", "wall"}

// Cost returns the traversal cost of t.
func (t Terrain) Cost() float64 {
	switch t {
	case Normal:
		return 1
	case Sand:
		return 2
	case Water:
		return 5
	case Mountain:
		return 10
	default:
		return math.Inf(1)
	}
}

// String returns the lower-case name of t.
func (t Terrain) String() string {
	if t < Normal || t > Wall {
		return "terrain(" + strconv.Itoa(int(t)) + ")"
	}

	return terrainNames[t]
}

// Next returns the terrain after t in the cycle
// Normal → Sand → Water → Mountain → Normal. Walls are not part of the
// cycle; Wall.Next() is Normal.
func (t Terrain) Next() Terrain {
	if t >= Mountain || t < Normal {
		return Normal
	}

	return t + 1
}

// ParseTerrain parses a case-insensitive terrain name.
func ParseTerrain(s string) (Terrain, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range terrainNames {
		if n == name {
			return Terrain(i), nil
		}
	}

	return Normal, fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
}

// Edge is a directed, weighted arc owned by its source cell's adjacency list.
// To is a handle into the same Grid.
type Edge struct {
	To     Coord   `json:"to"`
	Weight float64 `json:"weight"`
}
