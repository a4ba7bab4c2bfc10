package api

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/render"
	"github.com/katalvlaran/pathgrid/session"
)

// CreateSessionRequest creates a session. Size names a preset; Rows and
// Cols override it. Everything is optional.
type CreateSessionRequest struct {
	Size string `json:"size"`
	Rows int    `json:"rows" binding:"omitempty,min=1,max=1000"`
	Cols int    `json:"cols" binding:"omitempty,min=1,max=1000"`
	Seed int64  `json:"seed"`
}

// CellRequest addresses one cell.
type CellRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

func (r CellRequest) coord() grid.Coord {
	return grid.Coord{Row: *r.Row, Col: *r.Col}
}

// TerrainRequest sets the terrain of a cell, or cycles it when Terrain is
// empty.
type TerrainRequest struct {
	CellRequest
	Terrain string `json:"terrain"`
}

// MazeRequest generates a maze: "scatter" (the default) with Density, or
// "perfect".
type MazeRequest struct {
	Kind    string   `json:"kind" binding:"omitempty,oneof=scatter perfect"`
	Density *float64 `json:"density"`
}

// ResetRequest resets a session: "full" (the default) or "search".
type ResetRequest struct {
	Mode string `json:"mode" binding:"omitempty,oneof=full search"`
}

// RunRequest starts a search. Start and Goal are "row,col". When both are
// empty the current endpoints are kept; otherwise a bad or missing value
// falls back to its default.
type RunRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Start     string `json:"start"`
	Goal      string `json:"goal"`
}

// StepRequest advances the run by Count steps, 1 when omitted.
type StepRequest struct {
	Count int `json:"count" binding:"omitempty,min=1,max=1000000"`
}

// ResizeRequest replaces the grid. Size names a preset; Rows and Cols
// override it, and anything left unset keeps the current dimension.
type ResizeRequest struct {
	Size string `json:"size"`
	Rows int    `json:"rows" binding:"omitempty,min=1,max=1000"`
	Cols int    `json:"cols" binding:"omitempty,min=1,max=1000"`
}

// SessionResponse is a full picture of one session.
type SessionResponse struct {
	ID      uuid.UUID       `json:"id"`
	Grid    render.View     `json:"grid"`
	Summary session.Summary `json:"summary"`
	Status  string          `json:"status"`
}

// ListResponse lists session ids.
type ListResponse struct {
	Sessions []uuid.UUID `json:"sessions"`
}

// WallResponse reports the wall state after a toggle.
type WallResponse struct {
	Wall bool `json:"wall"`
}

// TerrainResponse reports the terrain after an edit.
type TerrainResponse struct {
	Terrain string `json:"terrain"`
}

// StepResponse reports progress after stepping.
type StepResponse struct {
	Done    bool            `json:"done"`
	Steps   int             `json:"steps"`
	Summary session.Summary `json:"summary"`
	Status  string          `json:"status"`
}

// PathResponse carries the path of a run.
type PathResponse struct {
	Path    []grid.Coord    `json:"path"`
	Summary session.Summary `json:"summary"`
	Status  string          `json:"status"`
}

// BreachResponse lists the cells opened to join start and goal.
type BreachResponse struct {
	Opened  []grid.Coord    `json:"opened"`
	Regions session.Regions `json:"regions"`
}
