package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/session"
)

// statusClientClosed is the non-standard status written when the client
// went away before the request finished.
const statusClientClosed = 499

// SessionController exposes a session.Manager over HTTP.
type SessionController struct {
	manager *session.Manager
	logger  *slog.Logger
}

// NewSessionController returns a controller backed by m.
func NewSessionController(m *session.Manager, logger *slog.Logger) *SessionController {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionController{manager: m, logger: logger}
}

// Register mounts the session routes on route.
func (sc *SessionController) Register(route *gin.RouterGroup) {
	sessions := route.Group("/sessions")
	{
		sessions.POST("", sc.create)
		sessions.GET("", sc.list)
		sessions.GET("/:id", sc.get)
		sessions.DELETE("/:id", sc.delete)
		sessions.POST("/:id/walls", sc.toggleWall)
		sessions.POST("/:id/terrain", sc.terrain)
		sessions.POST("/:id/resize", sc.resize)
		sessions.POST("/:id/maze", sc.maze)
		sessions.POST("/:id/breach", sc.breach)
		sessions.GET("/:id/regions", sc.regions)
		sessions.POST("/:id/reset", sc.reset)
		sessions.POST("/:id/runs", sc.run)
		sessions.POST("/:id/step", sc.step)
		sessions.POST("/:id/complete", sc.complete)
		sessions.GET("/:id/path", sc.path)
	}
}

func (sc *SessionController) create(ctx *gin.Context) {
	var req CreateSessionRequest
	if !bindOptional(ctx, &req) {
		return
	}
	c := session.Config{Rows: req.Rows, Cols: req.Cols, Seed: req.Seed}
	if req.Size != "" {
		p, err := session.ParsePreset(req.Size)
		if err != nil {
			sc.fail(ctx, err)
			return
		}
		if c.Rows == 0 {
			c.Rows = p.Rows
		}
		if c.Cols == 0 {
			c.Cols = p.Cols
		}
	}

	s, err := sc.manager.Create(c)
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, describe(s))
}

func (sc *SessionController) list(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ListResponse{Sessions: sc.manager.List()})
}

func (sc *SessionController) get(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, describe(s))
}

func (sc *SessionController) delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := sc.manager.Delete(id); err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (sc *SessionController) toggleWall(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	var req CellRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wall, err := s.ToggleWall(req.coord())
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, WallResponse{Wall: wall})
}

func (sc *SessionController) terrain(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	var req TerrainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Terrain == "" {
		t, err := s.CycleTerrain(req.coord())
		if err != nil {
			sc.fail(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, TerrainResponse{Terrain: t.String()})
		return
	}
	t, err := grid.ParseTerrain(req.Terrain)
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	if err := s.SetTerrain(req.coord(), t); err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, TerrainResponse{Terrain: t.String()})
}

func (sc *SessionController) resize(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	var req ResizeRequest
	if !bindOptional(ctx, &req) {
		return
	}
	rows, cols := s.Size()
	if req.Size != "" {
		p, err := session.ParsePreset(req.Size)
		if err != nil {
			sc.fail(ctx, err)
			return
		}
		rows, cols = p.Rows, p.Cols
	}
	if req.Rows != 0 {
		rows = req.Rows
	}
	if req.Cols != 0 {
		cols = req.Cols
	}
	if err := s.Resize(rows, cols); err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, describe(s))
}

func (sc *SessionController) maze(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	var req MazeRequest
	if !bindOptional(ctx, &req) {
		return
	}

	var err error
	if req.Kind == "perfect" {
		err = s.GeneratePerfectMaze()
	} else {
		density := maze.DefaultDensity
		if req.Density != nil {
			density = *req.Density
		}
		err = s.GenerateMaze(density)
	}
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, describe(s))
}

func (sc *SessionController) breach(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	opened, err := s.Breach()
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	if opened == nil {
		opened = []grid.Coord{}
	}
	ctx.JSON(http.StatusOK, BreachResponse{Opened: opened, Regions: s.Regions()})
}

func (sc *SessionController) regions(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, s.Regions())
}

func (sc *SessionController) reset(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	var req ResetRequest
	if !bindOptional(ctx, &req) {
		return
	}
	if req.Mode == "search" {
		s.ResetSearch()
	} else {
		s.Reset()
	}
	ctx.JSON(http.StatusOK, describe(s))
}

func (sc *SessionController) run(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	var req RunRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, err := algorithms.ParseKind(req.Algorithm)
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	if req.Start != "" || req.Goal != "" {
		s.SetEndpoints(req.Start, req.Goal)
	}
	if err := s.Start(kind); err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, describe(s))
}

func (sc *SessionController) step(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	req := StepRequest{Count: 1}
	if !bindOptional(ctx, &req) {
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	var (
		done  bool
		steps int
		err   error
	)
	for !done && steps < req.Count {
		done, err = s.Step()
		if err != nil {
			sc.fail(ctx, err)
			return
		}
		steps++
	}
	sum := s.Summary()
	ctx.JSON(http.StatusOK, StepResponse{Done: done, Steps: steps, Summary: sum, Status: sum.String()})
}

func (sc *SessionController) complete(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	sum, err := s.Complete(ctx.Request.Context())
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, PathResponse{Path: s.Path(), Summary: sum, Status: sum.String()})
}

func (sc *SessionController) path(ctx *gin.Context) {
	s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	sum := s.Summary()
	ctx.JSON(http.StatusOK, PathResponse{Path: s.Path(), Summary: sum, Status: sum.String()})
}

// lookup resolves the :id parameter, writing the error response itself.
func (sc *SessionController) lookup(ctx *gin.Context) (*session.Session, bool) {
	id, ok := parseID(ctx)
	if !ok {
		return nil, false
	}
	s, err := sc.manager.Get(id)
	if err != nil {
		sc.fail(ctx, err)
		return nil, false
	}

	return s, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}

	return id, true
}

// bindOptional binds a JSON body that may be absent.
func bindOptional(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}

	return true
}

func describe(s *session.Session) SessionResponse {
	sum := s.Summary()

	return SessionResponse{
		ID:      s.ID(),
		Grid:    s.Snapshot(),
		Summary: sum,
		Status:  sum.String(),
	}
}

// fail maps domain errors to status codes and writes the error body.
// Only unexpected failures are logged.
func (sc *SessionController) fail(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, context.Canceled):
		status = statusClientClosed
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusRequestTimeout
	case errors.Is(err, session.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrNoRun):
		status = http.StatusConflict
	case errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrBadDimensions),
		errors.Is(err, grid.ErrOptionViolation),
		errors.Is(err, grid.ErrUnknownTerrain),
		errors.Is(err, algorithms.ErrUnknownKind),
		errors.Is(err, maze.ErrBadDensity),
		errors.Is(err, maze.ErrTooFewOpenCells),
		errors.Is(err, session.ErrUnknownPreset):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		sc.logger.Error("request failed", "path", ctx.FullPath(), "error", err)
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
