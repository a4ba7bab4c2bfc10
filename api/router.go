// Package api serves pathgrid sessions over HTTP with gin.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Controller mounts a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Router owns the gin engine and the HTTP server around it.
type Router struct {
	addr    string
	baseURL string
	logger  *slog.Logger
	engine  *gin.Engine
}

// Config holds the settings of a Router.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Prefix before /v1
	Mode        string // gin mode, release when empty
	Controllers []Controller
	Logger      *slog.Logger
}

// NewRouter builds the engine and mounts every controller under
// BaseURL + "/v1".
func NewRouter(c Config) *Router {
	if c.Mode == "" {
		c.Mode = gin.ReleaseMode
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	gin.SetMode(c.Mode)

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(c.Logger))

	api := engine.Group(c.BaseURL)
	{
		v1 := api.Group("/v1")
		for _, ctrl := range c.Controllers {
			ctrl.Register(v1)
		}
	}

	return &Router{
		addr:    c.Addr,
		baseURL: c.BaseURL,
		logger:  c.Logger,
		engine:  engine,
	}
}

// Handler returns the engine as an http.Handler.
func (r *Router) Handler() http.Handler { return r.engine }

// Run listens on the configured address until ctx is done, then shuts the
// server down, waiting up to five seconds for in-flight requests.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		r.logger.Info("http server listening", "addr", r.addr, "base_url", r.baseURL+"/v1")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	r.logger.Info("http server stopped")

	return nil
}
