package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"web3-todo-list/internal/middleware"
	taskHTTP "web3-todo-list/internal/task/delivery/http"
	"web3-todo-list/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Task domain
	taskHandler  taskHTTP.Handler
	eventHandler gin.HandlerFunc

	readiness func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	// Task domain
	TaskHandler taskHTTP.Handler
	// EventHandler serves the websocket stream; nil leaves the route unregistered.
	EventHandler gin.HandlerFunc

	// Readiness reports whether upstream dependencies are reachable.
	Readiness func(ctx context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		taskHandler:  cfg.TaskHandler,
		eventHandler: cfg.EventHandler,
		readiness:    cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mw = middleware.New(logger, cfg.Middleware)
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
