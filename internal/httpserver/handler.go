package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "web3-todo-list/docs"
	"web3-todo-list/internal/model"
	taskHTTP "web3-todo-list/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		gin.Recovery(),
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.CORS(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	// The stream is registered before the :id routes so it never parses as an id.
	if srv.eventHandler != nil {
		srv.gin.GET("/tasks/events", srv.mw.RateLimit(), srv.eventHandler)
		srv.l.Infof(ctx, "Task event stream registered at GET /tasks/events")
	} else {
		srv.l.Infof(ctx, "Task events disabled, skipping stream route")
	}

	taskHTTP.RegisterRoutes(srv.gin.Group(""), srv.taskHandler, srv.mw)
	srv.l.Infof(ctx, "Task routes registered under /tasks")
}
