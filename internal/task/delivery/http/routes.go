package http

import (
	"github.com/gin-gonic/gin"

	"web3-todo-list/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/count", h.Count)
		tasks.GET("/stats", h.Stats)
		tasks.GET("/:id", h.Detail)
		tasks.POST("/:id/complete", h.Complete)
	}
}
