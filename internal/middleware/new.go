package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"web3-todo-list/pkg/log"
)

// Config configures the shared HTTP middlewares.
type Config struct {
	AllowedOrigins []string
	// RequestsPerMin is the per-client budget; zero or less disables limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	cors    *cors.Cors
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l: l,
		cors: cors.New(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type", HeaderRequestID},
			ExposedHeaders: []string{HeaderRequestID},
		}),
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
