package bootstrap

import (
	"net/http"
	"time"

	httpapi "github.com/GoSim-25-26J-441/todo-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/todo-backend/internal/api/http/middleware"
	todohttp "github.com/GoSim-25-26J-441/todo-backend/internal/todos/http"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/repository"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	StoreBackend string
	Store        repository.Store

	StaticDir          string   // served for every unmatched path; empty disables
	CORSAllowedOrigins []string // empty disables CORS
	RateLimitRPS       float64  // 0 disables rate limiting on /api
	RateLimitBurst     int
	Metrics            *middleware.Metrics // nil disables /metrics
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	if dep.Metrics != nil {
		r.Use(dep.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))
	}

	if len(dep.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(dep.CORSAllowedOrigins)))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.StoreBackend, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	if dep.RateLimitRPS > 0 {
		api.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst, dep.Metrics))
	}

	todoHandler := todohttp.New(service.NewTodoService(dep.Store))
	todoHandler.Register(api)

	if dep.StaticDir != "" {
		r.NoRoute(staticHandler(dep.StaticDir))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
