package main

import (
	"context"
	"log"
	"net"

	"github.com/GoSim-25-26J-441/todo-backend/config"
	"github.com/GoSim-25-26J-441/todo-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/todo-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := bootstrap.OpenStore(context.Background(), bootstrap.StoreOptions{
		Backend:       cfg.Store.Backend,
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	var metrics *middleware.Metrics
	if cfg.Server.MetricsEnabled {
		metrics = middleware.NewMetrics(cfg.App.ServiceName)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:        cfg.App.ServiceName,
		Version:            cfg.App.Version,
		StoreBackend:       cfg.Store.Backend,
		Store:              store,
		StaticDir:          cfg.Server.StaticDir,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimit.RPS,
		RateLimitBurst:     cfg.RateLimit.Burst,
		Metrics:            metrics,
	})

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		log.Fatalf("failed to bind %s: %v", cfg.Server.Addr(), err)
	}

	log.Printf("listening on http://%s (store=%s static=%s)", ln.Addr(), cfg.Store.Backend, cfg.Server.StaticDir)
	if err := r.RunListener(ln); err != nil {
		log.Fatalf("server terminated unexpectedly: %v", err)
	}
}
