package main

import (
	"vibe-eats/config"
	"vibe-eats/handlers"
	"vibe-eats/logger"
	"vibe-eats/middleware"
	"vibe-eats/routes"
	"vibe-eats/store"
	"vibe-eats/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	log := logger.New(cfg.LogFile)
	defer log.Sync()

	// One in-memory store for the process lifetime; restarts reset it
	// to the two seed records.
	users := store.NewMemoryStore()
	h := handlers.New(users, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	staticFS, err := web.StaticFS()
	if err != nil {
		log.Fatal("Failed to load embedded frontend", zap.Error(err))
	}
	if err := routes.SetupRoutes(r, h, staticFS); err != nil {
		log.Fatal("Failed to register routes", zap.Error(err))
	}

	log.Info("🔥 Vibe server running", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
