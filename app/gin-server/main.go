package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/joblens/joblens/config"
	"github.com/joblens/joblens/internal/api/handlers"
	"github.com/joblens/joblens/internal/api/middleware"
	"github.com/joblens/joblens/internal/api/routes"
	"github.com/joblens/joblens/internal/cache"
	"github.com/joblens/joblens/internal/logger"
	pgrepo "github.com/joblens/joblens/internal/repositories/postgres"
	"github.com/joblens/joblens/internal/services"
)

func main() {
	_ = godotenv.Load()
	l := logger.New()

	// Postings may come from a flat file export instead of the table.
	postingsFile := os.Getenv("POSTINGS_FILE")

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.Migrate(); err != nil {
		log.Fatalf("PostgreSQL migration error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	db := config.PostgresDB
	redisCache := cache.NewRedisCache(config.RedisClient)

	postingRepo := pgrepo.NewPostingRepo(db)
	trackerRepo := pgrepo.NewTrackerRepo(db)
	presetRepo := pgrepo.NewPresetRepo(db)
	configRepo := pgrepo.NewConfigRepo(db)

	catalogSvc := services.NewCatalogService(postingRepo, redisCache, postingsFile)
	gridSvc := services.NewGridService(catalogSvc, trackerRepo, redisCache)
	presetSvc := services.NewPresetService(presetRepo)
	configSvc := services.NewConfigService(configRepo)
	authSvc := services.NewAuthService(os.Getenv("DASHBOARD_PASSWORD"), []byte(os.Getenv("JWT_SECRET")))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:      handlers.NewAuthHandler(authSvc),
		Dashboard: handlers.NewDashboardHandler(catalogSvc),
		Grid:      handlers.NewGridHandler(gridSvc),
		Preset:    handlers.NewPresetHandler(presetSvc, catalogSvc),
		Config:    handlers.NewConfigHandler(configSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	l.WithField("port", port).Info("server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
