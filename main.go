package main

import (
	"path/filepath"

	"fc-ssoa-api/club"
	"fc-ssoa-api/club/middleware"
	"fc-ssoa-api/club/roster"
	"fc-ssoa-api/config"
	_ "fc-ssoa-api/docs" // Swagger docs
	"fc-ssoa-api/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           FC Ssoa API
// @version         1.0
// @description     Backend API for the FC Ssoa early morning soccer club

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger.Init(true)

	if err := godotenv.Load(); err != nil {
		logger.Log.Info().Msg("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// The record summary seeds matches_played for bulk-loaded players,
	// so it loads first.
	record, err := roster.LoadRecord(filepath.Join(cfg.DataDir, "team_stats.csv"))
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to load team record summary")
	}

	table, err := roster.Open(filepath.Join(cfg.DataDir, "stats_all.csv"), record.TotalMatches)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to load roster table")
	}
	defer table.Close()

	identity := club.Identity{
		Name:        cfg.TeamName,
		Founded:     cfg.TeamFounded,
		Description: cfg.TeamDescription,
	}

	clubModule := club.NewModule(db, table, record, identity, clockwork.NewRealClock())

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestLogger())

	clubModule.SetupRoutes(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", healthHandler)
	r.GET("/", rootHandler)

	logger.Log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal().Err(err).Msg("server stopped")
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// @Summary Health Check
// @Description Check if the server is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(200, HealthResponse{Status: "healthy"})
}

// WelcomeResponse represents the root endpoint response
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to FC Ssoa API"`
	Version string `json:"version" example:"1.0.0"`
}

// @Summary Welcome
// @Tags health
// @Produce json
// @Success 200 {object} WelcomeResponse
// @Router / [get]
func rootHandler(c *gin.Context) {
	c.JSON(200, WelcomeResponse{
		Message: "Welcome to FC Ssoa API",
		Version: "1.0.0",
	})
}
