package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Kedza01/Test-AI/internal/config"
	"github.com/Kedza01/Test-AI/internal/controllers"
	"github.com/Kedza01/Test-AI/internal/database"
	"github.com/Kedza01/Test-AI/internal/models"
	"github.com/Kedza01/Test-AI/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Connect to the local database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Incident{},
		&models.User{},
		&models.UserSession{},
		&models.AuditLog{},
		&models.SystemSetting{},
		&models.PredictionHistory{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx := context.Background()

	// Instantiate services
	holder := &services.EngineHolder{}
	authSvc := services.NewAuthService(db)
	auditSvc := services.NewAuditService(db)
	quotaSvc := services.NewQuotaService(db)
	forecastSvc := services.NewForecastService(holder, cfg.RandomSeed)
	trainingSvc := services.NewTrainingService(db, holder, cfg.CorpusTarget, cfg.ClusterCount, cfg.RandomSeed)

	if err := authSvc.SeedDefaults(ctx); err != nil {
		log.Fatalf("failed to seed default accounts: %v", err)
	}

	// One-shot blocking training pass before serving; predictions are
	// rejected with a clear error until this has completed.
	if _, err := trainingSvc.Retrain(ctx); err != nil {
		log.Fatalf("initial training failed: %v", err)
	}

	// Create controllers
	authCtrl := controllers.NewAuthController(authSvc, auditSvc)
	predictionCtrl := controllers.NewPredictionController(authSvc, quotaSvc, forecastSvc, auditSvc)
	hotspotCtrl := controllers.NewHotspotController(forecastSvc)

	// Initialize Echo
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Register routes
	api := e.Group("/api/v1")
	authCtrl.Register(api)
	predictionCtrl.Register(api)
	hotspotCtrl.Register(api)

	// Run server
	e.Logger.Fatal(e.Start(cfg.ListenAddr))
}
