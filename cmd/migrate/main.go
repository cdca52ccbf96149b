package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Kedza01/Test-AI/internal/config"
	"github.com/Kedza01/Test-AI/internal/database"
	"github.com/Kedza01/Test-AI/internal/models"
	"github.com/Kedza01/Test-AI/internal/services"
)

// Offline tool: migrate the schema, seed the stock accounts and
// settings, and rebuild the corpus and models from scratch.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	fmt.Println("✅ Connected to", cfg.DBPath)
	fmt.Println("🚀 Running migrations...")

	if err := db.AutoMigrate(
		&models.Incident{},
		&models.User{},
		&models.UserSession{},
		&models.AuditLog{},
		&models.SystemSetting{},
		&models.PredictionHistory{},
	); err != nil {
		log.Fatal("❌ migration failed: ", err)
	}

	ctx := context.Background()
	if err := services.NewAuthService(db).SeedDefaults(ctx); err != nil {
		log.Fatal("❌ seeding defaults failed: ", err)
	}

	holder := &services.EngineHolder{}
	trainingSvc := services.NewTrainingService(db, holder, cfg.CorpusTarget, cfg.ClusterCount, cfg.RandomSeed)
	engine, err := trainingSvc.Retrain(ctx)
	if err != nil {
		log.Fatal("❌ corpus rebuild failed: ", err)
	}

	fmt.Println("\n📊 Corpus summary:")
	fmt.Printf("  ✓ %d incidents\n", len(engine.Incidents))
	fmt.Printf("  ✓ %d crime types\n", engine.CrimeBook.Len())
	fmt.Printf("  ✓ %d locations\n", engine.LocationBook.Len())
	fmt.Printf("  ✓ %d clusters\n", engine.Clusterer.K())

	fmt.Println("\n🎉 All done!")
}
