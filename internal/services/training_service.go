package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kedza01/Test-AI/internal/corpus"
	"github.com/Kedza01/Test-AI/internal/models"
)

// TrainingService rebuilds the corpus and the prediction models. It is
// a one-shot blocking batch operation, run at startup and on explicit
// refresh; queries keep using the previous engine until the swap.
type TrainingService interface {
	// Retrain regenerates the corpus, replaces the persisted
	// crime_reports table wholesale, trains both models and publishes
	// the new engine.
	Retrain(ctx context.Context) (*Engine, error)
}

type trainingService struct {
	db           *gorm.DB
	holder       *EngineHolder
	targetCount  int
	clusterCount int
	seed         int64
	logger       *log.Logger
}

// NewTrainingService injects the database handle and the engine holder
// the trained models are published through.
func NewTrainingService(db *gorm.DB, holder *EngineHolder, targetCount, clusterCount int, seed int64) TrainingService {
	return &trainingService{
		db:           db,
		holder:       holder,
		targetCount:  targetCount,
		clusterCount: clusterCount,
		seed:         seed,
		logger:       log.New(os.Stdout, "[TRAIN] ", log.LstdFlags|log.Lmsgprefix),
	}
}

func (s *trainingService) Retrain(ctx context.Context) (*Engine, error) {
	executionID := uuid.New().String()
	s.logger.Printf("retrain started, execution %s", executionID)
	start := time.Now()

	gen := corpus.NewGenerator(s.targetCount, s.seed)
	incidents, err := gen.Build()
	if err != nil {
		return nil, fmt.Errorf("corpus build: %w", err)
	}

	// Model randomness is seeded separately from corpus generation so
	// a corpus-size change does not perturb the clustering.
	engine, err := BuildEngine(incidents, s.clusterCount, rand.New(rand.NewSource(s.seed)))
	if err != nil {
		return nil, fmt.Errorf("model training: %w", err)
	}

	// Replace the persisted corpus wholesale; individual rows are never
	// updated outside a retrain.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Incident{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(engine.Incidents, 200).Error
	})
	if err != nil {
		return nil, fmt.Errorf("persist corpus: %w", err)
	}

	s.holder.Swap(engine)
	s.logger.Printf("retrain complete in %s: %d incidents, %d crime types, %d clusters",
		time.Since(start).Round(time.Millisecond), len(engine.Incidents), engine.CrimeBook.Len(), engine.Clusterer.K())
	return engine, nil
}
