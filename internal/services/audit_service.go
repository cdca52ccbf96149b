package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Kedza01/Test-AI/internal/models"
)

// AuditService appends audit-trail and prediction-history rows. Writes
// are fire-and-forget from the caller's point of view: a failed append
// is reported but never blocks the operation that triggered it.
type AuditService interface {
	Append(ctx context.Context, userID uint, username, action, details string) error
	RecordPrediction(ctx context.Context, userID uint, username, location string, crimes []string) error
}

type auditService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAuditService(db *gorm.DB) AuditService {
	return &auditService{db: db, now: time.Now}
}

func (s *auditService) Append(ctx context.Context, userID uint, username, action, details string) error {
	entry := models.AuditLog{
		UserID:    userID,
		Username:  username,
		Action:    action,
		Details:   details,
		Timestamp: s.now(),
	}
	return s.db.WithContext(ctx).Create(&entry).Error
}

// RecordPrediction stores the flattened history summary: the forecast
// itself is not persisted, only the joined top crime labels.
func (s *auditService) RecordPrediction(ctx context.Context, userID uint, username, location string, crimes []string) error {
	now := s.now()
	entry := models.PredictionHistory{
		UserID:          userID,
		Username:        username,
		Location:        location,
		PredictionDate:  now.Format("2006-01-02"),
		PredictedCrimes: strings.Join(crimes, ", "),
		Timestamp:       now,
	}
	return s.db.WithContext(ctx).Create(&entry).Error
}
