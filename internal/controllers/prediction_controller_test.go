package controllers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Kedza01/Test-AI/internal/models"
	"github.com/Kedza01/Test-AI/internal/services"
)

// setupPredictionEnv wires a real service stack over an in-memory
// database and a small trained engine, routed through echo.
func setupPredictionEnv(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test DB: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.SystemSetting{}, &models.UserSession{},
		&models.AuditLog{}, &models.PredictionHistory{}, &models.Incident{})
	if err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	mkIncident := func(crime, location, mo string, lat, lon float64) models.Incident {
		return models.Incident{
			Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), CrimeType: crime,
			Location: location, Latitude: lat, Longitude: lon,
			Status: models.StatusOpen, ModusOperandi: mo,
			DayOfWeek: 4, Month: 3, Hour: 22, ClusterID: -1,
		}
	}
	incidents := []models.Incident{
		mkIncident("Robbery", "Harare Central", "Armed, Targeting Cash Transit", -17.82, 31.05),
		mkIncident("Robbery", "Harare CBD", "Armed, Targeting Cash Transit", -17.83, 31.06),
		mkIncident("Theft", "Harare Avondale", "Theft of Auto Spares / Copper", -17.79, 31.03),
		mkIncident("Murder", "Gweru", "Domestic Dispute Escalation", -19.44, 29.81),
	}
	engine, err := services.BuildEngine(incidents, 2, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("failed to build test engine: %v", err)
	}
	holder := &services.EngineHolder{}
	holder.Swap(engine)

	authSvc := services.NewAuthService(db)
	quotaSvc := services.NewQuotaService(db)
	forecastSvc := services.NewForecastService(holder, 42)
	auditSvc := services.NewAuditService(db)

	e := echo.New()
	api := e.Group("/api/v1")
	NewPredictionController(authSvc, quotaSvc, forecastSvc, auditSvc).Register(api)
	return e, db
}

func createPredictUser(t *testing.T, db *gorm.DB, count int) *models.User {
	t.Helper()
	user := &models.User{
		Username:             "officer",
		PasswordHash:         "x",
		Role:                 models.RoleStandardUser,
		IsActive:             true,
		DailyPredictionCount: count,
		LastPredictionDate:   time.Now().Format("2006-01-02"),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func postPrediction(e *echo.Echo, userID uint) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"user_id":%d,"location":"Harare","target":"2026-08-29 14:00"}`, userID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// TestPredictDeniedLeavesNoTrace verifies a quota denial returns the
// too-many-requests outcome without incrementing the count or writing
// audit or history rows.
func TestPredictDeniedLeavesNoTrace(t *testing.T) {
	e, db := setupPredictionEnv(t)
	user := createPredictUser(t, db, services.DefaultDailyQuota)

	rec := postPrediction(e, user.ID)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode denial body: %v", err)
	}
	if body["remaining"] != float64(0) {
		t.Errorf("expected remaining 0 in denial, got: %v", body["remaining"])
	}
	if reset, ok := body["next_reset"].(string); !ok || reset == "" {
		t.Error("expected a next_reset date in the denial")
	}

	var got models.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if got.DailyPredictionCount != user.DailyPredictionCount {
		t.Errorf("denial changed the count: %d -> %d", user.DailyPredictionCount, got.DailyPredictionCount)
	}

	var auditRows, historyRows int64
	db.Model(&models.AuditLog{}).Count(&auditRows)
	db.Model(&models.PredictionHistory{}).Count(&historyRows)
	if auditRows != 0 {
		t.Errorf("denial wrote %d audit rows", auditRows)
	}
	if historyRows != 0 {
		t.Errorf("denial wrote %d history rows", historyRows)
	}
}

// TestPredictSuccessIncrementsAndLogs is the allowed counterpart: the
// count moves up by one and both trail rows are written.
func TestPredictSuccessIncrementsAndLogs(t *testing.T) {
	e, db := setupPredictionEnv(t)
	user := createPredictUser(t, db, 0)

	rec := postPrediction(e, user.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["remaining"] != float64(services.DefaultDailyQuota-1) {
		t.Errorf("expected remaining %d, got: %v", services.DefaultDailyQuota-1, body["remaining"])
	}

	var got models.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if got.DailyPredictionCount != 1 {
		t.Errorf("expected count 1 after a served prediction, got: %d", got.DailyPredictionCount)
	}

	var auditRows, historyRows int64
	db.Model(&models.AuditLog{}).Where("action = ?", "PREDICTION").Count(&auditRows)
	db.Model(&models.PredictionHistory{}).Count(&historyRows)
	if auditRows != 1 {
		t.Errorf("expected 1 prediction audit row, got: %d", auditRows)
	}
	if historyRows != 1 {
		t.Errorf("expected 1 history row, got: %d", historyRows)
	}
}
