package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/Kedza01/Test-AI/internal/corpus"
	"github.com/Kedza01/Test-AI/internal/models"
)

// testEngineHolder builds a small trained engine over a hand-written
// corpus spanning two areas and three crime types.
func testEngineHolder(t *testing.T) *EngineHolder {
	t.Helper()

	mkIncident := func(crime, location, mo string, lat, lon float64) models.Incident {
		date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		return models.Incident{
			Date: date, CrimeType: crime, Location: location,
			Latitude: lat, Longitude: lon, Status: models.StatusOpen,
			ModusOperandi: mo,
			DayOfWeek:     4, Month: 3, Hour: 22, ClusterID: -1,
		}
	}

	incidents := []models.Incident{
		mkIncident("Robbery", "Harare Central", "Armed, Targeting Cash Transit", -17.82, 31.05),
		mkIncident("Robbery", "Harare CBD", "Armed, Targeting Cash Transit", -17.83, 31.06),
		mkIncident("Robbery", "Harare Mbare", "Machete Attack / Panga Robbery", -17.85, 31.04),
		mkIncident("Theft", "Harare Avondale", "", -17.79, 31.03),
		mkIncident("Murder", "Gweru", "Domestic Dispute Escalation", -19.44, 29.81),
		mkIncident("Murder", "Gweru Mkoba", "Ritualistic Crime", -19.43, 29.82),
	}

	engine, err := BuildEngine(incidents, 2, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("failed to build test engine: %v", err)
	}

	holder := &EngineHolder{}
	holder.Swap(engine)
	return holder
}

func TestPredictRequiresTrainedEngine(t *testing.T) {
	svc := NewForecastService(&EngineHolder{}, 42)

	_, err := svc.Predict(context.Background(), "Harare", time.Now())
	if !errors.Is(err, ErrModelNotTrained) {
		t.Fatalf("expected ErrModelNotTrained, got: %v", err)
	}
	if _, err := svc.ResolveMO("HARARE", "Robbery"); !errors.Is(err, ErrModelNotTrained) {
		t.Fatalf("expected ErrModelNotTrained, got: %v", err)
	}
	if _, _, err := svc.ClusterForLocation("HARARE"); !errors.Is(err, ErrModelNotTrained) {
		t.Fatalf("expected ErrModelNotTrained, got: %v", err)
	}
	if _, err := svc.Hotspots(); !errors.Is(err, ErrModelNotTrained) {
		t.Fatalf("expected ErrModelNotTrained, got: %v", err)
	}
}

// TestPredictForecastShape verifies a forecast carries three ranked
// crimes, three anticipated entries in rank order, and the primary MO
// only on the first entry.
func TestPredictForecastShape(t *testing.T) {
	svc := NewForecastService(testEngineHolder(t), 42)
	target := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	forecast, err := svc.Predict(context.Background(), "Harare (Central)", target)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if forecast.LocationKey != "HARARE" {
		t.Errorf("expected key HARARE, got: %s", forecast.LocationKey)
	}
	if len(forecast.RankedCrimes) != 3 {
		t.Fatalf("expected 3 ranked crimes, got: %d", len(forecast.RankedCrimes))
	}
	for i := 1; i < len(forecast.RankedCrimes); i++ {
		if forecast.RankedCrimes[i-1].Probability < forecast.RankedCrimes[i].Probability {
			t.Errorf("ranked crimes out of order at %d", i)
		}
	}

	if len(forecast.Anticipated) != 3 {
		t.Fatalf("expected 3 anticipated entries, got: %d", len(forecast.Anticipated))
	}
	for i, entry := range forecast.Anticipated {
		if entry.CrimeType != forecast.RankedCrimes[i].CrimeType {
			t.Errorf("entry %d crime mismatch: %s vs %s", i, entry.CrimeType, forecast.RankedCrimes[i].CrimeType)
		}
	}

	if forecast.Anticipated[0].ModusOperandi != forecast.PrimaryMO {
		t.Errorf("first entry MO %q does not match primary %q",
			forecast.Anticipated[0].ModusOperandi, forecast.PrimaryMO)
	}
	for _, entry := range forecast.Anticipated[1:] {
		want := "Simulated MO for " + entry.CrimeType
		if entry.ModusOperandi != want {
			t.Errorf("expected %q, got: %q", want, entry.ModusOperandi)
		}
	}
}

// TestPredictAnticipatedWindow verifies every anticipated timestamp
// lands inside the 72-hour window after the target, inclusive.
func TestPredictAnticipatedWindow(t *testing.T) {
	svc := NewForecastService(testEngineHolder(t), 42)
	target := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	limit := target.Add(72 * time.Hour)

	for i := 0; i < 25; i++ {
		forecast, err := svc.Predict(context.Background(), "Harare", target)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		for _, entry := range forecast.Anticipated {
			if entry.Anticipated.Before(target) || entry.Anticipated.After(limit) {
				t.Errorf("anticipated %v outside [%v, %v]", entry.Anticipated, target, limit)
			}
		}
	}
}

func TestPredictUnknownLocationCollapsesToDefault(t *testing.T) {
	svc := NewForecastService(testEngineHolder(t), 42)

	forecast, err := svc.Predict(context.Background(), "Nowhere Town", time.Now())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if forecast.LocationKey != models.DefaultKey {
		t.Errorf("expected DEFAULT key, got: %s", forecast.LocationKey)
	}
	if forecast.Location != "Nowhere Town" {
		t.Errorf("expected original location preserved, got: %s", forecast.Location)
	}
}

// TestResolveMOMode verifies a split MO history resolves to the most
// frequent method.
func TestResolveMOMode(t *testing.T) {
	svc := NewForecastService(testEngineHolder(t), 42)

	mo, err := svc.ResolveMO("HARARE", "Robbery")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if mo != "Armed, Targeting Cash Transit" {
		t.Errorf("expected the majority MO, got: %q", mo)
	}
}

func TestResolveMOFallbacks(t *testing.T) {
	svc := NewForecastService(testEngineHolder(t), 42)

	// location absent from the corpus
	mo, err := svc.ResolveMO("NOWHERE", "Robbery")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if mo != corpus.MOGeneral {
		t.Errorf("expected %q for unknown location, got: %q", corpus.MOGeneral, mo)
	}

	// location present, queried crime type never recorded there
	mo, err = svc.ResolveMO("GWERU", "Robbery")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if mo != corpus.MOGeneral {
		t.Errorf("expected %q for absent crime, got: %q", corpus.MOGeneral, mo)
	}

	// crime recorded in the area but with no method captured
	mo, err = svc.ResolveMO("HARARE", "Theft")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if mo != corpus.MOUndetermined {
		t.Errorf("expected %q for blank methods, got: %q", corpus.MOUndetermined, mo)
	}
}

func TestClusterForLocation(t *testing.T) {
	svc := NewForecastService(testEngineHolder(t), 42)

	id, found, err := svc.ClusterForLocation("HARARE")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !found {
		t.Fatal("expected a cluster for HARARE")
	}
	if id < 0 || id > 1 {
		t.Errorf("cluster id %d out of range", id)
	}

	_, found, err = svc.ClusterForLocation("NOWHERE")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if found {
		t.Error("expected no cluster for an unknown location")
	}
}

func TestHotspotsSummariseClusters(t *testing.T) {
	svc := NewForecastService(testEngineHolder(t), 42)

	hotspots, err := svc.Hotspots()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(hotspots) != 2 {
		t.Fatalf("expected 2 hotspots, got: %d", len(hotspots))
	}

	total := 0
	for _, h := range hotspots {
		total += h.CaseCount
		if h.CaseCount > 0 && h.TopCrime == "" {
			t.Errorf("hotspot %d has cases but no top crime", h.ClusterID)
		}
	}
	if total != 6 {
		t.Errorf("expected hotspot counts to cover all 6 incidents, got: %d", total)
	}

	// the two geographic groups should dominate one cluster each
	var topCrimes []string
	for _, h := range hotspots {
		topCrimes = append(topCrimes, h.TopCrime)
	}
	joined := strings.Join(topCrimes, ",")
	if !strings.Contains(joined, "Robbery") || !strings.Contains(joined, "Murder") {
		t.Errorf("expected Robbery and Murder hotspots, got: %v", topCrimes)
	}
}
