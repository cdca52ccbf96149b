package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Kedza01/Test-AI/internal/models"
)

const dateLayout = "2006-01-02"

// Generator builds the full incident corpus: the embedded seed sample
// parsed first, then synthetic filler records up to TargetCount, then
// derived features and modus operandi for every row. All randomness
// flows through the seeded source so a fixed seed reproduces the exact
// same corpus.
type Generator struct {
	TargetCount int
	rng         *rand.Rand
	logger      *log.Logger
}

func NewGenerator(targetCount int, seed int64) *Generator {
	return &Generator{
		TargetCount: targetCount,
		rng:         rand.New(rand.NewSource(seed)),
		logger:      log.New(os.Stdout, "[CORPUS] ", log.LstdFlags|log.Lmsgprefix),
	}
}

// Build produces the enriched corpus. Seed rows with unparseable dates
// are dropped before they reach the models, so downstream consumers can
// assume the calendar features always resolve.
func (g *Generator) Build() ([]models.Incident, error) {
	incidents, err := parseSeed(strings.NewReader(seedCSV))
	if err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	g.logger.Printf("seed sample loaded: %d records", len(incidents))

	if g.TargetCount > len(incidents) {
		filler := g.generateFiller(incidents, g.TargetCount-len(incidents))
		incidents = append(incidents, filler...)
		g.logger.Printf("synthetic filler generated: %d records (target %d)", len(filler), g.TargetCount)
	}

	// Enrichment pass: calendar features, synthetic hour, modus operandi.
	for i := range incidents {
		inc := &incidents[i]
		inc.DayOfWeek = mondayIndexedWeekday(inc.Date)
		inc.Month = int(inc.Date.Month())
		inc.Hour = g.rng.Intn(24) // hour is not observed in the source data
		inc.ModusOperandi = AssignModusOperandi(inc.CrimeType, inc.Location, g.rng)
		inc.ClusterID = -1
	}

	g.logger.Printf("corpus ready: %d records", len(incidents))
	return incidents, nil
}

// mondayIndexedWeekday maps time.Weekday (Sunday=0) onto the corpus
// convention Monday=0 .. Sunday=6.
func mondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func parseSeed(r io.Reader) ([]models.Incident, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	if len(header) != 7 {
		return nil, fmt.Errorf("unexpected seed header: %v", header)
	}

	var incidents []models.Incident
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		date, err := time.Parse(dateLayout, row[0])
		if err != nil {
			// ingestion contract: rows with unparseable dates are dropped
			continue
		}
		lat, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			continue
		}

		incidents = append(incidents, models.Incident{
			Date:      date,
			CrimeType: row[1],
			Location:  row[2],
			Latitude:  lat,
			Longitude: lon,
			Status:    models.CaseStatus(row[5]),
			Summary:   row[6],
		})
	}
	return incidents, nil
}

// generateFiller creates n synthetic incidents drawn from the observed
// crime types and the known location profiles, with coordinate jitter
// so map markers stay distinct.
func (g *Generator) generateFiller(seed []models.Incident, n int) []models.Incident {
	crimeTypes := observedCrimeTypes(seed)
	locations := models.KnownLocationKeys()
	sort.Strings(locations) // map order is random; keep rng consumption stable

	statuses := []models.CaseStatus{models.StatusOpen, models.StatusClosed, models.StatusUnderInvestigation}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)
	spanDays := int(end.Sub(start).Hours() / 24)

	filler := make([]models.Incident, 0, n)
	for i := 0; i < n; i++ {
		crime := crimeTypes[g.rng.Intn(len(crimeTypes))]
		key := locations[g.rng.Intn(len(locations))]
		profile := models.ProfileFor(key)

		filler = append(filler, models.Incident{
			Date:      start.AddDate(0, 0, g.rng.Intn(spanDays+1)),
			CrimeType: crime,
			Location:  key,
			Latitude:  profile.Latitude + g.rng.Float64()*0.1 - 0.05,
			Longitude: profile.Longitude + g.rng.Float64()*0.1 - 0.05,
			Status:    statuses[g.rng.Intn(len(statuses))],
			Summary:   fmt.Sprintf("%s reported in %s area. (Simulated)", crime, capitalize(key)),
		})
	}
	return filler
}

// observedCrimeTypes returns the distinct crime types of the seed
// sample in sorted order, so synthetic generation is deterministic.
func observedCrimeTypes(incidents []models.Incident) []string {
	seen := make(map[string]struct{})
	for _, inc := range incidents {
		seen[inc.CrimeType] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
