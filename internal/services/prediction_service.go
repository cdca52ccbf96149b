package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Kedza01/Test-AI/internal/corpus"
	"github.com/Kedza01/Test-AI/internal/ml"
	"github.com/Kedza01/Test-AI/internal/models"
)

// NoLocalCluster is the reportable unknown state for a location with no
// incidents in the trained corpus. It is not an error.
const NoLocalCluster = "no local cluster found"

// forecastHorizon bounds anticipated incidents to 72 hours past the
// target timestamp.
const forecastHorizon = 72

// topCrimes is the contractual number of ranked crimes per forecast.
const topCrimes = 3

// ForecastService produces crime forecasts and the read-side lookups
// joined into them. All methods require a trained engine and return
// ErrModelNotTrained otherwise; every other miss degrades to a default.
type ForecastService interface {
	// Predict runs the full pipeline for a location and target time.
	Predict(ctx context.Context, locationName string, target time.Time) (*models.Forecast, error)

	// ResolveMO returns the historically dominant modus operandi for a
	// (location, crime type) pair, with the documented fallbacks.
	ResolveMO(locationKey, crimeType string) (string, error)

	// ClusterForLocation labels a location with its hotspot cluster id.
	// The second return is false when no incident matches the key.
	ClusterForLocation(locationKey string) (int, bool, error)

	// Hotspots summarises the trained clusters for reporting.
	Hotspots() ([]models.Hotspot, error)
}

type forecastService struct {
	holder *EngineHolder

	// seedable source for anticipated timestamps; guarded because
	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewForecastService injects the engine holder and the seed for the
// anticipated-timestamp sampling.
func NewForecastService(holder *EngineHolder, seed int64) ForecastService {
	return &forecastService{
		holder: holder,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Predict implements the forecast pipeline: canonicalise the location,
// encode features, rank crimes, resolve the primary modus operandi and
// emit one anticipated entry per ranked crime inside the 72-hour
// window. Anticipated entries stay in crime-rank order, not time order.
func (s *forecastService) Predict(ctx context.Context, locationName string, target time.Time) (*models.Forecast, error) {
	engine, err := s.holder.Current()
	if err != nil {
		return nil, err
	}

	key := models.NormalizeLocationKey(locationName)
	profile := models.ProfileFor(key)
	key = profile.Key // unknown keys collapse onto DEFAULT

	fv := ml.FeatureVector{
		LocationCode: engine.LocationBook.LocationCode(key),
		DayOfWeek:    (int(target.Weekday()) + 6) % 7,
		Month:        int(target.Month()),
		Hour:         target.Hour(),
	}

	scores, err := engine.Classifier.PredictTopN(fv, topCrimes)
	if err != nil {
		return nil, err
	}

	ranked := make([]models.RankedCrime, len(scores))
	for i, sc := range scores {
		label, err := engine.CrimeBook.Value(sc.Code)
		if err != nil {
			return nil, fmt.Errorf("decode crime code: %w", err)
		}
		ranked[i] = models.RankedCrime{CrimeType: label, Probability: sc.Probability}
	}

	// Primary MO is looked up for the top crime only; the secondary
	// entries carry a simulated placeholder. That asymmetry is the
	// documented report semantics, kept on purpose.
	primaryMO := resolveMO(engine, key, ranked[0].CrimeType)

	entries := make([]models.ForecastEntry, len(ranked))
	for i, rc := range ranked {
		mo := primaryMO
		if i > 0 {
			mo = "Simulated MO for " + rc.CrimeType
		}
		entries[i] = models.ForecastEntry{
			CrimeType:     rc.CrimeType,
			Anticipated:   target.Add(time.Duration(s.sampleHours()) * time.Hour),
			ModusOperandi: mo,
		}
	}

	return &models.Forecast{
		Location:     locationName,
		LocationKey:  key,
		Target:       target,
		RankedCrimes: ranked,
		PrimaryMO:    primaryMO,
		Anticipated:  entries,
	}, nil
}

// sampleHours draws a whole-hour offset in [0, 72] inclusive.
func (s *forecastService) sampleHours() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(forecastHorizon + 1)
}

func (s *forecastService) ResolveMO(locationKey, crimeType string) (string, error) {
	engine, err := s.holder.Current()
	if err != nil {
		return "", err
	}
	return resolveMO(engine, locationKey, crimeType), nil
}

// resolveMO filters the corpus by location substring and crime type
// equality, then returns the first most-frequent modus operandi by
// corpus order. Location misses and (location, crime) misses both map
// to the general fallback; an uncomputable mode over non-empty matches
// maps to the undetermined fallback.
func resolveMO(engine *Engine, locationKey, crimeType string) string {
	needle := strings.ToUpper(locationKey)

	locationSeen := false
	counts := make(map[string]int)
	var order []string
	for _, inc := range engine.Incidents {
		if !strings.Contains(strings.ToUpper(inc.Location), needle) {
			continue
		}
		locationSeen = true
		if inc.CrimeType != crimeType || inc.ModusOperandi == "" {
			continue
		}
		if counts[inc.ModusOperandi] == 0 {
			order = append(order, inc.ModusOperandi)
		}
		counts[inc.ModusOperandi]++
	}

	if !locationSeen {
		return corpus.MOGeneral
	}
	if len(order) == 0 {
		// incidents exist in the area, none of the queried crime type
		// with a recorded method
		if hasCrime(engine, needle, crimeType) {
			return corpus.MOUndetermined
		}
		return corpus.MOGeneral
	}

	best := order[0]
	for _, mo := range order[1:] {
		if counts[mo] > counts[best] {
			best = mo
		}
	}
	return best
}

func hasCrime(engine *Engine, upperKey, crimeType string) bool {
	for _, inc := range engine.Incidents {
		if inc.CrimeType == crimeType && strings.Contains(strings.ToUpper(inc.Location), upperKey) {
			return true
		}
	}
	return false
}

func (s *forecastService) ClusterForLocation(locationKey string) (int, bool, error) {
	engine, err := s.holder.Current()
	if err != nil {
		return 0, false, err
	}

	needle := strings.ToUpper(locationKey)
	for _, inc := range engine.Incidents {
		if strings.Contains(strings.ToUpper(inc.Location), needle) {
			return inc.ClusterID, true, nil
		}
	}
	return 0, false, nil
}

func (s *forecastService) Hotspots() ([]models.Hotspot, error) {
	engine, err := s.holder.Current()
	if err != nil {
		return nil, err
	}

	k := engine.Clusterer.K()
	counts := make([]int, k)
	crimeCounts := make([]map[string]int, k)
	crimeOrder := make([][]string, k)
	for i := range crimeCounts {
		crimeCounts[i] = make(map[string]int)
	}
	for _, inc := range engine.Incidents {
		c := inc.ClusterID
		if c < 0 || c >= k {
			continue
		}
		counts[c]++
		if crimeCounts[c][inc.CrimeType] == 0 {
			crimeOrder[c] = append(crimeOrder[c], inc.CrimeType)
		}
		crimeCounts[c][inc.CrimeType]++
	}

	centers := engine.Clusterer.Centers()
	hotspots := make([]models.Hotspot, k)
	for c := 0; c < k; c++ {
		top := ""
		for _, crime := range crimeOrder[c] {
			if top == "" || crimeCounts[c][crime] > crimeCounts[c][top] {
				top = crime
			}
		}
		hotspots[c] = models.Hotspot{
			ClusterID: c,
			Latitude:  centers[c].Lat,
			Longitude: centers[c].Lon,
			CaseCount: counts[c],
			TopCrime:  top,
		}
	}
	return hotspots, nil
}
