package services

import (
	"errors"
	"math/rand"
	"sync/atomic"

	"github.com/Kedza01/Test-AI/internal/ml"
	"github.com/Kedza01/Test-AI/internal/models"
)

// ErrModelNotTrained is returned when predictions are requested before
// the engine has been built. This is a hard precondition failure, never
// silently degraded.
var ErrModelNotTrained = errors.New("prediction models have not been trained")

// Engine bundles everything a prediction needs: the corpus snapshot,
// the three codebooks, the trained classifier and the trained
// clusterer. It is immutable once built; retraining builds a fresh
// Engine and publishes it through the holder.
type Engine struct {
	Incidents []models.Incident

	CrimeBook    *ml.Codebook
	LocationBook *ml.Codebook
	MOBook       *ml.Codebook

	Classifier *ml.PatternClassifier
	Clusterer  *ml.KMeans
}

// BuildEngine fits codebooks and both models against the corpus and
// stamps each incident with its cluster id. The incidents slice is
// taken over by the engine and must not be mutated afterwards.
func BuildEngine(incidents []models.Incident, clusterCount int, rng *rand.Rand) (*Engine, error) {
	if len(incidents) == 0 {
		return nil, errors.New("empty corpus")
	}

	crimes := make([]string, len(incidents))
	locations := make([]string, len(incidents))
	mos := make([]string, len(incidents))
	points := make([]ml.Point, len(incidents))
	for i, inc := range incidents {
		crimes[i] = inc.CrimeType
		locations[i] = inc.Location
		mos[i] = inc.ModusOperandi
		points[i] = ml.Point{Lat: inc.Latitude, Lon: inc.Longitude}
	}

	e := &Engine{
		Incidents:    incidents,
		CrimeBook:    ml.NewCodebook(crimes),
		LocationBook: ml.NewCodebook(locations),
		MOBook:       ml.NewCodebook(mos),
	}

	features := make([]ml.FeatureVector, len(incidents))
	labels := make([]int, len(incidents))
	for i, inc := range incidents {
		locCode, _ := e.LocationBook.Code(inc.Location)
		crimeCode, _ := e.CrimeBook.Code(inc.CrimeType)
		features[i] = ml.FeatureVector{
			LocationCode: locCode,
			DayOfWeek:    inc.DayOfWeek,
			Month:        inc.Month,
			Hour:         inc.Hour,
		}
		labels[i] = crimeCode
	}

	classifier, err := ml.TrainClassifier(features, labels, e.CrimeBook.Len())
	if err != nil {
		return nil, err
	}
	e.Classifier = classifier

	clusterer, err := ml.TrainKMeans(points, clusterCount, rng)
	if err != nil {
		return nil, err
	}
	e.Clusterer = clusterer

	// one-time cluster assignment pass
	for i, id := range clusterer.Assignments() {
		e.Incidents[i].ClusterID = id
	}

	return e, nil
}

// EngineHolder publishes the current engine. Retraining swaps the
// pointer atomically, so in-flight predictions see either the old or
// the new engine, never a partially trained one.
type EngineHolder struct {
	ptr atomic.Pointer[Engine]
}

// Current returns the published engine, or ErrModelNotTrained when
// nothing has been trained yet.
func (h *EngineHolder) Current() (*Engine, error) {
	e := h.ptr.Load()
	if e == nil {
		return nil, ErrModelNotTrained
	}
	return e, nil
}

// Swap publishes a freshly built engine.
func (h *EngineHolder) Swap(e *Engine) {
	h.ptr.Store(e)
}
