package ml

import (
	"errors"
	"math"
	"sort"
)

// ErrNotTrained is returned when a model is queried before training.
var ErrNotTrained = errors.New("model has not been trained")

// FeatureVector is the classifier input derived from one incident or
// one prediction request.
type FeatureVector struct {
	LocationCode int
	DayOfWeek    int // Monday=0 .. Sunday=6
	Month        int // 1..12
	Hour         int // 0..23
}

// CrimeScore pairs a crime code with the model probability assigned to
// it for a given input.
type CrimeScore struct {
	Code        int
	Probability float64
}

// PatternClassifier is a class-balanced categorical model over the four
// calendar/location features. Each class keeps per-feature frequency
// tables; prediction applies Laplace smoothing and uniform class
// priors, so rare crime types are not starved by frequent ones.
type PatternClassifier struct {
	numClasses int

	// counts[f][class][value] for the four features
	counts      [4][]map[int]int
	classTotals []int

	// distinct observed values per feature, for the smoothing
	// denominator; unseen values at predict time smooth to the floor
	// instead of failing.
	cardinality [4]int

	trained bool
}

func featureValues(fv FeatureVector) [4]int {
	return [4]int{fv.LocationCode, fv.DayOfWeek, fv.Month, fv.Hour}
}

// TrainClassifier fits the model. labels are crime codes in [0,
// numClasses); features and labels run parallel.
func TrainClassifier(features []FeatureVector, labels []int, numClasses int) (*PatternClassifier, error) {
	if len(features) == 0 {
		return nil, errors.New("no training samples")
	}
	if len(features) != len(labels) {
		return nil, errors.New("features and labels length mismatch")
	}
	if numClasses < 1 {
		return nil, errors.New("numClasses must be positive")
	}

	c := &PatternClassifier{
		numClasses:  numClasses,
		classTotals: make([]int, numClasses),
	}
	for f := 0; f < 4; f++ {
		c.counts[f] = make([]map[int]int, numClasses)
		for k := 0; k < numClasses; k++ {
			c.counts[f][k] = make(map[int]int)
		}
	}

	distinct := [4]map[int]struct{}{}
	for f := range distinct {
		distinct[f] = make(map[int]struct{})
	}

	for i, fv := range features {
		label := labels[i]
		if label < 0 || label >= numClasses {
			return nil, errors.New("label outside class range")
		}
		c.classTotals[label]++
		for f, v := range featureValues(fv) {
			c.counts[f][label][v]++
			distinct[f][v] = struct{}{}
		}
	}
	for f := range distinct {
		c.cardinality[f] = len(distinct[f])
	}

	c.trained = true
	return c, nil
}

// Probabilities returns the full distribution over crime codes for one
// input, indexed by code. Inputs outside the training ranges still
// produce a distribution: every likelihood is Laplace-smoothed.
func (c *PatternClassifier) Probabilities(fv FeatureVector) ([]float64, error) {
	if c == nil || !c.trained {
		return nil, ErrNotTrained
	}

	vals := featureValues(fv)
	logProbs := make([]float64, c.numClasses)
	for k := 0; k < c.numClasses; k++ {
		// uniform prior: the balancing term that keeps rare classes alive
		lp := 0.0
		for f := 0; f < 4; f++ {
			count := c.counts[f][k][vals[f]]
			lp += math.Log(float64(count+1) / float64(c.classTotals[k]+c.cardinality[f]+1))
		}
		logProbs[k] = lp
	}

	// normalise in log space for stability
	maxLP := logProbs[0]
	for _, lp := range logProbs[1:] {
		if lp > maxLP {
			maxLP = lp
		}
	}
	probs := make([]float64, c.numClasses)
	var sum float64
	for k, lp := range logProbs {
		probs[k] = math.Exp(lp - maxLP)
		sum += probs[k]
	}
	for k := range probs {
		probs[k] /= sum
	}
	return probs, nil
}

// PredictTopN returns the n most probable crime codes, sorted
// descending by probability. The sort is stable over the code-indexed
// probability array, so ties keep label-code order and repeated calls
// on a fixed model and input return identical output.
func (c *PatternClassifier) PredictTopN(fv FeatureVector, n int) ([]CrimeScore, error) {
	probs, err := c.Probabilities(fv)
	if err != nil {
		return nil, err
	}

	scores := make([]CrimeScore, len(probs))
	for code, p := range probs {
		scores[code] = CrimeScore{Code: code, Probability: p}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Probability > scores[j].Probability
	})

	if n > len(scores) {
		n = len(scores)
	}
	return scores[:n], nil
}
