package ml

import (
	"errors"
	"math"
	"math/rand"
)

// Point is a geographic coordinate pair.
type Point struct {
	Lat float64
	Lon float64
}

// KMeans is a trained hotspot clustering over incident coordinates.
// Training is Lloyd's algorithm with centroids initialised from the
// seeded random source, so a fixed seed gives a fixed clustering.
type KMeans struct {
	k           int
	centers     []Point
	assignments []int
}

const kmeansMaxIterations = 100

// TrainKMeans clusters points into k groups. Every point receives an
// assignment in [0,k).
func TrainKMeans(points []Point, k int, rng *rand.Rand) (*KMeans, error) {
	if k < 1 {
		return nil, errors.New("cluster count must be positive")
	}
	if len(points) < k {
		return nil, errors.New("fewer points than clusters")
	}

	// initial centroids: k distinct points chosen at random
	centers := make([]Point, k)
	for i, idx := range rng.Perm(len(points))[:k] {
		centers[i] = points[idx]
	}

	assignments := make([]int, len(points))
	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, p := range points {
			best := nearestCenter(centers, p)
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// recompute centroids; an emptied cluster keeps its old centre
		sums := make([]Point, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignments[i]
			sums[c].Lat += p.Lat
			sums[c].Lon += p.Lon
			counts[c]++
		}
		for c := 0; c < k; c++ {
			if counts[c] > 0 {
				centers[c] = Point{Lat: sums[c].Lat / float64(counts[c]), Lon: sums[c].Lon / float64(counts[c])}
			}
		}
	}

	return &KMeans{k: k, centers: centers, assignments: assignments}, nil
}

func nearestCenter(centers []Point, p Point) int {
	best := 0
	bestDist := math.Inf(1)
	for i, c := range centers {
		d := (c.Lat-p.Lat)*(c.Lat-p.Lat) + (c.Lon-p.Lon)*(c.Lon-p.Lon)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// K reports the configured cluster count.
func (m *KMeans) K() int {
	return m.k
}

// Centers returns the cluster centres in cluster-id order. Callers must
// not mutate the returned slice.
func (m *KMeans) Centers() []Point {
	return m.centers
}

// Assignments returns the per-training-point cluster ids, parallel to
// the training input.
func (m *KMeans) Assignments() []int {
	return m.assignments
}

// Assign maps an arbitrary point to its nearest cluster.
func (m *KMeans) Assign(p Point) int {
	return nearestCenter(m.centers, p)
}
