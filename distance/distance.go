package distance

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricManhattan
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ErrUnsupportedMetric indicates a metric value with no registered distance function.
type ErrUnsupportedMetric struct {
	Metric Metric
}

func (e *ErrUnsupportedMetric) Error() string {
	return fmt.Sprintf("unsupported metric: %v", e.Metric)
}

// Func is a function type for distance calculation.
// Assumes vectors are the same length (caller's responsibility).
type Func func(a, b []float64) float64

// Euclidean calculates the L2 distance between two vectors.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared L2 distance between two vectors.
func SquaredEuclidean(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// Manhattan calculates the L1 distance between two vectors.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	default:
		return nil, &ErrUnsupportedMetric{Metric: m}
	}
}

// Mean returns the coordinate-wise mean of the given vectors.
// Returns nil if vectors is empty.
func Mean(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}

	mean := make([]float64, len(vectors[0]))
	for _, v := range vectors {
		floats.Add(mean, v)
	}
	floats.Scale(1/float64(len(vectors)), mean)

	return mean
}

// Bounds returns the per-dimension minimum and maximum of the given vectors.
// Returns nil slices if vectors is empty.
func Bounds(vectors [][]float64) (lo, hi []float64) {
	if len(vectors) == 0 {
		return nil, nil
	}

	lo = slices.Clone(vectors[0])
	hi = slices.Clone(vectors[0])
	for _, v := range vectors[1:] {
		for d, x := range v {
			if x < lo[d] {
				lo[d] = x
			}
			if x > hi[d] {
				hi[d] = x
			}
		}
	}

	return lo, hi
}
