package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPoints is returned when the input point set is empty.
	ErrNoPoints = errors.New("no points")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidMaxIterations is returned when the iteration cap is not positive.
	ErrInvalidMaxIterations = errors.New("max iterations must be positive")

	// ErrInvalidTolerance is returned when the convergence tolerance is not positive.
	ErrInvalidTolerance = errors.New("tolerance must be positive")
)

// ErrDimensionMismatch indicates a ragged point set or a query point whose
// dimensionality does not match the fitted data.
type ErrDimensionMismatch struct {
	Index    int // index of the offending point
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

// ErrTooFewPoints indicates fewer input points than requested clusters.
type ErrTooFewPoints struct {
	K int
	N int
}

func (e *ErrTooFewPoints) Error() string {
	return fmt.Sprintf("too few points: k=%d but only %d points", e.K, e.N)
}

// ErrManualCentroids indicates manual initialization with a centroid set that
// does not match the configuration.
type ErrManualCentroids struct {
	Want int
	Got  int
}

func (e *ErrManualCentroids) Error() string {
	return fmt.Sprintf("manual init requires exactly %d centroids, got %d", e.Want, e.Got)
}

// ErrManualCentroidDimension indicates a manual centroid whose
// dimensionality does not match the data.
type ErrManualCentroidDimension struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrManualCentroidDimension) Error() string {
	return fmt.Sprintf("manual centroid %d has dimension %d, want %d", e.Index, e.Actual, e.Expected)
}

// ErrUnknownInitMethod indicates an InitMethod value with no implementation.
type ErrUnknownInitMethod struct {
	Method InitMethod
}

func (e *ErrUnknownInitMethod) Error() string {
	return fmt.Sprintf("unknown init method: %v", e.Method)
}
