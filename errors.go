package clustervis

import (
	"errors"
	"fmt"

	"github.com/michaelkatsweb/clustervis/distance"
	"github.com/michaelkatsweb/clustervis/kmeans"
	"github.com/michaelkatsweb/clustervis/quality"
)

var (
	// ErrInvalidInput is returned when the point set is empty, ragged, or
	// smaller than the requested cluster count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfiguration is returned for a bad k, bad manual centroids,
	// or an unknown init method or distance metric.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotFitted is returned when Predict or QualityReport is called
	// before any completed run.
	ErrNotFitted = errors.New("not fitted")
)

// translateError maps engine-level errors onto the public error contract.
// The underlying error remains reachable via errors.Is/As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Input normalization.
	if errors.Is(err, kmeans.ErrNoPoints) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var tfp *kmeans.ErrTooFewPoints
	if errors.As(err, &tfp) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var dm *kmeans.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var ba *quality.ErrBadAssignment
	if errors.As(err, &ba) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Configuration normalization.
	if errors.Is(err, kmeans.ErrInvalidK) ||
		errors.Is(err, kmeans.ErrInvalidMaxIterations) ||
		errors.Is(err, kmeans.ErrInvalidTolerance) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	var mc *kmeans.ErrManualCentroids
	if errors.As(err, &mc) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	var mcd *kmeans.ErrManualCentroidDimension
	if errors.As(err, &mcd) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	var im *kmeans.ErrUnknownInitMethod
	if errors.As(err, &im) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	var um *distance.ErrUnsupportedMetric
	if errors.As(err, &um) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return err
}
