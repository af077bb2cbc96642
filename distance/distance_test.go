package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5.0, Euclidean([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.InDelta(t, 0.0, Euclidean([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-12)
}

func TestSquaredEuclidean(t *testing.T) {
	assert.InDelta(t, 25.0, SquaredEuclidean([]float64{0, 0}, []float64{3, 4}), 1e-12)
}

func TestManhattan(t *testing.T) {
	assert.InDelta(t, 7.0, Manhattan([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.InDelta(t, 2.0, Manhattan([]float64{1, -1}, []float64{0, 0}), 1e-12)
}

func TestProvider(t *testing.T) {
	fn, err := Provider(MetricEuclidean)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, fn([]float64{0, 0}, []float64{3, 4}), 1e-12)

	fn, err = Provider(MetricManhattan)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, fn([]float64{0, 0}, []float64{3, 4}), 1e-12)

	_, err = Provider(Metric(999))
	require.Error(t, err)

	var um *ErrUnsupportedMetric
	assert.ErrorAs(t, err, &um)
}

func TestMean(t *testing.T) {
	mean := Mean([][]float64{{0, 0}, {2, 4}, {4, 2}})
	assert.InDeltaSlice(t, []float64{2, 2}, mean, 1e-12)

	assert.Nil(t, Mean(nil))
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds([][]float64{{1, 5}, {-2, 3}, {0, 7}})
	assert.Equal(t, []float64{-2, 3}, lo)
	assert.Equal(t, []float64{1, 7}, hi)

	lo, hi = Bounds(nil)
	assert.Nil(t, lo)
	assert.Nil(t, hi)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "Euclidean", MetricEuclidean.String())
	assert.Equal(t, "Manhattan", MetricManhattan.String())
	assert.Equal(t, "Unknown(42)", Metric(42).String())
}
