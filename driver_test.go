package clustervis

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelkatsweb/clustervis/kmeans"
	"github.com/michaelkatsweb/clustervis/quality"
)

type recorder struct {
	starts    int
	updates   []RunMetadata
	completes int
	history   []kmeans.IterationResult
	report    quality.Report
	errs      []error
}

func (r *recorder) OnStart(kmeans.Config, int) { r.starts++ }

func (r *recorder) OnUpdate(_ kmeans.IterationResult, meta RunMetadata) {
	r.updates = append(r.updates, meta)
}

func (r *recorder) OnComplete(history []kmeans.IterationResult, report quality.Report) {
	r.completes++
	r.history = history
	r.report = report
}

func (r *recorder) OnError(err error) { r.errs = append(r.errs, err) }

func twoPairs() [][]float64 {
	return [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}}
}

func testConfig(k int) kmeans.Config {
	cfg := kmeans.DefaultConfig
	cfg.K = k
	cfg.Tolerance = 1e-9
	cfg.MaxIterations = 20
	cfg.Seed = 1
	return cfg
}

func tickUntilDone(t *testing.T, d *Driver) {
	t.Helper()

	for i := 0; i < 100 && d.State() == StateRunning; i++ {
		require.NoError(t, d.Tick())
	}
	require.Equal(t, StateCompleted, d.State())
}

func TestDriverLifecycle(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(WithObserver(rec))

	require.Equal(t, StateIdle, d.State())

	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	require.Equal(t, StateRunning, d.State())

	tickUntilDone(t, d)

	assert.Equal(t, 1, rec.starts)
	assert.Equal(t, 1, rec.completes)
	assert.NotEmpty(t, rec.updates)
	assert.Empty(t, rec.errs)

	// Update metadata carries monotonically increasing iteration ordinals.
	for i, meta := range rec.updates {
		assert.Equal(t, i+1, meta.Iteration)
	}

	history := d.History()
	assert.Len(t, history, len(rec.updates))
	assert.Equal(t, history, rec.history)
	assert.True(t, history[len(history)-1].Converged)

	sizes := d.ClusterSizes()
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 2}, sizes)

	report, err := d.QualityReport()
	require.NoError(t, err)
	assert.Equal(t, rec.report, report)
	assert.Greater(t, report.Silhouette, 0.5)
	assert.Len(t, d.Centroids(), 2)
	assert.Len(t, d.NormalizedPoints(), 4)
}

func TestPauseResume(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(WithObserver(rec))

	require.NoError(t, d.Start(twoPairs(), testConfig(2)))

	d.Pause()
	require.Equal(t, StatePaused, d.State())

	// Ticking while paused is a no-op.
	require.NoError(t, d.Tick())
	assert.Empty(t, rec.updates)

	d.Resume()
	require.Equal(t, StateRunning, d.State())
	require.NoError(t, d.Tick())
	assert.Len(t, rec.updates, 1)

	// Resume when not paused is a no-op.
	d.Resume()
	assert.Equal(t, StateRunning, d.State())
}

func TestStop(t *testing.T) {
	d := NewDriver()

	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	require.NoError(t, d.Tick())

	d.Stop()
	assert.Equal(t, StateStopped, d.State())

	// History stays intact for inspection; ticking is a no-op.
	assert.Len(t, d.History(), 1)
	require.NoError(t, d.Tick())
	assert.Len(t, d.History(), 1)
}

func TestReset(t *testing.T) {
	d := NewDriver()

	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	tickUntilDone(t, d)

	d.Reset()
	assert.Equal(t, StateIdle, d.State())
	assert.Empty(t, d.History())
	assert.Nil(t, d.Centroids())

	_, err := d.Predict([][]float64{{0, 0}})
	assert.ErrorIs(t, err, ErrNotFitted)

	_, err = d.QualityReport()
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestStartWhileRunningRestarts(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(WithObserver(rec))

	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	require.NoError(t, d.Tick())
	require.Len(t, d.History(), 1)

	// Starting again stops the prior run and begins fresh.
	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	assert.Equal(t, StateRunning, d.State())
	assert.Empty(t, d.History())
	assert.Equal(t, 2, rec.starts)
}

func TestStartInvalidInput(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(WithObserver(rec))

	err := d.Start(nil, testConfig(2))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, StateStopped, d.State())
	require.Len(t, rec.errs, 1)
	assert.ErrorIs(t, rec.errs[0], ErrInvalidInput)
}

func TestStartInvalidConfiguration(t *testing.T) {
	d := NewDriver()

	err := d.Start(twoPairs(), testConfig(0))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	err = d.Start(twoPairs(), testConfig(5))
	assert.ErrorIs(t, err, ErrInvalidInput) // more clusters than points

	cfg := testConfig(2)
	cfg.Init = kmeans.InitManual
	cfg.Centroids = [][]float64{{0, 0}}
	err = d.Start(twoPairs(), cfg)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPredict(t *testing.T) {
	d := NewDriver()

	_, err := d.Predict([][]float64{{0, 0}})
	assert.ErrorIs(t, err, ErrNotFitted)

	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	tickUntilDone(t, d)

	history := d.History()
	final := history[len(history)-1]

	labels, err := d.Predict([][]float64{{0, 0.2}, {10, 10.8}})
	require.NoError(t, err)
	assert.Equal(t, final.Assignments[0], labels[0])
	assert.Equal(t, final.Assignments[2], labels[1])

	_, err = d.Predict([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestManualInitUsesRawCoordinates(t *testing.T) {
	cfg := testConfig(2)
	cfg.Init = kmeans.InitManual
	cfg.Centroids = [][]float64{{0, 0.5}, {10, 10.5}}

	d := NewDriver()
	require.NoError(t, d.Start(twoPairs(), cfg))
	tickUntilDone(t, d)

	history := d.History()
	final := history[len(history)-1]
	assert.Equal(t, []int{0, 0, 1, 1}, final.Assignments)

	sizes := d.ClusterSizes()
	assert.Equal(t, []int{2, 2}, sizes)
}

func TestObserverFuncs(t *testing.T) {
	// Nil fields must not panic.
	var empty ObserverFuncs
	empty.OnStart(kmeans.Config{}, 0)
	empty.OnUpdate(kmeans.IterationResult{}, RunMetadata{})
	empty.OnComplete(nil, quality.Report{})
	empty.OnError(nil)

	var completes int
	d := NewDriver(WithObserver(ObserverFuncs{
		CompleteFunc: func([]kmeans.IterationResult, quality.Report) { completes++ },
	}))

	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	tickUntilDone(t, d)
	assert.Equal(t, 1, completes)
}

func TestMetricsCollection(t *testing.T) {
	collector := &BasicMetricsCollector{}
	d := NewDriver(WithMetricsCollector(collector))

	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	tickUntilDone(t, d)

	_, err := d.Predict([][]float64{{0, 0}})
	require.NoError(t, err)

	stats := collector.GetStats()
	assert.Equal(t, int64(len(d.History())), stats.TickCount)
	assert.Equal(t, int64(1), stats.RunCount)
	assert.Equal(t, int64(0), stats.RunErrors)
	assert.Equal(t, int64(1), stats.PredictCount)
	assert.Equal(t, int64(1), stats.PredictedPoints)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Paused", StatePaused.String())
	assert.Equal(t, "Completed", StateCompleted.String())
	assert.Equal(t, "Stopped", StateStopped.String())
	assert.Equal(t, "Unknown", State(99).String())
}
