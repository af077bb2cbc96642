package clustervis

import (
	"slices"
	"sync"
	"time"

	"github.com/michaelkatsweb/clustervis/distance"
	"github.com/michaelkatsweb/clustervis/kmeans"
	"github.com/michaelkatsweb/clustervis/quality"
)

// State is the lifecycle state of a Driver.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateCompleted:
		return "Completed"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Driver wraps a clustering engine and advances it one iteration per Tick,
// so a host can animate the algorithm at whatever cadence it chooses. The
// driver holds no timer; frame pacing is the host's job (see Playback).
//
// Each Start owns its own engine state and history. Starting while a run is
// in progress stops the prior run and begins a new one. A Driver must not be
// shared across concurrent runs.
type Driver struct {
	mu        sync.Mutex
	state     State
	engine    *kmeans.Engine
	cfg       kmeans.Config
	points    [][]float64 // normalized to [0,1] per dimension
	lo, hi    []float64   // normalization bounds of the raw input
	history   []kmeans.IterationResult
	fitted    bool
	startedAt time.Time

	logger    *Logger
	metrics   MetricsCollector
	observers []Observer
}

// NewDriver creates a Driver in the Idle state.
func NewDriver(optFns ...Option) *Driver {
	opts := applyOptions(optFns)

	return &Driver{
		logger:    opts.logger,
		metrics:   opts.metrics,
		observers: opts.observers,
	}
}

// Start validates the input, normalizes it, initializes a fresh engine and
// transitions to Running. On failure the error is returned, surfaced to
// observers as an error event, and the driver transitions to Stopped.
func (d *Driver) Start(points [][]float64, cfg kmeans.Config) error {
	d.mu.Lock()

	if _, err := kmeans.ValidatePoints(points); err != nil {
		return d.failLocked(err)
	}

	lo, hi := distance.Bounds(points)
	norm := normalize(points, lo, hi)

	// Manual centroids are supplied in raw data space; map them into the
	// normalized space the engine works in. Mis-sized centroids pass through
	// for the engine to reject.
	runCfg := cfg
	if cfg.Init == kmeans.InitManual {
		centroids := make([][]float64, len(cfg.Centroids))
		for i, c := range cfg.Centroids {
			if len(c) == len(lo) {
				centroids[i] = normalize([][]float64{c}, lo, hi)[0]
			} else {
				centroids[i] = c
			}
		}
		runCfg.Centroids = centroids
	}

	engine, err := kmeans.New(norm, runCfg)
	if err != nil {
		return d.failLocked(err)
	}

	d.engine = engine
	d.cfg = runCfg
	d.points = norm
	d.lo, d.hi = lo, hi
	d.history = nil
	d.fitted = false
	d.startedAt = time.Now()
	d.state = StateRunning
	obs := slices.Clone(d.observers)
	d.mu.Unlock()

	d.logger.LogStart(cfg, len(points), nil)
	for _, o := range obs {
		o.OnStart(cfg, len(points))
	}

	return nil
}

// failLocked translates err, marks the driver Stopped and emits the error
// event. Must be called with d.mu held; releases it.
func (d *Driver) failLocked(err error) error {
	terr := translateError(err)
	d.state = StateStopped
	obs := slices.Clone(d.observers)
	d.mu.Unlock()

	d.logger.LogError(terr)
	for _, o := range obs {
		o.OnError(terr)
	}

	return terr
}

// Tick advances the run by one iteration. It is a no-op unless the driver is
// Running. On the final iteration the driver transitions to Completed and
// emits the complete event after the update event.
func (d *Driver) Tick() error {
	d.mu.Lock()
	if d.state != StateRunning {
		d.mu.Unlock()
		return nil
	}

	start := time.Now()

	res, err := d.engine.Step()
	if err != nil {
		iterations := d.engine.Iterations()
		elapsed := time.Since(d.startedAt)
		terr := translateError(err)
		d.state = StateStopped
		obs := slices.Clone(d.observers)
		d.mu.Unlock()

		d.metrics.RecordTick(time.Since(start), terr)
		d.metrics.RecordRun(iterations, elapsed, terr)
		d.logger.LogError(terr)
		for _, o := range obs {
			o.OnError(terr)
		}

		return terr
	}

	d.history = append(d.history, res)
	meta := RunMetadata{
		Iteration: d.engine.Iterations(),
		Elapsed:   time.Since(d.startedAt),
	}

	done := d.engine.Done()
	var report quality.Report
	var finalHistory []kmeans.IterationResult
	if done {
		report, err = quality.Evaluate(d.points, d.engine.Centroids(), res.Assignments, d.cfg.K, d.cfg.Metric)
		if err != nil {
			return d.failLocked(err)
		}
		d.state = StateCompleted
		d.fitted = true
		finalHistory = slices.Clone(d.history)
	}
	obs := slices.Clone(d.observers)
	d.mu.Unlock()

	d.metrics.RecordTick(time.Since(start), nil)
	d.logger.LogTick(meta.Iteration, res.Inertia, res.Converged)
	for _, o := range obs {
		o.OnUpdate(res, meta)
	}

	if done {
		d.metrics.RecordRun(meta.Iteration, meta.Elapsed, nil)
		d.logger.LogComplete(meta.Iteration, res.Inertia, meta.Elapsed)
		for _, o := range obs {
			o.OnComplete(finalHistory, report)
		}
	}

	return nil
}

// Pause suspends ticking. Only valid while Running; otherwise a no-op.
func (d *Driver) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateRunning {
		d.state = StatePaused
	}
}

// Resume continues a paused run. Only valid while Paused; otherwise a no-op.
func (d *Driver) Resume() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StatePaused {
		d.state = StateRunning
	}
}

// Stop halts the run from any non-terminal state. History stays intact for
// inspection until Reset or the next Start.
func (d *Driver) Stop() {
	d.mu.Lock()
	if d.state == StateCompleted || d.state == StateStopped {
		d.mu.Unlock()
		return
	}
	d.state = StateStopped
	iterations := 0
	if d.engine != nil {
		iterations = d.engine.Iterations()
	}
	d.mu.Unlock()

	d.logger.LogStop(iterations)
}

// Reset clears history, centroids and the fitted state and returns to Idle.
// View state is owned by the host and is not touched.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.engine = nil
	d.points = nil
	d.lo, d.hi = nil, nil
	d.history = nil
	d.fitted = false
	d.state = StateIdle
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// History returns a copy of the per-iteration results of the current or most
// recent run, in order.
func (d *Driver) History() []kmeans.IterationResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.history)
}

// Centroids returns a copy of the current centroids, or nil before any run.
func (d *Driver) Centroids() [][]float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.engine == nil {
		return nil
	}
	return d.engine.Centroids()
}

// ClusterSizes returns the member count per cluster of the current
// assignment, or nil before any run.
func (d *Driver) ClusterSizes() []int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.engine == nil {
		return nil
	}
	return quality.ClusterSizes(d.engine.Assignments(), d.cfg.K)
}

// NormalizedPoints returns the normalized point set of the current run, in
// input order. The view layer feeds these to view.ToScreen. Callers must not
// mutate the returned slices.
func (d *Driver) NormalizedPoints() [][]float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.points
}

// QualityReport computes the quality report for the fitted partition.
// Returns ErrNotFitted before any completed run.
func (d *Driver) QualityReport() (quality.Report, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.fitted {
		return quality.Report{}, ErrNotFitted
	}

	report, err := quality.Evaluate(d.points, d.engine.Centroids(), d.engine.Assignments(), d.cfg.K, d.cfg.Metric)
	if err != nil {
		return quality.Report{}, translateError(err)
	}

	return report, nil
}

// Predict classifies unseen points against the last fitted centroids, using
// the same normalization and distance metric as the run. It does not mutate
// the fitted state. Returns ErrNotFitted before any completed run.
func (d *Driver) Predict(points [][]float64) ([]int, error) {
	start := time.Now()

	d.mu.Lock()
	if !d.fitted {
		d.mu.Unlock()
		d.metrics.RecordPredict(len(points), time.Since(start), ErrNotFitted)
		d.logger.LogPredict(len(points), ErrNotFitted)
		return nil, ErrNotFitted
	}

	dim := len(d.lo)
	for i, p := range points {
		if len(p) != dim {
			d.mu.Unlock()
			err := translateError(&kmeans.ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(p)})
			d.metrics.RecordPredict(len(points), time.Since(start), err)
			d.logger.LogPredict(len(points), err)
			return nil, err
		}
	}

	labels, err := d.engine.Predict(normalize(points, d.lo, d.hi))
	d.mu.Unlock()

	err = translateError(err)
	d.metrics.RecordPredict(len(points), time.Since(start), err)
	d.logger.LogPredict(len(points), err)
	if err != nil {
		return nil, err
	}

	return labels, nil
}

// normalize maps each dimension to [0,1] using the given bounds.
// Degenerate dimensions (zero range) map to 0.5.
func normalize(points [][]float64, lo, hi []float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		q := make([]float64, len(p))
		for d := range p {
			if r := hi[d] - lo[d]; r > 0 {
				q[d] = (p[d] - lo[d]) / r
			} else {
				q[d] = 0.5
			}
		}
		out[i] = q
	}

	return out
}
