package kmeans

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/michaelkatsweb/clustervis/distance"
	"github.com/michaelkatsweb/clustervis/util"
)

// Unassigned is the cluster label of a point before the first assignment step.
const Unassigned = -1

// InitMethod selects the centroid initialization strategy.
type InitMethod int

const (
	// InitKMeansPlusPlus seeds centroids with distance-weighted sampling.
	InitKMeansPlusPlus InitMethod = iota

	// InitRandom draws each centroid coordinate uniformly within the
	// per-dimension bounds of the input data.
	InitRandom

	// InitManual uses the centroids supplied in Config.Centroids.
	InitManual
)

func (m InitMethod) String() string {
	switch m {
	case InitKMeansPlusPlus:
		return "KMeansPlusPlus"
	case InitRandom:
		return "Random"
	case InitManual:
		return "Manual"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Config contains the configuration for a clustering run.
// It is immutable for the duration of the run.
type Config struct {
	// K is the number of clusters. Must satisfy 1 <= K <= number of points.
	K int

	// MaxIterations caps the number of refinement steps.
	MaxIterations int

	// Tolerance is the maximum per-centroid movement (in the configured
	// metric) at which the run is considered converged.
	Tolerance float64

	// Init selects the initialization strategy.
	Init InitMethod

	// Metric selects the distance function for assignment and convergence.
	Metric distance.Metric

	// Seed seeds the random generator for InitRandom and InitKMeansPlusPlus.
	// The zero seed is a valid, deterministic seed.
	Seed int64

	// Centroids supplies the initial centroids for InitManual.
	// Ignored by the other strategies.
	Centroids [][]float64
}

// DefaultConfig contains the default configuration for a clustering run.
var DefaultConfig = Config{
	K:             3,
	MaxIterations: 100,
	Tolerance:     1e-4,
	Init:          InitKMeansPlusPlus,
	Metric:        distance.MetricEuclidean,
}

// IterationResult is the outcome of a single refinement step.
type IterationResult struct {
	// Assignments maps point index to cluster index in [0, K).
	Assignments []int

	// Centroids are the cluster centers after the update step.
	Centroids [][]float64

	// Inertia is the sum over all points of the squared distance to their
	// assigned centroid. A progress signal, not a stopping criterion.
	Inertia float64

	// Converged reports whether every centroid moved at most Tolerance
	// during this step.
	Converged bool
}

// Engine runs the iterative centroid-refinement algorithm over a fixed point
// set. It is not safe for concurrent use; create one Engine per run.
type Engine struct {
	points      [][]float64
	dim         int
	cfg         Config
	distFunc    distance.Func
	centroids   [][]float64
	assignments []int
	iterations  int
	converged   bool
	last        IterationResult
}

// New validates the input and configuration, initializes centroids according
// to the configured strategy, and returns an Engine ready to step.
// The engine never mutates points.
func New(points [][]float64, cfg Config) (*Engine, error) {
	dim, err := ValidatePoints(points)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg, len(points), dim); err != nil {
		return nil, err
	}

	distFunc, err := distance.Provider(cfg.Metric)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		points:      points,
		dim:         dim,
		cfg:         cfg,
		distFunc:    distFunc,
		assignments: make([]int, len(points)),
	}
	for i := range e.assignments {
		e.assignments[i] = Unassigned
	}

	switch cfg.Init {
	case InitRandom:
		e.centroids = initRandom(points, cfg.K, util.NewRNG(cfg.Seed))
	case InitKMeansPlusPlus:
		e.centroids = initKMeansPlusPlus(points, cfg.K, distFunc, util.NewRNG(cfg.Seed))
	case InitManual:
		e.centroids = cloneVectors(cfg.Centroids)
	default:
		return nil, &ErrUnknownInitMethod{Method: cfg.Init}
	}

	return e, nil
}

// ValidatePoints checks that the point set is non-empty and rectangular and
// returns its dimensionality.
func ValidatePoints(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}

	dim := len(points[0])
	if dim == 0 {
		return 0, &ErrDimensionMismatch{Index: 0, Expected: 1, Actual: 0}
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, &ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(p)}
		}
	}

	return dim, nil
}

func validateConfig(cfg Config, n, dim int) error {
	if cfg.K < 1 {
		return ErrInvalidK
	}
	if cfg.K > n {
		return &ErrTooFewPoints{K: cfg.K, N: n}
	}
	if cfg.MaxIterations <= 0 {
		return ErrInvalidMaxIterations
	}
	if cfg.Tolerance <= 0 {
		return ErrInvalidTolerance
	}

	if cfg.Init == InitManual {
		if len(cfg.Centroids) != cfg.K {
			return &ErrManualCentroids{Want: cfg.K, Got: len(cfg.Centroids)}
		}
		for i, c := range cfg.Centroids {
			if len(c) != dim {
				return &ErrManualCentroidDimension{Index: i, Expected: dim, Actual: len(c)}
			}
		}
	}

	return nil
}

// initRandom draws each centroid coordinate uniformly within the
// per-dimension bounds of the data.
func initRandom(points [][]float64, k int, rng *util.RNG) [][]float64 {
	lo, hi := distance.Bounds(points)

	centroids := make([][]float64, k)
	for i := range centroids {
		c := make([]float64, len(lo))
		for d := range c {
			c[d] = lo[d] + rng.Float64()*(hi[d]-lo[d])
		}
		centroids[i] = c
	}

	return centroids
}

// initKMeansPlusPlus picks the first centroid uniformly among the points and
// each subsequent one with probability proportional to the squared distance
// to the nearest already-chosen centroid (weighted roulette over cumulative
// sums).
func initKMeansPlusPlus(points [][]float64, k int, distFunc distance.Func, rng *util.RNG) [][]float64 {
	n := len(points)

	centroids := make([][]float64, 0, k)
	centroids = append(centroids, slices.Clone(points[rng.Intn(n)]))

	cum := make([]float64, n)
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			nearest := math.MaxFloat64
			for _, c := range centroids {
				if d := distFunc(p, c); d < nearest {
					nearest = d
				}
			}
			total += nearest * nearest
			cum[i] = total
		}

		var idx int
		if total == 0 {
			// All remaining points coincide with a chosen centroid.
			idx = rng.Intn(n)
		} else {
			idx = sort.SearchFloat64s(cum, rng.Float64()*total)
			if idx >= n {
				idx = n - 1
			}
		}

		centroids = append(centroids, slices.Clone(points[idx]))
	}

	return centroids
}

// Step performs one iteration: assignment, centroid update, convergence test
// and inertia. Calling Step after the run has finished returns the final
// result again without further work.
func (e *Engine) Step() (IterationResult, error) {
	if e.Done() {
		return e.last, nil
	}

	// Assignment: nearest centroid, exact ties break to the lowest index.
	for i, p := range e.points {
		best := Unassigned
		bestDist := math.MaxFloat64
		for j, c := range e.centroids {
			if d := e.distFunc(p, c); d < bestDist {
				bestDist = d
				best = j
			}
		}
		e.assignments[i] = best
	}

	// Update: coordinate-wise mean of the assigned points. Empty clusters
	// keep their previous centroid.
	members := make([][][]float64, e.cfg.K)
	for i, cluster := range e.assignments {
		members[cluster] = append(members[cluster], e.points[i])
	}

	moved := 0.0
	for j, m := range members {
		if len(m) == 0 {
			continue
		}
		next := distance.Mean(m)
		if d := e.distFunc(e.centroids[j], next); d > moved {
			moved = d
		}
		e.centroids[j] = next
	}

	e.iterations++
	e.converged = moved <= e.cfg.Tolerance

	inertia := 0.0
	for i, p := range e.points {
		d := e.distFunc(p, e.centroids[e.assignments[i]])
		inertia += d * d
	}

	e.last = IterationResult{
		Assignments: slices.Clone(e.assignments),
		Centroids:   cloneVectors(e.centroids),
		Inertia:     inertia,
		Converged:   e.converged,
	}

	return e.last, nil
}

// Done reports whether the run has finished, either by convergence or by
// reaching the iteration cap.
func (e *Engine) Done() bool {
	return e.iterations > 0 && (e.converged || e.iterations >= e.cfg.MaxIterations)
}

// Converged reports whether the last step satisfied the tolerance test.
func (e *Engine) Converged() bool {
	return e.converged
}

// Iterations returns the number of completed steps.
func (e *Engine) Iterations() int {
	return e.iterations
}

// Inertia returns the inertia of the last completed step.
func (e *Engine) Inertia() float64 {
	return e.last.Inertia
}

// Centroids returns a copy of the current centroids.
func (e *Engine) Centroids() [][]float64 {
	return cloneVectors(e.centroids)
}

// Assignments returns a copy of the current point-to-cluster assignments.
func (e *Engine) Assignments() []int {
	return slices.Clone(e.assignments)
}

// Points returns the point set the engine was fitted on.
// Callers must not mutate the returned slices.
func (e *Engine) Points() [][]float64 {
	return e.points
}

// Config returns the configuration of this run.
func (e *Engine) Config() Config {
	return e.cfg
}

// Predict classifies unseen points against the current centroids using the
// configured metric, without mutating the fitted state.
func (e *Engine) Predict(points [][]float64) ([]int, error) {
	labels := make([]int, len(points))
	for i, p := range points {
		if len(p) != e.dim {
			return nil, &ErrDimensionMismatch{Index: i, Expected: e.dim, Actual: len(p)}
		}

		best := Unassigned
		bestDist := math.MaxFloat64
		for j, c := range e.centroids {
			if d := e.distFunc(p, c); d < bestDist {
				bestDist = d
				best = j
			}
		}
		labels[i] = best
	}

	return labels, nil
}

func cloneVectors(vectors [][]float64) [][]float64 {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		out[i] = slices.Clone(v)
	}

	return out
}
