package quality

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/michaelkatsweb/clustervis/distance"
)

// Report summarizes the quality of a fitted partition.
type Report struct {
	// Inertia is the within-cluster sum of squared distances.
	Inertia float64

	// Silhouette is the mean silhouette score in [-1, 1].
	// Exactly 0 when k <= 1.
	Silhouette float64

	// ClusterSizes maps cluster index to member count.
	ClusterSizes []int
}

// ErrBadAssignment indicates a cluster label outside [0, k).
type ErrBadAssignment struct {
	Index   int // point index
	Cluster int
	K       int
}

func (e *ErrBadAssignment) Error() string {
	return fmt.Sprintf("point %d assigned to cluster %d, want [0, %d)", e.Index, e.Cluster, e.K)
}

func validateAssignments(assignments []int, k int) error {
	for i, c := range assignments {
		if c < 0 || c >= k {
			return &ErrBadAssignment{Index: i, Cluster: c, K: k}
		}
	}

	return nil
}

// Inertia returns the sum over all points of the squared distance (in the
// given metric) to their assigned centroid.
func Inertia(points, centroids [][]float64, assignments []int, m distance.Metric) (float64, error) {
	distFunc, err := distance.Provider(m)
	if err != nil {
		return 0, err
	}
	if err := validateAssignments(assignments, len(centroids)); err != nil {
		return 0, err
	}

	total := 0.0
	for i, p := range points {
		d := distFunc(p, centroids[assignments[i]])
		total += d * d
	}

	return total, nil
}

// Silhouette returns the mean silhouette score of the partition in [-1, 1].
// Returns exactly 0 when k <= 1. O(n²) in the number of points.
func Silhouette(points [][]float64, assignments []int, k int, m distance.Metric) (float64, error) {
	if k <= 1 {
		return 0, nil
	}

	distFunc, err := distance.Provider(m)
	if err != nil {
		return 0, err
	}
	if err := validateAssignments(assignments, k); err != nil {
		return 0, err
	}

	sizes := ClusterSizes(assignments, k)

	total := 0.0
	sums := make([]float64, k)
	for i, p := range points {
		for j := range sums {
			sums[j] = 0
		}
		for j, q := range points {
			if j == i {
				continue
			}
			sums[assignments[j]] += distFunc(p, q)
		}

		own := assignments[i]

		// a: mean distance to the other members of the own cluster,
		// 0 for singleton clusters.
		a := 0.0
		if sizes[own] > 1 {
			a = sums[own] / float64(sizes[own]-1)
		}

		// b: minimum mean distance to any other non-empty cluster.
		b := math.MaxFloat64
		found := false
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			if mean := sums[c] / float64(sizes[c]); mean < b {
				b = mean
				found = true
			}
		}
		if !found {
			b = 0
		}

		if s := math.Max(a, b); s > 0 {
			total += (b - a) / s
		}
	}

	return total / float64(len(points)), nil
}

// ClusterSizes returns the member count per cluster index.
// Labels outside [0, k) are ignored.
func ClusterSizes(assignments []int, k int) []int {
	sizes := make([]int, k)
	for _, c := range assignments {
		if c >= 0 && c < k {
			sizes[c]++
		}
	}

	return sizes
}

// Memberships returns one bitmap of point indices per cluster, for
// constant-time membership queries from selection UIs.
func Memberships(assignments []int, k int) []*roaring.Bitmap {
	sets := make([]*roaring.Bitmap, k)
	for i := range sets {
		sets[i] = roaring.New()
	}
	for i, c := range assignments {
		if c >= 0 && c < k {
			sets[c].Add(uint32(i))
		}
	}

	return sets
}

// Evaluate computes the full quality report for a fitted partition.
func Evaluate(points, centroids [][]float64, assignments []int, k int, m distance.Metric) (Report, error) {
	inertia, err := Inertia(points, centroids, assignments, m)
	if err != nil {
		return Report{}, err
	}

	silhouette, err := Silhouette(points, assignments, k, m)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Inertia:      inertia,
		Silhouette:   silhouette,
		ClusterSizes: ClusterSizes(assignments, k),
	}, nil
}
