package quality

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/michaelkatsweb/clustervis/kmeans"
)

// ElbowResult is the outcome of an elbow-method sweep.
type ElbowResult struct {
	// BestK is the selected cluster count.
	BestK int

	// Inertias holds the final inertia per candidate, Inertias[i] for k=i+1.
	Inertias []float64
}

// Elbow runs one full clustering run per k in [1, min(maxK, n-1)] and picks
// the k that maximizes the second-difference elbow strength
// (inertia[k-1]-inertia[k]) - (inertia[k]-inertia[k+1]). Ties resolve to the
// lowest k. The runs are independent and execute in parallel, bounded by
// GOMAXPROCS.
//
// cfg supplies everything but K, which is overridden per run.
func Elbow(ctx context.Context, points [][]float64, maxK int, cfg kmeans.Config) (ElbowResult, error) {
	n := len(points)
	if maxK > n-1 {
		maxK = n - 1
	}
	if maxK < 1 {
		maxK = 1
	}

	inertias := make([]float64, maxK)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for k := 1; k <= maxK; k++ {
		k := k
		g.Go(func() error {
			runCfg := cfg
			runCfg.K = k

			e, err := kmeans.New(points, runCfg)
			if err != nil {
				return err
			}

			for !e.Done() {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := e.Step(); err != nil {
					return err
				}
			}

			inertias[k-1] = e.Inertia()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ElbowResult{}, err
	}

	return ElbowResult{
		BestK:    pickElbow(inertias),
		Inertias: inertias,
	}, nil
}

// pickElbow returns the 1-based k with the strongest elbow. The second
// difference needs an interior candidate; with fewer than three candidates
// it falls back to the k with the lowest inertia (lowest k on ties).
func pickElbow(inertias []float64) int {
	if len(inertias) < 3 {
		best := 0
		for i, in := range inertias {
			if in < inertias[best] {
				best = i
			}
		}
		return best + 1
	}

	bestK := 2
	bestStrength := 0.0
	first := true
	for k := 2; k <= len(inertias)-1; k++ {
		strength := (inertias[k-2] - inertias[k-1]) - (inertias[k-1] - inertias[k])
		if first || strength > bestStrength {
			bestK = k
			bestStrength = strength
			first = false
		}
	}

	return bestK
}
