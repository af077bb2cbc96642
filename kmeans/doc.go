// Package kmeans implements the iterative centroid-refinement engine.
//
// The engine is created per run and owns no global state. It advances one
// iteration at a time so a host can animate the algorithm frame by frame:
//
//	e, err := kmeans.New(points, kmeans.Config{
//	    K:             3,
//	    MaxIterations: 50,
//	    Tolerance:     1e-4,
//	    Seed:          42,
//	})
//	for !e.Done() {
//	    res, _ := e.Step()
//	    render(res)
//	}
//
// # Initialization Strategies
//
//   - InitKMeansPlusPlus: distance-weighted seeding (default)
//   - InitRandom: uniform within the per-dimension data bounds
//   - InitManual: caller-supplied centroids
//
// All randomized strategies draw from a seedable generator, so identical
// inputs and seed produce identical runs.
package kmeans
