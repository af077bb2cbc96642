// Package distance provides the distance metrics and small vector helpers
// used by the clustering engine.
//
// # Supported Metrics
//
//   - MetricEuclidean: straight-line (L2) distance (default)
//   - MetricManhattan: taxicab (L1) distance
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	fn, err := distance.Provider(distance.MetricManhattan)
//	mean := distance.Mean(vectors)
package distance
