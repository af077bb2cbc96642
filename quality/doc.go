// Package quality computes clustering-quality metrics over a fitted
// partition: inertia (WCSS), silhouette score, cluster sizes and membership
// sets, plus an elbow-method sweep for choosing k.
//
// Silhouette is O(n²) by nature. Callers with large point sets should sample
// or skip it; that is a cost/accuracy trade-off, not an optimization bug.
// The elbow sweep performs one full clustering run per candidate k and is
// meant for batch use off the per-frame path.
package quality
