// Package util provides shared helpers, most notably a seedable random
// number generator used to keep clustering runs reproducible.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
// The same seed always yields the same sequence.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of the integers [0,n).
func (r *RNG) Perm(n int) []int {
	return r.rand.Perm(n)
}

// GenerateRandomPoints generates random points in [0,1)^dimensions using the given RNG.
func (r *RNG) GenerateRandomPoints(num int, dimensions int) [][]float64 {
	points := make([][]float64, num)
	for i := range points {
		points[i] = make([]float64, dimensions)
		for j := range points[i] {
			points[i][j] = r.rand.Float64()
		}
	}

	return points
}

// GenerateClusteredPoints generates points grouped around the given centers,
// jittered by at most spread in every dimension. Useful for tests and demos.
func (r *RNG) GenerateClusteredPoints(centers [][]float64, perCluster int, spread float64) [][]float64 {
	points := make([][]float64, 0, len(centers)*perCluster)
	for _, c := range centers {
		for i := 0; i < perCluster; i++ {
			p := make([]float64, len(c))
			for j := range p {
				p[j] = c[j] + (r.rand.Float64()*2-1)*spread
			}
			points = append(points, p)
		}
	}

	return points
}
