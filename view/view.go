// Package view maps normalized data-space coordinates to screen space under
// a zoom factor and pan offset, and back. It performs hit-testing and
// rubber-band selection for visualization hosts; it owns no rendering.
package view

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Point is a 2-D coordinate, in either screen or normalized data space.
type Point struct {
	X float64
	Y float64
}

// Viewport is the pixel size of the drawing surface.
type Viewport struct {
	Width  float64
	Height float64
}

// Center returns the center of the viewport in screen space.
func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}

// State holds the zoom factor and pan offset. The zero value is not valid;
// use NewState. State persists across clustering runs until Reset.
type State struct {
	Zoom float64
	Pan  Point
}

// NewState returns a State at zoom 1 with no pan.
func NewState() *State {
	return &State{Zoom: 1}
}

// Reset returns the state to zoom 1 with no pan.
func (s *State) Reset() {
	s.Zoom = 1
	s.Pan = Point{}
}

// PanBy shifts the pan offset by the given screen-space deltas.
func (s *State) PanBy(dx, dy float64) {
	s.Pan.X += dx
	s.Pan.Y += dy
}

// SetZoom changes the zoom factor, re-anchoring the pan so the data point
// under anchor stays under anchor. Non-positive zoom values are ignored.
func (s *State) SetZoom(zoom float64, anchor Point, vp Viewport) {
	if zoom <= 0 {
		return
	}

	c := vp.Center()
	ratio := zoom / s.Zoom

	// new pan = cursor - (cursor - old pan) * ratio, with the cursor taken
	// relative to the viewport center the transform zooms around.
	ux := anchor.X - c.X
	uy := anchor.Y - c.Y
	s.Pan.X = ux - (ux-s.Pan.X)*ratio
	s.Pan.Y = uy - (uy-s.Pan.Y)*ratio
	s.Zoom = zoom
}

// ToScreen maps a normalized data-space point ([0,1]²) to screen space:
// the point is scaled to the viewport, zoomed around the viewport center and
// shifted by the pan offset.
func ToScreen(p Point, s *State, vp Viewport) Point {
	c := vp.Center()

	return Point{
		X: (p.X*vp.Width-c.X)*s.Zoom + c.X + s.Pan.X,
		Y: (p.Y*vp.Height-c.Y)*s.Zoom + c.Y + s.Pan.Y,
	}
}

// ToData is the exact inverse of ToScreen.
func ToData(sp Point, s *State, vp Viewport) Point {
	c := vp.Center()

	return Point{
		X: ((sp.X-s.Pan.X-c.X)/s.Zoom + c.X) / vp.Width,
		Y: ((sp.Y-s.Pan.Y-c.Y)/s.Zoom + c.Y) / vp.Height,
	}
}

// HitTest returns the index of the first point (lowest index) whose screen
// position lies within radius of sp, or false if none does. Points beyond
// the first two dimensions are projected onto them.
func HitTest(sp Point, points [][]float64, s *State, vp Viewport, radius float64) (int, bool) {
	for i, p := range points {
		pos := ToScreen(Point{X: p[0], Y: p[1]}, s, vp)
		if math.Hypot(pos.X-sp.X, pos.Y-sp.Y) <= radius {
			return i, true
		}
	}

	return 0, false
}

// SelectRect returns the set of point indices whose screen positions fall
// within the rectangle spanned by the two screen-space corners.
func SelectRect(a, b Point, points [][]float64, s *State, vp Viewport) *roaring.Bitmap {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	selected := roaring.New()
	for i, p := range points {
		pos := ToScreen(Point{X: p[0], Y: p[1]}, s, vp)
		if pos.X >= minX && pos.X <= maxX && pos.Y >= minY && pos.Y <= maxY {
			selected.Add(uint32(i))
		}
	}

	return selected
}
