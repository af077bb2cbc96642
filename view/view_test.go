package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToScreen_Identity(t *testing.T) {
	s := NewState()
	vp := Viewport{Width: 100, Height: 200}

	// At zoom 1 with no pan, the transform only scales to the viewport.
	p := ToScreen(Point{X: 0.5, Y: 0.5}, s, vp)
	assert.InDelta(t, 50, p.X, 1e-12)
	assert.InDelta(t, 100, p.Y, 1e-12)

	p = ToScreen(Point{X: 0, Y: 1}, s, vp)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 200, p.Y, 1e-12)
}

func TestRoundTrip(t *testing.T) {
	viewports := []Viewport{
		{Width: 100, Height: 100},
		{Width: 1920, Height: 1080},
		{Width: 640, Height: 480},
	}
	states := []State{
		{Zoom: 1},
		{Zoom: 0.5, Pan: Point{X: -20, Y: 35}},
		{Zoom: 2.7, Pan: Point{X: 300, Y: -150}},
		{Zoom: 13.37, Pan: Point{X: 1, Y: 2}},
	}
	points := []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 0.25, Y: 0.75},
		{X: -0.5, Y: 1.5}, // outside the unit square is fine
	}

	for _, vp := range viewports {
		for _, st := range states {
			st := st
			for _, p := range points {
				got := ToData(ToScreen(p, &st, vp), &st, vp)
				assert.InDelta(t, p.X, got.X, 1e-9)
				assert.InDelta(t, p.Y, got.Y, 1e-9)
			}
		}
	}
}

func TestSetZoom_AnchorsCursor(t *testing.T) {
	s := NewState()
	s.PanBy(3, -2)
	vp := Viewport{Width: 800, Height: 600}
	anchor := Point{X: 120, Y: 80}

	before := ToData(anchor, s, vp)
	s.SetZoom(2.5, anchor, vp)
	after := ToData(anchor, s, vp)

	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)

	// Zooming back out re-anchors again.
	s.SetZoom(0.8, anchor, vp)
	again := ToData(anchor, s, vp)
	assert.InDelta(t, before.X, again.X, 1e-9)
	assert.InDelta(t, before.Y, again.Y, 1e-9)
}

func TestSetZoom_IgnoresNonPositive(t *testing.T) {
	s := NewState()
	vp := Viewport{Width: 100, Height: 100}

	s.SetZoom(0, Point{}, vp)
	assert.Equal(t, 1.0, s.Zoom)

	s.SetZoom(-2, Point{}, vp)
	assert.Equal(t, 1.0, s.Zoom)
}

func TestReset(t *testing.T) {
	s := NewState()
	vp := Viewport{Width: 100, Height: 100}
	s.SetZoom(3, Point{X: 10, Y: 10}, vp)
	s.PanBy(5, 5)

	s.Reset()
	assert.Equal(t, 1.0, s.Zoom)
	assert.Equal(t, Point{}, s.Pan)
}

func TestHitTest(t *testing.T) {
	s := NewState()
	vp := Viewport{Width: 100, Height: 100}
	points := [][]float64{
		{0.5, 0.5}, // screen (50, 50)
		{0.5, 0.5}, // overlapping: lowest index wins
		{0.9, 0.1}, // screen (90, 10)
	}

	idx, ok := HitTest(Point{X: 52, Y: 51}, points, s, vp, 5)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = HitTest(Point{X: 89, Y: 11}, points, s, vp, 5)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = HitTest(Point{X: 52, Y: 51}, points, s, vp, 1)
	assert.False(t, ok)

	// Hit-testing tracks the transform.
	s.SetZoom(2, Point{X: 50, Y: 50}, vp)
	idx, ok = HitTest(Point{X: 50, Y: 50}, points, s, vp, 2)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestSelectRect(t *testing.T) {
	s := NewState()
	vp := Viewport{Width: 100, Height: 100}
	points := [][]float64{
		{0.1, 0.1},
		{0.5, 0.5},
		{0.9, 0.9},
	}

	// Corner order must not matter.
	sel := SelectRect(Point{X: 60, Y: 60}, Point{X: 0, Y: 0}, points, s, vp)
	assert.Equal(t, []uint32{0, 1}, sel.ToArray())

	sel = SelectRect(Point{X: 95, Y: 95}, Point{X: 85, Y: 85}, points, s, vp)
	assert.Equal(t, []uint32{2}, sel.ToArray())

	sel = SelectRect(Point{X: 0, Y: 0}, Point{X: 5, Y: 5}, points, s, vp)
	assert.True(t, sel.IsEmpty())
}
