package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name string
		seg  [4]Vec
		want bool
	}{
		{"crossing diagonals", [4]Vec{{0, 0}, {10, 10}, {0, 10}, {10, 0}}, true},
		{"parallel horizontal", [4]Vec{{0, 0}, {10, 0}, {0, 5}, {10, 5}}, false},
		{"collinear overlap treated as parallel", [4]Vec{{0, 0}, {10, 0}, {5, 0}, {15, 0}}, false},
		{"lines cross outside segments", [4]Vec{{0, 0}, {1, 1}, {5, 0}, {4, 1}}, false},
		{"touching at endpoint", [4]Vec{{0, 0}, {10, 0}, {10, 0}, {10, 10}}, true},
		{"stacked girders", [4]Vec{{0, 170}, {500, 190}, {80, 280}, {630, 260}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentsIntersect(tt.seg[0], tt.seg[1], tt.seg[2], tt.seg[3]))
			assert.Equal(t, tt.want, SegmentsIntersect(tt.seg[2], tt.seg[3], tt.seg[0], tt.seg[1]), "should be symmetric")
		})
	}
}

func TestRotateIntoFrame(t *testing.T) {
	t.Run("zero angle is a translation", func(t *testing.T) {
		got := RotateIntoFrame(Vec{15, 25}, Vec{10, 20}, 0)
		assert.InDelta(t, 5.0, got.X, 1e-9)
		assert.InDelta(t, 5.0, got.Y, 1e-9)
	})

	t.Run("point along rotated axis lands on local x axis", func(t *testing.T) {
		angle := math.Pi / 6
		p := Vec{10 + 20*math.Cos(angle), 20 + 20*math.Sin(angle)}
		got := RotateIntoFrame(p, Vec{10, 20}, angle)
		assert.InDelta(t, 20.0, got.X, 1e-9)
		assert.InDelta(t, 0.0, got.Y, 1e-9)
	})

	t.Run("quarter turn", func(t *testing.T) {
		got := RotateIntoFrame(Vec{0, 10}, Vec{}, math.Pi/2)
		assert.InDelta(t, 10.0, got.X, 1e-9)
		assert.InDelta(t, 0.0, got.Y, 1e-9)
	})
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 24, H: 24}

	assert.True(t, a.Overlaps(Rect{X: 10, Y: 10, W: 24, H: 24}))
	assert.False(t, a.Overlaps(Rect{X: 24, Y: 0, W: 24, H: 24}), "edge contact is not overlap")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 30, W: 24, H: 24}))
	assert.True(t, a.Overlaps(Rect{X: -5, Y: -5, W: 40, H: 40}), "containment overlaps")
}

func TestRect_ExpandAndContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 16, H: 100}.Expand(10)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 36, H: 120}, r)
	assert.True(t, r.Contains(Vec{0, 0}))
	assert.True(t, r.Contains(Vec{36, 120}))
	assert.False(t, r.Contains(Vec{37, 50}))
	assert.Equal(t, 18.0, r.CenterX())
}

func TestLerpClamp(t *testing.T) {
	assert.Equal(t, 170.0, Lerp(170, 190, 0))
	assert.Equal(t, 190.0, Lerp(170, 190, 1))
	assert.Equal(t, 180.0, Lerp(170, 190, 0.5))

	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(13, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))
}
