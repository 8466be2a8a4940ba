package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarrel_NormalizesDirection(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{1, 1},
		{5, 1},
		{0, 1},
		{-1, -1},
		{-3, -1},
	}

	for _, tt := range tests {
		b := NewBarrel(1, 0, 0, createTestBarrelStats(), tt.in)
		assert.Equal(t, tt.want, b.Direction)
		assert.True(t, b.Active)
		assert.False(t, b.IsResting())
	}
}

func TestBarrel_FallIsMonotonic(t *testing.T) {
	b := NewBarrel(1, 100, 0, createTestBarrelStats(), 1)

	prevY := b.Y
	prevVY := b.VY
	for i := 1; i <= 30; i++ {
		b.Fall()
		assert.Greater(t, b.Y, prevY)
		assert.Greater(t, b.VY, prevVY)
		assert.InDelta(t, 1.5*float64(i), b.VY, 1e-9)
		prevY, prevVY = b.Y, b.VY
	}
}

func TestBarrel_RestOn(t *testing.T) {
	t.Run("turns downhill", func(t *testing.T) {
		p := NewPlatform(80, 280, 260, 550) // descends to the left
		b := NewBarrel(1, 200, 250, createTestBarrelStats(), 1)
		b.VY = 6

		b.RestOn(p)

		assert.Same(t, p, b.Support)
		assert.Equal(t, 0.0, b.VY)
		assert.Equal(t, -1, b.Direction)
		assert.InDelta(t, p.SurfaceYAt(b.CenterX()), b.Bottom(), 1e-9)
	})

	t.Run("flat keeps direction", func(t *testing.T) {
		p := NewPlatform(0, 300, 300, 400)
		b := NewBarrel(1, 200, 270, createTestBarrelStats(), -1)

		b.RestOn(p)

		assert.Equal(t, -1, b.Direction)
		assert.Equal(t, 276.0, b.Y)
	})
}

func TestBarrel_RollFollowsIncline(t *testing.T) {
	p := NewPlatform(0, 170, 190, 500)
	b := NewBarrel(1, 100, 0, createTestBarrelStats(), 1)
	b.RestOn(p)

	for i := 0; i < 50; i++ {
		require.True(t, b.Roll())
		assert.InDelta(t, p.SurfaceYAt(b.CenterX()), b.Bottom(), 1e-9)
	}
	assert.InDelta(t, 200.0, b.X, 1e-9)
}

func TestBarrel_RollOffEdge(t *testing.T) {
	p := NewPlatform(0, 300, 300, 100)
	b := NewBarrel(1, 87, 0, createTestBarrelStats(), 1) // center at 99
	b.RestOn(p)

	assert.False(t, b.Roll())
	assert.Nil(t, b.Support)
	assert.Equal(t, 1, b.EdgeExits)
	assert.Equal(t, 89.0, b.X)

	// A falling barrel does not roll
	assert.False(t, b.Roll())
	assert.Equal(t, 1, b.EdgeExits)
}

func TestBarrel_ReverseSpinDeactivate(t *testing.T) {
	p := NewPlatform(0, 300, 300, 100)
	b := NewBarrel(1, 10, 0, createTestBarrelStats(), 1)
	b.RestOn(p)

	b.Reverse()
	assert.Equal(t, -1, b.Direction)

	b.Spin()
	b.Spin()
	assert.InDelta(t, 0.2, b.Rotation, 1e-9)

	b.Deactivate()
	assert.False(t, b.Active)
	assert.Nil(t, b.Support)
}
