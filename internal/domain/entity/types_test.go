package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/girders/internal/domain/geom"
)

func createTestPlayerStats() PlayerStats {
	return PlayerStats{
		Width:      24,
		Height:     24,
		Speed:      3,
		JumpForce:  -9.3,
		Gravity:    0.4,
		ClimbSpeed: 2,
	}
}

func createTestBarrelStats() BarrelStats {
	return BarrelStats{
		Width:         24,
		Height:        24,
		Speed:         2,
		Gravity:       1.5,
		RotationSpeed: 0.1,
	}
}

func TestPlayfield_HasFloor(t *testing.T) {
	assert.True(t, Playfield{Width: 600, Height: 800, FloorY: 724}.HasFloor())
	assert.False(t, Playfield{Width: 600, Height: 800}.HasFloor())
}

func TestPlayfield_Bounds(t *testing.T) {
	f := Playfield{Width: 600, Height: 800}
	assert.Equal(t, geom.Rect{W: 600, H: 800}, f.Bounds())
}

func TestDefaultTolerance(t *testing.T) {
	tol := DefaultTolerance()
	assert.Equal(t, 20.0, tol.Band)
	assert.Equal(t, 2.0, tol.Stick)
}
