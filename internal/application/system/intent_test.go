package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/girders/internal/domain/entity"
)

func TestIntentsImplementInterface(t *testing.T) {
	intents := []Intent{
		MoveIntent{Direction: 1},
		JumpIntent{Force: -9.3},
		ClimbIntent{Up: true},
	}

	for _, i := range intents {
		i.isIntent() // Should not panic
	}

	assert.Len(t, intents, 3)
}

func TestApply_JumpBeforeMove(t *testing.T) {
	sys := NewPlayerSystem(createTestField())
	player := entity.NewPlayer(100, 700, createTestPlayerStats())

	// Jump listed before the move still applies both
	sys.Apply(player, []Intent{JumpIntent{Force: -5}, MoveIntent{Direction: 1}}, nil)

	assert.Equal(t, -5.0, player.VY)
	assert.Equal(t, 103.0, player.X)
	assert.True(t, player.IsJumping())
}
