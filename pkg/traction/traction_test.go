package traction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpihlak/goracer/pkg/game/world"
)

func TestTable_Multiplier(t *testing.T) {
	tests := []struct {
		tile     world.Tile
		expected float64
	}{
		{world.Road, 0.9},
		{world.LapLine, 0.9},
		{world.CheckpointTile, 0.9},
		{world.Empty, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.tile.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultTable.Multiplier(tt.tile))
		})
	}
}

func TestTable_OffRoadHasMoreDrag(t *testing.T) {
	assert.Less(t, DefaultTable.Multiplier(world.Empty), DefaultTable.Multiplier(world.Road))
}

func TestTable_Valid(t *testing.T) {
	assert.True(t, DefaultTable.Valid())
	assert.False(t, Table{Road: 0, OffRoad: 0.3}.Valid())
	assert.False(t, Table{Road: 0.9, OffRoad: 1.5}.Valid())
}
