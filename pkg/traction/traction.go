package traction

import "github.com/mpihlak/goracer/pkg/game/world"

// Grip tells how much of a car's velocity survives one frame on a tile.
type Grip interface {
	Multiplier(tile world.Tile) float64
}

// Table is the friction table shared by every car. Lower multipliers mean
// more drag.
type Table struct {
	Road    float64 // road, lap line and checkpoint tiles
	OffRoad float64
}

// DefaultTable is used when no table is configured.
var DefaultTable = Table{Road: 0.9, OffRoad: 0.3}

// Multiplier returns the velocity multiplier for the given tile
func (t Table) Multiplier(tile world.Tile) float64 {
	if tile.OnRoad() {
		return t.Road
	}
	return t.OffRoad
}

// Valid reports whether both multipliers are within (0, 1].
func (t Table) Valid() bool {
	return t.Road > 0 && t.Road <= 1 && t.OffRoad > 0 && t.OffRoad <= 1
}
