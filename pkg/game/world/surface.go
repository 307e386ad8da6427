package world

import "github.com/mpihlak/goracer/pkg/geometry"

// Surface reports the terrain under a pixel position.
type Surface interface {
	TileAt(pos geometry.Point) Tile
}

// ConstantSurface is the same tile everywhere.
type ConstantSurface struct {
	Tile Tile
}

func (cs *ConstantSurface) TileAt(_ geometry.Point) Tile {
	return cs.Tile
}
