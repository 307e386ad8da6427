package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mpihlak/goracer/pkg/geometry"
)

// Tile is the terrain code of one grid cell.
type Tile uint8

const (
	Empty Tile = iota // off-road
	Road
	LapLine
	CheckpointTile
)

func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Road:
		return "road"
	case LapLine:
		return "lapline"
	case CheckpointTile:
		return "checkpoint"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// OnRoad reports whether the tile is part of the drivable ring.
func (t Tile) OnRoad() bool {
	return t != Empty
}

var ErrInvalidTrack = errors.New("invalid track")

// Track is an immutable grid of tiles.
type Track struct {
	Cols      int
	Rows      int
	Thickness int     // ring thickness in tiles
	TileSize  float64 // tile edge in pixels
	tiles     []Tile
}

// GenerateRing builds a rectangular ring track: the outer thickness rows and
// columns are road, the interior is off-road and the four corner blocks are
// checkpoints. A lap line crosses the left straight at half height.
func GenerateRing(cols, rows, thickness int, tileSize float64) (*Track, error) {
	switch {
	case cols <= 0 || rows <= 0:
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidTrack, cols, rows)
	case thickness <= 0:
		return nil, fmt.Errorf("%w: ring thickness %d", ErrInvalidTrack, thickness)
	case tileSize <= 0:
		return nil, fmt.Errorf("%w: tile size %.1f", ErrInvalidTrack, tileSize)
	case 2*thickness > cols || 2*thickness > rows:
		return nil, fmt.Errorf("%w: ring thickness %d does not fit grid %dx%d",
			ErrInvalidTrack, thickness, cols, rows)
	}

	t := &Track{
		Cols:      cols,
		Rows:      rows,
		Thickness: thickness,
		TileSize:  tileSize,
		tiles:     make([]Tile, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			t.tiles[row*cols+col] = ringTile(row, col, cols, rows, thickness)
		}
	}
	lapRow := t.LapLineRow()
	for col := 0; col < thickness; col++ {
		if t.At(lapRow, col) == Road {
			t.tiles[lapRow*cols+col] = LapLine
		}
	}
	return t, nil
}

func ringTile(row, col, cols, rows, thickness int) Tile {
	top := row < thickness
	bottom := row >= rows-thickness
	left := col < thickness
	right := col >= cols-thickness

	if (top || bottom) && (left || right) {
		return CheckpointTile
	}
	if top || bottom || left || right {
		return Road
	}
	return Empty
}

// At returns the tile at the given grid cell. Cells outside the grid are
// off-road.
func (t *Track) At(row, col int) Tile {
	if row < 0 || col < 0 || row >= t.Rows || col >= t.Cols {
		return Empty
	}
	return t.tiles[row*t.Cols+col]
}

// TileAt samples the tile under a pixel position.
func (t *Track) TileAt(p geometry.Point) Tile {
	if p.X < 0 || p.Y < 0 {
		return Empty
	}
	return t.At(int(p.Y/t.TileSize), int(p.X/t.TileSize))
}

// PixelSize is the track extent in pixels.
func (t *Track) PixelSize() geometry.Size {
	return geometry.Size{W: float64(t.Cols) * t.TileSize, H: float64(t.Rows) * t.TileSize}
}

func (t *Track) LapLineRow() int {
	return t.Rows / 2
}

// StartSlots returns the grid positions (top-left, pixels) of the player and
// the AI car: side by side on the left straight, one row below the lap line.
func (t *Track) StartSlots() (player, ai geometry.Point) {
	y := float64(t.LapLineRow()+1) * t.TileSize
	player = geometry.Point{X: float64(t.Thickness/4) * t.TileSize, Y: y}
	ai = geometry.Point{X: float64(3*t.Thickness/4) * t.TileSize, Y: y}
	return player, ai
}

// String renders the grid as ASCII, one line per row.
func (t *Track) String() string {
	var sb strings.Builder
	sb.Grow((t.Cols + 1) * t.Rows)
	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Cols; col++ {
			switch t.At(row, col) {
			case Road:
				sb.WriteByte('#')
			case LapLine:
				sb.WriteByte('=')
			case CheckpointTile:
				sb.WriteByte('C')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
