package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mpihlak/goracer/pkg/game/objects"
	"github.com/mpihlak/goracer/pkg/game/world"
	"github.com/mpihlak/goracer/pkg/geometry"
)

var (
	grassColor      = color.RGBA{46, 120, 50, 255}
	roadColor       = color.RGBA{90, 90, 95, 255}
	lapLineColor    = color.RGBA{235, 235, 235, 255}
	checkpointColor = color.RGBA{255, 210, 0, 90}
	playerColor     = color.RGBA{220, 40, 40, 255}
	aiColor         = color.RGBA{40, 110, 230, 255}
	trailColor      = color.RGBA{255, 255, 255, 90}
)

// tileColor picks the ground colour. Checkpoint tiles are plain road, the
// visible checkpoints are drawn on top every frame.
func tileColor(t world.Tile, row, col int) color.RGBA {
	switch t {
	case world.Road, world.CheckpointTile:
		return roadColor
	case world.LapLine:
		// Chequered
		if (row+col)%2 == 0 {
			return lapLineColor
		}
		return roadColor
	default:
		return grassColor
	}
}

// drawTrack paints the tile grid. The grid never changes, so the result is
// cached by the caller.
func drawTrack(dst *ebiten.Image, track *world.Track) {
	dst.Fill(grassColor)
	ts := float32(track.TileSize)
	for row := 0; row < track.Rows; row++ {
		for col := 0; col < track.Cols; col++ {
			t := track.At(row, col)
			if t == world.Empty {
				continue
			}
			vector.DrawFilledRect(dst, float32(col)*ts, float32(row)*ts, ts, ts, tileColor(t, row, col), false)
		}
	}
}

func drawCheckpoints(screen *ebiten.Image, cps world.Checkpoints, tileSize float64) {
	for _, cp := range cps {
		if !cp.Visible {
			continue
		}
		r := cp.Rect(tileSize)
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), checkpointColor, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, color.RGBA{255, 210, 0, 200}, false)
	}
}

// carCorners returns the corners of the car rectangle rotated around its
// centre by the last heading, front edge first.
func carCorners(c *objects.Car) [4]geometry.Point {
	center := c.Center()
	sin, cos := math.Sincos(c.LastHeading)
	hw, hh := c.Size.W/2, c.Size.H/2

	local := [4][2]float64{{hw, -hh}, {hw, hh}, {-hw, hh}, {-hw, -hh}}
	var out [4]geometry.Point
	for i, p := range local {
		out[i] = geometry.Point{
			X: center.X + p[0]*cos - p[1]*sin,
			Y: center.Y + p[0]*sin + p[1]*cos,
		}
	}
	return out
}

func drawCar(screen *ebiten.Image, c *objects.Car, clr color.RGBA) {
	for _, p := range c.Trail {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, trailColor, false)
	}

	corners := carCorners(c)
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, clr, true)
	}
	// Windscreen marks the front
	front0, front1 := corners[0], corners[1]
	vector.StrokeLine(screen, float32(front0.X), float32(front0.Y), float32(front1.X), float32(front1.Y), 3, color.White, true)
}

// drawBanner dims the screen and prints text in the middle
func drawBanner(screen *ebiten.Image, text string) {
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), color.RGBA{0, 0, 0, 100}, false)

	// Debug font glyphs are 6x16
	x := bounds.Dx()/2 - len(text)*3
	y := bounds.Dy()/2 - 8
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
