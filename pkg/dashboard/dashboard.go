package dashboard

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mpihlak/goracer/pkg/race"
)

type Dashboard struct {
	Race *race.Race
}

// CurrentLap is the lap the player is driving, counting from 1. It stays at
// the lap target once the race is over.
func (d *Dashboard) CurrentLap() int {
	lap := d.Race.Player.Laps + 1
	if lap > d.Race.Settings.LapTarget {
		lap = d.Race.Settings.LapTarget
	}
	return lap
}

// CheckpointsCollected counts the checkpoints the player has driven through
// in the current lap.
func (d *Dashboard) CheckpointsCollected() int {
	cps := d.Race.Arena.Checkpoints
	return len(cps) - cps.VisibleCount()
}

// Heading converts the car heading to compass degrees, 0 pointing up and
// increasing clockwise.
func Heading(radians float64) float64 {
	deg := math.Round(radians*180/math.Pi*1e6)/1e6 + 90
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Lines returns the HUD text, one entry per line.
func (d *Dashboard) Lines() []string {
	r := d.Race
	player := r.Player
	best := "--:--.--"
	if b, ok := player.BestLap(); ok {
		best = race.FormatLapTime(b)
	}

	return []string{
		fmt.Sprintf("Lap: %d/%d", d.CurrentLap(), r.Settings.LapTarget),
		fmt.Sprintf("Lap time: %s", race.FormatLapTime(player.LapElapsed)),
		fmt.Sprintf("Best lap: %s", best),
		fmt.Sprintf("Checkpoints: %d/%d", d.CheckpointsCollected(), len(r.Arena.Checkpoints)),
		fmt.Sprintf("Speed: %.0f px/s", player.Car.Speed()),
		fmt.Sprintf("Heading: %.0f°", Heading(player.Car.LastHeading)),
		fmt.Sprintf("AI lap: %d/%d", r.AI.Laps, r.Settings.LapTarget),
		fmt.Sprintf("Race time: %s", race.FormatLapTime(r.Elapsed())),
	}
}

func (d *Dashboard) Draw(screen *ebiten.Image) {
	lines := d.Lines()
	x := screen.Bounds().Dx() - 170
	y := 10

	// Translucent panel so the text stays readable over the track
	vector.DrawFilledRect(screen, float32(x-8), float32(y-4), 170, float32(len(lines)*16+8),
		color.RGBA{0, 0, 0, 140}, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), x, y)
}
