package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mpihlak/goracer/pkg/race"
)

// LapRow is one line of the end screen lap table
type LapRow struct {
	Lap        int
	PlayerTime string
	AITime     string
}

// Scoreboard shows the lap tables once the race is over
type Scoreboard struct {
	isVisible bool
	result    race.Result
	rows      []LapRow
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// Show displays the scoreboard with the given race result
func (s *Scoreboard) Show(result race.Result) {
	s.isVisible = true
	s.result = result
	s.rows = lapRows(result)
}

func (s *Scoreboard) Hide() {
	s.isVisible = false
	s.rows = nil
}

func (s *Scoreboard) IsVisible() bool {
	return s.isVisible
}

// lapRows lines up both racers' laps. A missing lap shows as "-" and the
// best lap of each racer is marked with "*".
func lapRows(res race.Result) []LapRow {
	n := max(len(res.Player.LapTimes), len(res.AI.LapTimes))
	rows := make([]LapRow, n)
	for i := range rows {
		rows[i] = LapRow{
			Lap:        i + 1,
			PlayerTime: lapCell(res.Player, i),
			AITime:     lapCell(res.AI, i),
		}
	}
	return rows
}

func lapCell(r race.RacerResult, i int) string {
	if i >= len(r.LapTimes) {
		return "-"
	}
	cell := race.FormatLapTime(r.LapTimes[i])
	if r.LapTimes[i] == r.BestLap {
		cell += "*"
	}
	return cell
}

// Headline is the banner text for the outcome
func (s *Scoreboard) Headline() string {
	switch s.result.Winner {
	case "player":
		return "*** YOU WIN! ***"
	case "ai":
		return "*** AI WINS ***"
	default:
		return "RACE OVER"
	}
}

func (s *Scoreboard) Draw(screen *ebiten.Image) {
	if !s.isVisible {
		return
	}

	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), color.RGBA{0, 0, 0, 180}, false)

	centerX := bounds.Dx() / 2
	startY := bounds.Dy()/2 - 60 - len(s.rows)*10

	ebitenutil.DebugPrintAt(screen, s.Headline(), centerX-60, startY-30)

	// Headers
	headerY := startY
	ebitenutil.DebugPrintAt(screen, "Lap", centerX-150, headerY)
	ebitenutil.DebugPrintAt(screen, "You", centerX-80, headerY)
	ebitenutil.DebugPrintAt(screen, "AI", centerX+40, headerY)

	lineY := float32(headerY + 18)
	vector.StrokeLine(screen, float32(centerX-160), lineY, float32(centerX+140), lineY, 1, color.RGBA{255, 255, 255, 255}, false)

	for i, row := range s.rows {
		entryY := startY + 25 + i*20
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", row.Lap), centerX-150, entryY)
		ebitenutil.DebugPrintAt(screen, row.PlayerTime, centerX-80, entryY)
		ebitenutil.DebugPrintAt(screen, row.AITime, centerX+40, entryY)
	}

	totalY := startY + 35 + len(s.rows)*20
	totals := fmt.Sprintf("Total  %s    %s",
		race.FormatLapTime(s.result.Player.TotalTime),
		race.FormatLapTime(s.result.AI.TotalTime))
	ebitenutil.DebugPrintAt(screen, totals, centerX-150, totalY)

	var instructions []string
	instructions = append(instructions, "Press R to race again")
	if !IsWASM() {
		instructions = append(instructions, "ESC to quit")
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(instructions, " • "), centerX-100, bounds.Dy()-50)
}
