package race

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// RacerResult is the lap summary of one racer.
type RacerResult struct {
	Name      string    `json:"name" yaml:"name"`
	Laps      int       `json:"laps" yaml:"laps"`
	LapTimes  []float64 `json:"lap_times" yaml:"lap_times"`
	BestLap   float64   `json:"best_lap,omitempty" yaml:"best_lap,omitempty"`
	TotalTime float64   `json:"total_time" yaml:"total_time"`
}

// Result is a snapshot of a race, usually taken once it is over.
type Result struct {
	RaceID    string      `json:"race_id" yaml:"race_id"`
	Phase     string      `json:"phase" yaml:"phase"`
	Winner    string      `json:"winner,omitempty" yaml:"winner,omitempty"`
	LapTarget int         `json:"lap_target" yaml:"lap_target"`
	Elapsed   float64     `json:"elapsed" yaml:"elapsed"`
	Player    RacerResult `json:"player" yaml:"player"`
	AI        RacerResult `json:"ai" yaml:"ai"`
}

func (r *Racer) result() RacerResult {
	best, _ := r.BestLap()
	return RacerResult{
		Name:      r.Name,
		Laps:      r.Laps,
		LapTimes:  append([]float64{}, r.LapTimes...),
		BestLap:   best,
		TotalTime: lo.Sum(r.LapTimes),
	}
}

func (r *Race) Result() Result {
	res := Result{
		RaceID:    r.ID.String(),
		Phase:     r.phase.String(),
		LapTarget: r.Settings.LapTarget,
		Elapsed:   r.elapsed,
		Player:    r.Player.result(),
		AI:        r.AI.result(),
	}
	switch r.phase {
	case PlayerWon:
		res.Winner = r.Player.Name
	case AIWon:
		res.Winner = r.AI.Name
	}
	return res
}

// FormatLapTime renders seconds as mm:ss.cc
func FormatLapTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	cs := int(math.Round(seconds * 100))
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}
