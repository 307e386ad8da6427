package spectate

import (
	"github.com/samber/lo"

	"github.com/mpihlak/goracer/pkg/game/objects"
	"github.com/mpihlak/goracer/pkg/game/world"
	"github.com/mpihlak/goracer/pkg/race"
)

const (
	TypeSnapshot = "snapshot"
	TypeResult   = "result"
)

// Message is the envelope of everything sent to a spectator.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type CarState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Heading float64 `json:"heading"` // radians
	Speed   float64 `json:"speed"`
	Laps    int     `json:"laps"`
}

// Snapshot is the race state of one frame.
type Snapshot struct {
	RaceID      string   `json:"race_id"`
	Frame       int      `json:"frame"`
	Phase       string   `json:"phase"`
	Countdown   string   `json:"countdown,omitempty"`
	Elapsed     float64  `json:"elapsed"`
	Player      CarState `json:"player"`
	AI          CarState `json:"ai"`
	Checkpoints []bool   `json:"checkpoints"` // visibility, TL TR BR BL
}

func carState(c *objects.Car, laps int) CarState {
	return CarState{
		X:       c.Pos.X,
		Y:       c.Pos.Y,
		Width:   c.Size.W,
		Height:  c.Size.H,
		Heading: c.LastHeading,
		Speed:   c.Speed(),
		Laps:    laps,
	}
}

func NewSnapshot(r *race.Race, frame int) Snapshot {
	s := Snapshot{
		RaceID:  r.ID.String(),
		Frame:   frame,
		Phase:   r.Phase().String(),
		Elapsed: r.Elapsed(),
		Player:  carState(r.Player.Car, r.Player.Laps),
		AI:      carState(r.AI.Car, r.AI.Laps),
		Checkpoints: lo.Map(r.Arena.Checkpoints, func(cp world.Checkpoint, _ int) bool {
			return cp.Visible
		}),
	}
	if r.Phase() == race.Countdown {
		s.Countdown = r.CountdownLabel()
	}
	return s
}
