package race

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/mpihlak/goracer/log"
	"github.com/mpihlak/goracer/pkg/game/objects"
	"github.com/mpihlak/goracer/pkg/game/world"
	"github.com/mpihlak/goracer/pkg/geometry"
)

// Racer is one car in the race together with its lap bookkeeping.
type Racer struct {
	Name       string
	Car        *objects.Car
	Steering   objects.Steering
	Laps       int
	LapTimes   []float64 // seconds, in completion order
	LapElapsed float64   // seconds spent in the current lap
}

func (r *Racer) completeLap() {
	r.Laps++
	r.LapTimes = append(r.LapTimes, r.LapElapsed)
	log.Debug("lap completed",
		log.String("racer", r.Name),
		log.Int("lap", r.Laps),
		log.Float64("time", r.LapElapsed))
	r.LapElapsed = 0
}

// BestLap returns the fastest completed lap.
func (r *Racer) BestLap() (float64, bool) {
	if len(r.LapTimes) == 0 {
		return 0, false
	}
	return lo.Min(r.LapTimes), true
}

// Race owns the whole simulation state: arena, both cars and the phase.
// It is not safe for concurrent use; a single driver loop owns it.
type Race struct {
	ID       uuid.UUID
	Settings Settings
	Arena    *world.Arena
	Player   *Racer
	AI       *Racer

	phase     Phase
	countdown CountdownTimer
	bounds    geometry.Size
	elapsed   float64
	input     *objects.InputSteering   // nil when the player is auto-piloted
	pilot     *objects.WaypointSteering // the AI steering
}

type Option func(r *Race)

// WithAutopilot drives the player with waypoint steering at full top speed
// instead of keyboard input.
func WithAutopilot() Option {
	return func(r *Race) {
		r.Player.Steering = &objects.WaypointSteering{
			Waypoints: r.Arena.Waypoints(),
			Speed:     r.Settings.TopSpeed,
		}
		r.input = nil
	}
}

// WithBounds sets the canvas size the cars are clamped to. Defaults to the
// track size.
func WithBounds(bounds geometry.Size) Option {
	return func(r *Race) {
		r.bounds = bounds
	}
}

// New validates the settings, generates the track and puts both cars on
// the start grid.
func New(s Settings, opts ...Option) (*Race, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	arena, err := world.NewArena(s.Cols, s.Rows, s.RingThickness, s.TileSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	playerPos, aiPos := arena.Track.StartSlots()
	input := &objects.InputSteering{TopSpeed: s.TopSpeed}
	pilot := objects.NewWaypointSteering(arena.Waypoints(), s.TopSpeed)

	r := &Race{
		ID:       uuid.New(),
		Settings: s,
		Arena:    arena,
		Player: &Racer{
			Name:     "player",
			Car:      objects.NewCar(playerPos, s.CarSize),
			Steering: input,
		},
		AI: &Racer{
			Name:     "ai",
			Car:      objects.NewCar(aiPos, s.CarSize),
			Steering: pilot,
		},
		phase:  NotStarted,
		bounds: arena.Track.PixelSize(),
		input:  input,
		pilot:  pilot,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Race) Phase() Phase {
	return r.phase
}

func (r *Race) setPhase(p Phase) {
	log.Debug("race phase",
		log.String("race", r.ID.String()),
		log.Stringer("from", r.phase),
		log.Stringer("to", p))
	r.phase = p
}

// Bounds is the canvas size the cars are clamped to.
func (r *Race) Bounds() geometry.Size {
	return r.bounds
}

// SetBounds changes the canvas size, e.g. after a window resize. The track
// is not regenerated.
func (r *Race) SetBounds(bounds geometry.Size) {
	r.bounds = bounds
}

// Elapsed is the simulated time since the race went running, in seconds.
func (r *Race) Elapsed() float64 {
	return r.elapsed
}

// Pilot is the AI waypoint steering.
func (r *Race) Pilot() *objects.WaypointSteering {
	return r.pilot
}

// SetInput sets a player direction as held or released. It is ignored when
// the player is auto-piloted.
func (r *Race) SetInput(d objects.Direction, active bool) {
	if r.input != nil {
		r.input.Controls.Set(d, active)
	}
}

// Begin starts the countdown. Only the first call has an effect.
func (r *Race) Begin() bool {
	if r.phase != NotStarted {
		return false
	}
	r.setPhase(Countdown)
	return true
}

// CountdownLabel is the text of the start countdown.
func (r *Race) CountdownLabel() string {
	return r.countdown.Label()
}

// CountdownTick advances the start countdown by one tick. It reports true
// once the countdown is over and the race is running; the caller should
// stop its ticker then.
func (r *Race) CountdownTick() bool {
	if r.phase != Countdown {
		return r.phase != NotStarted
	}
	if r.countdown.Tick() {
		r.setPhase(Running)
		return true
	}
	return false
}

// Step advances a running race by dt seconds. Other phases are frozen.
func (r *Race) Step(dt float64) {
	if r.phase != Running {
		return
	}
	if dt < 0 {
		dt = 0
	}
	r.elapsed += dt

	for _, racer := range []*Racer{r.Player, r.AI} {
		racer.LapElapsed += dt
		racer.Car.Update(dt, racer.Steering, r.Arena.Track, r.Settings.Traction, r.bounds)
	}

	r.collectCheckpoints()
	for r.AI.Laps < r.pilot.Laps {
		r.AI.completeLap()
	}
	r.checkFinish()
}

// collectCheckpoints hides every visible checkpoint the player overlaps, in
// any order. Collecting the last one completes a lap.
func (r *Race) collectCheckpoints() {
	for _, c := range r.Arena.CheckCollisions(r.Player.Car.Rect()) {
		r.Arena.Checkpoints[c.Index].Visible = false
	}
	if r.Arena.Checkpoints.AllCollected() {
		r.Player.completeLap()
		r.Arena.Checkpoints.Reset()
	}
}

// checkFinish ends the race once a racer reaches the lap target. The player
// is checked first so a tie in the same frame goes to the player.
func (r *Race) checkFinish() {
	switch {
	case r.Player.Laps >= r.Settings.LapTarget:
		r.setPhase(PlayerWon)
	case r.AI.Laps >= r.Settings.LapTarget:
		r.setPhase(AIWon)
	}
}
