package race

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpihlak/goracer/pkg/game/objects"
	"github.com/mpihlak/goracer/pkg/geometry"
)

// Helper function to create a race on the default 40x30 track
func createTestRace(t *testing.T, opts ...Option) *Race {
	t.Helper()
	r, err := New(DefaultSettings(), opts...)
	require.NoError(t, err)
	return r
}

// createRunningRace skips the countdown
func createRunningRace(t *testing.T, opts ...Option) *Race {
	t.Helper()
	r := createTestRace(t, opts...)
	require.True(t, r.Begin())
	for !r.CountdownTick() {
	}
	require.Equal(t, Running, r.Phase())
	return r
}

// moveCenterTo teleports a car so that its centre is at p
func moveCenterTo(c *objects.Car, p geometry.Point) {
	c.Pos = geometry.Point{X: p.X - c.Size.W/2, Y: p.Y - c.Size.H/2}
}

func TestNew_StartGrid(t *testing.T) {
	r := createTestRace(t)

	assert.Equal(t, NotStarted, r.Phase())
	assert.Equal(t, geometry.Point{X: 60, Y: 320}, r.Player.Car.Pos)
	assert.Equal(t, geometry.Point{X: 180, Y: 320}, r.AI.Car.Pos)
	assert.Equal(t, geometry.Size{W: 800, H: 600}, r.Bounds())
	assert.Equal(t, 4, r.Arena.Checkpoints.VisibleCount())
	assert.Equal(t, 0, r.Pilot().Index)
	assert.InDelta(t, 180, r.Pilot().Speed, 1e-9)
}

func TestNew_InvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.RingThickness = 20

	_, err := New(s)

	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestStep_FrozenBeforeRunning(t *testing.T) {
	r := createTestRace(t)
	r.SetInput(objects.Down, true)
	start := r.Player.Car.Pos

	r.Step(0.1)
	assert.Equal(t, start, r.Player.Car.Pos, "not started")

	r.Begin()
	r.Step(0.1)
	assert.Equal(t, start, r.Player.Car.Pos, "countdown")
	assert.Equal(t, 0.0, r.Elapsed())
}

func TestStep_PlayerInput(t *testing.T) {
	r := createRunningRace(t)

	r.SetInput(objects.Down, true)
	r.Step(0.1)

	// Road grip 0.9 on the left straight
	assert.InDelta(t, 320+200*0.9*0.1, r.Player.Car.Pos.Y, 1e-9)

	r.SetInput(objects.Down, false)
	r.Step(0.1)
	assert.True(t, r.Player.Car.Vel.IsZero())
	assert.InDelta(t, 0.2, r.Elapsed(), 1e-9)
}

func TestStep_InputIgnoredWithAutopilot(t *testing.T) {
	r := createRunningRace(t, WithAutopilot())

	r.SetInput(objects.Down, true)
	r.Step(0.1)

	assert.Less(t, r.Player.Car.Pos.Y, 320.0, "autopilot heads for the first checkpoint")
}

func TestSetBounds(t *testing.T) {
	r := createRunningRace(t)
	r.SetBounds(geometry.Size{W: 100, H: 100})

	r.SetInput(objects.Down, true)
	r.Step(0.1)

	assert.Equal(t, 80.0, r.Player.Car.Pos.Y)
}

func TestCheckFinish_PlayerReachesTarget(t *testing.T) {
	r := createRunningRace(t)
	r.Player.Laps = 3

	r.Step(1.0 / 60)

	assert.Equal(t, PlayerWon, r.Phase())
}

func TestCheckFinish_AIReachesTarget(t *testing.T) {
	r := createRunningRace(t)
	r.AI.Laps = 3

	r.Step(1.0 / 60)

	assert.Equal(t, AIWon, r.Phase())
}

func TestCheckFinish_TieGoesToPlayer(t *testing.T) {
	r := createRunningRace(t)
	r.Player.Laps = 3
	r.AI.Laps = 3

	r.Step(1.0 / 60)

	assert.Equal(t, PlayerWon, r.Phase())
}

func TestCheckFinish_BelowTarget(t *testing.T) {
	r := createRunningRace(t)
	r.Player.Laps = 2
	r.AI.Laps = 2

	r.Step(1.0 / 60)

	assert.Equal(t, Running, r.Phase())
}

func TestStep_FrozenAfterFinish(t *testing.T) {
	r := createRunningRace(t)
	r.Player.Laps = 3
	r.Step(1.0 / 60)
	require.Equal(t, PlayerWon, r.Phase())

	ai := r.AI.Car.Pos
	elapsed := r.Elapsed()
	r.Step(1)

	assert.Equal(t, ai, r.AI.Car.Pos)
	assert.Equal(t, elapsed, r.Elapsed())
}

func TestBegin_OnlyOnce(t *testing.T) {
	r := createTestRace(t)

	assert.True(t, r.Begin())
	assert.Equal(t, Countdown, r.Phase())
	assert.False(t, r.Begin())
	assert.Equal(t, Countdown, r.Phase())
}

func TestCountdown_Sequence(t *testing.T) {
	r := createTestRace(t)

	assert.False(t, r.CountdownTick(), "no countdown before the race begins")
	assert.Equal(t, NotStarted, r.Phase())

	r.Begin()
	assert.Equal(t, "3", r.CountdownLabel())

	assert.False(t, r.CountdownTick())
	assert.Equal(t, "2", r.CountdownLabel())
	assert.Equal(t, Countdown, r.Phase())

	assert.False(t, r.CountdownTick())
	assert.Equal(t, "1", r.CountdownLabel())

	assert.True(t, r.CountdownTick())
	assert.Equal(t, "START", r.CountdownLabel())
	assert.Equal(t, Running, r.Phase())

	// Late ticks do nothing but keep reporting done
	assert.True(t, r.CountdownTick())
	assert.Equal(t, Running, r.Phase())
}

func TestSimulation_AutopilotBeatsAI(t *testing.T) {
	r := createTestRace(t, WithAutopilot())
	r.Begin()

	_, err := NewDriver(r).RunFixed(time.Second/60, 20000)

	require.NoError(t, err)
	assert.Equal(t, PlayerWon, r.Phase())
	assert.Equal(t, 3, r.Player.Laps)
	assert.Len(t, r.Player.LapTimes, 3)
	assert.Less(t, r.AI.Laps, 3)
}

func TestSimulation_IdlePlayerLoses(t *testing.T) {
	r := createTestRace(t)
	r.Begin()

	_, err := NewDriver(r).RunFixed(time.Second/60, 20000)

	require.NoError(t, err)
	assert.Equal(t, AIWon, r.Phase())
	assert.Equal(t, 3, r.AI.Laps)
	assert.Len(t, r.AI.LapTimes, 3)
	assert.Equal(t, 0, r.Player.Laps)
	for i, lap := range r.AI.LapTimes {
		assert.Greater(t, lap, 5.0, "lap %d", i)
	}
}

func TestSimulation_LargeFrameSteps(t *testing.T) {
	for _, step := range []time.Duration{50 * time.Millisecond, 100 * time.Millisecond} {
		t.Run(step.String(), func(t *testing.T) {
			r := createTestRace(t)
			r.Begin()

			_, err := NewDriver(r).RunFixed(step, 20000)

			require.NoError(t, err)
			assert.Equal(t, AIWon, r.Phase())
			assert.Equal(t, 3, r.AI.Laps)
		})
	}
}

func TestSimulation_FastCars(t *testing.T) {
	s := DefaultSettings()
	s.TopSpeed = 600
	r, err := New(s, WithAutopilot())
	require.NoError(t, err)
	r.Begin()

	_, err = NewDriver(r).RunFixed(time.Second/60, 20000)

	require.NoError(t, err)
	assert.Equal(t, PlayerWon, r.Phase())
}
