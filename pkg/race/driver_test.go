package race

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	c       chan time.Time
	stopped int
}

func (f *fakeTicker) Chan() <-chan time.Time {
	return f.c
}

func (f *fakeTicker) Stop() {
	f.stopped++
}

func withFakeTicker(f *fakeTicker) DriverOption {
	return WithTicker(func(time.Duration) Ticker { return f })
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestFrame_FirstFrameHasNoDelta(t *testing.T) {
	r := createRunningRace(t)
	d := NewDriver(r)

	assert.True(t, d.Frame(t0))
	assert.Equal(t, 0.0, r.Elapsed())
	assert.Equal(t, 1, d.Frames())
}

func TestFrame_DeltaClamped(t *testing.T) {
	r := createRunningRace(t)
	d := NewDriver(r)

	d.Frame(t0)
	d.Frame(t0.Add(5 * time.Second))

	assert.InDelta(t, 0.1, r.Elapsed(), 1e-9)
}

func TestFrame_DeltaBelowLimit(t *testing.T) {
	r := createRunningRace(t)
	d := NewDriver(r)

	d.Frame(t0)
	d.Frame(t0.Add(16 * time.Millisecond))
	d.Frame(t0.Add(32 * time.Millisecond))

	assert.InDelta(t, 0.032, r.Elapsed(), 1e-9)
}

func TestFrame_ClockGoingBackwards(t *testing.T) {
	r := createRunningRace(t)
	d := NewDriver(r)

	d.Frame(t0)
	d.Frame(t0.Add(-time.Second))

	assert.Equal(t, 0.0, r.Elapsed())
}

func TestFrame_NoStepBeforeRunning(t *testing.T) {
	r := createTestRace(t)
	d := NewDriver(r)

	assert.True(t, d.Frame(t0))
	assert.True(t, d.Frame(t0.Add(50*time.Millisecond)))
	assert.Equal(t, NotStarted, r.Phase())
	assert.Equal(t, 0.0, r.Elapsed())
	assert.Equal(t, 2, d.Frames())
}

func TestFrame_StopsWhenPlayerWins(t *testing.T) {
	r := createRunningRace(t)
	d := NewDriver(r)
	r.Player.Laps = 3

	assert.False(t, d.Frame(t0))
	assert.Equal(t, PlayerWon, r.Phase())

	// No further frames are simulated
	frames := d.Frames()
	assert.False(t, d.Frame(t0.Add(time.Second)))
	assert.Equal(t, frames, d.Frames())
}

func TestFrame_Hook(t *testing.T) {
	r := createRunningRace(t)
	var phases []Phase
	d := NewDriver(r, WithFrameHook(func(r *Race) {
		phases = append(phases, r.Phase())
	}))

	d.Frame(t0)
	r.AI.Laps = 3
	d.Frame(t0.Add(10 * time.Millisecond))

	assert.Equal(t, []Phase{Running, AIWon}, phases)
}

func TestPoll_Countdown(t *testing.T) {
	r := createTestRace(t)
	ticker := &fakeTicker{c: make(chan time.Time, 1)}
	d := NewDriver(r, withFakeTicker(ticker))

	// Nothing to arm before the race begins
	d.Poll(t0)
	assert.Nil(t, d.countdown)

	r.Begin()
	labels := []string{r.CountdownLabel()}
	for i := 0; i < 3; i++ {
		assert.Equal(t, Countdown, r.Phase())
		ticker.c <- t0
		d.Poll(t0)
		labels = append(labels, r.CountdownLabel())
	}

	assert.Equal(t, []string{"3", "2", "1", "START"}, labels)
	assert.Equal(t, Running, r.Phase())
	assert.Equal(t, 1, ticker.stopped, "ticker cancelled after the third tick")

	// Without a pending tick Poll just renders a frame
	assert.True(t, d.Poll(t0.Add(time.Second)))
}

func TestRun_FullRace(t *testing.T) {
	r := createTestRace(t)
	ticker := &fakeTicker{c: make(chan time.Time)}
	d := NewDriver(r,
		withFakeTicker(ticker),
		WithFrameHook(func(r *Race) {
			if r.Phase() == Running {
				r.Player.Laps = r.Settings.LapTarget
			}
		}))
	r.Begin()

	frames := make(chan time.Time)
	done := make(chan error, 1)
	go func() {
		done <- d.Run(context.Background(), frames)
	}()

	for i := 0; i < 3; i++ {
		ticker.c <- t0
	}

	now := t0
	var err error
loop:
	for {
		now = now.Add(16 * time.Millisecond)
		select {
		case frames <- now:
		case err = <-done:
			break loop
		}
	}

	require.NoError(t, err)
	assert.Equal(t, PlayerWon, r.Phase())
	assert.Equal(t, 2, d.Frames())
	assert.GreaterOrEqual(t, ticker.stopped, 1)
}

func TestRun_ContextCancelled(t *testing.T) {
	r := createTestRace(t)
	d := NewDriver(r)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, make(chan time.Time))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_FramesClosed(t *testing.T) {
	r := createRunningRace(t)
	d := NewDriver(r)
	frames := make(chan time.Time, 2)
	frames <- t0
	frames <- t0.Add(10 * time.Millisecond)
	close(frames)

	err := d.Run(context.Background(), frames)

	assert.NoError(t, err)
	assert.Equal(t, 2, d.Frames())
	assert.Equal(t, Running, r.Phase())
}

func TestRunFixed_FrameLimit(t *testing.T) {
	r := createTestRace(t)

	n, err := NewDriver(r).RunFixed(time.Second/60, 100)

	assert.ErrorIs(t, err, ErrFrameLimit)
	assert.Equal(t, 100, n)
	assert.Equal(t, NotStarted, r.Phase())
}

func TestRunFixed_CountdownTiming(t *testing.T) {
	r := createTestRace(t)
	r.Begin()
	d := NewDriver(r)

	// 2.5 seconds of countdown frames at 10 Hz
	_, err := d.RunFixed(100*time.Millisecond, 25)
	assert.ErrorIs(t, err, ErrFrameLimit)
	assert.Equal(t, Countdown, r.Phase())
	assert.Equal(t, "1", r.CountdownLabel())

	_, err = d.RunFixed(100*time.Millisecond, 10)
	assert.ErrorIs(t, err, ErrFrameLimit)
	assert.Equal(t, Running, r.Phase())
	assert.Greater(t, r.Elapsed(), 0.0)
}
