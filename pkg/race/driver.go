package race

import (
	"context"
	"errors"
	"time"
)

var ErrFrameLimit = errors.New("race did not finish within the frame limit")

// Ticker is the part of time.Ticker the driver needs.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) Chan() <-chan time.Time {
	return t.C
}

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Driver runs the frame loop of a race: it computes the clamped frame
// delta, feeds the countdown ticks and steps the simulation until the race
// reaches a terminal phase.
type Driver struct {
	race      *Race
	maxStep   time.Duration
	newTicker TickerFunc
	hook      func(r *Race)

	started    bool
	last       time.Time
	frames     int
	countdown  Ticker
	countdownC <-chan time.Time
}

type DriverOption func(d *Driver)

// WithFrameHook is called after every frame with the race state.
func WithFrameHook(fn func(r *Race)) DriverOption {
	return func(d *Driver) {
		d.hook = fn
	}
}

// WithTicker replaces the countdown ticker factory.
func WithTicker(fn TickerFunc) DriverOption {
	return func(d *Driver) {
		d.newTicker = fn
	}
}

func NewDriver(r *Race, opts ...DriverOption) *Driver {
	d := &Driver{
		race:      r,
		maxStep:   r.Settings.MaxFrameStep,
		newTicker: newTimeTicker,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Race() *Race {
	return d.race
}

// Frames is the number of frames processed so far.
func (d *Driver) Frames() int {
	return d.frames
}

// delta returns the time since the previous frame, clamped to
// [0, maxStep]. The first frame has no delta.
func (d *Driver) delta(now time.Time) time.Duration {
	if !d.started {
		d.started = true
		d.last = now
		return 0
	}
	dt := now.Sub(d.last)
	d.last = now
	if dt < 0 {
		return 0
	}
	if dt > d.maxStep {
		return d.maxStep
	}
	return dt
}

// Frame processes one frame at wall-clock time now. It returns false once
// the race is over and no further frames should be scheduled.
func (d *Driver) Frame(now time.Time) bool {
	if d.race.Phase().Terminal() {
		return false
	}
	dt := d.delta(now)
	if d.race.Phase() == Running {
		d.race.Step(dt.Seconds())
	}
	d.frames++
	if d.hook != nil {
		d.hook(d.race)
	}
	return !d.race.Phase().Terminal()
}

// armCountdown starts the countdown ticker once the race enters the
// countdown phase.
func (d *Driver) armCountdown() {
	if d.countdown == nil && d.race.Phase() == Countdown {
		d.countdown = d.newTicker(d.race.Settings.CountdownInterval)
		d.countdownC = d.countdown.Chan()
	}
}

func (d *Driver) tickCountdown() {
	if d.race.CountdownTick() {
		d.countdown.Stop()
		d.countdownC = nil
	}
}

// Poll is the non-blocking variant of Run for hosts that own the frame
// loop themselves: it consumes a pending countdown tick, if any, and
// processes one frame.
func (d *Driver) Poll(now time.Time) bool {
	d.armCountdown()
	if d.countdownC != nil {
		select {
		case <-d.countdownC:
			d.tickCountdown()
		default:
		}
	}
	return d.Frame(now)
}

// Run loops until the race is over, the frame channel is closed or ctx is
// done. Countdown ticks and frames are handled on the calling goroutine.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Time) error {
	defer d.Stop()
	for {
		d.armCountdown()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.countdownC:
			d.tickCountdown()
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			if !d.Frame(now) {
				return nil
			}
		}
	}
}

// RunFixed runs the race on a synthetic clock advancing by step per frame.
// Countdown ticks fire every CountdownInterval of synthetic time. The race
// must already have begun.
func (d *Driver) RunFixed(step time.Duration, maxFrames int) (int, error) {
	now := time.Time{}
	interval := d.race.Settings.CountdownInterval
	var sinceTick time.Duration

	d.Frame(now)
	for i := 1; i <= maxFrames; i++ {
		now = now.Add(step)
		if d.race.Phase() == Countdown {
			sinceTick += step
			for sinceTick >= interval && d.race.Phase() == Countdown {
				sinceTick -= interval
				d.race.CountdownTick()
			}
		}
		if !d.Frame(now) {
			return i, nil
		}
	}
	return maxFrames, ErrFrameLimit
}

// Stop releases the countdown ticker.
func (d *Driver) Stop() {
	if d.countdown != nil {
		d.countdown.Stop()
		d.countdownC = nil
	}
}
