package race

import (
	"errors"
	"fmt"
	"time"

	"github.com/mpihlak/goracer/pkg/geometry"
	"github.com/mpihlak/goracer/pkg/traction"
)

var ErrInvalidSettings = errors.New("invalid race settings")

// Settings holds everything needed to build a race.
type Settings struct {
	Cols          int     // track width in tiles
	Rows          int     // track height in tiles
	RingThickness int     // in tiles
	TileSize      float64 // in pixels
	CarSize       geometry.Size
	TopSpeed      float64 // player top speed, pixels per second
	LapTarget     int
	Traction      traction.Table
	// CountdownInterval is the time between countdown ticks
	CountdownInterval time.Duration
	// MaxFrameStep caps the simulated time of a single frame
	MaxFrameStep time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Cols:              40,
		Rows:              30,
		RingThickness:     12,
		TileSize:          20,
		CarSize:           geometry.Size{W: 20, H: 20},
		TopSpeed:          200,
		LapTarget:         3,
		Traction:          traction.DefaultTable,
		CountdownInterval: time.Second,
		MaxFrameStep:      100 * time.Millisecond,
	}
}

// Validate checks the values that the track generator does not.
func (s Settings) Validate() error {
	var errs []error
	if s.CarSize.W <= 0 || s.CarSize.H <= 0 {
		errs = append(errs, fmt.Errorf("car size %.1fx%.1f", s.CarSize.W, s.CarSize.H))
	}
	if s.TopSpeed <= 0 {
		errs = append(errs, fmt.Errorf("top speed %.1f", s.TopSpeed))
	}
	if s.LapTarget < 1 {
		errs = append(errs, fmt.Errorf("lap target %d", s.LapTarget))
	}
	if !s.Traction.Valid() {
		errs = append(errs, fmt.Errorf("traction %+v", s.Traction))
	}
	if s.CountdownInterval <= 0 {
		errs = append(errs, fmt.Errorf("countdown interval %s", s.CountdownInterval))
	}
	if s.MaxFrameStep <= 0 {
		errs = append(errs, fmt.Errorf("max frame step %s", s.MaxFrameStep))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
	}
	return nil
}
