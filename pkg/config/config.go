package config

import (
	"time"

	"github.com/mpihlak/goracer/pkg/geometry"
	"github.com/mpihlak/goracer/pkg/race"
	"github.com/mpihlak/goracer/pkg/traction"
)

// this holds the resolved configuration values from CLI
var (
	LogLevel  string // sets the log level (zap log level values)
	LogFormat string // text vs json
	EnvFile   string // optional dotenv file

	Cols              int           // track width in tiles
	Rows              int           // track height in tiles
	RingThickness     int           // ring thickness in tiles
	TileSize          float64       // tile edge in pixels
	CarSize           float64       // car edge in pixels
	TopSpeed          float64       // player top speed in pixels per second
	LapTarget         int           // laps to win
	RoadGrip          float64       // velocity multiplier on road tiles
	OffRoadGrip       float64       // velocity multiplier off the road
	CountdownInterval time.Duration // time between countdown ticks
	MaxFrameStep      time.Duration // upper bound of a frame delta
)

// RaceSettings builds validated race settings from the resolved values.
func RaceSettings() (race.Settings, error) {
	s := race.Settings{
		Cols:              Cols,
		Rows:              Rows,
		RingThickness:     RingThickness,
		TileSize:          TileSize,
		CarSize:           geometry.Size{W: CarSize, H: CarSize},
		TopSpeed:          TopSpeed,
		LapTarget:         LapTarget,
		Traction:          traction.Table{Road: RoadGrip, OffRoad: OffRoadGrip},
		CountdownInterval: CountdownInterval,
		MaxFrameStep:      MaxFrameStep,
	}
	if err := s.Validate(); err != nil {
		return race.Settings{}, err
	}
	return s, nil
}

// ResetRaceDefaults sets the race values to race.DefaultSettings.
func ResetRaceDefaults() {
	d := race.DefaultSettings()
	Cols = d.Cols
	Rows = d.Rows
	RingThickness = d.RingThickness
	TileSize = d.TileSize
	CarSize = d.CarSize.W
	TopSpeed = d.TopSpeed
	LapTarget = d.LapTarget
	RoadGrip = d.Traction.Road
	OffRoadGrip = d.Traction.OffRoad
	CountdownInterval = d.CountdownInterval
	MaxFrameStep = d.MaxFrameStep
}
