package dashboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpihlak/goracer/pkg/geometry"
	"github.com/mpihlak/goracer/pkg/race"
)

// Helper to create test dashboard
func createTestDashboard(t *testing.T) *Dashboard {
	t.Helper()
	r, err := race.New(race.DefaultSettings())
	require.NoError(t, err)
	return &Dashboard{Race: r}
}

func TestCurrentLap(t *testing.T) {
	dash := createTestDashboard(t)

	assert.Equal(t, 1, dash.CurrentLap())

	dash.Race.Player.Laps = 2
	assert.Equal(t, 3, dash.CurrentLap())

	// Never beyond the target
	dash.Race.Player.Laps = 3
	assert.Equal(t, 3, dash.CurrentLap())
}

func TestCheckpointsCollected(t *testing.T) {
	dash := createTestDashboard(t)
	assert.Equal(t, 0, dash.CheckpointsCollected())

	dash.Race.Arena.Checkpoints[1].Visible = false
	dash.Race.Arena.Checkpoints[3].Visible = false

	assert.Equal(t, 2, dash.CheckpointsCollected())
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name    string
		radians float64
		want    float64
	}{
		{"up", -math.Pi / 2, 0},
		{"right", 0, 90},
		{"down", math.Pi / 2, 180},
		{"left", math.Pi, 270},
		{"up left", -3 * math.Pi / 4, 315},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Heading(tt.radians), 1e-9)
		})
	}
}

func TestLines_Fresh(t *testing.T) {
	dash := createTestDashboard(t)

	lines := dash.Lines()

	assert.Equal(t, []string{
		"Lap: 1/3",
		"Lap time: 00:00.00",
		"Best lap: --:--.--",
		"Checkpoints: 0/4",
		"Speed: 0 px/s",
		"Heading: 90°",
		"AI lap: 0/3",
		"Race time: 00:00.00",
	}, lines)
}

func TestLines_DuringRace(t *testing.T) {
	dash := createTestDashboard(t)
	p := dash.Race.Player
	p.Laps = 1
	p.LapTimes = []float64{14.25}
	p.LapElapsed = 3.5
	p.Car.Vel = geometry.Vec{X: 0, Y: -180}
	p.Car.LastHeading = p.Car.Vel.Angle()

	lines := dash.Lines()

	assert.Equal(t, "Lap: 2/3", lines[0])
	assert.Equal(t, "Lap time: 00:03.50", lines[1])
	assert.Equal(t, "Best lap: 00:14.25", lines[2])
	assert.Equal(t, "Speed: 180 px/s", lines[4])
	assert.Equal(t, "Heading: 0°", lines[5])
}
