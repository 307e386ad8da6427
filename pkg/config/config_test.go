package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpihlak/goracer/pkg/race"
)

func TestRaceSettings_Defaults(t *testing.T) {
	ResetRaceDefaults()

	s, err := RaceSettings()

	require.NoError(t, err)
	if diff := cmp.Diff(race.DefaultSettings(), s); diff != "" {
		t.Errorf("unexpected settings (-want +got):\n%s", diff)
	}
}

func TestRaceSettings_Overrides(t *testing.T) {
	ResetRaceDefaults()
	t.Cleanup(ResetRaceDefaults)
	LapTarget = 5
	OffRoadGrip = 0.5
	CountdownInterval = 500 * time.Millisecond

	s, err := RaceSettings()

	require.NoError(t, err)
	assert.Equal(t, 5, s.LapTarget)
	assert.Equal(t, 0.5, s.Traction.OffRoad)
	assert.Equal(t, 500*time.Millisecond, s.CountdownInterval)
}

func TestRaceSettings_Invalid(t *testing.T) {
	ResetRaceDefaults()
	t.Cleanup(ResetRaceDefaults)
	RoadGrip = 0

	_, err := RaceSettings()

	assert.ErrorIs(t, err, race.ErrInvalidSettings)
}
