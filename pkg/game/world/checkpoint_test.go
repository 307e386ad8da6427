package world

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mpihlak/goracer/pkg/geometry"
)

func TestRingCheckpoints_Placement(t *testing.T) {
	expected := Checkpoints{
		{Row: 0, Col: 0, Width: 12, Height: 12, Visible: true},
		{Row: 0, Col: 28, Width: 12, Height: 12, Visible: true},
		{Row: 18, Col: 28, Width: 12, Height: 12, Visible: true},
		{Row: 18, Col: 0, Width: 12, Height: 12, Visible: true},
	}

	if diff := cmp.Diff(expected, RingCheckpoints(40, 30, 12)); diff != "" {
		t.Errorf("unexpected checkpoints (-want +got):\n%s", diff)
	}
}

func TestRingCheckpoints_MatchTrackTiles(t *testing.T) {
	track, err := GenerateRing(40, 30, 12, 20)
	if err != nil {
		t.Fatal(err)
	}
	for i, cp := range RingCheckpoints(40, 30, 12) {
		for row := cp.Row; row < cp.Row+cp.Height; row++ {
			for col := cp.Col; col < cp.Col+cp.Width; col++ {
				if track.At(row, col) != CheckpointTile {
					t.Fatalf("checkpoint %d covers (%d,%d) which is %v", i, row, col, track.At(row, col))
				}
			}
		}
	}
}

func TestCheckpoint_Rect(t *testing.T) {
	cp := Checkpoint{Row: 18, Col: 28, Width: 12, Height: 12}

	assert.Equal(t, geometry.Rect{X: 560, Y: 360, W: 240, H: 240}, cp.Rect(20))
	assert.Equal(t, geometry.Point{X: 680, Y: 480}, cp.Center(20))
}

func TestCheckpoints_AllCollectedAndReset(t *testing.T) {
	cs := RingCheckpoints(40, 30, 12)

	assert.False(t, cs.AllCollected())
	assert.Equal(t, 4, cs.VisibleCount())

	for i := range cs {
		cs[i].Visible = false
		if i < len(cs)-1 {
			assert.False(t, cs.AllCollected(), "collected %d of 4", i+1)
		}
	}
	assert.True(t, cs.AllCollected())
	assert.Equal(t, 0, cs.VisibleCount())

	cs.Reset()
	assert.Equal(t, 4, cs.VisibleCount())
}

func TestCheckpoints_EmptyIsNeverCollected(t *testing.T) {
	assert.False(t, Checkpoints{}.AllCollected())
}
