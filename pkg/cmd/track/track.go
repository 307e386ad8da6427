package track

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mpihlak/goracer/pkg/config"
	"github.com/mpihlak/goracer/pkg/game/world"
)

func NewTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "prints the generated track",
		Long: `Prints the tile grid of the generated track:
  # road, = lap line, C checkpoint, . off-road`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTrack(cmd.OutOrStdout())
		},
	}
	return cmd
}

func printTrack(w io.Writer) error {
	arena, err := world.NewArena(config.Cols, config.Rows, config.RingThickness, config.TileSize)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, arena.Track.String()); err != nil {
		return err
	}
	for i, cp := range arena.Checkpoints {
		c := cp.Center(config.TileSize)
		if _, err := fmt.Fprintf(w, "checkpoint %d: row %d col %d, centre (%.0f, %.0f)\n",
			i, cp.Row, cp.Col, c.X, c.Y); err != nil {
			return err
		}
	}
	return nil
}
