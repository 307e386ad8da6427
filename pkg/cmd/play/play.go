package play

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/mpihlak/goracer/log"
	"github.com/mpihlak/goracer/pkg/config"
	"github.com/mpihlak/goracer/pkg/game"
)

var (
	windowWidth  = game.ScreenWidth
	windowHeight = game.ScreenHeight
)

func NewPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "opens the game window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run()
		},
	}

	cmd.Flags().IntVar(&windowWidth, "width", game.ScreenWidth,
		"initial window width, the track is sized to fit it")
	cmd.Flags().IntVar(&windowHeight, "height", game.ScreenHeight,
		"initial window height, the track is sized to fit it")

	return cmd
}

// Run opens the window and blocks until the game is closed.
func Run() error {
	s, err := config.RaceSettings()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Racer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info("Starting game",
		log.Int("width", windowWidth),
		log.Int("height", windowHeight),
		log.Int("laps", s.LapTarget))
	if err := ebiten.RunGame(game.NewGame(s)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
