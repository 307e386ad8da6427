package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mpihlak/goracer/log"
	"github.com/mpihlak/goracer/pkg/config"
	"github.com/mpihlak/goracer/pkg/race"
)

const (
	PlayerAutopilot = "autopilot"
	PlayerIdle      = "idle"
)

type Options struct {
	Player    string        // autopilot or idle
	Output    string        // yaml or json
	Step      time.Duration // simulated time per frame
	MaxFrames int
}

func NewSimCmd() *cobra.Command {
	opts := Options{}
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "runs a headless race and prints the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.RaceSettings()
			if err != nil {
				return err
			}
			return Run(cmd.OutOrStdout(), s, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Player, "player", PlayerAutopilot,
		"how the player car is driven (autopilot, idle)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "yaml",
		"result format (yaml, json)")
	cmd.Flags().DurationVar(&opts.Step, "step", time.Second/60,
		"simulated time per frame")
	cmd.Flags().IntVar(&opts.MaxFrames, "max-frames", 200_000,
		"give up after this many frames")

	return cmd
}

// Run simulates one race on a fixed step and writes its result to w.
func Run(w io.Writer, s race.Settings, opts Options) error {
	var raceOpts []race.Option
	switch opts.Player {
	case PlayerAutopilot:
		raceOpts = append(raceOpts, race.WithAutopilot())
	case PlayerIdle:
	default:
		return fmt.Errorf("unknown player mode %q", opts.Player)
	}
	if opts.Output != "yaml" && opts.Output != "json" {
		return fmt.Errorf("unknown output format %q", opts.Output)
	}

	r, err := race.New(s, raceOpts...)
	if err != nil {
		return err
	}
	r.Begin()

	start := time.Now()
	frames, err := race.NewDriver(r).RunFixed(opts.Step, opts.MaxFrames)
	if err != nil {
		return fmt.Errorf("race %s: %w", r.ID, err)
	}
	log.Debug("Simulation done",
		log.String("race", r.ID.String()),
		log.Int("frames", frames),
		log.Duration("took", time.Since(start)))

	return writeResult(w, r.Result(), opts.Output)
}

func writeResult(w io.Writer, res race.Result, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}
