package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mpihlak/goracer/log"
	playCmd "github.com/mpihlak/goracer/pkg/cmd/play"
	serveCmd "github.com/mpihlak/goracer/pkg/cmd/serve"
	simCmd "github.com/mpihlak/goracer/pkg/cmd/sim"
	trackCmd "github.com/mpihlak/goracer/pkg/cmd/track"
	"github.com/mpihlak/goracer/pkg/config"
	"github.com/mpihlak/goracer/pkg/race"
)

const envPrefix = "RACER"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Top-down racing against an AI car",
	Long: `Race a car around a rectangular ring track against an AI opponent.
Without a sub command the game window is opened.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(config.LogLevel, config.LogFormat)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.racer.yml)")
	rootCmd.PersistentFlags().StringVar(&config.EnvFile, "env-file", "",
		"dotenv file to load (default is ./.env when present)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", "text",
		"controls the log output format (json, text)")

	addRaceFlags(rootCmd.PersistentFlags())

	// add commands here
	rootCmd.AddCommand(playCmd.NewPlayCmd())
	rootCmd.AddCommand(simCmd.NewSimCmd())
	rootCmd.AddCommand(serveCmd.NewServeCmd())
	rootCmd.AddCommand(trackCmd.NewTrackCmd())
}

func addRaceFlags(flags *pflag.FlagSet) {
	d := race.DefaultSettings()
	// play sizes the grid from its window, these only bind sim, serve and track
	flags.IntVar(&config.Cols, "cols", d.Cols,
		"track width in tiles (ignored by play, which fits the track to the window)")
	flags.IntVar(&config.Rows, "rows", d.Rows,
		"track height in tiles (ignored by play, which fits the track to the window)")
	flags.IntVar(&config.RingThickness, "ring-thickness", d.RingThickness,
		"width of the road ring in tiles (play thins it to fit small windows)")
	flags.Float64Var(&config.TileSize, "tile-size", d.TileSize, "tile edge in pixels")
	flags.Float64Var(&config.CarSize, "car-size", d.CarSize.W, "car edge in pixels")
	flags.Float64Var(&config.TopSpeed, "top-speed", d.TopSpeed,
		"player top speed in pixels per second (the AI drives at 90%)")
	flags.IntVar(&config.LapTarget, "laps", d.LapTarget, "laps needed to win")
	flags.Float64Var(&config.RoadGrip, "road-grip", d.Traction.Road,
		"velocity multiplier on the road")
	flags.Float64Var(&config.OffRoadGrip, "offroad-grip", d.Traction.OffRoad,
		"velocity multiplier off the road")
	flags.DurationVar(&config.CountdownInterval, "countdown-interval", d.CountdownInterval,
		"time between countdown ticks")
	flags.DurationVar(&config.MaxFrameStep, "max-frame-step", d.MaxFrameStep,
		"upper bound of the simulated time of one frame")
}

// loadEnvFile reads an optional dotenv file into the environment before
// viper looks at it. A missing default .env is not an error.
func loadEnvFile() {
	if config.EnvFile == "" {
		_ = godotenv.Load()
		return
	}
	if err := godotenv.Load(config.EnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Could not load env file %s: %v\n", config.EnvFile, err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	loadEnvFile()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".racer" (without extension).
		// The browser build has no home directory.
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".racer")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --ring-thickness to RACER_RING_THICKNESS
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
