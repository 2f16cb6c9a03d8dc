package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olivier-w/epicycles/internal/config"
	"github.com/olivier-w/epicycles/internal/fourier"
	"github.com/olivier-w/epicycles/internal/visualizer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by the release build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &config.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &config.RawInput{}

// rootCmd draws and animates a sketch. It is also the entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "epicycles [file-or-dir]",
	Short: "Draw a closed path and watch rotating circles retrace it.",
	Long: `Epicycles decomposes a 2D path into rotating vectors with a discrete Fourier
transform and animates their chained sum in the terminal.

Draw with the mouse, or open a sketch file. Supported inputs:
- .yaml/.yml sketches saved from the canvas
- .txt/.csv files with one "x,y" point per line
- stereo .mp3/.wav/.flac/.ogg files, read as an XY oscilloscope signal

Examples:
  # Blank canvas with the built-in gallery
  epicycles

  # Browse the sketches of a directory
  epicycles ./sketches

  # Open a point file with 50 epicycles and a looping trace
  epicycles star.csv --count 50 --trace loop`,
	Version:            version,
	Args:               cobra.MaximumNArgs(1),
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runDraw(cfg)
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".epicycles")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("EPICYCLES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("count", config.DefaultCount)
	viper.SetDefault("slider", -1)
	viper.SetDefault("normalize", true)
	viper.SetDefault("timestep", config.DefaultTimestep)
	viper.SetDefault("visualizer", config.DefaultVisualizer)
	viper.SetDefault("trace", config.DefaultTrace)
	viper.SetDefault("audio", false)
	viper.SetDefault("loop-hz", config.DefaultLoopHz)
	viper.SetDefault("volume", config.DefaultVolume)
	viper.SetDefault("max-points", config.DefaultMaxPoints)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	input.Target = ""
	if len(args) == 1 {
		input.Target = args[0]
	}

	// 4. Run all validation.
	if err := config.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	applyColors(cfg.UseColors)
	return nil
}

func applyColors(enabled bool) {
	color.NoColor = !enabled || color.NoColor
	visualizer.SetColorEnabled(enabled)
}

// decompose runs the configured transform over a loaded path.
func decompose(points fourier.Path, c *config.Config) (fourier.Decomposition, error) {
	d, err := fourier.Decompose(points, c.Decomposition)
	if err != nil {
		return fourier.Decomposition{}, fmt.Errorf("cannot decompose path: %w", err)
	}
	return d, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
