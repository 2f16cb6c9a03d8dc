// Package cmd defines the command-line interface for epicycles.
package cmd

import (
	"github.com/olivier-w/epicycles/internal"
	"github.com/olivier-w/epicycles/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(decomposeCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("count", "n", config.DefaultCount, "Number of epicycles to keep")
	rootCmd.PersistentFlags().Int("slider", -1, "Initial frequency slider position 0-100 (-1 derives it from --count)")
	rootCmd.PersistentFlags().Bool("normalize", true, "Resample the path by arc length before transforming")
	rootCmd.PersistentFlags().Float64("timestep", config.DefaultTimestep, "Arc length between resampled points")
	rootCmd.PersistentFlags().String("visualizer", config.DefaultVisualizer, "Initial view: epicycles or trail or spectrum")
	rootCmd.PersistentFlags().String("trace", config.DefaultTrace, "Trace mode: persist or loop")
	rootCmd.PersistentFlags().Bool("audio", false, "Play the reconstruction as an XY oscilloscope signal")
	rootCmd.PersistentFlags().Float64("loop-hz", config.DefaultLoopHz, "Traversals per second of the audio signal")
	rootCmd.PersistentFlags().Float64("volume", config.DefaultVolume, "Audio volume 0-1")
	rootCmd.PersistentFlags().Int("max-points", config.DefaultMaxPoints, "Maximum points read from an audio file")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		internal.FatalError("Error binding root flags", err)
	}

	playCmd.Flags().Duration("duration", 0, "Stop after this long (0 plays until interrupted)")
	if err := viper.BindPFlags(playCmd.Flags()); err != nil {
		internal.FatalError("Error binding play flags", err)
	}
}
