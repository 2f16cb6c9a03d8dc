package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/olivier-w/epicycles/internal/fourier"
)

// Default values for configuration.
const (
	DefaultCount      = fourier.DefaultCount
	DefaultTimestep   = fourier.DefaultTimestep
	DefaultVisualizer = "epicycles"
	DefaultTrace      = "persist"
	DefaultLoopHz     = 55.0
	DefaultVolume     = 0.6
	DefaultMaxPoints  = 2048
	MaxCount          = 1000
)

// ValidVisualizers lists the accepted visualizer names.
var ValidVisualizers = map[string]struct{}{
	"epicycles": {},
	"trail":     {},
	"spectrum":  {},
}

// ValidTraceModes lists the accepted trace modes.
var ValidTraceModes = map[string]struct{}{
	"persist": {},
	"loop":    {},
}

// RawInput holds the unvalidated configuration from all sources (file, env, flags).
// Viper unmarshals into this struct.
type RawInput struct {
	// Set manually from positional args, so no tag.
	Target string

	Count      int     `mapstructure:"count"`
	Slider     int     `mapstructure:"slider"`
	Normalize  bool    `mapstructure:"normalize"`
	Timestep   float64 `mapstructure:"timestep"`
	Visualizer string  `mapstructure:"visualizer"`
	Trace      string  `mapstructure:"trace"`
	Audio      bool    `mapstructure:"audio"`
	LoopHz     float64 `mapstructure:"loop-hz"`
	Volume     float64 `mapstructure:"volume"`
	MaxPoints  int     `mapstructure:"max-points"`
	Color      string  `mapstructure:"color"`
}

// Config is the final, validated configuration.
type Config struct {
	Target string

	// Decomposition holds the options handed to fourier.Decompose.
	Decomposition fourier.Options
	// Slider is the initial frequency slider position in [0, 100], or -1 to
	// derive it from the count.
	Slider int

	Visualizer string
	Trace      string

	Audio     bool
	LoopHz    float64
	Volume    float64
	MaxPoints int

	UseColors bool
}

// ProcessAndValidate checks input and populates cfg.
func ProcessAndValidate(cfg *Config, input *RawInput) error {
	cfg.Target = input.Target
	cfg.Audio = input.Audio

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Count < 0 || input.Count > MaxCount {
		return fmt.Errorf("count must be between 0 and %d (received %d)", MaxCount, input.Count)
	}
	if !(input.Timestep > 0) || math.IsInf(input.Timestep, 0) {
		return fmt.Errorf("timestep must be a finite number greater than 0 (received %v)", input.Timestep)
	}
	cfg.Decomposition = fourier.Options{
		Count:     input.Count,
		Normalize: input.Normalize,
		Timestep:  input.Timestep,
	}

	switch {
	case input.Slider == -1:
		cfg.Slider = -1
	case input.Slider < 0 || input.Slider > 100:
		return fmt.Errorf("slider must be between 0 and 100 (received %d)", input.Slider)
	default:
		cfg.Slider = input.Slider
	}

	cfg.Visualizer = strings.ToLower(input.Visualizer)
	if _, ok := ValidVisualizers[cfg.Visualizer]; !ok {
		return fmt.Errorf("invalid visualizer '%s'. must be epicycles, trail, spectrum", input.Visualizer)
	}

	cfg.Trace = strings.ToLower(input.Trace)
	if _, ok := ValidTraceModes[cfg.Trace]; !ok {
		return fmt.Errorf("invalid trace mode '%s'. must be persist, loop", input.Trace)
	}

	if !(input.LoopHz > 0) || input.LoopHz > 2000 {
		return fmt.Errorf("loop-hz must be greater than 0 and at most 2000 (received %v)", input.LoopHz)
	}
	cfg.LoopHz = input.LoopHz

	if input.Volume < 0 || input.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1 (received %v)", input.Volume)
	}
	cfg.Volume = input.Volume

	if input.MaxPoints < 2 {
		return fmt.Errorf("max-points must be at least 2 (received %d)", input.MaxPoints)
	}
	cfg.MaxPoints = input.MaxPoints

	return nil
}

// ParseBoolString parses yes/no style strings.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
