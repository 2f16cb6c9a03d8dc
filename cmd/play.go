package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/olivier-w/epicycles/internal"
	"github.com/olivier-w/epicycles/internal/media"
	"github.com/olivier-w/epicycles/internal/player"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// playCmd plays a sketch as an XY oscilloscope signal without the canvas.
var playCmd = &cobra.Command{
	Use:   "play FILE",
	Short: "Play a sketch as stereo XY audio.",
	Long: `Play the reconstruction of a sketch as a stereo signal: the left channel
carries x and the right channel carries y. An oscilloscope in XY mode
redraws the shape.

Examples:
  # Play until interrupted
  epicycles play heart.yaml

  # Play ten seconds of a 50 component reconstruction at 110 Hz
  epicycles play heart.yaml --count 50 --loop-hz 110 --duration 10s`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := media.Load(args[0], cfg.MaxPoints)
		if err != nil {
			internal.FatalError("Cannot load sketch", err)
		}
		d, err := decompose(s.Points, cfg)
		if err != nil {
			internal.FatalError("Cannot run decomposition", err)
		}

		p, err := player.New(cfg.LoopHz, cfg.Volume)
		if err != nil {
			internal.FatalError("Cannot open audio output", err)
		}
		defer p.Close()
		if err := p.SetDecomposition(d); err != nil {
			internal.FatalError("Cannot play decomposition", err)
		}

		cmd.Printf("Playing %s: %d components at %.0f Hz\n", s.Title, len(d.Components), cfg.LoopHz)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if duration := viper.GetDuration("duration"); duration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, duration)
			defer cancel()
		}
		<-ctx.Done()
	},
}

