package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olivier-w/epicycles/internal"
	"github.com/olivier-w/epicycles/internal/fourier"
	"github.com/olivier-w/epicycles/internal/media"
	"github.com/olivier-w/epicycles/internal/util"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// decomposeCmd prints the ranked components of a sketch.
var decomposeCmd = &cobra.Command{
	Use:   "decompose FILE",
	Short: "Print the epicycles of a sketch as a table.",
	Long: `Decompose a sketch file and print its components, largest first.

Each row is one rotating vector: the DFT bin it came from, the signed number
of turns per traversal, its length, its starting angle and its angular speed.

Examples:
  # Top 10 components of a point file
  epicycles decompose star.csv

  # Every component of the raw points, without resampling
  epicycles decompose star.csv --count 1000 --normalize=false`,
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
		if d.Empty() {
			internal.Warningf("%s produced no components", s.Title)
		}
		if err := writeComponentTable(cmd.OutOrStdout(), s.Title, d, cfg.UseColors); err != nil {
			internal.FatalError("Cannot write table", err)
		}
	},
}

// writeComponentTable renders d as a table followed by a summary line.
func writeComponentTable(w io.Writer, title string, d fourier.Decomposition, useColors bool) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Rank", "Bin", "Cycles", "Amplitude", "Phase", "Frequency"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	dc := fmt.Sprint
	if useColors {
		dc = color.New(color.FgYellow).SprintFunc()
	}

	var data [][]string
	for i, c := range d.Components {
		cycles := strconv.Itoa(c.Cycles())
		if c.Cycles() == 0 {
			cycles = dc("0 (DC)")
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(c.Bin),
			cycles,
			fmt.Sprintf("%.4f", c.Amplitude),
			fmt.Sprintf("%+.4f", c.Phase),
			fmt.Sprintf("%+.4f", c.Frequency),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d components from %d samples, length %s\n",
		title, len(d.Components), d.Samples, util.FormatLength(d.Length))
	return err
}
