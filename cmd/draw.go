package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/epicycles/internal/config"
	"github.com/olivier-w/epicycles/internal/gallery"
	"github.com/olivier-w/epicycles/internal/media"
	"github.com/olivier-w/epicycles/internal/ui"
)

// debugEnv names the file that receives debug logs while the TUI owns the terminal.
const debugEnv = "EPICYCLES_DEBUG"

func runDraw(c *config.Config) error {
	if path := os.Getenv(debugEnv); path != "" {
		f, err := tea.LogToFile(path, "epicycles")
		if err != nil {
			return fmt.Errorf("cannot open debug log: %w", err)
		}
		defer f.Close()
	}

	model, err := initialModel(c)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(ui.Model); ok {
		log.Printf("exiting with %d components", len(m.Decomposition().Components))
	}
	return nil
}

// initialModel picks the first screen: the browser for a directory, the
// canvas for a file, or a blank canvas when no target is given.
func initialModel(c *config.Config) (tea.Model, error) {
	if c.Target == "" {
		return newCanvas(c, media.Sketch{}, "."), nil
	}

	info, err := os.Stat(c.Target)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return newStartupModel(c, c.Target), nil
	}

	s, err := media.Load(c.Target, c.MaxPoints)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %q: %d points", s.Title, len(s.Points))
	return newCanvas(c, s, filepath.Dir(c.Target)), nil
}

// newCanvas opens the canvas on first, followed by the built-in shapes.
func newCanvas(c *config.Config, first media.Sketch, saveDir string) ui.Model {
	return ui.New(*c, newGallery(first), saveDir)
}

// newGallery places first at the front of the built-in shapes. A built-in
// selection is not repeated; the gallery starts on it instead.
func newGallery(first media.Sketch) *gallery.Gallery {
	builtins := media.Builtins()
	if first.Source == "" && first.Title != "" {
		for i, b := range builtins {
			if b.Title == first.Title {
				g := gallery.New(builtins)
				g.SetCurrentIndex(i)
				return g
			}
		}
	}
	return gallery.New(append([]media.Sketch{first}, builtins...))
}
