package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/epicycles/internal/media"
)

// BrowserSelectedMsg is sent when a file or built-in sketch is picked.
// Exactly one of Path and Builtin is set; the blank canvas is an empty Builtin.
type BrowserSelectedMsg struct {
	Path    string
	Builtin *media.Sketch
}

// BrowserCancelledMsg is sent when the browser is dismissed.
type BrowserCancelledMsg struct{}

type fileItem struct {
	path string
	name string
	ext  string
}

func (i fileItem) Title() string { return i.name }
func (i fileItem) Description() string {
	if media.IsAudioExt(i.ext) {
		return i.ext + " · xy audio"
	}
	return i.ext
}
func (i fileItem) FilterValue() string { return i.name }

type builtinItem struct {
	sketch media.Sketch
}

func (i builtinItem) Title() string       { return i.sketch.Title }
func (i builtinItem) Description() string { return fmt.Sprintf("built-in · %d points", len(i.sketch.Points)) }
func (i builtinItem) FilterValue() string { return i.sketch.Title }

type blankItem struct{}

func (i blankItem) Title() string       { return "Blank canvas" }
func (i blankItem) Description() string { return "draw with the mouse" }
func (i blankItem) FilterValue() string { return "blank" }

// BrowserModel lists the sketch files of a directory next to the built-in
// shapes.
type BrowserModel struct {
	list list.Model
	err  error
}

// NewBrowser creates a browser over the loadable files in dir.
func NewBrowser(dir string) BrowserModel {
	files, err := media.ScanSketches(dir)
	if err != nil {
		return BrowserModel{err: fmt.Errorf("cannot read directory: %w", err)}
	}

	items := []list.Item{blankItem{}}
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f))
		name := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		items = append(items, fileItem{path: f, name: name, ext: ext})
	}
	for _, s := range media.Builtins() {
		items = append(items, builtinItem{sketch: s})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 80, 20)
	l.Title = "epicycles"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle

	return BrowserModel{list: l}
}

// HasError returns true if the browser could not be initialized.
func (m BrowserModel) HasError() bool {
	return m.err != nil
}

// Error returns the initialization error, if any.
func (m BrowserModel) Error() error {
	return m.err
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.SetWindowTitle("epicycles")
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.err != nil {
			return m, func() tea.Msg { return BrowserCancelledMsg{} }
		}
		// Don't intercept keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			switch item := m.list.SelectedItem().(type) {
			case blankItem:
				return m, func() tea.Msg { return BrowserSelectedMsg{Builtin: &media.Sketch{}} }
			case fileItem:
				return m, func() tea.Msg { return BrowserSelectedMsg{Path: item.path} }
			case builtinItem:
				s := item.sketch
				return m, func() tea.Msg { return BrowserSelectedMsg{Builtin: &s} }
			}
		case "q", "esc", "ctrl+c":
			return m, func() tea.Msg { return BrowserCancelledMsg{} }
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	if m.err != nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) View() string {
	if m.err != nil {
		return "\n  " + headerStyle.Render("epicycles") + "\n\n  " + errorStyle.Render(m.err.Error()) + "\n"
	}
	return m.list.View()
}
