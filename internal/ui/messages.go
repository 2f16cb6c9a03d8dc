package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/epicycles/internal/player"
)

// frameInterval paces the animation at roughly 30 frames per second.
const frameInterval = 33 * time.Millisecond

type tickMsg time.Time

type sketchSavedMsg struct {
	path string
	err  error
}

type audioStartedMsg struct {
	player *player.Player
	err    error
}

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
