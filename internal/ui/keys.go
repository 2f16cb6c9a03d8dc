package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// sliderStep returns how far a key moves the frequency slider.
func sliderStep(msg tea.KeyMsg) (int, bool) {
	switch msg.String() {
	case "left", "h":
		return -5, true
	case "right", "l":
		return 5, true
	case "shift+left", "H":
		return -1, true
	case "shift+right", "L":
		return 1, true
	}
	return 0, false
}

func helpText(hasGallery, audio bool) string {
	s := "drag draw  space pause  r restart  c clear  ←/→ freq  z normalize  v viz  t trace"
	if hasGallery {
		s += "  tab next"
	}
	s += "  s save  a audio"
	if audio {
		s += "  +/- volume"
	}
	s += "  q quit"
	return s
}
