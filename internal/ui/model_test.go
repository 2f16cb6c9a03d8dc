package ui

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/epicycles/internal/config"
	"github.com/olivier-w/epicycles/internal/fourier"
	"github.com/olivier-w/epicycles/internal/gallery"
	"github.com/olivier-w/epicycles/internal/media"
	"github.com/olivier-w/epicycles/internal/player"
)

func testConfig() config.Config {
	return config.Config{
		Decomposition: fourier.DefaultOptions(),
		Slider:        -1,
		Visualizer:    "epicycles",
		Trace:         "persist",
		LoopHz:        config.DefaultLoopHz,
		Volume:        config.DefaultVolume,
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(testConfig(), gallery.New(media.Builtins()), t.TempDir())
	m.startAudio = func(float64, float64) (*player.Player, error) {
		return nil, errors.New("no audio device")
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSliderMapping(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 33: 10, 50: 32, 100: 1000, 140: 1000}
	for p, want := range cases {
		if got := SliderCount(p); got != want {
			t.Fatalf("SliderCount(%d) = %d, want %d", p, got, want)
		}
	}
	if got := SliderPosition(10); got != 33 {
		t.Fatalf("SliderPosition(10) = %d, want 33", got)
	}
	if got := SliderPosition(1); got != 0 {
		t.Fatalf("SliderPosition(1) = %d, want 0", got)
	}
	if got := SliderPosition(5000); got != 100 {
		t.Fatalf("SliderPosition(5000) = %d, want 100", got)
	}
}

func TestNewRequestsCountPlusDC(t *testing.T) {
	m := newTestModel(t)
	if m.slider != 33 {
		t.Fatalf("expected slider derived from count, got %d", m.slider)
	}
	if got := len(m.Decomposition().Components); got != 11 {
		t.Fatalf("expected 11 components, got %d", got)
	}
	if m.title() != "square" {
		t.Fatalf("expected first builtin, got %q", m.title())
	}
}

func TestSliderKeysRebuild(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.handleMsg(key("right"))
	if m.slider != 38 {
		t.Fatalf("expected slider 38, got %d", m.slider)
	}
	if got := len(m.Decomposition().Components); got != SliderCount(38)+1 {
		t.Fatalf("expected %d components, got %d", SliderCount(38)+1, got)
	}

	m, _ = m.handleMsg(key("shift+left"))
	m, _ = m.handleMsg(key("H"))
	if m.slider != 36 {
		t.Fatalf("expected slider 36, got %d", m.slider)
	}

	m.slider = 100
	m, _ = m.handleMsg(key("l"))
	if m.slider != 100 {
		t.Fatalf("expected slider to stay at 100, got %d", m.slider)
	}
}

func TestConfiguredCountKeptUntilSliderMoves(t *testing.T) {
	c := testConfig()
	c.Decomposition.Count = 50
	m := New(c, gallery.New(media.Builtins()), t.TempDir())

	if m.slider != SliderPosition(50) {
		t.Fatalf("expected slider %d, got %d", SliderPosition(50), m.slider)
	}
	if got := len(m.Decomposition().Components); got != 51 {
		t.Fatalf("expected the configured 50 terms plus DC, got %d", got)
	}
	m, _ = m.handleMsg(key("z"))
	if got := len(m.Decomposition().Components); got != 51 {
		t.Fatalf("expected rebuild to keep 51 components, got %d", got)
	}

	m, _ = m.handleMsg(key("right"))
	want := SliderCount(SliderPosition(50)+5) + 1
	if got := len(m.Decomposition().Components); got != want {
		t.Fatalf("expected slider to take over with %d components, got %d", want, got)
	}
}

func TestNormalizeToggleUsesRawLength(t *testing.T) {
	m := newTestModel(t)
	if got := m.Decomposition().Length; got != 240 {
		t.Fatalf("expected square perimeter 240, got %v", got)
	}
	m, _ = m.handleMsg(key("z"))
	if m.opts.Normalize {
		t.Fatal("expected normalize off")
	}
	if got := m.Decomposition().Length; got != 4 {
		t.Fatalf("expected raw length 4, got %v", got)
	}
}

func TestMouseDrawingBuildsSketch(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 60, Height: 20})

	events := []tea.MouseMsg{
		{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: 20, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		{X: 20, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		{X: 20, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		{X: 10, Y: 10, Action: tea.MouseActionRelease},
	}
	for i, ev := range events {
		m, _ = m.handleMsg(ev)
		if i == 0 && (!m.drawing || !m.Decomposition().Empty()) {
			t.Fatal("expected press to start a fresh drawing")
		}
	}

	if m.drawing {
		t.Fatal("expected release to end drawing")
	}
	want := fourier.Path{{X: 10, Y: 6}, {X: 20, Y: 6}, {X: 20, Y: 16}, {X: 10, Y: 16}}
	if len(m.sketch.Points) != len(want) {
		t.Fatalf("expected %d points, got %v", len(want), m.sketch.Points)
	}
	for i := range want {
		if m.sketch.Points[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, m.sketch.Points[i], want[i])
		}
	}
	if m.sketch.Fit {
		t.Fatal("drawn sketches keep screen coordinates")
	}
	if m.Decomposition().Empty() || m.Decomposition().Length != 40 {
		t.Fatalf("expected decomposition of the closed stroke, got length %v", m.Decomposition().Length)
	}
}

func TestMouseIgnoresHeaderPress(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleMsg(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.drawing {
		t.Fatal("expected press above the canvas to be ignored")
	}
}

func TestKeysDuringDragEndTheStroke(t *testing.T) {
	for _, k := range []string{"c", "tab", "shift+tab"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 60, Height: 20})
			m, _ = m.handleMsg(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			m, _ = m.handleMsg(key(k))
			if m.drawing || len(m.stroke) != 0 {
				t.Fatalf("expected %q to end the drag", k)
			}

			title := m.title()
			m, _ = m.handleMsg(tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
			m, _ = m.handleMsg(tea.MouseMsg{X: 14, Y: 7, Action: tea.MouseActionRelease})
			if len(m.stroke) != 0 || m.title() != title {
				t.Fatalf("expected stale motion and release to be ignored, got stroke %v title %q", m.stroke, m.title())
			}
		})
	}
}

func TestMouseStrokeSurvivesRebuildKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 60, Height: 20})
	m, _ = m.handleMsg(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.handleMsg(key("z"))
	m, _ = m.handleMsg(key("right"))
	m, _ = m.handleMsg(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.handleMsg(tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionRelease})

	if m.drawing {
		t.Fatal("expected release to end drawing")
	}
	if got := len(m.sketch.Points); got != 3 {
		t.Fatalf("expected 3 points, got %v", m.sketch.Points)
	}
}

func TestTickAdvancesUnlessPaused(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m, _ = m.handleMsg(tickMsg(t0))
	m, _ = m.handleMsg(tickMsg(t0.Add(100 * time.Millisecond)))
	if m.elapsed != 100*time.Millisecond {
		t.Fatalf("expected 100ms elapsed, got %v", m.elapsed)
	}
	traced := m.trace.Len()
	if traced < 2 {
		t.Fatalf("expected trace to grow, got %d points", traced)
	}

	m, _ = m.handleMsg(key("space"))
	if !m.paused {
		t.Fatal("expected paused")
	}
	m, _ = m.handleMsg(tickMsg(t0.Add(500 * time.Millisecond)))
	if m.elapsed != 100*time.Millisecond {
		t.Fatalf("expected elapsed frozen while paused, got %v", m.elapsed)
	}

	m, _ = m.handleMsg(key("r"))
	if m.elapsed != 0 || m.trace.Len() != 1 {
		t.Fatalf("expected restart to reset time and trace, got %v and %d", m.elapsed, m.trace.Len())
	}
}

func TestLoopTraceClearsEachTraversal(t *testing.T) {
	run := func(mode TraceMode) int {
		m := newTestModel(t)
		m.traceMode = mode
		t0 := time.Unix(1000, 0)
		m, _ = m.handleMsg(tickMsg(t0))
		// The square is 240 long, so a traversal takes 2.4s.
		m, _ = m.handleMsg(tickMsg(t0.Add(2500 * time.Millisecond)))
		return m.trace.Len()
	}

	persist, loop := run(TracePersist), run(TraceLoop)
	if loop == 0 || loop >= persist {
		t.Fatalf("expected loop trace (%d) to be shorter than persisted trace (%d)", loop, persist)
	}
}

func TestClearAndGalleryNavigation(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.handleMsg(key("tab"))
	if m.title() != "circle" {
		t.Fatalf("expected circle, got %q", m.title())
	}
	m, _ = m.handleMsg(key("shift+tab"))
	m, _ = m.handleMsg(key("shift+tab"))
	if m.title() != "trefoil" {
		t.Fatalf("expected wrap to trefoil, got %q", m.title())
	}

	m, _ = m.handleMsg(key("c"))
	if !m.Decomposition().Empty() || m.title() != "blank canvas" {
		t.Fatalf("expected blank canvas, got %q", m.title())
	}
}

func TestSaveFlowAppendsToGallery(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.handleMsg(key("s"))
	if !m.naming {
		t.Fatal("expected save prompt")
	}
	m.input.SetValue("my square")
	m, cmd := m.handleMsg(key("enter"))
	if m.naming || cmd == nil {
		t.Fatal("expected prompt to close with a save command")
	}

	msg, ok := cmd().(sketchSavedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("expected successful save, got %#v", msg)
	}
	if _, err := os.Stat(msg.path); err != nil {
		t.Fatalf("expected saved file: %v", err)
	}

	m, _ = m.handleMsg(msg)
	if m.gallery.Len() != 6 || m.gallery.Current().Source != msg.path {
		t.Fatalf("expected saved sketch appended and selected, got %d sketches", m.gallery.Len())
	}
	if !strings.Contains(m.status, "Saved to") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestSaveWithoutPointsWarns(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleMsg(key("c"))
	m, _ = m.handleMsg(key("s"))
	if m.naming || !m.statusErr {
		t.Fatal("expected a warning instead of the save prompt")
	}
}

func TestAudioFailureIsReported(t *testing.T) {
	m := newTestModel(t)

	m, cmd := m.handleMsg(key("a"))
	if cmd == nil || !m.audioPending {
		t.Fatal("expected audio start command")
	}
	m, _ = m.handleMsg(cmd())
	if m.audio != nil || m.audioPending {
		t.Fatal("expected audio to stay off")
	}
	if !strings.Contains(m.status, "no audio device") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestViewFillsWindowHeight(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 80, Height: 20})

	for range 3 {
		m, _ = m.handleMsg(key("v"))
		lines := strings.Split(m.View(), "\n")
		if len(lines) != 20 {
			t.Fatalf("%s view has %d lines, want 20", m.modes[m.mode].Name(), len(lines))
		}
	}
}

func TestTraceModeCycle(t *testing.T) {
	if ParseTraceMode("loop") != TraceLoop || ParseTraceMode("other") != TracePersist {
		t.Fatal("unexpected ParseTraceMode result")
	}
	if TracePersist.Next() != TraceLoop || TraceLoop.Next() != TracePersist {
		t.Fatal("unexpected Next cycle")
	}
	if TraceLoop.String() != "loop" || TracePersist.String() != "persist" {
		t.Fatal("unexpected String result")
	}
}
