package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/epicycles/internal/config"
	"github.com/olivier-w/epicycles/internal/fourier"
	"github.com/olivier-w/epicycles/internal/gallery"
	"github.com/olivier-w/epicycles/internal/media"
	"github.com/olivier-w/epicycles/internal/player"
	"github.com/olivier-w/epicycles/internal/util"
	"github.com/olivier-w/epicycles/internal/visualizer"
)

const (
	// canvasTop is the number of lines above the canvas: header and slider.
	canvasTop = 2
	// footerLines is the number of lines below the canvas: status and help.
	footerLines = 2
	// traceCapacity bounds the persisted trace.
	traceCapacity = 4096
	// maxSubsteps bounds the pen samples added per frame.
	maxSubsteps = 64
)

// Model is the Bubbletea model for the epicycle canvas.
type Model struct {
	opts      fourier.Options
	slider    int
	// count is the number of rotating terms animated. It follows the slider
	// once the slider moves; before that it keeps the configured count.
	count     int
	sketch    media.Sketch
	gallery   *gallery.Gallery
	dec       fourier.Decomposition
	decErr    error
	traceMode TraceMode

	// Pointer capture of a sketch being drawn.
	drawing bool
	stroke  fourier.Path

	// Animation state.
	elapsed  time.Duration
	lastTick time.Time
	lastT    float64
	paused   bool
	trace    *visualizer.TraceBuffer
	circles  []fourier.Circle
	pen      fourier.Point

	modes []visualizer.Visualizer
	mode  int

	audio        *player.Player
	audioPending bool
	loopHz       float64
	volume       float64
	startAudio   func(loopHz, volume float64) (*player.Player, error)

	bar     progress.Model
	input   textinput.Model
	naming  bool
	saveDir string

	status     string
	statusErr  bool
	statusTime time.Time

	width    int
	height   int
	quitting bool
}

// New creates the canvas model. It shows the gallery's current sketch, or a
// blank canvas when the gallery is empty. Saved sketches go to saveDir.
func New(cfg config.Config, g *gallery.Gallery, saveDir string) Model {
	if g == nil {
		g = gallery.New(nil)
	}
	slider, count := cfg.Slider, cfg.Decomposition.Count
	if slider < 0 {
		slider = SliderPosition(count)
	} else {
		count = SliderCount(slider)
	}

	ti := textinput.New()
	ti.Placeholder = "sketch title"
	ti.CharLimit = 80
	ti.Width = 40

	m := Model{
		opts:         cfg.Decomposition,
		slider:       slider,
		count:        count,
		gallery:      g,
		traceMode:    ParseTraceMode(cfg.Trace),
		trace:        visualizer.NewTraceBuffer(traceCapacity),
		modes:        visualizer.Modes(),
		loopHz:       cfg.LoopHz,
		volume:       cfg.Volume,
		audioPending: cfg.Audio,
		startAudio:   player.New,
		bar:          newSliderBar(),
		input:        ti,
		saveDir:      saveDir,
	}
	m.mode = visualizer.Index(m.modes, cfg.Visualizer)
	if s := g.Current(); s != nil {
		m.sketch = *s
	}
	m.rebuild()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), tea.SetWindowTitle(windowTitle(m.title(), false))}
	if m.audioPending {
		cmds = append(cmds, m.startAudioCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.updateNaming(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() && !m.paused && !m.drawing {
			m.elapsed += now.Sub(m.lastTick)
		}
		m.lastTick = now
		m.advance()
		if m.status != "" && now.Sub(m.statusTime) > 5*time.Second {
			m.status = ""
		}
		m.render()
		return m, tickCmd()

	case sketchSavedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", msg.err), true)
			return m, nil
		}
		saved := m.sketch
		saved.Source = msg.path
		m.gallery.Append(saved)
		m.setStatus("Saved to "+msg.path, false)
		return m, nil

	case audioStartedMsg:
		m.audioPending = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Audio unavailable: %v", msg.err), true)
			return m, nil
		}
		m.audio = msg.player
		if err := m.audio.SetDecomposition(m.dec); err != nil {
			m.setStatus(fmt.Sprintf("Audio: %v", err), true)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.render()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		if m.audio != nil {
			m.audio.Close()
		}
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	if step, ok := sliderStep(msg); ok {
		next := max(0, min(sliderMax, m.slider+step))
		if next != m.slider {
			m.slider = next
			m.count = SliderCount(next)
			m.rebuild()
		}
		return m, nil
	}

	switch msg.String() {
	case " ":
		m.paused = !m.paused
		if m.audio != nil && m.audio.Paused() != m.paused {
			m.audio.TogglePause()
		}
		return m, tea.SetWindowTitle(windowTitle(m.title(), m.paused))
	case "r":
		m.restart()
	case "c":
		m.sketch = media.Sketch{}
		m.endStroke()
		m.rebuild()
		return m, tea.SetWindowTitle(windowTitle(m.title(), m.paused))
	case "z":
		m.opts.Normalize = !m.opts.Normalize
		m.rebuild()
	case "v":
		m.mode = (m.mode + 1) % len(m.modes)
		m.render()
	case "t":
		m.traceMode = m.traceMode.Next()
		m.trace.Clear()
	case "tab", "shift+tab":
		move := m.gallery.Advance
		if msg.String() == "shift+tab" {
			move = m.gallery.Previous
		}
		if move() {
			m.sketch = *m.gallery.Current()
			m.endStroke()
			m.rebuild()
			return m, tea.SetWindowTitle(windowTitle(m.title(), m.paused))
		}
	case "s":
		if len(m.sketch.Points) == 0 {
			m.setStatus("Nothing to save", true)
			return m, nil
		}
		m.naming = true
		m.input.SetValue(m.sketch.Title)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case "a":
		if m.audio != nil {
			m.audio.Close()
			m.audio = nil
			m.setStatus("Audio off", false)
			return m, nil
		}
		if !m.audioPending {
			m.audioPending = true
			return m, m.startAudioCmd()
		}
	case "+", "=", "up", "k":
		if m.audio != nil {
			m.audio.AdjustVolume(0.05)
			m.volume = m.audio.Volume()
		}
	case "-", "down", "j":
		if m.audio != nil {
			m.audio.AdjustVolume(-0.05)
			m.volume = m.audio.Volume()
		}
	}
	return m, nil
}

func (m Model) updateNaming(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		m.naming = false
		m.input.Blur()
		if title == "" {
			return m, nil
		}
		m.sketch.Title = title
		dir, points := m.saveDir, m.sketch.Points
		return m, func() tea.Msg {
			path, err := media.SaveSketch(dir, title, points)
			return sketchSavedMsg{path: path, err: err}
		}
	case "esc":
		m.naming = false
		m.input.Blur()
		return m, nil
	case "ctrl+c":
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleMouse records a drawn sketch. Points are in cell units: one unit per
// column and two per row, so the stroke keeps the terminal's aspect ratio.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Y < canvasTop && !m.drawing {
		return m
	}
	p := fourier.Point{X: float64(msg.X), Y: float64(2 * (msg.Y - canvasTop))}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		m.drawing = true
		m.stroke = fourier.Path{p}
		m.dec = fourier.Decomposition{}
		m.decErr = nil
		m.resetAnimation()
	case tea.MouseActionMotion:
		if m.drawing && (len(m.stroke) == 0 || m.stroke[len(m.stroke)-1] != p) {
			m.stroke = append(m.stroke, p)
		}
	case tea.MouseActionRelease:
		if !m.drawing {
			return m
		}
		m.drawing = false
		if len(m.stroke) == 0 || m.stroke[len(m.stroke)-1] != p {
			m.stroke = append(m.stroke, p)
		}
		m.sketch = media.Sketch{Title: "drawing", Points: m.stroke}
		m.stroke = nil
		m.rebuild()
	}
	m.render()
	return m
}

// endStroke abandons a drag in progress; later motion and release events
// are ignored until the next press.
func (m *Model) endStroke() {
	m.drawing = false
	m.stroke = nil
}

func (m Model) startAudioCmd() tea.Cmd {
	start, loopHz, volume := m.startAudio, m.loopHz, m.volume
	return func() tea.Msg {
		p, err := start(loopHz, volume)
		return audioStartedMsg{player: p, err: err}
	}
}

// rebuild decomposes the current sketch with the rotating term count plus
// the DC term, and restarts the animation.
func (m *Model) rebuild() {
	opts := m.opts
	opts.Count = m.count + 1
	m.dec, m.decErr = fourier.Decompose(m.sketch.Points, opts)
	m.restart()
	if m.audio != nil {
		if err := m.audio.SetDecomposition(m.dec); err != nil {
			m.setStatus(fmt.Sprintf("Audio: %v", err), true)
		}
	}
}

func (m *Model) restart() {
	m.resetAnimation()
	m.advance()
	m.render()
}

func (m *Model) resetAnimation() {
	m.elapsed = 0
	m.lastT = 0
	m.trace.Clear()
	m.circles = m.circles[:0]
	m.pen = fourier.Point{}
}

// animTime converts elapsed wall time to curve time; one traversal takes ten
// milliseconds per unit of path length.
func (m Model) animTime() float64 {
	if m.dec.Length <= 0 {
		return 0
	}
	ms := float64(m.elapsed) / float64(time.Millisecond)
	return ms / m.dec.Length / 10
}

// advance moves the pen to the current time, filling the trace with
// intermediate samples so fast components stay smooth between frames.
func (m *Model) advance() {
	if m.dec.Empty() {
		return
	}
	t := m.animTime()
	if m.traceMode == TraceLoop && math.Floor(t) != math.Floor(m.lastT) {
		m.trace.Clear()
		m.lastT = math.Floor(t)
	}

	from := m.lastT
	steps := max(1, min(maxSubsteps, int(math.Ceil((t-from)*256))))
	for i := 1; i <= steps; i++ {
		at := from + (t-from)*float64(i)/float64(steps)
		p, err := fourier.Evaluate(at, m.dec.Components)
		if err != nil {
			m.decErr = err
			return
		}
		m.trace.Push(p)
	}

	pen, circles, err := fourier.Trace(t, m.dec.Components, m.circles[:0])
	if err != nil {
		m.decErr = err
		return
	}
	m.pen, m.circles = pen, circles
	m.lastT = t
}

func (m Model) canvasHeight() int {
	return max(1, m.height-canvasTop-footerLines)
}

func (m Model) canvasWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// render pushes the current frame to the active visualizer.
func (m *Model) render() {
	f := visualizer.Frame{
		Sketch:     m.sketch.Points,
		Fit:        m.sketch.Fit,
		Components: m.dec.Components,
	}
	if m.drawing {
		f.Sketch = m.stroke
		f.Fit = false
	} else if !m.dec.Empty() {
		f.Trace = m.trace.Points()
		f.Circles = m.circles
		f.Pen = m.pen
	}
	m.modes[m.mode].Update(f, m.canvasWidth(), m.canvasHeight())
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
	m.statusTime = time.Now()
}

func (m Model) title() string {
	if m.drawing {
		return "drawing"
	}
	if m.sketch.Title == "" {
		return "blank canvas"
	}
	return m.sketch.Title
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w := m.canvasWidth()

	var b strings.Builder
	header := headerStyle.Render("epicycles") + "  " + titleStyle.Render(m.title())
	mode := labelStyle.Render("[" + m.modes[m.mode].Name() + "]")
	b.WriteString(header + spaces(w-lipgloss.Width(header)-lipgloss.Width(mode)) + mode + "\n")
	b.WriteString(renderSlider(m.bar, m.slider, m.count, w) + "\n")

	canvas := m.modes[m.mode].View()
	lines := strings.Split(canvas, "\n")
	if canvas == "" {
		lines = nil
	}
	for i := range m.canvasHeight() {
		if i < len(lines) {
			b.WriteString(lines[i])
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.statusLine() + "\n")
	if m.naming {
		b.WriteString(labelStyle.Render("save as ") + m.input.View())
	} else {
		b.WriteString(helpStyle.Render(helpText(m.gallery.Len() > 1, m.audio != nil)))
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.status != "" {
		if m.statusErr {
			return errorStyle.Render(m.status)
		}
		return statusStyle.Render(m.status)
	}
	if m.decErr != nil {
		return errorStyle.Render(m.decErr.Error())
	}

	icon := "▶"
	if m.paused {
		icon = "❚❚"
	}
	normalize := "raw"
	if m.opts.Normalize {
		normalize = "normalized"
	}
	parts := []string{
		icon,
		normalize,
		"trace " + m.traceMode.String(),
		fmt.Sprintf("%d terms", len(m.dec.Components)),
		"len " + util.FormatLength(m.dec.Length),
		"t " + util.FormatDuration(m.elapsed),
	}
	if m.audio != nil {
		parts = append(parts, renderVolumePercent(m.volume))
	}
	if top := visualizer.Summary(m.dec.Components, 3); len(top) > 0 {
		parts = append(parts, strings.Join(top, " "))
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

// Decomposition returns the decomposition currently animated.
func (m Model) Decomposition() fourier.Decomposition {
	return m.dec
}

func windowTitle(title string, paused bool) string {
	if paused {
		return "⏸ " + title + " - epicycles"
	}
	return "▶ " + title + " - epicycles"
}

func spaces(n int) string {
	return strings.Repeat(" ", max(0, n))
}
