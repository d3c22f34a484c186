// Package term hosts a spline editor in a terminal, using Bubble Tea for the
// event loop and Lip Gloss for layout. The editor's hit rectangle is
// measured in terminal cells.
//
// Mouse buttons and modifiers follow the editor's gestures: a right click or
// Ctrl-click removes a point, Shift snaps. The wheel moves the knot of the
// point being dragged. Keys toggle the spline's properties:
//
//	l      toggle loop
//	o      toggle open (clamped) knots
//	+ / -  raise or lower the degree
//	s      toggle sticky snapping
//	w / r  write or read the save file
//	q      quit
package term

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/schuko/tracing"
	"github.com/phanxgames/spline"
)

// tracer traces to the "spline.term" key.
func tracer() tracing.Trace {
	return tracing.Select("spline.term")
}

// Screen rows above the canvas (title and top border) and columns to its
// left (left border). Mouse positions are shifted by these.
const (
	originX = 1
	originY = 2

	// Rows taken by title, borders and status line; columns by borders.
	chromeRows = 4
	chromeCols = 2

	minCells  = 4
	tickEvery = time.Second / 30
)

// Options configures the terminal host.
type Options struct {
	// SavePath is the file written by "w" and read by "r". Empty disables
	// both keys.
	SavePath string
}

type tickMsg time.Time

// ioMsg reports the outcome of a save or load.
type ioMsg struct {
	op   string
	data []byte
	err  error
}

// Model is the Bubble Tea model wrapping one editor.
type Model struct {
	editor *spline.Editor
	opts   Options

	down   bool
	button spline.MouseButton
	status string
	last   time.Time
}

// New creates a model for e and runs its Setup.
func New(e *spline.Editor, opts Options) Model {
	e.Setup()
	return Model{editor: e, opts: opts}
}

// Editor returns the hosted editor.
func (m Model) Editor() *spline.Editor { return m.editor }

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the animation ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.editor.Update(now.Sub(m.last).Seconds())
		}
		m.last = now
		return m, tick()
	case ioMsg:
		m.handleIO(msg)
	}
	return m, nil
}

// resize fits the editor to the terminal, leaving room for the frame.
func (m *Model) resize(width, height int) {
	cols := max(width-chromeCols, minCells)
	rows := max(height-chromeRows, minCells)
	m.editor.SetBounds(spline.Rect{Width: float64(cols - 1), Height: float64(rows - 1)})
	tracer().Debugf("resized to %dx%d cells", cols, rows)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	m.status = ""
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "l":
		e.SetLoop(!e.Loop())
	case "o":
		e.SetOpen(!e.Open())
	case "+", "=":
		e.SetDegree(e.Degree() + 1)
	case "-", "_":
		e.SetDegree(e.Degree() - 1)
	case "s":
		e.SetSticky(!e.Config().Sticky)
	case "w":
		return m, m.save()
	case "r":
		return m, m.load()
	}
	return m, nil
}

func (m Model) save() tea.Cmd {
	if m.opts.SavePath == "" {
		return nil
	}
	data, err := m.editor.Save()
	path := m.opts.SavePath
	return func() tea.Msg {
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
		return ioMsg{op: "saved", err: err}
	}
}

func (m Model) load() tea.Cmd {
	if m.opts.SavePath == "" {
		return nil
	}
	path := m.opts.SavePath
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return ioMsg{op: "loaded", data: data, err: err}
	}
}

func (m *Model) handleIO(msg ioMsg) {
	err := msg.err
	if err == nil && msg.op == "loaded" {
		err = m.editor.Load(msg.data)
	}
	if err != nil {
		tracer().Errorf("%s: %v", m.opts.SavePath, err)
		m.status = err.Error()
		return
	}
	tracer().Infof("%s %s", msg.op, m.opts.SavePath)
	m.status = fmt.Sprintf("%s %s", msg.op, m.opts.SavePath)
}

func pointerButton(b tea.MouseButton) (spline.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return spline.MouseButtonLeft, true
	case tea.MouseButtonRight:
		return spline.MouseButtonRight, true
	case tea.MouseButtonMiddle:
		return spline.MouseButtonMiddle, true
	}
	return spline.MouseButtonLeft, false
}

func modifiers(msg tea.MouseMsg) spline.KeyModifiers {
	var mods spline.KeyModifiers
	if msg.Shift {
		mods |= spline.ModShift
	}
	if msg.Ctrl {
		mods |= spline.ModCtrl
	}
	if msg.Alt {
		mods |= spline.ModAlt
	}
	return mods
}

// handleMouse runs the press/drag/release/hover state machine for the
// terminal mouse. A press outside the editor is ignored along with the drag
// that follows it.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	e := m.editor
	ctx := spline.PointerContext{
		GlobalX:   float64(msg.X - originX),
		GlobalY:   float64(msg.Y - originY),
		Modifiers: modifiers(msg),
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			e.PointerWheel(ctx, 1)
			return
		case tea.MouseButtonWheelDown:
			e.PointerWheel(ctx, -1)
			return
		}
		button, ok := pointerButton(msg.Button)
		if !ok || m.down || !e.HitTest(ctx.GlobalX, ctx.GlobalY) {
			return
		}
		m.down = true
		m.button = button
		ctx.Button = button
		e.PointerDown(ctx)
	case tea.MouseActionMotion:
		if m.down {
			ctx.Button = m.button
			e.PointerDrag(ctx)
			return
		}
		e.PointerMove(ctx)
	case tea.MouseActionRelease:
		if !m.down {
			return
		}
		ctx.Button = m.button
		m.down = false
		e.PointerUp(ctx)
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
)

// frameColor returns the border color for a visual state.
func frameColor(s spline.State) lipgloss.Color {
	switch s {
	case spline.StateDown:
		return lipgloss.Color("15")
	case spline.StateOver:
		return lipgloss.Color("250")
	default:
		return lipgloss.Color("240")
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// View renders the title, the framed canvas and the status line.
func (m Model) View() string {
	e := m.editor
	b := e.Bounds
	cmds := e.Draw(nil)
	cv := newCanvas(int(b.Width)+1, int(b.Height)+1)
	cv.draw(cmds)
	e.ClearRedraw()

	title := e.Name
	for _, c := range cmds {
		if c.Type == spline.CommandText {
			title = c.Text
		}
	}

	status := m.status
	if status == "" {
		status = fmt.Sprintf("%d points  degree %d  loop %s  open %s  sticky %s",
			e.NumPoints(), e.Degree(), onOff(e.Loop()), onOff(e.Open()), onOff(e.Config().Sticky))
	}

	frame := frameStyle.BorderForeground(frameColor(e.State()))
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		frame.Render(cv.String()),
		statusStyle.Render(status),
	)
}

// Run runs e in the terminal until the user quits.
func Run(e *spline.Editor, opts Options) error {
	p := tea.NewProgram(New(e, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("spline/term: %w", err)
	}
	return nil
}
