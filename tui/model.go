// Package tui renders the generated key layout in the terminal and turns
// mouse press/drag/release into touch events for the MPE handler.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"synther-core/config"
	"synther-core/layout"
	"synther-core/midi"
	"synther-core/mpe"
	"synther-core/scale"
	"synther-core/theme"
)

// The mouse is a single touch; real multi-touch arrives with distinct ids
// from the platform input layer, the terminal only ever has one pointer.
const mouseTouchID = 1

// Terminals report no pressure, so mouse touches play at a fixed forte.
const mousePressure = 0.8

// Model is the bubbletea model for the virtual MPE keyboard.
type Model struct {
	Engine  *layout.Engine
	Handler *mpe.Handler
	Theme   *theme.Theme
	Out     *midi.OutputWatcher // may be nil (events stay local)

	keyboard   config.KeyboardConfig
	scaleNames []string
	scaleIdx   int

	width, height int
	showLabels    bool
	mouseDown     bool
	quitting      bool
}

func NewModel(engine *layout.Engine, handler *mpe.Handler, th *theme.Theme, cfg *config.Config, out *midi.OutputWatcher) Model {
	m := Model{
		Engine:     engine,
		Handler:    handler,
		Theme:      th,
		Out:        out,
		keyboard:   cfg.Keyboard,
		scaleNames: scale.Names(),
		showLabels: cfg.UI.ShowLabels,
	}
	for i, name := range m.scaleNames {
		if name == cfg.Keyboard.Scale {
			m.scaleIdx = i
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// keyboardRows is the vertical extent of the playable area: everything
// except the status line above and the help line below.
func (m Model) keyboardRows() int {
	rows := m.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// layoutConfig builds the engine config for the current terminal size.
func (m Model) layoutConfig() layout.Config {
	return layout.Config{
		Layout:           layoutFor(m.keyboard.Layout),
		Scale:            scale.ByName(m.keyboard.Scale),
		Octaves:          m.keyboard.Octaves,
		Size:             layout.Size{Width: float64(m.width), Height: float64(m.keyboardRows())},
		StartNote:        uint8(m.keyboard.StartNote),
		VisibleWhiteKeys: m.keyboard.VisibleWhiteKeys,
	}
}

func layoutFor(kind config.LayoutKind) layout.Layout {
	switch kind {
	case config.LayoutIsomorphic:
		return layout.IsomorphicLayout{}
	case config.LayoutHexagonal:
		return layout.HexagonalLayout{}
	default:
		return layout.PianoLayout{}
	}
}

// reconfigure releases all touches, then applies the new layout config.
// The order matters: touches started on the old key set must end before
// the key set is replaced, or their notes would stick.
func (m *Model) reconfigure() {
	m.Handler.ClearAllTouches()
	m.mouseDown = false
	if _, err := m.Engine.UpdateDimensions(m.layoutConfig()); err != nil {
		// Leaves the previous key set in place; nothing else to do here.
		return
	}
}

// touchPoint converts terminal cell coordinates to layout space, sampling
// the cell center. Row 0 of the keyboard area sits below the status line.
func (m Model) touchPoint(x, y int) layout.Point {
	return layout.Point{X: float64(x) + 0.5, Y: float64(y-1) + 0.5}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.reconfigure()

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				break
			}
			pos := m.touchPoint(msg.X, msg.Y)
			if key := m.Engine.KeyAt(pos); key != nil {
				m.mouseDown = true
				m.Handler.TouchStart(mouseTouchID, pos, key, mousePressure)
			}
		case tea.MouseActionMotion:
			if m.mouseDown {
				m.Handler.TouchMove(mouseTouchID, m.touchPoint(msg.X, msg.Y), mousePressure)
			}
		case tea.MouseActionRelease:
			if m.mouseDown {
				m.mouseDown = false
				m.Handler.TouchEnd(mouseTouchID)
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Handler.ClearAllTouches()
			return m, tea.Quit

		case "p":
			m.keyboard.Layout = config.LayoutPiano
			m.reconfigure()
		case "i":
			m.keyboard.Layout = config.LayoutIsomorphic
			m.reconfigure()
		case "h":
			m.keyboard.Layout = config.LayoutHexagonal
			m.reconfigure()

		case "s":
			m.scaleIdx = (m.scaleIdx + 1) % len(m.scaleNames)
			m.keyboard.Scale = m.scaleNames[m.scaleIdx]
			m.reconfigure()

		case "[":
			if m.keyboard.StartNote >= 12 {
				m.keyboard.StartNote -= 12
				m.reconfigure()
			}
		case "]":
			if m.keyboard.StartNote+12*m.keyboard.Octaves <= 115 {
				m.keyboard.StartNote += 12
				m.reconfigure()
			}

		case "l":
			m.showLabels = !m.showLabels

		case "esc":
			// Panic: silence everything.
			m.Handler.ClearAllTouches()
			m.Engine.ClearKeyPresses()
			m.mouseDown = false
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	m.renderKeyboard(&b)
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) statusLine() string {
	out := "no output"
	if m.Out != nil {
		if name, ok := m.Out.Connected(); ok {
			out = name
		}
	}
	status := fmt.Sprintf(" %s | %s | C%d | touches %d | %s",
		m.keyboard.Layout, m.keyboard.Scale, m.keyboard.StartNote/12-1,
		m.Handler.ActiveTouches(), out)
	return lipgloss.NewStyle().
		Background(m.Theme.BG()).
		Foreground(m.Theme.FG()).
		Width(m.width).
		Render(status)
}

func (m Model) helpLine() string {
	help := " p/i/h layout  s scale  [ ] octave  l labels  esc panic  q quit"
	return lipgloss.NewStyle().
		Background(m.Theme.BG()).
		Foreground(m.Theme.Muted()).
		Width(m.width).
		Render(help)
}

// renderKeyboard paints the playable area cell by cell, sampling the key
// under each cell center. Pressed keys take their touch's channel color.
func (m Model) renderKeyboard(b *strings.Builder) {
	rows := m.keyboardRows()

	// Channel lookup for pressed-key coloring.
	channelFor := make(map[uint8]uint8)
	for _, t := range m.Handler.Touches() {
		channelFor[t.Note] = t.Channel
	}

	labels := m.labelCells()

	for y := 0; y < rows; y++ {
		for x := 0; x < m.width; x++ {
			p := layout.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			key := m.Engine.KeyAt(p)

			ch := ' '
			if key != nil {
				if r, ok := labels[[2]int{x, y}]; ok {
					ch = r
				}
			}

			style := lipgloss.NewStyle().Background(m.Theme.BG())
			if key != nil {
				style = style.Background(m.keyColor(key, channelFor)).
					Foreground(m.labelColor(key))
			}
			b.WriteString(style.Render(string(ch)))
		}
		b.WriteString("\n")
	}
}

func (m Model) keyColor(key *layout.KeyModel, channelFor map[uint8]uint8) lipgloss.Color {
	if key.Pressed {
		if key.Color != nil {
			return theme.RGBToColor(*key.Color)
		}
		if ch, ok := channelFor[key.Note]; ok {
			return m.Theme.ChannelColor(ch)
		}
		return m.Theme.Active()
	}
	if key.Black {
		return m.Theme.BlackKey()
	}
	return m.Theme.WhiteKey()
}

func (m Model) labelColor(key *layout.KeyModel) lipgloss.Color {
	if key.Pressed || key.Black {
		return m.Theme.WhiteKey()
	}
	return m.Theme.BlackKey()
}

// labelCells places each key's label starting at the cell left of its
// center, clipped to the key's own bounds.
func (m Model) labelCells() map[[2]int]rune {
	cells := make(map[[2]int]rune)
	if !m.showLabels {
		return cells
	}
	for _, key := range m.Engine.Keys() {
		c := key.Bounds.Center()
		y := int(c.Y)
		x := int(c.X) - len(key.Label)/2
		for i, r := range key.Label {
			cx := x + i
			if !key.Bounds.Contains(layout.Point{X: float64(cx) + 0.5, Y: float64(y) + 0.5}) {
				continue
			}
			cells[[2]int{cx, y}] = r
		}
	}
	return cells
}
