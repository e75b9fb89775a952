package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/hyperclock/internal/clock"
	"github.com/san-kum/hyperclock/internal/hands"
	"github.com/san-kum/hyperclock/internal/input"
)

const (
	faceCols   = 40
	faceRows   = 20
	panelRows  = 20
	panelWidth = 44
	linesPer   = 4
	headerRows = 2
	maxTUIFPS  = 30
)

type TickMsg time.Time

// Model is the terminal counterpart of the desktop window.
type Model struct {
	hands  *hands.Collection
	clock  *clock.Clock
	scroll *input.Scroll
	canvas *Canvas
	frame  time.Duration
}

// NewModel returns a terminal clock over coll. fps is capped at 30.
func NewModel(coll *hands.Collection, clk *clock.Clock, fps int) Model {
	if fps <= 0 || fps > maxTUIFPS {
		fps = maxTUIFPS
	}
	return Model{
		hands:  coll,
		clock:  clk,
		scroll: &input.Scroll{},
		canvas: NewCanvas(faceCols, faceRows),
		frame:  time.Second / time.Duration(fps),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.scroll.SetExtent(m.contentRows(), panelRows)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a", "+":
			m.hands.Add()
		case "r", "-":
			m.hands.Remove()
		case "up", "k":
			m.scroll.Apply(1)
		case "down", "j":
			m.scroll.Apply(-1)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll.Apply(1)
		case tea.MouseButtonWheelDown:
			m.scroll.Apply(-1)
		}
	case TickMsg:
		return m, m.tick()
	}
	return m, nil
}

func (m Model) contentRows() float64 {
	return float64(m.hands.Len()*linesPer + headerRows)
}

func (m Model) View() string {
	m.drawFace()
	face := faceStyle.Render(m.canvas.String())
	panel := panelStyle.Width(panelWidth).Render(m.panel())
	hint := keyHint.Render("a:add  r:remove  ↑↓:scroll  q:quit")
	return lipgloss.JoinHorizontal(lipgloss.Top, face, panel) + "\n" + hint
}

func (m Model) drawFace() {
	m.canvas.Clear()
	pw, ph := m.canvas.PixelSize()
	cx, cy := pw/2, ph/2
	r := min(cx, cy) - 2
	m.canvas.DrawCircle(cx, cy, r)

	reach := float64(r) * 0.9
	for i := 0; i < m.hands.Len(); i++ {
		a := m.clock.Angle(m.hands.At(i).AngularVelocity)
		ex := cx + int(math.Round(reach*math.Cos(a)))
		ey := cy + int(math.Round(reach*math.Sin(a)))
		m.canvas.DrawLine(cx, cy, ex, ey)
	}
}

// panel renders the visible window of the statistics list.
func (m Model) panel() string {
	lines := make([]string, 0, int(m.contentRows()))
	lines = append(lines, titleStyle.Render("Hand tip speeds"), "")
	for i, h := range m.hands.Hands() {
		lines = append(lines,
			colored(h.Color).Bold(true).Render(fmt.Sprintf("%d. %s", i, h.Name)),
			labelStyle.Render("  Period: ")+valueStyle.Render(hands.FormatPeriod(h.Period)),
			labelStyle.Render("  Speed (v): ")+valueStyle.Render(hands.FormatSpeed(h.SpeedKMH)),
			labelStyle.Render("  Light speed: ")+colored(hands.RatioColor(h)).Render(hands.FormatLightRatio(h.LightRatio)),
		)
	}

	start := int(-m.scroll.Offset)
	end := min(start+panelRows, len(lines))
	return strings.Join(lines[start:end], "\n")
}

// Offset is the current panel scroll in lines.
func (m Model) Offset() float64 { return m.scroll.Offset }

// Run starts the terminal clock and blocks until the user quits.
func Run(coll *hands.Collection, fps int) error {
	m := NewModel(coll, clock.New(clock.Monotonic()), fps)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
