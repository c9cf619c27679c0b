package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/bouncy"
	"github.com/phanxgames/bouncy/internal/demo"
	"github.com/phanxgames/bouncy/term"
)

const (
	frameInterval = time.Second / 60
	gridWidth     = 24
	gridHeight    = 3
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8be9fd"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1fa8c"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
)

// frameMsg is delivered once per frame while the label wants frames.
type frameMsg time.Time

type model struct {
	label    *bouncy.Label
	loop     *bouncy.Loop
	grid     *term.Grid
	controls *demo.Controls
	res      bouncy.Resources

	ticking   bool
	lastFrame time.Time
	applyErr  error // last failure applying the controls to the label

	editing bool
	input   []rune
}

func newModel(cfg bouncy.Config, res bouncy.Resources) (*model, error) {
	loop := bouncy.NewLoop()
	label, err := bouncy.NewLabelFromConfig(term.NewCellFont(false), cfg,
		bouncy.WithFrameScheduler(loop),
		bouncy.WithColor(bouncy.ColorWhite),
	)
	if err != nil {
		return nil, err
	}
	label.SetLayoutHeight(gridHeight)
	if cfg.Text == "" {
		if err := label.SetTextResource(res, "default_value"); err != nil {
			return nil, err
		}
	}

	controls := demo.NewControls()
	controls.FromLabel(label)
	if cfg.Easing != "" {
		controls.Easing = cfg.Easing
	}

	return &model{
		label:    label,
		loop:     loop,
		grid:     term.NewGrid(gridWidth, gridHeight),
		controls: controls,
		res:      res,
	}, nil
}

func (m *model) Init() tea.Cmd {
	return m.kick()
}

// kick starts the frame ticker unless it is already running.
func (m *model) kick() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	m.lastFrame = time.Now()
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		m.label.Update(now.Sub(m.lastFrame).Seconds())
		m.lastFrame = now
		m.redraw()
		if m.loop.Tick() {
			return m, nextFrame()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			m.updateInput(msg)
			return m, m.kick()
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "+", "=":
			m.controls.Step(m.label, 1)
		case "down", "-":
			m.controls.Step(m.label, -1)
		case "s":
			m.editing = true
			m.input = m.input[:0]
		case "d":
			m.controls.ToggleDirection()
		case "e":
			m.controls.CycleEasing()
		case "[":
			m.controls.AdjustDuration(-50)
		case "]":
			m.controls.AdjustDuration(50)
		case ",":
			m.controls.AdjustStagger(-15)
		case ".":
			m.controls.AdjustStagger(15)
		case "g":
			m.controls.Grouping = !m.controls.Grouping
			m.controls.Step(m.label, 0)
		}
		m.applyErr = m.controls.Apply(m.label)
		return m, m.kick()
	}
	return m, nil
}

// updateInput handles keys while the set-text prompt is open. Only digits
// are accepted, as in a numeric input field.
func (m *model) updateInput(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
	case tea.KeyEnter:
		m.editing = false
		demo.SetSilently(m.label, string(m.input))
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || (r == '-' && len(m.input) == 0) {
				m.input = append(m.input, r)
			}
		}
	}
}

func (m *model) redraw() {
	m.grid.Clear()
	m.label.Draw(m.grid)
}

func (m *model) View() string {
	var b strings.Builder

	title, _ := m.res.String("title")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(m.grid.Render(lipgloss.NewStyle())))
	b.WriteString("\n")

	w, _ := m.label.MeasureIntrinsicSize()
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"duration %dms · stagger %dms · %s · %s · width %.0f cells",
		m.controls.Duration, m.controls.Stagger, m.controls.Direction, m.controls.Easing, w)))
	b.WriteString("\n")
	if m.applyErr != nil {
		b.WriteString(errorStyle.Render(m.applyErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.editing {
		prompt, _ := m.res.String("set_text_message")
		b.WriteString(promptStyle.Render(prompt))
		b.WriteString("\n> " + string(m.input) + "█\n")
	} else {
		help, _ := m.res.String("help")
		b.WriteString(helpStyle.Render(help))
		b.WriteString("\n")
	}
	return b.String()
}
