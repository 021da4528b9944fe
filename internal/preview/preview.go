// Package preview animates the home page carousel in the terminal so the
// marquee settings can be tuned without a browser.
package preview

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkuebler/portfolio/internal/marquee"
)

const (
	// unitsPerColumn maps carousel pixels to terminal columns.
	unitsPerColumn = 10
	cellWidth      = 24
	frameInterval  = 16 * time.Millisecond
	dragStep       = 40
	dragRelease    = 400 * time.Millisecond
	defaultWidth   = 80
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	stripStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Model is the bubbletea model for the preview.
type Model struct {
	title    string
	carousel *marquee.Carousel
	strip    []rune
	width    int

	start    time.Time
	now      time.Time
	started  bool
	dragX    float64
	lastDrag time.Time
}

// New builds a preview over the given project titles.
func New(title string, projects []string, opts marquee.Options) Model {
	var cells strings.Builder
	for _, p := range projects {
		label := " ◆ " + p + " "
		if r := []rune(label); len(r) > cellWidth {
			label = string(r[:cellWidth-1]) + "…"
		}
		cells.WriteString(label)
		cells.WriteString(strings.Repeat(" ", cellWidth-len([]rune(label))))
	}
	one := []rune(cells.String())
	strip := append(append([]rune{}, one...), one...)

	c := marquee.New(opts)
	c.Measure(float64(len(strip) * unitsPerColumn))

	return Model{title: title, carousel: c, strip: strip, width: defaultWidth}
}

// Carousel exposes the engine driving the preview.
func (m Model) Carousel() *marquee.Carousel { return m.carousel }

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.width = msg.Width - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "h":
			m.carousel.SetHover(!m.carousel.State().Hovering)
		case "left":
			m.drag(-dragStep)
		case "right":
			m.drag(dragStep)
		case "esc":
			m.carousel.PointerUp()
		}
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if !m.started {
			m.start, m.started = now, true
		}
		m.now = now
		if m.carousel.State().Dragging && now.Sub(m.lastDrag) > dragRelease {
			m.carousel.PointerUp()
		}
		m.carousel.Tick(now.Sub(m.start))
		return m, tick()
	}
	return m, nil
}

// drag moves a simulated pointer; the first step presses it.
func (m *Model) drag(dx float64) {
	if !m.carousel.State().Dragging {
		m.dragX = 0
		m.carousel.PointerDown(m.dragX, marquee.PointerMouse, marquee.PrimaryButton)
	}
	m.dragX += dx
	m.carousel.PointerMove(m.dragX)
	m.lastDrag = m.now
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(stripStyle.Render(m.visible()))
	b.WriteString("\n")

	st := m.carousel.State()
	mode := "auto"
	switch {
	case st.Dragging:
		mode = activeStyle.Render("dragging")
	case st.Hovering:
		mode = activeStyle.Render("hover")
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("offset %7.1f / %.0f px   speed %5.1f px/s   ", st.Offset, st.HalfWidth, m.carousel.Speed())))
	b.WriteString(mode)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ drag · h hover · esc release · q quit"))
	b.WriteString("\n")
	return b.String()
}

// visible is the window of the strip at the current offset.
func (m Model) visible() string {
	if len(m.strip) == 0 || m.width <= 0 {
		return ""
	}
	start := int(m.carousel.Offset()) / unitsPerColumn
	out := make([]rune, m.width)
	for i := range out {
		out[i] = m.strip[(start+i)%len(m.strip)]
	}
	return string(out)
}

// Run starts the preview and blocks until the user quits.
func Run(title string, projects []string, opts marquee.Options) error {
	_, err := tea.NewProgram(New(title, projects, opts), tea.WithAltScreen()).Run()
	return err
}
