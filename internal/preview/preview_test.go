package preview

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nkuebler/portfolio/internal/marquee"
)

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func frame(m Model, t time.Time) Model {
	next, _ := m.Update(frameMsg(t))
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestPreviewAdvances(t *testing.T) {
	m := New("Nick Kuebler", []string{"Alpha", "Beta", "Gamma"}, marquee.DefaultOptions())
	if got := m.Carousel().HalfWidth(); got != 720 {
		t.Fatalf("half width = %v, want 720", got)
	}

	t0 := time.Unix(1000, 0)
	m = frame(m, t0)
	m = frame(m, t0.Add(time.Second))
	if got := m.Carousel().Offset(); !approx(got, 70) {
		t.Errorf("offset after 1s = %v, want 70", got)
	}

	view := m.View()
	for _, want := range []string{"Nick Kuebler", "Beta", "speed", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPreviewHoverToggle(t *testing.T) {
	m := New("t", []string{"Alpha"}, marquee.DefaultOptions())
	m = press(m, keyMsg("h"))
	if !m.Carousel().State().Hovering {
		t.Fatal("h should enable hover")
	}
	if got := m.Carousel().Speed(); !approx(got, 70*2.0/3.0) {
		t.Errorf("hover speed = %v", got)
	}
	m = press(m, keyMsg("h"))
	if m.Carousel().State().Hovering {
		t.Error("h should toggle hover off")
	}
}

func TestPreviewDrag(t *testing.T) {
	m := New("t", []string{"Alpha", "Beta", "Gamma"}, marquee.DefaultOptions())
	t0 := time.Unix(1000, 0)
	m = frame(m, t0)
	m = frame(m, t0.Add(time.Second))

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Carousel().Offset(); !approx(got, 150) {
		t.Fatalf("offset after dragging left = %v, want 150", got)
	}

	// Still inside the release window: no auto-scroll.
	m = frame(m, t0.Add(1200*time.Millisecond))
	if !m.Carousel().State().Dragging || !approx(m.Carousel().Offset(), 150) {
		t.Fatalf("drag state = %+v", m.Carousel().State())
	}

	// The release frame only re-anchors the clock.
	m = frame(m, t0.Add(1500*time.Millisecond))
	if m.Carousel().State().Dragging {
		t.Fatal("drag should release after idle frames")
	}
	m = frame(m, t0.Add(2500*time.Millisecond))
	if got := m.Carousel().Offset(); !approx(got, 220) {
		t.Errorf("offset after release = %v, want 220", got)
	}
	if !m.Carousel().ClickCapture() {
		t.Error("a drag past the threshold should swallow the next click")
	}
}

func TestPreviewRightDragWraps(t *testing.T) {
	m := New("t", []string{"Alpha", "Beta", "Gamma"}, marquee.DefaultOptions())
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Carousel().Offset(); !approx(got, 680) {
		t.Errorf("offset = %v, want 680 (wrapped into [0, 720))", got)
	}
}

func TestPreviewWindowAndQuit(t *testing.T) {
	m := New("t", []string{"Alpha"}, marquee.DefaultOptions())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	m = next.(Model)
	if got := len([]rune(m.visible())); got != 26 {
		t.Errorf("visible width = %d, want 26", got)
	}

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
