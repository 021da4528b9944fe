package gallery

import (
	"testing"

	"github.com/nkuebler/portfolio/internal/chrome"
)

type fakeMeasurer struct {
	tiles   map[int]Rect
	grid    float64
	vp      Viewport
	scrollY float64
}

func (f *fakeMeasurer) TileRect(i int) (Rect, bool) {
	r, ok := f.tiles[i]
	return r, ok
}
func (f *fakeMeasurer) GridWidth() float64 { return f.grid }
func (f *fakeMeasurer) Viewport() Viewport { return f.vp }
func (f *fakeMeasurer) ScrollY() float64   { return f.scrollY }

func testEntries() []Entry {
	return []Entry{
		{Title: "DJ Glasses", Media: MediaVideo, MediaSrc: "/concepts/djglassesloop.mp4", Thumb: "/concepts/djglasses1.png"},
		{Title: "Conversational Plant", Media: MediaImage, MediaSrc: "/concepts/plant.png"},
		{Title: "Intuitive Fridge", Media: MediaImage, MediaSrc: "/concepts/fridge.png", Fit: FitContain},
	}
}

func newTestLightbox() (*Lightbox, *fakeMeasurer, *chrome.PageChrome) {
	m := &fakeMeasurer{
		tiles: map[int]Rect{
			0: {Top: 300, Left: 152, Width: 280, Height: 210},
			1: {Top: 300, Left: 460, Width: 280, Height: 210},
		},
		grid:    896,
		vp:      Viewport{Width: 1200, Height: 800},
		scrollY: 420,
	}
	c := &chrome.PageChrome{}
	grid := NewTileGrid(testEntries(), m)
	return NewLightbox(grid, m, c, DefaultOptions()), m, c
}

func openFully(t *testing.T, lb *Lightbox, i int) {
	t.Helper()
	if !lb.Open(i) {
		t.Fatalf("Open(%d) failed", i)
	}
	lb.Frame()
	lb.Frame()
	if lb.State().Phase != PhaseOpen {
		t.Fatalf("phase = %v, want open", lb.State().Phase)
	}
}

func TestLightboxOpen(t *testing.T) {
	lb, _, c := newTestLightbox()

	if !lb.Open(0) {
		t.Fatal("Open(0) failed")
	}
	s := lb.State()
	if s.Phase != PhaseOpening || s.Expanded {
		t.Fatalf("after Open: %+v", s)
	}
	if idx, ok := s.ActiveIndex(); !ok || idx != 0 {
		t.Errorf("ActiveIndex = %d, %v", idx, ok)
	}
	if s.From != (Rect{Top: 300, Left: 152, Width: 280, Height: 210}) {
		t.Errorf("From = %+v", s.From)
	}
	if s.To != (Rect{Top: 64, Left: 152, Width: 896, Height: 672, Radius: 20}) {
		t.Errorf("To = %+v", s.To)
	}
	if !c.ScrollLocked || !c.OverlayOpen || c.SavedScrollY() != 420 {
		t.Errorf("chrome = %+v saved %v", c, c.SavedScrollY())
	}

	if lb.Frame() {
		t.Error("first frame should not expand")
	}
	if !lb.Frame() {
		t.Error("second frame should expand")
	}
	if s := lb.State(); s.Phase != PhaseOpen || !s.Expanded {
		t.Errorf("after frames: %+v", s)
	}
}

func TestLightboxOpenRejected(t *testing.T) {
	lb, m, c := newTestLightbox()

	if lb.Open(2) {
		t.Error("unmounted tile should not open")
	}
	if lb.Open(-1) || lb.Open(99) {
		t.Error("out of range should not open")
	}
	if c.ScrollLocked || c.OverlayOpen {
		t.Error("failed opens must not touch chrome")
	}

	m.vp = Viewport{}
	if lb.Open(0) {
		t.Error("zero viewport should not open")
	}

	m.vp = Viewport{Width: 1200, Height: 800}
	openFully(t, lb, 0)
	if lb.Open(1) {
		t.Error("second open while showing should be ignored")
	}
	if idx, _ := lb.State().ActiveIndex(); idx != 0 {
		t.Errorf("active = %d", idx)
	}
}

func TestLightboxCaption(t *testing.T) {
	lb, _, _ := newTestLightbox()
	openFully(t, lb, 1)

	if lb.State().Caption != nil {
		t.Fatal("caption should wait for media size")
	}
	lb.MediaFailed()
	if lb.State().Caption != nil {
		t.Fatal("failed media keeps default caption")
	}
	if !lb.MediaLoaded(1600, 900) {
		t.Fatal("MediaLoaded should place caption")
	}
	cl := lb.State().Caption
	if cl == nil || !approx(cl.Left, 22) || !approx(cl.Bottom, 102) || !approx(cl.MaxWidth, 852) {
		t.Fatalf("caption = %+v", cl)
	}

	vars := lb.State().StyleVars()
	want := map[string]string{
		"--from-top":   "300px",
		"--from-left":  "460px",
		"--to-w":       "896px",
		"--to-h":       "672px",
		"--to-r":       "20px",
		"--cap-left":   "22px",
		"--cap-bottom": "102px",
		"--cap-maxw":   "852px",
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("%s = %q, want %q", k, vars[k], v)
		}
	}
}

func TestLightboxResize(t *testing.T) {
	lb, m, _ := newTestLightbox()
	openFully(t, lb, 0)
	lb.MediaLoaded(1600, 900)

	m.vp = Viewport{Width: 375, Height: 667}
	m.grid = 339
	if !lb.Resize() {
		t.Fatal("Resize failed")
	}
	s := lb.State()
	if s.To.Radius != 18 || !approx(s.To.Width, 339) {
		t.Errorf("To = %+v", s.To)
	}
	if s.Caption == nil || s.Caption.MaxWidth > s.To.Width {
		t.Errorf("caption not recomputed: %+v", s.Caption)
	}
}

func TestLightboxClose(t *testing.T) {
	lb, m, c := newTestLightbox()
	openFully(t, lb, 0)

	// The page reflowed while the lightbox was open.
	m.tiles[0] = Rect{Top: 120, Left: 152, Width: 280, Height: 210}

	if !lb.Close(CloseEscape) {
		t.Fatal("Close failed")
	}
	s := lb.State()
	if s.Phase != PhaseClosing || s.Expanded {
		t.Fatalf("after Close: %+v", s)
	}
	if s.From.Top != 120 {
		t.Errorf("From not re-captured: %+v", s.From)
	}
	if c.OverlayOpen {
		t.Error("overlay flag should clear when closing starts")
	}
	if !c.ScrollLocked {
		t.Error("scroll stays locked until the transition ends")
	}
	if lb.Close(CloseBackdrop) {
		t.Error("second close should be ignored")
	}

	if lb.TransitionEnd(TargetChild, "width") {
		t.Error("child transition must not finish")
	}
	if lb.TransitionEnd(TargetFrame, "opacity") {
		t.Error("untracked property must not finish")
	}
	if !lb.TransitionEnd(TargetFrame, "width") {
		t.Fatal("frame width transition should finish")
	}
	if _, ok := lb.State().ActiveIndex(); ok {
		t.Error("no entry should be active")
	}
	if c.ScrollLocked {
		t.Error("scroll lock should be released")
	}
	y, ok := lb.TakeScrollRestore()
	if !ok || y != 420 {
		t.Errorf("restore = %v, %v", y, ok)
	}
	if _, ok := lb.TakeScrollRestore(); ok {
		t.Error("restore should be taken once")
	}
	if lb.TransitionEnd(TargetFrame, "height") {
		t.Error("late transitionend should be ignored")
	}
}

func TestLightboxCloseKeepsLastRectWhenTileGone(t *testing.T) {
	lb, m, _ := newTestLightbox()
	openFully(t, lb, 1)
	delete(m.tiles, 1)

	lb.Close(CloseMedia)
	if got := lb.State().From; got.Left != 460 {
		t.Errorf("From = %+v, want last known rect", got)
	}
}

func TestLightboxCloseWhileOpening(t *testing.T) {
	lb, _, c := newTestLightbox()
	lb.Open(0)
	if !lb.Close(CloseEscape) {
		t.Fatal("Close failed")
	}
	if lb.State().Phase != PhaseClosed {
		t.Errorf("phase = %v, want closed", lb.State().Phase)
	}
	if c.ScrollLocked || c.OverlayOpen {
		t.Errorf("chrome not released: %+v", c)
	}
	if lb.Frame() {
		t.Error("stale frame should do nothing")
	}
}

func TestLightboxCloseWhenClosed(t *testing.T) {
	lb, _, _ := newTestLightbox()
	if lb.Close(CloseEscape) {
		t.Error("Close on closed lightbox should be a no-op")
	}
	if len(lb.State().StyleVars()) != 0 {
		t.Error("closed lightbox has no style vars")
	}
}

func TestLightboxTeardown(t *testing.T) {
	lb, _, c := newTestLightbox()
	openFully(t, lb, 0)
	lb.Close(CloseEscape)

	lb.Teardown()
	if lb.State().Phase != PhaseClosed || c.ScrollLocked || c.OverlayOpen {
		t.Errorf("teardown left state: %+v chrome %+v", lb.State(), c)
	}
	if y, ok := lb.TakeScrollRestore(); !ok || y != 420 {
		t.Errorf("restore = %v, %v", y, ok)
	}
}

func TestLightboxReopen(t *testing.T) {
	lb, _, _ := newTestLightbox()
	openFully(t, lb, 0)
	lb.Close(CloseBackdrop)
	lb.TransitionEnd(TargetFrame, "top")
	openFully(t, lb, 1)
	if idx, _ := lb.State().ActiveIndex(); idx != 1 {
		t.Errorf("active = %d", idx)
	}
}

func TestLightboxLastClose(t *testing.T) {
	lb, _, _ := newTestLightbox()
	if lb.LastClose() != CloseNone {
		t.Errorf("LastClose = %v, want none", lb.LastClose())
	}

	openFully(t, lb, 0)
	lb.Close(CloseEscape)
	if lb.LastClose() != CloseEscape {
		t.Errorf("LastClose = %v, want escape", lb.LastClose())
	}
	lb.TransitionEnd(TargetFrame, "left")
	if lb.LastClose() != CloseEscape {
		t.Error("reason should survive the finished close")
	}

	openFully(t, lb, 1)
	if lb.LastClose() != CloseNone {
		t.Errorf("LastClose after open = %v", lb.LastClose())
	}
	lb.Teardown()
	if lb.LastClose() != CloseTeardown || lb.LastClose().String() != "teardown" {
		t.Errorf("LastClose after teardown = %v", lb.LastClose())
	}
}

func TestLightboxOpenWhileClosing(t *testing.T) {
	lb, m, c := newTestLightbox()
	openFully(t, lb, 0)
	lb.Close(CloseBackdrop)

	// The page is pinned while locked, so the live scroll offset reads 0.
	m.scrollY = 0
	if !lb.Open(1) {
		t.Fatal("Open during close should be accepted")
	}
	s := lb.State()
	if s.Phase != PhaseOpening || s.Active != 1 {
		t.Fatalf("after reopen: %+v", s)
	}
	if s.From.Left != 460 {
		t.Errorf("From = %+v, want tile 1", s.From)
	}
	if !c.ScrollLocked || !c.OverlayOpen || c.SavedScrollY() != 420 {
		t.Errorf("chrome = %+v saved %v", c, c.SavedScrollY())
	}
	if _, ok := lb.TakeScrollRestore(); ok {
		t.Error("no scroll restore while still locked")
	}
	if lb.TransitionEnd(TargetFrame, "width") {
		t.Error("stale transitionend from the old close must not finish")
	}

	lb.Frame()
	lb.Frame()
	lb.Close(CloseEscape)
	lb.TransitionEnd(TargetFrame, "width")
	if y, ok := lb.TakeScrollRestore(); !ok || y != 420 {
		t.Errorf("restore = %v, %v, want original offset", y, ok)
	}
}
