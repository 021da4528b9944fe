package gallery

import (
	"strconv"
	"strings"

	"github.com/nkuebler/portfolio/internal/chrome"
)

// Phase is the lightbox lifecycle.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	}
	return "unknown"
}

// CloseReason records what dismissed the lightbox.
type CloseReason int

const (
	CloseNone CloseReason = iota
	CloseEscape
	CloseBackdrop
	CloseMedia
	CloseTeardown
)

func (r CloseReason) String() string {
	switch r {
	case CloseEscape:
		return "escape"
	case CloseBackdrop:
		return "backdrop"
	case CloseMedia:
		return "media"
	case CloseTeardown:
		return "teardown"
	}
	return "none"
}

// TransitionTarget identifies the element a transitionend event came from.
type TransitionTarget int

const (
	TargetFrame TransitionTarget = iota
	TargetChild
)

// expandDelayFrames is how many animation frames pass between mounting the
// overlay at the tile's box and starting the expansion, so the browser has
// painted the starting geometry.
const expandDelayFrames = 2

// trackedProperties are the frame properties whose transitionend finishes a
// close.
var trackedProperties = map[string]bool{
	"top":    true,
	"left":   true,
	"width":  true,
	"height": true,
}

// State is a snapshot for renderers.
type State struct {
	Phase    Phase
	Active   int
	From     Rect
	To       Rect
	Expanded bool
	Caption  *CaptionLayout
}

// ActiveIndex returns the open entry, if any.
func (s State) ActiveIndex() (int, bool) {
	if s.Phase == PhaseClosed || s.Active < 0 {
		return 0, false
	}
	return s.Active, true
}

// StyleVars are the CSS custom properties the frame element is styled with.
func (s State) StyleVars() map[string]string {
	if s.Phase == PhaseClosed {
		return map[string]string{}
	}
	vars := map[string]string{
		"--from-top":  px(s.From.Top),
		"--from-left": px(s.From.Left),
		"--from-w":    px(s.From.Width),
		"--from-h":    px(s.From.Height),
		"--to-top":    px(s.To.Top),
		"--to-left":   px(s.To.Left),
		"--to-w":      px(s.To.Width),
		"--to-h":      px(s.To.Height),
		"--to-r":      px(s.To.Radius),
	}
	if s.Caption != nil {
		vars["--cap-left"] = px(s.Caption.Left)
		vars["--cap-bottom"] = px(s.Caption.Bottom)
		vars["--cap-maxw"] = px(s.Caption.MaxWidth)
	}
	return vars
}

// px renders a length with at most three decimals.
func px(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		s = "0"
	}
	return s + "px"
}

// Options configures a Lightbox.
type Options struct {
	Stage   StageOptions
	Caption CaptionOptions
}

// DefaultOptions returns the concepts page settings.
func DefaultOptions() Options {
	return Options{Stage: DefaultStageOptions(), Caption: DefaultCaptionOptions()}
}

// Lightbox drives the expand/collapse transition for one TileGrid.
type Lightbox struct {
	grid   *TileGrid
	m      Measurer
	chrome *chrome.PageChrome
	opts   Options

	state   State
	media   Size
	frames  int
	restore *float64
	closed  CloseReason
}

// NewLightbox creates a closed lightbox. The measurer is the same one the
// grid uses; chrome receives the scroll lock and overlay flag.
func NewLightbox(grid *TileGrid, m Measurer, c *chrome.PageChrome, opts Options) *Lightbox {
	if c == nil {
		c = &chrome.PageChrome{}
	}
	return &Lightbox{
		grid:   grid,
		m:      m,
		chrome: c,
		opts:   opts,
		state:  State{Active: -1},
	}
}

// State returns a snapshot of the current state.
func (lb *Lightbox) State() State {
	s := lb.state
	if s.Caption != nil {
		c := *s.Caption
		s.Caption = &c
	}
	return s
}

// Open starts the opening transition for tile i. A close still in flight
// is finished first. It returns false when another entry is showing, the
// tile is not measurable, or the viewport has no area.
func (lb *Lightbox) Open(i int) bool {
	switch lb.state.Phase {
	case PhaseOpening, PhaseOpen:
		return false
	}
	from, ok := lb.grid.Activate(i)
	if !ok {
		return false
	}
	to, ok := StageRect(lb.m.Viewport(), lb.m.GridWidth(), lb.opts.Stage)
	if !ok {
		return false
	}

	scrollY := lb.m.ScrollY()
	if lb.state.Phase == PhaseClosing {
		// The page is still pinned; keep the offset saved by the first open.
		scrollY = lb.chrome.SavedScrollY()
		lb.finish()
	}

	lb.state = State{Phase: PhaseOpening, Active: i, From: from, To: to}
	lb.media = Size{}
	lb.frames = expandDelayFrames
	lb.restore = nil
	lb.closed = CloseNone

	lb.chrome.SetOverlayOpen(true)
	lb.chrome.LockScroll(scrollY)
	return true
}

// Frame advances the opening sequence by one animation frame and reports
// whether the state changed.
func (lb *Lightbox) Frame() bool {
	if lb.state.Phase != PhaseOpening {
		return false
	}
	lb.frames--
	if lb.frames > 0 {
		return false
	}
	lb.state.Phase = PhaseOpen
	lb.state.Expanded = true
	lb.recomputeCaption()
	return true
}

// Resize recomputes the stage for the new viewport.
func (lb *Lightbox) Resize() bool {
	if lb.state.Phase == PhaseClosed {
		return false
	}
	to, ok := StageRect(lb.m.Viewport(), lb.m.GridWidth(), lb.opts.Stage)
	if !ok {
		return false
	}
	lb.state.To = to
	lb.recomputeCaption()
	return true
}

// MediaLoaded records the intrinsic media size (image load or video
// metadata) and places the caption.
func (lb *Lightbox) MediaLoaded(width, height float64) bool {
	if lb.state.Phase == PhaseClosed {
		return false
	}
	lb.media = Size{Width: width, Height: height}
	return lb.recomputeCaption()
}

// MediaFailed is called when the media could not load. The caption keeps
// its default placement.
func (lb *Lightbox) MediaFailed() {}

// Close starts the reverse transition. The origin tile is re-measured so
// the frame flies back to where the tile is now; if it is gone, the last
// known box is used.
func (lb *Lightbox) Close(reason CloseReason) bool {
	switch lb.state.Phase {
	case PhaseClosed, PhaseClosing:
		return false
	}
	lb.closed = reason

	if r, ok := lb.m.TileRect(lb.state.Active); ok && !r.Empty() {
		lb.state.From = r
	}
	lb.chrome.SetOverlayOpen(false)

	// Nothing has animated yet, so no transitionend will arrive.
	if lb.state.Phase == PhaseOpening {
		lb.finish()
		return true
	}

	lb.state.Phase = PhaseClosing
	lb.state.Expanded = false
	return true
}

// TransitionEnd handles a transitionend event. Only a tracked geometry
// property on the frame itself completes a close; events bubbling from
// children (caption reveals, media) are ignored.
func (lb *Lightbox) TransitionEnd(target TransitionTarget, property string) bool {
	if lb.state.Phase != PhaseClosing || target != TargetFrame {
		return false
	}
	if !trackedProperties[property] {
		return false
	}
	lb.finish()
	return true
}

// Teardown releases everything when the page unmounts mid-transition.
func (lb *Lightbox) Teardown() {
	if lb.state.Phase != PhaseClosed {
		lb.closed = CloseTeardown
		lb.chrome.SetOverlayOpen(false)
		lb.finish()
	}
}

// LastClose reports what dismissed the most recent entry, or CloseNone
// while one is showing.
func (lb *Lightbox) LastClose() CloseReason { return lb.closed }

// TakeScrollRestore returns the scroll offset to restore after the lock was
// released, once.
func (lb *Lightbox) TakeScrollRestore() (float64, bool) {
	if lb.restore == nil {
		return 0, false
	}
	y := *lb.restore
	lb.restore = nil
	return y, true
}

func (lb *Lightbox) finish() {
	lb.state = State{Active: -1}
	lb.media = Size{}
	lb.frames = 0
	lb.chrome.SetOverlayOpen(false)
	if y, ok := lb.chrome.UnlockScroll(); ok {
		lb.restore = &y
	}
}

func (lb *Lightbox) recomputeCaption() bool {
	if lb.state.Phase == PhaseClosed {
		return false
	}
	stage := Size{Width: lb.state.To.Width, Height: lb.state.To.Height}
	layout, ok := PlaceCaption(lb.media, stage, lb.opts.Caption)
	if !ok {
		return false
	}
	lb.state.Caption = &layout
	return true
}
