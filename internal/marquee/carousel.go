// Package marquee implements the home page carousel: a strip holding two
// copies of the project list that scrolls forever, slows down under the
// pointer and can be dragged.
//
// Offsets are in CSS pixels and always lie in [0, half width) once the strip
// has been measured.
package marquee

import (
	"fmt"
	"math"
	"time"
)

// Options tunes the carousel.
type Options struct {
	// BaseSpeed is the scroll speed in pixels per second.
	BaseSpeed float64
	// HoverMultiplier scales BaseSpeed while the pointer is over the strip.
	HoverMultiplier float64
	// DragThreshold is how far the pointer must travel before a press counts
	// as a drag and the following click is swallowed.
	DragThreshold float64
}

// DefaultOptions returns the home page settings.
func DefaultOptions() Options {
	return Options{BaseSpeed: 70, HoverMultiplier: 2.0 / 3.0, DragThreshold: 8}
}

// PointerKind is the device behind a pointer event.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

// PrimaryButton is the main mouse button as reported by pointer events.
const PrimaryButton = 0

// State is a snapshot of the carousel.
type State struct {
	Offset    float64
	HalfWidth float64
	Hovering  bool
	Dragging  bool
	DragMoved bool
}

// Carousel is the scroll state machine. It is not safe for concurrent use;
// it is driven from a single frame loop.
type Carousel struct {
	opts Options

	offset   float64
	half     float64
	hovering bool

	dragging    bool
	dragStartX  float64
	dragOrigin  float64
	dragMoved   bool
	suppressNav bool

	lastTick time.Duration
	hasTick  bool
}

// New returns an unmeasured carousel. It stays idle until Measure reports a
// positive width.
func New(opts Options) *Carousel {
	return &Carousel{opts: opts}
}

// Wrap folds offset into [0, half). A non-positive half leaves the offset
// untouched.
func Wrap(offset, half float64) float64 {
	if !finitePositive(half) {
		return offset
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return 0
	}
	w := math.Mod(math.Mod(offset, half)+half, half)
	// Rounding can land exactly on half for tiny negative inputs.
	if w >= half || w < 0 {
		w = 0
	}
	return w
}

// Offset is the current scroll position.
func (c *Carousel) Offset() float64 { return c.offset }

// HalfWidth is the width of one copy of the strip, 0 until measured.
func (c *Carousel) HalfWidth() float64 { return c.half }

// State returns a snapshot.
func (c *Carousel) State() State {
	return State{
		Offset:    c.offset,
		HalfWidth: c.half,
		Hovering:  c.hovering,
		Dragging:  c.dragging,
		DragMoved: c.dragMoved,
	}
}

// Idle reports whether the strip has not been measured yet.
func (c *Carousel) Idle() bool { return c.half <= 0 }

// Measure records the rendered width of the whole (duplicated) strip. It
// returns false and leaves the carousel idle for a non-positive width.
func (c *Carousel) Measure(stripWidth float64) bool {
	half := stripWidth / 2
	if !finitePositive(half) {
		c.half = 0
		return false
	}
	c.half = half
	c.offset = Wrap(c.offset, half)
	return true
}

// SetHover toggles the hover slow-down.
func (c *Carousel) SetHover(hovering bool) { c.hovering = hovering }

// Speed is the current speed in pixels per second.
func (c *Carousel) Speed() float64 {
	if c.hovering {
		return c.opts.BaseSpeed * c.opts.HoverMultiplier
	}
	return c.opts.BaseSpeed
}

// Tick handles one animation frame at timestamp ts. The first tick after
// start or after a drag only records the timestamp.
func (c *Carousel) Tick(ts time.Duration) float64 {
	if c.dragging {
		c.lastTick, c.hasTick = ts, true
		return c.offset
	}
	if !c.hasTick {
		c.lastTick, c.hasTick = ts, true
		return c.offset
	}
	elapsed := ts - c.lastTick
	c.lastTick = ts
	if elapsed > 0 {
		c.Advance(elapsed)
	}
	return c.offset
}

// Advance moves the strip forward by elapsed time. It does nothing while
// dragging or before the strip is measured.
func (c *Carousel) Advance(elapsed time.Duration) float64 {
	if c.dragging || c.Idle() || elapsed <= 0 {
		return c.offset
	}
	c.offset = Wrap(c.offset+c.Speed()*elapsed.Seconds(), c.half)
	return c.offset
}

// PointerDown starts a drag at x. Secondary mouse buttons are ignored.
func (c *Carousel) PointerDown(x float64, kind PointerKind, button int) bool {
	if kind == PointerMouse && button != PrimaryButton {
		return false
	}
	c.dragging = true
	c.dragStartX = x
	c.dragOrigin = c.offset
	c.dragMoved = false
	c.suppressNav = false
	c.hasTick = false
	return true
}

// PointerMove drags the strip so the content follows the pointer.
func (c *Carousel) PointerMove(x float64) float64 {
	if !c.dragging {
		return c.offset
	}
	dx := x - c.dragStartX
	if math.Abs(dx) > c.opts.DragThreshold {
		c.dragMoved = true
	}
	if !c.Idle() {
		c.offset = Wrap(c.dragOrigin-dx, c.half)
	}
	return c.offset
}

// PointerUp ends the drag. If the pointer travelled past the threshold the
// next click is swallowed.
func (c *Carousel) PointerUp() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.suppressNav = c.dragMoved
	c.hasTick = false
}

// PointerCancel ends the drag without a following click.
func (c *Carousel) PointerCancel() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.suppressNav = false
	c.hasTick = false
}

// ClickCapture is called from the capturing click handler. It reports
// whether the click should be cancelled and clears the flag.
func (c *Carousel) ClickCapture() bool {
	s := c.suppressNav
	c.suppressNav = false
	c.dragMoved = false
	return s
}

// Transform is the CSS transform for the strip.
func (c *Carousel) Transform() string {
	return fmt.Sprintf("translate3d(%spx, 0, 0)", trimFloat(-c.offset))
}

func trimFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%.3f", v)
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
