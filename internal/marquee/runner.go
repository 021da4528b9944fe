package marquee

import "time"

// FrameID identifies a scheduled frame so it can be cancelled.
type FrameID int

// Scheduler requests animation frames. In the browser this is
// requestAnimationFrame; ts is the frame timestamp.
type Scheduler interface {
	RequestFrame(fn func(ts time.Duration)) FrameID
	CancelFrame(id FrameID)
}

// Renderer applies the offset to the strip.
type Renderer interface {
	Render(c *Carousel)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(c *Carousel)

// Render calls f(c).
func (f RendererFunc) Render(c *Carousel) { f(c) }

// Runner drives a Carousel from a Scheduler, one tick per frame.
type Runner struct {
	c       *Carousel
	sched   Scheduler
	render  Renderer
	pending FrameID
	running bool
	frames  int
}

// NewRunner binds a carousel to a scheduler and renderer.
func NewRunner(c *Carousel, sched Scheduler, render Renderer) *Runner {
	return &Runner{c: c, sched: sched, render: render}
}

// Start begins the frame loop. Starting a running loop is a no-op.
func (r *Runner) Start() {
	if r.running {
		return
	}
	r.running = true
	r.pending = r.sched.RequestFrame(r.frame)
}

// Stop cancels the pending frame.
func (r *Runner) Stop() {
	if !r.running {
		return
	}
	r.running = false
	r.sched.CancelFrame(r.pending)
}

// Running reports whether the loop is active.
func (r *Runner) Running() bool { return r.running }

// Frames is the number of frames rendered so far.
func (r *Runner) Frames() int { return r.frames }

func (r *Runner) frame(ts time.Duration) {
	if !r.running {
		return
	}
	r.c.Tick(ts)
	if r.render != nil {
		r.render.Render(r.c)
	}
	r.frames++
	r.pending = r.sched.RequestFrame(r.frame)
}
