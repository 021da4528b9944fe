//go:build js && wasm

package dom

import (
	"syscall/js"
	"time"

	"github.com/nkuebler/portfolio/internal/chrome"
	"github.com/nkuebler/portfolio/internal/marquee"
)

// App is one mounted page.
type App struct {
	listeners listeners
	sched     *FrameScheduler
	view      *chromeView
	intro     *introView
	marquee   *marqueeView
	gallery   *galleryView
	done      chan struct{}
}

// Mount reads the engine settings from <body> and binds whatever the
// current page contains.
func Mount() *App {
	body := jsDocument.Get("body")
	a := &App{
		sched: NewFrameScheduler(),
		view:  &chromeView{pc: &chrome.PageChrome{}, body: body},
		done:  make(chan struct{}),
	}

	opts := marquee.DefaultOptions()
	opts.BaseSpeed = dataFloat(body, "marqueeSpeed", opts.BaseSpeed)
	opts.HoverMultiplier = dataFloat(body, "marqueeHover", opts.HoverMultiplier)
	opts.DragThreshold = dataFloat(body, "marqueeThreshold", opts.DragThreshold)

	timing := chrome.DefaultIntroTiming()
	if ms := dataFloat(body, "introFade", -1); ms >= 0 {
		timing.FadeAt = time.Duration(ms) * time.Millisecond
	}
	if ms := dataFloat(body, "introDuration", -1); ms > 0 {
		timing.Duration = time.Duration(ms) * time.Millisecond
	}

	a.view.bindNav(&a.listeners)
	a.intro = startIntro(a.view, a.sched, NewSessionStorage(), timing)
	a.marquee = startMarquee(&a.listeners, a.sched, opts)
	a.gallery = startGallery(&a.listeners, a.view, a.sched)

	a.listeners.on(jsWindow, "pagehide", func(js.Value) { a.Unmount() })
	return a
}

// Unmount releases every listener and frame and resets the page chrome.
func (a *App) Unmount() {
	select {
	case <-a.done:
		return
	default:
	}
	close(a.done)

	a.gallery.teardown()
	a.marquee.teardown()
	a.intro.teardown()
	a.sched.CancelAll()
	a.listeners.releaseAll()

	if y, locked := a.view.pc.Teardown(); locked {
		jsWindow.Call("scrollTo", 0, y)
	}
	a.view.apply()
	jsDocument.Get("body").Get("classList").Call("remove", "nk-wasm")
}

// Done is closed after Unmount.
func (a *App) Done() <-chan struct{} { return a.done }
