//go:build js && wasm

package dom

import (
	"strconv"
	"syscall/js"

	"github.com/nkuebler/portfolio/internal/marquee"
)

// marqueeView drives the home page strip.
type marqueeView struct {
	c      *marquee.Carousel
	runner *marquee.Runner
	root   js.Value
	track  js.Value
	loads  *marquee.LoadTracker

	observer js.Value
	onResize js.Func
}

func startMarquee(l *listeners, sched *FrameScheduler, opts marquee.Options) *marqueeView {
	root, track := byID("nk-marquee"), byID("nk-marquee-track")
	if !exists(root) || !exists(track) {
		return nil
	}

	mv := &marqueeView{c: marquee.New(opts), root: root, track: track}
	mv.runner = marquee.NewRunner(mv.c, sched, marquee.RendererFunc(func(c *marquee.Carousel) {
		mv.track.Get("style").Set("transform", c.Transform())
	}))

	// Widths are only right once every image has loaded or failed.
	mv.loads = marquee.NewLoadTracker(func(int) { mv.measure() })
	for i, img := range queryAll(track, "img") {
		if img.Get("complete").Bool() {
			continue
		}
		id := strconv.Itoa(i)
		mv.loads.Add(id)
		settle := func(js.Value) { mv.loads.Settle(id) }
		l.on(img, "load", settle)
		l.on(img, "error", settle)
	}
	mv.measure()

	l.on(root, "mouseenter", func(js.Value) { mv.c.SetHover(true) })
	l.on(root, "mouseleave", func(js.Value) { mv.c.SetHover(false) })

	l.on(root, "pointerdown", func(ev js.Value) {
		mv.c.PointerDown(ev.Get("clientX").Float(), pointerKind(ev), ev.Get("button").Int())
	})
	// Moves and releases are tracked on window so a drag survives leaving
	// the strip.
	l.on(jsWindow, "pointermove", func(ev js.Value) {
		mv.c.PointerMove(ev.Get("clientX").Float())
	})
	l.on(jsWindow, "pointerup", func(js.Value) { mv.c.PointerUp() })
	l.on(jsWindow, "pointercancel", func(js.Value) { mv.c.PointerCancel() })

	// Capture phase so the link never sees a click that ended a drag.
	l.on(track, "click", func(ev js.Value) {
		if mv.c.ClickCapture() {
			ev.Call("preventDefault")
			ev.Call("stopPropagation")
		}
	}, map[string]interface{}{"capture": true})

	// Fonts, nav and intro class changes resize the strip without a window
	// resize.
	if ro := jsGlobal.Get("ResizeObserver"); exists(ro) {
		mv.onResize = js.FuncOf(func(js.Value, []js.Value) interface{} {
			mv.measure()
			return nil
		})
		mv.observer = ro.New(mv.onResize)
		mv.observer.Call("observe", track)
		mv.observer.Call("observe", root)
	} else {
		l.on(jsWindow, "resize", func(js.Value) { mv.measure() })
	}

	jsDocument.Get("body").Get("classList").Call("add", "nk-wasm")
	mv.runner.Start()
	return mv
}

// measure reads the strip width; half of it is one copy of the list.
func (mv *marqueeView) measure() {
	mv.c.Measure(mv.track.Get("scrollWidth").Float())
}

func (mv *marqueeView) teardown() {
	if mv == nil {
		return
	}
	mv.runner.Stop()
	if exists(mv.observer) {
		mv.observer.Call("disconnect")
		mv.onResize.Release()
		mv.observer = js.Undefined()
	}
	mv.track.Get("style").Call("removeProperty", "transform")
}

func pointerKind(ev js.Value) marquee.PointerKind {
	switch ev.Get("pointerType").String() {
	case "touch":
		return marquee.PointerTouch
	case "pen":
		return marquee.PointerPen
	}
	return marquee.PointerMouse
}
