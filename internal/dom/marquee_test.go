//go:build js && wasm

// These tests need a browser document; run them with a wasm browser runner
// such as wasmbrowsertest (GOOS=js GOARCH=wasm go test -exec wasmbrowsertest).
package dom

import (
	"syscall/js"
	"testing"

	"github.com/nkuebler/portfolio/internal/marquee"
)

func mountStrip(t *testing.T) (root, track js.Value) {
	t.Helper()
	if !exists(jsDocument) {
		t.Skip("no document")
	}
	root = jsDocument.Call("createElement", "div")
	root.Set("id", "nk-marquee")
	track = jsDocument.Call("createElement", "div")
	track.Set("id", "nk-marquee-track")
	track.Get("style").Set("display", "inline-flex")
	for i := 0; i < 4; i++ {
		item := jsDocument.Call("createElement", "div")
		item.Get("style").Set("width", "200px")
		item.Get("style").Set("flexShrink", "0")
		track.Call("appendChild", item)
	}
	root.Call("appendChild", track)
	jsDocument.Get("body").Call("appendChild", root)
	t.Cleanup(func() { root.Call("remove") })
	return root, track
}

func TestMarqueeObservesStripResize(t *testing.T) {
	_, track := mountStrip(t)

	var l listeners
	defer l.releaseAll()
	sched := NewFrameScheduler()
	defer sched.CancelAll()

	mv := startMarquee(&l, sched, marquee.DefaultOptions())
	if mv == nil {
		t.Fatal("marquee not mounted")
	}
	if !exists(jsGlobal.Get("ResizeObserver")) {
		t.Skip("ResizeObserver unavailable")
	}
	if !exists(mv.observer) {
		t.Fatal("strip is not observed for resizes")
	}
	if got := mv.c.HalfWidth(); got != 400 {
		t.Errorf("HalfWidth = %v, want 400", got)
	}

	// A container change that is not a window resize.
	track.Call("appendChild", jsDocument.Call("createElement", "div"))
	track.Get("lastChild").Get("style").Set("width", "200px")
	track.Get("lastChild").Get("style").Set("flexShrink", "0")
	mv.onResize.Invoke()
	if got := mv.c.HalfWidth(); got != 500 {
		t.Errorf("HalfWidth after resize = %v, want 500", got)
	}

	mv.teardown()
	if exists(mv.observer) {
		t.Error("observer not disconnected on teardown")
	}
}
