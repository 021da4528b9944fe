//go:build js && wasm

package dom

import (
	"syscall/js"
	"time"

	"github.com/nkuebler/portfolio/internal/marquee"
)

// FrameScheduler implements marquee.Scheduler with requestAnimationFrame.
type FrameScheduler struct {
	pending map[marquee.FrameID]js.Func
}

// NewFrameScheduler returns a scheduler bound to window.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{pending: make(map[marquee.FrameID]js.Func)}
}

// RequestFrame schedules fn for the next frame. The timestamp is the
// DOMHighResTimeStamp passed by the browser.
func (s *FrameScheduler) RequestFrame(fn func(ts time.Duration)) marquee.FrameID {
	var id marquee.FrameID
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		delete(s.pending, id)
		cb.Release()
		var ms float64
		if len(args) > 0 {
			ms = args[0].Float()
		}
		fn(time.Duration(ms * float64(time.Millisecond)))
		return nil
	})
	id = marquee.FrameID(jsWindow.Call("requestAnimationFrame", cb).Int())
	s.pending[id] = cb
	return id
}

// CancelFrame cancels a scheduled frame and releases its callback.
func (s *FrameScheduler) CancelFrame(id marquee.FrameID) {
	cb, ok := s.pending[id]
	if !ok {
		return
	}
	jsWindow.Call("cancelAnimationFrame", int(id))
	delete(s.pending, id)
	cb.Release()
}

// CancelAll drops every pending frame.
func (s *FrameScheduler) CancelAll() {
	for id := range s.pending {
		s.CancelFrame(id)
	}
}
