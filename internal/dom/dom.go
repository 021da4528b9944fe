//go:build js && wasm

// Package dom is the browser side of the site. It binds DOM events to the
// gallery, marquee and chrome engines and writes their state back to the
// document. Nothing here holds state of its own beyond the handles needed to
// release listeners on teardown.
package dom

import (
	"strconv"
	"syscall/js"

	"github.com/nkuebler/portfolio/internal/gallery"
)

var (
	jsGlobal   = js.Global()
	jsWindow   = jsGlobal.Get("window")
	jsDocument = jsGlobal.Get("document")
)

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// listeners records every registration so teardown can remove them all.
type listeners struct {
	items []listener
}

func (l *listeners) on(target js.Value, event string, handler func(ev js.Value), opts ...map[string]interface{}) {
	if target.IsUndefined() || target.IsNull() {
		return
	}
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		handler(ev)
		return nil
	})
	if len(opts) > 0 {
		target.Call("addEventListener", event, fn, opts[0])
	} else {
		target.Call("addEventListener", event, fn)
	}
	l.items = append(l.items, listener{target: target, event: event, fn: fn})
}

func (l *listeners) releaseAll() {
	for _, it := range l.items {
		it.target.Call("removeEventListener", it.event, it.fn)
		it.fn.Release()
	}
	l.items = nil
}

func byID(id string) js.Value {
	return jsDocument.Call("getElementById", id)
}

func exists(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

func queryAll(root js.Value, selector string) []js.Value {
	list := root.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out := make([]js.Value, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, list.Index(i))
	}
	return out
}

func boundingRect(el js.Value) gallery.Rect {
	r := el.Call("getBoundingClientRect")
	return gallery.Rect{
		Top:    r.Get("top").Float(),
		Left:   r.Get("left").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func viewport() gallery.Viewport {
	return gallery.Viewport{
		Width:  jsWindow.Get("innerWidth").Float(),
		Height: jsWindow.Get("innerHeight").Float(),
	}
}

func scrollY() float64 {
	return jsWindow.Get("scrollY").Float()
}

func dataFloat(el js.Value, name string, fallback float64) float64 {
	v := el.Get("dataset").Get(name)
	if v.IsUndefined() {
		return fallback
	}
	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return fallback
	}
	return f
}

func dataString(el js.Value, name string) string {
	v := el.Get("dataset").Get(name)
	if v.IsUndefined() {
		return ""
	}
	return v.String()
}

func setVars(el js.Value, vars map[string]string) {
	style := el.Get("style")
	for k, v := range vars {
		style.Call("setProperty", k, v)
	}
}

func clearVars(el js.Value, names []string) {
	style := el.Get("style")
	for _, k := range names {
		style.Call("removeProperty", k)
	}
}

func toggleClass(el js.Value, class string, on bool) {
	el.Get("classList").Call("toggle", class, on)
}
