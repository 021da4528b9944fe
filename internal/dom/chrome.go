//go:build js && wasm

package dom

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/nkuebler/portfolio/internal/chrome"
)

// chromeView applies PageChrome to <body>.
type chromeView struct {
	pc   *chrome.PageChrome
	body js.Value
}

func (v *chromeView) apply() {
	classes := v.body.Get("classList")
	for _, c := range chrome.AllClasses() {
		classes.Call("remove", c)
	}
	for _, c := range v.pc.Classes() {
		classes.Call("add", c)
	}

	style := v.body.Get("style")
	if v.pc.ScrollLocked {
		style.Set("top", "-"+strconv.FormatFloat(v.pc.SavedScrollY(), 'f', -1, 64)+"px")
	} else {
		style.Call("removeProperty", "top")
	}
}

// bindNav hides the nav on phones after scrolling.
func (v *chromeView) bindNav(l *listeners) {
	update := func(js.Value) {
		if v.pc.ScrollLocked {
			return
		}
		v.pc.UpdateNav(scrollY(), viewport().Width)
		v.apply()
	}
	l.on(jsWindow, "scroll", update, map[string]interface{}{"passive": true})
	l.on(jsWindow, "resize", update)
	update(js.Undefined())
}

// introView plays the logo overlay once per session.
type introView struct {
	intro *chrome.Intro
	el    js.Value
	view  *chromeView
	sched *FrameScheduler
	last  time.Duration
	seen  bool
}

func startIntro(view *chromeView, sched *FrameScheduler, store chrome.SessionStore, timing chrome.IntroTiming) *introView {
	el := byID("nk-intro")
	if !exists(el) {
		return nil
	}
	iv := &introView{
		intro: chrome.NewIntro(store, timing, view.pc),
		el:    el,
		view:  view,
		sched: sched,
	}
	if !iv.intro.Active() {
		el.Call("remove")
		view.apply()
		return iv
	}
	el.Set("hidden", false)
	view.apply()
	sched.RequestFrame(iv.frame)
	return iv
}

func (iv *introView) frame(ts time.Duration) {
	var dt time.Duration
	if iv.seen {
		dt = ts - iv.last
	}
	iv.last, iv.seen = ts, true

	switch iv.intro.Advance(dt) {
	case chrome.IntroFading:
		toggleClass(iv.el, "nk-intro-fading", true)
	case chrome.IntroDone:
		iv.finish()
		return
	}
	iv.sched.RequestFrame(iv.frame)
}

func (iv *introView) finish() {
	iv.el.Call("remove")
	iv.view.apply()
}

func (iv *introView) teardown() {
	if iv == nil {
		return
	}
	if iv.intro.Active() {
		iv.intro.Dismiss()
		iv.finish()
	}
}
