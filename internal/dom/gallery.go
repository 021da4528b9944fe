//go:build js && wasm

package dom

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/nkuebler/portfolio/internal/gallery"
)

// tileMeasurer reads tile and grid boxes from the live document.
type tileMeasurer struct {
	grid  js.Value
	tiles []js.Value
}

func (m *tileMeasurer) TileRect(i int) (gallery.Rect, bool) {
	if i < 0 || i >= len(m.tiles) {
		return gallery.Rect{}, false
	}
	el := m.tiles[i]
	if !el.Get("isConnected").Bool() {
		return gallery.Rect{}, false
	}
	return boundingRect(el), true
}

func (m *tileMeasurer) GridWidth() float64 {
	if !exists(m.grid) {
		return 0
	}
	return boundingRect(m.grid).Width
}

func (m *tileMeasurer) Viewport() gallery.Viewport { return viewport() }

func (m *tileMeasurer) ScrollY() float64 { return scrollY() }

// galleryView connects the concepts grid to the lightbox.
type galleryView struct {
	lb      *gallery.Lightbox
	entries []gallery.Entry
	tiles   []js.Value
	origin  int
	view    *chromeView
	sched   *FrameScheduler

	root     js.Value
	frame    js.Value
	media    js.Value
	title    js.Value
	subtitle js.Value

	// mediaListeners live as long as one open media element.
	mediaListeners listeners
}

var lightboxVars = []string{
	"--from-top", "--from-left", "--from-w", "--from-h",
	"--to-top", "--to-left", "--to-w", "--to-h", "--to-r",
	"--cap-left", "--cap-bottom", "--cap-maxw",
}

func startGallery(l *listeners, view *chromeView, sched *FrameScheduler) *galleryView {
	grid, root := byID("nk-grid"), byID("nk-lightbox")
	if !exists(grid) || !exists(root) {
		return nil
	}

	tiles := queryAll(grid, ".nk-tile")
	entries := make([]gallery.Entry, len(tiles))
	for i, t := range tiles {
		entries[i] = gallery.Entry{
			Title:    dataString(t, "title"),
			Subtitle: dataString(t, "subtitle"),
			Media:    gallery.MediaKind(dataString(t, "media")),
			MediaSrc: dataString(t, "src"),
		}
	}

	m := &tileMeasurer{grid: grid, tiles: tiles}
	gv := &galleryView{
		lb:       gallery.NewLightbox(gallery.NewTileGrid(entries, m), m, view.pc, gallery.DefaultOptions()),
		entries:  entries,
		tiles:    tiles,
		origin:   -1,
		view:     view,
		sched:    sched,
		root:     root,
		frame:    byID("nk-lightbox-frame"),
		media:    byID("nk-lightbox-media"),
		title:    byID("nk-lightbox-title"),
		subtitle: byID("nk-lightbox-subtitle"),
	}

	for _, t := range tiles {
		tile := t
		l.on(tile, "click", func(ev js.Value) {
			// Let modified clicks open the media in a new tab.
			if ev.Get("button").Int() != 0 || ev.Get("metaKey").Bool() || ev.Get("ctrlKey").Bool() || ev.Get("shiftKey").Bool() {
				return
			}
			i, err := strconv.Atoi(dataString(tile, "index"))
			if err != nil {
				return
			}
			ev.Call("preventDefault")
			gv.open(i)
		})
	}

	l.on(jsDocument, "keydown", func(ev js.Value) {
		if ev.Get("key").String() == "Escape" {
			gv.close(gallery.CloseEscape)
		}
	})
	l.on(byID("nk-lightbox-backdrop"), "click", func(js.Value) { gv.close(gallery.CloseBackdrop) })
	l.on(gv.media, "click", func(js.Value) { gv.close(gallery.CloseMedia) })
	l.on(gv.frame, "transitionend", func(ev js.Value) {
		target := gallery.TargetChild
		if ev.Get("target").Equal(gv.frame) {
			target = gallery.TargetFrame
		}
		if gv.lb.TransitionEnd(target, ev.Get("propertyName").String()) {
			gv.hide()
		}
	})
	l.on(jsWindow, "resize", func(js.Value) {
		if gv.lb.Resize() {
			gv.render()
		}
	})

	return gv
}

func (gv *galleryView) open(i int) {
	if !gv.lb.Open(i) {
		return
	}
	e := gv.entries[i]
	gv.title.Set("textContent", e.Title)
	gv.subtitle.Set("textContent", e.Subtitle)
	gv.mountMedia(e)

	gv.root.Set("hidden", false)
	gv.render()
	gv.sched.RequestFrame(gv.openFrame)
}

// openFrame waits until the starting geometry has been painted, then
// expands.
func (gv *galleryView) openFrame(time.Duration) {
	if gv.lb.State().Phase != gallery.PhaseOpening {
		return
	}
	if gv.lb.Frame() {
		gv.render()
		return
	}
	gv.sched.RequestFrame(gv.openFrame)
}

func (gv *galleryView) mountMedia(e gallery.Entry) {
	gv.mediaListeners.releaseAll()
	gv.media.Set("innerHTML", "")

	var el js.Value
	if e.IsVideo() {
		el = jsDocument.Call("createElement", "video")
		for _, attr := range []string{"autoplay", "muted", "loop", "playsinline"} {
			el.Call("setAttribute", attr, "")
		}
		el.Set("muted", true)
		gv.mediaListeners.on(el, "loadedmetadata", func(js.Value) {
			if gv.lb.MediaLoaded(el.Get("videoWidth").Float(), el.Get("videoHeight").Float()) {
				gv.render()
			}
		})
	} else {
		el = jsDocument.Call("createElement", "img")
		el.Set("alt", e.Title)
		gv.mediaListeners.on(el, "load", func(js.Value) {
			if gv.lb.MediaLoaded(el.Get("naturalWidth").Float(), el.Get("naturalHeight").Float()) {
				gv.render()
			}
		})
	}
	gv.mediaListeners.on(el, "error", func(js.Value) { gv.lb.MediaFailed() })
	el.Set("src", e.MediaSrc)
	gv.media.Call("appendChild", el)
}

func (gv *galleryView) close(reason gallery.CloseReason) {
	gv.origin = gv.lb.State().Active
	if !gv.lb.Close(reason) {
		return
	}
	if gv.lb.State().Phase == gallery.PhaseClosed {
		gv.hide()
		return
	}
	gv.render()
}

func (gv *galleryView) render() {
	st := gv.lb.State()
	if st.Phase == gallery.PhaseClosed {
		return
	}
	setVars(gv.root, st.StyleVars())
	toggleClass(gv.root, "nk-expanded", st.Expanded)
	// A closing overlay lets clicks reach the grid so another tile can open.
	toggleClass(gv.root, "nk-closing", st.Phase == gallery.PhaseClosing)
	gv.view.apply()
}

// hide unmounts the overlay and puts the page back where it was.
func (gv *galleryView) hide() {
	gv.root.Set("hidden", true)
	toggleClass(gv.root, "nk-expanded", false)
	toggleClass(gv.root, "nk-closing", false)
	clearVars(gv.root, lightboxVars)
	gv.mediaListeners.releaseAll()
	gv.media.Set("innerHTML", "")
	gv.view.apply()
	if y, ok := gv.lb.TakeScrollRestore(); ok {
		jsWindow.Call("scrollTo", 0, y)
	}
	// Keyboard dismissals hand focus back to the tile that opened.
	if gv.lb.LastClose() == gallery.CloseEscape && gv.origin >= 0 && gv.origin < len(gv.tiles) {
		gv.tiles[gv.origin].Call("focus", map[string]interface{}{"preventScroll": true})
	}
	gv.origin = -1
}

func (gv *galleryView) teardown() {
	if gv == nil {
		return
	}
	gv.lb.Teardown()
	gv.hide()
}
