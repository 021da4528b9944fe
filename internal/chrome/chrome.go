// Package chrome holds the page-level state that sits around the gallery
// and marquee: scroll locking, the overlay flag, mobile nav hiding and the
// intro sequence. Renderers read PageChrome and apply it to the document;
// nothing in here touches the DOM.
package chrome

// Body classes applied by renderers.
const (
	ClassOverlayOpen  = "nk-concepts-overlay-open"
	ClassNavHidden    = "nk-mobile-nav-hidden"
	ClassIntroActive  = "nk-intro-active"
	ClassScrollLocked = "nk-scroll-locked"
)

// NavHideThreshold is how far, in pixels, a phone must scroll before the
// top-right nav slides away.
const NavHideThreshold = 24

// MobileMaxWidth mirrors gallery.MobileMaxWidth for nav decisions.
const MobileMaxWidth = 639

// PageChrome is the single owner of document-wide flags.
type PageChrome struct {
	ScrollLocked bool
	OverlayOpen  bool
	NavHidden    bool
	IntroActive  bool

	savedScrollY float64
}

// LockScroll freezes page scrolling and remembers the offset to restore.
// Locking twice keeps the first saved offset.
func (c *PageChrome) LockScroll(scrollY float64) {
	if c.ScrollLocked {
		return
	}
	c.ScrollLocked = true
	c.savedScrollY = scrollY
}

// UnlockScroll releases the lock and returns the offset to scroll back to.
// ok is false when the page was not locked.
func (c *PageChrome) UnlockScroll() (scrollY float64, ok bool) {
	if !c.ScrollLocked {
		return 0, false
	}
	c.ScrollLocked = false
	y := c.savedScrollY
	c.savedScrollY = 0
	return y, true
}

// SavedScrollY is the offset captured by LockScroll.
func (c *PageChrome) SavedScrollY() float64 { return c.savedScrollY }

// SetOverlayOpen toggles the flag that hides the nav behind an open lightbox.
func (c *PageChrome) SetOverlayOpen(open bool) { c.OverlayOpen = open }

// UpdateNav recomputes nav visibility after a scroll. Only phones hide it.
func (c *PageChrome) UpdateNav(scrollY, viewportWidth float64) {
	if viewportWidth > MobileMaxWidth {
		c.NavHidden = false
		return
	}
	c.NavHidden = scrollY > NavHideThreshold
}

// ResetNav shows the nav again; called when a page is torn down.
func (c *PageChrome) ResetNav() { c.NavHidden = false }

// Classes returns the body classes for the current state, in a stable order.
func (c *PageChrome) Classes() []string {
	var out []string
	if c.IntroActive {
		out = append(out, ClassIntroActive)
	}
	if c.OverlayOpen {
		out = append(out, ClassOverlayOpen)
	}
	if c.NavHidden {
		out = append(out, ClassNavHidden)
	}
	if c.ScrollLocked {
		out = append(out, ClassScrollLocked)
	}
	return out
}

// AllClasses lists every class PageChrome can produce so renderers can
// remove stale ones.
func AllClasses() []string {
	return []string{ClassIntroActive, ClassOverlayOpen, ClassNavHidden, ClassScrollLocked}
}

// Teardown clears every flag. The returned offset is non-zero only when a
// scroll lock had to be released.
func (c *PageChrome) Teardown() (scrollY float64, wasLocked bool) {
	scrollY, wasLocked = c.UnlockScroll()
	c.OverlayOpen = false
	c.NavHidden = false
	c.IntroActive = false
	return scrollY, wasLocked
}
