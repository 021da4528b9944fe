package marquee

// LoadTracker waits for the strip's images. Each image counts once, whether
// it loaded or failed, and every settled image triggers a re-measure since
// the strip width changes as intrinsic sizes arrive.
type LoadTracker struct {
	pending  map[string]struct{}
	onSettle func(remaining int)
}

// NewLoadTracker returns a tracker that calls onSettle after each image
// settles, with the number still pending.
func NewLoadTracker(onSettle func(remaining int)) *LoadTracker {
	return &LoadTracker{pending: make(map[string]struct{}), onSettle: onSettle}
}

// Add registers an image that has not finished loading. Already complete
// images should not be added.
func (t *LoadTracker) Add(id string) {
	t.pending[id] = struct{}{}
}

// Settle marks an image as loaded or failed. It returns false for unknown or
// already settled images.
func (t *LoadTracker) Settle(id string) bool {
	if _, ok := t.pending[id]; !ok {
		return false
	}
	delete(t.pending, id)
	if t.onSettle != nil {
		t.onSettle(len(t.pending))
	}
	return true
}

// Pending is the number of images still loading.
func (t *LoadTracker) Pending() int { return len(t.pending) }

// Done reports whether every tracked image has settled.
func (t *LoadTracker) Done() bool { return len(t.pending) == 0 }
