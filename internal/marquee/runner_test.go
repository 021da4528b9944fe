package marquee

import (
	"testing"
	"time"
)

type fakeScheduler struct {
	next      FrameID
	queued    map[FrameID]func(time.Duration)
	cancelled []FrameID
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{queued: make(map[FrameID]func(time.Duration))}
}

func (s *fakeScheduler) RequestFrame(fn func(time.Duration)) FrameID {
	s.next++
	s.queued[s.next] = fn
	return s.next
}

func (s *fakeScheduler) CancelFrame(id FrameID) {
	delete(s.queued, id)
	s.cancelled = append(s.cancelled, id)
}

// step runs every queued frame once at ts.
func (s *fakeScheduler) step(ts time.Duration) {
	current := s.queued
	s.queued = make(map[FrameID]func(time.Duration))
	for _, fn := range current {
		fn(ts)
	}
}

func TestRunner(t *testing.T) {
	sched := newFakeScheduler()
	c := New(DefaultOptions())
	c.Measure(1800)

	var rendered []float64
	r := NewRunner(c, sched, RendererFunc(func(c *Carousel) {
		rendered = append(rendered, c.Offset())
	}))

	r.Start()
	r.Start()
	if len(sched.queued) != 1 {
		t.Fatalf("queued frames = %d, want 1", len(sched.queued))
	}

	sched.step(0)
	sched.step(time.Second)
	sched.step(2 * time.Second)
	if r.Frames() != 3 || len(rendered) != 3 {
		t.Fatalf("frames = %d rendered = %d", r.Frames(), len(rendered))
	}
	if rendered[2] != 140 {
		t.Errorf("offset after 2s = %v, want 140", rendered[2])
	}

	r.Stop()
	if r.Running() || len(sched.queued) != 0 || len(sched.cancelled) != 1 {
		t.Errorf("Stop left running=%v queued=%d", r.Running(), len(sched.queued))
	}
	sched.step(3 * time.Second)
	if r.Frames() != 3 {
		t.Error("frame ran after Stop")
	}
}

func TestLoadTracker(t *testing.T) {
	var calls []int
	lt := NewLoadTracker(func(remaining int) { calls = append(calls, remaining) })
	lt.Add("a")
	lt.Add("b")

	if !lt.Settle("a") {
		t.Fatal("Settle(a) failed")
	}
	if lt.Settle("a") {
		t.Error("an image settles once")
	}
	if lt.Settle("zzz") {
		t.Error("unknown image should be ignored")
	}
	if lt.Done() {
		t.Error("b still pending")
	}
	lt.Settle("b")
	if !lt.Done() || lt.Pending() != 0 {
		t.Error("tracker should be done")
	}
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 0 {
		t.Errorf("calls = %v", calls)
	}
}
