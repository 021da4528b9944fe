package chrome

import "time"

// IntroSessionKey marks a session that has already seen the intro.
const IntroSessionKey = "nk_intro_played"

// SessionStore is per-tab storage that survives reloads but not new sessions.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// IntroPhase is the state of the intro overlay.
type IntroPhase int

const (
	IntroSkipped IntroPhase = iota
	IntroPlaying
	IntroFading
	IntroDone
)

func (p IntroPhase) String() string {
	switch p {
	case IntroSkipped:
		return "skipped"
	case IntroPlaying:
		return "playing"
	case IntroFading:
		return "fading"
	case IntroDone:
		return "done"
	}
	return "unknown"
}

// IntroTiming controls when the overlay fades and is removed.
type IntroTiming struct {
	FadeAt   time.Duration
	Duration time.Duration
}

// DefaultIntroTiming is the lightning-bolt logo sequence timing.
func DefaultIntroTiming() IntroTiming {
	return IntroTiming{FadeAt: 1850 * time.Millisecond, Duration: 2500 * time.Millisecond}
}

// Intro plays once per session and then dismisses itself.
type Intro struct {
	timing  IntroTiming
	phase   IntroPhase
	elapsed time.Duration
	chrome  *PageChrome
}

// NewIntro decides whether this session plays the intro and records that it
// has. A nil store always plays.
func NewIntro(store SessionStore, timing IntroTiming, c *PageChrome) *Intro {
	in := &Intro{timing: timing, phase: IntroPlaying, chrome: c}
	if store != nil {
		if _, played := store.Get(IntroSessionKey); played {
			in.phase = IntroSkipped
		} else {
			store.Set(IntroSessionKey, "true")
		}
	}
	in.sync()
	return in
}

// Phase returns the current phase.
func (in *Intro) Phase() IntroPhase { return in.phase }

// Active reports whether the overlay is still on screen.
func (in *Intro) Active() bool {
	return in.phase == IntroPlaying || in.phase == IntroFading
}

// Advance moves the sequence forward by dt and returns the new phase.
func (in *Intro) Advance(dt time.Duration) IntroPhase {
	if !in.Active() {
		return in.phase
	}
	in.elapsed += dt
	switch {
	case in.elapsed >= in.timing.Duration:
		in.phase = IntroDone
	case in.elapsed >= in.timing.FadeAt:
		in.phase = IntroFading
	}
	in.sync()
	return in.phase
}

// Dismiss ends the intro immediately, e.g. when the page is torn down.
func (in *Intro) Dismiss() {
	if in.Active() {
		in.phase = IntroDone
	}
	in.sync()
}

// Remaining is the time left before auto-dismiss.
func (in *Intro) Remaining() time.Duration {
	if !in.Active() {
		return 0
	}
	return in.timing.Duration - in.elapsed
}

func (in *Intro) sync() {
	if in.chrome != nil {
		in.chrome.IntroActive = in.Active()
	}
}
