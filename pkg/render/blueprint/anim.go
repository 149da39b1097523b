package blueprint

import "time"

// AnimationProgress tracks one delayed, time-bounded reveal animation.
// It has three states: idle (never started), running, and done. Progress
// is evaluated lazily against the injected clock on each paint tick; no
// timer fires. The zero value is not usable; create instances with
// [NewAnimationProgress].
type AnimationProgress struct {
	now      func() time.Time
	delay    time.Duration
	duration time.Duration
	start    time.Time // zero while idle; includes the delay once started
}

// NewAnimationProgress creates an idle tracker. The delay defers the
// visual onset after [AnimationProgress.Start]; the duration bounds the
// ramp. A nil clock defaults to time.Now.
func NewAnimationProgress(delay, duration time.Duration, now func() time.Time) *AnimationProgress {
	if now == nil {
		now = time.Now
	}
	if duration <= 0 {
		duration = time.Millisecond
	}
	return &AnimationProgress{now: now, delay: delay, duration: duration}
}

// Start arms the tracker: the ramp begins after the configured delay.
// Restarting an already running tracker rewinds it.
func (p *AnimationProgress) Start() {
	p.start = p.now().Add(p.delay)
}

// Reset forces the tracker back to idle. Progress returns 0 afterwards.
func (p *AnimationProgress) Reset() {
	p.start = time.Time{}
}

// Progress returns the normalized animation progress: 0 while idle or
// still inside the delay, a linear 0–1 ramp while running, and 1 once
// the duration has elapsed.
func (p *AnimationProgress) Progress() float64 {
	if p.start.IsZero() {
		return 0
	}
	elapsed := p.now().Sub(p.start)
	if elapsed < 0 {
		return 0
	}
	if elapsed >= p.duration {
		return 1
	}
	return float64(elapsed) / float64(p.duration)
}

// IsDone reports whether a started animation has run its full duration.
// Idle trackers are never done.
func (p *AnimationProgress) IsDone() bool {
	if p.start.IsZero() {
		return false
	}
	return p.now().Sub(p.start) >= p.duration
}

// IsRunning reports whether the tracker has been started and has not yet
// completed. A running tracker means another repaint is needed.
func (p *AnimationProgress) IsRunning() bool {
	return !p.start.IsZero() && !p.IsDone()
}
