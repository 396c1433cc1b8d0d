// Package animation interpolates a scalar over wall-clock time and reports
// each interpolated value through callbacks.
package animation

import (
	"time"
)

// Tween interpolates from one value to another over a fixed duration. It is
// advanced by the caller's frame clock; nothing runs in the background.
type Tween struct {
	From      float64
	To        float64
	Duration  time.Duration
	Ease      Ease
	StartTime time.Time

	onSample   func(float64)
	onComplete func()
	done       bool
	progress   float64
}

// Start creates a tween beginning at now. onSample receives every
// interpolated value; onComplete runs once after the final value.
func Start(from, to float64, duration time.Duration, ease Ease, onSample func(float64), onComplete func(), now time.Time) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{
		From:       from,
		To:         to,
		Duration:   duration,
		Ease:       ease,
		StartTime:  now,
		onSample:   onSample,
		onComplete: onComplete,
	}
}

// Advance delivers the value for now. Once the duration has elapsed it
// delivers To exactly, then completes. Calls after completion do nothing.
func (t *Tween) Advance(now time.Time) {
	if t.done {
		return
	}

	elapsed := now.Sub(t.StartTime)
	if t.Duration <= 0 || elapsed >= t.Duration {
		t.progress = 1
		t.emit(t.To)
		t.done = true
		if t.onComplete != nil {
			t.onComplete()
		}
		return
	}

	if elapsed < 0 {
		elapsed = 0
	}
	t.progress = float64(elapsed) / float64(t.Duration)
	t.emit(t.From + (t.To-t.From)*t.Ease(t.progress))
}

func (t *Tween) emit(v float64) {
	if t.onSample != nil {
		t.onSample(v)
	}
}

// Done reports whether the tween has completed.
func (t *Tween) Done() bool {
	return t.done
}

// Progress returns linear progress in [0, 1].
func (t *Tween) Progress() float64 {
	return t.progress
}
