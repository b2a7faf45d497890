package shimmer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timer advances shimmer progress from 0 to a ceiling of
// 1 + repeatDelay/duration over duration + repeatDelay, so the extra travel
// past 1 acts as the pause between sweeps. The host owns the frame loop and
// calls Tick; the timer never spawns goroutines or sleeps.
type Timer struct {
	cycleSeconds float32
	ceiling      float32
	startDelay   float64
	repeatCount  int
	repeatMode   RepeatMode

	tween     *gween.Tween
	delayLeft float64
	remaining int
	reversed  bool
	started   bool
	running   bool
	progress  float64
}

// NewTimer creates a timer for the given configuration. The timer starts idle.
func NewTimer(cfg *Config) *Timer {
	return &Timer{
		cycleSeconds: float32((cfg.AnimationDuration + cfg.RepeatDelay).Seconds()),
		ceiling:      float32(1 + float64(cfg.RepeatDelay)/float64(cfg.AnimationDuration)),
		startDelay:   cfg.StartDelay.Seconds(),
		repeatCount:  cfg.RepeatCount,
		repeatMode:   cfg.RepeatMode,
	}
}

// Ceiling returns the maximum progress value the timer produces.
func (t *Timer) Ceiling() float64 {
	return float64(t.ceiling)
}

// Start arms the timer. Progress is untouched until the start delay elapses
// and the first Tick advances the sweep from 0. Starting an already-started
// timer is a no-op.
func (t *Timer) Start() {
	if t.started {
		return
	}
	t.started = true
	t.delayLeft = t.startDelay
	t.remaining = t.repeatCount
	t.reversed = false
	t.tween = gween.New(0, t.ceiling, t.cycleSeconds, ease.Linear)
}

// Stop cancels the timer immediately. Progress freezes at its last value
// until the next Start.
func (t *Timer) Stop() {
	t.started = false
	t.running = false
}

// IsStarted reports whether the timer has been started and not yet stopped or
// finished. A started timer may still be waiting out its start delay.
func (t *Timer) IsStarted() bool {
	return t.started
}

// IsRunning reports whether progress is actively advancing.
func (t *Timer) IsRunning() bool {
	return t.running
}

// Progress returns the most recently computed progress value.
func (t *Timer) Progress() float64 {
	return t.progress
}

// Tick advances the timer by dt seconds and reports whether the progress
// value changed, i.e. whether the host should redraw.
func (t *Timer) Tick(dt float64) bool {
	if !t.started || dt <= 0 {
		return false
	}
	if t.delayLeft > 0 {
		t.delayLeft -= dt
		if t.delayLeft > 0 {
			return false
		}
		dt = -t.delayLeft
		t.delayLeft = 0
		if dt == 0 {
			return false
		}
	}
	t.running = true

	v, finished := t.tween.Update(float32(dt))
	t.progress = float64(v)
	for finished {
		if t.remaining == 0 {
			// Repeats exhausted: the timer stops with progress at the end
			// of the final sweep.
			t.started = false
			t.running = false
			break
		}
		if t.remaining > 0 {
			t.remaining--
		}
		overflow := t.tween.Overflow
		if overflow < 0 {
			overflow = 0
		}
		if t.repeatMode == RepeatReverse {
			t.reversed = !t.reversed
			if t.reversed {
				t.tween = gween.New(t.ceiling, 0, t.cycleSeconds, ease.Linear)
			} else {
				t.tween = gween.New(0, t.ceiling, t.cycleSeconds, ease.Linear)
			}
		} else {
			t.tween.Reset()
		}
		v, finished = t.tween.Update(overflow)
		t.progress = float64(v)
	}
	return true
}
