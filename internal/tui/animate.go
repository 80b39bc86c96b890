package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces scale animations (~30fps is plenty for a terminal).
const frameInterval = time.Second / 30

// frameMsg advances running animations.
type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// tween animates one value with an ease-out curve. It implements
// card.Animator; a new Animate call replaces the running transition.
type tween struct {
	now func() time.Time

	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	apply    func(float64)
	active   bool
}

func newTween(now func() time.Time) *tween {
	if now == nil {
		now = time.Now
	}
	return &tween{now: now}
}

func (t *tween) Animate(from, to float64, d time.Duration, apply func(float64)) {
	t.from = from
	t.to = to
	t.duration = d
	t.apply = apply
	t.start = t.now()
	t.active = true

	if d <= 0 {
		t.Step(t.start)
	}
}

// Cancel stops the transition where it is.
func (t *tween) Cancel() {
	t.active = false
}

// Active reports whether a transition is running.
func (t *tween) Active() bool {
	return t.active
}

// Step applies the value for time now and reports whether the transition is
// still running.
func (t *tween) Step(now time.Time) bool {
	if !t.active {
		return false
	}

	elapsed := now.Sub(t.start)
	if elapsed >= t.duration {
		t.active = false
		t.apply(t.to)
		return false
	}

	p := float64(elapsed) / float64(t.duration)
	if p < 0 {
		p = 0
	}
	p = 1 - (1-p)*(1-p)
	t.apply(t.from + (t.to-t.from)*p)
	return true
}
