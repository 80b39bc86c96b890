package card

import (
	"io"
	"log/slog"
	"time"
)

// fakeImage records every decoration change pushed by the card.
type fakeImage struct {
	overlay     Decoration
	background  Decoration
	padding     int
	width       int
	height      int
	mode        ScaleMode
	changes     int
	invalidated int
}

func (f *fakeImage) SetOverlay(d Decoration) { f.overlay = d; f.changes++ }
func (f *fakeImage) SetBackground(d Decoration) { f.background = d; f.changes++ }
func (f *fakeImage) SetPadding(px int) { f.padding = px; f.changes++ }
func (f *fakeImage) Invalidate() { f.invalidated++ }

func (f *fakeImage) SetSize(width, height int, mode ScaleMode) {
	f.width, f.height, f.mode = width, height, mode
}

// fakeContainer records what the card asked of its parent.
type fakeContainer struct {
	clip             bool
	elevation        float64
	animatorDisabled bool
}

func (f *fakeContainer) SetClipChildren(clip bool) { f.clip = clip }
func (f *fakeContainer) SetElevation(z float64) { f.elevation = z }
func (f *fakeContainer) DisableStateAnimator() { f.animatorDisabled = true }

// fakeAnimator records transitions without advancing them.
type fakeAnimator struct {
	from, to float64
	duration time.Duration
	apply    func(float64)
	started  int
	canceled int
}

func (f *fakeAnimator) Animate(from, to float64, d time.Duration, apply func(float64)) {
	f.from, f.to, f.duration, f.apply = from, to, d, apply
	f.started++
}

func (f *fakeAnimator) Cancel() { f.canceled++ }

// finish completes the last transition.
func (f *fakeAnimator) finish() {
	if f.apply != nil {
		f.apply(f.to)
	}
}

// steppingAnimator keeps a transition pending until step, like a frame loop.
// Cancel drops it.
type steppingAnimator struct {
	to    float64
	apply func(float64)
}

func (s *steppingAnimator) Animate(_, to float64, _ time.Duration, apply func(float64)) {
	s.to, s.apply = to, apply
}

func (s *steppingAnimator) Cancel() { s.apply = nil }

func (s *steppingAnimator) step() {
	if s.apply != nil {
		s.apply(s.to)
		s.apply = nil
	}
}

func newTestCard(caps Capabilities) (*Card, *fakeImage, *fakeAnimator) {
	img := &fakeImage{overlay: DecorationFocusBorder}
	anim := &fakeAnimator{}
	c := New(Options{
		Image:        img,
		Display:      Density(2),
		Animator:     anim,
		Capabilities: caps,
		FocusScale:   1.1,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	img.changes = 0
	img.invalidated = 0
	return c, img, anim
}

func ptr[T any](v T) *T {
	return &v
}
