package card

import "time"

// ImmediateAnimator jumps straight to the target value.
type ImmediateAnimator struct{}

func (ImmediateAnimator) Animate(_, to float64, _ time.Duration, apply func(float64)) {
	apply(to)
}

func (ImmediateAnimator) Cancel() {}

// NopImageView records nothing. It backs cards created without an image view.
type NopImageView struct{}

func (*NopImageView) SetOverlay(Decoration) {}
func (*NopImageView) SetBackground(Decoration) {}
func (*NopImageView) SetPadding(int) {}
func (*NopImageView) SetSize(int, int, ScaleMode) {}
func (*NopImageView) Invalidate() {}
