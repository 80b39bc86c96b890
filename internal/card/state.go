package card

// FocusState tracks the inputs of the highlight border.
// BorderVisible always equals Focused || Selected.
type FocusState struct {
	Focused       bool
	Selected      bool
	BorderVisible bool
}

// ScaleState tracks the card's zoom. Current animates toward Focused on focus
// gain and toward Default on focus loss.
type ScaleState struct {
	Current float64
	Default float64
	Focused float64
}

// borderStrategy swaps the focus decoration on the image view.
type borderStrategy interface {
	apply(img ImageView, show bool)
}

// overlayBorder draws the border as a foreground decoration over the image.
type overlayBorder struct{}

func (overlayBorder) apply(img ImageView, show bool) {
	if show {
		img.SetOverlay(DecorationFocusBorder)
		return
	}
	img.SetOverlay(DecorationNone)
}

// insetBorder insets the image and paints the border as its background.
type insetBorder struct {
	padding int
}

func (b insetBorder) apply(img ImageView, show bool) {
	if show {
		img.SetPadding(b.padding)
		img.SetBackground(DecorationFocusBorder)
		return
	}
	img.SetPadding(0)
	img.SetBackground(DecorationNone)
}

func selectBorderStrategy(caps Capabilities) borderStrategy {
	if caps.OverlayForeground {
		return overlayBorder{}
	}
	return insetBorder{padding: BorderInsetPx}
}

// OnFocusChanged animates the scale toward the focused or resting value and
// refreshes the border.
func (c *Card) OnFocusChanged(gained bool) {
	c.focus.Focused = gained

	target := c.scale.Default
	if gained {
		target = c.scale.Focused
	}
	c.anim.Animate(c.scale.Current, target, FocusAnimationDuration, c.setScale)

	c.elevation = 0
	c.updateBorder()
}

// OnSelectedChanged records the selection. A change refreshes the border; any
// call stops the running animation and flattens the card.
func (c *Card) OnSelectedChanged(selected bool) {
	was := c.focus.Selected
	c.focus.Selected = selected
	if was != selected {
		c.updateBorder()
	}

	c.anim.Cancel()
	c.elevation = 0
}

// ToggleSelected flips selection, as a click on the card does.
func (c *Card) ToggleSelected() {
	c.OnSelectedChanged(!c.focus.Selected)
}

// OnAttached stops any running transition, resets the scale and stops the
// parent from clipping the border, which overdraws the card bounds.
func (c *Card) OnAttached(parent Container) {
	c.anim.Cancel()
	c.setScale(c.scale.Default)
	c.elevation = 0

	if parent != nil {
		parent.SetClipChildren(false)
		parent.SetElevation(0)
		parent.DisableStateAnimator()
	}
}

// OnDetached resets the card synchronously so a recycled instance does not
// reappear scaled or highlighted.
func (c *Card) OnDetached() {
	c.anim.Cancel()
	c.setScale(DefaultScale)
	c.focus.Focused = false
	c.focus.Selected = false
	c.updateBorder()
}

// OnResumed re-applies the border after the host comes back to the foreground.
func (c *Card) OnResumed() {
	c.updateBorder()
}

func (c *Card) setScale(v float64) {
	c.scale.Current = v
}

// updateBorder pushes the border to the image view only when its visibility
// changes.
func (c *Card) updateBorder() {
	show := c.focus.Focused || c.focus.Selected
	c.focus.BorderVisible = show

	c.logger.Debug("card border state",
		"focused", c.focus.Focused,
		"selected", c.focus.Selected,
		"border", show)

	if c.applied == show {
		return
	}
	c.applied = show

	c.border.apply(c.image, show)
	c.image.Invalidate()
}
