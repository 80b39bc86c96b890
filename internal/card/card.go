// Package card implements the media item card shown in the library grid.
// A Card owns its focus/selection visual state and the per-field visibility
// rules for its badges. Rendering, animation and image loading are reached
// through the narrow collaborator interfaces declared here.
package card

import (
	"log/slog"
	"time"
)

// Layout constants
const (
	// BannerSizeDP is the square size of the corner banner in device-independent units.
	BannerSizeDP = 50
	// BorderInsetPx is the padding applied by the inset border strategy.
	BorderInsetPx = 1
	// FocusAnimationDuration is how long a focus scale transition takes.
	FocusAnimationDuration = 150 * time.Millisecond
	// DefaultScale is the resting scale of a card.
	DefaultScale = 1.0
)

// ScaleMode controls how the image fills its bounds.
type ScaleMode int

const (
	ScaleCenterCrop ScaleMode = iota
	ScaleFitCenter
	ScaleFitXY
)

// Decoration is a graphic applied to the image view for focus highlight.
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationFocusBorder
)

// ImageView is the opaque image sub-view. The host binds image loading to it
// via MainImageView; the card only touches its decoration, padding and size.
type ImageView interface {
	SetOverlay(d Decoration)
	SetBackground(d Decoration)
	SetPadding(px int)
	SetSize(width, height int, mode ScaleMode)
	Invalidate()
}

// Container is the immediate parent of a card inside the host grid.
type Container interface {
	SetClipChildren(clip bool)
	SetElevation(z float64)
	DisableStateAnimator()
}

// Animator runs fire-and-forget value transitions. Starting a new transition
// replaces any running one.
type Animator interface {
	Animate(from, to float64, d time.Duration, apply func(float64))
	Cancel()
}

// Display converts device-independent units to physical pixels.
type Display interface {
	DPToPixels(dp float64) int
	Density() float64
}

// NumberFormatter renders a rating with exactly one fractional digit.
type NumberFormatter interface {
	FormatOneDecimal(v float64) string
}

// Capabilities describes what the host toolkit supports. It is queried once.
type Capabilities struct {
	// OverlayForeground reports whether the image view can draw a decoration
	// over its content. Without it the card falls back to inset padding plus
	// a background.
	OverlayForeground bool
}

// Options configures a new Card. Zero values select defaults.
type Options struct {
	Image        ImageView
	Display      Display
	Formatter    NumberFormatter
	Animator     Animator
	Capabilities Capabilities
	FocusScale   float64
	Logger       *slog.Logger
}

// Label is the state of a text sub-view.
type Label struct {
	Text    string
	Visible bool
}

// ProgressBar is the state of the resume progress bar.
type ProgressBar struct {
	Value   int
	Visible bool
	Width   int
}

// WatchedIndicator is the state of the watched/unwatched corner indicator.
type WatchedIndicator struct {
	Visible      bool
	CheckVisible bool
	CountVisible bool
	Count        string
}

// Banner is the small corner badge drawn over the image.
type Banner struct {
	Resource string
	Visible  bool
	X        int
	Size     int
}

// Card is a single media item card. It is not safe for concurrent use; all
// calls are expected on the UI goroutine.
type Card struct {
	// Collaborators
	image  ImageView
	anim   Animator
	format NumberFormatter
	border borderStrategy
	logger *slog.Logger

	// Visual state
	focus     FocusState
	scale     ScaleState
	elevation float64
	applied   bool // last border visibility pushed to the image view

	// Layout
	density    float64
	bannerSize int
	geometry   ImageGeometry
	banner     *Banner

	// Fields
	title           Label
	summary         Label
	communityRating Label
	criticRating    Label
	year            Label
	duration        Label
	progress        ProgressBar
	watched         WatchedIndicator
	playing         bool

	sub Subscription
}

// New creates a card with the given collaborators.
func New(opts Options) *Card {
	if opts.Image == nil {
		opts.Image = &NopImageView{}
	}
	if opts.Display == nil {
		opts.Display = Density(1)
	}
	if opts.Formatter == nil {
		opts.Formatter = NewLocaleFormatter(DefaultLocale)
	}
	if opts.Animator == nil {
		opts.Animator = ImmediateAnimator{}
	}
	if opts.FocusScale <= 0 {
		opts.FocusScale = DefaultScale
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Card{
		image:      opts.Image,
		anim:       opts.Animator,
		format:     opts.Formatter,
		border:     selectBorderStrategy(opts.Capabilities),
		logger:     opts.Logger,
		density:    opts.Display.Density(),
		bannerSize: opts.Display.DPToPixels(BannerSizeDP),
		scale: ScaleState{
			Current: DefaultScale,
			Default: DefaultScale,
			Focused: opts.FocusScale,
		},
	}
	c.image.SetOverlay(DecorationNone)
	return c
}

// MainImageView returns the image sub-view so the host can bind image loading.
func (c *Card) MainImageView() ImageView {
	return c.image
}

// SetPlayingIndicator is reserved for "now playing" styling.
func (c *Card) SetPlayingIndicator(playing bool) {
	c.playing = playing
}

// Focus returns the current focus state.
func (c *Card) Focus() FocusState { return c.focus }

// Scale returns the current scale state.
func (c *Card) Scale() ScaleState { return c.scale }

// Elevation returns the card's depth. Cards render flat.
func (c *Card) Elevation() float64 { return c.elevation }

// Geometry returns the physical image geometry.
func (c *Card) Geometry() ImageGeometry { return c.geometry }

// BannerSize returns the physical banner size computed at construction.
func (c *Card) BannerSize() int { return c.bannerSize }

// Banner returns the banner state; the zero value means none was ever set.
func (c *Card) Banner() Banner {
	if c.banner == nil {
		return Banner{}
	}
	return *c.banner
}

func (c *Card) Title() Label { return c.title }
func (c *Card) Summary() Label { return c.summary }
func (c *Card) CommunityRating() Label { return c.communityRating }
func (c *Card) CriticRating() Label { return c.criticRating }
func (c *Card) Year() Label { return c.year }
func (c *Card) Duration() Label { return c.duration }
func (c *Card) Progress() ProgressBar { return c.progress }
func (c *Card) Watched() WatchedIndicator { return c.watched }
func (c *Card) Playing() bool { return c.playing }
