package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/h0rv/shelf/internal/card"
	"github.com/h0rv/shelf/internal/domain"
)

// Artwork sizes in device-independent units. At the default terminal density
// of 0.1 a poster is 16x8 cells.
const (
	posterWidthDP     = 160
	posterHeightDP    = 80
	landscapeWidthDP  = 220
	landscapeHeightDP = 60
)

// Text rows rendered under the artwork: title, badges, progress, summary.
const cardTextLines = 4

// bannerFavorite is the banner resource for favorite items.
const bannerFavorite = "favorite"

// posterView is the terminal stand-in for the card's image view. It records
// the decoration and geometry the card pushes and the renderer reads them.
type posterView struct {
	overlay    card.Decoration
	background card.Decoration
	padding    int
	width      int
	height     int
	mode       card.ScaleMode

	// caption stands in for the loaded artwork
	caption string

	invalidations int
}

func (v *posterView) SetOverlay(d card.Decoration) { v.overlay = d }
func (v *posterView) SetBackground(d card.Decoration) { v.background = d }
func (v *posterView) SetPadding(px int) { v.padding = px }

func (v *posterView) SetSize(width, height int, mode card.ScaleMode) {
	v.width = width
	v.height = height
	v.mode = mode
}

// Invalidate only counts; Bubble Tea redraws after every update anyway.
func (v *posterView) Invalidate() { v.invalidations++ }

// loadArtwork binds the item's placeholder artwork to an image view handed out
// by card.MainImageView.
func loadArtwork(img card.ImageView, item *domain.Item) {
	v, ok := img.(*posterView)
	if !ok {
		return
	}
	v.caption = strings.ToUpper(item.Type)
	if v.caption == "" {
		v.caption = "ITEM"
	}
}

// cellContainer is the grid cell a card is attached to.
type cellContainer struct {
	clip          bool
	elevation     float64
	stateAnimator bool
}

func newCellContainer() *cellContainer {
	return &cellContainer{clip: true, stateAnimator: true}
}

func (c *cellContainer) SetClipChildren(clip bool) { c.clip = clip }
func (c *cellContainer) SetElevation(z float64) { c.elevation = z }
func (c *cellContainer) DisableStateAnimator() { c.stateAnimator = false }

// slotConfig is shared by all slots of a grid.
type slotConfig struct {
	density    float64
	focusScale float64
	ascii      bool
	formatter  card.NumberFormatter
	logger     *slog.Logger
	now        func() time.Time
}

// slot is one recycled position in the grid. The card instance lives as long
// as the slot; items are bound and unbound as the grid scrolls.
type slot struct {
	card   *card.Card
	view   *posterView
	cell   *cellContainer
	hub    *card.Hub
	anim   *tween
	itemID string
}

func newSlot(cfg slotConfig) *slot {
	view := &posterView{}
	anim := newTween(cfg.now)
	c := card.New(card.Options{
		Image:        view,
		Display:      card.Density(cfg.density),
		Formatter:    cfg.formatter,
		Animator:     anim,
		Capabilities: card.Capabilities{OverlayForeground: !cfg.ascii},
		FocusScale:   cfg.focusScale,
		Logger:       cfg.logger,
	})

	hub := &card.Hub{}
	c.Bind(hub)

	return &slot{
		card: c,
		view: view,
		cell: newCellContainer(),
		hub:  hub,
		anim: anim,
	}
}

// bind recycles the slot for item: the previous item is detached, the fields
// are rewritten and the card is attached to its cell again.
func (s *slot) bind(item *domain.Item, selected bool) {
	s.unbind()

	s.itemID = item.ID
	s.apply(item)
	loadArtwork(s.card.MainImageView(), item)
	s.hub.Attached(s.cell)
	if selected {
		s.card.OnSelectedChanged(true)
	}
}

// apply writes item's fields onto the card without touching its visual state.
func (s *slot) apply(item *domain.Item) {
	c := s.card
	c.SetTitle(item.Name)
	c.SetSummary(item.Overview)
	c.SetCommunityRating(item.CommunityRating)
	c.SetCriticRating(item.CriticRating)
	c.SetYear(item.ProductionYear)
	c.SetDuration(item.RunTimeTicks)
	c.SetResumeProgress(item.PlayedPercentage)
	c.SetWatchedIndicator(item.Played, item.UnplayedItemCount)

	if item.IsLandscape() {
		c.SetImageDimensionsWithMode(landscapeWidthDP, landscapeHeightDP, card.ScaleFitCenter)
	} else {
		c.SetImageDimensions(posterWidthDP, posterHeightDP)
	}

	if item.IsFavorite {
		c.SetBanner(bannerFavorite)
	} else {
		c.ClearBanner()
	}
}

// unbind detaches the current item, if any.
func (s *slot) unbind() {
	if s.itemID == "" {
		return
	}
	s.hub.Detached()
	s.itemID = ""
}

// close releases the card's lifecycle subscription.
func (s *slot) close() {
	s.unbind()
	s.card.Close()
}

func (s *slot) bound() bool {
	return s.itemID != ""
}
