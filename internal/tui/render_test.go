package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/shelf/internal/card"
	"github.com/h0rv/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newTestSlot(ascii bool) *slot {
	return newSlot(slotConfig{
		density:    0.1,
		focusScale: 1.1,
		ascii:      ascii,
		now:        func() time.Time { return testEpoch },
	})
}

func heat() *domain.Item {
	year := 1995
	ticks := 170 * card.TicksPerMinute
	rating := 7.6
	critic := 85.0
	return &domain.Item{
		ID:                "heat",
		Type:              domain.ItemTypeMovie,
		Name:              "Heat",
		Overview:          "A group of professional bank robbers start to feel the heat.",
		ProductionYear:    &year,
		RunTimeTicks:      &ticks,
		CommunityRating:   &rating,
		CriticRating:      &critic,
		PlayedPercentage:  40,
		UnplayedItemCount: 3,
		IsFavorite:        true,
	}
}

func TestCardRenderer_Unfocused(t *testing.T) {
	s := newTestSlot(false)
	s.bind(heat(), false)

	out := newCardRenderer(false).render(s)

	// 16x8 poster, four text rows and the hidden frame
	assert.Equal(t, 18, lipgloss.Width(out))
	assert.Equal(t, 14, lipgloss.Height(out))
	assert.Contains(t, out, "Heat")
	assert.Contains(t, out, "1995")
	assert.Contains(t, out, "2h 50m")
	assert.Contains(t, out, "MOVIE")
	assert.Contains(t, out, "♥")
	assert.NotContains(t, out, "╭")
}

func TestCardRenderer_FocusedScalesUp(t *testing.T) {
	s := newTestSlot(false)
	s.bind(heat(), false)
	s.card.OnFocusChanged(true)
	s.anim.Step(testEpoch.Add(time.Second))

	out := newCardRenderer(false).render(s)

	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Equal(t, 9+cardTextLines+2, lipgloss.Height(out))
	assert.Contains(t, out, "╭")
}

func TestCardRenderer_ASCIIInsetBorder(t *testing.T) {
	s := newTestSlot(true)
	s.bind(heat(), false)
	s.card.OnFocusChanged(true)

	assert.Equal(t, card.BorderInsetPx, s.view.padding)
	assert.Equal(t, card.DecorationFocusBorder, s.view.background)
	assert.Equal(t, card.DecorationNone, s.view.overlay)

	out := newCardRenderer(true).render(s)
	assert.Equal(t, 18, lipgloss.Width(out), "the inset border stays inside the artwork")
	assert.Contains(t, out, "<3")
	assert.NotContains(t, out, "╭")
	assert.NotContains(t, out, "♥")
}

func TestCardRenderer_Badges(t *testing.T) {
	rating := 7.6
	item := &domain.Item{ID: "x", Name: "X", CommunityRating: &rating}

	s := newTestSlot(false)
	s.bind(item, false)
	assert.Equal(t, "★7.6", newCardRenderer(false).badges(s.card))
	assert.Equal(t, "*7.6", newCardRenderer(true).badges(s.card))

	item.CommunityRating = nil
	s.apply(item)
	assert.Empty(t, newCardRenderer(false).badges(s.card))
}

func TestCardRenderer_WatchedRow(t *testing.T) {
	r := newCardRenderer(false)

	row := r.watchedRow(card.WatchedState(false, 3), 16)
	assert.Equal(t, 16, lipgloss.Width(row))
	assert.Contains(t, row, " 3 ")

	row = r.watchedRow(card.WatchedState(true, 3), 16)
	assert.Contains(t, row, "✓")
	assert.NotContains(t, row, "3")
}

func TestCardRenderer_BannerRow(t *testing.T) {
	r := newCardRenderer(false)

	row := r.bannerRow(card.Banner{Resource: bannerFavorite, Visible: true, X: 11, Size: 5}, 16, 1.0)
	assert.Equal(t, 16, lipgloss.Width(row))
	assert.Contains(t, row, "♥")

	// Unknown resources fall back to their initial; oversized banners clamp.
	row = r.bannerRow(card.Banner{Resource: "new", Visible: true, X: 30, Size: 40}, 10, 1.0)
	assert.Equal(t, 10, lipgloss.Width(row))
	assert.Contains(t, row, "N")
}

func TestScaled(t *testing.T) {
	assert.Equal(t, 16, scaled(16, 1.0))
	assert.Equal(t, 18, scaled(16, 1.1))
	assert.Equal(t, 1, scaled(0, 1.1))
}
