package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/shelf/internal/card"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

var (
	artStyle = lipgloss.NewStyle().
			Background(artColor).
			Foreground(dimColor)

	bannerStyle = lipgloss.NewStyle().
			Background(bannerColor).
			Foreground(lipgloss.Color("0")).
			Bold(true)

	watchedStyle = lipgloss.NewStyle().
			Background(accentColor).
			Foreground(lipgloss.Color("0"))

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	focusFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor)

	restFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder())
)

// glyphs are the symbols drawn on a card.
type glyphs struct {
	check  string
	rating string
	sep    string
	banner map[string]string
}

var (
	unicodeGlyphs = glyphs{
		check:  "✓",
		rating: "★",
		sep:    " · ",
		banner: map[string]string{bannerFavorite: "♥"},
	}
	asciiGlyphs = glyphs{
		check:  "v",
		rating: "*",
		sep:    " | ",
		banner: map[string]string{bannerFavorite: "<3"},
	}
)

// cardRenderer draws a slot from the state its card exposes.
type cardRenderer struct {
	glyphs glyphs
	bar    progress.Model
}

func newCardRenderer(ascii bool) cardRenderer {
	bar := progress.New(
		progress.WithSolidFill(string(accentColor)),
		progress.WithoutPercentage(),
	)
	g := unicodeGlyphs
	if ascii {
		g = asciiGlyphs
		bar.Full = '#'
		bar.Empty = '-'
	}
	return cardRenderer{glyphs: g, bar: bar}
}

// scaled applies a card scale to a cell count.
func scaled(n int, scale float64) int {
	v := int(math.Round(float64(n) * scale))
	if v < 1 {
		return 1
	}
	return v
}

// render draws the artwork, the text rows under it and the focus frame.
// Scaling grows the whole card; the overlay border draws outside it.
func (r cardRenderer) render(s *slot) string {
	c := s.card
	scale := c.Scale().Current
	w := scaled(s.view.width, scale)
	h := scaled(s.view.height, scale)

	body := lipgloss.JoinVertical(lipgloss.Left,
		r.artwork(s, w, h, scale),
		r.textRows(c, w),
	)

	frame := restFrameStyle
	if s.view.overlay == card.DecorationFocusBorder {
		frame = focusFrameStyle
	}
	return frame.Render(body)
}

// artwork draws the image area: placeholder art, the corner banner and the
// watched indicator. The inset border paints the padding around it.
func (r cardRenderer) artwork(s *slot, w, h int, scale float64) string {
	pad := s.view.padding
	iw := w - 2*pad
	ih := h - 2*pad
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}

	rows := make([]string, ih)
	for i := range rows {
		rows[i] = artStyle.Width(iw).Render("")
	}
	rows[ih/2] = artStyle.Width(iw).Align(lipgloss.Center).Render(truncate.String(s.view.caption, uint(iw)))

	if wi := s.card.Watched(); wi.Visible {
		rows[ih-1] = r.watchedRow(wi, iw)
	}
	if b := s.card.Banner(); b.Visible {
		rows[0] = r.bannerRow(b, iw, scale)
	}

	art := strings.Join(rows, "\n")
	if s.view.background == card.DecorationFocusBorder {
		return lipgloss.NewStyle().Padding(pad).Background(accentColor).Render(art)
	}
	return lipgloss.NewStyle().Padding(pad).Render(art)
}

func (r cardRenderer) bannerRow(b card.Banner, width int, scale float64) string {
	size := scaled(b.Size, scale)
	if size > width {
		size = width
	}
	x := int(math.Round(float64(b.X) * scale))
	if x > width-size {
		x = width - size
	}
	if x < 0 {
		x = 0
	}

	glyph, ok := r.glyphs.banner[b.Resource]
	if !ok {
		glyph = strings.ToUpper(truncate.String(b.Resource, 1))
	}

	var sb strings.Builder
	if x > 0 {
		sb.WriteString(artStyle.Width(x).Render(""))
	}
	sb.WriteString(bannerStyle.Width(size).Align(lipgloss.Center).Render(truncate.String(glyph, uint(size))))
	if rest := width - x - size; rest > 0 {
		sb.WriteString(artStyle.Width(rest).Render(""))
	}
	return sb.String()
}

func (r cardRenderer) watchedRow(w card.WatchedIndicator, width int) string {
	text := r.glyphs.check
	if w.CountVisible {
		text = w.Count
	}
	text = truncate.String(" "+text+" ", uint(width))

	rest := width - lipgloss.Width(text)
	if rest <= 0 {
		return watchedStyle.Render(text)
	}
	return artStyle.Width(rest).Render("") + watchedStyle.Render(text)
}

// textRows draws title, badges, resume progress and the first summary line.
func (r cardRenderer) textRows(c *card.Card, width int) string {
	rows := make([]string, 0, cardTextLines)

	rows = append(rows, cardTitleStyle.Render(truncate.StringWithTail(c.Title().Text, uint(width), "…")))
	rows = append(rows, dimStyle.Render(truncate.StringWithTail(r.badges(c), uint(width), "…")))

	if p := c.Progress(); p.Visible {
		bar := r.bar
		bar.Width = width
		rows = append(rows, bar.ViewAs(float64(p.Value)/100))
	} else {
		rows = append(rows, "")
	}

	summary := ""
	if s := c.Summary(); s.Visible && s.Text != "" {
		summary = strings.SplitN(wordwrap.String(s.Text, width), "\n", 2)[0]
		summary = truncate.StringWithTail(summary, uint(width), "…")
	}
	rows = append(rows, summaryStyle.Render(summary))

	return strings.Join(rows, "\n")
}

// badges joins the visible metadata badges into one line.
func (r cardRenderer) badges(c *card.Card) string {
	var parts []string
	if l := c.Year(); l.Visible {
		parts = append(parts, l.Text)
	}
	if l := c.Duration(); l.Visible {
		parts = append(parts, l.Text)
	}
	if l := c.CommunityRating(); l.Visible {
		parts = append(parts, r.glyphs.rating+l.Text)
	}
	if l := c.CriticRating(); l.Visible {
		parts = append(parts, l.Text)
	}
	return strings.Join(parts, r.glyphs.sep)
}
