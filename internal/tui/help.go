package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Help overlay styles
var (
	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accentColor).
				Padding(0, 2)

	legendTitleStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)
)

// legendMinWidth is the overlay width below which the glyph legend moves
// under the key bindings.
const legendMinWidth = 90

// HelpModel shows the key bindings next to a legend of the card glyphs.
type HelpModel struct {
	help   help.Model
	keymap KeyMap
	legend []legendEntry
}

type legendEntry struct {
	glyph string
	text  string
}

// NewHelpModel creates the help overlay for the glyph set the cards use.
func NewHelpModel(keymap KeyMap, g glyphs) HelpModel {
	h := help.New()
	h.ShowAll = true

	return HelpModel{
		help:   h,
		keymap: keymap,
		legend: []legendEntry{
			{g.check, "watched"},
			{"3", "unwatched episodes"},
			{g.rating + "7.5", "community rating"},
			{"85.0%", "critic rating"},
			{g.banner[bannerFavorite], "favorite"},
			{"border", "focused or selected"},
		},
	}
}

// View renders the overlay within width columns.
func (m HelpModel) View(width int) string {
	legend := m.renderLegend()

	m.help.Width = width - 6 // border and padding
	keys := m.help.View(m.keymap)

	var body string
	if width >= legendMinWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, keys, "    ", legend)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, keys, "", legend)
	}
	return helpOverlayStyle.Render(body)
}

func (m HelpModel) renderLegend() string {
	glyphWidth := 0
	for _, e := range m.legend {
		glyphWidth = max(glyphWidth, lipgloss.Width(e.glyph))
	}

	var b strings.Builder
	b.WriteString(legendTitleStyle.Render("Cards"))
	for _, e := range m.legend {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(glyphWidth + 2).Render(e.glyph))
		b.WriteString(dimStyle.Render(e.text))
	}
	return b.String()
}
