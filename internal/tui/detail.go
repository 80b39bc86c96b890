package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/shelf/internal/card"
	"github.com/h0rv/shelf/internal/domain"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"
)

// Layout constants
const (
	leftPanelRatio = 0.35 // Left panel takes 35% of width
	minLeftWidth   = 30
	maxLeftWidth   = 50
	footerHeight   = 1
	borderSize     = 2 // Top + bottom border
)

// Detail view styles
var (
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(dimColor)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	focusedPanelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accentColor)

	scrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(accentColor)
)

// DetailModel shows one item with its full overview.
type DetailModel struct {
	item      *domain.Item
	formatter card.NumberFormatter

	viewport viewport.Model
	bar      progress.Model

	errorMsg string

	width  int
	height int
}

// NewDetailModel creates a new detail view model
func NewDetailModel(item *domain.Item, formatter card.NumberFormatter) DetailModel {
	if formatter == nil {
		formatter = card.NewLocaleFormatter(card.DefaultLocale)
	}

	vp := viewport.New(40, 10) // Will be resized in WindowSizeMsg
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	m := DetailModel{
		item:      item,
		formatter: formatter,
		viewport:  vp,
		bar: progress.New(
			progress.WithSolidFill(string(accentColor)),
			progress.WithoutPercentage(),
		),
		width:  100,
		height: 30,
	}
	m.resizeComponents()
	return m
}

// Init initializes the detail model
func (m DetailModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeComponents()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// panelWidths splits the width between the metadata and overview panels.
func (m DetailModel) panelWidths() (int, int) {
	left := int(float64(m.width) * leftPanelRatio)
	left = min(max(left, minLeftWidth), maxLeftWidth)
	right := max(m.width-left-1, 30) // 1 char gap
	return left, right
}

func (m DetailModel) contentHeight() int {
	return max(m.height-headerLines-footerHeight, 10)
}

// resizeComponents calculates and sets component dimensions
func (m *DetailModel) resizeComponents() {
	_, right := m.panelWidths()
	// Border plus horizontal padding; the panel title takes one line.
	m.viewport.Width = right - borderSize - 2
	m.viewport.Height = m.contentHeight() - borderSize - 1
	m.updateViewportContent()
}

// handleKeyPress processes keyboard input
func (m DetailModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "backspace":
		return m, func() tea.Msg { return closeDetailMsg{} }
	case "o":
		if m.item.WebURL != "" {
			if err := browser.OpenURL(m.item.WebURL); err != nil {
				m.errorMsg = fmt.Sprintf("Open failed: %v", err)
			}
		}
	case "j", "down":
		m.viewport.LineDown(1)
	case "k", "up":
		m.viewport.LineUp(1)
	case "ctrl+d":
		m.viewport.HalfViewDown()
	case "ctrl+u":
		m.viewport.HalfViewUp()
	case "g":
		m.viewport.GotoTop()
	case "G":
		m.viewport.GotoBottom()
	}

	return m, nil
}

// View renders the split-screen detail view
func (m DetailModel) View() string {
	leftWidth, rightWidth := m.panelWidths()
	contentHeight := m.contentHeight()

	header := m.renderHeader()

	leftPanel := panelBorderStyle.
		Width(leftWidth - borderSize).
		Height(contentHeight - borderSize).
		Render(m.renderLeftPanel(leftWidth - borderSize))

	rightPanel := focusedPanelBorderStyle.
		Width(rightWidth - borderSize).
		Height(contentHeight - borderSize).
		Padding(0, 1).
		Render(m.renderRightPanel())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, " ", rightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, panels, m.renderFooter(m.width))
}

// renderHeader renders the item title and key hints.
func (m DetailModel) renderHeader() string {
	hints := dimStyle.Render("[q]back [o]open [j/k]scroll [g/G]top/bottom")
	return headerTitleStyle.Render(m.item.Name) + "\n" + hints
}

// renderFooter renders the bottom status bar
func (m DetailModel) renderFooter(width int) string {
	left := ""
	if m.errorMsg != "" {
		left = ErrorStyle.Render("✗ " + m.errorMsg)
	}

	right := ""
	if m.viewport.TotalLineCount() > m.viewport.Height {
		switch {
		case m.viewport.AtTop():
			right = "TOP"
		case m.viewport.AtBottom():
			right = "END"
		default:
			right = fmt.Sprintf("%d%%", int(m.viewport.ScrollPercent()*100))
		}
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + dimStyle.Render(right)
}

// renderLeftPanel renders the metadata panel. Fields follow the same
// visibility rules as the card badges.
func (m DetailModel) renderLeftPanel(width int) string {
	var b strings.Builder

	b.WriteString(detailLabelStyle.Render(m.item.Type))
	b.WriteString("\n\n")
	b.WriteString(detailTitleStyle.Render(wordwrap.String(m.item.Name, width-2)))
	b.WriteString("\n\n")

	field := func(label string, l card.Label) {
		if !l.Visible {
			return
		}
		b.WriteString(detailLabelStyle.Render(label + ": "))
		b.WriteString(detailValueStyle.Render(l.Text))
		b.WriteString("\n")
	}
	field("Year", card.YearLabel(m.item.ProductionYear))
	field("Runtime", card.DurationLabel(m.item.RunTimeTicks))
	field("Rating", card.CommunityRatingLabel(m.item.CommunityRating, m.formatter))
	field("Critics", card.CriticRatingLabel(m.item.CriticRating, m.formatter))

	switch w := card.WatchedState(m.item.Played, m.item.UnplayedItemCount); {
	case w.CheckVisible:
		field("Status", card.Label{Text: "Watched", Visible: true})
	case w.CountVisible:
		field("Unwatched", card.Label{Text: w.Count, Visible: true})
	}

	if m.item.IsFavorite {
		field("Favorite", card.Label{Text: "yes", Visible: true})
	}

	if p := card.ResumeProgress(m.item.PlayedPercentage); p.Visible {
		bar := m.bar
		bar.Width = max(width-2, 1)
		b.WriteString("\n")
		b.WriteString(detailLabelStyle.Render(fmt.Sprintf("Resume at %d%%", p.Value)))
		b.WriteString("\n")
		b.WriteString(bar.ViewAs(float64(p.Value) / 100))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRightPanel renders the overview panel with its viewport.
func (m DetailModel) renderRightPanel() string {
	scrollHint := ""
	if m.viewport.TotalLineCount() > m.viewport.Height {
		switch {
		case m.viewport.AtTop():
			scrollHint = " ↓"
		case m.viewport.AtBottom():
			scrollHint = " ↑"
		default:
			scrollHint = " ↕"
		}
	}

	title := detailLabelStyle.Render("Overview") + scrollIndicatorStyle.Render(scrollHint)
	if m.item.Overview == "" {
		return title + "\n\n" + dimStyle.Render("No overview available")
	}
	return title + "\n" + m.viewport.View()
}

// updateViewportContent wraps the overview to the viewport width.
func (m *DetailModel) updateViewportContent() {
	wrapWidth := max(m.viewport.Width-2, 20)
	m.viewport.SetContent(detailValueStyle.Render(wordwrap.String(m.item.Overview, wrapWidth)))
}

// Message types for detail view
type closeDetailMsg struct{}
