package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/shelf/internal/card"
	"github.com/h0rv/shelf/internal/domain"
	"github.com/h0rv/shelf/internal/store"
	"github.com/pkg/browser"
)

// Layout constants
const (
	headerLines     = 2 // Title/status line + hints/position line
	defaultWidth    = 80
	defaultHeight   = 24
	defaultDensity  = 0.1
	defaultPageSize = 100
)

// Options configures the grid and the cards in it.
type Options struct {
	PageSize   int
	FocusScale float64
	Density    float64
	ASCII      bool
	Formatter  card.NumberFormatter
	Logger     *slog.Logger

	// Now is the animation clock; tests pin it.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.FocusScale <= 0 {
		o.FocusScale = card.DefaultScale
	}
	if o.Density <= 0 {
		o.Density = defaultDensity
	}
	if o.Formatter == nil {
		o.Formatter = card.NewLocaleFormatter(card.DefaultLocale)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// GridModel shows the library as a grid of media cards. Card instances are
// held by a fixed set of slots and rebound to items as the grid scrolls.
type GridModel struct {
	// Dependencies
	store   *store.Store
	catalog Catalog
	ctx     context.Context
	opts    Options
	logger  *slog.Logger

	// UI components
	keymap      KeyMap
	help        HelpModel
	spinner     spinner.Model
	filterInput textinput.Model
	renderer    cardRenderer

	// Grid state
	slots    []*slot
	visible  []string        // Filtered item IDs in catalog order
	selected map[string]bool // Item ID -> selected
	cursor   int             // Index of the focused item in visible
	offset   int             // First visible row
	cols     int
	rows     int

	// View state
	width       int
	height      int
	showHelp    bool
	filterMode  bool
	filterText  string
	loading     bool
	loadingMore bool
	generation  int  // Bumped on refresh; stale pages are dropped
	ticking     bool // A frame tick is scheduled
	errorToast  string
}

// NewGridModel creates a new grid model for the library set in s.
func NewGridModel(s *store.Store, catalog Catalog, ctx context.Context, opts Options) GridModel {
	opts = opts.withDefaults()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Prompt = "/ "

	renderer := newCardRenderer(opts.ASCII)

	m := GridModel{
		store:       s,
		catalog:     catalog,
		ctx:         ctx,
		opts:        opts,
		logger:      opts.Logger,
		keymap:      DefaultKeyMap(),
		help:        NewHelpModel(DefaultKeyMap(), renderer.glyphs),
		spinner:     sp,
		filterInput: ti,
		renderer:    renderer,
		selected:    make(map[string]bool),
		loading:     true,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	(&m).layout()
	return m
}

// Init starts loading the first page.
func (m GridModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tea.WindowSize(),
		m.loadPage("", m.generation),
	)
}

// Update handles messages
func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		(&m).layout()
		cmd := m.animate()
		return m, cmd

	case tea.FocusMsg:
		m.resume()
		return m, nil

	case pageLoadedMsg:
		return m.handlePage(msg)

	case playedSavedMsg:
		m.logger.Debug("played state saved", "item", msg.itemID)
		return m, nil

	case playedErrorMsg:
		m.logger.Warn("played state update failed", "item", msg.itemID, "error", msg.err)
		if err := m.store.Rollback(); err != nil {
			m.logger.Warn("rollback failed", "error", err)
		}
		(&m).rebind()
		m.errorToast = fmt.Sprintf("Update failed: %v", msg.err)
		return m, nil

	case frameMsg:
		m.ticking = false
		if m.step(time.Time(msg)) {
			m.ticking = true
			return m, frameCmd()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		model, cmd := m.handleKeyPress(msg)
		gm := model.(GridModel)
		cmd = tea.Batch(cmd, gm.animate())
		return gm, cmd
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m GridModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Help overlay
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "q" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	// Filter mode
	if m.filterMode {
		switch msg.String() {
		case "enter":
			m.filterMode = false
			m.filterText = m.filterInput.Value()
			(&m).applyFilter()
			(&m).layout()
			cmd := m.maybeLoadMore()
			return m, cmd
		case "esc":
			m.filterMode = false
			m.filterInput.SetValue(m.filterText)
			m.filterInput.Blur()
			(&m).layout()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			return m, cmd
		}
	}

	m.errorToast = ""

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	case key.Matches(msg, m.keymap.Filter):
		m.filterMode = true
		m.filterInput.Focus()
		(&m).layout()
	case key.Matches(msg, m.keymap.Left):
		(&m).moveCursor(-1)
	case key.Matches(msg, m.keymap.Right):
		(&m).moveCursor(1)
	case key.Matches(msg, m.keymap.Up):
		(&m).moveCursor(-m.cols)
	case key.Matches(msg, m.keymap.Down):
		(&m).moveCursor(m.cols)
	case key.Matches(msg, m.keymap.Top):
		(&m).moveCursor(-len(m.visible))
	case key.Matches(msg, m.keymap.Bottom):
		(&m).moveCursor(len(m.visible))
	case key.Matches(msg, m.keymap.PageDown):
		(&m).moveCursor(len(m.slots))
	case key.Matches(msg, m.keymap.PageUp):
		(&m).moveCursor(-len(m.slots))
	case key.Matches(msg, m.keymap.Select):
		(&m).toggleSelected()
		return m, nil
	case key.Matches(msg, m.keymap.ClearSelection):
		(&m).clearSelection()
		return m, nil
	case key.Matches(msg, m.keymap.Details):
		if item := m.focusedItem(); item != nil {
			return m, func() tea.Msg { return openDetailMsg{item: item} }
		}
		return m, nil
	case key.Matches(msg, m.keymap.Open):
		if item := m.focusedItem(); item != nil && item.WebURL != "" {
			if err := browser.OpenURL(item.WebURL); err != nil {
				m.errorToast = fmt.Sprintf("Open failed: %v", err)
			}
		}
		return m, nil
	case key.Matches(msg, m.keymap.TogglePlayed):
		return m.togglePlayed()
	case key.Matches(msg, m.keymap.Refresh):
		m.generation++
		m.loading = true
		m.loadingMore = false
		return m, m.loadPage("", m.generation)
	case key.Matches(msg, m.keymap.ChangeLibrary):
		return m, func() tea.Msg { return changeLibraryMsg{} }
	default:
		return m, nil
	}

	cmd := m.maybeLoadMore()
	return m, cmd
}

// handlePage merges a loaded page into the store and keeps paging while the
// grid is close to the end of what is loaded.
func (m GridModel) handlePage(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	lib := m.store.GetLibrary()
	if msg.generation != m.generation || lib == nil || msg.libraryID != lib.ID {
		return m, nil
	}
	m.loadingMore = false

	if msg.err != nil {
		m.loading = false
		m.errorToast = fmt.Sprintf("Load failed: %v", msg.err)
		m.logger.Error("page load failed", "error", msg.err)
		return m, nil
	}

	if m.loading {
		// First page of a (re)load replaces everything.
		m.store.Clear()
		m.loading = false
	}

	items := make([]*domain.Item, len(msg.items))
	for i := range msg.items {
		items[i] = &msg.items[i]
	}
	m.store.UpsertItems(items)
	m.store.SetPagination(msg.nextCursor, msg.hasMore)
	m.logger.Debug("page loaded", "items", len(items), "total", m.store.Len(), "hasMore", msg.hasMore)

	(&m).applyFilter()
	(&m).rebind()
	cmd := tea.Batch(m.maybeLoadMore(), m.animate())
	return m, cmd
}

// View renders the grid - fills entire terminal exactly
func (m GridModel) View() string {
	width := m.width

	sections := []string{m.renderHeader(width), m.renderSecondHeader(width)}
	if m.filterMode {
		sections = append(sections, m.filterInput.View())
	}

	gridHeight := m.gridHeight()

	var main string
	switch {
	case m.showHelp:
		helpLines := strings.Split(m.help.View(width), "\n")
		if len(helpLines) > gridHeight {
			helpLines = helpLines[:gridHeight]
		}
		main = strings.Join(helpLines, "\n")
	case m.loading && m.store.Len() == 0:
		main = lipgloss.Place(width, gridHeight, lipgloss.Center, lipgloss.Center, m.spinner.View()+" Loading...")
	case len(m.visible) == 0:
		empty := "No items. Press 'r' to refresh."
		if m.filterText != "" {
			empty = fmt.Sprintf("Nothing matches %q.", m.filterText)
		}
		main = lipgloss.Place(width, gridHeight, lipgloss.Center, lipgloss.Center, empty)
	default:
		main = m.renderGrid()
	}
	sections = append(sections, main)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the library name on the left and status on the right.
func (m GridModel) renderHeader(width int) string {
	title := "shelf"
	if lib := m.store.GetLibrary(); lib != nil {
		title = lib.Name
	}

	var statusParts []string
	if m.loadingMore || (m.loading && m.store.Len() > 0) {
		statusParts = append(statusParts, m.spinner.View()+"loading")
	}
	statusParts = append(statusParts, fmt.Sprintf("%d items", len(m.visible)))
	if n := len(m.selected); n > 0 {
		statusParts = append(statusParts, selectionStyle.Render(fmt.Sprintf("%d selected", n)))
	}
	if m.filterText != "" {
		statusParts = append(statusParts, "/"+m.filterText)
	}
	statusParts = append(statusParts, "[?]help")

	status := strings.Join(statusParts, " | ")
	padding := width - lipgloss.Width(title) - lipgloss.Width(status) - 2
	if padding < 1 {
		padding = 1
	}
	return headerTitleStyle.Render(title) + strings.Repeat(" ", padding) + dimStyle.Render(status)
}

// renderSecondHeader renders navigation hints and the focused position.
func (m GridModel) renderSecondHeader(width int) string {
	left := "hjkl:move space:select enter:details w:watched o:open"

	right := ""
	if m.errorToast != "" {
		right = ErrorStyle.Render(m.errorToast)
	} else if len(m.visible) > 0 {
		right = fmt.Sprintf("item %d/%d", m.cursor+1, len(m.visible))
		if _, more := m.store.GetPagination(); more {
			right += "+"
		}
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	return dimStyle.Render(left) + strings.Repeat(" ", padding) + right
}

// renderGrid places every slot in a fixed-size cell.
func (m GridModel) renderGrid() string {
	cw, ch := m.cellSize()
	rows := make([]string, 0, m.rows)
	for r := 0; r < m.rows; r++ {
		cells := make([]string, 0, m.cols)
		for c := 0; c < m.cols; c++ {
			s := m.slots[r*m.cols+c]
			if !s.bound() {
				cells = append(cells, lipgloss.NewStyle().Width(cw).Height(ch).Render(""))
				continue
			}
			view := m.renderer.render(s)
			if s.cell.clip {
				view = lipgloss.NewStyle().MaxWidth(cw - 2).MaxHeight(ch - 2).Render(view)
			}
			cells = append(cells, lipgloss.Place(cw, ch, lipgloss.Center, lipgloss.Top, view))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cellSize is the room one card needs at its focused scale, border included.
func (m GridModel) cellSize() (int, int) {
	d := card.Density(m.opts.Density)
	w := max(d.DPToPixels(posterWidthDP), d.DPToPixels(landscapeWidthDP))
	h := max(d.DPToPixels(posterHeightDP), d.DPToPixels(landscapeHeightDP))

	scale := math.Max(m.opts.FocusScale, card.DefaultScale)
	return scaled(w, scale) + 2, scaled(h, scale) + cardTextLines + 2
}

func (m GridModel) gridHeight() int {
	h := m.height - headerLines
	if m.filterMode {
		h--
	}
	return max(h, 1)
}

// layout fits as many slots as the terminal holds. Slots beyond the new count
// are closed; new ones start unbound.
func (m *GridModel) layout() {
	cw, ch := m.cellSize()
	m.cols = max(m.width/cw, 1)
	m.rows = max(m.gridHeight()/ch, 1)

	want := m.cols * m.rows
	for len(m.slots) > want {
		last := m.slots[len(m.slots)-1]
		last.close()
		m.slots = m.slots[:len(m.slots)-1]
	}
	for len(m.slots) < want {
		m.slots = append(m.slots, newSlot(slotConfig{
			density:    m.opts.Density,
			focusScale: m.opts.FocusScale,
			ascii:      m.opts.ASCII,
			formatter:  m.opts.Formatter,
			logger:     m.logger,
			now:        m.opts.Now,
		}))
	}

	m.adjustScroll()
	m.rebind()
}

// applyFilter recomputes the visible items and clamps the cursor.
func (m *GridModel) applyFilter() {
	m.visible = m.store.Filter(m.filterText)
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
	m.adjustScroll()
}

// rebind points every slot at the item it should show. Slots whose item
// changes are recycled; the others only get their fields refreshed.
func (m *GridModel) rebind() {
	for i, s := range m.slots {
		idx := m.offset*m.cols + i
		if idx >= len(m.visible) {
			s.unbind()
			continue
		}

		item, err := m.store.GetItem(m.visible[idx])
		if err != nil {
			s.unbind()
			continue
		}

		if s.itemID == item.ID {
			s.apply(item)
			continue
		}
		s.bind(item, m.selected[item.ID])
	}
	m.syncFocus()
}

// syncFocus gives focus to the slot showing the cursor and takes it from the
// rest.
func (m *GridModel) syncFocus() {
	for i, s := range m.slots {
		want := s.bound() && m.offset*m.cols+i == m.cursor
		if s.card.Focus().Focused != want {
			s.card.OnFocusChanged(want)
		}
	}
}

// resume tells every card the grid is in the foreground again.
func (m GridModel) resume() {
	for _, s := range m.slots {
		s.hub.Resumed()
	}
}

// moveCursor moves the focus by delta items, clamped to the loaded items.
func (m *GridModel) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.visible)-1)
	m.adjustScroll()
	m.rebind()
}

// adjustScroll keeps the cursor's row on screen.
func (m *GridModel) adjustScroll() {
	if m.cols == 0 {
		return
	}
	row := m.cursor / m.cols
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+m.rows {
		m.offset = row - m.rows + 1
	}
	lastRow := max((len(m.visible)-1)/m.cols, 0)
	if m.offset > lastRow {
		m.offset = lastRow
	}
}

// focusedSlot returns the slot holding the cursor, or nil.
func (m GridModel) focusedSlot() *slot {
	i := m.cursor - m.offset*m.cols
	if i < 0 || i >= len(m.slots) || !m.slots[i].bound() {
		return nil
	}
	return m.slots[i]
}

// focusedItem returns the item under the cursor, or nil.
func (m GridModel) focusedItem() *domain.Item {
	if m.cursor >= len(m.visible) {
		return nil
	}
	item, err := m.store.GetItem(m.visible[m.cursor])
	if err != nil {
		return nil
	}
	return item
}

func (m *GridModel) toggleSelected() {
	s := m.focusedSlot()
	if s == nil {
		return
	}
	s.card.ToggleSelected()
	if s.card.Focus().Selected {
		m.selected[s.itemID] = true
	} else {
		delete(m.selected, s.itemID)
	}
}

func (m *GridModel) clearSelection() {
	for _, s := range m.slots {
		if s.bound() && s.card.Focus().Selected {
			s.card.OnSelectedChanged(false)
		}
	}
	m.selected = make(map[string]bool)
}

// togglePlayed flips the watched state of the focused item optimistically and
// sends the mutation.
func (m GridModel) togglePlayed() (tea.Model, tea.Cmd) {
	item := m.focusedItem()
	if item == nil {
		return m, nil
	}

	id := item.ID
	played := !item.Played
	if err := m.store.SetPlayed(id, played); err != nil {
		m.errorToast = fmt.Sprintf("Update failed: %v", err)
		return m, nil
	}
	(&m).rebind()

	return m, func() tea.Msg {
		if err := m.catalog.SetPlayed(m.ctx, id, played); err != nil {
			return playedErrorMsg{itemID: id, err: err}
		}
		return playedSavedMsg{itemID: id}
	}
}

// maybeLoadMore fetches the next page once fewer than a screenful of items
// remain past the visible slots.
func (m *GridModel) maybeLoadMore() tea.Cmd {
	cursor, more := m.store.GetPagination()
	if !more || m.loading || m.loadingMore {
		return nil
	}
	remaining := len(m.visible) - (m.offset*m.cols + len(m.slots))
	if remaining >= len(m.slots) {
		return nil
	}
	m.loadingMore = true
	return m.loadPage(cursor, m.generation)
}

// step advances running animations and reports whether any is still running.
func (m GridModel) step(now time.Time) bool {
	running := false
	for _, s := range m.slots {
		if s.anim.Step(now) {
			running = true
		}
	}
	return running
}

// animate schedules a frame tick if an animation is running and none is
// pending.
func (m *GridModel) animate() tea.Cmd {
	if m.ticking {
		return nil
	}
	for _, s := range m.slots {
		if s.anim.Active() {
			m.ticking = true
			return frameCmd()
		}
	}
	return nil
}

// close releases every slot.
func (m GridModel) close() {
	for _, s := range m.slots {
		s.close()
	}
}

// loadPage fetches one page of the current library.
func (m GridModel) loadPage(cursor string, generation int) tea.Cmd {
	return func() tea.Msg {
		lib := m.store.GetLibrary()
		if lib == nil {
			return ErrorMsg{Err: store.ErrNoLibrary}
		}

		items, next, hasMore, err := m.catalog.Items(m.ctx, lib.ID, cursor, m.opts.PageSize)
		if err != nil {
			return pageLoadedMsg{generation: generation, libraryID: lib.ID, err: err}
		}
		return pageLoadedMsg{
			generation: generation,
			libraryID:  lib.ID,
			items:      items,
			nextCursor: next,
			hasMore:    hasMore,
		}
	}
}

// Message types
type (
	changeLibraryMsg struct{}
	openDetailMsg    struct{ item *domain.Item }
	playedSavedMsg   struct{ itemID string }
	playedErrorMsg   struct {
		itemID string
		err    error
	}
	pageLoadedMsg struct {
		generation int
		libraryID  string
		items      []domain.Item
		nextCursor string
		hasMore    bool
		err        error
	}
)
