package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/shelf/internal/domain"
	"github.com/h0rv/shelf/internal/store"
)

// AppScreen represents the different screens in the application flow.
type AppScreen int

const (
	ScreenLoading AppScreen = iota
	ScreenLibraryPicker
	ScreenGrid
	ScreenDetail
)

// AppModel is the root Bubble Tea model that manages screen transitions.
// It orchestrates the flow from library selection -> grid -> item detail.
type AppModel struct {
	// Dependencies
	catalog Catalog
	store   *store.Store
	ctx     context.Context
	opts    Options

	// CLI flag (pre-filled library ID or name)
	libraryFlag string

	// Current state
	currentScreen AppScreen
	currentModel  tea.Model
	err           error
	loadingMsg    string

	libraries []domain.Library

	// Cached grid to preserve state while the detail screen is open
	gridModel *GridModel
}

// NewAppModel creates a new app model. Pass an empty libraryFlag to show the
// library picker.
func NewAppModel(catalog Catalog, s *store.Store, ctx context.Context, libraryFlag string, opts Options) AppModel {
	return AppModel{
		catalog:       catalog,
		store:         s,
		ctx:           ctx,
		opts:          opts.withDefaults(),
		libraryFlag:   libraryFlag,
		currentScreen: ScreenLoading,
		loadingMsg:    "Loading libraries...",
	}
}

// Init fetches the libraries.
func (m AppModel) Init() tea.Cmd {
	return m.fetchLibraries()
}

// Update handles messages and transitions between screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" && m.currentScreen != ScreenGrid {
			return m, tea.Quit
		}

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case librariesLoadedMsg:
		m.libraries = msg.libraries

		if m.libraryFlag != "" {
			lib, ok := findLibrary(msg.libraries, m.libraryFlag)
			if !ok {
				m.err = fmt.Errorf("library '%s' not found", m.libraryFlag)
				return m, nil
			}
			// Only pre-select once; "change library" shows the picker
			m.libraryFlag = ""
			return m.showGrid(lib)
		}
		return m.showPicker()

	case LibrarySelectedMsg:
		return m.showGrid(msg.Library)

	case changeLibraryMsg:
		if m.gridModel != nil {
			m.gridModel.close()
			m.gridModel = nil
		}
		return m.showPicker()

	case openDetailMsg:
		m.currentScreen = ScreenDetail
		detail := NewDetailModel(msg.item, m.opts.Formatter)
		m.currentModel = detail
		return m, detail.Init()

	case pageLoadedMsg, frameMsg, playedSavedMsg, playedErrorMsg, spinner.TickMsg:
		// The grid keeps loading and animating behind the detail screen
		if m.currentScreen == ScreenDetail && m.gridModel != nil {
			model, cmd := m.gridModel.Update(msg)
			gm := model.(GridModel)
			m.gridModel = &gm
			return m, cmd
		}

	case closeDetailMsg:
		if m.gridModel == nil {
			return m.showPicker()
		}
		// Back to the grid; its cards are in the foreground again
		m.currentScreen = ScreenGrid
		m.currentModel = *m.gridModel
		m.gridModel.resume()
		// Request window size to ensure proper rendering
		return m, tea.WindowSize()
	}

	// Delegate to current screen's model
	if m.currentModel != nil {
		var cmd tea.Cmd
		m.currentModel, cmd = m.currentModel.Update(msg)
		// Keep gridModel in sync when on grid screen
		if m.currentScreen == ScreenGrid {
			if gm, ok := m.currentModel.(GridModel); ok {
				m.gridModel = &gm
			}
		}
		return m, cmd
	}

	return m, nil
}

// View renders the current screen.
func (m AppModel) View() string {
	// Show error if present
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress Ctrl+C to quit", m.err))
	}

	// Delegate to current screen
	if m.currentModel != nil {
		return m.currentModel.View()
	}

	// Show loading state
	return m.loadingMsg + "\n\nPress Ctrl+C to quit"
}

// showPicker switches to the library picker.
func (m AppModel) showPicker() (tea.Model, tea.Cmd) {
	if len(m.libraries) == 0 {
		m.err = fmt.Errorf("no libraries found")
		return m, nil
	}
	m.currentScreen = ScreenLibraryPicker
	picker := NewLibraryPickerModel(m.libraries)
	m.currentModel = picker
	return m, picker.Init()
}

// showGrid resets the store to lib and switches to a new grid.
func (m AppModel) showGrid(lib domain.Library) (tea.Model, tea.Cmd) {
	m.store.Reset()
	m.store.SetLibrary(&lib)

	m.currentScreen = ScreenGrid
	grid := NewGridModel(m.store, m.catalog, m.ctx, m.opts)
	m.gridModel = &grid
	m.currentModel = grid
	return m, grid.Init()
}

// fetchLibraries creates a command to list the available libraries.
func (m AppModel) fetchLibraries() tea.Cmd {
	return func() tea.Msg {
		libraries, err := m.catalog.Libraries(m.ctx)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to fetch libraries: %w", err)}
		}
		return librariesLoadedMsg{libraries: libraries}
	}
}

// Custom messages for app transitions.
type librariesLoadedMsg struct {
	libraries []domain.Library
}
