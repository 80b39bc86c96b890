package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/shelf/internal/domain"
)

// libraryItem represents a library in the list.
type libraryItem struct {
	library domain.Library
}

func (i libraryItem) FilterValue() string { return i.library.Name }

// libraryItemDelegate handles rendering of library items.
type libraryItemDelegate struct{}

func (d libraryItemDelegate) Height() int { return 1 }
func (d libraryItemDelegate) Spacing() int { return 0 }
func (d libraryItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d libraryItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(libraryItem)
	if !ok {
		return
	}

	// Format: name (collection type)
	str := i.library.Name
	if i.library.CollectionType != "" {
		str = fmt.Sprintf("%s (%s)", i.library.Name, i.library.CollectionType)
	}

	fn := NormalItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return SelectedItemStyle.Render("> " + s[0])
		}
	}

	fmt.Fprint(w, fn(str))
}

// LibraryPickerModel lets the user select a library to browse.
type LibraryPickerModel struct {
	list list.Model
	err  error
}

// NewLibraryPickerModel creates a new library picker with the given libraries.
func NewLibraryPickerModel(libraries []domain.Library) LibraryPickerModel {
	items := make([]list.Item, len(libraries))
	for i, lib := range libraries {
		items[i] = libraryItem{library: lib}
	}

	// Start with a reasonable default - will be resized by WindowSizeMsg
	l := list.New(items, libraryItemDelegate{}, 80, 20)
	l.Title = "Select Library"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(dimColor)
	l.Styles.HelpStyle = HelpStyle

	return LibraryPickerModel{list: l}
}

// Init initializes the model.
func (m LibraryPickerModel) Init() tea.Cmd {
	// Request window size on init to properly size the list
	return tea.WindowSize()
}

// Update handles messages.
func (m LibraryPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.list.SettingFilter() {
				break
			}
			if item, ok := m.list.SelectedItem().(libraryItem); ok {
				return m, func() tea.Msg {
					return LibrarySelectedMsg{Library: item.library}
				}
			}
		case "q", "esc":
			if !m.list.SettingFilter() && !m.list.IsFiltered() {
				return m, func() tea.Msg {
					return QuitMsg{}
				}
			}
		}

	case tea.WindowSizeMsg:
		// Use full terminal width and height (minus small margin for borders)
		m.list.SetWidth(msg.Width - 2)
		m.list.SetHeight(msg.Height - 2)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m LibraryPickerModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	return m.list.View()
}

// findLibrary returns the library whose ID or name equals want.
func findLibrary(libraries []domain.Library, want string) (domain.Library, bool) {
	for _, lib := range libraries {
		if lib.ID == want || lib.Name == want {
			return lib, true
		}
	}
	return domain.Library{}, false
}
