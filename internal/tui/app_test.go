package tui

import (
	"context"
	"testing"

	"github.com/h0rv/shelf/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(libraryFlag string) AppModel {
	cat := &mockCatalog{libraries: testLibraries}
	return NewAppModel(cat, store.New(), context.Background(), libraryFlag, testOptions())
}

func TestAppModel_PreselectsLibrary(t *testing.T) {
	app := newTestApp("Shows")

	model, cmd := app.Update(librariesLoadedMsg{libraries: testLibraries})
	app = model.(AppModel)

	assert.Equal(t, ScreenGrid, app.currentScreen)
	assert.NotNil(t, cmd)
	require.NotNil(t, app.store.GetLibrary())
	assert.Equal(t, "lib-2", app.store.GetLibrary().ID)
	assert.Empty(t, app.libraryFlag, "the flag only applies once")
}

func TestAppModel_UnknownLibrary(t *testing.T) {
	app := newTestApp("Music")

	model, _ := app.Update(librariesLoadedMsg{libraries: testLibraries})
	app = model.(AppModel)

	require.Error(t, app.err)
	assert.Contains(t, app.View(), "Music")
}

func TestAppModel_NoLibraries(t *testing.T) {
	app := newTestApp("")

	model, _ := app.Update(librariesLoadedMsg{})
	app = model.(AppModel)

	require.Error(t, app.err)
	assert.Contains(t, app.View(), "no libraries found")
}

func TestAppModel_PickerToGrid(t *testing.T) {
	app := newTestApp("")

	model, _ := app.Update(librariesLoadedMsg{libraries: testLibraries})
	app = model.(AppModel)
	assert.Equal(t, ScreenLibraryPicker, app.currentScreen)

	model, _ = app.Update(LibrarySelectedMsg{Library: testLibraries[0]})
	app = model.(AppModel)
	assert.Equal(t, ScreenGrid, app.currentScreen)
	assert.Equal(t, "lib-1", app.store.GetLibrary().ID)
	require.NotNil(t, app.gridModel)
}

func TestAppModel_DetailRoundTrip(t *testing.T) {
	app := newTestApp("Movies")
	model, _ := app.Update(librariesLoadedMsg{libraries: testLibraries})
	app = model.(AppModel)

	model, _ = app.Update(pageLoadedMsg{libraryID: "lib-1", items: testItems(3)})
	app = model.(AppModel)
	require.Len(t, app.gridModel.visible, 3)
	first := app.gridModel.slots[0]

	item, err := app.store.GetItem("i1")
	require.NoError(t, err)
	model, _ = app.Update(openDetailMsg{item: item})
	app = model.(AppModel)
	assert.Equal(t, ScreenDetail, app.currentScreen)
	assert.Contains(t, app.View(), "Item 1")

	// Grid messages still reach the grid behind the detail screen.
	model, _ = app.Update(pageLoadedMsg{libraryID: "lib-1", items: testItems(5)})
	app = model.(AppModel)
	assert.Equal(t, ScreenDetail, app.currentScreen)
	assert.Len(t, app.gridModel.visible, 5)

	model, _ = app.Update(closeDetailMsg{})
	app = model.(AppModel)
	assert.Equal(t, ScreenGrid, app.currentScreen)
	_, ok := app.currentModel.(GridModel)
	assert.True(t, ok)
	assert.True(t, first.card.Focus().Focused)
}

func TestAppModel_ChangeLibraryClosesGrid(t *testing.T) {
	app := newTestApp("Movies")
	model, _ := app.Update(librariesLoadedMsg{libraries: testLibraries})
	app = model.(AppModel)
	model, _ = app.Update(pageLoadedMsg{libraryID: "lib-1", items: testItems(3)})
	app = model.(AppModel)
	hub := app.gridModel.slots[0].hub

	model, _ = app.Update(changeLibraryMsg{})
	app = model.(AppModel)

	assert.Equal(t, ScreenLibraryPicker, app.currentScreen)
	assert.Nil(t, app.gridModel)
	assert.Equal(t, 0, hub.Len())
}

func TestAppModel_Error(t *testing.T) {
	app := newTestApp("")

	model, _ := app.Update(ErrorMsg{Err: assert.AnError})
	app = model.(AppModel)
	assert.Contains(t, app.View(), "Error:")
}
