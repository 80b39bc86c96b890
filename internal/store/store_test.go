package store

import (
	"testing"

	"github.com/h0rv/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures
func createTestLibrary() *domain.Library {
	return &domain.Library{
		ID:             "lib_movies",
		Name:           "Movies",
		CollectionType: "movies",
	}
}

func createTestItems() []*domain.Item {
	rating := 7.9
	year := 1995
	ticks := int64(102_000_000_000)

	return []*domain.Item{
		{
			ID:               "item_1",
			LibraryID:        "lib_movies",
			Type:             domain.ItemTypeMovie,
			Name:             "Heat",
			CommunityRating:  &rating,
			ProductionYear:   &year,
			RunTimeTicks:     &ticks,
			PlayedPercentage: 40,
		},
		{
			ID:        "item_2",
			LibraryID: "lib_movies",
			Type:      domain.ItemTypeMovie,
			Name:      "The Heat",
			Played:    true,
		},
		{
			ID:                "item_3",
			LibraryID:         "lib_movies",
			Type:              domain.ItemTypeSeries,
			Name:              "Twin Peaks",
			UnplayedItemCount: 12,
		},
	}
}

func TestNew(t *testing.T) {
	s := New()
	require.NotNil(t, s)
	assert.Nil(t, s.GetLibrary())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.ItemIDs())
}

func TestSetLibrary(t *testing.T) {
	s := New()
	lib := createTestLibrary()

	s.SetLibrary(lib)
	assert.Equal(t, lib, s.GetLibrary())
}

func TestUpsertItems_KeepsCatalogOrder(t *testing.T) {
	s := New()
	s.UpsertItems(createTestItems())

	assert.Equal(t, []string{"item_1", "item_2", "item_3"}, s.ItemIDs())

	// Updating an existing item keeps its position
	s.UpsertItems([]*domain.Item{
		{ID: "item_4", Name: "Alien"},
		{ID: "item_1", Name: "Heat (Director's Cut)"},
	})

	assert.Equal(t, []string{"item_1", "item_2", "item_3", "item_4"}, s.ItemIDs())
	item, err := s.GetItem("item_1")
	require.NoError(t, err)
	assert.Equal(t, "Heat (Director's Cut)", item.Name)
}

func TestGetItem_NotFound(t *testing.T) {
	s := New()

	item, err := s.GetItem("missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Nil(t, item)
}

func TestItemIDs_ReturnsCopy(t *testing.T) {
	s := New()
	s.UpsertItems(createTestItems())

	ids := s.ItemIDs()
	ids[0] = "modified"

	assert.Equal(t, "item_1", s.ItemIDs()[0])
}

func TestFilter(t *testing.T) {
	s := New()
	s.UpsertItems(createTestItems())

	assert.Equal(t, []string{"item_1", "item_2"}, s.Filter("heat"))
	assert.Equal(t, []string{"item_3"}, s.Filter("PEAKS"))
	assert.Empty(t, s.Filter("nothing"))
	assert.Len(t, s.Filter(""), 3)
}

func TestSetPlayed_AndRollback(t *testing.T) {
	s := New()
	s.UpsertItems(createTestItems())

	require.NoError(t, s.SetPlayed("item_1", true))

	item, _ := s.GetItem("item_1")
	assert.True(t, item.Played)
	assert.Equal(t, 0, item.PlayedPercentage, "played items have no resume position")

	require.NoError(t, s.Rollback())

	item, _ = s.GetItem("item_1")
	assert.False(t, item.Played)
	assert.Equal(t, 40, item.PlayedPercentage)

	assert.ErrorIs(t, s.Rollback(), ErrNoRollback)
}

func TestSetPlayed_Unmark(t *testing.T) {
	s := New()
	s.UpsertItems(createTestItems())

	require.NoError(t, s.SetPlayed("item_2", false))
	item, _ := s.GetItem("item_2")
	assert.False(t, item.Played)
}

func TestSetPlayed_NotFound(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.SetPlayed("missing", true), ErrItemNotFound)
}

func TestPagination(t *testing.T) {
	s := New()

	cursor, hasNext := s.GetPagination()
	assert.Empty(t, cursor)
	assert.False(t, hasNext)

	s.SetPagination("abc", true)
	cursor, hasNext = s.GetPagination()
	assert.Equal(t, "abc", cursor)
	assert.True(t, hasNext)
}

func TestClear_PreservesLibrary(t *testing.T) {
	s := New()
	s.SetLibrary(createTestLibrary())
	s.UpsertItems(createTestItems())
	s.SetPagination("abc", true)

	s.Clear()

	assert.NotNil(t, s.GetLibrary())
	assert.Equal(t, 0, s.Len())
	cursor, hasNext := s.GetPagination()
	assert.Empty(t, cursor)
	assert.False(t, hasNext)
}

func TestReset(t *testing.T) {
	s := New()
	s.SetLibrary(createTestLibrary())
	s.UpsertItems(createTestItems())

	s.Reset()

	assert.Nil(t, s.GetLibrary())
	assert.Equal(t, 0, s.Len())
}
