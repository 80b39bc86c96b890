// Package store provides an in-memory state layer for the browsed library.
// It keeps items in catalog order, answers title filters and supports
// optimistic played-state updates with rollback.
package store

import (
	"errors"
	"strings"

	"github.com/h0rv/shelf/internal/domain"
)

var (
	// ErrNoLibrary indicates no library has been set in the store.
	ErrNoLibrary = errors.New("no library set")
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrNoRollback indicates there is no pending optimistic update to revert.
	ErrNoRollback = errors.New("no rollback state available")
)

// Store manages the in-memory state of one library.
type Store struct {
	library *domain.Library

	// Item storage in catalog order
	items map[string]*domain.Item // ID -> Item
	order []string

	// Pagination state
	cursor      string
	hasNextPage bool

	// Rollback state for optimistic updates
	rollbackItem *domain.Item
}

// New creates a new empty Store instance.
func New() *Store {
	return &Store{
		items: make(map[string]*domain.Item),
	}
}

// SetLibrary sets the current library.
func (s *Store) SetLibrary(library *domain.Library) {
	s.library = library
}

// GetLibrary returns the current library, or nil if not set.
func (s *Store) GetLibrary() *domain.Library {
	return s.library
}

// UpsertItems adds or updates items. New items are appended in the order
// given; existing items keep their position.
func (s *Store) UpsertItems(items []*domain.Item) {
	for _, item := range items {
		if _, exists := s.items[item.ID]; !exists {
			s.order = append(s.order, item.ID)
		}
		s.items[item.ID] = item
	}
}

// GetItem retrieves an item by ID, returning ErrItemNotFound if not found.
func (s *Store) GetItem(id string) (*domain.Item, error) {
	item, exists := s.items[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	return len(s.order)
}

// ItemIDs returns all item IDs in catalog order.
func (s *Store) ItemIDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Filter returns the IDs of items whose title contains text (case-insensitive),
// in catalog order. An empty text matches everything.
func (s *Store) Filter(text string) []string {
	if text == "" {
		return s.ItemIDs()
	}

	needle := strings.ToLower(text)
	ids := make([]string, 0)
	for _, id := range s.order {
		if strings.Contains(strings.ToLower(s.items[id].Name), needle) {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetPlayed performs an optimistic update of an item's played state.
// Marking an item played also clears its resume position.
// The previous state is saved for potential rollback.
func (s *Store) SetPlayed(id string, played bool) error {
	item, exists := s.items[id]
	if !exists {
		return ErrItemNotFound
	}

	// Save rollback state (copy the item)
	saved := *item
	s.rollbackItem = &saved

	item.Played = played
	if played {
		item.PlayedPercentage = 0
	}
	return nil
}

// Rollback reverts the last SetPlayed operation.
// This should be called when the mutation fails on the server.
func (s *Store) Rollback() error {
	if s.rollbackItem == nil {
		return ErrNoRollback
	}

	s.items[s.rollbackItem.ID] = s.rollbackItem
	s.rollbackItem = nil
	return nil
}

// SetPagination updates the pagination state.
func (s *Store) SetPagination(cursor string, hasNextPage bool) {
	s.cursor = cursor
	s.hasNextPage = hasNextPage
}

// GetPagination returns the current pagination state.
func (s *Store) GetPagination() (cursor string, hasNextPage bool) {
	return s.cursor, s.hasNextPage
}

// Clear resets the store to empty state, preserving the library.
func (s *Store) Clear() {
	s.items = make(map[string]*domain.Item)
	s.order = nil
	s.cursor = ""
	s.hasNextPage = false
	s.rollbackItem = nil
}

// Reset completely resets the store to initial state.
func (s *Store) Reset() {
	s.library = nil
	s.Clear()
}
