package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/h0rv/shelf/internal/domain"
)

// FileSource serves libraries from a JSON export. Items use the same field
// names as the GraphQL API. Played-state changes are kept in memory only.
type FileSource struct {
	libraries []domain.Library
	items     map[string][]domain.Item // library ID -> items
}

type fileLibrary struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	CollectionType string     `json:"collectionType"`
	Items          []itemNode `json:"items"`
}

// LoadFile reads a JSON library export from path.
func LoadFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library file: %w", err)
	}
	defer f.Close()

	return NewFileSource(f)
}

// NewFileSource decodes a JSON library export.
func NewFileSource(r io.Reader) (*FileSource, error) {
	var doc struct {
		Libraries []fileLibrary `json:"libraries"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode library file: %w", err)
	}

	src := &FileSource{items: make(map[string][]domain.Item)}
	for _, l := range doc.Libraries {
		src.libraries = append(src.libraries, domain.Library{
			ID:             l.ID,
			Name:           l.Name,
			CollectionType: l.CollectionType,
		})
		items := make([]domain.Item, 0, len(l.Items))
		for _, n := range l.Items {
			items = append(items, n.toDomain(l.ID))
		}
		src.items[l.ID] = items
	}
	return src, nil
}

// Libraries returns all libraries in file order.
func (s *FileSource) Libraries(ctx context.Context) ([]domain.Library, error) {
	out := make([]domain.Library, len(s.libraries))
	copy(out, s.libraries)
	return out, nil
}

// Items returns one page of a library. The cursor is the offset of the page.
func (s *FileSource) Items(ctx context.Context, libraryID, cursor string, limit int) ([]domain.Item, string, bool, error) {
	all, ok := s.items[libraryID]
	if !ok {
		return nil, "", false, fmt.Errorf("%w: %s", ErrLibraryNotFound, libraryID)
	}

	start := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 {
			return nil, "", false, fmt.Errorf("invalid cursor %q", cursor)
		}
		start = n
	}
	if start > len(all) {
		start = len(all)
	}
	if limit <= 0 {
		limit = len(all)
	}

	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	page := make([]domain.Item, end-start)
	copy(page, all[start:end])

	if end < len(all) {
		return page, strconv.Itoa(end), true, nil
	}
	return page, "", false, nil
}

// SetPlayed updates the in-memory played state of an item.
func (s *FileSource) SetPlayed(ctx context.Context, itemID string, played bool) error {
	for libID, items := range s.items {
		for i := range items {
			if items[i].ID != itemID {
				continue
			}
			items[i].Played = played
			if played {
				items[i].PlayedPercentage = 0
			}
			s.items[libID] = items
			return nil
		}
	}
	return fmt.Errorf("failed to update played state: item %s not found", itemID)
}
