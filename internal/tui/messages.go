// Package tui provides Bubble Tea models for the interactive TUI.
package tui

import (
	"context"

	"github.com/h0rv/shelf/internal/domain"
)

// Catalog is the item source the TUI browses. Both catalog.Client and
// catalog.FileSource satisfy it.
type Catalog interface {
	Libraries(ctx context.Context) ([]domain.Library, error)
	Items(ctx context.Context, libraryID, cursor string, limit int) ([]domain.Item, string, bool, error)
	SetPlayed(ctx context.Context, itemID string, played bool) error
}

// LibrarySelectedMsg is emitted when the user selects a library.
type LibrarySelectedMsg struct {
	Library domain.Library
}

// ErrorMsg is emitted when an error occurs.
type ErrorMsg struct {
	Err error
}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}
