// Package domain defines the normalized media catalog types.
// These types are independent of the catalog API structure.
package domain

// Library is a top-level collection of items (e.g., "Movies", "Shows").
type Library struct {
	ID             string // Catalog node ID
	Name           string // Display name
	CollectionType string // Collection type (e.g., "movies", "tvshows")
}

// Item is a single browsable media item in a normalized format.
// Optional metadata is nil when the catalog does not provide it.
type Item struct {
	ID                string   // Catalog item ID
	LibraryID         string   // Owning library ID
	Type              string   // Item type: "Movie", "Series", "Episode", ...
	Name              string   // Display title
	Overview          string   // Plot summary
	CommunityRating   *float64 // Audience rating (0-10)
	CriticRating      *float64 // Critic score (0-100)
	ProductionYear    *int     // Release year
	RunTimeTicks      *int64   // Runtime in 100ns ticks
	PlayedPercentage  int      // Resume position in percent
	Played            bool     // Fully watched
	UnplayedItemCount int      // Unwatched children (series/seasons)
	IsFavorite        bool     // Marked as favorite
	WebURL            string   // Item page in the web client (may be empty)
}

// ItemType constants for commonly used item types.
const (
	ItemTypeMovie   = "Movie"
	ItemTypeSeries  = "Series"
	ItemTypeSeason  = "Season"
	ItemTypeEpisode = "Episode"
	ItemTypeVideo   = "Video"
)

// IsLandscape reports whether the item's artwork is a wide thumbnail rather
// than a poster.
func (i *Item) IsLandscape() bool {
	return i.Type == ItemTypeEpisode || i.Type == ItemTypeVideo
}
