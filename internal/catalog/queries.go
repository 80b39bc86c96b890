package catalog

import (
	"context"
	"fmt"

	"github.com/h0rv/shelf/internal/domain"
	"github.com/machinebox/graphql"
)

// Libraries returns the libraries visible to the current user.
func (c *Client) Libraries(ctx context.Context) ([]domain.Library, error) {
	req := graphql.NewRequest(`
		query {
			libraries {
				id
				name
				collectionType
			}
		}
	`)

	var resp struct {
		Libraries []struct {
			ID             string `json:"id"`
			Name           string `json:"name"`
			CollectionType string `json:"collectionType"`
		} `json:"libraries"`
	}

	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to list libraries: %w", err)
	}

	libraries := make([]domain.Library, 0, len(resp.Libraries))
	for _, l := range resp.Libraries {
		libraries = append(libraries, domain.Library{
			ID:             l.ID,
			Name:           l.Name,
			CollectionType: l.CollectionType,
		})
	}
	return libraries, nil
}

// itemNode is the wire shape of a catalog item.
type itemNode struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Name            string   `json:"name"`
	Overview        string   `json:"overview"`
	CommunityRating *float64 `json:"communityRating"`
	CriticRating    *float64 `json:"criticRating"`
	ProductionYear  *int     `json:"productionYear"`
	RunTimeTicks    *int64   `json:"runTimeTicks"`
	WebURL          string   `json:"webUrl"`
	UserData        struct {
		Played            bool    `json:"played"`
		PlayedPercentage  float64 `json:"playedPercentage"`
		UnplayedItemCount int     `json:"unplayedItemCount"`
		IsFavorite        bool    `json:"isFavorite"`
	} `json:"userData"`
}

func (n itemNode) toDomain(libraryID string) domain.Item {
	return domain.Item{
		ID:                n.ID,
		LibraryID:         libraryID,
		Type:              n.Type,
		Name:              n.Name,
		Overview:          n.Overview,
		CommunityRating:   n.CommunityRating,
		CriticRating:      n.CriticRating,
		ProductionYear:    n.ProductionYear,
		RunTimeTicks:      n.RunTimeTicks,
		PlayedPercentage:  int(n.UserData.PlayedPercentage),
		Played:            n.UserData.Played,
		UnplayedItemCount: n.UserData.UnplayedItemCount,
		IsFavorite:        n.UserData.IsFavorite,
		WebURL:            n.WebURL,
	}
}

// Items fetches one page of a library's items.
// Returns the items, the cursor for the next page, and whether more remain.
func (c *Client) Items(ctx context.Context, libraryID, cursor string, limit int) ([]domain.Item, string, bool, error) {
	req := graphql.NewRequest(`
		query($libraryId: ID!, $first: Int!, $after: String) {
			items(libraryId: $libraryId, first: $first, after: $after) {
				nodes {
					id
					type
					name
					overview
					communityRating
					criticRating
					productionYear
					runTimeTicks
					webUrl
					userData {
						played
						playedPercentage
						unplayedItemCount
						isFavorite
					}
				}
				pageInfo {
					hasNextPage
					endCursor
				}
			}
		}
	`)

	req.Var("libraryId", libraryID)
	req.Var("first", limit)
	if cursor != "" {
		req.Var("after", cursor)
	}

	var resp struct {
		Items *struct {
			Nodes    []itemNode `json:"nodes"`
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
		} `json:"items"`
	}

	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return nil, "", false, fmt.Errorf("failed to get items: %w", err)
	}
	if resp.Items == nil {
		return nil, "", false, fmt.Errorf("%w: %s", ErrLibraryNotFound, libraryID)
	}

	items := make([]domain.Item, 0, len(resp.Items.Nodes))
	for _, n := range resp.Items.Nodes {
		items = append(items, n.toDomain(libraryID))
	}

	return items, resp.Items.PageInfo.EndCursor, resp.Items.PageInfo.HasNextPage, nil
}
