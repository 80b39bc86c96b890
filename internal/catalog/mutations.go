package catalog

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"
)

// SetPlayed marks an item as watched or unwatched for the current user.
func (c *Client) SetPlayed(ctx context.Context, itemID string, played bool) error {
	req := graphql.NewRequest(`
		mutation($itemId: ID!, $played: Boolean!) {
			setPlayed(input: {itemId: $itemId, played: $played}) {
				item {
					id
				}
			}
		}
	`)

	req.Var("itemId", itemID)
	req.Var("played", played)

	var resp struct {
		SetPlayed struct {
			Item struct {
				ID string `json:"id"`
			} `json:"item"`
		} `json:"setPlayed"`
	}

	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return fmt.Errorf("failed to update played state: %w", err)
	}

	return nil
}
