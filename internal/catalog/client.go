// Package catalog provides sources of libraries and items for the browser.
// Client talks to a GraphQL media catalog; FileSource serves a local JSON
// export. Both satisfy the same method set used by the TUI.
package catalog

import (
	"context"
	"errors"

	"github.com/machinebox/graphql"
)

// ErrLibraryNotFound indicates the requested library does not exist.
var ErrLibraryNotFound = errors.New("library not found")

// Client is a GraphQL catalog API client.
// It provides high-level methods for querying and mutating library data.
type Client struct {
	gql   *graphql.Client
	token string
}

// New creates a new catalog client for endpoint. An empty token sends
// unauthenticated requests.
func New(endpoint, token string) *Client {
	return &Client{
		gql:   graphql.NewClient(endpoint),
		token: token,
	}
}

// makeRequest executes a GraphQL request with authentication.
func (c *Client) makeRequest(ctx context.Context, req *graphql.Request, resp interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.gql.Run(ctx, req, resp)
}
