package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphqlRequest is the JSON body sent by the client.
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// newTestServer answers each request with the response returned by handle.
func newTestServer(t *testing.T, handle func(req graphqlRequest, r *http.Request) string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handle(req, r)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Libraries(t *testing.T) {
	var auth string
	srv := newTestServer(t, func(req graphqlRequest, r *http.Request) string {
		auth = r.Header.Get("Authorization")
		return `{"data":{"libraries":[
			{"id":"lib1","name":"Movies","collectionType":"movies"},
			{"id":"lib2","name":"Shows","collectionType":"tvshows"}
		]}}`
	})

	client := New(srv.URL, "secret")
	libs, err := client.Libraries(context.Background())

	require.NoError(t, err)
	require.Len(t, libs, 2)
	assert.Equal(t, "Movies", libs[0].Name)
	assert.Equal(t, "tvshows", libs[1].CollectionType)
	assert.Equal(t, "Bearer secret", auth)
}

func TestClient_NoTokenSendsNoHeader(t *testing.T) {
	var auth string
	srv := newTestServer(t, func(req graphqlRequest, r *http.Request) string {
		auth = r.Header.Get("Authorization")
		return `{"data":{"libraries":[]}}`
	})

	_, err := New(srv.URL, "").Libraries(context.Background())

	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestClient_Items(t *testing.T) {
	var vars map[string]interface{}
	srv := newTestServer(t, func(req graphqlRequest, r *http.Request) string {
		vars = req.Variables
		return `{"data":{"items":{
			"nodes":[{
				"id":"m1","type":"Movie","name":"Heat","overview":"A heist.",
				"communityRating":7.9,"criticRating":null,"productionYear":1995,
				"runTimeTicks":102000000000,"webUrl":"https://media.example.com/m1",
				"userData":{"played":false,"playedPercentage":42.7,"unplayedItemCount":0,"isFavorite":true}
			}],
			"pageInfo":{"hasNextPage":true,"endCursor":"c1"}
		}}}`
	})

	items, cursor, hasMore, err := New(srv.URL, "").Items(context.Background(), "lib1", "c0", 50)

	require.NoError(t, err)
	assert.Equal(t, "c1", cursor)
	assert.True(t, hasMore)
	assert.Equal(t, "lib1", vars["libraryId"])
	assert.Equal(t, "c0", vars["after"])
	assert.EqualValues(t, 50, vars["first"])

	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, "Heat", item.Name)
	assert.Equal(t, "lib1", item.LibraryID)
	require.NotNil(t, item.CommunityRating)
	assert.Equal(t, 7.9, *item.CommunityRating)
	assert.Nil(t, item.CriticRating)
	require.NotNil(t, item.ProductionYear)
	assert.Equal(t, 1995, *item.ProductionYear)
	require.NotNil(t, item.RunTimeTicks)
	assert.Equal(t, int64(102_000_000_000), *item.RunTimeTicks)
	assert.Equal(t, 42, item.PlayedPercentage)
	assert.True(t, item.IsFavorite)
}

func TestClient_Items_UnknownLibrary(t *testing.T) {
	srv := newTestServer(t, func(req graphqlRequest, r *http.Request) string {
		return `{"data":{"items":null}}`
	})

	_, _, _, err := New(srv.URL, "").Items(context.Background(), "nope", "", 10)
	assert.ErrorIs(t, err, ErrLibraryNotFound)
}

func TestClient_GraphQLError(t *testing.T) {
	srv := newTestServer(t, func(req graphqlRequest, r *http.Request) string {
		return `{"errors":[{"message":"boom"}]}`
	})

	_, err := New(srv.URL, "").Libraries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestClient_SetPlayed(t *testing.T) {
	var req graphqlRequest
	srv := newTestServer(t, func(r graphqlRequest, _ *http.Request) string {
		req = r
		return `{"data":{"setPlayed":{"item":{"id":"m1"}}}}`
	})

	err := New(srv.URL, "").SetPlayed(context.Background(), "m1", true)

	require.NoError(t, err)
	assert.Contains(t, req.Query, "setPlayed")
	assert.Equal(t, "m1", req.Variables["itemId"])
	assert.Equal(t, true, req.Variables["played"])
}

const testLibraryJSON = `{
	"libraries": [
		{
			"id": "movies",
			"name": "Movies",
			"collectionType": "movies",
			"items": [
				{"id": "m1", "type": "Movie", "name": "Heat", "userData": {"playedPercentage": 30}},
				{"id": "m2", "type": "Movie", "name": "Ronin"},
				{"id": "m3", "type": "Movie", "name": "Thief"}
			]
		},
		{"id": "empty", "name": "Empty", "items": []}
	]
}`

func TestFileSource_Libraries(t *testing.T) {
	src, err := NewFileSource(strings.NewReader(testLibraryJSON))
	require.NoError(t, err)

	libs, err := src.Libraries(context.Background())
	require.NoError(t, err)
	require.Len(t, libs, 2)
	assert.Equal(t, "movies", libs[0].ID)
	assert.Equal(t, "Empty", libs[1].Name)
}

func TestFileSource_ItemsPaging(t *testing.T) {
	src, err := NewFileSource(strings.NewReader(testLibraryJSON))
	require.NoError(t, err)
	ctx := context.Background()

	page, cursor, hasMore, err := src.Items(ctx, "movies", "", 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, "2", cursor)
	assert.True(t, hasMore)

	page, cursor, hasMore, err = src.Items(ctx, "movies", cursor, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Thief", page[0].Name)
	assert.Empty(t, cursor)
	assert.False(t, hasMore)

	_, _, _, err = src.Items(ctx, "movies", "bogus", 2)
	assert.Error(t, err)

	_, _, _, err = src.Items(ctx, "missing", "", 2)
	assert.ErrorIs(t, err, ErrLibraryNotFound)
}

func TestFileSource_SetPlayed(t *testing.T) {
	src, err := NewFileSource(strings.NewReader(testLibraryJSON))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, src.SetPlayed(ctx, "m1", true))

	page, _, _, err := src.Items(ctx, "movies", "", 1)
	require.NoError(t, err)
	assert.True(t, page[0].Played)
	assert.Zero(t, page[0].PlayedPercentage)

	assert.Error(t, src.SetPlayed(ctx, "missing", true))
}

func TestNewFileSource_InvalidJSON(t *testing.T) {
	_, err := NewFileSource(strings.NewReader("{"))
	assert.Error(t, err)
}
