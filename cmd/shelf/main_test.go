package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/h0rv/shelf/internal/auth"
	"github.com/h0rv/shelf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("file_token\n"), 0o600))

	token, err := resolveToken(&config.Config{Token: "env_token", TokenFile: path})
	require.NoError(t, err)
	assert.Equal(t, "env_token", token, "SHELF_TOKEN wins over the token file")

	token, err = resolveToken(&config.Config{TokenFile: path})
	require.NoError(t, err)
	assert.Equal(t, "file_token", token)

	token, err = resolveToken(&config.Config{})
	assert.ErrorIs(t, err, auth.ErrNoToken)
	assert.Empty(t, token)
}
