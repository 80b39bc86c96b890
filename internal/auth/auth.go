// Package auth provides catalog access token management.
// It implements a simple interface with multiple providers tried in order.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoToken indicates that no provider could supply a token.
var ErrNoToken = errors.New("no catalog token available")

// TokenProvider defines the interface for obtaining a catalog access token.
type TokenProvider interface {
	GetToken() (string, error)
}

// FileProvider obtains tokens from a file containing only the token,
// as written by secret managers and container runtimes.
type FileProvider struct {
	Path string
}

// GetToken reads and trims the token file.
func (f *FileProvider) GetToken() (string, error) {
	if f.Path == "" {
		return "", errors.New("token file path not configured")
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", f.Path)
	}
	return token, nil
}

// StaticProvider returns a fixed token, typically from configuration.
type StaticProvider struct {
	Token string
}

// GetToken returns the configured token or an error if it is empty.
func (s *StaticProvider) GetToken() (string, error) {
	if s.Token == "" {
		return "", errors.New("no token configured")
	}
	return s.Token, nil
}

// GetToken tries each provider in order and returns the first token found.
// If every provider fails, the returned error wraps ErrNoToken and lists
// each provider's failure.
func GetToken(providers ...TokenProvider) (string, error) {
	var reasons []string
	for _, p := range providers {
		token, err := p.GetToken()
		if err == nil {
			return token, nil
		}
		reasons = append(reasons, err.Error())
	}

	if len(reasons) == 0 {
		return "", ErrNoToken
	}
	return "", fmt.Errorf("%w: %s", ErrNoToken, strings.Join(reasons, "; "))
}
