package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmojisSendsAuthAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emojis", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"smile": "https://example.com/unicode/1f604.png?v8", "octocat": "https://example.com/octocat.png?v8"}`))
	}))
	defer srv.Close()

	c := NewClient("test-token")
	c.BaseURL = srv.URL

	emojis, err := c.Emojis(context.Background())
	require.NoError(t, err)
	assert.Len(t, emojis, 2)
	assert.Equal(t, "https://example.com/unicode/1f604.png?v8", emojis["smile"])
}

func TestEmojisNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Bad credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-token")
	c.BaseURL = srv.URL

	_, err := c.Emojis(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestEmojisEmptyTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient("test-token")
	c.BaseURL = srv.URL

	_, err := c.Emojis(context.Background())
	assert.Error(t, err)
}
