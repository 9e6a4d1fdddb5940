package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/shape.svg":
			w.Header().Set("Content-Type", "image/svg+xml")
			w.Write([]byte(rectSVG))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()

	body, contentType, err := fetcher.Fetch(context.Background(), server.URL+"/shape.svg")
	require.NoError(t, err)
	assert.Equal(t, rectSVG, string(body))
	assert.Equal(t, "image/svg+xml", contentType)
}

func TestHTTPFetcher_Fetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	fetcher := NewHTTPFetcher()

	_, _, err := fetcher.Fetch(context.Background(), server.URL+"/missing.svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "/missing.svg", "error must identify the failing asset")
}

func TestHTTPFetcher_Fetch_ConnectionRefused(t *testing.T) {
	fetcher := NewHTTPFetcher()

	_, _, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/never.svg")
	assert.Error(t, err)
}
