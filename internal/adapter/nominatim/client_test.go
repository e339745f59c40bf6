package nominatim

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/footprint-map/internal/domain"
	"github.com/couchcryptid/footprint-map/internal/observability"
)

const testUserAgent = "footprint-test"

func testClient(baseURL string) *Client {
	return NewClient(baseURL, testUserAgent, 5*time.Second,
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func respondWith(t *testing.T, w http.ResponseWriter, places []place) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(places))
}

func TestClient_Lookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Beijing, China", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))

		respondWith(t, w, []place{
			{Lat: "39.9042", Lon: "116.4074", DisplayName: "Beijing, China"},
		})
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Lookup(context.Background(), "Beijing, China")
	require.NoError(t, err)

	assert.Equal(t, 39.9042, result.Lat)
	assert.Equal(t, 116.4074, result.Lon)
	assert.Equal(t, "Beijing, China", result.DisplayName)
}

func TestClient_Lookup_CountrySuffixFallback(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		if q == "Springfield, USA" {
			respondWith(t, w, []place{{Lat: "39.78", Lon: "-89.65", DisplayName: "Springfield, Illinois"}})
			return
		}
		respondWith(t, w, nil)
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Lookup(context.Background(), "Springfield")
	require.NoError(t, err)

	assert.Equal(t, []string{"Springfield", "Springfield, China", "Springfield, USA"}, queries)
	assert.Equal(t, 39.78, result.Lat)
}

func TestClient_Lookup_NotFound(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		respondWith(t, w, nil)
	}))
	defer srv.Close()

	t.Run("no comma retries suffixes", func(t *testing.T) {
		calls = 0
		_, err := testClient(srv.URL).Lookup(context.Background(), "Xyzzy")

		require.ErrorIs(t, err, domain.ErrPlaceNotFound)
		assert.Equal(t, 3, calls)
	})

	t.Run("comma query is not retried", func(t *testing.T) {
		calls = 0
		_, err := testClient(srv.URL).Lookup(context.Background(), "Xyzzy, Nowhere")

		require.ErrorIs(t, err, domain.ErrPlaceNotFound)
		assert.Equal(t, 1, calls)
	})
}

func TestClient_Lookup_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "over capacity", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Lookup(context.Background(), "Beijing, China")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestClient_Lookup_BadCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWith(t, w, []place{{Lat: "north-ish", Lon: "0", DisplayName: "Broken"}})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Lookup(context.Background(), "Broken, Place")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad coordinates")
}
