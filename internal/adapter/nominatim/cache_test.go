package nominatim

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/footprint-map/internal/domain"
	"github.com/couchcryptid/footprint-map/internal/observability"
)

type fakeGeocoder struct {
	calls   int
	results map[string]domain.GeocodingResult
	err     error
}

func (f *fakeGeocoder) Lookup(_ context.Context, place string) (domain.GeocodingResult, error) {
	f.calls++
	if f.err != nil {
		return domain.GeocodingResult{}, f.err
	}
	if r, ok := f.results[place]; ok {
		return r, nil
	}
	return domain.GeocodingResult{}, domain.ErrPlaceNotFound
}

func TestCachedGeocoder_Hit(t *testing.T) {
	inner := &fakeGeocoder{results: map[string]domain.GeocodingResult{
		"Paris": {Lat: 48.85, Lon: 2.35, DisplayName: "Paris, France"},
	}}
	c := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())

	first, err := c.Lookup(context.Background(), "Paris")
	require.NoError(t, err)
	second, err := c.Lookup(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedGeocoder_KeyIsCaseInsensitive(t *testing.T) {
	inner := &fakeGeocoder{results: map[string]domain.GeocodingResult{
		"Paris": {Lat: 48.85, Lon: 2.35},
	}}
	c := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())

	_, err := c.Lookup(context.Background(), "Paris")
	require.NoError(t, err)
	_, err = c.Lookup(context.Background(), "  PARIS ")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
}

func TestCachedGeocoder_ErrorsNotCached(t *testing.T) {
	inner := &fakeGeocoder{err: errors.New("provider down")}
	c := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())

	_, err := c.Lookup(context.Background(), "Paris")
	require.Error(t, err)
	_, err = c.Lookup(context.Background(), "Paris")
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedGeocoder_NotFoundNotCached(t *testing.T) {
	inner := &fakeGeocoder{}
	c := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())

	_, err := c.Lookup(context.Background(), "Xyzzy")
	require.ErrorIs(t, err, domain.ErrPlaceNotFound)
	_, err = c.Lookup(context.Background(), "Xyzzy")
	require.ErrorIs(t, err, domain.ErrPlaceNotFound)

	assert.Equal(t, 2, inner.calls)
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := newLRUCache(2)

	cache.put("a", domain.GeocodingResult{Lat: 1})
	cache.put("b", domain.GeocodingResult{Lat: 2})

	// Touch "a" so "b" becomes least recently used.
	_, ok := cache.get("a")
	require.True(t, ok)

	cache.put("c", domain.GeocodingResult{Lat: 3})

	_, ok = cache.get("b")
	assert.False(t, ok)
	_, ok = cache.get("a")
	assert.True(t, ok)
	_, ok = cache.get("c")
	assert.True(t, ok)
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	cache := newLRUCache(2)

	cache.put("a", domain.GeocodingResult{Lat: 1})
	cache.put("a", domain.GeocodingResult{Lat: 9})

	got, ok := cache.get("a")
	require.True(t, ok)
	assert.Equal(t, 9.0, got.Lat)
}

func TestLRUCache_ManyEntries(t *testing.T) {
	cache := newLRUCache(5)

	for i := 0; i < 50; i++ {
		cache.put(fmt.Sprintf("k%d", i), domain.GeocodingResult{Lat: float64(i)})
	}

	got, ok := cache.get("k49")
	require.True(t, ok)
	assert.Equal(t, 49.0, got.Lat)
	_, ok = cache.get("k0")
	assert.False(t, ok)
}
