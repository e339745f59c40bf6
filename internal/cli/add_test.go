package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/footprint-map/internal/config"
	"github.com/couchcryptid/footprint-map/internal/domain"
	"github.com/couchcryptid/footprint-map/internal/observability"
)

type stubGeocoder struct {
	results map[string]domain.GeocodingResult
	calls   []string
}

func (g *stubGeocoder) Lookup(_ context.Context, place string) (domain.GeocodingResult, error) {
	g.calls = append(g.calls, place)
	if r, ok := g.results[place]; ok {
		return r, nil
	}
	return domain.GeocodingResult{}, domain.ErrPlaceNotFound
}

func testApp() *app {
	return &app{
		cfg:     &config.Config{GeocoderTimeout: time.Second},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: observability.NewMetricsForTesting(),
	}
}

func TestRunAdd(t *testing.T) {
	t.Run("records a city with a specific date", func(t *testing.T) {
		geo := &stubGeocoder{results: map[string]domain.GeocodingResult{
			"Paris": {Lat: 48.8566, Lon: 2.3522, DisplayName: "Paris, France"},
		}}

		// city, time choice 1, date, default color, note, then quit
		in := strings.NewReader("Paris\n1\n2023-05-15\n\nsummer trip\nq\n")
		var out strings.Builder

		sess := domain.NewSession("alice")
		err := runAdd(context.Background(), testApp(), geo, sess, in, &out)
		require.NoError(t, err)

		require.Equal(t, 1, sess.Len())
		visit := sess.Visits()[0]
		assert.Equal(t, "Paris", visit.Name)
		assert.InDelta(t, 48.8566, visit.Latitude, 0.0001)
		assert.Equal(t, "May 15, 2023", visit.Visit.Display)
		assert.Equal(t, domain.Palette[0], visit.Color)
		assert.Equal(t, "summer trip", visit.Note)
		assert.Contains(t, out.String(), "Found: Paris, France")
		assert.Contains(t, out.String(), "Marked Paris (May 15, 2023)")
	})

	t.Run("default choice records current time", func(t *testing.T) {
		fake := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
		domain.SetClock(fake)
		t.Cleanup(func() { domain.SetClock(nil) })

		geo := &stubGeocoder{results: map[string]domain.GeocodingResult{
			"Oslo": {Lat: 59.91, Lon: 10.75, DisplayName: "Oslo, Norway"},
		}}

		in := strings.NewReader("Oslo\n\n\n\nq\n")
		var out strings.Builder

		sess := domain.NewSession("alice")
		err := runAdd(context.Background(), testApp(), geo, sess, in, &out)
		require.NoError(t, err)

		require.Equal(t, 1, sess.Len())
		assert.Equal(t, 2024, sess.Visits()[0].Visit.Year)
	})

	t.Run("unknown place is skipped", func(t *testing.T) {
		geo := &stubGeocoder{}

		in := strings.NewReader("Atlantis\nq\n")
		var out strings.Builder

		sess := domain.NewSession("alice")
		err := runAdd(context.Background(), testApp(), geo, sess, in, &out)
		require.NoError(t, err)

		assert.Equal(t, 0, sess.Len())
		assert.Contains(t, out.String(), "Not found: Atlantis")
	})

	t.Run("re-prompts when a free date entry cannot be parsed", func(t *testing.T) {
		geo := &stubGeocoder{results: map[string]domain.GeocodingResult{
			"Kyoto": {Lat: 35.0116, Lon: 135.7681, DisplayName: "Kyoto, Japan"},
		}}

		// the first date entry is garbage, the menu is shown again
		in := strings.NewReader("Kyoto\n1\nbanana\n3\n2019\n\n\nq\n")
		var out strings.Builder

		sess := domain.NewSession("alice")
		err := runAdd(context.Background(), testApp(), geo, sess, in, &out)
		require.NoError(t, err)

		require.Equal(t, 1, sess.Len())
		assert.Equal(t, "2019", sess.Visits()[0].Visit.Display)
		assert.Contains(t, out.String(), "Could not parse that, please try again.")
	})

	t.Run("rejects a non-range entry for the range choice", func(t *testing.T) {
		geo := &stubGeocoder{results: map[string]domain.GeocodingResult{
			"Rome": {Lat: 41.9028, Lon: 12.4964, DisplayName: "Rome, Italy"},
		}}

		in := strings.NewReader("Rome\n5\n2019\n5\n2018-2020\n2\n\nq\n")
		var out strings.Builder

		sess := domain.NewSession("alice")
		err := runAdd(context.Background(), testApp(), geo, sess, in, &out)
		require.NoError(t, err)

		require.Equal(t, 1, sess.Len())
		assert.True(t, sess.Visits()[0].Visit.IsRange)
		assert.Equal(t, "2018-2020", sess.Visits()[0].Visit.Display)
		assert.Contains(t, out.String(), "Not a year range, please try again.")
	})

	t.Run("list command prints the session table", func(t *testing.T) {
		geo := &stubGeocoder{results: map[string]domain.GeocodingResult{
			"Paris": {Lat: 48.8566, Lon: 2.3522, DisplayName: "Paris, France"},
		}}

		in := strings.NewReader("Paris\n3\n2020\n\n\nl\nq\n")
		var out strings.Builder

		sess := domain.NewSession("alice")
		err := runAdd(context.Background(), testApp(), geo, sess, in, &out)
		require.NoError(t, err)

		assert.Contains(t, out.String(), "Total: 1 cities")
	})

	t.Run("manual coordinates when geocoding is disabled", func(t *testing.T) {
		in := strings.NewReader("Somewhere\n12.5\n-70.1\n3\n2015\n2\n\nq\n")
		var out strings.Builder

		sess := domain.NewSession("alice")
		err := runAdd(context.Background(), testApp(), nil, sess, in, &out)
		require.NoError(t, err)

		require.Equal(t, 1, sess.Len())
		visit := sess.Visits()[0]
		assert.InDelta(t, 12.5, visit.Latitude, 0.0001)
		assert.InDelta(t, -70.1, visit.Longitude, 0.0001)
		assert.Equal(t, domain.Palette[1], visit.Color)
	})

	t.Run("input ending mid-entry returns cleanly", func(t *testing.T) {
		geo := &stubGeocoder{results: map[string]domain.GeocodingResult{
			"Paris": {Lat: 48.8566, Lon: 2.3522, DisplayName: "Paris, France"},
		}}

		in := strings.NewReader("Paris\n1\n")
		var out strings.Builder

		sess := domain.NewSession("alice")
		err := runAdd(context.Background(), testApp(), geo, sess, in, &out)
		require.NoError(t, err)
		assert.Equal(t, 0, sess.Len())
	})
}

func TestPromptColor(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"default on blank", "\n", domain.Palette[0]},
		{"numbered choice", "4\n", domain.Palette[3]},
		{"out of range falls back", "42\n", domain.Palette[0]},
		{"non-numeric falls back", "teal\n", domain.Palette[0]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := newScanner(tc.input)
			var out strings.Builder
			got, ok := promptColor(sc, &out)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func newScanner(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}
