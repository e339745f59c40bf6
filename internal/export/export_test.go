package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/footprint-map/internal/domain"
)

func testVisits() []domain.CityVisit {
	return []domain.CityVisit{
		{
			Name: "Paris", Latitude: 48.8566, Longitude: 2.3522, Color: "red", Note: "first trip",
			Visit: domain.VisitTime{
				Date:     time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
				Year:     2023,
				Month:    5,
				Display:  "May 15, 2023",
				Original: "2023-05-15",
			},
			RecordedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			Name: "Oslo", Latitude: 59.91, Longitude: 10.75, Color: "green",
			Visit: domain.VisitTime{
				Date:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				Year:     2020,
				Month:    1,
				Display:  "2020-2023",
				IsRange:  true,
				Original: "2020-2023",
			},
			RecordedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestMakeOutputDir(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	dir, err := MakeOutputDir(base, "alice", now)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "alice_20240601_120000"), dir)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.json")
	visits := testVisits()

	require.NoError(t, WriteJSON(path, visits))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []domain.CityVisit
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, visits, got)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.csv")

	require.NoError(t, WriteCSV(path, testVisits()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])

	paris := records[1]
	assert.Equal(t, "Paris", paris[0])
	assert.Equal(t, "48.8566", paris[1])
	assert.Equal(t, "2023-05-15", paris[6])
	assert.Equal(t, "2023", paris[7])
	assert.Equal(t, "false", paris[10])

	oslo := records[2]
	assert.Equal(t, "2020-2023", oslo[9])
	assert.Equal(t, "true", oslo[10])
}
