package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/couchcryptid/footprint-map/internal/domain"
	"github.com/couchcryptid/footprint-map/internal/export"
	"github.com/couchcryptid/footprint-map/internal/mapgen"
)

// saveSession writes the map document plus JSON and CSV snapshots into a
// per-user timestamped directory and returns its path.
func saveSession(a *app, sess *domain.Session) (string, error) {
	now := time.Now()
	dir, err := export.MakeOutputDir(a.cfg.OutputDir, sess.UserName, now)
	if err != nil {
		return "", err
	}

	mapPath := filepath.Join(dir, sess.UserName+"_World_Footprint_Map.html")
	jsonPath := filepath.Join(dir, sess.UserName+"_City_Data.json")
	csvPath := filepath.Join(dir, sess.UserName+"_City_Data.csv")

	if err := mapgen.WriteFile(mapPath, sess.UserName, sess.Visits(), now); err != nil {
		return "", fmt.Errorf("write map: %w", err)
	}
	if err := export.WriteJSON(jsonPath, sess.Visits()); err != nil {
		return "", fmt.Errorf("write json snapshot: %w", err)
	}
	if err := export.WriteCSV(csvPath, sess.Visits()); err != nil {
		return "", fmt.Errorf("write csv snapshot: %w", err)
	}

	a.logger.Info("session saved",
		"dir", dir,
		"cities", sess.Len(),
	)
	return dir, nil
}
