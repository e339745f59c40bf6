package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/footprint-map/internal/adapter/nominatim"
	"github.com/couchcryptid/footprint-map/internal/domain"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Interactively record visited cities",
		Long:  "Prompt for city names, resolve them to coordinates, record visit times, colors, and notes, then render the map and export snapshots on exit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			var geocoder domain.Geocoder
			if a.cfg.GeocoderEnabled {
				client := nominatim.NewClient(a.cfg.GeocoderURL, a.cfg.GeocoderUserAgent,
					a.cfg.GeocoderTimeout, a.metrics, a.logger)
				geocoder = nominatim.NewCachedGeocoder(client, a.cfg.GeocoderCacheSize, a.metrics)
			}

			sess := domain.NewSession(flagName)
			if err := runAdd(cmd.Context(), a, geocoder, sess, os.Stdin, cmd.OutOrStdout()); err != nil {
				return err
			}

			if sess.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cities marked, nothing to save.")
				return nil
			}

			dir, err := saveSession(a, sess)
			if err != nil {
				return err
			}

			sess.SortByYear()
			printYearDistribution(cmd.OutOrStdout(), sess)
			fmt.Fprintf(cmd.OutOrStdout(), "Files saved to %s\n", dir)
			return nil
		},
	}
}

// runAdd drives the interactive entry loop. It is separated from the cobra
// command so tests can script the input.
func runAdd(ctx context.Context, a *app, geocoder domain.Geocoder, sess *domain.Session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	fmt.Fprintf(out, "Hi, %s! Mark your footprint and record your travel.\n", sess.UserName)

	for {
		name, ok := prompt(sc, out, "\nCity name ('q' to finish, 'l' to list): ")
		if !ok {
			return nil
		}

		switch strings.ToLower(name) {
		case "q":
			return nil
		case "l":
			printVisitsTable(out, sess.Visits())
			continue
		case "":
			continue
		}

		lat, lon, ok := resolveCoordinates(ctx, a, geocoder, sc, out, name)
		if !ok {
			continue
		}

		vt, ok := promptVisitTime(sc, out)
		if !ok {
			return nil
		}

		color, ok := promptColor(sc, out)
		if !ok {
			return nil
		}

		note, ok := prompt(sc, out, "Note (optional, Enter to skip): ")
		if !ok {
			return nil
		}

		visit, err := domain.BuildCityVisit(name, lat, lon, color, note, vt, a.logger)
		if err != nil {
			fmt.Fprintf(out, "Cannot record %s: %v\n", name, err)
			continue
		}

		sess.Add(visit)
		a.metrics.VisitsRecorded.Inc()
		fmt.Fprintf(out, "Marked %s (%s)\n", visit.Name, visit.Visit.Display)
	}
}

// resolveCoordinates looks the city up via the geocoder, or prompts for
// manual entry when geocoding is disabled.
func resolveCoordinates(ctx context.Context, a *app, geocoder domain.Geocoder, sc *bufio.Scanner, out io.Writer, name string) (float64, float64, bool) {
	if geocoder == nil {
		return promptManualCoordinates(sc, out)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, a.cfg.GeocoderTimeout)
	defer cancel()

	result, err := geocoder.Lookup(lookupCtx, name)
	if errors.Is(err, domain.ErrPlaceNotFound) {
		fmt.Fprintf(out, "Not found: %s\n", name)
		return 0, 0, false
	}
	if err != nil {
		fmt.Fprintf(out, "Geocoding failed for %s: %v\n", name, err)
		return 0, 0, false
	}

	fmt.Fprintf(out, "Found: %s (%.4f, %.4f)\n", result.DisplayName, result.Lat, result.Lon)
	return result.Lat, result.Lon, true
}

func promptManualCoordinates(sc *bufio.Scanner, out io.Writer) (float64, float64, bool) {
	latStr, ok := prompt(sc, out, "Latitude: ")
	if !ok {
		return 0, 0, false
	}
	lonStr, ok := prompt(sc, out, "Longitude: ")
	if !ok {
		return 0, 0, false
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		fmt.Fprintln(out, "Coordinates must be numbers.")
		return 0, 0, false
	}
	return lat, lon, true
}

// promptVisitTime loops until a time entry parses at the requested
// precision: a free choice that comes back estimated is rejected and the
// menu is shown again.
func promptVisitTime(sc *bufio.Scanner, out io.Writer) (domain.VisitTime, bool) {
	for {
		fmt.Fprintln(out, "\nVisit time:")
		fmt.Fprintln(out, "  1. Specific date (YYYY-MM-DD)")
		fmt.Fprintln(out, "  2. Year and month (YYYY-MM)")
		fmt.Fprintln(out, "  3. Year only (YYYY)")
		fmt.Fprintln(out, "  4. Current time")
		fmt.Fprintln(out, "  5. Year range (YYYY-YYYY)")

		choice, ok := prompt(sc, out, "Choose (1-5, default 4): ")
		if !ok {
			return domain.VisitTime{}, false
		}

		switch choice {
		case "1", "2", "3":
			value, ok := prompt(sc, out, "Enter visit time: ")
			if !ok {
				return domain.VisitTime{}, false
			}
			vt := domain.NormalizeTimestamp(value)
			if vt.Estimated {
				fmt.Fprintln(out, "Could not parse that, please try again.")
				continue
			}
			return vt, true
		case "5":
			value, ok := prompt(sc, out, "Enter visit time range (YYYY-YYYY): ")
			if !ok {
				return domain.VisitTime{}, false
			}
			vt := domain.NormalizeTimestamp(value)
			if !vt.IsRange {
				fmt.Fprintln(out, "Not a year range, please try again.")
				continue
			}
			return vt, true
		default:
			return domain.CurrentVisitTime(), true
		}
	}
}

func promptColor(sc *bufio.Scanner, out io.Writer) (string, bool) {
	fmt.Fprintln(out, "\nMarker colors:")
	for i, c := range domain.Palette[:10] {
		fmt.Fprintf(out, "  %d. %s\n", i+1, c)
	}

	choice, ok := prompt(sc, out, "Choose color (1-10, default 1): ")
	if !ok {
		return "", false
	}
	if choice == "" {
		return domain.Palette[0], true
	}

	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > 10 {
		return domain.Palette[0], true
	}
	return domain.Palette[idx-1], true
}

func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}
