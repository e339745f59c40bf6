package domain

import (
	"context"
	"errors"
)

// ErrPlaceNotFound is returned by a Geocoder when the provider has no match
// for the queried place name.
var ErrPlaceNotFound = errors.New("place not found")

// GeocodingResult holds the coordinates a geocoding provider resolved for a
// place name.
type GeocodingResult struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Geocoder resolves free-form place names to coordinates. Used only by the
// interactive entry path; bulk imports carry their own coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, place string) (GeocodingResult, error)
}
