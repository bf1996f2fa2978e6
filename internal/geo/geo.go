// Package geo wraps the offline reverse-geocoding datasets behind the two
// lookup operations the seeder needs: a coarse country/state lookup and a
// fine-grained state/city refinement.
package geo

import (
	"fmt"
	"strings"

	"github.com/sams96/rgeo"
	geom "github.com/twpayne/go-geom"
)

// Region is the result of the coarse lookup.
type Region struct {
	Country string // ISO 3166-1 alpha-2, e.g. "US"
	State   string // ISO 3166-2 subdivision, e.g. "UT"
}

// Place is the result of the fine-grained reverse lookup.
type Place struct {
	State string
	City  string
	Area  string
}

// Resolver resolves coordinates to administrative region names.
type Resolver interface {
	LookUp(lat, lon float64) (Region, error)
	ReverseLookup(lat, lon float64, country string) (Place, error)
}

// RGeo is a Resolver backed by the bundled Natural Earth datasets. Building
// one parses the embedded GeoJSON, so construct it once per run.
type RGeo struct {
	r *rgeo.Rgeo
}

var _ Resolver = (*RGeo)(nil)

func New() (*RGeo, error) {
	r, err := rgeo.New(rgeo.Provinces10, rgeo.Cities10)
	if err != nil {
		return nil, fmt.Errorf("load geocoding datasets: %w", err)
	}
	return &RGeo{r: r}, nil
}

// LookUp returns the country and state containing the coordinate.
func (g *RGeo) LookUp(lat, lon float64) (Region, error) {
	loc, err := g.r.ReverseGeocode(geom.Coord{lon, lat})
	if err != nil {
		return Region{}, fmt.Errorf("region lookup (%f, %f): %w", lat, lon, err)
	}

	country, state := splitStateCode(loc.ProvinceCode)
	if country == "" {
		country = loc.CountryCode2
	}
	return Region{Country: country, State: state}, nil
}

// ReverseLookup refines a coordinate to state and city names. The country
// argument is the caller's allow-list gate; the datasets themselves are
// global, so it is accepted for the contract but not needed for the query.
// The returned Area is the city name.
func (g *RGeo) ReverseLookup(lat, lon float64, country string) (Place, error) {
	loc, err := g.r.ReverseGeocode(geom.Coord{lon, lat})
	if err != nil {
		return Place{}, fmt.Errorf("reverse lookup (%f, %f, %s): %w", lat, lon, country, err)
	}

	_, state := splitStateCode(loc.ProvinceCode)
	if state == "" {
		state = loc.Province
	}
	return Place{State: state, City: loc.City, Area: loc.City}, nil
}

// splitStateCode splits an ISO 3166-2 code such as "US-UT" into its country
// and subdivision parts.
func splitStateCode(code string) (country, state string) {
	parts := strings.SplitN(code, "-", 2)
	if len(parts) != 2 {
		return "", code
	}
	return parts[0], parts[1]
}
