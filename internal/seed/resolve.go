package seed

import (
	"github.com/BobbyBoy101/natureScape/internal/config"
	"github.com/BobbyBoy101/natureScape/internal/geo"
	"github.com/BobbyBoy101/natureScape/internal/store"
)

// resolveLocation finds or creates the Location record for a manual entry
// and returns its id together with the (possibly refined) entry.
//
// Existing locations are matched on (area, state). New locations are
// enriched via geocoding first: the coarse lookup supplies country and
// state, and for countries on the reverse-lookup allow-list the
// fine-grained lookup then refines state, city and area before the insert.
// Outside the allow-list the city stays null and the entry's own area text
// is kept. The refined entry must be stored back into the run state so a
// later file with the same short code matches the created record.
func resolveLocation(locs *store.LocationStore, resolver geo.Resolver, gc config.GeocodeConfig, mc ManualCoord) (string, ManualCoord, error) {
	id, err := locs.FindID(mc.Area, mc.State)
	if err != nil {
		return "", mc, err
	}
	if id != "" {
		return id, mc, nil
	}

	region, err := resolver.LookUp(mc.Latitude, mc.Longitude)
	if err != nil {
		return "", mc, err
	}

	if gc.ReverseLookupAllowed(region.Country) {
		place, err := resolver.ReverseLookup(mc.Latitude, mc.Longitude, region.Country)
		if err != nil {
			return "", mc, err
		}
		city := place.City
		mc.State = place.State
		mc.City = &city
		mc.Area = place.Area

		id, err = locs.Add(mc.Country, mc.State, mc.City, mc.Area)
		return id, mc, err
	}

	mc.State = region.State
	id, err = locs.Add(mc.Country, mc.State, nil, mc.Area)
	return id, mc, err
}
