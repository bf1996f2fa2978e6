package exif

import "strings"

// DMS is a degrees/minutes/seconds GPS angle as stored in EXIF rational
// triples. Components are kept as float64 because EXIF encodes each one
// as an arbitrary rational (e.g. seconds of 30123/1000).
type DMS struct {
	Degrees float64
	Minutes float64
	Seconds float64
}

// Decimal converts the angle to signed decimal degrees. The hemisphere
// reference ("N", "S", "E", "W") controls the sign: south and west are
// negative.
func (d DMS) Decimal(ref string) float64 {
	dec := d.Degrees + d.Minutes/60 + d.Seconds/3600
	switch strings.ToUpper(strings.TrimSpace(ref)) {
	case "S", "W":
		dec = -dec
	}
	return dec
}

// LatLonToDecimal converts a latitude/longitude DMS pair plus hemisphere
// references into decimal degrees.
func LatLonToDecimal(lat, lon DMS, latRef, lonRef string) (float64, float64) {
	return lat.Decimal(latRef), lon.Decimal(lonRef)
}
