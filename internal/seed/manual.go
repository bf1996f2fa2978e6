package seed

// defaultHeading is the compass heading applied to manual fallback entries,
// which predate per-photo heading capture.
const defaultHeading = 254.52317809400603

// ManualCoord is a manual fallback entry for images without GPS EXIF,
// keyed by the filename-derived short code. Entries are refined in place
// (state/city/area) once geocoding resolves them, via the run state.
type ManualCoord struct {
	Latitude  float64
	Longitude float64
	Heading   float64
	State     string
	Country   string
	City      *string
	Area      string
}

// ManualCoords returns a fresh copy of the manual fallback table so each
// run can refine entries without touching package state.
func ManualCoords() map[string]ManualCoord {
	return map[string]ManualCoord{
		"ccSC": {
			Latitude:  33.83037368257592,
			Longitude: -80.82370672901854,
			Heading:   defaultHeading,
			State:     "SC",
			Country:   "US",
			Area:      "Congaree National Park",
		},
		"crUT": {
			Latitude:  38.18535,
			Longitude: -111.1785,
			Heading:   defaultHeading,
			State:     "UT",
			Country:   "US",
			Area:      "Capitol Reef National Park",
		},
		"ogND": {
			Latitude:  46.775901224709,
			Longitude: -96.787450748989,
			Heading:   defaultHeading,
			State:     "ND",
			Country:   "US",
			Area:      "Orchard Glen",
		},
		"rrCA": {
			Latitude:  35.373601,
			Longitude: -117.993204,
			Heading:   defaultHeading,
			State:     "CA",
			Country:   "US",
			Area:      "Red Rock Canyon State Park",
		},
		"ssUT": {
			Latitude:  40.51582,
			Longitude: -109.53892,
			Heading:   defaultHeading,
			State:     "UT",
			Country:   "US",
			Area:      "Steinaker State Park",
		},
		"fbZA": {
			Latitude:  -34.05902,
			Longitude: 18.499532,
			Heading:   defaultHeading,
			State:     "Western Cape",
			Country:   "ZA",
			Area:      "Grassy Park",
		},
		"hnZA": {
			Latitude:  -34.06295,
			Longitude: 18.87208,
			Heading:   defaultHeading,
			State:     "Western Cape",
			Country:   "ZA",
			Area:      "Somerset West",
		},
		"laAT": {
			Latitude:  47.582506,
			Longitude: 14.587522,
			Heading:   defaultHeading,
			State:     "Styria",
			Country:   "AT",
			Area:      "Admont",
		},
		"bkGB": {
			Latitude:  53.255201,
			Longitude: -2.74744,
			Heading:   defaultHeading,
			State:     "Cheshire",
			Country:   "GB",
			Area:      "Frodsham",
		},
		"mgDK": {
			Latitude:  55.80663,
			Longitude: 12.30903,
			Heading:   defaultHeading,
			State:     "Capital Region",
			Country:   "DK",
			Area:      "Farum",
		},
		"smIS": {
			Latitude:  65.294782,
			Longitude: -13.701698,
			Heading:   defaultHeading,
			State:     "Eastern Region",
			Country:   "IS",
			Area:      "Múlaþing",
		},
		"agAK": {
			Latitude:  60.53176,
			Longitude: -145.37783,
			Heading:   defaultHeading,
			State:     "AK",
			Country:   "US",
			Area:      "Sheridan Glacier",
		},
		"kkHI": {
			Latitude:  20.794749,
			Longitude: -156.473163,
			Heading:   defaultHeading,
			State:     "HI",
			Country:   "US",
			Area:      "Keālia Kanuimanu Ponds",
		},
	}
}
