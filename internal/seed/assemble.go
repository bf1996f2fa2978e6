package seed

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BobbyBoy101/natureScape/internal/config"
	"github.com/BobbyBoy101/natureScape/internal/database"
	"github.com/BobbyBoy101/natureScape/internal/geo"
	"github.com/BobbyBoy101/natureScape/internal/store"
	"github.com/BobbyBoy101/natureScape/pkg/exif"
	"github.com/BobbyBoy101/natureScape/pkg/logger"
)

// imageExts are the file extensions accepted by the seeder.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".heif": true,
}

// searchKeys are the EXIF fields the assembler looks for in decoded
// metadata, at any nesting depth.
var searchKeys = []string{
	exif.TagGPSLatitude,
	exif.TagGPSLongitude,
	exif.TagGPSLatitudeRef,
	exif.TagGPSLongitudeRef,
	exif.TagGPSImgDirection,
	exif.TagDateTimeOriginal,
}

// State threads the run's mutable bits through the per-file steps instead
// of package globals: the per-basename name counters, the round-robin file
// index, and the manual table whose entries get refined after geocoding.
type State struct {
	Counters  map[string]int
	FileIndex int
	Manual    map[string]ManualCoord
}

func NewState(manual map[string]ManualCoord) *State {
	return &State{
		Counters: map[string]int{},
		Manual:   manual,
	}
}

// parsedName is the result of splitting a seed image filename of the form
// {basename}[-{year}-{month}-{day}]_{suffix}.{ext}.
type parsedName struct {
	Base  string
	Taken *time.Time
}

func parseFileName(file string) parsedName {
	head, _, _ := strings.Cut(file, "_")
	head = strings.TrimSuffix(head, filepath.Ext(head))
	parts := strings.Split(head, "-")

	p := parsedName{Base: parts[0]}
	if len(parts) >= 4 {
		year, errY := strconv.Atoi(parts[1])
		month, errM := strconv.Atoi(parts[2])
		day, errD := strconv.Atoi(parts[3])
		if errY == nil && errM == nil && errD == nil {
			t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			p.Taken = &t
		}
	}
	return p
}

// contentTypeFor maps a file extension to the stored content type
// ("image/jpg", "image/heic", ...).
func contentTypeFor(ext string) string {
	return "image/" + strings.TrimPrefix(strings.ToLower(ext), ".")
}

// Assembler builds one photo document per image file.
type Assembler struct {
	Users       []database.User
	Locations   *store.LocationStore
	Geo         geo.Resolver
	Geocode     config.GeocodeConfig
	Description string

	// Decode overrides the metadata decoder; nil means exif.Decode.
	Decode func([]byte) map[string]any
	// Now overrides the upload timestamp clock; nil means time.Now.
	Now func() time.Time
}

func (a *Assembler) decode(data []byte) map[string]any {
	if a.Decode != nil {
		return a.Decode(data)
	}
	return exif.Decode(data)
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Assemble builds the photo document for one image file and advances the
// run state. Location fields are filled from EXIF metadata when present,
// otherwise from the manual fallback table matched by the filename short
// code, otherwise left null. Geocoding or resolution failures are logged
// and leave the location null; they never fail the file.
func (a *Assembler) Assemble(fileName string, data []byte, st *State) *database.Photo {
	parsed := parseFileName(fileName)
	st.Counters[parsed.Base]++

	photo := &database.Photo{
		PhotoName:        fmt.Sprintf("%s%d", parsed.Base, st.Counters[parsed.Base]),
		PhotoDescription: a.Description,
		DateTimeTaken:    parsed.Taken,
		DateTimeUploaded: a.now().UTC(),
		Img: database.ImageBlob{
			Data:        data,
			ContentType: contentTypeFor(filepath.Ext(fileName)),
		},
	}

	meta := a.decode(data)
	found := exif.FindKeys(meta, searchKeys)

	if len(found) > 0 {
		a.applyMetadata(photo, found)
	} else if mc, ok := st.Manual[parsed.Base]; ok {
		a.applyManual(photo, parsed.Base, mc, st)
	}

	if n := len(a.Users); n > 0 {
		uid := a.Users[st.FileIndex%n].ID
		photo.UserID = &uid
	}
	st.FileIndex++

	return photo
}

// applyMetadata fills location and capture time from extracted EXIF fields.
// Coordinates are used verbatim; no area match is attempted from raw
// coordinates, so LocationID stays null on this path.
func (a *Assembler) applyMetadata(photo *database.Photo, found map[string]any) {
	if heading, ok := toFloat(found[exif.TagGPSImgDirection]); ok {
		photo.Location.Heading = &heading
	}
	if raw, ok := found[exif.TagDateTimeOriginal].(string); ok {
		if t, err := exif.ParseTimestamp(raw); err == nil {
			photo.DateTimeTaken = &t
		}
	}

	lat, latOK := found[exif.TagGPSLatitude].(exif.DMS)
	lon, lonOK := found[exif.TagGPSLongitude].(exif.DMS)
	latRef, latRefOK := found[exif.TagGPSLatitudeRef].(string)
	lonRef, lonRefOK := found[exif.TagGPSLongitudeRef].(string)
	if latOK && lonOK && latRefOK && lonRefOK {
		latitude, longitude := exif.LatLonToDecimal(lat, lon, latRef, lonRef)
		photo.Location.Latitude = &latitude
		photo.Location.Longitude = &longitude
	}
}

// applyManual fills location from the manual fallback entry, resolving or
// creating the Location record on the way. The refined entry is written
// back into the run state so later files with the same code reuse it.
func (a *Assembler) applyManual(photo *database.Photo, code string, mc ManualCoord, st *State) {
	id, updated, err := resolveLocation(a.Locations, a.Geo, a.Geocode, mc)
	if err != nil {
		logger.LogWarn("Location resolution failed for %s: %v", code, err)
		return
	}
	st.Manual[code] = updated

	photo.Location.Latitude = &updated.Latitude
	photo.Location.Longitude = &updated.Longitude
	photo.Location.Heading = &updated.Heading
	photo.Location.LocationID = &id
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
