// Package exif decodes embedded image metadata into a nested map and
// provides the deep key search and coordinate conversion used by the
// photo seeder.
package exif

import (
	"bytes"
	"image"
	_ "image/gif"  // Support GIF
	_ "image/jpeg" // Support JPEG
	_ "image/png"  // Support PNG
	"sort"
	"strings"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// EXIF field names the seeder cares about.
const (
	TagGPSLatitude      = "GPSLatitude"
	TagGPSLongitude     = "GPSLongitude"
	TagGPSLatitudeRef   = "GPSLatitudeRef"
	TagGPSLongitudeRef  = "GPSLongitudeRef"
	TagGPSImgDirection  = "GPSImgDirection"
	TagDateTimeOriginal = "DateTimeOriginal"
)

// timestampLayout is the EXIF DateTimeOriginal format.
const timestampLayout = "2006:01:02 15:04:05"

// Decode parses the image header and any embedded EXIF block into a nested
// metadata map: "format"/"width"/"height" at the top level and an "exif"
// sub-map grouping tags into "gps" (GPS*) and "image" (everything else).
// Images the stdlib cannot decode (e.g. HEIC) lack the dimension keys, and
// images without an EXIF block lack the "exif" key entirely.
func Decode(raw []byte) map[string]any {
	meta := map[string]any{}

	if cfg, format, err := image.DecodeConfig(bytes.NewReader(raw)); err == nil {
		meta["format"] = format
		meta["width"] = cfg.Width
		meta["height"] = cfg.Height
	}

	x, err := goexif.Decode(bytes.NewReader(raw))
	if err != nil || x == nil {
		return meta
	}

	c := &tagCollector{
		image: map[string]any{},
		gps:   map[string]any{},
	}
	if err := x.Walk(c); err != nil {
		return meta
	}

	sub := map[string]any{}
	if len(c.image) > 0 {
		sub["image"] = c.image
	}
	if len(c.gps) > 0 {
		sub["gps"] = c.gps
	}
	if len(sub) > 0 {
		meta["exif"] = sub
	}
	return meta
}

type tagCollector struct {
	image map[string]any
	gps   map[string]any
}

func (c *tagCollector) Walk(name goexif.FieldName, tag *tiff.Tag) error {
	v, ok := tagValue(tag)
	if !ok {
		return nil
	}
	key := string(name)
	if strings.HasPrefix(key, "GPS") {
		c.gps[key] = v
	} else {
		c.image[key] = v
	}
	return nil
}

// tagValue reduces a TIFF tag to a plain Go value: string for ASCII tags,
// int for integers, float64 for single rationals, and DMS for the
// three-rational GPS coordinate triples.
func tagValue(tag *tiff.Tag) (any, bool) {
	switch tag.Format() {
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return nil, false
		}
		return s, true
	case tiff.IntVal:
		n, err := tag.Int(0)
		if err != nil {
			return nil, false
		}
		return n, true
	case tiff.FloatVal:
		f, err := tag.Float(0)
		if err != nil {
			return nil, false
		}
		return f, true
	case tiff.RatVal:
		if tag.Count == 3 {
			var d DMS
			for i, dst := range []*float64{&d.Degrees, &d.Minutes, &d.Seconds} {
				num, den, err := tag.Rat2(i)
				if err != nil || den == 0 {
					return nil, false
				}
				*dst = float64(num) / float64(den)
			}
			return d, true
		}
		num, den, err := tag.Rat2(0)
		if err != nil || den == 0 {
			return nil, false
		}
		return float64(num) / float64(den), true
	}
	return nil, false
}

// FindKeys searches the metadata tree for the wanted keys at any depth.
// The walk is depth first: sibling keys are visited in sorted order, and
// each key's sub-map is fully explored before the next sibling. The first
// occurrence of a wanted key wins; later occurrences at other depths are
// ignored. Keys absent from the tree are simply missing from the result,
// so a tree containing none of them yields an empty (non-nil) map.
func FindKeys(meta map[string]any, keys []string) map[string]any {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}
	found := map[string]any{}
	findKeys(meta, wanted, found)
	return found
}

func findKeys(m map[string]any, wanted map[string]bool, found map[string]any) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		v := m[k]
		if wanted[k] {
			if _, seen := found[k]; !seen {
				found[k] = v
			}
		}
		if sub, ok := v.(map[string]any); ok {
			findKeys(sub, wanted, found)
		}
	}
}

// ParseTimestamp parses an EXIF DateTimeOriginal value ("2006:01:02 15:04:05").
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, strings.TrimSpace(s))
}
