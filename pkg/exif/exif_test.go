package exif

import (
	"bytes"
	"encoding/binary"
	"math"
	"reflect"
	"testing"
)

func tiffEntry(b *bytes.Buffer, tag, typ uint16, count, value uint32) {
	binary.Write(b, binary.LittleEndian, tag)
	binary.Write(b, binary.LittleEndian, typ)
	binary.Write(b, binary.LittleEndian, count)
	binary.Write(b, binary.LittleEndian, value)
}

func tiffRat(b *bytes.Buffer, num, den uint32) {
	binary.Write(b, binary.LittleEndian, num)
	binary.Write(b, binary.LittleEndian, den)
}

// gpsFixture builds a minimal little-endian TIFF stream with the Exif and
// GPS sub-IFDs of a camera file: lat 38°11'7.26" N, lon 111°10'42.6" W,
// heading 128.5, taken 2021:08:14 16:02:11. Layout: IFD0 at offset 8,
// Exif IFD at 38, GPS IFD at 56, value area from 122.
func gpsFixture() []byte {
	b := &bytes.Buffer{}
	b.WriteString("II")
	binary.Write(b, binary.LittleEndian, uint16(0x2A))
	binary.Write(b, binary.LittleEndian, uint32(8))

	// IFD0: pointers to the Exif and GPS sub-IFDs
	binary.Write(b, binary.LittleEndian, uint16(2))
	tiffEntry(b, 0x8769, 4, 1, 38) // ExifIFDPointer
	tiffEntry(b, 0x8825, 4, 1, 56) // GPSInfoIFDPointer
	binary.Write(b, binary.LittleEndian, uint32(0))

	// Exif IFD: DateTimeOriginal (ASCII incl. NUL)
	binary.Write(b, binary.LittleEndian, uint16(1))
	tiffEntry(b, 0x9003, 2, 20, 122)
	binary.Write(b, binary.LittleEndian, uint32(0))

	// GPS IFD: refs inline, coordinate triples and heading in the value area
	binary.Write(b, binary.LittleEndian, uint16(5))
	tiffEntry(b, 0x0001, 2, 2, uint32('N')) // GPSLatitudeRef "N"
	tiffEntry(b, 0x0002, 5, 3, 142)         // GPSLatitude
	tiffEntry(b, 0x0003, 2, 2, uint32('W')) // GPSLongitudeRef "W"
	tiffEntry(b, 0x0004, 5, 3, 166)         // GPSLongitude
	tiffEntry(b, 0x0011, 5, 1, 190)         // GPSImgDirection
	binary.Write(b, binary.LittleEndian, uint32(0))

	b.WriteString("2021:08:14 16:02:11\x00")
	tiffRat(b, 38, 1)
	tiffRat(b, 11, 1)
	tiffRat(b, 726, 100)
	tiffRat(b, 111, 1)
	tiffRat(b, 10, 1)
	tiffRat(b, 426, 10)
	tiffRat(b, 257, 2)
	return b.Bytes()
}

func TestDecodeEmbeddedGPS(t *testing.T) {
	meta := Decode(gpsFixture())

	sub, ok := meta["exif"].(map[string]any)
	if !ok {
		t.Fatalf("no exif sub-map in %v", meta)
	}
	gps, ok := sub["gps"].(map[string]any)
	if !ok {
		t.Fatalf("no gps group in %v", sub)
	}
	img, ok := sub["image"].(map[string]any)
	if !ok {
		t.Fatalf("no image group in %v", sub)
	}

	if got := gps[TagGPSLatitude]; got != (DMS{38, 11, 7.26}) {
		t.Errorf("GPSLatitude = %v, want {38 11 7.26}", got)
	}
	if got := gps[TagGPSLongitude]; got != (DMS{111, 10, 42.6}) {
		t.Errorf("GPSLongitude = %v, want {111 10 42.6}", got)
	}
	if gps[TagGPSLatitudeRef] != "N" || gps[TagGPSLongitudeRef] != "W" {
		t.Errorf("refs = %v / %v, want N / W", gps[TagGPSLatitudeRef], gps[TagGPSLongitudeRef])
	}
	if got := gps[TagGPSImgDirection]; got != 128.5 {
		t.Errorf("GPSImgDirection = %v, want 128.5", got)
	}
	if got := img[TagDateTimeOriginal]; got != "2021:08:14 16:02:11" {
		t.Errorf("DateTimeOriginal = %v", got)
	}

	// The decoded tree feeds straight into the deep search and converter.
	found := FindKeys(meta, []string{
		TagGPSLatitude, TagGPSLongitude, TagGPSLatitudeRef, TagGPSLongitudeRef,
	})
	lat, lon := LatLonToDecimal(
		found[TagGPSLatitude].(DMS), found[TagGPSLongitude].(DMS),
		found[TagGPSLatitudeRef].(string), found[TagGPSLongitudeRef].(string),
	)
	if math.Abs(lat-38.18535) > 1e-9 || math.Abs(lon-(-111.1785)) > 1e-9 {
		t.Errorf("decoded coordinates = %v, %v, want 38.18535, -111.1785", lat, lon)
	}
}

func TestFindKeysAnyDepth(t *testing.T) {
	meta := map[string]any{
		"format": "jpeg",
		"exif": map[string]any{
			"image": map[string]any{
				"DateTimeOriginal": "2022:05:01 10:30:00",
			},
			"gps": map[string]any{
				"GPSLatitude":     DMS{38, 11, 7.26},
				"GPSLatitudeRef":  "N",
				"GPSLongitude":    DMS{111, 10, 42.6},
				"GPSLongitudeRef": "W",
			},
		},
	}

	found := FindKeys(meta, []string{
		"GPSLatitude", "GPSLongitude", "GPSLatitudeRef", "GPSLongitudeRef",
		"GPSImgDirection", "DateTimeOriginal",
	})

	if len(found) != 5 {
		t.Fatalf("found %d keys, want 5: %v", len(found), found)
	}
	if found["DateTimeOriginal"] != "2022:05:01 10:30:00" {
		t.Errorf("DateTimeOriginal = %v", found["DateTimeOriginal"])
	}
	if _, ok := found["GPSImgDirection"]; ok {
		t.Error("GPSImgDirection should be absent")
	}
	want := DMS{38, 11, 7.26}
	if got := found["GPSLatitude"]; got != want {
		t.Errorf("GPSLatitude = %v, want %v", got, want)
	}
}

func TestFindKeysNoneFound(t *testing.T) {
	meta := map[string]any{
		"format": "png",
		"nested": map[string]any{"width": 640},
	}

	found := FindKeys(meta, []string{"GPSLatitude", "DateTimeOriginal"})
	if found == nil {
		t.Fatal("result must be non-nil")
	}
	if len(found) != 0 {
		t.Fatalf("found %v, want empty", found)
	}
}

// The walk is depth first with siblings in sorted key order, so a wanted
// key nested under an earlier sibling beats the same key at a shallower
// depth under a later one.
func TestFindKeysDuplicateKeyDeterminism(t *testing.T) {
	meta := map[string]any{
		"a": map[string]any{
			"x": "nested-under-a",
		},
		"x": "top-level",
	}

	found := FindKeys(meta, []string{"x"})
	if !reflect.DeepEqual(found, map[string]any{"x": "nested-under-a"}) {
		t.Fatalf("found %v, want first occurrence in traversal order", found)
	}

	// And the reverse: a top-level key sorted before its duplicate's parent wins.
	meta = map[string]any{
		"b": "top-level",
		"z": map[string]any{
			"b": "nested-under-z",
		},
	}
	found = FindKeys(meta, []string{"b"})
	if found["b"] != "top-level" {
		t.Fatalf("found %v, want top-level occurrence", found)
	}
}

func TestDecodeWithoutEXIF(t *testing.T) {
	// Arbitrary bytes: no image header, no EXIF block.
	meta := Decode([]byte("not an image at all"))
	if meta == nil {
		t.Fatal("Decode must return a non-nil map")
	}
	if _, ok := meta["exif"]; ok {
		t.Error("unexpected exif key for non-image bytes")
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2022:05:01 10:30:00")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if ts.Year() != 2022 || ts.Month() != 5 || ts.Day() != 1 {
		t.Errorf("parsed %v", ts)
	}

	if _, err := ParseTimestamp("May 1 2022"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}
