package seed

import (
	"bytes"
	"encoding/binary"
	"testing"

	"gorm.io/gorm"

	"github.com/BobbyBoy101/natureScape/internal/database"
	"github.com/BobbyBoy101/natureScape/internal/geo"
)

// stubGeo is a canned Resolver so tests never load the real datasets.
type stubGeo struct {
	region geo.Region
	place  geo.Place
	err    error
}

func (s stubGeo) LookUp(lat, lon float64) (geo.Region, error) {
	return s.region, s.err
}

func (s stubGeo) ReverseLookup(lat, lon float64, country string) (geo.Place, error) {
	return s.place, s.err
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("file::memory:")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	return db
}

// emptyMeta is a metadata decoder stub for images without EXIF.
func emptyMeta([]byte) map[string]any {
	return map[string]any{}
}

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
// heading 128.5, taken 2021:08:14 16:02:11.
func gpsFixture() []byte {
	b := &bytes.Buffer{}
	b.WriteString("II")
	binary.Write(b, binary.LittleEndian, uint16(0x2A))
	binary.Write(b, binary.LittleEndian, uint32(8))

	// IFD0: pointers to the Exif and GPS sub-IFDs
	binary.Write(b, binary.LittleEndian, uint16(2))
	tiffEntry(b, 0x8769, 4, 1, 38)
	tiffEntry(b, 0x8825, 4, 1, 56)
	binary.Write(b, binary.LittleEndian, uint32(0))

	// Exif IFD: DateTimeOriginal
	binary.Write(b, binary.LittleEndian, uint16(1))
	tiffEntry(b, 0x9003, 2, 20, 122)
	binary.Write(b, binary.LittleEndian, uint32(0))

	// GPS IFD: refs inline, coordinate triples and heading in the value area
	binary.Write(b, binary.LittleEndian, uint16(5))
	tiffEntry(b, 0x0001, 2, 2, uint32('N'))
	tiffEntry(b, 0x0002, 5, 3, 142)
	tiffEntry(b, 0x0003, 2, 2, uint32('W'))
	tiffEntry(b, 0x0004, 5, 3, 166)
	tiffEntry(b, 0x0011, 5, 1, 190)
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
