// Package seed implements the one-off database seeding pipeline: sample
// user creation, image directory scanning, per-file photo assembly with
// EXIF or manual-fallback location data, and persistence.
package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/BobbyBoy101/natureScape/internal/config"
	"github.com/BobbyBoy101/natureScape/internal/geo"
	"github.com/BobbyBoy101/natureScape/internal/store"
	"github.com/BobbyBoy101/natureScape/pkg/logger"
)

// FileResult records the outcome of one directory entry. A skipped entry
// is a non-image file; a failed one carries the error that stopped it.
// Failures never abort the batch.
type FileResult struct {
	File      string
	PhotoName string
	Skipped   bool
	Err       error
}

type Seeder struct {
	Users     *store.UserStore
	Photos    *store.PhotoStore
	Locations *store.LocationStore
	Geo       geo.Resolver
	Cfg       *config.Config

	// OnFile, when set, observes every processed directory entry. The seed
	// command uses it to drive the progress bar.
	OnFile func(FileResult)
}

func New(db *gorm.DB, resolver geo.Resolver, cfg *config.Config) *Seeder {
	return &Seeder{
		Users:     store.NewUserStore(db, cfg.Seed.Bio, cfg.Seed.ProfilePicture),
		Photos:    store.NewPhotoStore(db),
		Locations: store.NewLocationStore(db),
		Geo:       resolver,
		Cfg:       cfg,
	}
}

// SeedImages walks the image directory in name order and assembles and
// persists one photo per recognized image file. Files are processed
// strictly sequentially; each photo is fully written before the next file
// is read. Per-file failures are captured in the results and logged, and
// processing continues with the next file.
func (s *Seeder) SeedImages(dir string) ([]FileResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image directory %s: %w", dir, err)
	}

	users, err := s.Users.GetAll()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		logger.LogWarn("No users exist; photos will be seeded without owners")
	}

	asm := &Assembler{
		Users:       users,
		Locations:   s.Locations,
		Geo:         s.Geo,
		Geocode:     s.Cfg.Geocode,
		Description: s.Cfg.Seed.Description,
	}
	st := NewState(ManualCoords())

	var results []FileResult
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		res := s.seedFile(dir, entry.Name(), asm, st)
		results = append(results, res)
		if s.OnFile != nil {
			s.OnFile(res)
		}
	}
	return results, nil
}

func (s *Seeder) seedFile(dir, name string, asm *Assembler, st *State) FileResult {
	ext := strings.ToLower(filepath.Ext(name))
	if !imageExts[ext] {
		logger.LogInfo("Non-image file %s found, skipping...", name)
		return FileResult{File: name, Skipped: true}
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		logger.LogError("Error reading image %s: %v", name, err)
		return FileResult{File: name, Err: err}
	}

	photo := asm.Assemble(name, data, st)
	if err := s.Photos.Insert(photo); err != nil {
		logger.LogError("Error saving image %s: %v", name, err)
		return FileResult{File: name, Err: err}
	}
	return FileResult{File: name, PhotoName: photo.PhotoName}
}

// CountCandidates returns how many directory entries SeedImages will
// attempt, for sizing progress reporting.
func CountCandidates(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read image directory %s: %w", dir, err)
	}
	n := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			n++
		}
	}
	return n, nil
}
