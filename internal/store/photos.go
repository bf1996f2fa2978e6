package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BobbyBoy101/natureScape/internal/database"
	"github.com/BobbyBoy101/natureScape/internal/validation"
)

// ErrPhotoNotFound reports a lookup for a photo id that does not exist.
var ErrPhotoNotFound = errors.New("photo not found")

type PhotoStore struct {
	db *gorm.DB
}

func NewPhotoStore(db *gorm.DB) *PhotoStore {
	return &PhotoStore{db: db}
}

// Insert persists a fully assembled photo. An id is assigned if the caller
// did not set one. Photos are written once by the seeder and never updated
// afterwards.
func (s *PhotoStore) Insert(p *database.Photo) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	res := s.db.Create(p)
	if res.Error != nil {
		return fmt.Errorf("insert photo %s: %w", p.PhotoName, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("insert photo %s: no rows inserted", p.PhotoName)
	}
	return nil
}

// GetByID returns the photo with the given id, or ErrPhotoNotFound.
func (s *PhotoStore) GetByID(id string) (*database.Photo, error) {
	id, err := validation.CheckID(id, "photo")
	if err != nil {
		return nil, err
	}

	var photo database.Photo
	err = s.db.First(&photo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("photo %s: %w", id, ErrPhotoNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get photo %s: %w", id, err)
	}
	return &photo, nil
}

// GetAll returns every photo in insertion order.
func (s *PhotoStore) GetAll() ([]database.Photo, error) {
	var photos []database.Photo
	if err := s.db.Order("rowid").Find(&photos).Error; err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}
