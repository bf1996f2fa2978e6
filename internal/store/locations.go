package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BobbyBoy101/natureScape/internal/database"
)

type LocationStore struct {
	db *gorm.DB
}

func NewLocationStore(db *gorm.DB) *LocationStore {
	return &LocationStore{db: db}
}

// FindID returns the id of the location matching (area, state), or the
// empty string when no such location exists. Absence is not an error.
// Country and city are not part of the lookup key.
func (s *LocationStore) FindID(area, state string) (string, error) {
	var loc database.Location
	err := s.db.Where("area = ? AND state = ?", area, state).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find location %s, %s: %w", area, state, err)
	}
	return loc.ID, nil
}

// Add inserts a new location unconditionally and returns its id. There is
// no duplicate pre-check here; callers wanting get-or-create semantics
// must call FindID first.
func (s *LocationStore) Add(country, state string, city *string, area string) (string, error) {
	loc := database.Location{
		ID:      uuid.NewString(),
		Country: country,
		State:   state,
		City:    city,
		Area:    area,
	}

	res := s.db.Create(&loc)
	if res.Error != nil {
		return "", fmt.Errorf("add location %s, %s: %w", area, state, res.Error)
	}
	if res.RowsAffected == 0 {
		return "", fmt.Errorf("add location %s, %s: no rows inserted", area, state)
	}
	return loc.ID, nil
}

// GetByID returns the location with the given id.
func (s *LocationStore) GetByID(id string) (*database.Location, error) {
	var loc database.Location
	if err := s.db.First(&loc, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get location %s: %w", id, err)
	}
	return &loc, nil
}
