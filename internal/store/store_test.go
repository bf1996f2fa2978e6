package store

import (
	"testing"

	"gorm.io/gorm"

	"github.com/BobbyBoy101/natureScape/internal/database"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("file::memory:")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	return db
}
