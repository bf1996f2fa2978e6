package seed

import (
	"github.com/BobbyBoy101/natureScape/internal/database"
	"github.com/BobbyBoy101/natureScape/pkg/logger"
)

type sampleUser struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

// sampleUsers are the accounts created before image seeding; photos get
// assigned across them round-robin.
var sampleUsers = []sampleUser{
	{"John", "Doe", "johndoe@gmail.com", "johndoe", "hashed_password_123"},
	{"Jane", "Smith", "janesmith@hotmail.com", "janesmith", "hashed_password_456"},
	{"Alice", "Johnson", "alicejohnson@yahoo.com", "alicejohnson", "hashed_password_789"},
	{"Donald", "Trump", "Donny@yahoo.com", "DJT", "hashed_password_012"},
	{"Scott", "Mescudi", "KidCudi@gmail.com", "KidCudi", "hashed_password_90210"},
}

// SeedUsers creates the sample accounts. Failures (e.g. an account already
// present from a previous run) are logged and skipped; seeding continues
// with the remaining users.
func (s *Seeder) SeedUsers() []database.User {
	var created []database.User
	for _, u := range sampleUsers {
		user, err := s.Users.Create(u.FirstName, u.LastName, u.Email, u.Username, u.Password)
		if err != nil {
			logger.LogWarn("Could not create user %s %s: %v", u.FirstName, u.LastName, err)
			continue
		}
		created = append(created, *user)
	}
	logger.LogSuccess("Created %d of %d sample users", len(created), len(sampleUsers))
	return created
}
