package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BobbyBoy101/natureScape/internal/database"
	"github.com/BobbyBoy101/natureScape/internal/validation"
	"github.com/BobbyBoy101/natureScape/pkg/logger"
)

// ErrUserNotFound reports a lookup for a user id that does not exist.
var ErrUserNotFound = errors.New("user not found")

type UserStore struct {
	db *gorm.DB

	// Profile defaults applied to every new user.
	defaultBio     string
	defaultPicture string // file path; empty disables the default picture
}

func NewUserStore(db *gorm.DB, defaultBio, defaultPicturePath string) *UserStore {
	return &UserStore{
		db:             db,
		defaultBio:     defaultBio,
		defaultPicture: defaultPicturePath,
	}
}

// Create validates the input, hashes the password and inserts a new user
// with the default profile. Validation failures abort the operation.
func (s *UserStore) Create(firstName, lastName, email, username, password string) (*database.User, error) {
	in, err := validation.CheckUser(validation.NewUserInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := database.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
		CreationTime: time.Now().UTC(),
		Agreement:    false,
		Profile: database.UserProfile{
			Bio:     s.defaultBio,
			Picture: s.loadDefaultPicture(),
		},
	}

	res := s.db.Create(&user)
	if res.Error != nil {
		return nil, fmt.Errorf("add user %s %s: %w", in.FirstName, in.LastName, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("add user %s %s: no rows inserted", in.FirstName, in.LastName)
	}
	return &user, nil
}

func (s *UserStore) loadDefaultPicture() database.ImageBlob {
	if s.defaultPicture == "" {
		return database.ImageBlob{}
	}
	data, err := os.ReadFile(s.defaultPicture)
	if err != nil {
		logger.LogWarn("Default profile picture unavailable (%v), profiles start without one", err)
		return database.ImageBlob{}
	}
	return database.ImageBlob{Data: data, ContentType: "image/jpeg"}
}

// GetAll returns every user in creation order. SQLite's implicit rowid
// preserves insertion order, which the seeder's round-robin assignment
// relies on.
func (s *UserStore) GetAll() ([]database.User, error) {
	var users []database.User
	if err := s.db.Order("rowid").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetByID returns the user with the given id, or ErrUserNotFound.
func (s *UserStore) GetByID(id string) (*database.User, error) {
	id, err := validation.CheckID(id, "user")
	if err != nil {
		return nil, err
	}

	var user database.User
	err = s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", id, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &user, nil
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Username  *string
	Bio       *string
	Agreement *bool
}

// Update applies the patch and returns the updated user, mirroring a
// find-one-and-update over the users collection.
func (s *UserStore) Update(id string, upd UserUpdate) (*database.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	set := func(name, col string, v *string) error {
		if v == nil {
			return nil
		}
		clean, err := validation.CheckString(*v, name)
		if err != nil {
			return err
		}
		changes[col] = clean
		return nil
	}

	if err := set("first name", "first_name", upd.FirstName); err != nil {
		return nil, err
	}
	if err := set("last name", "last_name", upd.LastName); err != nil {
		return nil, err
	}
	if err := set("email", "email", upd.Email); err != nil {
		return nil, err
	}
	if err := set("username", "username", upd.Username); err != nil {
		return nil, err
	}
	if upd.Bio != nil {
		changes["profile_bio"] = *upd.Bio
	}
	if upd.Agreement != nil {
		changes["agreement"] = *upd.Agreement
	}
	if len(changes) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return s.GetByID(id)
}

// Delete removes the user and returns the deleted record, mirroring a
// find-one-and-delete. Photos referencing the user are left untouched;
// there is no referential integrity between users and photos.
func (s *UserStore) Delete(id string) (*database.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	res := s.db.Delete(&database.User{}, "id = ?", user.ID)
	if res.Error != nil {
		return nil, fmt.Errorf("delete user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("user %s: %w", id, ErrUserNotFound)
	}
	return user, nil
}
