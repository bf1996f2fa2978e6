package database

import (
	"time"
)

// Photo is one seeded image document. Location fields are either all set
// (from EXIF or the manual fallback table) or all null; LocationID may lag
// behind Latitude/Longitude while resolution is pending in the manual
// fallback branch.
type Photo struct {
	ID                 string     `gorm:"primaryKey;type:text" json:"id"`
	PhotoName          string     `gorm:"index" json:"photo_name"`
	PhotoDescription   string     `json:"photo_description"`
	UserID             *string    `gorm:"index;type:text" json:"user_id"`
	DateTimeTaken      *time.Time `json:"date_time_taken"`
	DateTimeUploaded   time.Time  `json:"date_time_uploaded"`
	Likes              int        `gorm:"default:0" json:"likes"`
	Views              int        `gorm:"default:0" json:"views"`
	VerificationRating int        `gorm:"default:0" json:"verification_rating"`

	Location PhotoLocation `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Img      ImageBlob     `gorm:"embedded;embeddedPrefix:img_" json:"img"`

	CreatedAt time.Time `json:"created_at"`
}

type PhotoLocation struct {
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Heading    *float64 `json:"heading"`
	LocationID *string  `gorm:"type:text" json:"location_id"`
}

type ImageBlob struct {
	Data        []byte `gorm:"type:blob" json:"-"`
	ContentType string `json:"content_type"`
}

// Location is a named geographic area. Lookups key on (area, state) only;
// country and city are stored but never part of the key, so two areas with
// the same name and state text in different countries would collide.
type Location struct {
	ID      string  `gorm:"primaryKey;type:text" json:"id"`
	Country string  `json:"country"`
	State   string  `gorm:"index:idx_locations_area_state" json:"state"`
	City    *string `json:"city"`
	Area    string  `gorm:"index:idx_locations_area_state" json:"area"`

	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID           string    `gorm:"primaryKey;type:text" json:"id"`
	FirstName    string    `gorm:"size:128" json:"first_name"`
	LastName     string    `gorm:"size:128" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreationTime time.Time `json:"creation_time"`
	Agreement    bool      `gorm:"default:false" json:"agreement"`

	Profile UserProfile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}

type UserProfile struct {
	Bio     string    `json:"bio"`
	Picture ImageBlob `gorm:"embedded;embeddedPrefix:picture_" json:"profile_picture"`
}
