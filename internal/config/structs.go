package config

type Config struct {
	// App: Global application metadata
	App InConfigAppConfig `mapstructure:"app"`

	// Database: SQLite engine parameters
	Database DatabaseConfig `mapstructure:"database"`

	// Seed: Image seeding pipeline inputs and defaults
	Seed SeedConfig `mapstructure:"seed"`

	// Geocode: Region lookup behavior
	Geocode GeocodeConfig `mapstructure:"geocode"`
}

type InConfigAppConfig struct {
	// Name: Identity of the service (e.g., "natureScape")
	Name string `mapstructure:"name"`

	// Version: Application semantic version (e.g., "0.1.0")
	Version string `mapstructure:"version"`

	// Env: Execution context (development, staging, production)
	Env string `mapstructure:"env"`
}

type DatabaseConfig struct {
	// Path: Physical location of the SQLite database file (e.g., ./data/naturescape.db)
	Path string `mapstructure:"path"`
}

type SeedConfig struct {
	// ImageDir: Directory scanned for seed images
	ImageDir string `mapstructure:"image_dir"`

	// Description: Placeholder description applied to every seeded photo
	Description string `mapstructure:"description"`

	// ProfilePicture: Path of the default profile picture for seeded users.
	// Empty disables the default picture.
	ProfilePicture string `mapstructure:"profile_picture"`

	// Bio: Default profile bio for seeded users
	Bio string `mapstructure:"bio"`
}

type GeocodeConfig struct {
	// ReverseCountries: ISO country codes for which the fine-grained reverse
	// lookup (state/city/area refinement) is trusted. Outside this list only
	// the coarse state lookup is used and the city stays null.
	ReverseCountries []string `mapstructure:"reverse_countries"`
}

// ReverseLookupAllowed reports whether the fine-grained reverse geocoder
// covers the given ISO country code.
func (g GeocodeConfig) ReverseLookupAllowed(country string) bool {
	for _, c := range g.ReverseCountries {
		if c == country {
			return true
		}
	}
	return false
}
