package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/BobbyBoy101/natureScape/pkg/logger"
)

var AppConfig *Config

// LoadEnv loads a .env file from the working directory if one exists.
// Missing files are fine; real environment variables always win.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		logger.LogInfo("Loaded environment from .env")
	}
}

func Load() {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NATURESCAPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("database.path", "NATURESCAPE_DATABASE_PATH")
	v.BindEnv("seed.image_dir", "NATURESCAPE_SEED_IMAGE_DIR")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.LogInfo("Config file not found. Using Environment Variables and Defaults.")
		} else {
			logger.LogWarn("Config file found but unreadable: %v", err)
		}
	}

	if err := v.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("[CRITICAL] Error: Failed to parse configuration: %v", err)
	}

	if err := AppConfig.Validate(); err != nil {
		log.Fatalf("[FATAL] CONFIGURATION ERROR: %v", err)
	}

	logger.LogInfo("⚙️  %s v%s Initialized | Env: %s",
		AppConfig.App.Name,
		AppConfig.App.Version,
		AppConfig.App.Env,
	)
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "natureScape")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "development")

	// Database
	v.SetDefault("database.path", "./data/naturescape.db")

	// Seeding
	v.SetDefault("seed.image_dir", "./seed_images")
	v.SetDefault("seed.description",
		"lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor "+
			"incididunt ut labore et dolore magna aliqua ut enim ad minim veniam quis "+
			"nostrud exercitation ")
	v.SetDefault("seed.profile_picture", "./public/images/tom.jpg")
	v.SetDefault("seed.bio",
		"This is my bio stuff. I'm a cool person, like Tom from MySpace. He was everyone's "+
			"first friend back in the day and taught us all how to copy and paste HTML code "+
			"into our profiles.")

	// Geocoding: countries the fine-grained reverse geocoder is trusted for
	v.SetDefault("geocode.reverse_countries", []string{"US", "CA", "AU"})
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path cannot be empty")
	}
	if c.Seed.ImageDir == "" {
		return fmt.Errorf("seed.image_dir cannot be empty")
	}
	if len(c.Geocode.ReverseCountries) == 0 {
		logger.LogWarn("geocode.reverse_countries is empty; all locations will use the coarse lookup only")
	}
	return nil
}
