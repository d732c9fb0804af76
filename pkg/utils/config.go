package utils

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Session  SessionConfig
	Bill     BillConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type CatalogConfig struct {
	Source string `validate:"oneof=csv postgres"`
	Path   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	// MaxAttempts bounds the retry loop per prompt; 0 means unbounded.
	MaxAttempts    int    `validate:"gte=0"`
	ShowtimeSelect string `validate:"oneof=label indexed"`
}

type BillConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-reservation")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CATALOG_SOURCE", "csv")
	viper.SetDefault("CATALOG_PATH", "movies.csv")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("MAX_ATTEMPTS", 0)
	viper.SetDefault("SHOWTIME_SELECT", "label")
	viper.SetDefault("BILL_DIR", "bills/")

	// .env is optional; env vars and defaults are enough to run
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Catalog: CatalogConfig{
			Source: viper.GetString("CATALOG_SOURCE"),
			Path:   viper.GetString("CATALOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			MaxAttempts:    viper.GetInt("MAX_ATTEMPTS"),
			ShowtimeSelect: viper.GetString("SHOWTIME_SELECT"),
		},
		Bill: BillConfig{
			Dir: viper.GetString("BILL_DIR"),
		},
	}

	if errs := ValidateStruct(&config.Catalog); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog config: %s", FormatValidationErrors(errs))
	}
	if errs := ValidateStruct(&config.Session); len(errs) > 0 {
		return nil, fmt.Errorf("invalid session config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
