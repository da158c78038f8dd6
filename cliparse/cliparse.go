package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Env          string
	ConfigDir    string
}

// ParseFlags validates flags and fills the rest from the environment.
// .env files are loaded first but never override variables already set.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pickhelper", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.Env, "env", "", "Environment name (dev, prod)")
	fs.StringVar(&cfg.ConfigDir, "config-dir", "", "Directory holding the settings YAML files")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Env == "" {
		cfg.Env = os.Getenv("APP_ENV")
	}
	if err := loadDotEnv(cfg.Env); err != nil {
		return Config{}, err
	}
	if cfg.Env == "" {
		cfg.Env = os.Getenv("APP_ENV")
		if cfg.Env == "" {
			cfg.Env = "dev"
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.ConfigDir == "" {
		cfg.ConfigDir = os.Getenv("CONFIG_DIR")
		if cfg.ConfigDir == "" {
			cfg.ConfigDir = "yaml"
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "pickhelper.db"
		} else {
			settings, err := LoadSettings(cfg.ConfigDir)
			if err != nil {
				return Config{}, err
			}
			cfg.DatabaseURL = settings.DB.URL()
		}
	}

	return cfg, nil
}

// loadDotEnv loads .env and .<env>.env, skipping files that don't exist
func loadDotEnv(env string) error {
	files := []string{".env"}
	if env != "" {
		files = append([]string{"." + env + ".env"}, files...)
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}
