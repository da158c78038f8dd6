// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Settings file names inside the config directory
const (
	ConfigMapFile       = "configmap.yaml"
	SecretFile          = "secret.yaml"
	ConfigMapDomainFile = "configmap-domain.yaml"
)

type DBSettings struct {
	Name     string `yaml:"name"`
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type Settings struct {
	DB DBSettings `yaml:"db"`
}

func defaultSettings() Settings {
	return Settings{
		DB: DBSettings{
			Name:     "pickhelper_db",
			Port:     "5432",
			Host:     "localhost",
			User:     "admin",
			Password: "admin",
		},
	}
}

// LoadSettings merges the three settings files in dir:
// name and port come from the configmap, host from the domain configmap,
// and user and password from the secret, which may be base64 encoded.
// Missing files leave defaults in place.
func LoadSettings(dir string) (Settings, error) {
	config, err := readSettingsFile(filepath.Join(dir, ConfigMapFile))
	if err != nil {
		return Settings{}, err
	}
	secret, err := readSettingsFile(filepath.Join(dir, SecretFile))
	if err != nil {
		return Settings{}, err
	}
	domain, err := readSettingsFile(filepath.Join(dir, ConfigMapDomainFile))
	if err != nil {
		return Settings{}, err
	}

	s := config
	s.DB.Host = domain.DB.Host
	s.DB.User = maybeDecode(secret.DB.User)
	s.DB.Password = maybeDecode(secret.DB.Password)
	return s, nil
}

func readSettingsFile(path string) (Settings, error) {
	s := defaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// URL builds a PostgreSQL connection string
func (d DBSettings) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// maybeDecode returns the base64 decoding of value, or value unchanged
// if it doesn't decode to valid UTF-8.
func maybeDecode(value string) string {
	v := strings.TrimSpace(value)
	if pad := len(v) % 4; pad != 0 {
		v += strings.Repeat("=", 4-pad)
	}
	decoded, err := base64.StdEncoding.DecodeString(v)
	if err != nil || !utf8.Valid(decoded) {
		return value
	}
	return string(decoded)
}
