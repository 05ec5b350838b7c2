package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Default endpoint pieces. The collection URL is composed from a base address
// and a path suffix so either half can be overridden independently.
const (
	DefaultBase = "http://127.0.0.1:8787"
	DefaultPath = "/items"

	EnvBase = "ITEMS_API_BASE"
	EnvPath = "ITEMS_API_PATH"
)

// Settings is the persisted endpoint configuration. Environment variables
// take precedence over the file; the file over the built-in defaults.
type Settings struct {
	BaseURL string `json:"base_url,omitempty"`
	APIPath string `json:"api_path,omitempty"`
}

// Dir returns the itemctl config directory under the user config base.
// On Linux this typically resolves to $XDG_CONFIG_HOME/itemctl; on macOS to
// ~/Library/Application Support/itemctl. Falls back to HOME when
// UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "itemctl"), nil
}

// SettingsPath returns the settings file path.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// LoadSettings reads the settings file. A missing file yields zero settings.
func LoadSettings() (Settings, error) {
	p, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// SaveSettings writes the settings file, creating the directory if needed.
func SaveSettings(s Settings) error {
	p, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// BaseURL resolves the collection root: env, then settings file, then default.
func BaseURL() string {
	if v := strings.TrimSpace(os.Getenv(EnvBase)); v != "" {
		return strings.TrimRight(v, "/")
	}
	if s, err := LoadSettings(); err == nil && strings.TrimSpace(s.BaseURL) != "" {
		return strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")
	}
	return DefaultBase
}

// APIPath resolves the collection path suffix: env, then settings file, then
// default. A leading slash is ensured.
func APIPath() string {
	p := strings.TrimSpace(os.Getenv(EnvPath))
	if p == "" {
		if s, err := LoadSettings(); err == nil {
			p = strings.TrimSpace(s.APIPath)
		}
	}
	if p == "" {
		p = DefaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}

// Endpoint composes the full collection endpoint URL.
func Endpoint() string {
	return BaseURL() + APIPath()
}
