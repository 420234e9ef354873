package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings are user preferences persisted between runs
type Settings struct {
	Muted     bool    `toml:"muted"`
	SFXVolume float64 `toml:"sfx_volume"`
	ShowStats bool    `toml:"show_stats"`
	Scale     int     `toml:"scale"`
}

// DefaultSettings returns the settings used when no file exists
func DefaultSettings() Settings {
	return Settings{
		SFXVolume: 0.5,
		Scale:     1,
	}
}

// LoadSettings reads a TOML settings file.
// A missing file yields DefaultSettings without error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("failed to load settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// SaveSettings writes s to path as TOML
func SaveSettings(path string, s Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

func (s *Settings) normalize() {
	if s.SFXVolume < 0 {
		s.SFXVolume = 0
	}
	if s.SFXVolume > 1 {
		s.SFXVolume = 1
	}
	if s.Scale < 1 {
		s.Scale = 1
	}
}
