package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameFile is the name of the game config inside the config directory
const GameFile = "game.json"

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads game.json over the defaults and validates the result.
// Options missing from the file keep their default value.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameFile, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GameFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", GameFile, err)
	}

	return cfg, nil
}
