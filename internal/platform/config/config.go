package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	documentFile = "tracker.json"
	dbFile       = "index.db"
	settingsFile = "config.yaml"
)

// Settings are the optional user preferences read from config.yaml in the
// data directory. Everything has a usable zero value; the file may be absent.
type Settings struct {
	DisplayName string   `yaml:"display_name"`
	Colors      []string `yaml:"colors"`
}

type Config struct {
	DataDir      string
	DocumentPath string
	DBPath       string
	PluginsDir   string
	Settings     Settings
}

// New resolves the data directory (defaulting to ~/.ptrack) and loads
// optional settings from config.yaml inside it.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".ptrack")
	}
	cfg := Config{
		DataDir:      dataDir,
		DocumentPath: filepath.Join(dataDir, documentFile),
		DBPath:       filepath.Join(dataDir, dbFile),
		PluginsDir:   filepath.Join(dataDir, "plugins"),
	}
	settings, err := loadSettings(filepath.Join(dataDir, settingsFile))
	if err != nil {
		return Config{}, err
	}
	cfg.Settings = settings
	return cfg, nil
}

func loadSettings(path string) (Settings, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	settings := Settings{}
	if err := yaml.Unmarshal(payload, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", settingsFile, err)
	}
	return settings, nil
}
