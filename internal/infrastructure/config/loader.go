package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/keyclip-go/internal/domain"
	"github.com/doeshing/keyclip-go/internal/pkg/filesystem"
	"github.com/doeshing/keyclip-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.keyclip/config.yaml
// (overridable via KEYCLIP_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is seeded with the
// default configuration.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("KEYCLIP_CONFIG"); custom != "" {
		return filesystem.ExpandHome(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".keyclip", "config.yaml")
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Database: domain.DatabaseSettings{
			Path: filepath.Join(filesystem.UserHomeDir(), ".keyclip", "store.db"),
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(filesystem.UserHomeDir(), ".keyclip", "store.db")
	} else {
		cfg.Database.Path = filesystem.ExpandHome(cfg.Database.Path)
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
