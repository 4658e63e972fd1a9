package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CatalogConfig selects the data source the catalog is loaded from.
type CatalogConfig struct {
	Type string `yaml:"type"`
	Path string `yaml:"path,omitempty"`
}

// FingerprintConfig selects the text vectorizer used for similarity.
type FingerprintConfig struct {
	Type string `yaml:"type"`
}

// RecommendConfig holds result counts for each query type.
type RecommendConfig struct {
	SimilarTopN int `yaml:"similar_top_n"`
	GenreTopN   int `yaml:"genre_top_n"`
	TopRatedN   int `yaml:"top_rated_n"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives logs while the TUI owns the terminal. Empty discards them.
	File string `yaml:"file,omitempty"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Catalog     CatalogConfig     `yaml:"catalog"`
	Fingerprint FingerprintConfig `yaml:"fingerprint"`
	Recommend   RecommendConfig   `yaml:"recommend"`
	Logging     LoggingConfig     `yaml:"logging"`
	Server      ServerConfig      `yaml:"server"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./movierec.yaml first, then ~/.config/movierec/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "movierec.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects unknown component types and missing paths.
func (c *AppConfig) Validate() error {
	switch c.Catalog.Type {
	case "builtin":
	case "yaml", "sqlite":
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog type %q requires a path", c.Catalog.Type)
		}
	default:
		return fmt.Errorf("unknown catalog type: %s", c.Catalog.Type)
	}
	switch c.Fingerprint.Type {
	case "count", "tfidf":
	default:
		return fmt.Errorf("unknown fingerprint type: %s", c.Fingerprint.Type)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format: %s", c.Logging.Format)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "movierec", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Catalog:     CatalogConfig{Type: "builtin"},
		Fingerprint: FingerprintConfig{Type: "count"},
		Recommend:   RecommendConfig{SimilarTopN: 5, GenreTopN: 5, TopRatedN: 10},
		Logging:     LoggingConfig{Level: "info", Format: "json"},
		Server:      ServerConfig{ListenAddr: ":8080"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Catalog.Type == "" {
		cfg.Catalog.Type = def.Catalog.Type
	}
	if cfg.Fingerprint.Type == "" {
		cfg.Fingerprint.Type = def.Fingerprint.Type
	}
	if cfg.Recommend.SimilarTopN == 0 {
		cfg.Recommend.SimilarTopN = def.Recommend.SimilarTopN
	}
	if cfg.Recommend.GenreTopN == 0 {
		cfg.Recommend.GenreTopN = def.Recommend.GenreTopN
	}
	if cfg.Recommend.TopRatedN == 0 {
		cfg.Recommend.TopRatedN = def.Recommend.TopRatedN
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = def.Server.ListenAddr
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("MOVIEREC_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MOVIEREC_LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("MOVIEREC_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
}
