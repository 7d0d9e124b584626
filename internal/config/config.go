package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Environment variable constants
// ---------------------------------------------------------------------------

const (
	EnvPrefix   = "GIT_COMMIT_AI"
	EnvConfig   = "GIT_COMMIT_AI_CONFIG"   // path to custom config file
	EnvAPIKey   = "GIT_COMMIT_AI_API_KEY"  // overrides apiKey
	EnvProject  = "GIT_COMMIT_AI_PROJECT"  // overrides projectName
	EnvLanguage = "GIT_COMMIT_AI_LANGUAGE" // overrides language
	EnvTheme    = "GIT_COMMIT_AI_THEME"    // overrides theme
)

const (
	configDirName  = ".git-commit-ai"
	configFileName = "config.json"
)

// Model selects the backend used to draft commit messages.
type Model string

const (
	// ModelAnthropic uses the Anthropic Messages API with an API key.
	ModelAnthropic Model = "claude-sonnet-4-20250514"
	// ModelVertex uses Vertex AI with application default credentials.
	ModelVertex Model = "vertex-claude-sonnet-4-20250514"
)

// Models lists the supported models in menu order.
var Models = []Model{ModelAnthropic, ModelVertex}

// Known reports whether m is a supported model.
func (m Model) Known() bool {
	for _, known := range Models {
		if m == known {
			return true
		}
	}
	return false
}

// Config is the persisted configuration. The JSON keys match the files
// written by earlier releases.
type Config struct {
	Model       Model  `mapstructure:"model" json:"model"`
	APIKey      string `mapstructure:"apiKey" json:"apiKey,omitempty"`
	ProjectName string `mapstructure:"projectName" json:"projectName,omitempty"`

	// Language the commit message is written in. Empty means English.
	Language string `mapstructure:"language" json:"language,omitempty"`
	// Theme names the console color theme.
	Theme string `mapstructure:"theme" json:"theme,omitempty"`
}

// GetConfigDir returns the directory holding the config file.
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// DefaultPath returns the config file path, honoring EnvConfig.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(GetConfigDir(), configFileName)
}

// Store reads and writes the config file at Path.
type Store struct {
	Path   string
	Logger *zap.Logger
}

// NewStore returns a Store for path. An empty path uses DefaultPath.
func NewStore(path string, logger *zap.Logger) *Store {
	if path == "" {
		path = DefaultPath()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{Path: path, Logger: logger}
}

func (s *Store) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Load reads the config file. A missing file yields (nil, nil). A file that
// cannot be read or parsed is logged and also yields (nil, nil), so callers
// treat it the same as an unconfigured tool. Environment variables override
// the values read from the file.
func (s *Store) Load() (*Config, error) {
	return s.load(true)
}

// LoadFile is Load without the environment overrides. It returns what is
// actually stored, so a config rewritten from it never captures env values.
func (s *Store) LoadFile() (*Config, error) {
	return s.load(false)
}

func (s *Store) load(withEnv bool) (*Config, error) {
	log := s.logger()

	if _, err := os.Stat(s.Path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("cannot access config file", zap.String("path", s.Path), zap.Error(err))
		}
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(s.Path)
	v.SetConfigType("json")

	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		_ = v.BindEnv("apiKey", EnvAPIKey)
		_ = v.BindEnv("projectName", EnvProject)
		_ = v.BindEnv("language", EnvLanguage)
		_ = v.BindEnv("theme", EnvTheme)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Warn("failed to read config file", zap.String("path", s.Path), zap.Error(err))
		return nil, nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Warn("failed to parse config file", zap.String("path", s.Path), zap.Error(err))
		return nil, nil
	}

	log.Debug("config loaded", zap.String("path", s.Path), zap.String("model", string(cfg.Model)))
	return &cfg, nil
}

// Save writes cfg to the store's path.
func (s *Store) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := cfg.SaveConfig(s.Path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	s.logger().Info("config saved", zap.String("path", s.Path))
	return nil
}

// SaveConfig writes the config as indented JSON, readable only by the owner.
func (c *Config) SaveConfig(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}
	return os.Chmod(path, 0600)
}

// RedactKey keeps the first 8 characters of a secret. Keys that short are
// masked completely.
func RedactKey(key string) string {
	if len(key) <= 8 {
		return "..."
	}
	return key[:8] + "..."
}
