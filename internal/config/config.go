package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Poems   PoemsSettings  `toml:"poems"`
	Timing  TimingSettings `toml:"timing"`
	UI      UISettings     `toml:"ui"`
	Log     LogSettings    `toml:"log"`
}

// PoemsSettings selects the collection and the poem shown first
type PoemsSettings struct {
	File    string `toml:"file"`     // empty means the embedded collection
	StartID int    `toml:"start_id"` // 0 means the first poem
}

// TimingSettings holds the debounce, cooldown and fade timings
type TimingSettings struct {
	NavigationCooldown Duration `toml:"navigation_cooldown"`
	SearchDebounce     Duration `toml:"search_debounce"`
	FadeOut            Duration `toml:"fade_out"`
	FadeIn             Duration `toml:"fade_in"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Animate   bool `toml:"animate"`
	Vertical  bool `toml:"vertical"`
	ShowImage bool `toml:"show_image"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a string ("300ms") in TOML
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

var logLevels = []interface{}{"debug", "info", "warn", "error"}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Poems,
		validation.Field(&c.Poems.StartID, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("poems: %w", err)
	}
	if err := validation.ValidateStruct(&c.Timing,
		validation.Field(&c.Timing.NavigationCooldown, validation.By(positive)),
		validation.Field(&c.Timing.SearchDebounce, validation.By(positive)),
		validation.Field(&c.Timing.FadeOut, validation.By(nonNegative)),
		validation.Field(&c.Timing.FadeIn, validation.By(nonNegative)),
	); err != nil {
		return fmt.Errorf("timing: %w", err)
	}
	if err := validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.In(logLevels...)),
	); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func positive(value interface{}) error {
	if d, _ := value.(Duration); d <= 0 {
		return validation.NewError("validation_duration_positive", "must be greater than zero")
	}
	return nil
}

func nonNegative(value interface{}) error {
	if d, _ := value.(Duration); d < 0 {
		return validation.NewError("validation_duration_non_negative", "must not be negative")
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level
func (l LogSettings) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "poemdeck", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		slog.Debug("config: no file, using defaults", slog.String("path", cs.filePath))
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	// Only path values take environment references
	cfg.Poems.File = os.ExpandEnv(cfg.Poems.File)
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Timing: TimingSettings{
			NavigationCooldown: Duration(300 * time.Millisecond),
			SearchDebounce:     Duration(300 * time.Millisecond),
			FadeOut:            Duration(200 * time.Millisecond),
			FadeIn:             Duration(50 * time.Millisecond),
		},
		UI: UISettings{
			Animate:   true,
			Vertical:  true,
			ShowImage: true,
		},
		Log: LogSettings{
			File:  "poemdeck.log",
			Level: "info",
		},
	}
}
