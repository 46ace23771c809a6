package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"bookdesk/internal/domain"
	"bookdesk/internal/eventbus"
)

// EnvPrefix prefixes environment overrides, e.g. BOOKDESK_UI_FUZZY_DISTANCE
const EnvPrefix = "BOOKDESK"

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version" mapstructure:"version"`
	BookingsFile string     `toml:"bookings_file" mapstructure:"bookings_file"`
	LogFile      string     `toml:"log_file" mapstructure:"log_file"`
	UISettings   UISettings `toml:"ui" mapstructure:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowAmounts   bool          `toml:"show_amounts" mapstructure:"show_amounts"`
	TickInterval  time.Duration `toml:"tick_interval" mapstructure:"tick_interval"`
	FuzzyDistance int           `toml:"fuzzy_distance" mapstructure:"fuzzy_distance"`
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct {
	bus eventbus.EventBus
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus}
}

// DefaultPath returns the per-user config location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "bookdesk", "config.toml")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		BookingsFile: "bookings.toml",
		LogFile:      "bookdesk.log",
		UISettings: UISettings{
			ShowAmounts:   true,
			TickInterval:  time.Second,
			FuzzyDistance: 1,
		},
	}
}

// LoadFromPath loads configuration from path layered over the defaults,
// then applies BOOKDESK_* environment overrides. A missing file is not an error.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("bookings_file", def.BookingsFile)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("ui.show_amounts", def.UISettings.ShowAmounts)
	v.SetDefault("ui.tick_interval", def.UISettings.TickInterval)
	v.SetDefault("ui.fuzzy_distance", def.UISettings.FuzzyDistance)

	v.SetConfigType("toml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		log.Printf("Loaded config from %s", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: path})
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: path})
	}

	return nil
}

// Validate rejects settings the UI cannot work with
func (c *Config) Validate() error {
	if c.UISettings.TickInterval <= 0 {
		return fmt.Errorf("ui.tick_interval must be positive, got %s", c.UISettings.TickInterval)
	}
	if c.UISettings.FuzzyDistance < 0 {
		return fmt.Errorf("ui.fuzzy_distance must not be negative, got %d", c.UISettings.FuzzyDistance)
	}
	return nil
}
