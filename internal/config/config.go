// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/marka-dev/marka/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Logger config under the [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
	Mouse  MouseConfig   `toml:"mouse"`  // Pointer gesture settings
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth  int `toml:"tab_width"`
	ScrollOff int `toml:"scroll_off"`
}

// MouseConfig controls how raw pointer events are classified into gestures.
type MouseConfig struct {
	// DoubleClickMs is the maximum interval between clicks, in milliseconds,
	// for them to count as one multi-click sequence.
	DoubleClickMs int `toml:"double_click_ms"`
	// ClickRadius is the maximum cell distance between clicks in a sequence.
	ClickRadius int `toml:"click_radius"`
}

// DoubleClickInterval returns the configured multi-click window as a Duration.
func (m MouseConfig) DoubleClickInterval() time.Duration {
	return time.Duration(m.DoubleClickMs) * time.Millisecond
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: DefaultLogFileName,
		},
		Editor: EditorConfig{
			TabWidth:  DefaultTabWidth,
			ScrollOff: DefaultScrollOff,
		},
		Mouse: MouseConfig{
			DoubleClickMs: DefaultDoubleClickMs,
			ClickRadius:   DefaultClickRadius,
		},
	}
}

// loadFromFile loads configuration from a TOML file, decoding over the
// defaults so keys absent from the file keep their default values.
// A missing file is not an error; the defaults simply stand.
func loadFromFile(filePath string) (*Config, error) {
	cfg := NewDefaultConfig()
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	if _, err := toml.DecodeFile(filePath, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // Allow 0
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Mouse.DoubleClickMs <= 0 {
		c.Mouse.DoubleClickMs = defaults.Mouse.DoubleClickMs
	}
	if c.Mouse.ClickRadius < 0 {
		c.Mouse.ClickRadius = defaults.Mouse.ClickRadius
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Logger.LogFilePath == "" {
		c.Logger.LogFilePath = DefaultLogFileName
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and validation.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		// Determine effective config file path
		effectivePath := configFilePath
		if effectivePath == "" { // If flag not set, try default location
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err // can't log yet, logger isn't initialized
			} else {
				cfg = fileCfg
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		// Programming error - LoadConfig should be called in main.
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
