package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "catalog"
	configFile = "config.yaml"
)

var (
	// Global preferences instance (loaded lazily)
	globalPrefs     *Preferences
	globalPrefsOnce sync.Once
	globalPrefsErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/catalog or $HOME/.config/catalog
//   - macOS: $HOME/.config/catalog
//   - Windows: %LOCALAPPDATA%\catalog
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the preferences file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load loads the preferences from the default location once per process.
// A missing file yields defaults.
func Load() (*Preferences, error) {
	globalPrefsOnce.Do(func() {
		path, err := GetConfigPath()
		if err != nil {
			globalPrefsErr = fmt.Errorf("failed to get config path: %w", err)
			return
		}
		globalPrefs, globalPrefsErr = LoadFrom(path)
	})
	return globalPrefs, globalPrefsErr
}

// LoadFrom reads preferences from path. A missing file yields defaults.
func LoadFrom(path string) (*Preferences, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewPreferences(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys left out of the file keep their defaults
	prefs := NewPreferences()
	if err := yaml.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return prefs, nil
}

// SaveTo writes the preferences to path atomically (temp file + rename).
func (p *Preferences) SaveTo(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(p)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Marshal renders preferences as commented YAML.
func Marshal(p *Preferences) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Catalog Preferences
# page_size:       products shown per page
# debounce_ms:     delay before a search is applied
# default_view:    list or card
# locale:          language tag used to group price digits
# currency_symbol: glyph printed before prices
# seed_file:       optional YAML/JSON dataset loaded at startup

`)
	return append(header, data...), nil
}

// CreateDefaultConfig writes a preferences file with default values to path
// unless one already exists.
func CreateDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	return NewPreferences().SaveTo(path)
}
