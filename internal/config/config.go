package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daykit-dev/daykit/internal/branding"
	"github.com/daykit-dev/daykit/internal/scaffold"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known keys.
const (
	KeyDuneLang = "dune_lang"
	KeyQuiet    = "quiet"
)

// Dir returns the path to the config directory. It checks the DAYKIT_HOME
// environment variable first, then falls back to ~/.daykit.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.daykit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyDuneLang, scaffold.DefaultDuneLang)
	viper.SetDefault(KeyQuiet, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// DuneLang returns the configured dune language version. An unquoted YAML
// value such as 3.10 decodes as a float and would lose its trailing zero, so
// anything but a string is rejected.
func DuneLang() (string, error) {
	switch v := viper.Get(KeyDuneLang).(type) {
	case string:
		return v, nil
	case nil:
		return scaffold.DefaultDuneLang, nil
	default:
		return "", fmt.Errorf("%s in %s must be a quoted string such as \"3.10\", got %T %v", KeyDuneLang, FilePath(), v, v)
	}
}

// Quiet reports whether file listings should be suppressed.
func Quiet() bool {
	return viper.GetBool(KeyQuiet)
}

// Set validates a key-value pair, then writes it and saves the config file.
func Set(key, value string) error {
	result, err := ValidateSetting(key, value)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid setting: %s", result.Issues[0])
	}
	if key == KeyDuneLang {
		lang, err := scaffold.ParseDuneLang(value)
		if err != nil {
			return fmt.Errorf("invalid setting: %w", err)
		}
		value = lang
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
