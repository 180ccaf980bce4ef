package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Preview length bounds; values outside are clamped on load.
const (
	PreviewLenMin     = 10
	PreviewLenMax     = 120
	PreviewLenDefault = 40
)

// Config holds the unified application configuration
type Config struct {
	ConfirmDelete bool
	PreviewLength int
	WelcomeNote   bool
}

// Settings represents the config file structure. Pointers distinguish
// "unset" from an explicit false/zero.
type Settings struct {
	ConfirmDelete *bool `yaml:"confirm_delete,omitempty"`
	PreviewLength int   `yaml:"preview_length,omitempty"`
	WelcomeNote   *bool `yaml:"welcome_note,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	NoConfirmDelete bool
	PreviewLength   int // 0 means unset
}

var globalConfig *Config

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		ConfirmDelete: true,
		PreviewLength: PreviewLenDefault,
		WelcomeNote:   true,
	}

	// Config file first for base values
	configPath, err := GetConfigPath()
	if err == nil {
		if settings, err := loadConfigFile(configPath); err == nil {
			if settings.ConfirmDelete != nil {
				cfg.ConfirmDelete = *settings.ConfirmDelete
			}
			if settings.PreviewLength != 0 {
				cfg.PreviewLength = settings.PreviewLength
			}
			if settings.WelcomeNote != nil {
				cfg.WelcomeNote = *settings.WelcomeNote
			}
		}
	}

	// Priority 2: environment variables override the config file
	if v := os.Getenv("NOTA_CONFIRM_DELETE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ConfirmDelete = b
		}
	}
	if v := os.Getenv("NOTA_PREVIEW_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n != 0 {
			cfg.PreviewLength = n
		}
	}
	if v := os.Getenv("NOTA_WELCOME_NOTE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WelcomeNote = b
		}
	}

	// Priority 1: CLI flags override everything
	if flags.NoConfirmDelete {
		cfg.ConfirmDelete = false
	}
	if flags.PreviewLength != 0 {
		cfg.PreviewLength = flags.PreviewLength
	}

	if cfg.PreviewLength < PreviewLenMin {
		cfg.PreviewLength = PreviewLenMin
	}
	if cfg.PreviewLength > PreviewLenMax {
		cfg.PreviewLength = PreviewLenMax
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the loaded config
func Get() *Config {
	return globalConfig
}

// GetConfigDir returns the directory holding the config file (also used
// for the debug log).
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "nota"), nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	confirm := true
	welcome := true
	settings := Settings{
		ConfirmDelete: &confirm,
		PreviewLength: PreviewLenDefault,
		WelcomeNote:   &welcome,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
