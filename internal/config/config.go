package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultServerURL = "http://localhost:5000"
	DefaultLanguage  = "en"
)

// DefaultModes is the closed set of interaction modes offered by the UI.
// The backend routes between them; the client only tracks which one is active.
var DefaultModes = []string{"normal", "gita", "inspire"}

type Config struct {
	ServerURL string `json:"server_url"`
	// Language is the persisted "sakha-language" choice, read at startup and
	// written on every explicit language change.
	Language string   `json:"sakha-language"`
	Modes    []string `json:"modes,omitempty"`
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if config.ServerURL == "" {
		config.ServerURL = DefaultServerURL
	}
	if len(config.Modes) == 0 {
		config.Modes = DefaultModes
	}

	return config, nil
}

// PersistedLanguage returns the stored language choice, empty when the user
// has never picked one.
func (c *Config) PersistedLanguage() string {
	return c.Language
}

// SetLanguage stores the new language code with a single config write. The
// write goes against the on-disk config rather than the in-memory one, so
// session-only overrides (a --server flag) are never persisted with it.
func (c *Config) SetLanguage(code string) error {
	c.Language = code

	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	stored := &Config{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, stored); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}
	stored.Language = code
	return saveConfig(stored, configPath)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func getConfigPath() (string, error) {
	var configDir string

	// Use SAKHA_HOME if set, otherwise use user's home directory
	if sakhaHome := os.Getenv("SAKHA_HOME"); sakhaHome != "" {
		configDir = sakhaHome
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".sakha", "config.json"), nil
}

// LogPath returns the log file location next to the config file.
func LogPath() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), "sakha.log"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	// Read existing config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		ServerURL: DefaultServerURL,
		Language:  "",
		Modes:     DefaultModes,
	}

	// Save default config to file
	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
