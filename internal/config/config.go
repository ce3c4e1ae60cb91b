package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the ai-pr-review configuration.
type Config struct {
	Model          string    `json:"model"`
	Endpoint       string    `json:"endpoint"`
	RepoPath       string    `json:"repoPath"`
	TimeoutSeconds int       `json:"timeoutSeconds"`
	Format         string    `json:"format"`
	Log            LogConfig `json:"log"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Model:          "llama3",
		Endpoint:       "http://localhost:11434/api/generate",
		RepoPath:       ".",
		TimeoutSeconds: 300,
		Format:         "json",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ai-pr-review"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "ai-pr-review"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "ai-pr-review"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "ai-pr-review"), nil
	default:
		return filepath.Join(home, ".config", "ai-pr-review"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	// A .env in the working directory is optional.
	_ = godotenv.Load(".env")

	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	if c.RepoPath == "" {
		return fmt.Errorf("repo path must not be empty")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.TimeoutSeconds)
	}
	switch c.Format {
	case "json", "text", "markdown":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}
	return nil
}

func mergeFile(dst *Config, src Config) {
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.RepoPath != "" {
		dst.RepoPath = src.RepoPath
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.Log.Format = src.Log.Format
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("AIPR_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AIPR_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("AIPR_REPO"); v != "" {
		cfg.RepoPath = v
	}
	if v := os.Getenv("AIPR_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("AIPR_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("AIPR_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AIPR_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["endpoint"]; ok && v != "" {
		cfg.Endpoint = v
	}
	if v, ok := overrides["repo"]; ok && v != "" {
		cfg.RepoPath = v
	}
	if v, ok := overrides["timeout"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := overrides["logFormat"]; ok && v != "" {
		cfg.Log.Format = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "model":
		cfg.Model = value
	case "endpoint":
		cfg.Endpoint = value
	case "repoPath":
		cfg.RepoPath = value
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "format":
		cfg.Format = value
	case "logLevel":
		cfg.Log.Level = value
	case "logFormat":
		cfg.Log.Format = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
