package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"taskflow/internal/animate"
)

type Config struct {
	DBPath        string        `mapstructure:"db_path"`
	ThemeName     string        `mapstructure:"theme_name"`
	LogLevel      string        `mapstructure:"log_level"`
	LogFile       string        `mapstructure:"log_file"`
	UpdateRetries int           `mapstructure:"update_retries"`
	Overlay       OverlayConfig `mapstructure:"overlay"`
}

// tuning for the task detail overlay
type OverlayConfig struct {
	CompactHeight  int           `mapstructure:"compact_height"`  // rows before expansion
	ExpandDuration time.Duration `mapstructure:"expand_duration"` // e.g. "300ms"
	Easing         string        `mapstructure:"easing"`          // ease-out-cubic, ease-out-quad, linear
	FPS            int           `mapstructure:"fps"`
}

const (
	defaultLogLevel       = "info"
	defaultUpdateRetries  = 2
	defaultCompactHeight  = 12
	defaultExpandDuration = 300 * time.Millisecond
	defaultEasing         = "ease-out-cubic"
	defaultFPS            = 60
)

var (
	configDir  string
	configFile string
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".taskflow")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

// points the package at a config file other than ~/.taskflow/config.yaml
func SetConfigFile(path string) {
	configFile = path
	configDir = filepath.Dir(path)
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TASKFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loads config from file, falling back to defaults
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()
	setDefaults(v)

	if ConfigExists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if _, err := animate.EasingByName(cfg.Overlay.Easing); err != nil {
		return nil, fmt.Errorf("invalid overlay.easing: %w", err)
	}
	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("db_path", cfg.DBPath)
	v.Set("theme_name", cfg.ThemeName)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_file", cfg.LogFile)
	v.Set("update_retries", cfg.UpdateRetries)
	v.Set("overlay.compact_height", cfg.Overlay.CompactHeight)
	v.Set("overlay.expand_duration", cfg.Overlay.ExpandDuration.String())
	v.Set("overlay.easing", cfg.Overlay.Easing)
	v.Set("overlay.fps", cfg.Overlay.FPS)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	cfg := &Config{
		UpdateRetries: defaultUpdateRetries,
		Overlay: OverlayConfig{
			ExpandDuration: defaultExpandDuration,
		},
	}
	applyDefaults(cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_path", filepath.Join(configDir, "tasks.db"))
	v.SetDefault("theme_name", "")
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_file", filepath.Join(configDir, "taskflow.log"))
	v.SetDefault("update_retries", defaultUpdateRetries)
	v.SetDefault("overlay.compact_height", defaultCompactHeight)
	v.SetDefault("overlay.expand_duration", defaultExpandDuration.String())
	v.SetDefault("overlay.easing", defaultEasing)
	v.SetDefault("overlay.fps", defaultFPS)
}

// zero values in a hand-written file still get sane settings
func applyDefaults(cfg *Config) {
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(configDir, "tasks.db")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(configDir, "taskflow.log")
	}
	if cfg.UpdateRetries < 0 {
		cfg.UpdateRetries = 0
	}
	if cfg.Overlay.CompactHeight <= 0 {
		cfg.Overlay.CompactHeight = defaultCompactHeight
	}
	if cfg.Overlay.ExpandDuration < 0 {
		cfg.Overlay.ExpandDuration = defaultExpandDuration
	}
	if cfg.Overlay.Easing == "" {
		cfg.Overlay.Easing = defaultEasing
	}
	if cfg.Overlay.FPS <= 0 {
		cfg.Overlay.FPS = defaultFPS
	}
}

// updates theme in config file
func UpdateTheme(themeName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ThemeName = themeName
	return SaveConfig(cfg)
}
