package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	appDir     = "podium"
	envPrefix  = "PODIUM"
	storeFile  = "store.toml"
)

// Config holds the complete application configuration
type Config struct {
	Timer TimerConfig `mapstructure:"timer"`
	Audio AudioConfig `mapstructure:"audio"`
	Store StoreConfig `mapstructure:"store"`
	Log   LogConfig   `mapstructure:"log"`
}

// TimerConfig defines the countdown a session starts with
type TimerConfig struct {
	DefaultSeconds int  `mapstructure:"default_seconds"`
	Sound          bool `mapstructure:"sound"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads config.toml from the podium config directory, then PODIUM_* environment overrides.
// A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	configDir, err := configHome()
	if err != nil {
		return Config{}, err
	}
	dataDir, err := dataHome()
	if err != nil {
		return Config{}, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(configDir, appDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, filepath.Join(dataDir, appDir, storeFile))

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, storePath string) {
	v.SetDefault("timer.default_seconds", 300)
	v.SetDefault("timer.sound", true)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("store.path", storePath)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("store path is empty")
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format %q (console|json)", c.Log.Format)
	}

	return nil
}

func configHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

func dataHome() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}
