// Package config loads service settings from defaults, an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	Import   ImportConfig   `mapstructure:"import"`
}

type DatabaseConfig struct {
	URL         string `mapstructure:"url" validate:"required"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

type LogConfig struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format      string `mapstructure:"format" validate:"oneof=json console"`
	Development bool   `mapstructure:"development"`
}

type ImportConfig struct {
	MaxFiles     int    `mapstructure:"max_files" validate:"min=1"`
	MaxFileBytes int64  `mapstructure:"max_file_bytes" validate:"min=1"`
	BaseDir      string `mapstructure:"base_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.url", "")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("http.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.development", false)
	v.SetDefault("import.max_files", 10)
	v.SetDefault("import.max_file_bytes", 10<<20)
	v.SetDefault("import.base_dir", ".")
}

// Load reads path, or CONFIG_PATH when path is empty. Environment variables override the file,
// with dots in keys replaced by underscores (DATABASE_URL, HTTP_PORT, IMPORT_MAX_FILES, ...).
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
