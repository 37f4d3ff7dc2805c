package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
	Receipt  ReceiptConfig  `mapstructure:"receipt"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig database settings. Driver is one of sqlite, mysql, postgres.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Path     string `mapstructure:"path"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
	SSLMode  string `mapstructure:"sslmode"`
}

// JWTConfig JWT settings
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig SMTP settings
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// ReceiptConfig PDF receipt settings
type ReceiptConfig struct {
	LogoPath string `mapstructure:"logo_path"`
	Timezone string `mapstructure:"timezone"`
	Compress bool   `mapstructure:"compress"`
}

// LogConfig logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// GlobalConfig global configuration instance
	GlobalConfig *Config
)

// LoadConfig loads configuration.
// Precedence: env (PAGAMENTOS_*) > external file > embedded defaults.
// configPath is optional.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. embedded defaults
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	// 2. optional external file
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			slog.Warn("cannot read config file", "path", configPath, "error", err)
		} else {
			slog.Info("merged external config", "path", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/pagamentos")
		externalViper.AddConfigPath("$HOME/.pagamentos")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				slog.Warn("merge external config failed", "error", err)
			} else {
				slog.Info("merged external config", "path", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. env overrides, e.g. PAGAMENTOS_DATABASE_DRIVER
	v.SetEnvPrefix("PAGAMENTOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// GetConfig returns the global configuration
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("config not initialized, call LoadConfig first")
	}
	return GlobalConfig
}

// Location resolves the receipt time zone, falling back to the local zone.
func (c ReceiptConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown receipt timezone, using local", "timezone", c.Timezone, "error", err)
		return time.Local
	}
	return loc
}

// PrintConfig logs the active configuration without secrets
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	db := GlobalConfig.Database
	target := db.Path
	if db.Driver != "sqlite" {
		target = fmt.Sprintf("%s@%s:%s/%s", db.Username, db.Host, db.Port, db.DBName)
	}
	slog.Info("active config",
		"port", GlobalConfig.Server.Port,
		"mode", GlobalConfig.Server.Mode,
		"db_driver", db.Driver,
		"db", target,
		"email_enabled", GlobalConfig.Email.Enabled,
		"logo", GlobalConfig.Receipt.LogoPath,
	)
}
