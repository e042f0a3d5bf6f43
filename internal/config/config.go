package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

type Config struct {
	DB     DbConfig     `yaml:"db"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

type DbConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	DBName         string `yaml:"dbname"`
	MaxConnections int    `yaml:"max_connections"`
	SSLMode        string `yaml:"sslmode"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name onto slog, falling back to info.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads a YAML file over DefaultConfig. Read and parse failures wrap
// odds.ErrConfigRead and odds.ErrConfigParse.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", odds.ErrConfigRead, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", odds.ErrConfigParse, err)
	}
	if cfg.DB.MaxConnections <= 0 {
		cfg.DB.MaxConnections = 5
	}
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		DB: DbConfig{
			Host:           "localhost",
			Port:           5432,
			User:           "postgres",
			DBName:         "european_odds",
			MaxConnections: 5,
			SSLMode:        "disable",
		},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// ServerURL is postgres://[user[:password]@]host:port.
func (c DbConfig) ServerURL() string {
	u := url.URL{Scheme: "postgres", Host: net.JoinHostPort(c.Host, strconv.Itoa(c.Port))}
	switch {
	case c.User != "" && c.Password != "":
		u.User = url.UserPassword(c.User, c.Password)
	case c.User != "":
		u.User = url.User(c.User)
	}
	return u.String()
}

// URL is ServerURL followed by the database name.
func (c DbConfig) URL() string {
	return c.ServerURL() + "/" + c.DBName
}

// DSN is the connection string handed to lib/pq.
func (c DbConfig) DSN() string {
	if c.SSLMode == "" {
		return c.URL()
	}
	return c.URL() + "?sslmode=" + url.QueryEscape(c.SSLMode)
}
