// Package config loads application configuration from config.yaml and
// REALTY_* environment variables, and installs the global zap logger.
package config

import (
	"errors"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// Data drivers.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DataConfig selects where the dataset is loaded from.
type DataConfig struct {
	Path        string `yaml:"path" mapstructure:"path"`                 // file to load at startup; empty uses seed data
	Driver      string `yaml:"driver" mapstructure:"driver"`             // file, sqlite or postgres
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"` // sqlite path or postgres DSN
	UploadDir   string `yaml:"upload_dir" mapstructure:"upload_dir"`

	Sheet string     `yaml:"sheet" mapstructure:"sheet"` // xlsx sheet name; empty reads the first sheet
	CSV   CSVConfig  `yaml:"csv" mapstructure:"csv"`
	Pool  PoolConfig `yaml:"pool" mapstructure:"pool"`
}

// CSVConfig tunes the CSV reader for data files and uploads.
type CSVConfig struct {
	Delimiter  string `yaml:"delimiter" mapstructure:"delimiter"`
	Comment    string `yaml:"comment" mapstructure:"comment"` // empty disables comments
	LazyQuotes bool   `yaml:"lazy_quotes" mapstructure:"lazy_quotes"`
}

// DelimiterRune returns the field delimiter as a rune.
func (c CSVConfig) DelimiterRune() rune {
	return firstRune(c.Delimiter)
}

// CommentRune returns the comment character, or 0 when unset.
func (c CSVConfig) CommentRune() rune {
	return firstRune(c.Comment)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// PoolConfig sizes the Postgres connection pool.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	RateLimit   float64  `yaml:"rate_limit" mapstructure:"rate_limit"` // requests per second; 0 disables
	Burst       int      `yaml:"burst" mapstructure:"burst"`
	MaxUploadMB int64    `yaml:"max_upload_mb" mapstructure:"max_upload_mb"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	// A .env file in the working directory fills in unset variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrap(err, "config: read .env")
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("REALTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.path", "")
	v.SetDefault("data.driver", DriverFile)
	v.SetDefault("data.database_url", "")
	v.SetDefault("data.upload_dir", "media")
	v.SetDefault("data.sheet", "")
	v.SetDefault("data.csv.delimiter", ",")
	v.SetDefault("data.csv.comment", "")
	v.SetDefault("data.csv.lazy_quotes", false)
	v.SetDefault("data.pool.max_conns", 4)
	v.SetDefault("data.pool.min_conns", 1)
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 20)
	v.SetDefault("server.burst", 40)
	v.SetDefault("server.max_upload_mb", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings the given command needs. Mode is one of
// "serve", "query", "areas" or "load". All problems are reported together.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 {
			errs = append(errs, "server.port must be > 0")
		}
		if c.Server.RateLimit < 0 {
			errs = append(errs, "server.rate_limit must be >= 0")
		}
		if c.Server.RateLimit > 0 && c.Server.Burst < 1 {
			errs = append(errs, "server.burst must be >= 1 when rate limiting")
		}
		if c.Server.MaxUploadMB <= 0 {
			errs = append(errs, "server.max_upload_mb must be > 0")
		}
		if c.Data.UploadDir == "" {
			errs = append(errs, "data.upload_dir is required")
		}
	case "query", "areas", "load":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if utf8.RuneCountInString(c.Data.CSV.Delimiter) != 1 || !validCSVRune(c.Data.CSV.DelimiterRune()) {
		errs = append(errs, "data.csv.delimiter must be a single character other than a quote or newline")
	}
	if n := utf8.RuneCountInString(c.Data.CSV.Comment); n > 1 || (n == 1 && !validCSVRune(c.Data.CSV.CommentRune())) {
		errs = append(errs, "data.csv.comment must be empty or a single character")
	} else if n == 1 && c.Data.CSV.Comment == c.Data.CSV.Delimiter {
		errs = append(errs, "data.csv.comment must differ from data.csv.delimiter")
	}

	switch c.Data.Driver {
	case DriverFile:
	case DriverSQLite:
		if c.Data.DatabaseURL == "" {
			errs = append(errs, "data.database_url is required for driver "+c.Data.Driver)
		}
	case DriverPostgres:
		if c.Data.DatabaseURL == "" {
			errs = append(errs, "data.database_url is required for driver "+c.Data.Driver)
		}
		if c.Data.Pool.MaxConns < 1 {
			errs = append(errs, "data.pool.max_conns must be >= 1")
		}
		if c.Data.Pool.MinConns < 0 || c.Data.Pool.MinConns > c.Data.Pool.MaxConns {
			errs = append(errs, "data.pool.min_conns must be between 0 and data.pool.max_conns")
		}
	default:
		errs = append(errs, "data.driver must be one of file, sqlite, postgres")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: invalid for %s: %s", mode, strings.Join(errs, "; "))
	}
	return nil
}

// validCSVRune mirrors the runes encoding/csv accepts as Comma or Comment.
func validCSVRune(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
