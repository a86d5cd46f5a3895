package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// File keys.
const (
	KeyDatabasePath = "database_path"
	KeyLogPath      = "log_path"
	KeyLogLevel     = "log_level"
	KeyOpenCommand  = "open_command"
)

// Flag names.
const (
	FlagDatabase = "db"
	FlagLog      = "log"
	FlagLogLevel = "log-level"
	FlagConfig   = "config"
)

// Config holds runtime settings for medikom.
//
// Fields:
//   - DatabasePath: SQLite file holding entries and attachments.
//   - LogPath: append-only operation log.
//   - LogLevel: minimum level written to the log.
//   - OpenCommand: program used to open attachments; empty means the
//     platform default.
type Config struct {
	DatabasePath string
	LogPath      string
	LogLevel     string
	OpenCommand  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "medikom.sqlite"
	c.LogPath = "medikom.log"
	c.LogLevel = "info"
	c.OpenCommand = ""
}

// Level parses LogLevel. Unknown names are an error.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// RegisterFlags declares the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.String(FlagDatabase, d.DatabasePath, "path of the database file")
	fs.String(FlagLog, d.LogPath, "path of the log file")
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.StringP(FlagConfig, "c", "", "configuration file (json, yaml or toml)")
}

// LoadConfig constructs a Config from defaults, the optional config file and
// the flags in fs, which must already be parsed. Later sources take
// precedence over earlier ones.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	v := viper.New()
	v.SetDefault(KeyDatabasePath, cfg.DatabasePath)
	v.SetDefault(KeyLogPath, cfg.LogPath)
	v.SetDefault(KeyLogLevel, cfg.LogLevel)
	v.SetDefault(KeyOpenCommand, cfg.OpenCommand)

	if fs != nil {
		if f := fs.Lookup(FlagConfig); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}

		for key, name := range map[string]string{
			KeyDatabasePath: FlagDatabase,
			KeyLogPath:      FlagLog,
			KeyLogLevel:     FlagLogLevel,
		} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg.DatabasePath = v.GetString(KeyDatabasePath)
	cfg.LogPath = v.GetString(KeyLogPath)
	cfg.LogLevel = v.GetString(KeyLogLevel)
	cfg.OpenCommand = v.GetString(KeyOpenCommand)

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}
