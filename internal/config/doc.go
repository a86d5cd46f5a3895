// Package config loads runtime configuration for medikom.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (JSON, YAML or TOML) selected via --config or -c.
//  3. Command-line flags, which override earlier values when set explicitly.
//
// Supported flags
//
//	--db string          path of the SQLite database file
//	--log string         path of the append-only log file
//	--log-level string   debug, info, warn or error
//	-c, --config string  configuration file
//
// # File schema
//
//	{
//	  "database_path": "/home/u/medikom.sqlite",
//	  "log_path": "/home/u/medikom.log",
//	  "log_level": "debug",
//	  "open_command": "xdg-open"
//	}
//
// Note: This package does not read environment variables; use the config
// file or flags to configure values.
package config
