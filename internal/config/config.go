// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON file and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"port"`

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string `json:"database_dsn"`

	// DatabaseDriver selects the database/sql driver: "postgres" or "pgx".
	DatabaseDriver string `json:"database_driver"`

	// SchemaAutoUpdate creates missing tables at startup.
	SchemaAutoUpdate bool `json:"schema_auto_update"`

	// ShowSQL logs every statement sent to the database.
	ShowSQL bool `json:"show_sql"`

	// FormatSQL keeps the original line layout of logged statements.
	FormatSQL bool `json:"format_sql"`

	// AdminUser and AdminPassword are the single static credential pair
	// accepted by the plot pages.
	AdminUser     string `json:"admin_user"`
	AdminPassword string `json:"admin_password"`

	// LogLevel is the zap level name.
	LogLevel string `json:"log_level"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// Parse loads a .env file if present, then parses os.Args and the environment.
// It exits the process on invalid configuration.
func Parse() *Options {
	if err := LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts, err := ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return opts
}

// LoadDotEnv copies variables from the file at path into the environment
// without overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error while loading %s: %w", path, err)
}

// ParseArgs builds Options from command-line args, an optional JSON file and
// environment variables, in that order of increasing precedence.
func ParseArgs(args []string) (*Options, error) {
	options := &Options{}

	flags := flag.NewFlagSet("plotkeeper", flag.ContinueOnError)
	flags.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flags.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flags.StringVar(&options.DatabaseDriver, "driver", "postgres", "database driver (postgres or pgx)")
	flags.BoolVar(&options.SchemaAutoUpdate, "schema-update", true, "create missing tables on startup")
	flags.BoolVar(&options.ShowSQL, "show-sql", false, "log sql statements")
	flags.BoolVar(&options.FormatSQL, "format-sql", false, "keep sql statement layout in logs")
	flags.StringVar(&options.AdminUser, "admin-user", "admin", "admin username")
	flags.StringVar(&options.AdminPassword, "admin-password", "admin", "admin password")
	flags.StringVar(&options.LogLevel, "l", "info", "log level")
	flags.StringVar(&options.Config, "config", "config.json", "path to config file")
	flags.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if err := loadFile(options.Config, options); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(options); err != nil {
		return nil, err
	}

	return options, nil
}

func loadFile(path string, options *Options) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error while reading config file: %w", err)
	}
	if err := json.Unmarshal(data, options); err != nil {
		return fmt.Errorf("error while parsing config file: %w", err)
	}
	return nil
}

func applyEnv(options *Options) error {
	strs := map[string]*string{
		"SERVER_ADDRESS":  &options.Port,
		"DATABASE_DSN":    &options.DatabaseDSN,
		"DATABASE_DRIVER": &options.DatabaseDriver,
		"ADMIN_USER":      &options.AdminUser,
		"ADMIN_PASSWORD":  &options.AdminPassword,
		"LOG_LEVEL":       &options.LogLevel,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"SCHEMA_AUTO_UPDATE": &options.SchemaAutoUpdate,
		"SHOW_SQL":           &options.ShowSQL,
		"FORMAT_SQL":         &options.FormatSQL,
	}
	for key, dst := range bools {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = b
	}

	return nil
}
