// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Exercise names accepted by -x
const (
	ExerciseTodoMemory = "todo-memory"
	ExerciseBoard      = "board"
	ExerciseTodo       = "todo"
	ExerciseVenmo      = "venmo"
	ExerciseCMS        = "cms"
)

// Database types accepted by -t
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const defaultPort = 8000

type Config struct {
	Port         int    `yaml:"port"`
	Exercise     string `yaml:"exercise"`
	DatabaseURL  string `yaml:"database_url"`
	DatabaseType string `yaml:"database_type"`
	LogLevel     string `yaml:"log_level"`
	ConfigFile   string `yaml:"-"`
}

// NeedsDatabase reports whether the selected exercise persists to SQL.
func (c Config) NeedsDatabase() bool {
	return c.Exercise != ExerciseTodoMemory && c.Exercise != ExerciseBoard
}

// ParseFlags resolves configuration from CLI flags, environment, an optional
// YAML file and defaults, in that order of precedence.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("coursework-api", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Exercise, "x", "", "Exercise to serve (todo-memory, board, todo, venmo, cms)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.ConfigFile, "c", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables already set in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	if cfg.Exercise == "" {
		cfg.Exercise = os.Getenv("EXERCISE")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = os.Getenv("CONFIG_FILE")
	}

	// Then the config file
	if cfg.ConfigFile != "" {
		fileCfg, err := loadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(cfg, fileCfg)
	}

	// Defaults
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Exercise == "" {
		cfg.Exercise = ExerciseTodo
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DatabaseSQLite
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if !isValidExercise(cfg.Exercise) {
		return Config{}, fmt.Errorf("unknown exercise %q", cfg.Exercise)
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	if cfg.DatabaseURL == "" && cfg.NeedsDatabase() {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultDatabaseFile(cfg.Exercise)
	}

	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return fileCfg, nil
}

// merge fills fields of cfg that are still empty from file
func merge(cfg, file Config) Config {
	if cfg.Port == 0 {
		cfg.Port = file.Port
	}
	if cfg.Exercise == "" {
		cfg.Exercise = file.Exercise
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = file.DatabaseURL
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = file.DatabaseType
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = file.LogLevel
	}
	return cfg
}

func defaultDatabaseFile(exercise string) string {
	switch exercise {
	case ExerciseVenmo:
		return "venmo.db"
	case ExerciseCMS:
		return "cms.db"
	default:
		return "todo.db"
	}
}

func isValidExercise(exercise string) bool {
	switch exercise {
	case ExerciseTodoMemory, ExerciseBoard, ExerciseTodo, ExerciseVenmo, ExerciseCMS:
		return true
	}
	return false
}
