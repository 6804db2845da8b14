package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables read by Load.
const (
	EnvDB          = "MOODTRACK_DB"
	EnvLogUseCases = "MOODTRACK_LOG_USE_CASES"
	EnvChartWidth  = "MOODTRACK_CHART_WIDTH"
	EnvChartHeight = "MOODTRACK_CHART_HEIGHT"
	EnvConfig      = "MOODTRACK_CONFIG"
)

// Config holds runtime settings for the moodtrack binary.
type Config struct {
	DBPath      string
	LogUseCases bool
	ChartWidth  int // terminal columns used by the mood chart
	ChartHeight int // terminal rows used by the mood chart
	ConfigFile  string
}

// fileConfig mirrors config.toml. Pointer fields distinguish unset values.
type fileConfig struct {
	Database    string `toml:"database"`
	LogUseCases *bool  `toml:"log_use_cases"`
	Chart       struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"chart"`
}

// Minimum chart size; smaller values are ignored.
const (
	minChartWidth  = 30
	minChartHeight = 10
)

// DefaultConfig returns the configuration used when nothing is set. Paths
// live under ~/.moodtrack.
func DefaultConfig() Config {
	dir := ".moodtrack"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".moodtrack")
	}
	return Config{
		DBPath:      filepath.Join(dir, "moodtrack.db"),
		LogUseCases: false,
		ChartWidth:  72,
		ChartHeight: 20,
		ConfigFile:  filepath.Join(dir, "config.toml"),
	}
}

// Load builds the configuration from, in increasing precedence: defaults,
// the .env file in the working directory, the TOML config file, and the
// process environment.
func Load() (Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit .env path. A missing .env or config file
// is not an error.
func LoadFrom(envFile string) (Config, error) {
	cfg := DefaultConfig()

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("reading %s: %w", envFile, err)
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	// .env values sit below the config file, so apply them first.
	applyEnv(&cfg, func(key string) string { return dotenv[key] })

	if v := lookup(EnvConfig); v != "" {
		cfg.ConfigFile = v
	}
	if err := applyFile(&cfg, cfg.ConfigFile); err != nil {
		return cfg, err
	}

	applyEnv(&cfg, os.Getenv)
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	var fc fileConfig
	if err := d.Decode(&fc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if fc.Database != "" {
		cfg.DBPath = fc.Database
	}
	if fc.LogUseCases != nil {
		cfg.LogUseCases = *fc.LogUseCases
	}
	if fc.Chart.Width >= minChartWidth {
		cfg.ChartWidth = fc.Chart.Width
	}
	if fc.Chart.Height >= minChartHeight {
		cfg.ChartHeight = fc.Chart.Height
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := getenv(EnvLogUseCases); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := getenv(EnvChartWidth); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= minChartWidth {
			cfg.ChartWidth = n
		}
	}
	if v := getenv(EnvChartHeight); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= minChartHeight {
			cfg.ChartHeight = n
		}
	}
}
