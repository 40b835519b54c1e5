package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Constants
const (
	DefaultDataDir     = "json"
	DefaultPort        = 8080
	Version            = "0.1.10"
	DatasetPermissions = 0644

	// Query parameter bounds
	MinYear = 2000
	MaxYear = 3000

	// Error messages
	ErrInternalServer = "Internal server error"

	// Response texts (wire format, do not reword)
	CoverageOK           = "ok"
	CoverageNotAvailable = "data not available"
	MsgInvalidDate       = "invalid date"
	MsgYearNotAvailable  = "requested year not available"
	MsgMonthDataMissing  = "Holiday data not available for the year"
	MsgNoHolidaysInMonth = "No holidays found for this month"
	MsgYearDataMissing   = "Data not available for this year."
)

// Config holds the server configuration, optionally loaded from a YAML file
type Config struct {
	Listen  string `yaml:"listen"`
	DataDir string `yaml:"data_dir"`
}

// DefaultConfig returns the built-in configuration defaults
func DefaultConfig() Config {
	return Config{
		Listen:  fmt.Sprintf(":%d", DefaultPort),
		DataDir: DefaultDataDir,
	}
}

// LoadConfig reads a YAML config file on top of the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing config file: %v", err)
		}
	}()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Empty fields fall back to defaults
	if cfg.Listen == "" {
		cfg.Listen = fmt.Sprintf(":%d", DefaultPort)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}

	return cfg, nil
}
