package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/finance-literacy/internal/config"
	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/iwvelando/finance-literacy/pkg/quiz"
	"github.com/iwvelando/finance-literacy/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Config holds the transport settings of the API server and the overrides
// applied to the workspace it serves. Empty workspace fields keep the value
// from the application configuration.
type Config struct {
	Address     string `yaml:"address"`
	MaxBodySize string `yaml:"maxBodySize"`

	Logging config.LoggingConfig `yaml:"logging"`
	Storage config.StorageConfig `yaml:"storage"`
	Quiz    config.QuizConfig    `yaml:"quiz"`

	bodySizeBytes int64
}

// DefaultConfig returns the settings used when no server config file exists.
func DefaultConfig() *Config {
	return &Config{
		Address:       constants.DefaultServerAddress,
		MaxBodySize:   strconv.FormatInt(constants.DefaultMaxBodySizeBytes, 10),
		bodySizeBytes: constants.DefaultMaxBodySizeBytes,
	}
}

// LoadConfig reads the server config from YAML. A missing file or an empty
// path yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if cfg.Address == "" {
		cfg.Address = constants.DefaultServerAddress
	}
	if err := cfg.OverrideBodySize(cfg.MaxBodySize); err != nil {
		return nil, err
	}
	if err := cfg.validateWorkspace(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BodySizeBytes returns the request body limit in bytes.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySizeBytes
}

// OverrideBodySize sets the request body limit from a size such as "64KB".
// An empty size restores the default.
func (c *Config) OverrideBodySize(size string) error {
	n, err := ParseSize(size)
	if err != nil {
		return fmt.Errorf("invalid maxBodySize: %w", err)
	}
	if n <= 0 {
		n = constants.DefaultMaxBodySizeBytes
	}
	c.bodySizeBytes = n
	c.MaxBodySize = strconv.FormatInt(n, 10)
	return nil
}

func (c *Config) validateWorkspace() error {
	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		return err
	}
	if err := validation.ValidateStorageDriver(c.Storage.Driver); err != nil {
		return err
	}
	if c.Storage.Driver == constants.StorageDriverPostgres && c.Storage.DSN == "" {
		return fmt.Errorf("storage driver %s requires storage.dsn", c.Storage.Driver)
	}
	if c.Quiz.AdvanceDelay < 0 {
		return fmt.Errorf("quiz.advanceDelay must not be negative, got %s", c.Quiz.AdvanceDelay)
	}
	if c.Quiz.Difficulty != "" {
		if _, err := quiz.ParseDifficulty(c.Quiz.Difficulty); err != nil {
			return err
		}
	}
	return nil
}

// Workspace returns base with the server's logging, storage and quiz
// overrides applied.
func (c *Config) Workspace(base config.Configuration) config.Configuration {
	ws := base

	overlay(&ws.Logging.Level, c.Logging.Level)
	overlay(&ws.Logging.Format, c.Logging.Format)
	overlay(&ws.Logging.OutputFile, c.Logging.OutputFile)

	// A different driver does not inherit the base path or dsn
	if c.Storage.Driver != "" && c.Storage.Driver != base.Storage.Driver {
		ws.Storage = config.StorageConfig{Driver: c.Storage.Driver}
	}
	overlay(&ws.Storage.Path, c.Storage.Path)
	overlay(&ws.Storage.DSN, c.Storage.DSN)

	if c.Quiz.AdvanceDelay > 0 {
		ws.Quiz.AdvanceDelay = c.Quiz.AdvanceDelay
	}
	overlay(&ws.Quiz.Difficulty, c.Quiz.Difficulty)
	return ws
}

func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
}

// ParseSize converts a size such as "512", "64K" or "10MB" into bytes. Units
// are binary and case-insensitive. An empty size is the default body limit.
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	digits := strings.TrimRightFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	multiplier, ok := sizeUnits[strings.TrimSpace(s[len(digits):])]
	if digits == "" || !ok {
		return 0, fmt.Errorf("invalid size %q: expected a number with an optional B, K, M or G unit", value)
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", value, err)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size %q overflows", value)
	}
	return n * multiplier, nil
}
