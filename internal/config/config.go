// Package config defines the application configuration and loads it from a
// YAML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/finance-literacy/internal/progress"
	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/iwvelando/finance-literacy/pkg/quiz"
	"github.com/iwvelando/finance-literacy/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-literacy.
type Configuration struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output,omitempty"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage,omitempty"`
	Quiz    QuizConfig    `mapstructure:"quiz" yaml:"quiz,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, json
}

// StorageConfig selects where progress is kept.
type StorageConfig struct {
	Driver string `mapstructure:"driver" yaml:"driver,omitempty"` // memory, file, sqlite, postgres
	Path   string `mapstructure:"path" yaml:"path,omitempty"`
	DSN    string `mapstructure:"dsn" yaml:"dsn,omitempty"`
}

// QuizConfig holds quiz behavior options.
type QuizConfig struct {
	AdvanceDelay time.Duration `mapstructure:"advanceDelay" yaml:"advanceDelay,omitempty"`
	Difficulty   string        `mapstructure:"difficulty" yaml:"difficulty,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
		Storage: StorageConfig{Driver: constants.DefaultStorageDriver},
		Quiz: QuizConfig{
			AdvanceDelay: constants.DefaultAdvanceDelay,
			Difficulty:   constants.DefaultDifficulty,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("quiz.advanceDelay", d.Quiz.AdvanceDelay)
	v.SetDefault("quiz.difficulty", d.Quiz.Difficulty)
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults. Environment
// variables prefixed with FINLIT_ override file values, e.g.
// FINLIT_STORAGE_DRIVER=sqlite.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Validate checks every enumerated option.
func (c *Configuration) Validate() error {
	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		return err
	}
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
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

// StoreOptions converts the storage section into progress store options.
func (s StorageConfig) StoreOptions() progress.Options {
	return progress.Options{Driver: s.Driver, Path: s.Path, DSN: s.DSN}
}

// QuizOptions converts the quiz section into engine options.
func (q QuizConfig) QuizOptions() []quiz.Option {
	opts := []quiz.Option{quiz.WithAdvanceDelay(q.AdvanceDelay)}
	if d, err := quiz.ParseDifficulty(q.Difficulty); err == nil {
		opts = append(opts, quiz.WithDifficulty(d))
	}
	return opts
}
