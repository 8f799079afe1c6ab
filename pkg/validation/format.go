// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"slices"

	"github.com/iwvelando/finance-literacy/pkg/constants"
)

// LogLevels are the accepted logging levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// LogFormats are the accepted logging encodings.
var LogFormats = []string{"json", "console"}

// StorageDrivers are the accepted progress store backends.
var StorageDrivers = []string{
	constants.StorageDriverMemory,
	constants.StorageDriverFile,
	constants.StorageDriverSQLite,
	constants.StorageDriverPostgres,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatJSON {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatJSON, format)
	}
	return nil
}

// ValidateLogLevel checks level against LogLevels. An empty level is allowed
// and means the default.
func ValidateLogLevel(level string) error {
	return oneOf("log level", level, LogLevels)
}

// ValidateLogFormat checks format against LogFormats. An empty format is allowed.
func ValidateLogFormat(format string) error {
	return oneOf("log format", format, LogFormats)
}

// ValidateStorageDriver checks driver against StorageDrivers. An empty driver is allowed.
func ValidateStorageDriver(driver string) error {
	return oneOf("storage driver", driver, StorageDrivers)
}

func oneOf(what, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("unsupported %s %q: expected one of %v", what, value, allowed)
}
