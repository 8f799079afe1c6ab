// Package constants provides shared constants for the finance-literacy application.
package constants

import "time"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 kopeck)
	CurrencyTolerance = 0.01

	// ToleranceForComparison is the tolerance for projected value comparisons
	ToleranceForComparison = 1.0

	// CurrencySymbol is appended to formatted amounts
	CurrencySymbol = "₽"
)

// Budget advisory thresholds
const (
	// RecommendedSavingsRate is the minimum savings rate (percent) before advising more savings
	RecommendedSavingsRate = 10.0

	// RecommendedSavingsRateUpper is the upper end of the recommended savings range
	RecommendedSavingsRateUpper = 20.0

	// MaxHousingShare is the housing share of income (percent) above which housing is flagged
	MaxHousingShare = 30.0

	// MaxDisplayPercent caps category shares for display purposes only
	MaxDisplayPercent = 100.0
)

// Investment advisory thresholds
const (
	// TargetAnnualReturn is the annual return (percent) below which higher yield is advised
	TargetAnnualReturn = 8.0

	// LongTermYears is the horizon below which a longer term is advised
	LongTermYears = 5

	// ExcellentStrategyYears is the horizon for the excellent strategy flag
	ExcellentStrategyYears = 10

	// MaxBreakdownYears is the number of yearly snapshots shown in a projection
	MaxBreakdownYears = 5
)

// Quiz constants
const (
	// DefaultAdvanceDelay is how long an answered question stays revealed
	DefaultAdvanceDelay = 1500 * time.Millisecond

	// HighTierPercent is the minimum percentage for the high tier
	HighTierPercent = 80.0

	// MediumTierPercent is the minimum percentage for the medium tier
	MediumTierPercent = 60.0

	// DefaultDifficulty is the difficulty selected when none is configured
	DefaultDifficulty = "beginner"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Storage constants
const (
	// ProgressKey is the key the progress record is stored under
	ProgressKey = "financeProgress"

	// BudgetKey is the key the last planned budget is stored under
	BudgetKey = "financeBudget"

	// StorageDriverMemory keeps progress for the lifetime of the process
	StorageDriverMemory = "memory"

	// StorageDriverFile keeps progress in a JSON file
	StorageDriverFile = "file"

	// StorageDriverSQLite keeps progress in a SQLite database
	StorageDriverSQLite = "sqlite"

	// StorageDriverPostgres keeps progress in a PostgreSQL database
	StorageDriverPostgres = "postgres"

	// DefaultStorageDriver is used when no driver is configured
	DefaultStorageDriver = StorageDriverFile

	// DefaultFileStoragePath is used by the file store when no path is configured
	DefaultFileStoragePath = "finance-progress.json"

	// DefaultSQLiteStoragePath is used by the sqlite store when no path is configured
	DefaultSQLiteStoragePath = "finance-progress.db"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variable overrides
	EnvPrefix = "FINLIT"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeout bounds graceful shutdown of the HTTP server
	DefaultShutdownTimeout = 5 * time.Second
)
