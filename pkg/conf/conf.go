// Package conf provides shared configuration handling utilities for all
// binaries in the firewall access-domain engine.
package conf

import (
	"github.com/els0r/telemetry/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// ConfigFile is the flag/config key for the path to a config file
	ConfigFile = "config"

	loggingKey = "logging"

	LogDestination = loggingKey + ".destination"
	LogEncoding    = loggingKey + ".encoding"
	LogLevel       = loggingKey + ".level"

	modelManagerKey = "model_manager"

	// ModelManagerTarget is the address/target the configured Model
	// Manager adapter should dial (interpretation is adapter-specific).
	ModelManagerTarget = modelManagerKey + ".target"

	accessKey = "access"

	// AccessRateLimitPerSec caps the rate of access lookups the HTTP
	// API will serve per second, per process. 0 disables the limit.
	AccessRateLimitPerSec = accessKey + ".rate_limit_per_sec"
	// AccessRateLimitBurst caps the burst size for AccessRateLimitPerSec.
	AccessRateLimitBurst = accessKey + ".rate_limit_burst"
)

// Global defaults for command line parameters / arguments
const (
	DefaultLogEncoding = "logfmt"
	DefaultLogLevel    = "info"

	DefaultAccessRateLimitPerSec = 50
	DefaultAccessRateLimitBurst  = 20
)

// RegisterFlags registers all command line flags for the configuration
func RegisterFlags(cmd *cobra.Command) error {
	pflags := cmd.PersistentFlags()

	pflags.StringP(ConfigFile, "c", "", "path to configuration file")

	tracing.RegisterFlags(pflags)

	pflags.String(LogLevel, DefaultLogLevel, "log level for logger")
	pflags.String(LogEncoding, DefaultLogEncoding, "message encoding format for logger")
	pflags.String(LogDestination, "", "logging destination file path (empty for stdout)")

	pflags.String(ModelManagerTarget, "", "target the Model Manager adapter connects to")

	pflags.Int(AccessRateLimitPerSec, DefaultAccessRateLimitPerSec, "maximum access lookups served per second (0 disables the limit)")
	pflags.Int(AccessRateLimitBurst, DefaultAccessRateLimitBurst, "maximum burst size for the access rate limit")

	return viper.BindPFlags(pflags)
}
