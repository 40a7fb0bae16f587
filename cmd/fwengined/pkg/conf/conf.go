// Package conf enumerates the configuration options for the fwengined server
package conf

import (
	"time"

	"github.com/spf13/cobra"

	pkgconf "github.com/accessdomain/fwengine/pkg/conf"
)

// ServiceName is the name of the service as it will show up in telemetry
// such as metrics, logs, and traces.
const ServiceName = "fwengined"

// Definitions for command line parameters / arguments
const (
	serverKey                 = "server"
	ServerAddr                = serverKey + ".addr"
	ServerShutdownGracePeriod = serverKey + ".shutdowngraceperiod"

	openapiKey = "openapi"
	OpenAPI    = openapiKey + ".spec-outfile"
)

// Global defaults for command line parameters / arguments
const (
	DefaultServerAddr                = "localhost:8151"
	DefaultServerShutdownGracePeriod = 30 * time.Second
)

// RegisterFlags registers the shared (logging/tracing/model-manager/rate-limit) flags
func RegisterFlags(cmd *cobra.Command) error {
	return pkgconf.RegisterFlags(cmd)
}
