// Package conf enumerates the configuration options for the fwctl CLI
package conf

const (
	serverKey = "server"

	// ServerAddr is the address of the fwengined API to talk to
	ServerAddr = serverKey + ".addr"

	// RequestTimeout is the deadline applied to every API call
	RequestTimeout = "timeout"
)
