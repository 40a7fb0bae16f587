// Package endpointdomain converts firewall rule tuples yielded by the
// Model Manager into EndpointDomain records, the unit of output of the
// Access API.
package endpointdomain

import "github.com/accessdomain/fwengine/pkg/rangealgebra"

// Domain describes a reachable (address-range, port-range?, protocols)
// tuple. PortRange is nil when the rule carries no port specification
// (ingress only — see Produce).
type Domain struct {
	// CIDR is the original textual network the domain was parsed
	// from, kept alongside the integer bounds so downstream consumers
	// can choose either representation.
	CIDR string
	// IPRange is the parsed address range for CIDR.
	IPRange *rangealgebra.NumericRange
	// PortRange is the parsed port range for this domain, or nil if
	// the originating rule had no port specs (ingress-only case).
	PortRange *rangealgebra.NumericRange
	// Protocols carries the protocol label(s) this domain admits. The
	// producer always populates this with the single label of the
	// originating rule tuple; it is a slice (rather than a single
	// string) to match the wire record's protocols: list<string>
	// field, which other EndpointDomain sources may populate with
	// more than one label.
	Protocols []string
}
