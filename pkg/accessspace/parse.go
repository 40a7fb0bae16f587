package accessspace

import "github.com/accessdomain/fwengine/pkg/rangealgebra"

// ParseIPRange parses CIDR or bare-address text into an IPRange. See
// rangealgebra.ParseIPRange for the exact parsing rules; this wrapper
// exists so callers building Spaces don't need to import the algebra
// package directly for the common case.
func ParseIPRange(cidr string) (*rangealgebra.NumericRange, error) {
	return rangealgebra.ParseIPRange(cidr)
}

// ParsePortRange parses a port spec ("P" or "P-Q") into a PortRange.
// See rangealgebra.ParsePortRange for the exact parsing rules.
func ParsePortRange(spec string) (*rangealgebra.NumericRange, error) {
	return rangealgebra.ParsePortRange(spec)
}
