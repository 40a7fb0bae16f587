package endpointdomain

import "github.com/accessdomain/fwengine/pkg/accessspace"

// Rule is a firewall rule tuple as yielded by the Model Manager's
// DataAccess.GetFirewallRules: a network, a protocol label, and zero
// or more port specs ("P" or "P-Q" strings).
type Rule struct {
	Network   string
	Protocol  string
	PortSpecs []string
}

// Direction selects ingress or egress emission semantics, which differ
// deliberately (see Produce).
type Direction int

const (
	// Ingress matches rules admitting traffic into an address.
	Ingress Direction = iota
	// Egress matches rules admitting traffic out of an address.
	Egress
)

// Produce converts a single rule tuple into its EndpointDomain
// records, parsing the network and any port specs. The ingress/egress
// asymmetry of the reference implementation is preserved exactly:
//
//   - Ingress: a rule with no port specs emits a single domain with
//     the IP range and protocol only (PortRange is nil). A rule with
//     port specs emits one domain per port spec.
//   - Egress: a rule with port specs emits one domain per port spec,
//     exactly as ingress does. A rule with NO port specs emits
//     NOTHING — this is intentional, not a bug to fix; see the design
//     notes on "egress without port specs".
func Produce(dir Direction, rule Rule) ([]Domain, error) {
	ipRange, err := accessspace.ParseIPRange(rule.Network)
	if err != nil {
		return nil, err
	}

	if len(rule.PortSpecs) == 0 {
		if dir == Ingress {
			return []Domain{{
				CIDR:      rule.Network,
				IPRange:   ipRange,
				PortRange: nil,
				Protocols: []string{rule.Protocol},
			}}, nil
		}
		// Egress with no port specs emits nothing.
		return nil, nil
	}

	domains := make([]Domain, 0, len(rule.PortSpecs))
	for _, spec := range rule.PortSpecs {
		portRange, err := accessspace.ParsePortRange(spec)
		if err != nil {
			return nil, err
		}
		domains = append(domains, Domain{
			CIDR:      rule.Network,
			IPRange:   ipRange,
			PortRange: portRange,
			Protocols: []string{rule.Protocol},
		})
	}
	return domains, nil
}
