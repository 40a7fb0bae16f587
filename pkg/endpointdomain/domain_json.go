package endpointdomain

import (
	"encoding/json"
	"fmt"

	"github.com/accessdomain/fwengine/pkg/rangealgebra"
)

type wireIPRange struct {
	Range        string `json:"range"`
	Start        string `json:"start"`
	EndExclusive string `json:"end_exclusive"`
}

type wirePortRange struct {
	Start        uint32 `json:"start"`
	EndExclusive uint32 `json:"end_exclusive"`
}

type wireDomain struct {
	IPRange   wireIPRange    `json:"ip_range"`
	PortRange *wirePortRange `json:"port_range,omitempty"`
	Protocols []string       `json:"protocols"`
}

// MarshalJSON renders Domain in the EndpointDomain wire shape: ip_range
// as {range, start, end_exclusive}, port_range as {start, end_exclusive}
// (omitted when absent), and protocols as a plain string list.
func (d Domain) MarshalJSON() ([]byte, error) {
	w := wireDomain{
		IPRange: wireIPRange{
			Range:        d.CIDR,
			Start:        d.IPRange.Start().String(),
			EndExclusive: d.IPRange.End().String(),
		},
		Protocols: d.Protocols,
	}
	if d.PortRange != nil {
		w.PortRange = &wirePortRange{
			Start:        uint32(d.PortRange.Start().Uint64()),
			EndExclusive: uint32(d.PortRange.End().Uint64()),
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON reconstructs a Domain from its EndpointDomain wire form.
func (d *Domain) UnmarshalJSON(data []byte) error {
	var w wireDomain
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	ipRange, err := rangealgebra.ParseIPRange(w.IPRange.Range)
	if err != nil {
		return fmt.Errorf("decode ip_range: %w", err)
	}

	var portRange *rangealgebra.NumericRange
	if w.PortRange != nil {
		portRange, err = rangealgebra.NewPortRange(int(w.PortRange.Start), int(w.PortRange.EndExclusive))
		if err != nil {
			return fmt.Errorf("decode port_range: %w", err)
		}
	}

	d.CIDR = w.IPRange.Range
	d.IPRange = ipRange
	d.PortRange = portRange
	d.Protocols = w.Protocols
	return nil
}
