package endpointdomain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessdomain/fwengine/pkg/endpointdomain"
)

func TestDomainJSONRoundTrip(t *testing.T) {
	domains, err := endpointdomain.Produce(endpointdomain.Ingress, endpointdomain.Rule{
		Network: "10.0.0.0/8", Protocol: "TCP", PortSpecs: []string{"443"},
	})
	require.NoError(t, err)
	require.Len(t, domains, 1)

	b, err := json.Marshal(domains[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"range":"10.0.0.0/8"`)
	assert.Contains(t, string(b), `"protocols":["TCP"]`)

	var decoded endpointdomain.Domain
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, domains[0].CIDR, decoded.CIDR)
	assert.True(t, domains[0].IPRange.Equal(decoded.IPRange))
	assert.True(t, domains[0].PortRange.Equal(decoded.PortRange))
	assert.Equal(t, domains[0].Protocols, decoded.Protocols)
}

func TestDomainJSONOmitsPortRangeWhenNil(t *testing.T) {
	domains, err := endpointdomain.Produce(endpointdomain.Ingress, endpointdomain.Rule{
		Network: "10.0.0.0/8", Protocol: "ICMP",
	})
	require.NoError(t, err)
	require.Len(t, domains, 1)

	b, err := json.Marshal(domains[0])
	require.NoError(t, err)
	assert.NotContains(t, string(b), "port_range")
}
