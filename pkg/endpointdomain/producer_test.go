package endpointdomain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessdomain/fwengine/pkg/endpointdomain"
)

func TestIngressWithoutPortSpecsEmitsProtocolOnlyDomain(t *testing.T) {
	rule := endpointdomain.Rule{Network: "10.0.0.0/8", Protocol: "ICMP"}
	domains, err := endpointdomain.Produce(endpointdomain.Ingress, rule)
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Nil(t, domains[0].PortRange)
	assert.Equal(t, []string{"ICMP"}, domains[0].Protocols)
}

func TestEgressWithoutPortSpecsEmitsNothing(t *testing.T) {
	rule := endpointdomain.Rule{Network: "10.0.0.0/8", Protocol: "ICMP"}
	domains, err := endpointdomain.Produce(endpointdomain.Egress, rule)
	require.NoError(t, err)
	assert.Empty(t, domains, "egress without port specs is an intentional asymmetry, not an oversight")
}

func TestIngressWithPortSpecsEmitsOnePerSpec(t *testing.T) {
	rule := endpointdomain.Rule{
		Network:   "10.0.0.0/8",
		Protocol:  "TCP",
		PortSpecs: []string{"80", "443", "8000-8080"},
	}
	domains, err := endpointdomain.Produce(endpointdomain.Ingress, rule)
	require.NoError(t, err)
	require.Len(t, domains, 3)
	for _, d := range domains {
		require.NotNil(t, d.PortRange)
	}
}

func TestEgressWithPortSpecsEmitsOnePerSpec(t *testing.T) {
	rule := endpointdomain.Rule{
		Network:   "10.0.0.0/8",
		Protocol:  "TCP",
		PortSpecs: []string{"80", "443"},
	}
	domains, err := endpointdomain.Produce(endpointdomain.Egress, rule)
	require.NoError(t, err)
	require.Len(t, domains, 2)
}

func TestProducePropagatesParseErrors(t *testing.T) {
	rule := endpointdomain.Rule{Network: "not-a-cidr", Protocol: "TCP"}
	_, err := endpointdomain.Produce(endpointdomain.Ingress, rule)
	require.Error(t, err)
}
