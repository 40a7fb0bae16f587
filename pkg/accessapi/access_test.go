package accessapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessdomain/fwengine/pkg/accessapi"
	"github.com/accessdomain/fwengine/pkg/endpointdomain"
	"github.com/accessdomain/fwengine/pkg/modelmanager"
	"github.com/accessdomain/fwengine/pkg/modelmanager/memory"
)

func drain(t *testing.T, ch <-chan accessapi.Result) ([]endpointdomain.Domain, error) {
	t.Helper()
	var domains []endpointdomain.Domain
	for r := range ch {
		if r.Err != nil {
			return domains, r.Err
		}
		domains = append(domains, r.Domain)
	}
	return domains, nil
}

func TestAccessByAddressIngress(t *testing.T) {
	mgr := memory.NewManager(map[string]memory.RuleSet{
		"tenant-a": {
			Ingress: []endpointdomain.Rule{
				{Network: "10.0.0.0/8", Protocol: "TCP", PortSpecs: []string{"443"}},
				{Network: "10.0.0.0/8", Protocol: "ICMP"},
			},
		},
	})
	runner := accessapi.NewRunner(mgr)

	domains, err := drain(t, runner.AccessByAddressIngress(context.Background(), "tenant-a", "10.1.2.3"))
	require.NoError(t, err)
	require.Len(t, domains, 2)
	assert.NotNil(t, domains[0].PortRange)
	assert.Nil(t, domains[1].PortRange)
}

func TestAccessByAddressEgressDropsPortlessRules(t *testing.T) {
	mgr := memory.NewManager(map[string]memory.RuleSet{
		"tenant-a": {
			Egress: []endpointdomain.Rule{
				{Network: "10.0.0.0/8", Protocol: "ICMP"},
				{Network: "10.0.0.0/8", Protocol: "TCP", PortSpecs: []string{"80", "443"}},
			},
		},
	})
	runner := accessapi.NewRunner(mgr)

	domains, err := drain(t, runner.AccessByAddressEgress(context.Background(), "tenant-a", "10.1.2.3"))
	require.NoError(t, err)
	require.Len(t, domains, 2, "the ICMP rule with no port specs must emit nothing on egress")
}

func TestAccessByAddressUnknownHandle(t *testing.T) {
	mgr := memory.NewManager(nil)
	runner := accessapi.NewRunner(mgr)

	_, err := drain(t, runner.AccessByAddressIngress(context.Background(), "missing", "10.1.2.3"))
	require.Error(t, err)
	var notFound *modelmanager.ModelNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAccessByAddressCancellation(t *testing.T) {
	mgr := memory.NewManager(map[string]memory.RuleSet{
		"tenant-a": {
			Ingress: []endpointdomain.Rule{
				{Network: "10.0.0.0/8", Protocol: "TCP", PortSpecs: []string{"1-65535"}},
			},
		},
	})
	runner := accessapi.NewRunner(mgr)

	ctx, cancel := context.WithCancel(context.Background())
	ch := runner.AccessByAddressIngress(ctx, "tenant-a", "10.1.2.3")
	cancel()

	select {
	case _, ok := <-ch:
		_ = ok
	case <-time.After(time.Second):
		t.Fatal("stream did not terminate promptly after cancellation")
	}
}
