package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/accessdomain/fwengine/cmd/fwctl/pkg/conf"
	"github.com/accessdomain/fwengine/pkg/api/client"
	"github.com/accessdomain/fwengine/pkg/endpointdomain"
)

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Query reachable endpoint domains for an address",
}

var (
	accessHandle string
)

func init() {
	accessCmd.PersistentFlags().StringVar(&accessHandle, "handle", "", "Model Manager session handle to query against")
	_ = accessCmd.MarkPersistentFlagRequired("handle")

	ingressCmd := &cobra.Command{
		Use:   "ingress <ip-address>",
		Short: "List endpoint domains allowed to reach the given address as ingress traffic",
		Args:  cobra.ExactArgs(1),
		RunE:  wrapCancellationContext(accessIngressEntrypoint),
	}
	egressCmd := &cobra.Command{
		Use:   "egress <ip-address>",
		Short: "List endpoint domains the given address is allowed to reach as egress traffic",
		Args:  cobra.ExactArgs(1),
		RunE:  wrapCancellationContext(accessEgressEntrypoint),
	}

	accessCmd.AddCommand(ingressCmd, egressCmd)
}

func newAccessClient() *client.DefaultClient {
	return client.NewDefault(viper.GetString(conf.ServerAddr),
		client.WithRequestTimeout(viper.GetDuration(conf.RequestTimeout)),
	)
}

func accessIngressEntrypoint(ctx context.Context, _ *cobra.Command, args []string) error {
	return newAccessClient().AccessByAddressIngress(ctx, accessHandle, args[0], printDomain)
}

func accessEgressEntrypoint(ctx context.Context, _ *cobra.Command, args []string) error {
	return newAccessClient().AccessByAddressEgress(ctx, accessHandle, args[0], printDomain)
}

func printDomain(d endpointdomain.Domain) error {
	ports := "any"
	if d.PortRange != nil {
		ports = d.PortRange.String()
	}
	fmt.Printf("%s\tports=%s\tprotocols=%v\n", d.CIDR, ports, d.Protocols)
	return nil
}
