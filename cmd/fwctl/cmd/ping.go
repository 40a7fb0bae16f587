package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/accessdomain/fwengine/cmd/fwctl/pkg/conf"
	"github.com/accessdomain/fwengine/pkg/api/client"
)

var pingCmd = &cobra.Command{
	Use:   "ping [message]",
	Short: "Check connectivity to the fwengined server",
	Args:  cobra.MaximumNArgs(1),
	RunE:  wrapCancellationContext(pingEntrypoint),
}

func pingEntrypoint(ctx context.Context, _ *cobra.Command, args []string) error {
	msg := "pong"
	if len(args) > 0 {
		msg = args[0]
	}

	c := client.NewDefault(viper.GetString(conf.ServerAddr),
		client.WithRequestTimeout(viper.GetDuration(conf.RequestTimeout)),
	)

	echoed, err := c.Ping(ctx, []byte(msg))
	if err != nil {
		return err
	}

	fmt.Println(string(echoed))
	return nil
}
