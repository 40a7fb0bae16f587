// Package cmd provides the runnable commands for fwctl
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/els0r/telemetry/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/accessdomain/fwengine/cmd/fwctl/pkg/conf"
	"github.com/accessdomain/fwengine/pkg/api"
	"github.com/accessdomain/fwengine/pkg/version"
)

const defaultCfgFile = "~/.fwctl.yaml"

const defaultRequestTimeout = 5 * time.Second

var cfgFile string

var rootCmd = &cobra.Command{
	Use:               "fwctl",
	Short:             "control CLI for the firewall access-domain engine",
	Long:              "fwctl control CLI for the firewall access-domain engine",
	PersistentPreRunE: verifyArgs,
	RunE:              rootEntrypoint,
	SilenceErrors:     true,
}

// Execute is the main entrypoint and runs the CLI tool
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger, logErr := logging.New(logging.LevelError, logging.EncodingPlain,
			logging.WithOutput(os.Stderr),
		)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to instantiate CLI logger: %v\n", logErr)
			fmt.Fprintf(os.Stderr, "Error running command: %s\n", err)
			os.Exit(1)
		}
		logger.Fatalf("Error running command: %s", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultCfgFile, "config file")

	rootCmd.PersistentFlags().StringP(conf.ServerAddr, "s", "", "server address of the fwengined API")
	rootCmd.PersistentFlags().DurationP(conf.RequestTimeout, "t", defaultRequestTimeout, "request timeout / deadline for the fwengined API")

	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(accessCmd)
}

func initLogger() {
	err := logging.Init(logging.LevelWarn, logging.EncodingLogfmt,
		logging.WithVersion(version.Short()),
		logging.WithOutput(os.Stdout),
		logging.WithErrorOutput(os.Stderr),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set. fwctl doesn't
// need one to run, the functionality exists to set some defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			if cfgFile == defaultCfgFile && errors.Is(err, os.ErrNotExist) {
				return
			}
			fmt.Fprintf(os.Stderr, "failed to read config from file %s: %v\n", viper.GetViper().ConfigFileUsed(), err)
			os.Exit(1)
		}
	}
}

func verifyArgs(cmd *cobra.Command, _ []string) error {
	if cmd.Use == "help" {
		return nil
	}

	serverAddr := viper.GetString(conf.ServerAddr)
	if serverAddr == "" {
		return fmt.Errorf("%s: empty", conf.ServerAddr)
	}

	unixSocketFile := api.ExtractUnixSocket(serverAddr)
	if unixSocketFile != "" {
		return nil
	}

	_, _, err := net.SplitHostPort(serverAddr)
	if err != nil {
		return fmt.Errorf("%s: %w", conf.ServerAddr, err)
	}
	return nil
}

func rootEntrypoint(_ *cobra.Command, _ []string) error {
	return fmt.Errorf("no sub-command provided")
}

type entrypointE func(ctx context.Context, cmd *cobra.Command, args []string) error
type runE func(cmd *cobra.Command, args []string) error

func wrapCancellationContext(f entrypointE) runE {
	return func(cmd *cobra.Command, args []string) error {
		sdCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		defer stop()

		ctx, cancel := context.WithTimeout(sdCtx, viper.GetDuration(conf.RequestTimeout))
		defer cancel()

		return f(ctx, cmd, args)
	}
}
