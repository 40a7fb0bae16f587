// Package cmd provides the runnable commands for fwengined
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/els0r/telemetry/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/accessdomain/fwengine/cmd/fwengined/pkg/conf"
	pkgconf "github.com/accessdomain/fwengine/pkg/conf"
	"github.com/accessdomain/fwengine/pkg/version"
)

const helpBase = "fwengined reasons about network reachability as set operations over IP/port/protocol spaces, exposed over HTTP"

// Execute is the main entrypoint and runs the CLI tool
func Execute() error {
	var rootCmd = &cobra.Command{
		Use:   "fwengined [flags] [server]",
		Short: helpBase,
		Long:  helpBase,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.InitDefaultHelpCmd()
	rootCmd.InitDefaultHelpFlag()

	if err := conf.RegisterFlags(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register flags: %v\n", err)
		os.Exit(1)
	}

	serverCmd, err := serverCommand()
	if err != nil {
		return err
	}
	rootCmd.AddCommand(serverCmd)

	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)

	return rootCmd.Execute()
}

func initLogger() {
	out := os.Stdout
	if dest := viper.GetString(pkgconf.LogDestination); dest != "" {
		f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log destination %s: %v\n", dest, err)
			os.Exit(1)
		}
		out = f
	}
	err := logging.Init(logging.LevelFromString(viper.GetString(pkgconf.LogLevel)), logging.Encoding(viper.GetString(pkgconf.LogEncoding)),
		logging.WithVersion(version.Short()),
		logging.WithOutput(out),
		logging.WithErrorOutput(os.Stderr),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	cfgFile := viper.GetString(pkgconf.ConfigFile)
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to read in config: %v\n", err)
			os.Exit(1)
		}
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "__"))
	viper.AutomaticEnv()
}
