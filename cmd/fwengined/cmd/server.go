package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/els0r/telemetry/logging"
	"github.com/els0r/telemetry/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/accessdomain/fwengine/cmd/fwengined/pkg/conf"
	"github.com/accessdomain/fwengine/pkg/accessapi"
	"github.com/accessdomain/fwengine/pkg/api/server"
	v1 "github.com/accessdomain/fwengine/pkg/api/v1"
	pkgconf "github.com/accessdomain/fwengine/pkg/conf"
	"github.com/accessdomain/fwengine/pkg/modelmanager/memory"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run fwengined in server mode",
	Long:  "Run fwengined in server mode",
	RunE:  serverEntrypoint,
}

func init() {
	pflags := serverCmd.PersistentFlags()

	pflags.String(conf.ServerAddr, conf.DefaultServerAddr, "address to which the server binds")
	pflags.Duration(conf.ServerShutdownGracePeriod, conf.DefaultServerShutdownGracePeriod, "duration the server will wait during shutdown before forcing shutdown")
	pflags.String(conf.OpenAPI, "", "write OpenAPI 3.0.3 spec to output file and exit")

	_ = viper.BindPFlags(pflags)
}

func serverCommand() (*cobra.Command, error) {
	return serverCmd, nil
}

// newModelManager wires the reference in-memory Model Manager. A
// production deployment swaps this out for a client dialing
// conf.ModelManagerTarget against a real Model Manager satisfying
// pkg/modelmanager.Manager; no such client ships in this repository,
// since the Model Manager is an external collaborator by contract.
func newModelManager() *memory.Manager {
	return memory.NewManager(nil)
}

func serverEntrypoint(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	logger := logging.FromContext(ctx)

	runner := accessapi.NewRunner(newModelManager())

	var rateLimiter *rate.Limiter
	if limit := viper.GetInt(pkgconf.AccessRateLimitPerSec); limit > 0 {
		rateLimiter = rate.NewLimiter(rate.Limit(limit), viper.GetInt(pkgconf.AccessRateLimitBurst))
	}
	v1API := v1.New(runner, v1.WithRateLimiter(rateLimiter))

	openAPIFile := viper.GetString(conf.OpenAPI)

	apiServer := server.NewDefault(conf.ServiceName, viper.GetString(conf.ServerAddr),
		server.WithDebugMode(logging.LevelFromString(viper.GetString(pkgconf.LogLevel)) == logging.LevelDebug),
		server.WithTracing(viper.GetBool(tracing.TracingEnabledArg)),
		server.WithMetrics(true),
	)
	v1API.RegisterHuma(apiServer.API())
	v1API.RegisterRoutes(apiServer.Router())

	if openAPIFile != "" {
		logger.With("path", openAPIFile).Info("writing OpenAPI spec only")
		f, err := os.OpenFile(openAPIFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
		if err != nil {
			return err
		}
		return apiServer.OpenAPI(f)
	}

	shutdownTracing, err := tracing.InitFromFlags(ctx)
	if err != nil {
		logger.With("error", err).Error("failed to set up tracing")
	}

	addr := viper.GetString(conf.ServerAddr)
	logger.With("addr", addr).Info("starting API server")
	go func() {
		err := apiServer.Serve()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()

	stop()
	logger.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), viper.GetDuration(conf.ServerShutdownGracePeriod))
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.With("error", err).Error("forced shut down of API server")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.With("error", err).Error("forced shut down of tracing")
	}

	logger.Info("shut down complete")
	return nil
}
