package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handler "github.com/securecheck/securecheck-webserver/internal/delivery/http"
	"github.com/securecheck/securecheck-webserver/internal/logging"
	"github.com/securecheck/securecheck-webserver/internal/s3"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger()
			defer logger.RecoverAndLogPanic()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			dbClient, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := dbClient.Disconnect(); err != nil {
					logger.Error(err.Error())
				}
			}()

			// We are creating one connection to AWS S3 and passing that around to save resources
			var s3Repository *s3.S3Repository
			if a.cfg.ChartSnapshotsEnabled() {
				s3Repository, err = s3.NewS3Session(ctx, s3.SessionOptions{
					Region:    a.cfg.AWSRegion,
					Bucket:    a.cfg.AWSS3ChartBucket,
					AccessKey: a.cfg.AWSAccessKey,
					SecretKey: a.cfg.AWSSecretKey,
					Endpoint:  a.cfg.AWSS3Endpoint,
				})
				if err != nil {
					return err
				}
			} else {
				logger.Info("AWS_S3_CHART_BUCKET not set, chart snapshots are disabled")
			}

			router := handler.NewRouter(handler.RouterConfig{
				AllowedOrigins: a.cfg.CORSAllowedOrigins,
				MaxInflight:    a.cfg.MaxInflight,
				RequestTimeout: a.cfg.RequestTimeout,
			}, dbClient, s3Repository)

			server := &http.Server{
				Addr:              a.cfg.HTTPAddr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Zerolog().Info().
					Str("addr", a.cfg.HTTPAddr).
					Str("driver", a.cfg.DBDriver).
					Str("table", dbClient.Table()).
					Msg("webserver listening")
				serverErr <- server.ListenAndServe()
			}()

			select {
			case err := <-serverErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down webserver")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	a.v.BindPFlag("http_addr", cmd.Flags().Lookup("addr"))
	return cmd
}
