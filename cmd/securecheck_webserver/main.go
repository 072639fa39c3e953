package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/securecheck/securecheck-webserver/internal/config"
	"github.com/securecheck/securecheck-webserver/internal/database"
	"github.com/securecheck/securecheck-webserver/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const connectTimeout = 10 * time.Second

// app carries the configuration shared by every subcommand.
type app struct {
	v       *viper.Viper
	envFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "securecheck_webserver",
		Short: "SecureCheck police post traffic stop dashboard",
		Long: `securecheck_webserver serves the SecureCheck traffic stop dashboard API and
runs the same lookups and catalog queries from the command line.

Configuration is read from a .env file, the environment (DB_DRIVER, DB_DSN,
DB_HOST, TRAFFIC_TABLE, ...) and the flags below, flags taking precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.InitLogger(logging.Config{
				Level:    cfg.LogLevel,
				Pretty:   cfg.LogPretty,
				Output:   os.Stderr,
				CrashDir: logging.DefaultConfig().CrashDir,
			})
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.String("db-driver", "", "database driver: mysql or sqlite")
	flags.String("db-dsn", "", "database DSN (overrides DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME)")
	flags.String("table", "", "traffic stop table name")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	a.v.BindPFlag("db_driver", flags.Lookup("db-driver"))
	a.v.BindPFlag("db_dsn", flags.Lookup("db-dsn"))
	a.v.BindPFlag("traffic_table", flags.Lookup("table"))
	a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newServeCmd(a),
		newCheckDBCmd(a),
		newCatalogCmd(a),
		newLookupCmd(a),
		newPredictCmd(a),
	)
	return rootCmd
}

// connect opens the configured store. The caller must Disconnect the client.
func (a *app) connect(ctx context.Context) (*database.DatabaseClient, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	dbClient, err := database.NewDatabaseClient(ctx, a.cfg.DBDriver, a.cfg.DSN(), a.cfg.TrafficTable, a.cfg.MaxInflight)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return dbClient, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
