// Package config loads the webserver configuration from a .env file, the
// environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	// DefaultSQLitePath is used when the sqlite driver is selected without a DSN.
	DefaultSQLitePath = "securecheck.db"
)

type Config struct {
	HTTPAddr           string        `mapstructure:"http_addr"`
	DBDriver           string        `mapstructure:"db_driver"`
	DBDSN              string        `mapstructure:"db_dsn"`
	DBHost             string        `mapstructure:"db_host"`
	DBPort             int           `mapstructure:"db_port"`
	DBUser             string        `mapstructure:"db_user"`
	DBPassword         string        `mapstructure:"db_password"`
	DBName             string        `mapstructure:"db_name"`
	TrafficTable       string        `mapstructure:"traffic_table"`
	LogLevel           string        `mapstructure:"log_level"`
	LogPretty          bool          `mapstructure:"log_pretty"`
	MaxInflight        int           `mapstructure:"max_inflight"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	AWSRegion          string        `mapstructure:"aws_region"`
	AWSS3ChartBucket   string        `mapstructure:"aws_s3_chart_bucket"`
	AWSAccessKey       string        `mapstructure:"aws_access_key"`
	AWSSecretKey       string        `mapstructure:"aws_secret_key"`
	AWSS3Endpoint      string        `mapstructure:"aws_s3_endpoint"`
}

// SetDefaults registers every configuration key with its default value. Keys are
// matched against upper-cased environment variables (http_addr -> HTTP_ADDR).
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_driver", DriverMySQL)
	v.SetDefault("db_dsn", "")
	v.SetDefault("db_host", "127.0.0.1")
	v.SetDefault("db_port", 3306)
	v.SetDefault("db_user", "root")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "vehicle")
	v.SetDefault("traffic_table", "traffic_project")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", true)
	v.SetDefault("max_inflight", 1)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("cors_allowed_origins", []string{"*"})
	v.SetDefault("aws_region", "")
	v.SetDefault("aws_s3_chart_bucket", "")
	v.SetDefault("aws_access_key", "")
	v.SetDefault("aws_secret_key", "")
	v.SetDefault("aws_s3_endpoint", "")
}

// Load reads envFile if it exists, then resolves every key from flags bound on v,
// the environment and the defaults, in that order of precedence.
func Load(v *viper.Viper, envFile string) (*Config, error) {
	if envFile != "" {
		// load .env file
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s file: %w", envFile, err)
		}
	}

	SetDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.DBDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.DBDriver, DriverMySQL, DriverSQLite)
	}
	if cfg.MaxInflight < 1 {
		return fmt.Errorf("MAX_INFLIGHT must be at least 1, got %d", cfg.MaxInflight)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	return nil
}

// DSN returns DB_DSN when set, otherwise a DSN built from the DB_* parts.
func (cfg *Config) DSN() string {
	if cfg.DBDSN != "" {
		return cfg.DBDSN
	}
	if cfg.DBDriver == DriverSQLite {
		return DefaultSQLitePath
	}

	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.DBUser
	mysqlCfg.Passwd = cfg.DBPassword
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = net.JoinHostPort(cfg.DBHost, fmt.Sprint(cfg.DBPort))
	mysqlCfg.DBName = cfg.DBName
	return mysqlCfg.FormatDSN()
}

// ChartSnapshotsEnabled reports whether a bucket for chart snapshots is configured.
func (cfg *Config) ChartSnapshotsEnabled() bool {
	return cfg.AWSS3ChartBucket != ""
}
