package config

import (
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string `koanf:"postgres.address"`
	PostgresPort     string `koanf:"postgres.port"`
	PostgresDB       string `koanf:"postgres.db"`
	PostgresUsername string `koanf:"postgres.username"`
	PostgresPassword string `koanf:"postgres.password"`

	ServerPort      string `koanf:"server.port"`
	OperatorWorkers int    `koanf:"operator.workers"`
	Currency        string `koanf:"ledger.currency"`
	MigrateOnStart  bool   `koanf:"migrate.onstart"`
}

// envKeys maps the supported environment variables to config keys.
var envKeys = map[string]string{
	"POSTGRES_ADDRESS":  "postgres.address",
	"POSTGRES_PORT":     "postgres.port",
	"POSTGRES_DB":       "postgres.db",
	"POSTGRES_USERNAME": "postgres.username",
	"POSTGRES_PASSWORD": "postgres.password",
	"SERVER_PORT":       "server.port",
	"OPERATOR_WORKERS":  "operator.workers",
	"LEDGER_CURRENCY":   "ledger.currency",
	"MIGRATE_ON_START":  "migrate.onstart",
}

func defaults() map[string]interface{} {
	// In all cases the default behavior should be for the docker compose setup
	return map[string]interface{}{
		"postgres.address":  "localhost",
		"postgres.port":     "5433",
		"postgres.db":       "postgres",
		"postgres.username": "postgres",
		"postgres.password": "testpassword",
		"server.port":       "9446",
		"operator.workers":  4,
		"ledger.currency":   "£",
		"migrate.onstart":   false,
	}
}

// ProcessEnvironmentVariables loads defaults, then the YAML file named by
// CONFIG_FILE if set, then the environment.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	err := k.Load(env.Provider("", ".", func(name string) string {
		key, ok := envKeys[name]
		if !ok || strings.TrimSpace(os.Getenv(name)) == "" {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{FlatPaths: true}); err != nil {
		return nil, err
	}

	if cfg.OperatorWorkers < 1 {
		cfg.OperatorWorkers = 1
	}

	return &cfg, nil
}

// PostgresURL is the lib/pq connection string for the configured database.
// Credentials are escaped, so they may contain URL delimiters.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresAddress, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
