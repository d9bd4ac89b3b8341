package config

import (
	"os"
	"strconv"

	"healthd/sentry"

	flag "github.com/ogier/pflag"
	log "github.com/sirupsen/logrus"
)

const defaultPort = "8081"

type Config struct {
	Web struct {
		Listen string
	}
	Registry Registry
	Sentry   sentry.Config
	LogLevel string
}

func New() *Config {
	return parse(os.Args[1:])
}

// Flag defaults come from the environment, so the binary behaves the same
// whether it is configured with flags or env vars. With nothing set it
// listens on :8081.
func parse(args []string) (config *Config) {
	config = &Config{}
	flags := flag.NewFlagSet("healthd", flag.ExitOnError)

	// Web
	flags.StringVar(&config.Web.Listen, "listen", defaultListen(), "accept connections at this address")

	// Registry
	flags.StringVar(&config.Registry.Location, "registry", env("CONSUL", ""), "Registry location for self registration, empty disables it")
	flags.StringVar(&config.Registry.Token, "registry-token", env("CONSUL_TOKEN", ""), "Registry ACL token")
	flags.StringVar(&config.Registry.Datacenter, "registry-datacenter", env("CONSUL_DATACENTER", ""), "Registry datacenter")

	// Sentry
	flags.StringVar(&config.Sentry.DSN, "sentry-dsn", env("SENTRY_DSN", ""), "Sentry DSN, empty disables alerting")
	flags.StringVar(&config.Sentry.Env, "sentry-env", env("SENTRY_ENV", ""), "environment reported to Sentry")
	flags.StringVar(&config.Sentry.Level, "sentry-level", "error", "minimum log level forwarded to Sentry")

	// General
	flags.StringVar(&config.LogLevel, "log-level", env("LOG_LEVEL", "info"), "log level: panic, fatal, error, warn, info, or debug")

	flags.Parse(args)
	config.setLogLevel()

	return config
}

// defaultListen resolves the PORT env var into a wildcard listen address.
// A value that is not a number falls back to the default port.
func defaultListen() string {
	port := os.Getenv("PORT")
	if port == "" {
		return ":" + defaultPort
	}
	if _, err := strconv.Atoi(port); err != nil {
		log.WithField("port", port).Warn("PORT is not a number, using default")
		return ":" + defaultPort
	}
	return ":" + port
}

func env(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (config *Config) setLogLevel() {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.WithField("level", config.LogLevel).Fatal("bad level")
	}
	log.SetLevel(level)
}
