package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"ordertracker/internal/adapters/out/postgres"
	"ordertracker/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

const (
	defaultHTTPPort               = "8080"
	defaultKafkaOrderChangedTopic = "orders.status.changed"
	defaultShutdownTimeout        = 10 * time.Second
)

type Config struct {
	HTTPPort               string
	StorageDriver          string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	StaticDir              string
	LogLevel               slog.Level
	ShutdownTimeout        time.Duration
}

// LoadConfig reads the configuration from the environment. Values from
// envFile, when it exists, fill in variables that are not already set.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	return ConfigFromLookup(os.LookupEnv)
}

// ConfigFromLookup builds a Config from any variable source and validates it.
func ConfigFromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	config := Config{
		HTTPPort:               get("HTTP_PORT", defaultHTTPPort),
		StorageDriver:          strings.ToLower(get("STORAGE_DRIVER", StorageMemory)),
		DBHost:                 get("DB_HOST", ""),
		DBPort:                 get("DB_PORT", "5432"),
		DBUser:                 get("DB_USER", ""),
		DBPassword:             get("DB_PASSWORD", ""),
		DBName:                 get("DB_NAME", ""),
		DBSslMode:              get("DB_SSLMODE", "disable"),
		KafkaHost:              get("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: get("KAFKA_ORDER_CHANGED_TOPIC", defaultKafkaOrderChangedTopic),
		StaticDir:              get("STATIC_DIR", ""),
		ShutdownTimeout:        defaultShutdownTimeout,
	}

	var parseErrs []error
	if err := config.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}
	if raw := get("SHUTDOWN_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("SHUTDOWN_TIMEOUT", err))
		} else {
			config.ShutdownTimeout = timeout
		}
	}

	if err := errors.Join(append(parseErrs, config.Validate())...); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the settings that must be consistent before startup.
func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"SHUTDOWN_TIMEOUT", fmt.Errorf("%s is not positive", c.ShutdownTimeout),
		))
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		for _, setting := range []struct{ name, value string }{
			{"DB_HOST", c.DBHost},
			{"DB_USER", c.DBUser},
			{"DB_NAME", c.DBName},
		} {
			if setting.value == "" {
				problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
					setting.name, errors.New("required by the postgres storage driver"),
				))
			}
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"STORAGE_DRIVER", fmt.Errorf("%q is not one of %s, %s", c.StorageDriver, StorageMemory, StoragePostgres),
		))
	}

	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		problems = append(problems, errs.NewValueIsRequiredError("KAFKA_ORDER_CHANGED_TOPIC"))
	}

	return errors.Join(problems...)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c Config) connectionSettings() postgres.ConnectionSettings {
	return postgres.ConnectionSettings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}
