package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"parcelhub/internal/pkg/errs"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort      string
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaHost is a comma-separated broker list. Empty means parcel events are logged
	// instead of published.
	KafkaHost               string
	KafkaParcelChangedTopic string

	OutboxRelaySchedule   string
	OutboxRelayBatchSize  int
	StatsSnapshotSchedule string

	SessionTTL time.Duration
	// AuthUsers is a comma-separated id:email:role:bcryptHash list. Empty means the
	// demo accounts.
	AuthUsers string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv, falling back
// to defaults for unset keys.
func LoadConfig(getenv func(string) string) (Config, error) {
	env := func(key, defaultValue string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return defaultValue
	}

	batchSize, batchErr := strconv.Atoi(env("OUTBOX_RELAY_BATCH_SIZE", "100"))
	if batchErr != nil {
		batchErr = errs.NewValueIsInvalidErrorWithCause("OUTBOX_RELAY_BATCH_SIZE", batchErr)
	}
	sessionTTL, ttlErr := time.ParseDuration(env("SESSION_TTL", "12h"))
	if ttlErr != nil {
		ttlErr = errs.NewValueIsInvalidErrorWithCause("SESSION_TTL", ttlErr)
	}

	config := Config{
		HTTPPort:                env("HTTP_PORT", "8080"),
		StorageDriver:           strings.ToLower(env("STORAGE_DRIVER", StorageMemory)),
		DBHost:                  env("DB_HOST", "localhost"),
		DBPort:                  env("DB_PORT", "5432"),
		DBUser:                  env("DB_USER", "postgres"),
		DBPassword:              env("DB_PASSWORD", ""),
		DBName:                  env("DB_NAME", "parcelhub"),
		DBSslMode:               env("DB_SSLMODE", "disable"),
		KafkaHost:               env("KAFKA_HOST", ""),
		KafkaParcelChangedTopic: env("KAFKA_PARCEL_CHANGED_TOPIC", "parcel.changed"),
		OutboxRelaySchedule:     env("OUTBOX_RELAY_SCHEDULE", "*/5 * * * * *"),
		OutboxRelayBatchSize:    batchSize,
		StatsSnapshotSchedule:   env("STATS_SNAPSHOT_SCHEDULE", "0 * * * * *"),
		SessionTTL:              sessionTTL,
		AuthUsers:               env("AUTH_USERS", ""),
	}

	if err := errors.Join(batchErr, ttlErr, config.validate()); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return config, nil
}

func (c Config) validate() error {
	var problems []error
	if _, err := strconv.ParseUint(c.HTTPPort, 10, 16); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", err))
	}
	if c.StorageDriver != StorageMemory && c.StorageDriver != StoragePostgres {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("STORAGE_DRIVER",
			fmt.Errorf("%q is neither %s nor %s", c.StorageDriver, StorageMemory, StoragePostgres)))
	}
	return errors.Join(problems...)
}

// DSN is the PostgreSQL connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// KafkaBrokers splits KafkaHost into broker addresses.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
