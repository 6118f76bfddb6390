package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoragePostgres = "postgres"
	StorageDynamoDB = "dynamodb"
)

type Config struct {
	AppEnv        string `envconfig:"APP_ENV"`
	Port          int    `envconfig:"PORT" default:"8080"`
	SentryDSN     string `envconfig:"SENTRY_DSN"`
	AllowOrigins  string `envconfig:"ALLOW_ORIGINS"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"postgres"`

	DB struct {
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
	DynamoDB struct {
		Region           string `envconfig:"DDB_REGION"`
		Endpoint         string `envconfig:"DDB_ENDPOINT"`
		AccessKey        string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey        string `envconfig:"DDB_SECRET_KEY"`
		SessionToken     string `envconfig:"DDB_SESSION_TOKEN"`
		SubmissionsTable string `envconfig:"DDB_SUBMISSIONS_TABLE"`
	}
	Auth struct {
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	switch cfg.StorageDriver {
	case StoragePostgres, StorageDynamoDB:
	default:
		return nil, fmt.Errorf("load config error: unknown storage driver %q", cfg.StorageDriver)
	}

	return cfg, nil
}
