package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMinio    = "minio"
)

type Config struct {
	Port            int           `envconfig:"PORT" default:"5091"`
	Env             string        `envconfig:"APP_ENV" default:"development"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	Timezone        string        `envconfig:"APP_TIMEZONE" default:"Europe/Podgorica"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:"static"`
	AdminRateLimit  int           `envconfig:"ADMIN_RATE_LIMIT" default:"30"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"file"`
	DataFile    string `envconfig:"DATA_FILE" default:"data.json"`

	Postgres
	Redis
	Minio
}

type Postgres struct {
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
}

type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Key      string `envconfig:"REDIS_KEY" default:"office-hours:overrides"`
}

type Minio struct {
	Endpoint  string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKey string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey string `envconfig:"MINIO_SECRET_KEY"`
	Bucket    string `envconfig:"MINIO_BUCKET" default:"office-hours"`
	Object    string `envconfig:"MINIO_OBJECT" default:"data.json"`
	UseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func (c *Config) validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case StoreFile, StoreRedis, StoreMinio:
	case StorePostgres:
		if strings.TrimSpace(c.Postgres.DatabaseURL) == "" {
			return &configError{message: "missing required environment variable: DATABASE_URL"}
		}
	default:
		return &configError{message: "unknown STORE_DRIVER: " + c.StoreDriver}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return &configError{message: fmt.Sprintf("invalid PORT: %d", c.Port)}
	}
	if c.AdminRateLimit <= 0 {
		return &configError{message: fmt.Sprintf("invalid ADMIN_RATE_LIMIT: %d", c.AdminRateLimit)}
	}
	return nil
}

type configError struct {
	message string
}

func (e *configError) Error() string {
	return e.message
}

var _ error = (*configError)(nil)
