package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	LocationSourcePush      = "push"
	LocationSourceSimulated = "simulated"

	StationStoreMemory   = "memory"
	StationStorePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Location  LocationConfig
	Viewport  ViewportConfig
	Stations  StationsConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"zapgo"`
	Password        string        `envconfig:"DB_PASSWORD" default:""`
	Name            string        `envconfig:"DB_NAME" default:"zapgo"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"30s"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"120"`
}

type LocationConfig struct {
	Source            string        `envconfig:"LOCATION_SOURCE" default:"push"`
	PermissionGranted bool          `envconfig:"LOCATION_PERMISSION_GRANTED" default:"true"`
	SimulatedInterval time.Duration `envconfig:"LOCATION_SIMULATED_INTERVAL" default:"2s"`
	SimulatedBatch    int           `envconfig:"LOCATION_SIMULATED_BATCH" default:"1"`
}

type ViewportConfig struct {
	DefaultLatitude  float64       `envconfig:"VIEWPORT_DEFAULT_LAT" default:"41.0082"`
	DefaultLongitude float64       `envconfig:"VIEWPORT_DEFAULT_LNG" default:"28.9784"`
	SpanLatitude     float64       `envconfig:"VIEWPORT_SPAN_LAT" default:"0.1"`
	SpanLongitude    float64       `envconfig:"VIEWPORT_SPAN_LNG" default:"0.1"`
	OverrideTTL      time.Duration `envconfig:"VIEWPORT_OVERRIDE_TTL" default:"0s"`
}

type StationsConfig struct {
	Store string `envconfig:"STATION_STORE" default:"memory"`
}

// Load reads the configuration from the environment. Values from a .env file
// in the working directory are used when the variable is not already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Location.Source {
	case LocationSourcePush, LocationSourceSimulated:
	default:
		return fmt.Errorf("unsupported LOCATION_SOURCE %q", c.Location.Source)
	}

	switch c.Stations.Store {
	case StationStoreMemory, StationStorePostgres:
	default:
		return fmt.Errorf("unsupported STATION_STORE %q", c.Stations.Store)
	}

	return nil
}
