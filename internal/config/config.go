package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/experience_booking/internal/platform/database"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type DB struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD"`
	Name            string        `envconfig:"NAME" default:"experience_booking"`
	SSLMode         string        `envconfig:"SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnectRetries  int           `envconfig:"CONNECT_RETRIES" default:"10"`
}

type Redis struct {
	Enabled  bool          `envconfig:"ENABLED" default:"true"`
	Host     string        `envconfig:"HOST" default:"localhost"`
	Port     string        `envconfig:"PORT" default:"6379"`
	Password string        `envconfig:"PASSWORD"`
	DB       int           `envconfig:"DB" default:"0"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"30s"`
}

func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type HTTP struct {
	Addr           string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout    time.Duration `envconfig:"IDLE_TIMEOUT" default:"120s"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

type Config struct {
	StoreDriver     string          `envconfig:"STORE_DRIVER" default:"postgres"`
	AutoMigrate     bool            `envconfig:"AUTO_MIGRATE" default:"true"`
	SeedOnStart     bool            `envconfig:"SEED_ON_START" default:"false"`
	Taxes           decimal.Decimal `envconfig:"TAXES" default:"59"`
	LogLevel        string          `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string          `envconfig:"LOG_FORMAT" default:"console"`
	RabbitURL       string          `envconfig:"RABBIT_URL"`
	BookingExchange string          `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`

	DB    DB    `envconfig:"DB"`
	Redis Redis `envconfig:"REDIS"`
	HTTP  HTTP  `envconfig:"HTTP"`
}

// Load reads the environment, after pulling in a .env file when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("process env: %w", err)
	}

	return c, c.validate()
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverPostgres, StoreDriverMemory, c.StoreDriver)
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}

	if c.Taxes.IsNegative() {
		return fmt.Errorf("TAXES must not be negative")
	}

	return nil
}

// CacheEnabled reports whether the Redis detail cache is used. The memory
// store never uses it.
func (c Config) CacheEnabled() bool {
	return c.Redis.Enabled && c.StoreDriver != StoreDriverMemory
}

func (c Config) Database() database.Config {
	return database.Config{
		Host:            c.DB.Host,
		Port:            c.DB.Port,
		User:            c.DB.User,
		Password:        c.DB.Password,
		DBName:          c.DB.Name,
		SSLMode:         c.DB.SSLMode,
		MaxOpenConns:    c.DB.MaxOpenConns,
		MaxIdleConns:    c.DB.MaxIdleConns,
		ConnMaxLifetime: c.DB.ConnMaxLifetime,
		ConnectRetries:  c.DB.ConnectRetries,
	}
}
