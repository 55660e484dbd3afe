package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type MongoOptions struct {
	URI             string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database        string        `env:"MONGO_DB_NAME" envDefault:"reservations_db"`
	Collection      string        `env:"MONGO_COLLECTION_NAME" envDefault:"reservations"`
	AuditCollection string        `env:"MONGO_AUDIT_COLLECTION" envDefault:"audit_logs"`
	Username        string        `env:"MONGO_INITDB_ROOT_USERNAME"`
	Password        string        `env:"MONGO_INITDB_ROOT_PASSWORD"`
	ConnectTimeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
}

type DemoAccounts struct {
	EmployeeUser string `env:"DEMO_EMPLOYEE_USER" envDefault:"Admin"`
	EmployeePass string `env:"DEMO_EMPLOYEE_PASS" envDefault:"9800x3d"`
	GuestUser    string `env:"DEMO_GUEST_USER" envDefault:"Customer"`
	GuestPass    string `env:"DEMO_GUEST_PASS" envDefault:"Reservation123!"`
}

type LoginLimit struct {
	RedisURL string        `env:"REDIS_URL"`
	Attempts int           `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
	Window   time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"1m"`
}

type Config struct {
	ServerPort  string        `env:"SERVER_PORT" envDefault:"4000"`
	StoreDriver string        `env:"STORE_DRIVER" envDefault:"mongo"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"dev-secret"`
	JWTExpiry   time.Duration `env:"JWT_EXP" envDefault:"1h"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"json"`

	Mongo      MongoOptions
	Demo       DemoAccounts
	LoginLimit LoginLimit
}

// Load reads .env files when present and then the process environment.
// Variables already set in the environment win over the files.
func Load() (*Config, error) {
	if err := loadEnvFiles(".env", ".env.local"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFiles(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXP must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
