package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMongo    = "mongo"
)

type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	ServerPort string `envconfig:"SERVER_PORT" default:"3500"`
	GinMode    string `envconfig:"GIN_MODE" default:"debug"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	// StoreDriver selects the record store backend: postgres, mysql or mongo
	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"technotes"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:"technotes"`
	DBName      string `envconfig:"DB_NAME" default:"technotes"`
	MongoURI    string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB     string `envconfig:"MONGO_DB" default:"technotes"`

	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	SessionSecret string `envconfig:"SESSION_SECRET" default:"default-secret-key-change-me"`
	AuthRequired  bool   `envconfig:"AUTH_REQUIRED" default:"false"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// MessagesLang picks the response message catalog (fr or en)
	MessagesLang string `envconfig:"MESSAGES_LANG" default:"fr"`
	// StrictStatus answers not-found with 404 and referential conflicts with 409
	// instead of the historical 400.
	StrictStatus bool `envconfig:"STRICT_STATUS" default:"false"`
	BcryptCost   int  `envconfig:"BCRYPT_COST" default:"10"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: could not load %s: %v", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	cfg.StoreDriver = strings.ToLower(cfg.StoreDriver)
	switch cfg.StoreDriver {
	case DriverPostgres, DriverMySQL, DriverMongo:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	return &cfg, nil
}

// AllowedOrigins splits CORSAllowedOrigins on commas.
func (c *Config) AllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
