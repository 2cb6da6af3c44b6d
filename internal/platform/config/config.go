package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logger   LoggerConfig   `yaml:"logger"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr"            env:"SERVER_ADDR"            env-default:":8080" validate:"required"`
	ReadTimeout    time.Duration `yaml:"read_timeout"    env:"SERVER_READ_TIMEOUT"    env-default:"5s"    validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout"   env:"SERVER_WRITE_TIMEOUT"   env-default:"10s"   validate:"gt=0"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"    env:"SERVER_IDLE_TIMEOUT"    env-default:"120s"  validate:"gt=0"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" env-default:"5s"    validate:"gt=0"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY" env-default:"false"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"     validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"          validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"      validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:""`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"hotel_booking" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"       validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"25"            validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"25"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"            validate:"gt=0"`
	ConnectRetries  int           `yaml:"connect_retries"   env:"DB_CONNECT_RETRIES"   env-default:"10"            validate:"min=1"`
}

// DSN renders the connection settings as a postgres:// URL with escaped
// credentials.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     "/" + p.Database,
		RawQuery: url.Values{"sslmode": {p.SSLMode}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"REDIS_ENABLED"  env-default:"true"`
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379" validate:"required_if=Enabled true"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"              validate:"min=0"`
	RoomTTL  time.Duration `yaml:"room_ttl" env:"REDIS_ROOM_TTL" env-default:"10m"            validate:"gt=0"`
}

// RabbitMQConfig with an empty URL turns booking event publishing off.
type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"bookings" validate:"required"`
}

// Load reads .env when present, then the YAML file named by CONFIG_PATH if
// set, then the environment, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
