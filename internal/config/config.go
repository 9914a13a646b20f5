package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"     validate:"required"`
	Logger     LoggerConfig     `yaml:"logger"     validate:"required"`
	Gin        GinConfig        `yaml:"gin"        validate:"required"`
	Postgres   PostgresConfig   `yaml:"postgres"   validate:"required"`
	Events     EventsConfig     `yaml:"events"     validate:"required"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Redis      RedisConfig      `yaml:"redis"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"  validate:"required"`
	Payments   PaymentsConfig   `yaml:"payments"   validate:"required"`
	Auth       AuthConfig       `yaml:"auth"       validate:"required"`
	Razorpay   RazorpayConfig   `yaml:"razorpay"`
	Cloudinary CloudinaryConfig `yaml:"cloudinary"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	AMQP       AMQPConfig       `yaml:"amqp"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"ratelimit"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"eventzone"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// EventsConfig selects where the event collection lives. Users, sessions and
// payments stay in Postgres whatever the backend.
type EventsConfig struct {
	Backend  string `yaml:"backend"  env:"EVENTS_BACKEND"  env-default:"postgres" validate:"required,oneof=postgres mongo memory"`
	Timezone string `yaml:"timezone" env:"EVENTS_TIMEZONE" env-default:"UTC"      validate:"required"`
}

// Location resolves the zone the stored date and time strings are written in.
func (e EventsConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", e.Timezone, err)
	}
	return loc, nil
}

type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"             env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"eventzone"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// RedisConfig with an empty Addr keeps the reminder seen-set in process memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

type SchedulerConfig struct {
	ReminderInterval time.Duration `yaml:"reminder_interval" env:"SCHEDULER_REMINDER_INTERVAL" env-default:"10s" validate:"required,gt=0"`
	ReminderWindow   time.Duration `yaml:"reminder_window"   env:"SCHEDULER_REMINDER_WINDOW"   env-default:"60s" validate:"required,gt=0"`
	PaymentInterval  time.Duration `yaml:"payment_interval"  env:"SCHEDULER_PAYMENT_INTERVAL"  env-default:"30s" validate:"required,gt=0"`
	SeenTTL          time.Duration `yaml:"seen_ttl"          env:"SCHEDULER_SEEN_TTL"          env-default:"24h" validate:"required,gt=0"`
}

// Validate rejects a seen TTL that could forget a reminder key while the event
// is still inside the window, which would fire the reminder a second time.
func (s SchedulerConfig) Validate() error {
	if s.SeenTTL <= 2*s.ReminderWindow {
		return fmt.Errorf("scheduler.seen_ttl %s must exceed twice scheduler.reminder_window %s", s.SeenTTL, s.ReminderWindow)
	}
	return nil
}

type PaymentsConfig struct {
	TTL time.Duration `yaml:"ttl" env:"PAYMENTS_TTL" env-default:"30m" validate:"required,gt=0"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required,min=16"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"72h" validate:"required,gt=0"`
}

type RazorpayConfig struct {
	KeyID     string        `yaml:"key_id"     env:"RAZORPAY_KEY_ID"     env-default:""`
	KeySecret string        `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET" env-default:""`
	BaseURL   string        `yaml:"base_url"   env:"RAZORPAY_BASE_URL"   env-default:"https://api.razorpay.com"`
	Currency  string        `yaml:"currency"   env:"RAZORPAY_CURRENCY"   env-default:"INR"`
	Timeout   time.Duration `yaml:"timeout"    env:"RAZORPAY_TIMEOUT"    env-default:"10s"`
}

type CloudinaryConfig struct {
	CloudName    string        `yaml:"cloud_name"    env:"CLOUDINARY_CLOUD_NAME"    env-default:""`
	UploadPreset string        `yaml:"upload_preset" env:"CLOUDINARY_UPLOAD_PRESET" env-default:""`
	BaseURL      string        `yaml:"base_url"      env:"CLOUDINARY_BASE_URL"      env-default:"https://api.cloudinary.com"`
	MaxBytes     int           `yaml:"max_bytes"     env:"CLOUDINARY_MAX_BYTES"     env-default:"5242880"`
	Timeout      time.Duration `yaml:"timeout"       env:"CLOUDINARY_TIMEOUT"       env-default:"30s"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// AMQPConfig with an empty URL disables queue notifications.
type AMQPConfig struct {
	URL   string `yaml:"url"   env:"AMQP_URL"   env-default:""`
	Queue string `yaml:"queue" env:"AMQP_QUEUE" env-default:"eventzone.notifications"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"   env:"RATELIMIT_RPS"   env-default:"1"  validate:"gt=0"`
	Burst int     `yaml:"burst" env:"RATELIMIT_BURST" env-default:"5"  validate:"min=1"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := cfg.Scheduler.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return &cfg
}
