package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, secrets, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Dispatch  DispatchConfig
	Mail      MailConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port   string `envconfig:"PORT" default:"8080"`
	Env    string `envconfig:"APP_ENV" default:"development"`
	AppURL string `envconfig:"APP_URL" default:"http://localhost:3000"`
}

func (c ServerConfig) IsProduction() bool {
	return c.Env == EnvProduction
}

type DBConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER"`
	Password   string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone   string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns   int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"egress.db"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type DispatchConfig struct {
	CronSecret       string        `envconfig:"CRON_SECRET"`
	TrustedHeader    string        `envconfig:"DISPATCH_TRUSTED_HEADER" default:"X-Vercel-Cron"`
	TrustedUserAgent string        `envconfig:"DISPATCH_TRUSTED_USER_AGENT" default:"GitHub Actions"`
	Concurrency      int           `envconfig:"DISPATCH_CONCURRENCY" default:"1"`
	TokenTTL         time.Duration `envconfig:"DISPATCH_TOKEN_TTL" default:"15m"`
	NotifyTimeout    time.Duration `envconfig:"DISPATCH_NOTIFY_TIMEOUT" default:"30s"`
}

type MailConfig struct {
	ResendAPIKey string        `envconfig:"RESEND_API_KEY"`
	From         string        `envconfig:"MAIL_FROM" default:"Egress <onboarding@resend.dev>"`
	QueueSize    int           `envconfig:"MAIL_QUEUE_SIZE" default:"256"`
	Workers      int           `envconfig:"MAIL_WORKERS" default:"2"`
	SendTimeout  time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"15s"`
}

type SchedulerConfig struct {
	Enabled bool   `envconfig:"SCHEDULER_ENABLED" default:"false"`
	Spec    string `envconfig:"SCHEDULER_SPEC" default:"*/10 * * * *"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.User == "" || c.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for the %s driver", c.Driver)
		}
		return nil
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s driver", c.Driver)
		}
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.DB.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:   "8889", // Test port
			Env:    EnvDevelopment,
			AppURL: "http://localhost:8889",
		},
		DB: DBConfig{
			Driver:   DriverPostgres,
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Dispatch: DispatchConfig{
			CronSecret:       "test-cron-secret",
			TrustedHeader:    "X-Vercel-Cron",
			TrustedUserAgent: "GitHub Actions",
			Concurrency:      1,
			TokenTTL:         15 * time.Minute,
			NotifyTimeout:    5 * time.Second,
		},
		Mail: MailConfig{
			From:        "Egress <test@example.com>",
			QueueSize:   16,
			Workers:     1,
			SendTimeout: 5 * time.Second,
		},
		Scheduler: SchedulerConfig{
			Enabled: false,
			Spec:    "*/10 * * * *",
		},
	}
}
