package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, admin secret, etc.), security settings
// - default: Values common across all environments (retention policy, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Admin     AdminConfig
	Storage   StorageConfig
	CORS      CORSConfig
	Log       LogConfig
	Mail      MailConfig
	Retention RetentionConfig
	Stats     StatsConfig
}

type ServerConfig struct {
	Port      string `envconfig:"PORT" default:"3000"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./web"`
}

type AdminConfig struct {
	Secret string `envconfig:"ADMIN_SECRET" required:"true"`
}

type StorageConfig struct {
	DataDir string `envconfig:"DATA_DIR" default:"./data"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Admin-Secret"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type MailConfig struct {
	Host     string `envconfig:"EMAIL_HOST" default:""`
	Port     string `envconfig:"EMAIL_PORT" default:"587"`
	User     string `envconfig:"EMAIL_USER" default:"no-reply@maxbarber.com"`
	Password string `envconfig:"EMAIL_PASS" default:""`
	From     string `envconfig:"EMAIL_FROM" default:"Max Barber <no-reply@maxbarber.com>"`
}

// Enabled reports whether a real SMTP transport is configured; without a host
// the mailer degrades to log-only delivery.
func (c MailConfig) Enabled() bool {
	return c.Host != ""
}

func (c MailConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Retention and stats windows are deliberate policy knobs, not tuning values.
type RetentionConfig struct {
	MaxAge       time.Duration `envconfig:"RETENTION_MAX_AGE" default:"24h"`
	Interval     time.Duration `envconfig:"RETENTION_INTERVAL" default:"1h"`
	StartupDelay time.Duration `envconfig:"RETENTION_STARTUP_DELAY" default:"5s"`
}

type StatsConfig struct {
	DaysBack  int `envconfig:"STATS_DAYS_BACK" default:"3"`
	DaysAhead int `envconfig:"STATS_DAYS_AHEAD" default:"7"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Admin: AdminConfig{
			Secret: "test-secret",
		},
		Storage: StorageConfig{
			DataDir: "testdata",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Retention: RetentionConfig{
			MaxAge:       24 * time.Hour,
			Interval:     time.Hour,
			StartupDelay: 5 * time.Second,
		},
		Stats: StatsConfig{
			DaysBack:  3,
			DaysAhead: 7,
		},
	}
}
