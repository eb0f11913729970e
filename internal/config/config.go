package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the signup-recovery service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Identity IdentityConfig `yaml:"identity"`
	Mail     MailConfig     `yaml:"mail"`
	Campaign CampaignConfig `yaml:"campaign"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, with container detection.
func (c ServerConfig) GetHost() string {
	// In a container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	URL          string `yaml:"url"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// RedisConfig holds the Redis connection used for send-path locking.
// Redis is optional: with no address configured the service falls back
// to Postgres advisory locks.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// IdentityConfig holds the privileged identity-store API settings.
// The service key authorizes both token verification and email lookup;
// it never reaches logs or responses.
type IdentityConfig struct {
	BaseURL        string `yaml:"base_url"`
	ServiceKey     string `yaml:"service_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration.
func (c IdentityConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MailConfig holds transactional mail provider configuration.
type MailConfig struct {
	Provider  string       `yaml:"provider"` // "resend" (default) or "ses"
	FromName  string       `yaml:"from_name"`
	FromEmail string       `yaml:"from_email"`
	ReplyTo   string       `yaml:"reply_to"`
	Resend    ResendConfig `yaml:"resend"`
	SES       SESConfig    `yaml:"ses"`
}

// ResendConfig holds Resend API configuration.
type ResendConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration.
func (c ResendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SESConfig holds AWS SES API configuration for the fallback sender.
type SESConfig struct {
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// CampaignConfig holds the recovery campaign timing knobs.
type CampaignConfig struct {
	WindowDays         int `yaml:"window_days"`          // trailing eligibility window
	GraceMinutes       int `yaml:"grace_minutes"`        // signups-in-progress exclusion
	SendDelayMillis    int `yaml:"send_delay_millis"`    // inter-send pause in bulk loop
	ResetCooldownHours int `yaml:"reset_cooldown_hours"` // minimum age of a sent-flag before reset
	HistoryLimit       int `yaml:"history_limit"`        // rows returned by get_sent_history
}

// Window returns the trailing eligibility window as a duration.
func (c CampaignConfig) Window() time.Duration {
	return time.Duration(c.WindowDays) * 24 * time.Hour
}

// Grace returns the signup grace period as a duration.
func (c CampaignConfig) Grace() time.Duration {
	return time.Duration(c.GraceMinutes) * time.Minute
}

// SendDelay returns the inter-send pause as a duration.
func (c CampaignConfig) SendDelay() time.Duration {
	return time.Duration(c.SendDelayMillis) * time.Millisecond
}

// ResetCooldown returns the reset cool-down as a duration.
func (c CampaignConfig) ResetCooldown() time.Duration {
	return time.Duration(c.ResetCooldownHours) * time.Hour
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level     string `yaml:"level"`
	RedactPII *bool  `yaml:"redact_pii"`
}

// Load reads and parses the configuration file. A missing file is not an
// error: deployments configure the service entirely via environment.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Identity.TimeoutSeconds == 0 {
		cfg.Identity.TimeoutSeconds = 10
	}
	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = "resend"
	}
	if cfg.Mail.FromName == "" {
		cfg.Mail.FromName = "Elec-Mate"
	}
	if cfg.Mail.FromEmail == "" {
		cfg.Mail.FromEmail = "hello@elec-mate.com"
	}
	if cfg.Mail.ReplyTo == "" {
		cfg.Mail.ReplyTo = "support@elec-mate.com"
	}
	if cfg.Mail.Resend.BaseURL == "" {
		cfg.Mail.Resend.BaseURL = "https://api.resend.com"
	}
	if cfg.Mail.Resend.TimeoutSeconds == 0 {
		cfg.Mail.Resend.TimeoutSeconds = 30
	}
	if cfg.Mail.SES.Region == "" {
		cfg.Mail.SES.Region = "eu-west-2"
	}
	if cfg.Campaign.WindowDays == 0 {
		cfg.Campaign.WindowDays = 10
	}
	if cfg.Campaign.GraceMinutes == 0 {
		cfg.Campaign.GraceMinutes = 60
	}
	if cfg.Campaign.SendDelayMillis == 0 {
		// Resend allows 2 requests/second on the standard plan.
		cfg.Campaign.SendDelayMillis = 500
	}
	if cfg.Campaign.ResetCooldownHours == 0 {
		cfg.Campaign.ResetCooldownHours = 24
	}
	if cfg.Campaign.HistoryLimit == 0 {
		cfg.Campaign.HistoryLimit = 100
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It loads a .env file (if present) first, so secrets can live in .env
// locally and in real env vars in production.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("IDENTITY_BASE_URL"); v != "" {
		cfg.Identity.BaseURL = v
	}
	if v := os.Getenv("IDENTITY_SERVICE_KEY"); v != "" {
		cfg.Identity.ServiceKey = v
	}
	if v := os.Getenv("MAIL_PROVIDER"); v != "" {
		cfg.Mail.Provider = v
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		cfg.Mail.Resend.APIKey = v
	}
	if v := os.Getenv("AWS_SES_ACCESS_KEY"); v != "" {
		cfg.Mail.SES.AccessKey = v
	}
	if v := os.Getenv("AWS_SES_SECRET_KEY"); v != "" {
		cfg.Mail.SES.SecretKey = v
	}
	if v := os.Getenv("AWS_SES_REGION"); v != "" {
		cfg.Mail.SES.Region = v
	}
	if v := os.Getenv("MAIL_FROM_EMAIL"); v != "" {
		cfg.Mail.FromEmail = v
	}
	if v := os.Getenv("MAIL_REPLY_TO"); v != "" {
		cfg.Mail.ReplyTo = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SEND_DELAY_MILLIS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Campaign.SendDelayMillis = n
		}
	}

	return cfg, nil
}

// Validate checks that the settings a running server cannot do without are
// present. Called from main, not from Load, so tests can build partial configs.
func (cfg *Config) Validate() error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("database url is required (set DATABASE_URL)")
	}
	if cfg.Identity.BaseURL == "" {
		return fmt.Errorf("identity base url is required (set IDENTITY_BASE_URL)")
	}
	if cfg.Identity.ServiceKey == "" {
		return fmt.Errorf("identity service key is required (set IDENTITY_SERVICE_KEY)")
	}
	switch cfg.Mail.Provider {
	case "resend":
		if cfg.Mail.Resend.APIKey == "" {
			return fmt.Errorf("resend api key is required (set RESEND_API_KEY)")
		}
	case "ses":
		if cfg.Mail.SES.AccessKey == "" || cfg.Mail.SES.SecretKey == "" {
			return fmt.Errorf("ses credentials are required (set AWS_SES_ACCESS_KEY / AWS_SES_SECRET_KEY)")
		}
	default:
		return fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}
	return nil
}
