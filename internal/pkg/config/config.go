package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port     int
	LogLevel string

	DBDriver    string
	DatabaseURL string

	JWTSecret       string
	RecruiterEmails []string

	CronSecret        string
	ReminderSweepSpec string
	CronRatePerSec    float64
	CronRateBurst     int

	Mail MailConfig

	RedisURL string

	LineChannelSecret string
	LineChannelToken  string
	AlertLineUserID   string

	PolicySeedFile string
}

// MailConfig holds the SMTP transport settings.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// Enabled reports whether an SMTP host is configured.
func (m MailConfig) Enabled() bool { return m.Host != "" }

// Sender is the envelope sender; falls back to a no-reply address.
func (m MailConfig) Sender() string {
	if m.Username != "" {
		return m.Username
	}
	return "no-reply@example.com"
}

// LineAlertsEnabled reports whether failed notifications should be pushed to LINE.
func (c *Config) LineAlertsEnabled() bool {
	return c.LineChannelSecret != "" && c.LineChannelToken != "" && c.AlertLineUserID != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "scheduler.db")
	v.SetDefault("REMINDER_SWEEP_SPEC", "0 */5 * * * *")
	v.SetDefault("CRON_RATE_PER_SEC", 1.0)
	v.SetDefault("CRON_RATE_BURST", 5)
	v.SetDefault("EMAIL_PORT", 587)
	v.SetDefault("EMAIL_TIMEOUT", "15s")
}

// Load reads the configuration from the environment. A .env file is expected
// to have been loaded already (godotenv/autoload in main).
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()
	// SetDefault makes keys known to AutomaticEnv; the rest must be bound explicitly.
	for _, key := range []string{
		"JWT_SECRET", "RECRUITER_EMAILS", "CRON_SECRET",
		"EMAIL_HOST", "EMAIL_USER", "EMAIL_PASS",
		"REDIS_URL", "CHANNEL_SECRET", "CHANNEL_ACCESS_TOKEN", "ALERT_LINE_USER_ID",
		"POLICY_SEED_FILE",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{
		Port:              v.GetInt("PORT"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		DBDriver:          strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		RecruiterEmails:   splitList(v.GetString("RECRUITER_EMAILS")),
		CronSecret:        v.GetString("CRON_SECRET"),
		ReminderSweepSpec: strings.TrimSpace(v.GetString("REMINDER_SWEEP_SPEC")),
		CronRatePerSec:    v.GetFloat64("CRON_RATE_PER_SEC"),
		CronRateBurst:     v.GetInt("CRON_RATE_BURST"),
		Mail: MailConfig{
			Host:     v.GetString("EMAIL_HOST"),
			Port:     v.GetInt("EMAIL_PORT"),
			Username: v.GetString("EMAIL_USER"),
			Password: v.GetString("EMAIL_PASS"),
			Timeout:  v.GetDuration("EMAIL_TIMEOUT"),
		},
		RedisURL:          v.GetString("REDIS_URL"),
		LineChannelSecret: v.GetString("CHANNEL_SECRET"),
		LineChannelToken:  v.GetString("CHANNEL_ACCESS_TOKEN"),
		AlertLineUserID:   v.GetString("ALERT_LINE_USER_ID"),
		PolicySeedFile:    v.GetString("POLICY_SEED_FILE"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" && cfg.DBDriver != "postgres" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", cfg.DBDriver)
	}
	if cfg.Mail.Timeout <= 0 {
		cfg.Mail.Timeout = 15 * time.Second
	}
	return cfg, nil
}

// splitList splits a comma separated list, lower-casing and dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
