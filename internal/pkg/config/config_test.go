package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RECRUITER_EMAILS", " Alice@Example.com, ,bob@example.com ")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if len(cfg.RecruiterEmails) != 2 || cfg.RecruiterEmails[0] != "alice@example.com" || cfg.RecruiterEmails[1] != "bob@example.com" {
		t.Errorf("RecruiterEmails = %v", cfg.RecruiterEmails)
	}
	if cfg.Mail.Timeout != 15*time.Second {
		t.Errorf("Mail.Timeout = %v, want 15s", cfg.Mail.Timeout)
	}
	if cfg.Mail.Enabled() {
		t.Error("mail should be disabled without EMAIL_HOST")
	}
	if cfg.Mail.Sender() != "no-reply@example.com" {
		t.Errorf("Sender = %q", cfg.Mail.Sender())
	}
	if cfg.LineAlertsEnabled() {
		t.Error("line alerts should be disabled without credentials")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mongo")
	if _, err := load(viper.New()); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestLoadMailAndAlerts(t *testing.T) {
	t.Setenv("EMAIL_HOST", "smtp.example.com")
	t.Setenv("EMAIL_PORT", "465")
	t.Setenv("EMAIL_USER", "recruiting@example.com")
	t.Setenv("EMAIL_TIMEOUT", "3s")
	t.Setenv("CHANNEL_SECRET", "sec")
	t.Setenv("CHANNEL_ACCESS_TOKEN", "tok")
	t.Setenv("ALERT_LINE_USER_ID", "U123")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Mail.Enabled() || cfg.Mail.Port != 465 || cfg.Mail.Timeout != 3*time.Second {
		t.Errorf("Mail = %+v", cfg.Mail)
	}
	if cfg.Mail.Sender() != "recruiting@example.com" {
		t.Errorf("Sender = %q", cfg.Mail.Sender())
	}
	if !cfg.LineAlertsEnabled() {
		t.Error("expected line alerts enabled")
	}
}
