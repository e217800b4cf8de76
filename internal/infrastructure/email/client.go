package email

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/pkg/config"
	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

// ErrNotConfigured is returned by Send when no SMTP host is set.
var ErrNotConfigured = errors.New("smtp host not configured")

// Client sends rendered messages over SMTP. A new connection is dialled for
// every message.
type Client struct {
	cfg config.MailConfig
	log logger.Logger
}

// NewClient creates an SMTP client. Port 465 uses implicit TLS, any other
// port upgrades with STARTTLS when offered.
func NewClient(cfg config.MailConfig, log logger.Logger) *Client {
	if !cfg.Enabled() {
		log.Warn("⚠️ WARN: EMAIL_HOST not set, notifications will be recorded as failed")
	}
	return &Client{cfg: cfg, log: log}
}

func (c *Client) options() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(c.cfg.Port),
		gomail.WithTimeout(c.cfg.Timeout),
	}
	if c.cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if c.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(c.cfg.Username),
			gomail.WithPassword(c.cfg.Password),
		)
	}
	return opts
}

func buildMsg(m dto.EmailMessage) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	var err error
	if m.FromName != "" {
		err = msg.FromFormat(m.FromName, m.From)
	} else {
		err = msg.From(m.From)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", m.From, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", m.To, err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to %q: %w", m.ReplyTo, err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, m.Text)
	if m.HTML != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, m.HTML)
	}
	return msg, nil
}

// Send delivers one message, honouring ctx for the whole SMTP exchange.
func (c *Client) Send(ctx context.Context, m dto.EmailMessage) error {
	if !c.cfg.Enabled() {
		return fmt.Errorf("%w: %v", appErrors.ErrMailTransport, ErrNotConfigured)
	}
	msg, err := buildMsg(m)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrMailTransport, err)
	}
	client, err := gomail.NewClient(c.cfg.Host, c.options()...)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrMailTransport, err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrMailTransport, err)
	}
	c.log.Debug(fmt.Sprintf("Sent %q to %s", m.Subject, m.To))
	return nil
}
