package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/pkg/config"
	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

func TestSendWithoutHost(t *testing.T) {
	c := NewClient(config.MailConfig{Port: 587, Timeout: time.Second}, logger.Nop())
	err := c.Send(context.Background(), dto.EmailMessage{From: "a@x.com", To: "b@x.com", Subject: "s", Text: "t"})
	if !errors.Is(err, appErrors.ErrMailTransport) || !strings.Contains(err.Error(), ErrNotConfigured.Error()) {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildMsg(t *testing.T) {
	tests := []struct {
		name    string
		msg     dto.EmailMessage
		wantErr bool
	}{
		{"plain", dto.EmailMessage{From: "a@x.com", To: "b@x.com", Subject: "Hi", Text: "body"}, false},
		{"named sender with reply-to", dto.EmailMessage{FromName: "Recruiting", From: "a@x.com", To: "b@x.com", ReplyTo: "r@x.com", Text: "t", HTML: "<p>t</p>"}, false},
		{"bad recipient", dto.EmailMessage{From: "a@x.com", To: "not an address", Text: "t"}, true},
		{"bad reply-to", dto.EmailMessage{From: "a@x.com", To: "b@x.com", ReplyTo: "nope", Text: "t"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMsg(tt.msg)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
