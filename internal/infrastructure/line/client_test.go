package line

import (
	"testing"

	"interview-scheduler/internal/pkg/logger"
)

func TestNewClientRequiresCredentials(t *testing.T) {
	tests := []struct {
		name, secret, token, user string
		wantErr                   bool
	}{
		{"missing secret", "", "tok", "U1", true},
		{"missing user", "sec", "tok", "", true},
		{"complete", "sec", "tok", "U1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.secret, tt.token, tt.user, logger.Nop())
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
