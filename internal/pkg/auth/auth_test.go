package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"interview-scheduler/internal/domain/constant"
)

const secret = "test-secret"

func TestResolveRoles(t *testing.T) {
	r := NewResolver(secret, []string{"Recruiter@Example.com"})

	tests := []struct {
		name  string
		email string
		role  constant.Role
	}{
		{"allowlisted", "recruiter@example.com", constant.RoleRecruiter},
		{"allowlisted mixed case", "RECRUITER@example.com", constant.RoleRecruiter},
		{"anyone else", "someone@example.com", constant.RoleCandidate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := MakeToken(tt.email, secret, time.Minute)
			if err != nil {
				t.Fatalf("make token: %v", err)
			}
			id, err := r.Resolve("Bearer " + tok)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if id.Role != tt.role {
				t.Errorf("role = %s, want %s", id.Role, tt.role)
			}
		})
	}
}

func TestResolveRejects(t *testing.T) {
	r := NewResolver(secret, nil)

	expired, _ := MakeToken("a@b.com", secret, -time.Minute)
	wrongSecret, _ := MakeToken("a@b.com", "other", time.Minute)
	noEmail, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))},
	}).SignedString([]byte(secret))

	for name, raw := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"expired":      expired,
		"wrong secret": wrongSecret,
		"no email":     noEmail,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := r.Resolve(raw); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestAlgorithmConfusion(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "a@b.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := ParseToken(tok, secret); err == nil {
		t.Fatal("expected error for alg=none token")
	}
}
