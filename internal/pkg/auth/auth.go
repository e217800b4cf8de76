package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"interview-scheduler/internal/domain/constant"
)

var ErrBadToken = errors.New("invalid token")

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the resolved caller of a request.
type Identity struct {
	Email string
	Role  constant.Role
}

// IsRecruiter reports whether the identity holds the recruiter role.
func (i Identity) IsRecruiter() bool { return i.Role == constant.RoleRecruiter }

func MakeToken(email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := Claims{
		Email: strings.ToLower(strings.TrimSpace(email)),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.ToLower(strings.TrimSpace(email)),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

func ParseToken(raw, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	if c.Email == "" {
		c.Email = c.Subject
	}
	if c.Email == "" {
		return nil, ErrBadToken
	}
	return c, nil
}

// Resolver turns bearer tokens into identities. The recruiter role is granted
// by an email allowlist; every other verified email is a candidate.
type Resolver struct {
	secret     string
	recruiters map[string]struct{}
}

func NewResolver(secret string, recruiterEmails []string) *Resolver {
	r := &Resolver{secret: secret, recruiters: make(map[string]struct{}, len(recruiterEmails))}
	for _, e := range recruiterEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			r.recruiters[e] = struct{}{}
		}
	}
	return r
}

// Resolve verifies a raw token (with or without the "Bearer " prefix).
func (r *Resolver) Resolve(raw string) (Identity, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	if raw == "" {
		return Identity{}, ErrBadToken
	}
	c, err := ParseToken(raw, r.secret)
	if err != nil {
		return Identity{}, err
	}
	email := strings.ToLower(strings.TrimSpace(c.Email))
	return Identity{Email: email, Role: r.RoleFor(email)}, nil
}

// RoleFor returns the role an email is entitled to.
func (r *Resolver) RoleFor(email string) constant.Role {
	if _, ok := r.recruiters[strings.ToLower(strings.TrimSpace(email))]; ok {
		return constant.RoleRecruiter
	}
	return constant.RoleCandidate
}
