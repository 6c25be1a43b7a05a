// Package token issues and validates the HMAC-signed access tokens shared
// between the identity service and the request-gating middleware.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/smart-erp/identity-service/internal/core/domain"
)

const defaultTTL = 60 * time.Minute

// ErrMissingSigningKey indicates the symmetric signing key was absent or
// empty. This is a configuration fault, fatal at startup.
var ErrMissingSigningKey = errors.New("token signing key is missing")

// Config holds the immutable token settings, resolved once at startup and
// passed to the issuer and validator at construction time.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Claims is the claim set carried by every issued token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer builds signed tokens for verified users.
type Issuer struct {
	cfg Config
}

// NewIssuer returns an Issuer, or ErrMissingSigningKey when cfg.Secret is
// empty. A non-positive TTL falls back to 60 minutes.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSigningKey
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	return &Issuer{cfg: cfg}, nil
}

// Issue signs a token for the given user. The subject is the username, the
// role claim is the resolved role name, and jti is unique per token.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role: user.RoleName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validator verifies token signature, issuer, audience and expiry.
type Validator struct {
	cfg Config
}

// NewValidator returns a Validator, or ErrMissingSigningKey when cfg.Secret
// is empty.
func NewValidator(cfg Config) (*Validator, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSigningKey
	}
	return &Validator{cfg: cfg}, nil
}

// Validate parses and verifies a compact token string and returns its claims.
func (v *Validator) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(v.cfg.Secret), nil
		},
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithAudience(v.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
