package token

import (
	"testing"
	"time"

	"github.com/smart-erp/identity-service/internal/core/domain"
)

func testConfig() Config {
	return Config{
		Secret:   "test-secret",
		Issuer:   "smart-erp",
		Audience: "smart-erp-clients",
		TTL:      time.Hour,
	}
}

func testUser() *domain.User {
	return &domain.User{
		Username: "alice",
		Role:     &domain.Role{Name: domain.RoleAdmin},
	}
}

func TestNewIssuer_MissingKey(t *testing.T) {
	if _, err := NewIssuer(Config{Issuer: "x", Audience: "y"}); err != ErrMissingSigningKey {
		t.Fatalf("expected ErrMissingSigningKey, got %v", err)
	}
	if _, err := NewValidator(Config{}); err != ErrMissingSigningKey {
		t.Fatalf("expected ErrMissingSigningKey from NewValidator, got %v", err)
	}
}

func TestIssueAndValidate(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	validator, err := NewValidator(testConfig())
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}

	before := time.Now()
	signed, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := validator.Validate(signed)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected sub alice, got %q", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role Admin, got %q", claims.Role)
	}
	if claims.ID == "" {
		t.Fatalf("expected non-empty jti")
	}
	if claims.Issuer != "smart-erp" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}

	// expiry must be issue time + TTL (allow a couple seconds of slack for
	// the time between Issue and the assertions).
	wantExp := before.Add(time.Hour)
	gotExp := claims.ExpiresAt.Time
	if gotExp.Before(wantExp.Add(-2*time.Second)) || gotExp.After(wantExp.Add(2*time.Second)) {
		t.Fatalf("expiry %v not within expected window around %v", gotExp, wantExp)
	}
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	issuer, _ := NewIssuer(testConfig())
	validator, _ := NewValidator(testConfig())

	a, _ := issuer.Issue(testUser())
	b, _ := issuer.Issue(testUser())

	ca, err := validator.Validate(a)
	if err != nil {
		t.Fatalf("Validate a: %v", err)
	}
	cb, err := validator.Validate(b)
	if err != nil {
		t.Fatalf("Validate b: %v", err)
	}
	if ca.ID == cb.ID {
		t.Fatalf("expected distinct jti values, both %q", ca.ID)
	}
}

func TestValidate_WrongKey(t *testing.T) {
	issuer, _ := NewIssuer(testConfig())
	signed, _ := issuer.Issue(testUser())

	other := testConfig()
	other.Secret = "different-secret"
	validator, _ := NewValidator(other)

	if _, err := validator.Validate(signed); err == nil {
		t.Fatalf("expected error for wrong signing key")
	}
}

func TestValidate_WrongIssuerOrAudience(t *testing.T) {
	issuer, _ := NewIssuer(testConfig())
	signed, _ := issuer.Issue(testUser())

	cfg := testConfig()
	cfg.Issuer = "someone-else"
	validator, _ := NewValidator(cfg)
	if _, err := validator.Validate(signed); err == nil {
		t.Fatalf("expected error for issuer mismatch")
	}

	cfg = testConfig()
	cfg.Audience = "other-clients"
	validator, _ = NewValidator(cfg)
	if _, err := validator.Validate(signed); err == nil {
		t.Fatalf("expected error for audience mismatch")
	}
}

func TestValidate_Expired(t *testing.T) {
	cfg := testConfig()
	issuer, _ := NewIssuer(cfg)
	issuer.cfg.TTL = -time.Minute

	signed, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	validator, _ := NewValidator(cfg)
	if _, err := validator.Validate(signed); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	cfg := testConfig()
	cfg.TTL = 0
	issuer, err := NewIssuer(cfg)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	if issuer.cfg.TTL != defaultTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTTL, issuer.cfg.TTL)
	}
}
