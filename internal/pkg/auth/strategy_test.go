package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/notemart/notemart/internal/domain/model"
)

func TestJWTStrategyRoundTrip(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(42, model.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	userID, role, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if userID != 42 || role != model.RoleAdmin {
		t.Fatalf("unexpected identity %d/%s", userID, role)
	}
}

func TestJWTStrategyRejectsForeignSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{TTL: time.Hour})
	verifier := NewJWTStrategy("secret-b", Options{TTL: time.Hour})

	token, err := issuer.IssueToken(1, model.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestJWTStrategyRejectsExpiredToken(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: -time.Minute})
	// Constructor falls back to the default TTL for non-positive values, so
	// build an already expired token by hand.
	expired := &JWTStrategy{secret: []byte("secret"), ttl: -time.Minute}

	token, err := expired.IssueToken(1, model.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})
	if _, _, err := strategy.ParseToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHMACStrategyRoundTrip(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(7, model.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	userID, role, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if userID != 7 || role != model.RoleUser {
		t.Fatalf("unexpected identity %d/%s", userID, role)
	}
}

func TestHMACStrategyRejectsTampering(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})
	other := NewHMACStrategy("other", Options{TTL: time.Hour})

	token, err := other.IssueToken(7, model.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	if _, _, err := strategy.ParseToken("%%%"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for garbage, got %v", err)
	}
}

func TestHMACStrategyRejectsExpiredToken(t *testing.T) {
	expired := &HMACStrategy{secret: []byte("secret"), ttl: -time.Minute}
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := expired.IssueToken(7, model.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must differ from password")
	}
	if err := hasher.Compare(hash, "secret1"); err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestStrategyNames(t *testing.T) {
	if name := NewJWTStrategy("s", Options{}).Name(); name != "jwt" {
		t.Fatalf("unexpected name %q", name)
	}
	if name := NewHMACStrategy("s", Options{}).Name(); name != "hmac" {
		t.Fatalf("unexpected name %q", name)
	}
}
