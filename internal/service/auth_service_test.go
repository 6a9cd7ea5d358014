package service

import (
	"errors"
	"testing"
	"time"

	"github.com/quizdeck/quiz-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest() *AuthService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	return NewAuthService(cfg, nil)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	svc := newAuthServiceForTest()

	hash, err := svc.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("password stored in plaintext")
	}
	if err := svc.CheckPassword(hash, "hunter22"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if err := svc.CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newAuthServiceForTest()

	signed, err := svc.signToken(42, "jti-1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := svc.ValidateToken(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.AccountID != 42 {
		t.Fatalf("account id: got %d, want 42", claims.AccountID)
	}
	if claims.ID != "jti-1" {
		t.Fatalf("jti: got %q, want jti-1", claims.ID)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	svc := newAuthServiceForTest()
	signed, err := svc.signToken(42, "jti-1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	other := NewAuthService(&config.Config{JWTSecret: "different", JWTExpiry: time.Hour}, nil)
	if _, err := other.ValidateToken(signed); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	svc := newAuthServiceForTest()
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
