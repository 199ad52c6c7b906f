package jwt

import (
	"errors"
	"testing"
	"time"

	"gameatlas/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	previous := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: secret}
	t.Cleanup(func() { config.AppConfig = previous })
}

func TestGenerateAndParse(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	userID, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if userID != 42 {
		t.Errorf("Expected user 42 but got %d", userID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	withSecret(t, "one")
	token, err := GenerateToken(1)
	if err != nil {
		t.Fatal(err)
	}

	withSecret(t, "two")
	if _, err := ParseToken(token); err == nil {
		t.Error("Expected a signature error")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	withSecret(t, "test-secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("Expected ErrTokenExpired but got %v", err)
	}
}

func TestParseRejectsNonNumericSubject(t *testing.T) {
	withSecret(t, "test-secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "8f14e45f-ceea-467f-a0e6-f2f7e3b2c1aa",
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(token); !errors.Is(err, ErrInvalidSubject) {
		t.Errorf("Expected ErrInvalidSubject but got %v", err)
	}
}

func TestEmptySecretIsRejected(t *testing.T) {
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte{})
	if err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		name string
		set  bool
	}{
		{"Config not loaded", false},
		{"Blank secret", true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			previous := config.AppConfig
			config.AppConfig = nil
			if tc.set {
				config.AppConfig = &config.Config{JWTSecret: ""}
			}
			t.Cleanup(func() { config.AppConfig = previous })

			if _, err := ParseToken(forged); !errors.Is(err, ErrMissingSecret) {
				t.Errorf("Expected ErrMissingSecret from ParseToken but got %v", err)
			}
			if _, err := GenerateToken(1); !errors.Is(err, ErrMissingSecret) {
				t.Errorf("Expected ErrMissingSecret from GenerateToken but got %v", err)
			}
		})
	}
}
