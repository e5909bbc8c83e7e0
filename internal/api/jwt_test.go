package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return token
}

func TestVerifySessionToken_Valid(t *testing.T) {
	token := signToken(t, testSecret, SessionClaims{
		Name: "Arvid",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	userID, name, err := VerifySessionToken(testSecret, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" || name != "Arvid" {
		t.Fatalf("unexpected claims: %q %q", userID, name)
	}
}

func TestVerifySessionToken_Rejections(t *testing.T) {
	expired := signToken(t, testSecret, SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})
	wrongKey := signToken(t, "other-secret", SessionClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}})
	noSubject := signToken(t, testSecret, SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})

	for name, token := range map[string]string{
		"garbage":    "not-a-token",
		"expired":    expired,
		"wrong key":  wrongKey,
		"no subject": noSubject,
	} {
		if _, _, err := VerifySessionToken(testSecret, token); err == nil {
			t.Fatalf("%s: expected rejection", name)
		}
	}
}
