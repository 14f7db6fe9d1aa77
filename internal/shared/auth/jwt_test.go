package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestValidateAcceptsSignedToken(t *testing.T) {
	v := NewJWTValidator("school-secret")
	token := signToken(t, "school-secret", Claims{
		SessionID: "sid-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "teacher@mergington.edu",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := v.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Subject != "teacher@mergington.edu" || claims.SessionID != "sid-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateSessionIDFallsBackToSubject(t *testing.T) {
	v := NewJWTValidator("school-secret")
	token := signToken(t, "school-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "teacher@mergington.edu"},
	})

	claims, err := v.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.SessionID != "teacher@mergington.edu" {
		t.Fatalf("expected subject fallback, got %q", claims.SessionID)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	v := NewJWTValidator("school-secret")
	token := signToken(t, "other-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "teacher@mergington.edu"},
	})

	if _, err := v.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	v := NewJWTValidator("school-secret")
	token := signToken(t, "school-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "teacher@mergington.edu",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	if _, err := v.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestValidateRejectsMissingSubject(t *testing.T) {
	v := NewJWTValidator("school-secret")
	token := signToken(t, "school-secret", Claims{SessionID: "sid-1"})

	if _, err := v.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestValidateMissingToken(t *testing.T) {
	v := NewJWTValidator("school-secret")
	if _, err := v.Validate("  "); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token, got %v", err)
	}
}

func TestEnabled(t *testing.T) {
	if NewJWTValidator("").Enabled() {
		t.Fatal("empty secret should disable validation")
	}
	if !NewJWTValidator("school-secret").Enabled() {
		t.Fatal("configured secret should enable validation")
	}
}

func TestExtractTokenPrefersHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/ws/board?token=from-query", nil)
	r.Header.Set("Authorization", "Bearer from-header")
	if got := ExtractToken(r, "token"); got != "from-header" {
		t.Fatalf("expected header token, got %q", got)
	}
}

func TestExtractTokenFallsBackToQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/ws/board?token=from-query", nil)
	if got := ExtractToken(r, ""); got != "from-query" {
		t.Fatalf("expected query token, got %q", got)
	}
}

func TestExtractBearerTokenCasing(t *testing.T) {
	if got := ExtractBearerTokenFromHeader("BEARER abc"); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if got := ExtractBearerTokenFromHeader("Basic abc"); got != "" {
		t.Fatalf("expected empty for non-bearer, got %q", got)
	}
}
