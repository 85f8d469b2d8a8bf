package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash should not equal the plaintext")
	}

	if !CheckPasswordHash("s3cret", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: "u-1", Username: "student1", Role: models.RoleStudent}
	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate jwt: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate jwt: %v", err)
	}
	if claims.UserID != "u-1" {
		t.Fatalf("expected user id u-1, got %s", claims.UserID)
	}
	if claims.Username != "student1" {
		t.Fatalf("expected username student1, got %s", claims.Username)
	}
	if claims.Role != models.RoleStudent {
		t.Fatalf("expected student role, got %s", claims.Role)
	}
}

func TestJWTExpiredRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := JWTClaims{
		UserID:   "u-1",
		Username: "student1",
		Role:     models.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getJWTSecret())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestJWTWrongSigningMethodRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := JWTClaims{
		UserID:   "u-1",
		Username: "student1",
		Role:     models.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	// HS384 verifies fine with the same HMAC secret, so only the method
	// pin rejects it.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(getJWTSecret())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expected token signed with a different method to be rejected")
	}
}

func TestJWTWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := &models.User{ID: "u-1", Username: "student1", Role: models.RoleStudent}
	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate jwt: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}
