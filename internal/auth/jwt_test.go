package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func initTestSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("failed to init secret: %v", err)
	}
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	initTestSecret(t)

	tokenString, err := GenerateJWT(42, "jane@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	token, err := VerifyJWT(tokenString)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}

	if userID, ok := claims["user_id"].(float64); !ok || uint(userID) != 42 {
		t.Errorf("expected user_id 42, got %v", claims["user_id"])
	}

	if claims["email"] != "jane@example.com" {
		t.Errorf("expected email claim, got %v", claims["email"])
	}
}

func TestVerifyJWTRejectsTamperedToken(t *testing.T) {
	initTestSecret(t)

	tokenString, err := GenerateJWT(42, "jane@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := VerifyJWT(tokenString + "x"); err == nil {
		t.Error("expected tampered token to fail verification")
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	initTestSecret(t)

	tokenString, err := GenerateJWT(42, "jane@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if err := InitJWTSecret(); err != nil {
		t.Fatalf("failed to re-init secret: %v", err)
	}

	if _, err := VerifyJWT(tokenString); err == nil {
		t.Error("expected token signed with old secret to fail")
	}
}

func TestInitJWTSecretMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if err := InitJWTSecret(); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}
}
