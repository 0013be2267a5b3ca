package utils

import (
	"testing"

	"github.com/meinhoongagan/cabinet-api/models"
)

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_access_secret")
	t.Setenv("JWT_REFRESH_SECRET", "test_refresh_secret")

	// A freshly issued token must verify immediately: no claim may place it
	// in the future relative to the verification clock.
	token, err := GenerateRefreshToken(42)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	userID, err := VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("VerifyRefreshToken rejected a just-issued token: %v", err)
	}
	if userID != 42 {
		t.Errorf("VerifyRefreshToken user id = %d, want 42", userID)
	}
}

func TestBackToBackRefreshTokensAreDistinct(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET", "test_refresh_secret")

	first, err := GenerateRefreshToken(42)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	second, err := GenerateRefreshToken(42)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	// Same user, same second: the tokens must still differ, or revoking one
	// login would revoke the other.
	if first == second {
		t.Error("two logins produced the same refresh token")
	}
	for _, token := range []string{first, second} {
		if _, err := VerifyRefreshToken(token); err != nil {
			t.Errorf("VerifyRefreshToken(%q): %v", token, err)
		}
	}
}

func TestAccessTokenIsNotAValidRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_access_secret")
	t.Setenv("JWT_REFRESH_SECRET", "test_refresh_secret")

	user := &models.User{Email: "a@b.c", Role: models.RoleAdmin}
	user.ID = 7

	accessToken, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := VerifyRefreshToken(accessToken); err == nil {
		t.Error("access token accepted as refresh token")
	}
}

func TestTamperedRefreshTokenRejected(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET", "test_refresh_secret")

	token, err := GenerateRefreshToken(42)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := VerifyRefreshToken(tampered); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestTTLDefaults(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("JWT_REFRESH_EXPIRES_IN", "")

	if AccessTTL() != defaultAccessTTL {
		t.Errorf("AccessTTL() = %v, want %v", AccessTTL(), defaultAccessTTL)
	}
	if RefreshTTL() != defaultRefreshTTL {
		t.Errorf("RefreshTTL() = %v, want %v", RefreshTTL(), defaultRefreshTTL)
	}

	t.Setenv("JWT_EXPIRES_IN", "15m")
	if AccessTTL().Minutes() != 15 {
		t.Errorf("AccessTTL() with JWT_EXPIRES_IN=15m = %v", AccessTTL())
	}
}
