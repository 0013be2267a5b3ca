package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/meinhoongagan/cabinet-api/models"
)

const (
	defaultAccessTTL  = 7 * 24 * time.Hour
	defaultRefreshTTL = 30 * 24 * time.Hour
)

func accessSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "cabinet_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

func refreshSecret() []byte {
	secret := os.Getenv("JWT_REFRESH_SECRET")
	if secret == "" {
		secret = "cabinet_refresh_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

func ttlFromEnv(name string, fallback time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// AccessTTL is the access token lifetime (JWT_EXPIRES_IN, default 7 days).
func AccessTTL() time.Duration {
	return ttlFromEnv("JWT_EXPIRES_IN", defaultAccessTTL)
}

// RefreshTTL is the refresh token lifetime (JWT_REFRESH_EXPIRES_IN, default
// 30 days).
func RefreshTTL() time.Duration {
	return ttlFromEnv("JWT_REFRESH_EXPIRES_IN", defaultRefreshTTL)
}

// GenerateAccessToken issues the short-lived identity+role token.
func GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(AccessTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(accessSecret())
}

// GenerateRefreshToken issues the long-lived identity-only token. It is only
// usable for the refresh operation and only while it is still present in the
// user's tracked set.
func GenerateRefreshToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"jti": uuid.NewString(), // distinct tokens for back-to-back logins
		"exp": time.Now().Add(RefreshTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(refreshSecret())
}

// VerifyRefreshToken validates signature and expiry of a refresh token and
// returns the user id it was issued to.
func VerifyRefreshToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return refreshSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid refresh token claims")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid user id in refresh token")
	}
	return uint(id), nil
}
