package redis

import (
	"fmt"
	"time"
)

// Each user has one Redis set holding their currently valid refresh tokens.
// Login adds, logout and rotation remove, refresh checks membership. The key
// expires with the refresh TTL so sets of inactive users don't accumulate.

func refreshKey(userID uint) string {
	return fmt.Sprintf("refresh_tokens:%d", userID)
}

// StoreRefreshToken adds the token to the user's set.
func StoreRefreshToken(userID uint, token string, ttl time.Duration) error {
	key := refreshKey(userID)
	if err := Client.SAdd(Ctx, key, token).Err(); err != nil {
		return err
	}
	return Client.Expire(Ctx, key, ttl).Err()
}

// HasRefreshToken reports whether the token is still valid for the user,
// i.e. has not been revoked by logout or rotation.
func HasRefreshToken(userID uint, token string) (bool, error) {
	return Client.SIsMember(Ctx, refreshKey(userID), token).Result()
}

// RevokeRefreshToken removes one token from the user's set.
func RevokeRefreshToken(userID uint, token string) error {
	return Client.SRem(Ctx, refreshKey(userID), token).Err()
}

// RevokeAllRefreshTokens drops the user's whole set. Used when an account is
// deactivated or deleted.
func RevokeAllRefreshTokens(userID uint) error {
	return Client.Del(Ctx, refreshKey(userID)).Err()
}
