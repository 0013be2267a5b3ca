package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/db"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/redis"
	"github.com/meinhoongagan/cabinet-api/utils"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates a user and issues an access + refresh token pair. The
// refresh token is tracked in the user's revocable set. Unknown email and
// wrong password answer with the same message so accounts can't be
// enumerated.
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if db.DB.Where("email = ? AND is_active = ?", email, true).First(&user).RowsAffected == 0 {
		return utils.Fail(c, utils.ErrAuthentication, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return utils.Fail(c, utils.ErrAuthentication, "Invalid email or password")
	}

	accessToken, err := utils.GenerateAccessToken(&user)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to generate token")
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to generate refresh token")
	}
	if err := redis.StoreRefreshToken(user.ID, refreshToken, utils.RefreshTTL()); err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to store refresh token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user":         user,
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}

// Refresh rotates a valid refresh token for a new token pair. The presented
// token must verify and still be present in the user's set; it is removed
// before the new one is added, so it can only be spent once.
func Refresh(c *fiber.Ctx) error {
	type RefreshInput struct {
		RefreshToken string `json:"refreshToken"`
	}

	input := new(RefreshInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}
	if input.RefreshToken == "" {
		return utils.Fail(c, utils.ErrValidation, "Refresh token is required")
	}

	userID, err := utils.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return utils.Fail(c, utils.ErrAuthentication, "Invalid or expired refresh token")
	}

	valid, err := redis.HasRefreshToken(userID, input.RefreshToken)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to check refresh token")
	}
	if !valid {
		return utils.Fail(c, utils.ErrAuthentication, "Invalid or expired refresh token")
	}

	var user models.User
	if db.DB.Where("id = ? AND is_active = ?", userID, true).First(&user).RowsAffected == 0 {
		return utils.Fail(c, utils.ErrAuthentication, "Invalid or expired refresh token")
	}

	accessToken, err := utils.GenerateAccessToken(&user)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to generate token")
	}
	newRefreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to generate refresh token")
	}

	if err := redis.RevokeRefreshToken(userID, input.RefreshToken); err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to rotate refresh token")
	}
	if err := redis.StoreRefreshToken(userID, newRefreshToken, utils.RefreshTTL()); err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to store refresh token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"accessToken":  accessToken,
			"refreshToken": newRefreshToken,
		},
	})
}

// Logout revokes the presented refresh token. The access token simply
// expires; only the refresh set is server-side state.
func Logout(c *fiber.Ctx) error {
	type LogoutInput struct {
		RefreshToken string `json:"refreshToken"`
	}

	input := new(LogoutInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return utils.Fail(c, utils.ErrAuthentication, "User ID not found in context")
	}

	if input.RefreshToken != "" {
		if err := redis.RevokeRefreshToken(userID, input.RefreshToken); err != nil {
			return utils.Fail(c, utils.ErrInternal, "Failed to revoke refresh token")
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully logged out",
	})
}

// GetMe returns the authenticated user's profile.
func GetMe(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return utils.Fail(c, utils.ErrAuthentication, "User ID not found in context")
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "User not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}
