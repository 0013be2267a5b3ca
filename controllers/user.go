package controllers

import (
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/db"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/redis"
	"github.com/meinhoongagan/cabinet-api/utils"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(password string) (string, error) {
	rounds := 12
	if v := os.Getenv("BCRYPT_ROUNDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			rounds = parsed
		}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), rounds)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// GetUsers lists users with pagination and search over nom, prenom, email
// and telephone.
func GetUsers(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePage(c, 20)

	query := db.DB.Model(&models.User{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"nom ILIKE ? OR prenom ILIKE ? OR email ILIKE ? OR telephone ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to count users")
	}

	var users []models.User
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to fetch users")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"users":      users,
			"pagination": utils.NewPagination(page, limit, total),
		},
	})
}

// GetUser returns one user by id.
func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "User not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

// CreateUser creates a practice account. Email must be unique, the password
// is bcrypt-hashed before persisting, never stored in clear.
func CreateUser(c *fiber.Ctx) error {
	type CreateUserInput struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		Nom       string `json:"nom"`
		Prenom    string `json:"prenom"`
		Role      string `json:"role"`
		Telephone string `json:"telephone"`
		IsActive  *bool  `json:"isActive"`
	}

	input := new(CreateUserInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" || strings.TrimSpace(input.Nom) == "" || strings.TrimSpace(input.Prenom) == "" {
		return utils.Fail(c, utils.ErrValidation, "Missing required fields: email, password, nom, prenom")
	}
	if len(input.Password) < 8 {
		return utils.Fail(c, utils.ErrValidation, "Password must be at least 8 characters")
	}
	if !models.ValidRole(input.Role) {
		return utils.Fail(c, utils.ErrValidation, "Invalid role. Must be admin, medecin or assistant")
	}

	var existing models.User
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return utils.Fail(c, utils.ErrConflict, "This email is already in use")
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to hash password")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	user := models.User{
		Email:     input.Email,
		Password:  hashed,
		Nom:       strings.TrimSpace(input.Nom),
		Prenom:    strings.TrimSpace(input.Prenom),
		Role:      input.Role,
		Telephone: strings.TrimSpace(input.Telephone),
		IsActive:  isActive,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created",
		"data":    user,
	})
}

// UpdateUser edits a user. Self-protection: the caller may not change their
// own role or deactivate their own account.
func UpdateUser(c *fiber.Ctx) error {
	type UpdateUserInput struct {
		Email     *string `json:"email"`
		Password  *string `json:"password"`
		Nom       *string `json:"nom"`
		Prenom    *string `json:"prenom"`
		Role      *string `json:"role"`
		Telephone *string `json:"telephone"`
		IsActive  *bool   `json:"isActive"`
	}

	input := new(UpdateUserInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	var user models.User
	if err := db.DB.First(&user, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "User not found")
	}

	callerID, _ := c.Locals("userID").(uint)
	if callerID == user.ID {
		if input.Role != nil && *input.Role != user.Role {
			return utils.Fail(c, utils.ErrForbidden, "You cannot change your own role")
		}
		if input.IsActive != nil && !*input.IsActive {
			return utils.Fail(c, utils.ErrForbidden, "You cannot deactivate your own account")
		}
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != user.Email {
			var existing models.User
			if db.DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
				return utils.Fail(c, utils.ErrConflict, "This email is already in use")
			}
			user.Email = email
		}
	}
	if input.Nom != nil && strings.TrimSpace(*input.Nom) != "" {
		user.Nom = strings.TrimSpace(*input.Nom)
	}
	if input.Prenom != nil && strings.TrimSpace(*input.Prenom) != "" {
		user.Prenom = strings.TrimSpace(*input.Prenom)
	}
	if input.Role != nil {
		if !models.ValidRole(*input.Role) {
			return utils.Fail(c, utils.ErrValidation, "Invalid role. Must be admin, medecin or assistant")
		}
		user.Role = *input.Role
	}
	if input.Telephone != nil {
		user.Telephone = strings.TrimSpace(*input.Telephone)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
		if !user.IsActive {
			// A deactivated account must not keep a way back in.
			if err := redis.RevokeAllRefreshTokens(user.ID); err != nil {
				return utils.Fail(c, utils.ErrInternal, "Failed to revoke sessions")
			}
		}
	}
	if input.Password != nil {
		if len(strings.TrimSpace(*input.Password)) < 8 {
			return utils.Fail(c, utils.ErrValidation, "Password must be at least 8 characters")
		}
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			return utils.Fail(c, utils.ErrInternal, "Failed to hash password")
		}
		user.Password = hashed
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to update user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated",
		"data":    user,
	})
}

// DeleteUser removes an account. Self-protection: the caller may not delete
// themselves.
func DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "User not found")
	}

	callerID, _ := c.Locals("userID").(uint)
	if callerID == user.ID {
		return utils.Fail(c, utils.ErrForbidden, "You cannot delete your own account")
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to delete user")
	}
	if err := redis.RevokeAllRefreshTokens(user.ID); err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to revoke sessions")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted",
	})
}
