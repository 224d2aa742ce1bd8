package controllers

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	otpValidity   = 5*time.Minute + 5*time.Second
	otpMaxRetries = 3
	otpBlock      = 24 * time.Hour
	tokenValidity = 7 * 24 * time.Hour
)

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "philosophy_hub_secret" // Replace with secure key in production
	}
	return secret
}

func signToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"userType": string(user.UserType),
		"exp":      time.Now().Add(tokenValidity).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret()))
}

func redirectFor(userType models.UserType) string {
	if userType == models.UserTypePhilosopher {
		return "/philosopher-profile"
	}
	return "/profile"
}

// SendOTP issues a fresh verification code for an unregistered email.
// The record is written before the mail goes out, so a delivery failure
// leaves a valid code the user never saw; the error is surfaced rather
// than hidden and a resend overwrites the record.
func SendOTP(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email is required",
		})
	}

	var existing models.User
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "User already exists",
		})
	}

	code := utils.GenerateOTP()
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send OTP",
		})
	}
	validUntil := time.Now().Add(otpValidity)

	var record models.Otp
	err = db.DB.Where("email = ?", input.Email).First(&record).Error
	switch {
	case err == nil:
		// Resend overwrites code and expiry in place; attempts carry over.
		err = db.DB.Model(&record).Updates(map[string]interface{}{
			"code":        string(hashed),
			"valid_until": validUntil,
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = models.Otp{
			Email:      input.Email,
			Code:       string(hashed),
			ValidUntil: validUntil,
		}
		err = db.DB.Create(&record).Error
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send OTP",
		})
	}

	if err := utils.SendEmail(input.Email, "Otp Verification Email", utils.OTPMailBody(code)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error sending email",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent successfully",
	})
}

// VerifyOTP checks a candidate code. A matching code is single-use: the
// record is deleted on success. Wrong codes increment the attempts counter
// atomically; crossing the retry limit blocks the email for 24 hours.
func VerifyOTP(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.BodyParser(&input); err != nil || input.Email == "" || input.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email and OTP are required",
		})
	}

	var record models.Otp
	err := db.DB.Where("email = ?", input.Email).First(&record).Error
	if err != nil || record.ValidUntil.Before(time.Now().Add(2*time.Second)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "OTP expired or not found",
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(record.Code), []byte(input.OTP)) != nil {
		// Atomic increment; two racing wrong submissions cannot lose an update.
		if err := db.DB.Model(&models.Otp{}).Where("id = ?", record.ID).
			UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Verification failed",
			})
		}
		if err := db.DB.First(&record, record.ID).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Verification failed",
			})
		}

		if record.Attempts > otpMaxRetries {
			// Conditional update so the lockout transition fires exactly once.
			blockedUntil := time.Now().Add(otpBlock)
			db.DB.Model(&models.Otp{}).
				Where("id = ? AND attempts > ? AND blocked_until IS NULL", record.ID, otpMaxRetries).
				Update("blocked_until", blockedUntil)

			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Maximum attempts exceeded. Account blocked for 24 hours",
			})
		}

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("Invalid OTP. %d attempts remaining", otpMaxRetries-record.Attempts),
		})
	}

	if err := db.DB.Delete(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Verification failed",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP verified successfully",
	})
}

// Signup creates the account after the email was verified. The OTP store is
// not consulted again here; the flow trusts the client completed verify-otp.
func Signup(c *fiber.Ctx) error {
	var input struct {
		Name      string   `json:"name"`
		Email     string   `json:"email"`
		Password  string   `json:"password"`
		Phone     string   `json:"phone"`
		UserType  string   `json:"userType"`
		Expertise []string `json:"expertise"`
		Bio       string   `json:"bio"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.Name == "" || input.Password == "" || input.Phone == "" || input.UserType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "All required fields must be provided",
		})
	}

	userType := models.UserType(input.UserType)
	if !userType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user type",
		})
	}

	var existing models.User
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "User already exists",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Phone:    input.Phone,
		UserType: userType,
	}
	if userType == models.UserTypePhilosopher {
		user.Expertise = input.Expertise
		user.Bio = input.Bio
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	token, err := signToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"userType": user.UserType,
		},
		"redirectTo": redirectFor(user.UserType),
	})
}

// Login handles password authentication and issues the session token.
func Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "All fields are required",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	token, err := signToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"userType": user.UserType,
		},
		"redirectTo": redirectFor(user.UserType),
	})
}

// GetProfile returns the authenticated user's profile along with the ids of
// everything they authored.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}

	var doubtIDs, responseIDs, discussionIDs []uint
	db.DB.Model(&models.Doubt{}).Where("user_id = ?", userID).Pluck("id", &doubtIDs)
	db.DB.Model(&models.Response{}).Where("user_id = ?", userID).Pluck("id", &responseIDs)
	db.DB.Model(&models.Discussion{}).Where("user_id = ?", userID).Pluck("id", &discussionIDs)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile retrieved successfully",
		"user": fiber.Map{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"phone":       user.Phone,
			"userType":    user.UserType,
			"expertise":   user.Expertise,
			"bio":         user.Bio,
			"createdAt":   user.CreatedAt,
			"doubts":      doubtIDs,
			"responses":   responseIDs,
			"discussions": discussionIDs,
		},
	})
}
