package middleware

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "philosophy_hub_secret" // Replace with secure key in production
	}
	return secret
}

// Protected validates the bearer token and stores the caller's identity in
// locals. A token supplied in the request body is accepted as a fallback
// when the Authorization header is absent.
func Protected() fiber.Handler {
	jwtHandler := jwtware.New(jwtware.Config{
		SigningKey:   []byte(jwtSecret()),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			userToken := c.Locals("user")
			if userToken == nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false,
					"message": "Token is required",
				})
			}

			token, ok := userToken.(*jwt.Token)
			if !ok {
				return jwtError(c, fmt.Errorf("unexpected token type"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return jwtError(c, fmt.Errorf("unexpected claims type"))
			}

			userID, err := extractUserID(claims)
			if err != nil {
				return jwtError(c, err)
			}
			userType, _ := claims["userType"].(string)

			c.Locals("userID", userID)
			c.Locals("userType", userType)

			return c.Next()
		},
	})

	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			var body struct {
				Token string `json:"token"`
			}
			if err := c.BodyParser(&body); err == nil && body.Token != "" {
				c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+body.Token)
			}
		}
		return jwtHandler(c)
	}
}

// extractUserID handles multiple potential formats of user ID in token
func extractUserID(claims jwt.MapClaims) (uint, error) {
	idVal := claims["id"]
	if idVal == nil {
		return 0, fmt.Errorf("no ID found in claims")
	}

	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse ID string: %v", err)
		}
		return uint(parsed), nil
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unsupported ID type: %T", v)
	}
}

// jwtError answers every verification failure the same way; the specific
// cryptographic reason stays on the server.
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "Unauthorized",
	})
}
