package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/philosophy-hub/middleware"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Post("/whoami", middleware.Protected(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":  true,
			"userID":   c.Locals("userID"),
			"userType": c.Locals("userType"),
		})
	})
	app.Post("/philosophers-only", middleware.Protected(),
		middleware.RequireRole(models.UserTypePhilosopher, "Philosophers only"),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"success": true})
		})
	return app
}

func signToken(t *testing.T, id interface{}, userType string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"id": id, "userType": userType, "exp": exp.Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func request(t *testing.T, app *fiber.App, header string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	return requestPath(t, app, "/whoami", header, body)
}

func requestPath(t *testing.T, app *fiber.App, path, header string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	app := protectedApp(t)

	status, payload := request(t, app, "", nil)
	assert.Equal(t, 401, status)
	assert.Equal(t, "Unauthorized", payload["message"])
}

func TestProtectedRejectsMalformedToken(t *testing.T) {
	app := protectedApp(t)

	status, payload := request(t, app, "Bearer not.a.token", nil)
	assert.Equal(t, 401, status)
	assert.Equal(t, "Unauthorized", payload["message"])
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	app := protectedApp(t)
	token := signToken(t, 7, "normal", time.Now().Add(-time.Hour))

	status, payload := request(t, app, "Bearer "+token, nil)
	assert.Equal(t, 401, status)
	assert.Equal(t, "Unauthorized", payload["message"])
}

func TestProtectedRejectsWrongKey(t *testing.T) {
	app := protectedApp(t)
	claims := jwt.MapClaims{"id": 7, "userType": "normal", "exp": time.Now().Add(time.Hour).Unix()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	status, payload := request(t, app, "Bearer "+forged, nil)
	assert.Equal(t, 401, status)
	assert.Equal(t, "Unauthorized", payload["message"])
}

func TestProtectedSetsLocals(t *testing.T) {
	app := protectedApp(t)
	token := signToken(t, 42, "philosopher", time.Now().Add(time.Hour))

	status, payload := request(t, app, "Bearer "+token, nil)
	assert.Equal(t, 200, status)
	assert.EqualValues(t, 42, payload["userID"])
	assert.Equal(t, "philosopher", payload["userType"])
}

func TestProtectedAcceptsStringID(t *testing.T) {
	app := protectedApp(t)
	token := signToken(t, "42", "normal", time.Now().Add(time.Hour))

	status, payload := request(t, app, "Bearer "+token, nil)
	assert.Equal(t, 200, status)
	assert.EqualValues(t, 42, payload["userID"])
}

func TestProtectedAcceptsBodyToken(t *testing.T) {
	app := protectedApp(t)
	token := signToken(t, 9, "normal", time.Now().Add(time.Hour))

	status, payload := request(t, app, "", map[string]string{"token": token})
	assert.Equal(t, 200, status)
	assert.EqualValues(t, 9, payload["userID"])
}

func TestRequireRoleBlocksWrongUserType(t *testing.T) {
	app := protectedApp(t)

	normal := signToken(t, 1, "normal", time.Now().Add(time.Hour))
	status, payload := requestPath(t, app, "/philosophers-only", "Bearer "+normal, nil)
	assert.Equal(t, 403, status)
	assert.Equal(t, "Philosophers only", payload["message"])

	philosopher := signToken(t, 2, "philosopher", time.Now().Add(time.Hour))
	status, payload = requestPath(t, app, "/philosophers-only", "Bearer "+philosopher, nil)
	assert.Equal(t, 200, status)
	assert.Equal(t, true, payload["success"])
}
