package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/routes"
	"github.com/meinhoongagan/philosophy-hub/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// setupApp wires the full route table against a fresh on-disk sqlite
// database and stubs out the mail transport.
func setupApp(t *testing.T) (*fiber.App, *mailbox) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Otp{},
		&models.Tag{},
		&models.Content{},
		&models.ContentComment{},
		&models.Doubt{},
		&models.Response{},
		&models.Discussion{},
		&models.Comment{},
		&models.Seminar{},
	))
	db.DB = gdb

	box := &mailbox{}
	orig := utils.SendEmail
	utils.SendEmail = func(to, subject, body string) error {
		if box.fail {
			return errSMTP
		}
		box.messages = append(box.messages, sentMail{To: to, Subject: subject, Body: body})
		return nil
	}
	t.Cleanup(func() { utils.SendEmail = orig })

	app := fiber.New()
	routes.SetupAuthRoutes(app)
	routes.SetupContentRoutes(app)
	routes.SetupDoubtRoutes(app)
	routes.SetupResponseRoutes(app)
	routes.SetupDiscussionRoutes(app)
	routes.SetupCommentRoutes(app)
	routes.SetupSeminarRoutes(app)
	routes.SetupUploadRoutes(app)
	return app, box
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type mailbox struct {
	messages []sentMail
	fail     bool
}

func (m *mailbox) last(t *testing.T) sentMail {
	t.Helper()
	require.NotEmpty(t, m.messages)
	return m.messages[len(m.messages)-1]
}

var errSMTP = &smtpError{}

type smtpError struct{}

func (*smtpError) Error() string { return "dial tcp: connection refused" }

func createUser(t *testing.T, email string, userType models.UserType) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		Phone:    "1234567890",
		UserType: userType,
	}
	require.NoError(t, db.DB.Create(user).Error)
	return user
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":       user.ID,
		"userType": string(user.UserType),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// api performs a JSON request and decodes the response envelope.
func api(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func mustStatus(t *testing.T, got int, want int, payload map[string]interface{}) {
	t.Helper()
	require.Equal(t, want, got, "unexpected status, payload: %v", payload)
}
