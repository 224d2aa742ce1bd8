package controllers_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSeminar(t *testing.T, app *fiber.App, token string, extra map[string]interface{}) uint {
	t.Helper()
	body := map[string]interface{}{
		"title":       "Stoicism in Practice",
		"description": "An evening on Epictetus",
		"place":       "Main Hall",
		"date":        time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"startTime":   "18:00",
		"endTime":     "20:00",
	}
	for k, v := range extra {
		body[k] = v
	}
	status, payload := api(t, app, "POST", "/api/seminars/create", body, token)
	mustStatus(t, status, 201, payload)
	seminar, _ := payload["seminar"].(map[string]interface{})
	require.NotNil(t, seminar)
	return uint(seminar["ID"].(float64))
}

func TestCreateSeminarRequiresPhilosopher(t *testing.T) {
	app, _ := setupApp(t)
	normal := createUser(t, "reader@example.com", models.UserTypeNormal)

	status, payload := api(t, app, "POST", "/api/seminars/create", map[string]interface{}{
		"title": "Nope",
	}, tokenFor(t, normal))
	mustStatus(t, status, 403, payload)
	assert.Equal(t, "Only philosophers can create seminars", payload["message"])
}

func TestCreateSeminarDefaults(t *testing.T) {
	app, _ := setupApp(t)
	host := createUser(t, "host@example.com", models.UserTypePhilosopher)
	id := createSeminar(t, app, tokenFor(t, host), nil)

	status, payload := api(t, app, "GET", fmt.Sprintf("/api/seminars/%d", id), nil, "")
	mustStatus(t, status, 200, payload)
	seminar, _ := payload["seminar"].(map[string]interface{})
	require.NotNil(t, seminar)
	assert.Equal(t, "upcoming", seminar["status"])
	assert.Equal(t, models.DefaultSeminarImage, seminar["image"])
	assert.EqualValues(t, 50, seminar["maxAttendees"])
	assert.Equal(t, "Test User", seminar["hostName"])
}

func TestCreateSeminarValidation(t *testing.T) {
	app, _ := setupApp(t)
	host := createUser(t, "host@example.com", models.UserTypePhilosopher)

	status, payload := api(t, app, "POST", "/api/seminars/create", map[string]interface{}{
		"title":       "Half-filled",
		"description": "missing place and times",
	}, tokenFor(t, host))
	mustStatus(t, status, 400, payload)
	assert.Equal(t, "All required fields must be provided", payload["message"])
}

func TestRegisterForSeminar(t *testing.T) {
	app, _ := setupApp(t)
	host := createUser(t, "host@example.com", models.UserTypePhilosopher)
	attendee := createUser(t, "attendee@example.com", models.UserTypeNormal)
	id := createSeminar(t, app, tokenFor(t, host), nil)
	path := fmt.Sprintf("/api/seminars/%d/register", id)
	token := tokenFor(t, attendee)

	status, payload := api(t, app, "POST", path, nil, token)
	mustStatus(t, status, 200, payload)
	assert.Equal(t, "Successfully registered for seminar", payload["message"])

	status, payload = api(t, app, "POST", path, nil, token)
	mustStatus(t, status, 400, payload)
	assert.Equal(t, "Already registered for this seminar", payload["message"])

	status, payload = api(t, app, "GET", fmt.Sprintf("/api/seminars/%d", id), nil, "")
	mustStatus(t, status, 200, payload)
	seminar, _ := payload["seminar"].(map[string]interface{})
	attendees, _ := seminar["attendees"].([]interface{})
	assert.Len(t, attendees, 1)
}

func TestRegisterForSeminarCapacity(t *testing.T) {
	app, _ := setupApp(t)
	host := createUser(t, "host@example.com", models.UserTypePhilosopher)
	first := createUser(t, "first@example.com", models.UserTypeNormal)
	second := createUser(t, "second@example.com", models.UserTypeNormal)
	id := createSeminar(t, app, tokenFor(t, host), map[string]interface{}{"maxAttendees": 1})
	path := fmt.Sprintf("/api/seminars/%d/register", id)

	status, payload := api(t, app, "POST", path, nil, tokenFor(t, first))
	mustStatus(t, status, 200, payload)

	status, payload = api(t, app, "POST", path, nil, tokenFor(t, second))
	mustStatus(t, status, 400, payload)
	assert.Equal(t, "Seminar is full", payload["message"])
}

func TestUpdateSeminarHostOnly(t *testing.T) {
	app, _ := setupApp(t)
	host := createUser(t, "host@example.com", models.UserTypePhilosopher)
	other := createUser(t, "other@example.com", models.UserTypePhilosopher)
	id := createSeminar(t, app, tokenFor(t, host), nil)
	path := fmt.Sprintf("/api/seminars/%d", id)

	status, payload := api(t, app, "PUT", path, map[string]interface{}{"title": "Hijacked"}, tokenFor(t, other))
	mustStatus(t, status, 403, payload)
	assert.Equal(t, "You can only modify your own seminar", payload["message"])

	status, payload = api(t, app, "PUT", path, map[string]interface{}{
		"title":  "Stoicism Revisited",
		"status": "cancelled",
	}, tokenFor(t, host))
	mustStatus(t, status, 200, payload)
	seminar, _ := payload["seminar"].(map[string]interface{})
	require.NotNil(t, seminar)
	assert.Equal(t, "Stoicism Revisited", seminar["title"])
	assert.Equal(t, "cancelled", seminar["status"])
	assert.Equal(t, "Main Hall", seminar["place"], "omitted fields keep their values")
}

func TestDeleteSeminarHostOnly(t *testing.T) {
	app, _ := setupApp(t)
	host := createUser(t, "host@example.com", models.UserTypePhilosopher)
	other := createUser(t, "other@example.com", models.UserTypeNormal)
	id := createSeminar(t, app, tokenFor(t, host), nil)
	path := fmt.Sprintf("/api/seminars/%d", id)

	status, payload := api(t, app, "DELETE", path, nil, tokenFor(t, other))
	mustStatus(t, status, 403, payload)

	status, payload = api(t, app, "DELETE", path, nil, tokenFor(t, host))
	mustStatus(t, status, 200, payload)
	assert.Equal(t, "Seminar deleted successfully", payload["message"])

	status, payload = api(t, app, "GET", path, nil, "")
	mustStatus(t, status, 404, payload)
}

func TestGetMySeminars(t *testing.T) {
	app, _ := setupApp(t)
	host := createUser(t, "host@example.com", models.UserTypePhilosopher)
	other := createUser(t, "other@example.com", models.UserTypePhilosopher)
	createSeminar(t, app, tokenFor(t, host), nil)
	createSeminar(t, app, tokenFor(t, other), map[string]interface{}{"title": "Another Evening"})

	status, payload := api(t, app, "GET", "/api/seminars/my/seminars", nil, tokenFor(t, host))
	mustStatus(t, status, 200, payload)
	seminars, _ := payload["seminars"].([]interface{})
	require.Len(t, seminars, 1)
	first, _ := seminars[0].(map[string]interface{})
	assert.Equal(t, "Stoicism in Practice", first["title"])
}

func TestGetAllSeminarsFilters(t *testing.T) {
	app, _ := setupApp(t)
	host := createUser(t, "host@example.com", models.UserTypePhilosopher)
	token := tokenFor(t, host)
	upcoming := createSeminar(t, app, token, nil)
	cancelled := createSeminar(t, app, token, map[string]interface{}{"title": "Called Off"})

	status, payload := api(t, app, "PUT", fmt.Sprintf("/api/seminars/%d", cancelled),
		map[string]interface{}{"status": "cancelled"}, token)
	mustStatus(t, status, 200, payload)

	status, payload = api(t, app, "GET", "/api/seminars/?upcoming=true", nil, "")
	mustStatus(t, status, 200, payload)
	seminars, _ := payload["seminars"].([]interface{})
	require.Len(t, seminars, 1)
	first, _ := seminars[0].(map[string]interface{})
	assert.EqualValues(t, upcoming, first["ID"])

	status, payload = api(t, app, "GET", "/api/seminars/?status=cancelled", nil, "")
	mustStatus(t, status, 200, payload)
	seminars, _ = payload["seminars"].([]interface{})
	require.Len(t, seminars, 1)
	first, _ = seminars[0].(map[string]interface{})
	assert.EqualValues(t, cancelled, first["ID"])
}
