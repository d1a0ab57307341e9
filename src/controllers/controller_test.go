package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
	"github.com/nursetov/pixnest/src/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Follow{}, &models.Post{},
		&models.Like{}, &models.Comment{}, &models.Notification{},
	))
	lib.DB = db

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.PostRoutes(app)
	routes.NotificationRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func signup(t *testing.T, app *fiber.App, username string) (token string, userID uint) {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup", "", fiber.Map{
		"name":     "Test " + username,
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token = body["token"].(string)

	var user models.User
	require.NoError(t, lib.DB.Where("username = ?", username).First(&user).Error)
	return token, user.ID
}

func TestSignupLoginMe(t *testing.T) {
	app := setupApp(t)

	token, _ := signup(t, app, "alice")
	require.NotEmpty(t, token)

	// Duplicate username is rejected.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup", "", fiber.Map{
		"name":     "Alice Again",
		"username": "alice",
		"email":    "alice2@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loginToken := body["token"].(string)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/auth/me", loginToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body["username"])
	_, leaked := body["password"]
	assert.False(t, leaked, "password hash must never be serialized")

	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFollowEndpoints(t *testing.T) {
	app := setupApp(t)

	aliceToken, aliceID := signup(t, app, "alice")
	_, bobID := signup(t, app, "bob")

	resp, _ := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow", bobID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Self-follow is an explicit error.
	resp, _ = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow", aliceID), aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Anonymous profile read still works, with is_following false.
	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/users/bob", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["followers_count"])
	assert.Equal(t, false, body["is_following"])

	// The follower sees is_following true.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/users/bob", aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["is_following"])

	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/v1/users/%d/follow", bobID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/users/bob", aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["followers_count"])
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	app := setupApp(t)

	aliceToken, _ := signup(t, app, "alice")
	bobToken, _ := signup(t, app, "bob")

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/posts/", bobToken, fiber.Map{
		"image":   "/uploads/sunset.jpg",
		"caption": "sunset",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	postID := uint(body["id"].(float64))

	// Missing image is a validation failure.
	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/posts/", bobToken, fiber.Map{
		"caption": "no image",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "image", body["field"])

	resp, body = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/posts/%d/like", postID), aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["liked"])

	resp, _ = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/posts/%d/comment", postID), aliceToken, fiber.Map{
			"text": "beautiful",
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/posts/%d", postID), aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["likes_count"])
	assert.Equal(t, float64(1), body["comments_count"])
	assert.Equal(t, true, body["is_liked"])

	// Only the author may delete.
	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/v1/posts/%d", postID), aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/v1/posts/%d", postID), bobToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/posts/%d", postID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNotificationEndpoints(t *testing.T) {
	app := setupApp(t)

	aliceToken, _ := signup(t, app, "alice")
	bobToken, bobID := signup(t, app, "bob")

	resp, _ := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow", bobID), aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/", nil)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	rawResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rawResp.StatusCode)

	var notifications []map[string]interface{}
	require.NoError(t, json.NewDecoder(rawResp.Body).Decode(&notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, "follow", notifications[0]["type"])
	assert.Equal(t, false, notifications[0]["is_read"])

	notificationID := uint(notifications[0]["id"].(float64))

	resp, body := doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/v1/notifications/%d/read", notificationID), bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["is_read"])

	// Alice cannot delete bob's notification.
	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/v1/notifications/%d", notificationID), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/v1/notifications/%d", notificationID), bobToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
