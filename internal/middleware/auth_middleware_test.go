package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shop-api/internal/model"
	"go-shop-api/pkg/jwt"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/any", RequireAuth(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals("user_email")})
	})
	app.Get("/admin", RequireAuth(), RequireRole(model.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func request(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRequireAuth(t *testing.T) {
	app := newProtectedApp()

	token, err := jwt.GenerateToken(uuid.New(), "jane@example.com", []string{model.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, 401, request(t, app, "/any", "").StatusCode)
	assert.Equal(t, 401, request(t, app, "/any", "Token abc").StatusCode)
	assert.Equal(t, 401, request(t, app, "/any", "Bearer garbage").StatusCode)
	assert.Equal(t, 200, request(t, app, "/any", "Bearer "+token).StatusCode)
}

func TestRequireRole(t *testing.T) {
	app := newProtectedApp()

	userToken, err := jwt.GenerateToken(uuid.New(), "jane@example.com", []string{model.RoleUser})
	require.NoError(t, err)
	adminToken, err := jwt.GenerateToken(uuid.New(), "root@example.com", []string{model.RoleUser, model.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, 403, request(t, app, "/admin", "Bearer "+userToken).StatusCode)
	assert.Equal(t, 200, request(t, app, "/admin", "Bearer "+adminToken).StatusCode)
}
