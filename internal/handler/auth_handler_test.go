package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/model"
	"go-shop-api/internal/service"
)

type stubAuthService struct {
	registerResp *service.AuthResponse
	registerErr  error
	loginResp    *service.AuthResponse
	loginErr     error
}

func (s *stubAuthService) Register(req *service.RegisterRequest) (*service.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(email, password string) (*service.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func newAuthApp(svc service.AuthService) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(svc)
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterEndpoint(t *testing.T) {
	svc := &stubAuthService{
		registerResp: &service.AuthResponse{
			User:  model.UserResponse{ID: uuid.New(), Email: "jane@example.com", Roles: []string{model.RoleUser}},
			Token: "a.b.c",
		},
	}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"email": "jane@example.com", "password": "secret42", "full_name": "Jane",
	})
	assert.Equal(t, 201, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.Contains(t, string(raw), "jane@example.com")
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	svc := &stubAuthService{registerErr: apperr.ErrDuplicateEntry}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/auth/register", fiber.Map{"email": "jane@example.com"})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: apperr.ErrInvalidCredentials}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/auth/login", fiber.Map{"email": "jane@example.com", "password": "nope"})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLoginEndpointRequiresFields(t *testing.T) {
	app := newAuthApp(&stubAuthService{})

	resp := postJSON(t, app, "/auth/login", fiber.Map{"email": "jane@example.com"})
	assert.Equal(t, 400, resp.StatusCode)
}
