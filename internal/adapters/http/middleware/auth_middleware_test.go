package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snp-mealhub/internal/config"
	"snp-mealhub/internal/pkg/jwt"
)

func testApp(cfg *config.Config, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware(cfg)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/protected", handlers...)
	return app
}

func authConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", TokenTTLHours: 1},
	}
}

func TestAuthMiddlewareHeaders(t *testing.T) {
	cfg := authConfig()
	app := testApp(cfg)

	token, err := jwt.Generate(1, "admin", "admin", cfg.JWT.Secret, 1)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
	}{
		{"bearer header", "Authorization", "Bearer " + token, 200},
		{"legacy header", "x-auth-token", token, 200},
		{"missing token", "", "", 401},
		{"malformed bearer", "Authorization", token, 401},
		{"garbage token", "x-auth-token", "garbage", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	cfg := authConfig()
	app := testApp(cfg)

	token, err := jwt.Generate(1, "admin", "admin", cfg.JWT.Secret, -1)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddlewareRejectsUnknownRoleClaim(t *testing.T) {
	cfg := authConfig()
	app := testApp(cfg)

	token, err := jwt.Generate(1, "ghost", "superuser", cfg.JWT.Secret, 1)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRoleMiddleware(t *testing.T) {
	cfg := authConfig()

	adminToken, err := jwt.Generate(1, "admin", "admin", cfg.JWT.Secret, 1)
	require.NoError(t, err)
	deoToken, err := jwt.Generate(2, "deo0", "deo", cfg.JWT.Secret, 1)
	require.NoError(t, err)

	// Alias spelling in the token resolves to the canonical role.
	aliasToken, err := jwt.Generate(3, "vo0", "verificationOfficer", cfg.JWT.Secret, 1)
	require.NoError(t, err)

	tests := []struct {
		name       string
		gate       fiber.Handler
		token      string
		wantStatus int
	}{
		{"admin passes admin gate", AdminOnly(), adminToken, 200},
		{"deo blocked by admin gate", AdminOnly(), deoToken, 403},
		{"deo passes data-entry gate", DataEntryOnly(), deoToken, 200},
		{"admin blocked by data-entry gate", DataEntryOnly(), adminToken, 403},
		{"alias role passes verification gate", VerificationOnly(), aliasToken, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(cfg, tt.gate)

			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
