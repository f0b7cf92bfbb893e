package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snp-mealhub/internal/config"
)

func csrfApp(enforcement string) *fiber.App {
	cfg := &config.Config{
		CSRFEnforcement: enforcement,
		Cookie:          config.CookieConfig{SameSite: "lax"},
	}
	app := fiber.New()
	app.Use(CSRFMiddleware(cfg))
	app.Get("/token", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/submit", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func csrfCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "csrf_token" {
			return cookie
		}
	}
	t.Fatal("csrf_token cookie not set")
	return nil
}

func TestCSRFSafeMethodSetsCookie(t *testing.T) {
	app := csrfApp(config.CSRFStrict)

	resp, err := app.Test(httptest.NewRequest("GET", "/token", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, csrfCookie(t, resp).Value)
}

func TestCSRFStrictRejectsMissingToken(t *testing.T) {
	app := csrfApp(config.CSRFStrict)

	resp, err := app.Test(httptest.NewRequest("POST", "/submit", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestCSRFStrictAcceptsMatchingPair(t *testing.T) {
	app := csrfApp(config.CSRFStrict)

	seed, err := app.Test(httptest.NewRequest("GET", "/token", nil))
	require.NoError(t, err)
	cookie := csrfCookie(t, seed)

	req := httptest.NewRequest("POST", "/submit", nil)
	req.AddCookie(cookie)
	req.Header.Set("X-CSRF-Token", cookie.Value)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestCSRFStrictRejectsMismatchedToken(t *testing.T) {
	app := csrfApp(config.CSRFStrict)

	seed, err := app.Test(httptest.NewRequest("GET", "/token", nil))
	require.NoError(t, err)
	cookie := csrfCookie(t, seed)

	req := httptest.NewRequest("POST", "/submit", nil)
	req.AddCookie(cookie)
	req.Header.Set("X-CSRF-Token", "not-the-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestCSRFAdvisoryContinuesOnFailure(t *testing.T) {
	app := csrfApp(config.CSRFAdvisory)

	// Missing token: logged, not blocked.
	resp, err := app.Test(httptest.NewRequest("POST", "/submit", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Mismatched token: same posture.
	seed, err := app.Test(httptest.NewRequest("GET", "/token", nil))
	require.NoError(t, err)
	cookie := csrfCookie(t, seed)

	req := httptest.NewRequest("POST", "/submit", nil)
	req.AddCookie(cookie)
	req.Header.Set("X-CSRF-Token", "wrong")

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
