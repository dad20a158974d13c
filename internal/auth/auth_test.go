package auth

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront-labs/storefront/internal/config"
	"github.com/shopfront-labs/storefront/internal/session"
)

func tokenWith(payload string) string {
	return "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}

var (
	adminToken    = tokenWith(`{"id":1,"username":"ana","type":true}`)
	customerToken = tokenWith(`{"id":7,"username":"leo","type":false}`)
)

func TestDecide(t *testing.T) {
	admin := session.Resolve(session.StaticToken(adminToken))
	customer := session.Resolve(session.StaticToken(customerToken))
	missing := session.Resolve(session.StaticToken(""))
	corrupt := session.Resolve(session.StaticToken("not-a-token"))

	cases := []struct {
		name     string
		req      Requirement
		s        session.Session
		allow    bool
		redirect string
		reason   string
	}{
		{"admin view, anonymous", RequireAdmin, missing, false, "/login", ReasonMissingSession},
		{"admin view, corrupt", RequireAdmin, corrupt, false, "/login", ReasonCorruptSession},
		{"admin view, customer", RequireAdmin, customer, false, "/dashboard", ReasonRoleMismatch},
		{"admin view, admin", RequireAdmin, admin, true, "", ReasonAllowed},
		{"customer view, anonymous", RequireAuthenticated, missing, false, "/login", ReasonMissingSession},
		{"customer view, corrupt", RequireAuthenticated, corrupt, false, "/login", ReasonCorruptSession},
		{"customer view, customer", RequireAuthenticated, customer, true, "", ReasonAllowed},
		{"customer view, admin", RequireAuthenticated, admin, true, "", ReasonAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.req, tc.s, DefaultPaths)
			assert.Equal(t, tc.allow, d.Allow)
			assert.Equal(t, tc.redirect, d.Redirect)
			assert.Equal(t, tc.reason, d.Reason)
		})
	}
}

func TestLandingFor(t *testing.T) {
	assert.Equal(t, "/admin/products", LandingFor(session.Resolve(session.StaticToken(adminToken)), DefaultPaths))
	assert.Equal(t, "/dashboard", LandingFor(session.Resolve(session.StaticToken(customerToken)), DefaultPaths))
	assert.Equal(t, "/login", LandingFor(session.Resolve(session.StaticToken("")), DefaultPaths))
}

func newGuardApp(t *testing.T) (*fiber.App, *Guard) {
	t.Helper()
	guard := NewGuard(NewTokenCookie(config.SessionConfig{}), DefaultPaths, nil, nil)

	app := fiber.New()
	app.Use(EdgeGate(guard.Cookie(), DefaultPaths.Login))
	app.Get("/cart", guard.Require(RequireAuthenticated), func(c *fiber.Ctx) error {
		s, ok := SessionFromContext(c)
		require.True(t, ok)
		return c.SendString("cart:" + s.Level.String())
	})
	app.Get("/admin/products", guard.Require(RequireAdmin), func(c *fiber.Ctx) error {
		return c.SendString("products:" + guard.Session(c).Username())
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		guard.Cookie().Clear(c)
		return c.Redirect(DefaultPaths.Login, fiber.StatusSeeOther)
	})
	return app, guard
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGuard_NoCookieOnCartRedirectsToLogin(t *testing.T) {
	app, _ := newGuardApp(t)

	resp := get(t, app, "/cart", "")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGuard_CustomerOnAdminViewRedirectsToDashboard(t *testing.T) {
	app, _ := newGuardApp(t)

	resp := get(t, app, "/admin/products", tokenWith(`{"type":false}`))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestGuard_CorruptTokenRedirectsToLogin(t *testing.T) {
	app, _ := newGuardApp(t)

	// Passes the edge gate (present) but fails the guard (undecodable).
	resp := get(t, app, "/admin/products", "garbage")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGuard_AdminAllowed(t *testing.T) {
	app, _ := newGuardApp(t)

	resp := get(t, app, "/admin/products", adminToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = get(t, app, "/cart", adminToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	app, _ := newGuardApp(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: customerToken})
	resp, err := app.Test(req)
	require.NoError(t, err)

	var cleared *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "token" {
			cleared = ck
		}
	}
	require.NotNil(t, cleared)
	header := resp.Header.Get("Set-Cookie")
	assert.Contains(t, header, "expires=Thu, 01 Jan 1970 00:00:00 GMT")
	assert.NotContains(t, strings.ToLower(header), "max-age")
	assert.Empty(t, cleared.Value)
	assert.Equal(t, "/", cleared.Path)
	assert.True(t, cleared.Expires.Before(time.Unix(86400, 0)))

	// The browser now sends the emptied cookie; resolution is anonymous.
	resp = get(t, app, "/cart", cleared.Value)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Equal(t, session.Anonymous, session.Resolve(session.StaticToken(cleared.Value)).Level)
}

func TestTokenCookie_Set(t *testing.T) {
	tc := NewTokenCookie(config.SessionConfig{})
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tc.Set(c, adminToken)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp := get(t, app, "/", "")
	var set *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "token" {
			set = ck
		}
	}
	require.NotNil(t, set)
	assert.Equal(t, adminToken, set.Value)
	assert.Equal(t, 7200, set.MaxAge)
	assert.Equal(t, "/", set.Path)
	assert.False(t, set.HttpOnly)
}

func TestEdgeBypassed(t *testing.T) {
	bypassed := []string{"/", "/login", "/login/", "/register", "/favicon.ico", "/static/app.css",
		"/_next/data", "/health/live", "/metrics", "/products/robots.txt"}
	for _, p := range bypassed {
		assert.True(t, EdgeBypassed(p), p)
	}
	gated := []string{"/dashboard", "/cart", "/cart/history", "/admin", "/admin/products/3/edit"}
	for _, p := range gated {
		assert.False(t, EdgeBypassed(p), p)
	}
}

func TestEdgeGate_PresenceOnly(t *testing.T) {
	app := fiber.New()
	app.Use(EdgeGate(NewTokenCookie(config.SessionConfig{}), "/login"))
	app.Get("/dashboard", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/login", func(c *fiber.Ctx) error { return c.SendString("login") })

	resp := get(t, app, "/dashboard", "")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = get(t, app, "/dashboard", "anything-at-all")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = get(t, app, "/login", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
