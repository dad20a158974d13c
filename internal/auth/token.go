package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shopfront-labs/storefront/internal/config"
	"github.com/shopfront-labs/storefront/internal/session"
)

// TokenCookie writes, clears and reads the session token cookie.
// The cookie is deliberately readable by page scripts.
type TokenCookie struct {
	name   string
	maxAge int
	secure bool
}

// NewTokenCookie builds the cookie helper from configuration.
func NewTokenCookie(cfg config.SessionConfig) TokenCookie {
	name := cfg.CookieName
	if name == "" {
		name = "token"
	}
	maxAge := cfg.MaxAgeSeconds
	if maxAge <= 0 {
		maxAge = 60 * 60 * 2
	}
	return TokenCookie{name: name, maxAge: maxAge, secure: cfg.Secure}
}

// Name returns the cookie name.
func (tc TokenCookie) Name() string { return tc.name }

// Set stores token with the configured max-age.
func (tc TokenCookie) Set(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     tc.name,
		Value:    token,
		Path:     "/",
		MaxAge:   tc.maxAge,
		Secure:   tc.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Clear expires the cookie immediately. fasthttp never writes Max-Age=0,
// so removal is signalled with an epoch Expires attribute instead.
func (tc TokenCookie) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     tc.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   tc.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Source exposes the request's cookie as a session.Provider.
func (tc TokenCookie) Source(c *fiber.Ctx) session.Provider {
	return session.ProviderFunc(func() (string, bool) {
		v := c.Cookies(tc.name)
		return v, v != ""
	})
}

// Resolve reads and classifies the request's session.
func (tc TokenCookie) Resolve(c *fiber.Ctx) session.Session {
	return session.Resolve(tc.Source(c))
}
