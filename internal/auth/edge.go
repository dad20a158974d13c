package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

var edgeBypassPrefixes = []string{
	"/_next",
	"/login",
	"/register",
	"/static",
	"/health",
	"/metrics",
}

// EdgeBypassed reports whether path is served without the presence check.
func EdgeBypassed(path string) bool {
	if path == "/" || strings.Contains(path, ".") {
		return true
	}
	for _, prefix := range edgeBypassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// EdgeGate redirects to the login page when a non-bypassed path is requested
// without a token cookie. Only presence is checked; the per-view guard decides
// whether the token is any good.
func EdgeGate(cookie TokenCookie, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if EdgeBypassed(c.Path()) {
			return c.Next()
		}
		if c.Cookies(cookie.Name()) == "" {
			return c.Redirect(loginPath, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
