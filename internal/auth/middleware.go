package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/shopfront-labs/storefront/internal/observability"
	"github.com/shopfront-labs/storefront/internal/session"
)

const sessionKey = "storefront_session"

// Guard resolves the caller's session on every protected view and redirects
// before the handler runs when the session does not meet the view's requirement.
// Nothing is cached between requests, so a cleared or expired cookie takes
// effect on the very next navigation.
type Guard struct {
	cookie  TokenCookie
	paths   Paths
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewGuard constructs a guard.
func NewGuard(cookie TokenCookie, paths Paths, logger *zap.Logger, metrics *observability.Metrics) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{cookie: cookie, paths: paths, logger: logger, metrics: metrics}
}

// Cookie returns the token cookie helper the guard reads from.
func (g *Guard) Cookie() TokenCookie { return g.cookie }

// Paths returns the landing pages used for redirects.
func (g *Guard) Paths() Paths { return g.paths }

// Require returns a handler enforcing req.
func (g *Guard) Require(req Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := g.Session(c)
		decision := Decide(req, s, g.paths)
		g.metrics.RecordGuard(req.String(), decision.Reason)

		if !decision.Allow {
			g.logger.Debug("route guard redirect",
				zap.String("path", c.Path()),
				zap.String("requirement", req.String()),
				zap.String("level", s.Level.String()),
				zap.String("reason", decision.Reason),
				zap.String("target", decision.Redirect),
			)
			return c.Redirect(decision.Redirect, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// Session returns the request's session, resolving it on first use within the request.
func (g *Guard) Session(c *fiber.Ctx) session.Session {
	if s, ok := SessionFromContext(c); ok {
		return s
	}
	s := g.cookie.Resolve(c)
	c.Locals(sessionKey, s)
	return s
}

// SessionFromContext retrieves a session resolved earlier in this request.
func SessionFromContext(c *fiber.Ctx) (session.Session, bool) {
	s, ok := c.Locals(sessionKey).(session.Session)
	return s, ok
}
