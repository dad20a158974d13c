package flash

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CookieName holds the id of the pending flash message.
const CookieName = "flash"

// Flasher binds a Store to request cookies.
type Flasher struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// New builds a Flasher.
func New(store Store, ttl time.Duration, logger *zap.Logger) *Flasher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flasher{store: store, ttl: ttl, logger: logger}
}

// Error queues a failure message for the next rendered page.
func (f *Flasher) Error(c *fiber.Ctx, text string) {
	f.add(c, Message{Kind: KindError, Text: text})
}

// Success queues a confirmation message for the next rendered page.
func (f *Flasher) Success(c *fiber.Ctx, text string) {
	f.add(c, Message{Kind: KindSuccess, Text: text})
}

func (f *Flasher) add(c *fiber.Ctx, msg Message) {
	id := uuid.NewString()
	if err := f.store.Put(c.UserContext(), id, msg, f.ttl); err != nil {
		f.logger.Warn("flash store put failed", zap.Error(err))
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(f.ttl.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Take pops the pending message, if any, and clears the cookie.
func (f *Flasher) Take(c *fiber.Ctx) *Message {
	id := c.Cookies(CookieName)
	if id == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	msg, err := f.store.Pop(c.UserContext(), id)
	if err != nil {
		f.logger.Warn("flash store pop failed", zap.Error(err))
		return nil
	}
	return msg
}

// Ping reports the store's health.
func (f *Flasher) Ping(ctx context.Context) error {
	return f.store.Ping(ctx)
}
