package handlers

import (
	"errors"
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/shopfront-labs/storefront/internal/auth"
	"github.com/shopfront-labs/storefront/internal/flash"
	"github.com/shopfront-labs/storefront/internal/session"
	"github.com/shopfront-labs/storefront/internal/view"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// Pages holds what every page handler needs to render a response.
type Pages struct {
	AppName   string
	Lang      string
	Renderer  *view.Renderer
	Formatter *view.Formatter
	Flash     *flash.Flasher
	Guard     *auth.Guard
	Logger    *zap.Logger
}

func (p *Pages) session(c *fiber.Ctx) session.Session {
	return p.Guard.Session(c)
}

func (p *Pages) render(c *fiber.Ctx, status int, name string, data pongo2.Context) error {
	chrome := view.Chrome{
		AppName: p.AppName,
		Lang:    p.Lang,
		Nav:     view.NavFor(c.Path(), p.session(c)),
		Flash:   view.FlashFrom(p.Flash.Take(c)),
	}
	return p.Renderer.HTML(c, status, name, chrome.Context(data))
}

// RenderError renders the error page for the error middleware.
func (p *Pages) RenderError(c *fiber.Ctx, status int, message string) error {
	return p.render(c, status, "error.pongo2", pongo2.Context{"status": status, "message": message})
}

// failureStatus is the status used when a page re-renders with a local message.
func failureStatus(err error) int {
	if apperrors.ToDomainError(err).Code == apperrors.CodeValidation {
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusOK
}

func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

func (p *Pages) logFailure(c *fiber.Ctx, action string, err error) {
	var de *apperrors.DomainError
	if errors.As(err, &de) && de.Code == apperrors.CodeValidation {
		return
	}
	p.Logger.Warn("action failed",
		zap.String("action", action),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
}
