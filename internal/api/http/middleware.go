package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/shopfront-labs/storefront/internal/observability"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// ErrorPages renders the HTML error page.
type ErrorPages interface {
	RenderError(c *fiber.Ctx, status int, message string) error
}

// RegisterMiddlewares attaches global middlewares such as error handling,
// logging and the edge gate. gate may be nil.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration, pages ErrorPages, gate fiber.Handler) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics, pages))
	if gate != nil {
		app.Use(gate)
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, pages ErrorPages) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				// Route patterns keep the label set bounded; the method is
				// copied out of the request buffer fasthttp reuses.
				metrics.RecordError(c.Route().Path, utils.CopyString(c.Method()), domainErr.Code)
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.String("path", c.Path()), zap.Error(domainErr))
				}
				err = respondError(c, domainErr, pages)
				if err != nil {
					logger.Error("error page failed", zap.Error(err))
					err = c.Status(http.StatusInternalServerError).SendString("internal server error")
				}
			}
		}()
		return c.Next()
	}
}

// toDomainError additionally understands fiber's own errors, such as the
// 404 raised when no route matches.
func toDomainError(err error) *apperrors.DomainError {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := apperrors.CodeInternal
		switch fe.Code {
		case http.StatusNotFound:
			code = apperrors.CodeNotFound
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			code = apperrors.CodeValidation
		case http.StatusUnauthorized:
			code = apperrors.CodeUnauthorized
		case http.StatusForbidden:
			code = apperrors.CodeForbidden
		}
		return apperrors.NewDomainError(code, fe.Message, fe.Code, nil)
	}
	return apperrors.ToDomainError(err)
}

func respondError(c *fiber.Ctx, domainErr *apperrors.DomainError, pages ErrorPages) error {
	if pages == nil || wantsJSON(c) {
		response := fiber.Map{"error": fiber.Map{
			"code":    domainErr.Code,
			"message": domainErr.Message,
		}}
		if len(domainErr.Details) > 0 {
			response["error"].(fiber.Map)["details"] = domainErr.Details
		}
		return c.Status(domainErr.HTTPStatus).JSON(response)
	}
	return pages.RenderError(c, domainErr.HTTPStatus, pageMessage(domainErr))
}

func wantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/health") {
		return true
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func pageMessage(domainErr *apperrors.DomainError) string {
	switch {
	case domainErr.HTTPStatus == http.StatusNotFound:
		return "Page not found"
	case domainErr.HTTPStatus >= 500:
		return "Something went wrong"
	default:
		return domainErr.Message
	}
}
