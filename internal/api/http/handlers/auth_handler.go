package handlers

import (
	"github.com/flosch/pongo2/v6"
	"github.com/gofiber/fiber/v2"

	"github.com/shopfront-labs/storefront/internal/api/dto"
	"github.com/shopfront-labs/storefront/internal/auth"
	"github.com/shopfront-labs/storefront/internal/service"
	"github.com/shopfront-labs/storefront/internal/session"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	pages     *Pages
	auth      *service.AuthService
	validator *dto.Validator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(pages *Pages, authService *service.AuthService, validator *dto.Validator) *AuthHandler {
	return &AuthHandler{pages: pages, auth: authService, validator: validator}
}

// Root handles GET / by sending the caller to their landing page.
func (h *AuthHandler) Root(c *fiber.Ctx) error {
	return c.Redirect(auth.LandingFor(h.pages.session(c), h.pages.Guard.Paths()), fiber.StatusFound)
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return h.pages.render(c, fiber.StatusOK, "login.pongo2", pongo2.Context{"form": dto.LoginForm{}})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	if err := h.validator.Struct(form); err != nil {
		return h.loginFailed(c, form, err)
	}

	s, err := h.auth.Login(c.UserContext(), form.Credentials())
	if err != nil {
		h.pages.logFailure(c, "login", err)
		return h.loginFailed(c, form, err)
	}

	h.pages.Guard.Cookie().Set(c, s.Token)
	paths := h.pages.Guard.Paths()
	target := paths.Dashboard
	if s.Level == session.Admin {
		target = paths.AdminHome
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx, form dto.LoginForm, err error) error {
	form.Password = ""
	return h.pages.render(c, failureStatus(err), "login.pongo2", pongo2.Context{
		"form":  form,
		"error": apperrors.UserMessage(err, service.MsgInvalidCredentials),
	})
}

// ShowRegister handles GET /register.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return h.pages.render(c, fiber.StatusOK, "register.pongo2", pongo2.Context{"form": dto.RegisterForm{}})
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var form dto.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	err := h.validator.Struct(form)
	if err == nil {
		err = h.auth.Register(c.UserContext(), form.Registration())
	}
	if err != nil {
		h.pages.logFailure(c, "register", err)
		form.Password = ""
		return h.pages.render(c, failureStatus(err), "register.pongo2", pongo2.Context{
			"form":  form,
			"error": apperrors.UserMessage(err, service.MsgRegisterFailed),
		})
	}

	h.pages.Flash.Success(c, service.MsgRegistered)
	return c.Redirect(h.pages.Guard.Paths().Login, fiber.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout(c.UserContext(), h.pages.session(c))
	h.pages.Guard.Cookie().Clear(c)
	return c.Redirect(h.pages.Guard.Paths().Login, fiber.StatusSeeOther)
}
