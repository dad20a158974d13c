package handlers

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/gofiber/fiber/v2"

	"github.com/shopfront-labs/storefront/internal/api/dto"
	"github.com/shopfront-labs/storefront/internal/service"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// CatalogHandler serves the customer catalog.
type CatalogHandler struct {
	pages     *Pages
	catalog   *service.CatalogService
	validator *dto.Validator
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(pages *Pages, catalog *service.CatalogService, validator *dto.Validator) *CatalogHandler {
	return &CatalogHandler{pages: pages, catalog: catalog, validator: validator}
}

// Dashboard handles GET /dashboard.
func (h *CatalogHandler) Dashboard(c *fiber.Ctx) error {
	return h.show(c, fiber.StatusOK, "")
}

func (h *CatalogHandler) show(c *fiber.Ctx, status int, message string) error {
	query := strings.TrimSpace(c.Query("q"))
	products, err := h.catalog.Search(c.UserContext(), query)
	if err != nil {
		h.pages.logFailure(c, "catalog", err)
		if message == "" {
			message = apperrors.UserMessage(err, service.MsgCatalogFailed)
		}
	}
	return h.pages.render(c, status, "dashboard.pongo2", pongo2.Context{
		"products": h.pages.Formatter.ProductCards(products),
		"count":    len(products),
		"query":    query,
		"error":    message,
	})
}

// AddToCart handles POST /cart/items.
func (h *CatalogHandler) AddToCart(c *fiber.Ctx) error {
	var form dto.AddToCartForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	err := h.validator.Struct(form)
	if err == nil {
		err = h.catalog.AddToCart(c.UserContext(), h.pages.session(c).Token, form.ProductID, form.Qty())
	}
	if err != nil {
		h.pages.logFailure(c, "cart.add", err)
		return h.show(c, failureStatus(err), apperrors.UserMessage(err, service.MsgAddToCartFailed))
	}
	return c.Redirect("/cart", fiber.StatusSeeOther)
}
