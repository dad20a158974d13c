package handlers

import (
	"github.com/flosch/pongo2/v6"
	"github.com/gofiber/fiber/v2"

	"github.com/shopfront-labs/storefront/internal/api/dto"
	"github.com/shopfront-labs/storefront/internal/service"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// CartHandler serves the open cart, the cart history and the purchases ledger.
// Cart actions follow post/redirect/get and report through flash messages.
type CartHandler struct {
	pages *Pages
	carts *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(pages *Pages, carts *service.CartService) *CartHandler {
	return &CartHandler{pages: pages, carts: carts}
}

// Show handles GET /cart.
func (h *CartHandler) Show(c *fiber.Ctx) error {
	data := pongo2.Context{}
	cart, err := h.carts.Cart(c.UserContext(), h.pages.session(c).Token)
	if err != nil {
		h.pages.logFailure(c, "cart.get", err)
		data["error"] = apperrors.UserMessage(err, service.MsgCartFailed)
	}
	data["cart"] = h.pages.Formatter.Cart(cart)
	return h.pages.render(c, fiber.StatusOK, "cart.pongo2", data)
}

// UpdateItem handles POST /cart/items/:id.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var form dto.QuantityForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	if err := h.carts.UpdateItem(c.UserContext(), h.pages.session(c).Token, id, form.Qty()); err != nil {
		h.pages.logFailure(c, "cart.update", err)
		h.pages.Flash.Error(c, apperrors.UserMessage(err, service.MsgUpdateItemFailed))
	}
	return c.Redirect("/cart", fiber.StatusSeeOther)
}

// RemoveItem handles POST /cart/items/:id/delete.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.carts.RemoveItem(c.UserContext(), h.pages.session(c).Token, id); err != nil {
		h.pages.logFailure(c, "cart.remove", err)
		h.pages.Flash.Error(c, apperrors.UserMessage(err, service.MsgRemoveItemFailed))
	}
	return c.Redirect("/cart", fiber.StatusSeeOther)
}

// Checkout handles POST /cart/checkout.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	if err := h.carts.Checkout(c.UserContext(), h.pages.session(c)); err != nil {
		h.pages.logFailure(c, "cart.checkout", err)
		h.pages.Flash.Error(c, apperrors.UserMessage(err, service.MsgCheckoutFailed))
	} else {
		h.pages.Flash.Success(c, service.MsgCheckoutDone)
	}
	return c.Redirect("/cart", fiber.StatusSeeOther)
}

// History handles GET /cart/history.
func (h *CartHandler) History(c *fiber.Ctx) error {
	data := pongo2.Context{}
	carts, err := h.carts.History(c.UserContext(), h.pages.session(c).Token)
	if err != nil {
		h.pages.logFailure(c, "cart.history", err)
		data["error"] = apperrors.UserMessage(err, service.MsgHistoryFailed)
	}
	data["entries"] = h.pages.Formatter.History(carts)
	return h.pages.render(c, fiber.StatusOK, "history.pongo2", data)
}

// Purchases handles GET /dashboard/purchases.
func (h *CartHandler) Purchases(c *fiber.Ctx) error {
	data := pongo2.Context{}
	purchases, err := h.carts.Purchases(c.UserContext(), h.pages.session(c))
	if err != nil {
		h.pages.logFailure(c, "purchases", err)
		data["error"] = apperrors.UserMessage(err, service.MsgPurchasesFailed)
	}
	data["rows"] = h.pages.Formatter.Purchases(purchases)
	return h.pages.render(c, fiber.StatusOK, "purchases.pongo2", data)
}
