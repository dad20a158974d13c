package handlers

import (
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/gofiber/fiber/v2"

	"github.com/shopfront-labs/storefront/internal/api/dto"
	"github.com/shopfront-labs/storefront/internal/service"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// AdminHandler serves the product console.
type AdminHandler struct {
	pages     *Pages
	admin     *service.AdminService
	validator *dto.Validator
}

// NewAdminHandler constructs handler.
func NewAdminHandler(pages *Pages, admin *service.AdminService, validator *dto.Validator) *AdminHandler {
	return &AdminHandler{pages: pages, admin: admin, validator: validator}
}

// Home handles GET /admin.
func (h *AdminHandler) Home(c *fiber.Ctx) error {
	return h.pages.render(c, fiber.StatusOK, "admin_home.pongo2", pongo2.Context{
		"username": h.pages.session(c).Username(),
	})
}

// Products handles GET /admin/products.
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	data := pongo2.Context{}
	products, err := h.admin.Products(c.UserContext())
	if err != nil {
		h.pages.logFailure(c, "admin.products", err)
		data["error"] = apperrors.UserMessage(err, service.MsgCatalogFailed)
	}
	data["rows"] = h.pages.Formatter.AdminRows(products)
	return h.pages.render(c, fiber.StatusOK, "admin_products.pongo2", data)
}

// NewProduct handles GET /admin/products/new.
func (h *AdminHandler) NewProduct(c *fiber.Ctx) error {
	return h.form(c, fiber.StatusOK, dto.ProductForm{}, 0, "")
}

// Create handles POST /admin/products.
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	err := h.save(c, form, 0)
	if err != nil {
		h.pages.logFailure(c, "admin.create", err)
		return h.form(c, failureStatus(err), form, 0, apperrors.UserMessage(err, service.MsgCreateProductFailed))
	}
	h.pages.Flash.Success(c, service.MsgProductCreated)
	return c.Redirect("/admin/products", fiber.StatusSeeOther)
}

// Edit handles GET /admin/products/:id/edit.
func (h *AdminHandler) Edit(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	product, err := h.admin.Product(c.UserContext(), id)
	if err != nil {
		h.pages.logFailure(c, "admin.load", err)
		h.pages.Flash.Error(c, apperrors.UserMessage(err, service.MsgProductNotFound))
		return c.Redirect("/admin/products", fiber.StatusSeeOther)
	}
	return h.form(c, fiber.StatusOK, dto.ProductFormFrom(*product), id, "")
}

// Update handles POST /admin/products/:id.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	if err := h.save(c, form, id); err != nil {
		h.pages.logFailure(c, "admin.update", err)
		return h.form(c, failureStatus(err), form, id, apperrors.UserMessage(err, service.MsgUpdateProductFailed))
	}
	h.pages.Flash.Success(c, service.MsgProductUpdated)
	return c.Redirect("/admin/products", fiber.StatusSeeOther)
}

// Delete handles POST /admin/products/:id/delete.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.admin.Delete(c.UserContext(), h.pages.session(c), id); err != nil {
		h.pages.logFailure(c, "admin.delete", err)
		h.pages.Flash.Error(c, apperrors.UserMessage(err, service.MsgDeleteProductFailed))
	} else {
		h.pages.Flash.Success(c, service.MsgProductDeleted)
	}
	return c.Redirect("/admin/products", fiber.StatusSeeOther)
}

// save validates the form and creates (id 0) or updates a product.
func (h *AdminHandler) save(c *fiber.Ctx, form dto.ProductForm, id int64) error {
	if err := h.validator.Struct(form); err != nil {
		return err
	}
	in, err := form.Input()
	if err != nil {
		return apperrors.NewValidationError("Name, price and stock are required", nil)
	}
	sess := h.pages.session(c)
	if id == 0 {
		return h.admin.Create(c.UserContext(), sess, in)
	}
	return h.admin.Update(c.UserContext(), sess, id, in)
}

func (h *AdminHandler) form(c *fiber.Ctx, status int, form dto.ProductForm, id int64, message string) error {
	action := "/admin/products"
	if id != 0 {
		action += "/" + strconv.FormatInt(id, 10)
	}
	return h.pages.render(c, status, "product_form.pongo2", pongo2.Context{
		"form":    form,
		"editing": id != 0,
		"action":  action,
		"error":   message,
	})
}
