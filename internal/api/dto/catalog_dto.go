package dto

import (
	"strconv"
	"strings"

	"github.com/shopfront-labs/storefront/internal/domain"
)

// AddToCartForm is posted from a catalog card. An empty quantity means one unit.
type AddToCartForm struct {
	ProductID int64  `form:"productId" validate:"required,gt=0"`
	Quantity  string `form:"quantity"`
}

// Qty returns the requested quantity; anything that is not a whole number is zero.
func (f AddToCartForm) Qty() int {
	return parseQuantity(f.Quantity, 1)
}

// QuantityForm is posted when a cart line is edited.
type QuantityForm struct {
	Quantity string `form:"quantity"`
}

// Qty returns the requested quantity; anything that is not a whole number is zero.
func (f QuantityForm) Qty() int {
	return parseQuantity(f.Quantity, 0)
}

func parseQuantity(raw string, empty int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return empty
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// ProductForm is posted by the admin create and edit pages.
type ProductForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	Price       string `form:"price" validate:"required,numeric"`
	Stock       string `form:"stock" validate:"required,number"`
}

// ProductFormFrom prefills the edit page.
func ProductFormFrom(p domain.Product) ProductForm {
	return ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price.Float(), 'f', -1, 64),
		Stock:       strconv.Itoa(p.Stock),
	}
}

// Input converts a validated form for the backend.
func (f ProductForm) Input() (domain.ProductInput, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		return domain.ProductInput{}, err
	}
	stock, err := strconv.Atoi(strings.TrimSpace(f.Stock))
	if err != nil {
		return domain.ProductInput{}, err
	}
	return domain.ProductInput{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Price:       price,
		Stock:       stock,
	}, nil
}
