package domain

import (
	"bytes"
	"strconv"
	"strings"
)

// Stock thresholds used by the catalog.
const (
	LowStockThreshold  = 5
	StockBarFullAt     = 20
	StockHealthyAbove  = 10
	StockWarningAbove  = 5
	DescriptionExcerpt = 80
)

// Money is a price as sent by the storefront API, which encodes decimals either
// as JSON numbers or as strings.
type Money float64

// UnmarshalJSON accepts 12.5, "12.5", "" and null.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

// Float returns the amount as float64.
func (m Money) Float() float64 { return float64(m) }

// Times multiplies the amount by a quantity.
func (m Money) Times(qty int) Money { return m * Money(qty) }

// Product is a catalog entry.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url"`
}

// SoldOut reports whether no unit is left.
func (p Product) SoldOut() bool { return p.Stock <= 0 }

// LowStock reports whether only a few units are left.
func (p Product) LowStock() bool { return p.Stock > 0 && p.Stock < LowStockThreshold }

// ProductInput is the body sent when creating or updating a product.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}
