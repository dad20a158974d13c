package domain

import (
	"strings"
	"time"
)

// CartStatus enumerates lifecycle states reported for past carts.
type CartStatus string

const (
	CartStatusCompleted CartStatus = "completed"
	CartStatusPending   CartStatus = "pending"
	CartStatusCancelled CartStatus = "cancelled"
	CartStatusUnknown   CartStatus = ""
)

// NormalizeCartStatus maps the API's status strings, English or Spanish, onto CartStatus.
func NormalizeCartStatus(raw string) CartStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed", "completado":
		return CartStatusCompleted
	case "pending", "pendiente":
		return CartStatusPending
	case "cancelled", "cancelado":
		return CartStatusCancelled
	default:
		return CartStatusUnknown
	}
}

// CartItem is one line of a cart.
type CartItem struct {
	ID        int64   `json:"id"`
	CartID    int64   `json:"cartId"`
	UserID    int64   `json:"userId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// LineTotal is unit price times quantity.
func (i CartItem) LineTotal() Money {
	return i.Product.Price.Times(i.Quantity)
}

// Cart is the caller's open cart.
type Cart struct {
	ID     int64      `json:"id"`
	Items  []CartItem `json:"items"`
	Status string     `json:"status"`
}

// Total sums all line totals.
func (c Cart) Total() Money {
	return SumLines(c.Items)
}

// PastCart is a cart from the caller's history.
type PastCart struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Status    string     `json:"status"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Items     []CartItem `json:"items"`
}

// Total sums all line totals.
func (c PastCart) Total() Money {
	return SumLines(c.Items)
}

// SumLines totals a slice of cart items.
func SumLines(items []CartItem) Money {
	var total Money
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

// Purchase is a settled line from the purchases ledger.
type Purchase struct {
	ID         int64     `json:"id"`
	Quantity   int       `json:"quantity"`
	TotalPrice Money     `json:"total_price"`
	CreatedAt  time.Time `json:"createdAt"`
	Product    struct {
		Name string `json:"name"`
	} `json:"product"`
}
