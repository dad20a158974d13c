package view

import (
	"strings"

	"github.com/shopfront-labs/storefront/internal/domain"
	"github.com/shopfront-labs/storefront/internal/session"
)

// Nav drives the header chrome.
type Nav struct {
	Visible       bool
	CustomerLinks bool
	Logout        bool
	Username      string
}

// NavFor builds the header for path. It never fails: an absent or malformed
// token simply yields the anonymous header.
func NavFor(path string, s session.Session) Nav {
	if strings.HasPrefix(path, "/login") || strings.HasPrefix(path, "/register") {
		return Nav{}
	}
	return Nav{
		Visible:       true,
		CustomerLinks: s.Level == session.Customer,
		Logout:        s.Level.Authenticated(),
		Username:      s.Username(),
	}
}

// ProductCard is one catalog entry on the dashboard.
type ProductCard struct {
	ID       int64
	Name     string
	Excerpt  string
	Price    string
	Stock    int
	SoldOut  bool
	LowStock bool
	BarWidth int
	BarClass string
	ImageURL string
}

// ProductCards prepares catalog entries for display.
func (f *Formatter) ProductCards(products []domain.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		width, class := StockBar(p.Stock)
		cards = append(cards, ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Excerpt:  f.Excerpt(p.Description, domain.DescriptionExcerpt),
			Price:    f.Price(p.Price),
			Stock:    p.Stock,
			SoldOut:  p.SoldOut(),
			LowStock: p.LowStock(),
			BarWidth: width,
			BarClass: class,
			ImageURL: p.ImageURL,
		})
	}
	return cards
}

// CartLine is one row of the cart or of a past cart.
type CartLine struct {
	ID        int64
	Name      string
	Quantity  int
	Stock     int
	UnitPrice string
	Total     string
}

// CartView is the open cart page.
type CartView struct {
	Lines []CartLine
	Total string
	Empty bool
}

func (f *Formatter) lines(items []domain.CartItem) []CartLine {
	out := make([]CartLine, 0, len(items))
	for _, item := range items {
		out = append(out, CartLine{
			ID:        item.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			Stock:     item.Product.Stock,
			UnitPrice: f.Price(item.Product.Price),
			Total:     f.Price(item.LineTotal()),
		})
	}
	return out
}

// Cart prepares the open cart.
func (f *Formatter) Cart(c *domain.Cart) CartView {
	if c == nil {
		return CartView{Empty: true, Total: f.Price(0)}
	}
	return CartView{Lines: f.lines(c.Items), Total: f.Price(c.Total()), Empty: len(c.Items) == 0}
}

// HistoryEntry is one past cart.
type HistoryEntry struct {
	ID          int64
	StatusClass string
	StatusLabel string
	Date        string
	Time        string
	Lines       []CartLine
	Total       string
}

// History prepares the cart history.
func (f *Formatter) History(carts []domain.PastCart) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(carts))
	for _, c := range carts {
		class, label := StatusBadge(c.Status)
		out = append(out, HistoryEntry{
			ID:          c.ID,
			StatusClass: class,
			StatusLabel: label,
			Date:        f.Date(c.UpdatedAt),
			Time:        f.Time(c.UpdatedAt),
			Lines:       f.lines(c.Items),
			Total:       f.Price(c.Total()),
		})
	}
	return out
}

// PurchaseRow is one settled purchase.
type PurchaseRow struct {
	ID       int64
	Product  string
	Quantity int
	Total    string
	Date     string
}

// Purchases prepares the purchases ledger.
func (f *Formatter) Purchases(purchases []domain.Purchase) []PurchaseRow {
	out := make([]PurchaseRow, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, PurchaseRow{
			ID:       p.ID,
			Product:  p.Product.Name,
			Quantity: p.Quantity,
			Total:    f.Price(p.TotalPrice),
			Date:     strings.TrimSpace(f.Date(p.CreatedAt) + " " + f.Time(p.CreatedAt)),
		})
	}
	return out
}

// AdminRow is one line of the admin product table.
type AdminRow struct {
	ID    int64
	Name  string
	Price string
	Stock int
}

// AdminRows prepares the admin product table.
func (f *Formatter) AdminRows(products []domain.Product) []AdminRow {
	out := make([]AdminRow, 0, len(products))
	for _, p := range products {
		out = append(out, AdminRow{ID: p.ID, Name: p.Name, Price: f.Price(p.Price), Stock: p.Stock})
	}
	return out
}
