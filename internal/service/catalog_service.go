package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopfront-labs/storefront/internal/backend"
	"github.com/shopfront-labs/storefront/internal/domain"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// CatalogService serves the customer catalog.
type CatalogService struct {
	api backend.API
}

// NewCatalogService builds the service.
func NewCatalogService(api backend.API) *CatalogService {
	return &CatalogService{api: api}
}

// Search lists the catalog, keeping products whose name contains the trimmed
// query, ignoring case. An empty query keeps everything.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByName(products, query), nil
}

// FilterByName applies the catalog search rule.
func FilterByName(products []domain.Product, query string) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return products
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

// AddToCart puts quantity units of a product in the caller's cart once the
// quantity is known to be between one and the current stock.
func (s *CatalogService) AddToCart(ctx context.Context, token string, productID int64, quantity int) error {
	product, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product.SoldOut() {
		return apperrors.NewValidationError(fmt.Sprintf("%s is sold out", product.Name), nil)
	}
	if quantity < 1 || quantity > product.Stock {
		return apperrors.NewValidationError(
			fmt.Sprintf("Quantity for %s must be between 1 and %d", product.Name, product.Stock),
			map[string]any{"product_id": productID, "quantity": quantity},
		)
	}
	return s.api.AddCartItem(ctx, token, productID, quantity)
}
