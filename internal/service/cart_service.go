package service

import (
	"context"
	"fmt"

	"github.com/shopfront-labs/storefront/internal/backend"
	"github.com/shopfront-labs/storefront/internal/domain"
	"github.com/shopfront-labs/storefront/internal/events"
	"github.com/shopfront-labs/storefront/internal/session"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// CartService handles the caller's open cart, cart history and purchases.
type CartService struct {
	api        backend.API
	dispatcher events.Dispatcher
}

// NewCartService builds the service. dispatcher may be nil.
func NewCartService(api backend.API, dispatcher events.Dispatcher) *CartService {
	return &CartService{api: api, dispatcher: dispatcher}
}

// Cart reads the open cart.
func (s *CartService) Cart(ctx context.Context, token string) (*domain.Cart, error) {
	return s.api.GetCart(ctx, token)
}

// UpdateItem changes a line's quantity. The quantity must be at least one and
// may not exceed the product's stock as reported with the cart.
func (s *CartService) UpdateItem(ctx context.Context, token string, itemID int64, quantity int) error {
	if quantity < 1 {
		return apperrors.NewValidationError("Quantity must be at least 1", map[string]any{"item_id": itemID})
	}
	cart, err := s.api.GetCart(ctx, token)
	if err != nil {
		return err
	}
	item, ok := findItem(cart, itemID)
	if !ok {
		return apperrors.NewNotFound("cart item", map[string]any{"item_id": itemID})
	}
	if quantity > item.Product.Stock {
		return apperrors.NewValidationError(
			fmt.Sprintf("Not enough stock for %s", item.Product.Name),
			map[string]any{"item_id": itemID, "stock": item.Product.Stock},
		)
	}
	return s.api.UpdateCartItem(ctx, token, itemID, quantity)
}

func findItem(cart *domain.Cart, itemID int64) (domain.CartItem, bool) {
	if cart == nil {
		return domain.CartItem{}, false
	}
	for _, item := range cart.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return domain.CartItem{}, false
}

// RemoveItem deletes a line.
func (s *CartService) RemoveItem(ctx context.Context, token string, itemID int64) error {
	return s.api.RemoveCartItem(ctx, token, itemID)
}

// Checkout settles the session's open cart.
func (s *CartService) Checkout(ctx context.Context, sess session.Session) error {
	if err := s.api.Checkout(ctx, sess.Token); err != nil {
		return err
	}
	events.Publish(ctx, s.dispatcher, events.New(events.EventCartCheckedOut, events.ActorFrom(sess), 0, nil))
	return nil
}

// History lists past carts.
func (s *CartService) History(ctx context.Context, token string) ([]domain.PastCart, error) {
	return s.api.CartHistory(ctx, token)
}

// Purchases lists what the session's user has bought.
func (s *CartService) Purchases(ctx context.Context, sess session.Session) ([]domain.Purchase, error) {
	if sess.Payload == nil {
		return nil, apperrors.NewUnauthorized("session required")
	}
	return s.api.PurchasesByUser(ctx, sess.Token, sess.UserID())
}
