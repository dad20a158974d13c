package service

import (
	"context"
	"strings"

	"github.com/shopfront-labs/storefront/internal/backend"
	"github.com/shopfront-labs/storefront/internal/domain"
	"github.com/shopfront-labs/storefront/internal/events"
	"github.com/shopfront-labs/storefront/internal/session"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// AdminService manages the catalog on behalf of an admin session.
type AdminService struct {
	api        backend.API
	dispatcher events.Dispatcher
}

// NewAdminService builds the service. dispatcher may be nil.
func NewAdminService(api backend.API, dispatcher events.Dispatcher) *AdminService {
	return &AdminService{api: api, dispatcher: dispatcher}
}

// Products lists the catalog.
func (s *AdminService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.api.ListProducts(ctx)
}

// Product loads one entry for editing.
func (s *AdminService) Product(ctx context.Context, id int64) (*domain.Product, error) {
	return s.api.GetProduct(ctx, id)
}

// Create adds a product.
func (s *AdminService) Create(ctx context.Context, sess session.Session, in domain.ProductInput) error {
	if err := checkProductInput(in); err != nil {
		return err
	}
	if err := s.api.CreateProduct(ctx, sess.Token, in); err != nil {
		return err
	}
	s.publish(ctx, events.EventProductCreated, sess, 0, productPayload(in))
	return nil
}

// Update replaces a product.
func (s *AdminService) Update(ctx context.Context, sess session.Session, id int64, in domain.ProductInput) error {
	if err := checkProductInput(in); err != nil {
		return err
	}
	if err := s.api.UpdateProduct(ctx, sess.Token, id, in); err != nil {
		return err
	}
	s.publish(ctx, events.EventProductUpdated, sess, id, productPayload(in))
	return nil
}

// Delete removes a product.
func (s *AdminService) Delete(ctx context.Context, sess session.Session, id int64) error {
	if err := s.api.DeleteProduct(ctx, sess.Token, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventProductDeleted, sess, id, nil)
	return nil
}

func (s *AdminService) publish(ctx context.Context, t events.EventType, sess session.Session, id int64, payload any) {
	events.Publish(ctx, s.dispatcher, events.New(t, events.ActorFrom(sess), id, payload))
}

func productPayload(in domain.ProductInput) events.ProductPayload {
	return events.ProductPayload{Name: in.Name, Price: in.Price, Stock: in.Stock}
}

func checkProductInput(in domain.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.NewValidationError("Name, price and stock are required", nil)
	}
	if in.Price < 0 || in.Stock < 0 {
		return apperrors.NewValidationError("Price and stock cannot be negative", map[string]any{"price": in.Price, "stock": in.Stock})
	}
	return nil
}
