package service

import (
	"context"
	"net/http"

	"github.com/shopfront-labs/storefront/internal/backend"
	"github.com/shopfront-labs/storefront/internal/domain"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// fakeAPI is an in-memory backend.API that records the mutating calls it receives.
type fakeAPI struct {
	token     string
	loginErr  error
	products  []domain.Product
	cart      domain.Cart
	history   []domain.PastCart
	purchases map[int64][]domain.Purchase
	failWith  error

	added     []domain.CartItem
	updated   map[int64]int
	removed   []int64
	checkouts int
	created   []domain.ProductInput
	deleted   []int64
	tokens    []string
}

var _ backend.API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{updated: map[int64]int{}, purchases: map[int64][]domain.Purchase{}}
}

func (f *fakeAPI) Login(_ context.Context, _ domain.Credentials) (string, error) {
	return f.token, f.loginErr
}

func (f *fakeAPI) Register(context.Context, domain.Registration) error { return f.failWith }

func (f *fakeAPI) ListProducts(context.Context) ([]domain.Product, error) {
	return f.products, f.failWith
}

func (f *fakeAPI) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperrors.NewRemoteFailure(http.StatusNotFound, "Producto no encontrado", nil)
}

func (f *fakeAPI) CreateProduct(_ context.Context, token string, in domain.ProductInput) error {
	f.tokens = append(f.tokens, token)
	f.created = append(f.created, in)
	return f.failWith
}

func (f *fakeAPI) UpdateProduct(_ context.Context, token string, _ int64, in domain.ProductInput) error {
	f.tokens = append(f.tokens, token)
	f.created = append(f.created, in)
	return f.failWith
}

func (f *fakeAPI) DeleteProduct(_ context.Context, token string, id int64) error {
	f.tokens = append(f.tokens, token)
	f.deleted = append(f.deleted, id)
	return f.failWith
}

func (f *fakeAPI) GetCart(_ context.Context, token string) (*domain.Cart, error) {
	f.tokens = append(f.tokens, token)
	if f.failWith != nil {
		return nil, f.failWith
	}
	c := f.cart
	return &c, nil
}

func (f *fakeAPI) AddCartItem(_ context.Context, token string, productID int64, quantity int) error {
	f.tokens = append(f.tokens, token)
	f.added = append(f.added, domain.CartItem{ProductID: productID, Quantity: quantity})
	return f.failWith
}

func (f *fakeAPI) UpdateCartItem(_ context.Context, token string, itemID int64, quantity int) error {
	f.tokens = append(f.tokens, token)
	f.updated[itemID] = quantity
	return f.failWith
}

func (f *fakeAPI) RemoveCartItem(_ context.Context, token string, itemID int64) error {
	f.tokens = append(f.tokens, token)
	f.removed = append(f.removed, itemID)
	return f.failWith
}

func (f *fakeAPI) Checkout(_ context.Context, token string) error {
	f.tokens = append(f.tokens, token)
	f.checkouts++
	return f.failWith
}

func (f *fakeAPI) CartHistory(_ context.Context, token string) ([]domain.PastCart, error) {
	f.tokens = append(f.tokens, token)
	return f.history, f.failWith
}

func (f *fakeAPI) PurchasesByUser(_ context.Context, token string, userID int64) ([]domain.Purchase, error) {
	f.tokens = append(f.tokens, token)
	return f.purchases[userID], f.failWith
}

func (f *fakeAPI) Ping(context.Context) error { return f.failWith }
