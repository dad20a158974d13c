package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shopfront-labs/storefront/internal/domain"
)

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	res, err := call[domain.LoginResult](ctx, c, "users.login", "", http.MethodPost, "/users/login", creds)
	if err != nil {
		return "", err
	}
	return res.Token, nil
}

// Register creates a customer account.
func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	_, err := call[any](ctx, c, "users.register", "", http.MethodPost, "/users", reg)
	return err
}

// ListProducts reads the public catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return call[[]domain.Product](ctx, c, "products.list", "", http.MethodGet, "/products", nil)
}

// GetProduct reads one catalog entry.
func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := call[domain.Product](ctx, c, "products.get", "", http.MethodGet, "/products/"+itoa(id), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct adds a catalog entry. Admin only on the API side.
func (c *Client) CreateProduct(ctx context.Context, token string, in domain.ProductInput) error {
	_, err := call[any](ctx, c, "products.create", token, http.MethodPost, "/products", in)
	return err
}

// UpdateProduct replaces a catalog entry.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, in domain.ProductInput) error {
	_, err := call[any](ctx, c, "products.update", token, http.MethodPut, "/products/"+itoa(id), in)
	return err
}

// DeleteProduct removes a catalog entry.
func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	_, err := call[any](ctx, c, "products.delete", token, http.MethodDelete, "/products/"+itoa(id), nil)
	return err
}

type cartData struct {
	Cart domain.Cart `json:"cart"`
}

// GetCart reads the caller's open cart.
func (c *Client) GetCart(ctx context.Context, token string) (*domain.Cart, error) {
	res, err := call[cartData](ctx, c, "cart.get", token, http.MethodGet, "/cart", nil)
	if err != nil {
		return nil, err
	}
	return &res.Cart, nil
}

type addItemBody struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type quantityBody struct {
	Quantity int `json:"quantity"`
}

// AddCartItem puts quantity units of a product in the caller's cart.
func (c *Client) AddCartItem(ctx context.Context, token string, productID int64, quantity int) error {
	_, err := call[any](ctx, c, "cart.add_item", token, http.MethodPost, "/cart/items", addItemBody{ProductID: productID, Quantity: quantity})
	return err
}

// UpdateCartItem sets the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, token string, itemID int64, quantity int) error {
	_, err := call[any](ctx, c, "cart.update_item", token, http.MethodPut, "/cart/items/"+itoa(itemID), quantityBody{Quantity: quantity})
	return err
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, token string, itemID int64) error {
	_, err := call[any](ctx, c, "cart.remove_item", token, http.MethodDelete, "/cart/items/"+itoa(itemID), nil)
	return err
}

// Checkout converts the open cart into purchases.
func (c *Client) Checkout(ctx context.Context, token string) error {
	_, err := call[any](ctx, c, "cart.checkout", token, http.MethodPost, "/cart/checkout", nil)
	return err
}

// CartHistory lists the caller's past carts.
func (c *Client) CartHistory(ctx context.Context, token string) ([]domain.PastCart, error) {
	return call[[]domain.PastCart](ctx, c, "cart.history", token, http.MethodGet, "/cart/history", nil)
}

// PurchasesByUser lists settled purchases of a user.
func (c *Client) PurchasesByUser(ctx context.Context, token string, userID int64) ([]domain.Purchase, error) {
	return call[[]domain.Purchase](ctx, c, "purchases.by_user", token, http.MethodGet, "/purchases/user/"+itoa(userID), nil)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
