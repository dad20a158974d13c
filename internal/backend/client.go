// Package backend is the typed client for the storefront API. Every call is
// fire-once: no retry, no de-duplication, and the caller's context is the only
// cancellation signal.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/shopfront-labs/storefront/internal/domain"
	"github.com/shopfront-labs/storefront/internal/observability"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// API lists the storefront API operations the views depend on.
type API interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	Register(ctx context.Context, reg domain.Registration) error

	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, token string, in domain.ProductInput) error
	UpdateProduct(ctx context.Context, token string, id int64, in domain.ProductInput) error
	DeleteProduct(ctx context.Context, token string, id int64) error

	GetCart(ctx context.Context, token string) (*domain.Cart, error)
	AddCartItem(ctx context.Context, token string, productID int64, quantity int) error
	UpdateCartItem(ctx context.Context, token string, itemID int64, quantity int) error
	RemoveCartItem(ctx context.Context, token string, itemID int64) error
	Checkout(ctx context.Context, token string) error
	CartHistory(ctx context.Context, token string) ([]domain.PastCart, error)

	PurchasesByUser(ctx context.Context, token string, userID int64) ([]domain.Purchase, error)

	Ping(ctx context.Context) error
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	HTTPClient *http.Client
}

// Client implements API over resty.
type Client struct {
	http    *resty.Client
	logger  *zap.Logger
	metrics *observability.Metrics
}

var _ API = (*Client)(nil)

type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// New builds a Client for the API rooted at opts.BaseURL.
func New(opts Options) *Client {
	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(opts.BaseURL).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetRetryCount(0)
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{http: rc, logger: logger, metrics: opts.Metrics}
}

// call performs one request and unwraps the {data, message} envelope into out.
// An empty token sends the request anonymously.
func call[T any](ctx context.Context, c *Client, op, token, method, path string, body any) (T, error) {
	var (
		zero T
		env  envelope[T]
	)

	req := c.http.R().
		SetContext(ctx).
		SetResult(&env).
		SetError(&errorEnvelope{})
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if resp != nil && resp.RawResponse != nil {
			c.observe(op, "bad_response")
			c.logger.Warn("backend response unreadable", zap.String("op", op), zap.Int("status", resp.StatusCode()), zap.Error(err))
			return zero, apperrors.NewRemoteFailure(resp.StatusCode(), "", err)
		}
		c.observe(op, "unreachable")
		c.logger.Warn("backend unreachable", zap.String("op", op), zap.Error(err))
		return zero, apperrors.NewRemoteUnreachable(err)
	}

	if !resp.IsSuccess() {
		var message string
		if e, ok := resp.Error().(*errorEnvelope); ok && e != nil {
			message = e.Message
		}
		c.observe(op, "rejected")
		c.logger.Warn("backend rejected request",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode()),
			zap.String("message", message),
		)
		return zero, apperrors.NewRemoteFailure(resp.StatusCode(), message, fmt.Errorf("%s %s: %s", method, path, resp.Status()))
	}

	c.observe(op, "ok")
	return env.Data, nil
}

func (c *Client) observe(op, outcome string) {
	c.metrics.RecordBackendCall(op, outcome)
}

// Ping checks that the API host answers at all; any HTTP status counts as alive.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.http.R().SetContext(ctx).Head("/"); err != nil {
		return apperrors.NewRemoteUnreachable(err)
	}
	return nil
}
