package service

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront-labs/storefront/internal/domain"
	"github.com/shopfront-labs/storefront/internal/events"
	"github.com/shopfront-labs/storefront/internal/session"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

func tokenWith(payload string) string {
	return "h." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".s"
}

func catalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Blue Mug", Price: 12.5, Stock: 8},
		{ID: 2, Name: "Tea Pot", Price: 30, Stock: 0},
		{ID: 3, Name: "mug warmer", Price: 19.9, Stock: 3},
	}
}

func TestAuthService_Login(t *testing.T) {
	api := newFakeAPI()
	api.token = tokenWith(`{"id":1,"username":"ana","type":true}`)
	svc := NewAuthService(api, nil)

	s, err := svc.Login(context.Background(), domain.Credentials{Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, session.Admin, s.Level)
	assert.Equal(t, api.token, s.Token)
	assert.Equal(t, "ana", s.Username())
}

func TestAuthService_LoginFailures(t *testing.T) {
	api := newFakeAPI()
	api.loginErr = apperrors.NewRemoteFailure(http.StatusUnauthorized, "", nil)
	svc := NewAuthService(api, nil)

	_, err := svc.Login(context.Background(), domain.Credentials{})
	require.Error(t, err)
	assert.Equal(t, MsgInvalidCredentials, apperrors.UserMessage(err, MsgInvalidCredentials))

	api.loginErr = nil
	api.token = ""
	_, err = svc.Login(context.Background(), domain.Credentials{})
	require.Error(t, err)
}

func TestFilterByName(t *testing.T) {
	all := catalog()

	assert.Len(t, FilterByName(all, ""), 3)
	assert.Len(t, FilterByName(all, "   "), 3)

	got := FilterByName(all, "  MUG ")
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Empty(t, FilterByName(all, "lamp"))
}

func TestCatalogService_AddToCart(t *testing.T) {
	api := newFakeAPI()
	api.products = catalog()
	svc := NewCatalogService(api)
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "tok", 1, 8))
	require.Len(t, api.added, 1)
	assert.Equal(t, 8, api.added[0].Quantity)
	assert.Equal(t, []string{"tok"}, api.tokens)

	for _, qty := range []int{0, -1, 9} {
		err := svc.AddToCart(ctx, "tok", 1, qty)
		require.Error(t, err, qty)
		assert.Equal(t, apperrors.CodeValidation, apperrors.ToDomainError(err).Code)
	}

	err := svc.AddToCart(ctx, "tok", 2, 1)
	assert.Equal(t, "Tea Pot is sold out", apperrors.UserMessage(err, ""))

	err = svc.AddToCart(ctx, "tok", 99, 1)
	assert.Equal(t, "Producto no encontrado", apperrors.UserMessage(err, MsgAddToCartFailed))

	assert.Len(t, api.added, 1)
}

func TestCartService_UpdateItem(t *testing.T) {
	api := newFakeAPI()
	api.cart = domain.Cart{ID: 5, Items: []domain.CartItem{
		{ID: 10, Quantity: 1, Product: domain.Product{ID: 1, Name: "Blue Mug", Price: 12.5, Stock: 4}},
	}}
	svc := NewCartService(api, nil)
	ctx := context.Background()

	err := svc.UpdateItem(ctx, "tok", 10, 0)
	assert.Equal(t, "Quantity must be at least 1", apperrors.UserMessage(err, ""))

	err = svc.UpdateItem(ctx, "tok", 10, 5)
	assert.Equal(t, "Not enough stock for Blue Mug", apperrors.UserMessage(err, ""))

	err = svc.UpdateItem(ctx, "tok", 11, 1)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.UpdateItem(ctx, "tok", 10, 4))
	assert.Equal(t, map[int64]int{10: 4}, api.updated)
}

func TestCartService_RemoteFailuresKeepBackendMessage(t *testing.T) {
	api := newFakeAPI()
	api.failWith = apperrors.NewRemoteFailure(http.StatusConflict, "Carrito vacío", nil)
	svc := NewCartService(api, nil)

	err := svc.Checkout(context.Background(), session.Session{Token: "tok"})
	assert.Equal(t, "Carrito vacío", apperrors.UserMessage(err, MsgCheckoutFailed))

	api.failWith = apperrors.NewRemoteUnreachable(errors.New("dial tcp: refused"))
	err = svc.RemoveItem(context.Background(), "tok", 1)
	assert.Equal(t, "Could not reach the server", apperrors.UserMessage(err, MsgRemoveItemFailed))
}

func TestCartService_Purchases(t *testing.T) {
	api := newFakeAPI()
	api.purchases[7] = []domain.Purchase{{ID: 1, Quantity: 2, TotalPrice: 25}}
	svc := NewCartService(api, nil)

	s := session.Resolve(session.StaticToken(tokenWith(`{"id":7,"username":"leo","type":false}`)))
	got, err := svc.Purchases(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Money(25), got[0].TotalPrice)

	_, err = svc.Purchases(context.Background(), session.Session{})
	assert.Equal(t, apperrors.CodeUnauthorized, apperrors.ToDomainError(err).Code)
}

func TestAdminService_ChecksInput(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api, nil)
	ctx := context.Background()
	admin := session.Session{Level: session.Admin, Token: "tok"}

	err := svc.Create(ctx, admin, domain.ProductInput{Name: " ", Price: 1, Stock: 1})
	assert.Equal(t, "Name, price and stock are required", apperrors.UserMessage(err, ""))

	err = svc.Update(ctx, admin, 1, domain.ProductInput{Name: "Mug", Price: -1, Stock: 1})
	assert.Equal(t, "Price and stock cannot be negative", apperrors.UserMessage(err, ""))
	assert.Empty(t, api.created)

	require.NoError(t, svc.Create(ctx, admin, domain.ProductInput{Name: "Mug", Price: 3, Stock: 0}))
	require.NoError(t, svc.Delete(ctx, admin, 4))
	assert.Equal(t, []int64{4}, api.deleted)
	assert.Equal(t, []string{"tok", "tok"}, api.tokens)
}

func recordEvents(d events.Dispatcher) *[]events.Event {
	var seen []events.Event
	for _, t := range events.AllTypes {
		d.Subscribe(t, func(_ context.Context, e events.Event) error {
			seen = append(seen, e)
			return nil
		})
	}
	return &seen
}

func TestServices_PublishActivity(t *testing.T) {
	api := newFakeAPI()
	api.token = tokenWith(`{"id":1,"username":"ana","type":true}`)
	d := events.NewInMemoryDispatcher()
	seen := recordEvents(d)
	ctx := context.Background()

	s, err := NewAuthService(api, d).Login(ctx, domain.Credentials{})
	require.NoError(t, err)
	require.NoError(t, NewAdminService(api, d).Update(ctx, s, 3, domain.ProductInput{Name: "Mug", Price: 2, Stock: 1}))
	require.NoError(t, NewCartService(api, d).Checkout(ctx, s))
	NewAuthService(api, d).Logout(ctx, s)

	api.failWith = apperrors.NewRemoteFailure(http.StatusForbidden, "", nil)
	require.Error(t, NewAdminService(api, d).Delete(ctx, s, 3))

	require.Len(t, *seen, 4)
	types := []events.EventType{}
	for _, e := range *seen {
		types = append(types, e.Type)
		assert.Equal(t, "ana", e.Actor.Username)
	}
	assert.Equal(t, []events.EventType{
		events.EventSignedIn, events.EventProductUpdated, events.EventCartCheckedOut, events.EventSignedOut,
	}, types)
	assert.Equal(t, int64(3), (*seen)[1].SubjectID)
	assert.Equal(t, events.ProductPayload{Name: "Mug", Price: 2, Stock: 1}, (*seen)[1].Payload)
}
