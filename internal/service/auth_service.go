package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopfront-labs/storefront/internal/backend"
	"github.com/shopfront-labs/storefront/internal/domain"
	"github.com/shopfront-labs/storefront/internal/events"
	"github.com/shopfront-labs/storefront/internal/session"
	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// AuthService forwards credentials to the storefront API. It never hashes or
// stores them; the returned token is the only thing kept, in the browser.
type AuthService struct {
	api        backend.API
	dispatcher events.Dispatcher
}

// NewAuthService builds the service. dispatcher may be nil.
func NewAuthService(api backend.API, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{api: api, dispatcher: dispatcher}
}

// Login exchanges credentials for a token and resolves it so the caller can
// pick the landing page.
func (a *AuthService) Login(ctx context.Context, creds domain.Credentials) (session.Session, error) {
	token, err := a.api.Login(ctx, creds)
	if err != nil {
		return session.Session{}, err
	}
	if token == "" {
		return session.Session{}, apperrors.NewRemoteFailure(http.StatusBadGateway, "", errors.New("login response carried no token"))
	}
	s := session.Resolve(session.StaticToken(token))
	events.Publish(ctx, a.dispatcher, events.New(events.EventSignedIn, events.ActorFrom(s), s.UserID(), nil))
	return s, nil
}

// Register creates a customer account.
func (a *AuthService) Register(ctx context.Context, reg domain.Registration) error {
	if err := a.api.Register(ctx, reg); err != nil {
		return err
	}
	events.Publish(ctx, a.dispatcher, events.New(events.EventRegistered, events.Actor{Level: session.Anonymous.String()}, 0,
		events.RegisteredPayload{Username: reg.Username, Email: reg.Email}))
	return nil
}

// Logout records the end of a session. The cookie itself is cleared by the caller.
func (a *AuthService) Logout(ctx context.Context, s session.Session) {
	events.Publish(ctx, a.dispatcher, events.New(events.EventSignedOut, events.ActorFrom(s), s.UserID(), nil))
}
