package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopfront-labs/storefront/internal/session"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSignedIn       EventType = "signed_in"
	EventSignedOut      EventType = "signed_out"
	EventRegistered     EventType = "registered"
	EventCartCheckedOut EventType = "cart_checked_out"
	EventProductCreated EventType = "product_created"
	EventProductUpdated EventType = "product_updated"
	EventProductDeleted EventType = "product_deleted"
)

// AllTypes lists every event type, for subscribers that want them all.
var AllTypes = []EventType{
	EventSignedIn,
	EventSignedOut,
	EventRegistered,
	EventCartCheckedOut,
	EventProductCreated,
	EventProductUpdated,
	EventProductDeleted,
}

// Actor identifies who triggered an event, as far as the unverified session tells.
type Actor struct {
	UserID   int64  `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Level    string `json:"level"`
}

// ActorFrom describes the session behind an action.
func ActorFrom(s session.Session) Actor {
	return Actor{UserID: s.UserID(), Username: s.Username(), Level: s.Level.String()}
}

// Event represents an action completed against the storefront API.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Actor     Actor     `json:"actor"`
	SubjectID int64     `json:"subject_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// New stamps an event with an id and the current time.
func New(t EventType, actor Actor, subjectID int64, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Actor:     actor,
		SubjectID: subjectID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// RegisteredPayload payload.
type RegisteredPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProductPayload payload.
type ProductPayload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}
