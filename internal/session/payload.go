package session

import "errors"

// Level is the UI authorization class derived from a session payload.
type Level int

const (
	Anonymous Level = iota
	Customer
	Admin
)

func (l Level) String() string {
	switch l {
	case Customer:
		return "customer"
	case Admin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Authenticated reports whether the level belongs to a decoded session.
func (l Level) Authenticated() bool {
	return l == Customer || l == Admin
}

// Payload holds the unverified claims carried in the token's middle segment.
type Payload struct {
	ID       int64
	Username string
	Admin    bool
}

var (
	// ErrNoToken means the provider had no token to offer.
	ErrNoToken = errors.New("session: no token")
	// ErrMalformedToken covers every decode failure: segment count, base64, JSON shape, type flag.
	ErrMalformedToken = errors.New("session: malformed token")
)

// Session is the outcome of a single resolution. It is a value; nothing is cached.
type Session struct {
	Level   Level
	Payload *Payload
	Token   string
	// Failure is ErrNoToken, ErrMalformedToken (possibly wrapped) or nil.
	Failure error
}

// Missing reports whether no token was present.
func (s Session) Missing() bool {
	return errors.Is(s.Failure, ErrNoToken)
}

// Corrupt reports whether a token was present but could not be decoded.
func (s Session) Corrupt() bool {
	return errors.Is(s.Failure, ErrMalformedToken)
}

// UserID returns the payload id, or zero for anonymous sessions.
func (s Session) UserID() int64 {
	if s.Payload == nil {
		return 0
	}
	return s.Payload.ID
}

// Username returns the payload username, or an empty string for anonymous sessions.
func (s Session) Username() string {
	if s.Payload == nil {
		return ""
	}
	return s.Payload.Username
}
