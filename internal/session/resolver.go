// Package session derives the caller's authorization level from the bearer
// token kept in client storage. The token is decoded, never verified: the
// result drives what the UI shows and where it navigates, while the backend
// stays the only authority on what a caller may actually do.
package session

import (
	"encoding/base64"
	"fmt"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/valyala/fastjson"
)

// Provider supplies the raw session token for the current caller.
type Provider interface {
	Token() (string, bool)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (string, bool)

// Token implements Provider.
func (f ProviderFunc) Token() (string, bool) { return f() }

// StaticToken is a Provider returning a fixed token. An empty value means no token.
type StaticToken string

// Token implements Provider.
func (s StaticToken) Token() (string, bool) {
	return string(s), s != ""
}

var (
	payloadParsers fastjson.ParserPool
	segmentParser  = jwt.NewParser(jwt.WithPaddingAllowed())
)

// Resolve reads the token from p and classifies it. Any failure yields Anonymous
// with a nil payload; Failure tells a missing token apart from a corrupt one.
func Resolve(p Provider) Session {
	if p == nil {
		return Session{Level: Anonymous, Failure: ErrNoToken}
	}
	token, ok := p.Token()
	if !ok || token == "" {
		return Session{Level: Anonymous, Failure: ErrNoToken}
	}

	payload, err := Decode(token)
	if err != nil {
		return Session{Level: Anonymous, Token: token, Failure: err}
	}

	level := Customer
	if payload.Admin {
		level = Admin
	}
	return Session{Level: level, Payload: payload, Token: token}
}

// Decode extracts the payload from segment index 1 of a compact token.
// A payload whose "type" is not strictly a boolean is rejected.
func Decode(token string) (*Payload, error) {
	segments := strings.Split(token, ".")
	if len(segments) < 2 {
		return nil, fmt.Errorf("%w: %d segment(s)", ErrMalformedToken, len(segments))
	}

	raw, err := decodeSegment(segments[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	parser := payloadParsers.Get()
	defer payloadParsers.Put(parser)

	v, err := parser.ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("%w: payload is %s, not an object", ErrMalformedToken, v.Type())
	}

	// A repeated flag is ambiguous between parsers that keep the first
	// value and those that keep the last.
	var kind *fastjson.Value
	flags := 0
	v.GetObject().Visit(func(key []byte, val *fastjson.Value) {
		if string(key) == "type" {
			flags++
			kind = val
		}
	})
	if flags > 1 {
		return nil, fmt.Errorf("%w: type flag repeated %d times", ErrMalformedToken, flags)
	}

	var admin bool
	switch {
	case kind == nil:
		return nil, fmt.Errorf("%w: missing type flag", ErrMalformedToken)
	case kind.Type() == fastjson.TypeTrue:
		admin = true
	case kind.Type() == fastjson.TypeFalse:
		admin = false
	default:
		return nil, fmt.Errorf("%w: type flag is %s", ErrMalformedToken, kind.Type())
	}

	// Values borrowed from the parser die with Put; copy them out now.
	return &Payload{
		ID:       v.GetInt64("id"),
		Username: string(v.GetStringBytes("username")),
		Admin:    admin,
	}, nil
}

// decodeSegment accepts the URL-safe alphabet used by JWTs and the standard
// alphabet some issuers emit, padded or not.
func decodeSegment(seg string) ([]byte, error) {
	if seg == "" {
		return nil, fmt.Errorf("empty payload segment")
	}
	if raw, err := segmentParser.DecodeSegment(seg); err == nil {
		return raw, nil
	}
	if l := len(seg) % 4; l > 0 {
		seg += strings.Repeat("=", 4-l)
	}
	return base64.StdEncoding.DecodeString(seg)
}
