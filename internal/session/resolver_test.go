package session

import (
	"encoding/base64"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyToken(payloadJSON string) string {
	return "header." + base64.RawURLEncoding.EncodeToString([]byte(payloadJSON)) + ".signature"
}

func TestResolve_AdminPayload(t *testing.T) {
	s := Resolve(StaticToken(dummyToken(`{"id":1,"username":"ana","type":true}`)))

	require.NoError(t, s.Failure)
	assert.Equal(t, Admin, s.Level)
	require.NotNil(t, s.Payload)
	assert.Equal(t, int64(1), s.Payload.ID)
	assert.Equal(t, "ana", s.Payload.Username)
	assert.True(t, s.Payload.Admin)
}

func TestResolve_CustomerPayload(t *testing.T) {
	s := Resolve(StaticToken(dummyToken(`{"id":7,"username":"leo","type":false}`)))

	require.NoError(t, s.Failure)
	assert.Equal(t, Customer, s.Level)
	assert.Equal(t, int64(7), s.UserID())
	assert.Equal(t, "leo", s.Username())
}

func TestResolve_OnlyTypeFlagIsRequired(t *testing.T) {
	s := Resolve(StaticToken(dummyToken(`{"type":false}`)))

	assert.Equal(t, Customer, s.Level)
	assert.Equal(t, int64(0), s.UserID())
}

func TestResolve_MissingToken(t *testing.T) {
	for name, p := range map[string]Provider{
		"nil provider": nil,
		"empty":        StaticToken(""),
		"absent":       ProviderFunc(func() (string, bool) { return "", false }),
	} {
		t.Run(name, func(t *testing.T) {
			s := Resolve(p)
			assert.Equal(t, Anonymous, s.Level)
			assert.Nil(t, s.Payload)
			assert.True(t, s.Missing())
			assert.False(t, s.Corrupt())
		})
	}
}

func TestResolve_MalformedTokensFailClosed(t *testing.T) {
	cases := map[string]string{
		"single segment":   "justonesegment",
		"empty middle":     "a..c",
		"not base64":       "a.!!!notbase64!!!.c",
		"not json":         "a." + base64.RawURLEncoding.EncodeToString([]byte("hello")) + ".c",
		"json array":       dummyToken(`[1,2,3]`),
		"json string":      dummyToken(`"admin"`),
		"json null":        dummyToken(`null`),
		"missing type":     dummyToken(`{"id":1,"username":"ana"}`),
		"string type":      dummyToken(`{"id":1,"username":"ana","type":"true"}`),
		"numeric type":     dummyToken(`{"id":1,"username":"ana","type":1}`),
		"null type":        dummyToken(`{"id":1,"type":null}`),
		"truncated json":   dummyToken(`{"id":1,"type":tr`),
		"trailing garbage": dummyToken(`{"type":true} extra`),
		"repeated type":    dummyToken(`{"type":false,"type":true}`),
		"repeated true":    dummyToken(`{"type":true,"id":1,"type":true}`),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			s := Resolve(StaticToken(token))
			assert.Equal(t, Anonymous, s.Level)
			assert.Nil(t, s.Payload)
			assert.True(t, s.Corrupt(), "failure: %v", s.Failure)
			assert.Equal(t, token, s.Token)
		})
	}
}

func TestResolve_TwoSegmentsAreEnough(t *testing.T) {
	token := "header." + base64.RawURLEncoding.EncodeToString([]byte(`{"type":true}`))

	assert.Equal(t, Admin, Resolve(StaticToken(token)).Level)
}

func TestDecode_AcceptsStandardAndPaddedAlphabets(t *testing.T) {
	// "?>" pushes the encoding toward the characters where the two alphabets differ.
	payload := `{"id":3,"username":"a?>b","type":false}`

	for name, seg := range map[string]string{
		"raw url":    base64.RawURLEncoding.EncodeToString([]byte(payload)),
		"padded url": base64.URLEncoding.EncodeToString([]byte(payload)),
		"std":        base64.StdEncoding.EncodeToString([]byte(payload)),
		"raw std":    base64.RawStdEncoding.EncodeToString([]byte(payload)),
	} {
		t.Run(name, func(t *testing.T) {
			p, err := Decode("h." + seg + ".s")
			require.NoError(t, err)
			assert.Equal(t, "a?>b", p.Username)
			assert.Equal(t, int64(3), p.ID)
		})
	}
}

func TestResolve_SignedJWT(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       42,
		"username": "root",
		"type":     true,
	}).SignedString([]byte("irrelevant-secret"))
	require.NoError(t, err)

	s := Resolve(StaticToken(token))
	assert.Equal(t, Admin, s.Level)
	assert.Equal(t, int64(42), s.UserID())
}

func TestResolve_Idempotent(t *testing.T) {
	p := StaticToken(dummyToken(`{"id":1,"username":"ana","type":true}`))

	first := Resolve(p)
	second := Resolve(p)
	assert.Equal(t, first, second)
	assert.NotSame(t, first.Payload, second.Payload)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "customer", Customer.String())
	assert.Equal(t, "admin", Admin.String())
	assert.False(t, Anonymous.Authenticated())
	assert.True(t, Customer.Authenticated())
	assert.True(t, Admin.Authenticated())
}
