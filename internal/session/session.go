// Package session holds the anonymous session token carried in the
// sessionId cookie. A token is a bearer value only: it is not signed and it
// is not an authenticated principal.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

const (
	CookieName = "sessionId"
	CookiePath = "/"

	// MaxAge is the cookie lifetime in seconds (7 days).
	MaxAge = 7 * 24 * 60 * 60

	unauthorizedMessage = "Unauthorized."
)

// Token identifies an anonymous session.
type Token struct {
	value string
}

// New generates a random session token.
func New() (Token, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return Token{}, err
	}
	return Token{value: id.String()}, nil
}

// FromCookie returns the token held in a sessionId cookie value. ok is false
// when the cookie is absent. The value is not checked for UUID shape.
func FromCookie(value string) (token Token, ok bool) {
	if value == "" {
		return Token{}, false
	}
	return Token{value: value}, true
}

func (t Token) String() string {
	return t.value
}

// Cookie is the Set-Cookie value that hands t to the client.
func (t Token) Cookie(secure bool) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    t.value,
		Path:     CookiePath,
		MaxAge:   MaxAge,
		Expires:  time.Now().Add(MaxAge * time.Second).UTC(),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Cookie is embedded in huma inputs that read the session cookie.
type Cookie struct {
	SessionID string `cookie:"sessionId" doc:"Anonymous session token issued by POST /transactions"`
}

// Token returns the request's session token, if any.
func (c Cookie) Token() (Token, bool) {
	return FromCookie(c.SessionID)
}

type carrier interface {
	Token() (Token, bool)
}

// Guard rejects requests without a session cookie with 401 before next runs.
// It runs after huma has validated the rest of the input.
func Guard[I carrier, O any](next func(context.Context, I, Token) (*O, error)) func(context.Context, I) (*O, error) {
	return func(ctx context.Context, input I) (*O, error) {
		token, ok := input.Token()
		if !ok {
			return nil, huma.Error401Unauthorized(unauthorizedMessage)
		}
		return next(ctx, input, token)
	}
}
