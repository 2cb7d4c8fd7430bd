package contracts

import (
	"context"
	"time"

	"platform-client/internal/pkg/dto/requests"
)

// SessionStore owns the in-memory session (user id, legacy token, access
// token) for one client instance and mirrors tokens into TokenStorage on
// request. Later saves overwrite earlier ones.
type SessionStore interface {
	TokenProvider

	Initialize(ctx context.Context) error
	SaveSession(ctx context.Context, userID, token string, options *requests.SessionOptions) error
	SaveAccessTokenSession(ctx context.Context, userID, token string, options *requests.SessionOptions) error
	DestroySession(ctx context.Context) error

	IsLoggedIn() bool
	UserID() string

	// TokenExpiry reports the exp claim of the held token when it is a JWT;
	// ok is false for opaque tokens and empty sessions.
	TokenExpiry() (expiry time.Time, ok bool)
}
