package contracts

import "context"

// TokenStorage is the persistent key-value store bearer credentials are
// mirrored into for session restoration across restarts. A missing key reads
// as an empty token, not an error.
type TokenStorage interface {
	GetToken(ctx context.Context, key string) (string, error)
	SetToken(ctx context.Context, key, token string) error
	DeleteToken(ctx context.Context, key string) error
}
