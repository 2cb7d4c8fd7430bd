package contracts

import (
	"context"
	"net/http"

	"platform-client/internal/pkg/statusmap"
)

// RawResponse exposes the pieces of a platform response the auth flows need
// beyond the decoded body, notably the session token header.
type RawResponse struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// RestClient is the transport adapter: it builds requests against the
// platform base URL, attaches the current session token where asked, and
// resolves responses through a per-call status map.
type RestClient interface {
	DoGetWithToken(ctx context.Context, path string, statusMap statusmap.Map, out interface{}) error
	DoPostWithToken(ctx context.Context, path string, body interface{}, statusMap statusmap.Map, out interface{}) error
	DoPutWithToken(ctx context.Context, path string, body interface{}, statusMap statusmap.Map, out interface{}) error
	DoPatchWithToken(ctx context.Context, path string, body interface{}, statusMap statusmap.Map, out interface{}) error
	DoDeleteWithToken(ctx context.Context, path string, statusMap statusmap.Map, out interface{}) error

	// Do issues a request without status-map resolution. The auth flows use
	// it to read response headers; basicAuth, when non-nil, carries the
	// credential pair attached instead of the session token.
	Do(ctx context.Context, method, path string, body interface{}, basicAuth *BasicAuth) (*RawResponse, error)
}

type BasicAuth struct {
	Username string
	Password string
}

// TokenProvider is what the transport needs from the session layer: the
// bearer credential current at dispatch time.
type TokenProvider interface {
	UserToken() string
}
