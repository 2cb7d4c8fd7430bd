package contracts

import (
	"context"

	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/dto/responses"
)

// UserClient covers the auth endpoints plus the custodial account pipeline.
type UserClient interface {
	Initialize(ctx context.Context) error

	Login(ctx context.Context, user *requests.Login, options *requests.SessionOptions) (*responses.Login, error)
	Signup(ctx context.Context, user *requests.Signup, options *requests.SessionOptions) (*responses.User, error)
	Logout(ctx context.Context) error

	GetCurrentUser(ctx context.Context) (*responses.User, error)
	UpdateCurrentUser(ctx context.Context, user *requests.UserUpdate) (*responses.User, error)
	UpdateCustodialUser(ctx context.Context, user *requests.UserUpdate, userID string) (*responses.User, error)
	AcceptTerms(ctx context.Context, terms *requests.AcceptTerms) (*responses.User, error)

	CreateCustodialAccount(ctx context.Context, profile *requests.CustodialProfile) (*responses.CustodialAccount, error)
}
