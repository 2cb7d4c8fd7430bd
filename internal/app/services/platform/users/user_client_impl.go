package users

import (
	"context"
	"fmt"

	"platform-client/internal/app/contracts"
	"platform-client/internal/pkg/constvars"
	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/dto/responses"
	"platform-client/internal/pkg/exceptions"
	"platform-client/internal/pkg/statusmap"
	"platform-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// updateEnvelope is the shape the auth service expects account changes in.
type updateEnvelope struct {
	Updates interface{} `json:"updates"`
}

type userClient struct {
	Rest    contracts.RestClient
	Session contracts.SessionStore
	Log     *zap.Logger
}

func NewUserClient(restClient contracts.RestClient, session contracts.SessionStore, logger *zap.Logger) contracts.UserClient {
	return &userClient{
		Rest:    restClient,
		Session: session,
		Log:     logger,
	}
}

// Initialize restores a previously persisted session into memory. A missing
// session is not an error.
func (c *userClient) Initialize(ctx context.Context) error {
	return c.Session.Initialize(ctx)
}

func (c *userClient) Login(ctx context.Context, user *requests.Login, options *requests.SessionOptions) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(user); err != nil {
		return nil, err
	}

	basicAuth := &contracts.BasicAuth{
		Username: user.Username,
		Password: user.Password,
	}
	resp, err := c.Rest.Do(ctx, constvars.MethodPost, constvars.EndpointAuthLogin, nil, basicAuth)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case constvars.StatusOK:
	case constvars.StatusUnauthorized:
		return nil, exceptions.ErrInvalidUsernameOrPassword(exceptions.ErrUnexpectedStatus(resp.StatusCode, resp.Body))
	default:
		return nil, exceptions.ErrUnexpectedStatus(resp.StatusCode, resp.Body)
	}

	account := responses.User{}
	if err := json.Unmarshal(resp.Body, &account); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUser)
	}

	token := resp.Header.Get(constvars.HeaderSessionToken)
	if token == "" {
		return nil, exceptions.ErrMissingSessionTokenHeader()
	}

	if err := c.Session.SaveSession(ctx, account.UserID, token, options); err != nil {
		return nil, err
	}

	c.Log.Info("userClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, account.UserID),
	)
	return &responses.Login{
		UserID: account.UserID,
		User:   account,
	}, nil
}

func (c *userClient) Signup(ctx context.Context, user *requests.Signup, options *requests.SessionOptions) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(user); err != nil {
		return nil, err
	}

	resp, err := c.Rest.Do(ctx, constvars.MethodPost, constvars.EndpointAuthUser, user, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrUnexpectedStatus(resp.StatusCode, resp.Body)
	}

	account := new(responses.User)
	if err := json.Unmarshal(resp.Body, account); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUser)
	}

	token := resp.Header.Get(constvars.HeaderSessionToken)
	if token == "" {
		return nil, exceptions.ErrMissingSessionTokenHeader()
	}

	if err := c.Session.SaveSession(ctx, account.UserID, token, options); err != nil {
		return nil, err
	}

	c.Log.Info("userClient.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, account.UserID),
	)
	return account, nil
}

// Logout tears down the session without contacting the platform. It succeeds
// even when no session is held.
func (c *userClient) Logout(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := c.Session.SaveAccessTokenSession(ctx, "", "", nil); err != nil {
		c.Log.Warn("Failed to clear persisted access token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if err := c.Session.SaveSession(ctx, "", "", nil); err != nil {
		c.Log.Warn("Failed to clear persisted session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return nil
}

func (c *userClient) GetCurrentUser(ctx context.Context) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.GetCurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	account := new(responses.User)
	okMap := statusmap.Map{constvars.StatusOK: statusmap.Body}
	if err := c.Rest.DoGetWithToken(ctx, constvars.EndpointAuthUser, okMap, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *userClient) UpdateCurrentUser(ctx context.Context, user *requests.UserUpdate) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.UpdateCurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return c.putUserUpdates(ctx, constvars.EndpointAuthUser, user)
}

func (c *userClient) UpdateCustodialUser(ctx context.Context, user *requests.UserUpdate, userID string) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.UpdateCustodialUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if userID == "" {
		return nil, exceptions.ErrMissingPathSegment("userId")
	}

	path := fmt.Sprintf("%s/%s", constvars.EndpointAuthUser, userID)
	return c.putUserUpdates(ctx, path, user)
}

func (c *userClient) AcceptTerms(ctx context.Context, terms *requests.AcceptTerms) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.AcceptTerms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(terms); err != nil {
		return nil, err
	}

	return c.putUserUpdates(ctx, constvars.EndpointAuthUser, terms)
}

func (c *userClient) putUserUpdates(ctx context.Context, path string, updates interface{}) (*responses.User, error) {
	account := new(responses.User)
	okMap := statusmap.Map{constvars.StatusOK: statusmap.Body}
	if err := c.Rest.DoPutWithToken(ctx, path, updateEnvelope{Updates: updates}, okMap, account); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateCustodialAccount runs the three-step pipeline: create the child
// account under the logged-in user, write its profile to the metadata
// service, then trigger the signup confirmation email when an address is
// known. The pipeline stops at the first failing step; completed steps are
// not rolled back.
func (c *userClient) CreateCustodialAccount(ctx context.Context, profile *requests.CustodialProfile) (*responses.CustodialAccount, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.CreateCustodialAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(profile); err != nil {
		return nil, err
	}

	account := new(responses.CustodialAccount)

	custodialUser := map[string]interface{}{}
	if len(profile.Emails) > 0 {
		custodialUser["emails"] = profile.Emails
		custodialUser["username"] = profile.Emails[0]
	}
	createPath := fmt.Sprintf("%s/%s/user", constvars.EndpointAuthUser, c.Session.UserID())
	createdMap := statusmap.Map{constvars.StatusCreated: statusmap.Body}
	if err := c.Rest.DoPostWithToken(ctx, createPath, custodialUser, createdMap, account); err != nil {
		c.Log.Warn(constvars.ErrDevCustodialAccountIncomplete,
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profilePath := fmt.Sprintf("%s/%s/profile", constvars.EndpointMetadata, account.UserID)
	okMap := statusmap.Map{constvars.StatusOK: statusmap.Body}
	if err := c.Rest.DoPutWithToken(ctx, profilePath, profile, okMap, &account.Profile); err != nil {
		c.Log.Warn(constvars.ErrDevCustodialAccountIncomplete,
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, account.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(profile.Emails) > 0 {
		confirmPath := fmt.Sprintf("%s/send/signup/%s", constvars.EndpointConfirm, account.UserID)
		if err := c.Rest.DoPostWithToken(ctx, confirmPath, map[string]interface{}{}, okMap, nil); err != nil {
			c.Log.Warn(constvars.ErrDevCustodialAccountIncomplete,
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, account.UserID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	c.Log.Info("userClient.CreateCustodialAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, account.UserID),
	)
	return account, nil
}
