package session

import (
	"context"
	"sync"
	"time"

	"platform-client/internal/app/contracts"
	"platform-client/internal/pkg/constvars"
	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type sessionStore struct {
	mu           sync.RWMutex
	userID       string
	sessionToken string
	accessToken  string

	Storage contracts.TokenStorage
	Log     *zap.Logger
}

// NewSessionStore builds an empty session bound to the given token storage.
// One store per client instance; concurrent callers see the token current at
// the time they read it, last save wins.
func NewSessionStore(storage contracts.TokenStorage, logger *zap.Logger) contracts.SessionStore {
	return &sessionStore{
		Storage: storage,
		Log:     logger,
	}
}

func (s *sessionStore) Initialize(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	accessToken, err := s.Storage.GetToken(ctx, constvars.AccessTokenStorageKey)
	if err != nil {
		return err
	}
	if accessToken != "" {
		s.mu.Lock()
		s.accessToken = accessToken
		s.mu.Unlock()
		s.Log.Info("Restored access token session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	sessionToken, err := s.Storage.GetToken(ctx, constvars.TokenStorageKey)
	if err != nil {
		return err
	}
	if sessionToken != "" {
		s.mu.Lock()
		s.sessionToken = sessionToken
		s.mu.Unlock()
		s.Log.Info("Restored session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	s.Log.Info("No local session found",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *sessionStore) SaveSession(ctx context.Context, userID, token string, options *requests.SessionOptions) error {
	requestID := utils.GetRequestID(ctx)

	s.mu.Lock()
	s.userID = userID
	s.sessionToken = token
	s.mu.Unlock()

	if token == "" {
		if err := s.Storage.DeleteToken(ctx, constvars.TokenStorageKey); err != nil {
			return err
		}
		s.Log.Info("Destroyed local session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	s.Log.Info("Session saved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if options != nil && options.Remember {
		if err := s.Storage.SetToken(ctx, constvars.TokenStorageKey, token); err != nil {
			return err
		}
		s.Log.Info("Saved session locally",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}
	return nil
}

func (s *sessionStore) SaveAccessTokenSession(ctx context.Context, userID, token string, options *requests.SessionOptions) error {
	requestID := utils.GetRequestID(ctx)

	s.mu.Lock()
	s.userID = userID
	s.accessToken = token
	s.mu.Unlock()

	if token == "" {
		if err := s.Storage.DeleteToken(ctx, constvars.AccessTokenStorageKey); err != nil {
			return err
		}
		s.Log.Info("Destroyed local access token session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	s.Log.Info("Access token session saved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if options != nil && options.Remember {
		if err := s.Storage.SetToken(ctx, constvars.AccessTokenStorageKey, token); err != nil {
			return err
		}
		s.Log.Info("Saved access token session locally",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}
	return nil
}

func (s *sessionStore) DestroySession(ctx context.Context) error {
	return s.SaveSession(ctx, "", "", nil)
}

// IsLoggedIn reflects the legacy session token only; an access-token-only
// session does not count as logged in.
func (s *sessionStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionToken != ""
}

func (s *sessionStore) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// UserToken returns the credential attached to outgoing requests, preferring
// the access token over the legacy session token.
func (s *sessionStore) UserToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.accessToken != "" {
		return s.accessToken
	}
	return s.sessionToken
}

func (s *sessionStore) TokenExpiry() (time.Time, bool) {
	token := s.UserToken()
	if token == "" {
		return time.Time{}, false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
