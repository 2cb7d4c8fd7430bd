package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"platform-client/internal/app/config"
	"platform-client/internal/app/contracts"
	"platform-client/internal/app/services/core/session"
	"platform-client/internal/app/services/shared/memstore"
	"platform-client/internal/app/services/shared/rest"
	"platform-client/internal/pkg/constvars"
	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestUserClient(serverURL string) (contracts.UserClient, contracts.SessionStore, contracts.TokenStorage) {
	internalConfig := &config.InternalConfig{
		Platform: config.Platform{
			BaseUrl:                 serverURL,
			RequestTimeoutInSeconds: 5,
		},
	}
	storage := memstore.NewMemoryTokenStorage()
	sessionStore := session.NewSessionStore(storage, zap.NewNop())
	restClient := rest.NewRestClient(internalConfig, sessionStore, zap.NewNop())
	return NewUserClient(restClient, sessionStore, zap.NewNop()), sessionStore, storage
}

func TestUserClient_Login(t *testing.T) {
	t.Run("Saves Session From Token Header", func(t *testing.T) {
		var seenUser, seenPass string
		router := chi.NewRouter()
		router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			seenUser, seenPass, _ = r.BasicAuth()
			w.Header().Set(constvars.HeaderSessionToken, "fresh-token")
			w.Write([]byte(`{"userid":"u1","username":"jane"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, sessionStore, _ := newTestUserClient(server.URL)

		login, err := userClient.Login(context.Background(), &requests.Login{Username: "jane", Password: "secret"}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "jane", seenUser)
		assert.Equal(t, "secret", seenPass)
		assert.Equal(t, "u1", login.UserID)
		assert.Equal(t, "jane", login.User.Username)
		assert.True(t, sessionStore.IsLoggedIn())
		assert.Equal(t, "u1", sessionStore.UserID())
		assert.Equal(t, "fresh-token", sessionStore.UserToken())
	})

	t.Run("Remember Persists Token", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderSessionToken, "fresh-token")
			w.Write([]byte(`{"userid":"u1"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, _, storage := newTestUserClient(server.URL)

		_, err := userClient.Login(context.Background(), &requests.Login{Username: "jane", Password: "secret"}, &requests.SessionOptions{Remember: true})

		assert.NoError(t, err)
		persisted, _ := storage.GetToken(context.Background(), constvars.TokenStorageKey)
		assert.Equal(t, "fresh-token", persisted)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, sessionStore, _ := newTestUserClient(server.URL)

		login, err := userClient.Login(context.Background(), &requests.Login{Username: "jane", Password: "wrong"}, nil)

		assert.Error(t, err)
		assert.Nil(t, login)
		assert.False(t, sessionStore.IsLoggedIn())
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Missing Password Without Network Call", func(t *testing.T) {
		userClient, _, _ := newTestUserClient("http://127.0.0.1:1")

		login, err := userClient.Login(context.Background(), &requests.Login{Username: "jane"}, nil)

		assert.Error(t, err)
		assert.Nil(t, login)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Missing Token Header", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"userid":"u1"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, sessionStore, _ := newTestUserClient(server.URL)

		_, err := userClient.Login(context.Background(), &requests.Login{Username: "jane", Password: "secret"}, nil)

		assert.Error(t, err)
		assert.False(t, sessionStore.IsLoggedIn())
	})
}

func TestUserClient_Signup(t *testing.T) {
	t.Run("Sends Allow Listed Fields Only", func(t *testing.T) {
		var seenBody map[string]interface{}
		router := chi.NewRouter()
		router.Post("/auth/user", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&seenBody)
			w.Header().Set(constvars.HeaderSessionToken, "signup-token")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"userid":"u2","username":"newbie"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, sessionStore, _ := newTestUserClient(server.URL)

		account, err := userClient.Signup(context.Background(), &requests.Signup{
			Username: "newbie",
			Password: "secret",
			Emails:   []string{"newbie@example.org"},
		}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "u2", account.UserID)
		assert.Equal(t, "newbie", seenBody["username"])
		assert.NotContains(t, seenBody, "fullName")
		assert.True(t, sessionStore.IsLoggedIn())
		assert.Equal(t, "signup-token", sessionStore.UserToken())
	})

	t.Run("Requires Username And Password", func(t *testing.T) {
		userClient, _, _ := newTestUserClient("http://127.0.0.1:1")

		account, err := userClient.Signup(context.Background(), &requests.Signup{Username: "newbie"}, nil)

		assert.Error(t, err)
		assert.Nil(t, account)
	})
}

func TestUserClient_Logout(t *testing.T) {
	t.Run("Clears Memory And Storage", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderSessionToken, "fresh-token")
			w.Write([]byte(`{"userid":"u1"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, sessionStore, storage := newTestUserClient(server.URL)

		_, err := userClient.Login(context.Background(), &requests.Login{Username: "jane", Password: "secret"}, &requests.SessionOptions{Remember: true})
		assert.NoError(t, err)
		assert.True(t, sessionStore.IsLoggedIn())

		err = userClient.Logout(context.Background())

		assert.NoError(t, err)
		assert.False(t, sessionStore.IsLoggedIn())
		assert.Empty(t, sessionStore.UserToken())
		persisted, _ := storage.GetToken(context.Background(), constvars.TokenStorageKey)
		assert.Empty(t, persisted)
	})

	t.Run("Succeeds Without A Session", func(t *testing.T) {
		userClient, _, _ := newTestUserClient("http://127.0.0.1:1")

		assert.NoError(t, userClient.Logout(context.Background()))
		assert.NoError(t, userClient.Logout(context.Background()))
	})
}

func TestUserClient_Updates(t *testing.T) {
	t.Run("UpdateCurrentUser Wraps Changes In Updates Envelope", func(t *testing.T) {
		var seenBody map[string]interface{}
		router := chi.NewRouter()
		router.Put("/auth/user", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&seenBody)
			w.Write([]byte(`{"userid":"u1","username":"renamed"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, _, _ := newTestUserClient(server.URL)

		account, err := userClient.UpdateCurrentUser(context.Background(), &requests.UserUpdate{Username: "renamed"})

		assert.NoError(t, err)
		assert.Equal(t, "renamed", account.Username)
		updates, ok := seenBody["updates"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "renamed", updates["username"])
	})

	t.Run("UpdateCustodialUser Targets The Child Account", func(t *testing.T) {
		called := false
		router := chi.NewRouter()
		router.Put("/auth/user/child1", func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.Write([]byte(`{"userid":"child1"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, _, _ := newTestUserClient(server.URL)

		account, err := userClient.UpdateCustodialUser(context.Background(), &requests.UserUpdate{Password: "rotated"}, "child1")

		assert.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "child1", account.UserID)
	})

	t.Run("AcceptTerms Requires Terms", func(t *testing.T) {
		userClient, _, _ := newTestUserClient("http://127.0.0.1:1")

		account, err := userClient.AcceptTerms(context.Background(), &requests.AcceptTerms{})

		assert.Error(t, err)
		assert.Nil(t, account)
	})

	t.Run("AcceptTerms Sends Terms Under Updates", func(t *testing.T) {
		var seenBody map[string]interface{}
		router := chi.NewRouter()
		router.Put("/auth/user", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&seenBody)
			w.Write([]byte(`{"userid":"u1","termsAccepted":"2026-08-01T00:00:00Z"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, _, _ := newTestUserClient(server.URL)

		account, err := userClient.AcceptTerms(context.Background(), &requests.AcceptTerms{Terms: "2026-08-01T00:00:00Z"})

		assert.NoError(t, err)
		assert.NotEmpty(t, account.TermsAccepted)
		updates, ok := seenBody["updates"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "2026-08-01T00:00:00Z", updates["terms"])
	})
}

func TestUserClient_CreateCustodialAccount(t *testing.T) {
	loginHandler := func(router *chi.Mux) {
		router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderSessionToken, "fresh-token")
			w.Write([]byte(`{"userid":"parent1"}`))
		})
	}

	t.Run("Runs All Three Steps In Order", func(t *testing.T) {
		var calls []string
		var createBody map[string]interface{}
		router := chi.NewRouter()
		loginHandler(router)
		router.Post("/auth/user/parent1/user", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "create")
			json.NewDecoder(r.Body).Decode(&createBody)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"userid":"child1"}`))
		})
		router.Put("/metadata/child1/profile", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "profile")
			w.Write([]byte(`{"fullName":"Kid Jellyfish","emails":["kid@example.org"]}`))
		})
		router.Post("/confirm/send/signup/child1", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "confirm")
			w.Write([]byte(`{}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, _, _ := newTestUserClient(server.URL)
		_, err := userClient.Login(context.Background(), &requests.Login{Username: "jane", Password: "secret"}, nil)
		assert.NoError(t, err)

		account, err := userClient.CreateCustodialAccount(context.Background(), &requests.CustodialProfile{
			FullName: "Kid Jellyfish",
			Emails:   []string{"kid@example.org"},
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"create", "profile", "confirm"}, calls)
		assert.Equal(t, "child1", account.UserID)
		assert.Contains(t, string(account.Profile), "Kid Jellyfish")
		assert.Equal(t, "kid@example.org", createBody["username"])
	})

	t.Run("Skips Confirmation Without Emails", func(t *testing.T) {
		var calls []string
		router := chi.NewRouter()
		loginHandler(router)
		router.Post("/auth/user/parent1/user", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "create")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"userid":"child1"}`))
		})
		router.Put("/metadata/child1/profile", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "profile")
			w.Write([]byte(`{"fullName":"Kid Jellyfish"}`))
		})
		router.Post("/confirm/send/signup/child1", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "confirm")
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, _, _ := newTestUserClient(server.URL)
		_, err := userClient.Login(context.Background(), &requests.Login{Username: "jane", Password: "secret"}, nil)
		assert.NoError(t, err)

		account, err := userClient.CreateCustodialAccount(context.Background(), &requests.CustodialProfile{FullName: "Kid Jellyfish"})

		assert.NoError(t, err)
		assert.Equal(t, []string{"create", "profile"}, calls)
		assert.Equal(t, "child1", account.UserID)
	})

	t.Run("Aborts When Profile Write Fails", func(t *testing.T) {
		var calls []string
		router := chi.NewRouter()
		loginHandler(router)
		router.Post("/auth/user/parent1/user", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "create")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"userid":"child1"}`))
		})
		router.Put("/metadata/child1/profile", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "profile")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"metadata down"}`))
		})
		router.Post("/confirm/send/signup/child1", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "confirm")
		})
		server := httptest.NewServer(router)
		defer server.Close()

		userClient, _, _ := newTestUserClient(server.URL)
		_, err := userClient.Login(context.Background(), &requests.Login{Username: "jane", Password: "secret"}, nil)
		assert.NoError(t, err)

		account, err := userClient.CreateCustodialAccount(context.Background(), &requests.CustodialProfile{
			FullName: "Kid Jellyfish",
			Emails:   []string{"kid@example.org"},
		})

		assert.Error(t, err)
		assert.Nil(t, account)
		assert.Equal(t, []string{"create", "profile"}, calls)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Requires Full Name", func(t *testing.T) {
		userClient, _, _ := newTestUserClient("http://127.0.0.1:1")

		account, err := userClient.CreateCustodialAccount(context.Background(), &requests.CustodialProfile{Emails: []string{"kid@example.org"}})

		assert.Error(t, err)
		assert.Nil(t, account)
	})
}
