package clinics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"platform-client/internal/app/config"
	"platform-client/internal/app/contracts"
	"platform-client/internal/app/services/shared/rest"
	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type staticTokenProvider string

func (p staticTokenProvider) UserToken() string { return string(p) }

func newTestClinicClient(serverURL string) contracts.ClinicClient {
	internalConfig := &config.InternalConfig{
		Platform: config.Platform{
			BaseUrl:                 serverURL,
			RequestTimeoutInSeconds: 5,
		},
	}
	restClient := rest.NewRestClient(internalConfig, staticTokenProvider("token-123"), zap.NewNop())
	return NewClinicClient(restClient, zap.NewNop())
}

func TestClinicClient_GetClinics(t *testing.T) {
	t.Run("Forwards Pagination Options", func(t *testing.T) {
		var seenQuery string
		router := chi.NewRouter()
		router.Get("/v1/clinics", func(w http.ResponseWriter, r *http.Request) {
			seenQuery = r.URL.RawQuery
			w.Write([]byte(`[{"id":"c1","name":"Coastal"},{"id":"c2","name":"Northside"}]`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		clinicClient := newTestClinicClient(server.URL)

		clinics, err := clinicClient.GetClinics(context.Background(), &requests.ListOptions{Limit: 2, Offset: 4})

		assert.NoError(t, err)
		assert.Len(t, clinics, 2)
		assert.Equal(t, "Coastal", clinics[0].Name)
		assert.Contains(t, seenQuery, "limit=2")
		assert.Contains(t, seenQuery, "offset=4")
	})

	t.Run("Missing Collection Reads As Empty", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/v1/clinics", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		clinicClient := newTestClinicClient(server.URL)

		clinics, err := clinicClient.GetClinics(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, clinics)
	})
}

func TestClinicClient_CreateClinic(t *testing.T) {
	t.Run("Rejects Missing Email Without Network Call", func(t *testing.T) {
		called := false
		router := chi.NewRouter()
		router.Post("/v1/clinics", func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		server := httptest.NewServer(router)
		defer server.Close()

		clinicClient := newTestClinicClient(server.URL)

		created, err := clinicClient.CreateClinic(context.Background(), &requests.Clinic{Name: "Coastal"})

		assert.Error(t, err)
		assert.Nil(t, created)
		assert.False(t, called)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Returns Created Clinic", func(t *testing.T) {
		var seenBody map[string]interface{}
		router := chi.NewRouter()
		router.Post("/v1/clinics", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&seenBody)
			w.Write([]byte(`{"id":"c9","name":"Coastal","email":"admin@coastal.org","shareCode":"ABCD-1234"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		clinicClient := newTestClinicClient(server.URL)

		created, err := clinicClient.CreateClinic(context.Background(), &requests.Clinic{
			Name:  "Coastal",
			Email: "admin@coastal.org",
		})

		assert.NoError(t, err)
		assert.Equal(t, "c9", created.ID)
		assert.Equal(t, "ABCD-1234", created.ShareCode)
		assert.Equal(t, "admin@coastal.org", seenBody["email"])
	})
}

func TestClinicClient_PathPreconditions(t *testing.T) {
	clinicClient := newTestClinicClient("http://127.0.0.1:1")

	t.Run("GetClinic Requires Clinic ID", func(t *testing.T) {
		clinic, err := clinicClient.GetClinic(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, clinic)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("GetClinician Requires Both IDs", func(t *testing.T) {
		_, err := clinicClient.GetClinician(context.Background(), "c1", "")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("DismissClinicianInvite Requires Invite ID", func(t *testing.T) {
		err := clinicClient.DismissClinicianInvite(context.Background(), "u1", "")

		assert.Error(t, err)
	})
}

func TestClinicClient_PatientManagement(t *testing.T) {
	t.Run("GetPatientsForClinic Hits Scoped Path", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/v1/clinics/c1/patients", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":"p1","fullName":"Jamie Jellyfish"}]`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		clinicClient := newTestClinicClient(server.URL)

		patients, err := clinicClient.GetPatientsForClinic(context.Background(), "c1", nil)

		assert.NoError(t, err)
		assert.Len(t, patients, 1)
		assert.Equal(t, "Jamie Jellyfish", patients[0].FullName)
	})

	t.Run("UpdatePatientPermissions Round Trips", func(t *testing.T) {
		var seenBody map[string]interface{}
		router := chi.NewRouter()
		router.Put("/v1/clinics/c1/patients/p1/permissions", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&seenBody)
			w.Write([]byte(`{"view":{},"upload":{}}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		clinicClient := newTestClinicClient(server.URL)

		updated, err := clinicClient.UpdatePatientPermissions(context.Background(), "c1", "p1", requests.Permissions{"view": map[string]interface{}{}})

		assert.NoError(t, err)
		assert.Contains(t, seenBody, "view")
		assert.Contains(t, updated, "upload")
	})

	t.Run("CreateCustodialPatientAccount Requires Full Name", func(t *testing.T) {
		clinicClient := newTestClinicClient("http://127.0.0.1:1")

		created, err := clinicClient.CreateCustodialPatientAccount(context.Background(), "c1", &requests.CustodialPatient{MRN: "12345"})

		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestClinicClient_Invites(t *testing.T) {
	t.Run("ResendClinicianInvite Uses Patch", func(t *testing.T) {
		var seenMethod string
		router := chi.NewRouter()
		router.Patch("/v1/clinics/c1/invites/clinicians/inv1", func(w http.ResponseWriter, r *http.Request) {
			seenMethod = r.Method
			w.Write([]byte(`{"key":"inv1","status":"pending"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		clinicClient := newTestClinicClient(server.URL)

		resent, err := clinicClient.ResendClinicianInvite(context.Background(), "c1", "inv1")

		assert.NoError(t, err)
		assert.Equal(t, http.MethodPatch, seenMethod)
		assert.Equal(t, "pending", resent.Status)
	})

	t.Run("InviteClinic Treats Non 200 As Error", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/confirm/send/invite/p1/clinic", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"unknown share code"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		clinicClient := newTestClinicClient(server.URL)

		created, err := clinicClient.InviteClinic(context.Background(), "p1", &requests.ClinicInvite{ShareCode: "ABCD-1234"})

		assert.Error(t, err)
		assert.Nil(t, created)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
		assert.Contains(t, customErr.ResponseBody, "unknown share code")
	})

	t.Run("GetClinicianInvites For User", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/v1/clinicians/u1/invites", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"key":"inv1","email":"doc@coastal.org"}]`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		clinicClient := newTestClinicClient(server.URL)

		invites, err := clinicClient.GetClinicianInvites(context.Background(), "u1")

		assert.NoError(t, err)
		assert.Len(t, invites, 1)
		assert.Equal(t, "doc@coastal.org", invites[0].Email)
	})
}
