package prescriptions

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

func newTestPrescriptionClient(serverURL string) contracts.PrescriptionClient {
	internalConfig := &config.InternalConfig{
		Platform: config.Platform{
			BaseUrl:                 serverURL,
			RequestTimeoutInSeconds: 5,
		},
	}
	restClient := rest.NewRestClient(internalConfig, staticTokenProvider("token-123"), zap.NewNop())
	return NewPrescriptionClient(restClient, zap.NewNop())
}

func TestPrescriptionClient_CreatePrescription(t *testing.T) {
	t.Run("Accepts 201 Only", func(t *testing.T) {
		var seenBody map[string]interface{}
		router := chi.NewRouter()
		router.Post("/v1/prescriptions", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&seenBody)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"rx1","state":"draft"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		prescriptionClient := newTestPrescriptionClient(server.URL)

		created, err := prescriptionClient.CreatePrescription(context.Background(), requests.Prescription{"state": "draft"})

		assert.NoError(t, err)
		assert.Equal(t, "rx1", created["id"])
		assert.Equal(t, "draft", seenBody["state"])
	})

	t.Run("Plain 200 Is Unexpected", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/v1/prescriptions", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"rx1"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		prescriptionClient := newTestPrescriptionClient(server.URL)

		created, err := prescriptionClient.CreatePrescription(context.Background(), requests.Prescription{})

		assert.Error(t, err)
		assert.Nil(t, created)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusOK, customErr.StatusCode)
	})
}

func TestPrescriptionClient_Revisions(t *testing.T) {
	t.Run("Posts Revision Under Prescription", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/v1/prescriptions/rx1/revisions", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"rx1","revisionCount":2}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		prescriptionClient := newTestPrescriptionClient(server.URL)

		revised, err := prescriptionClient.CreatePrescriptionRevision(context.Background(), "rx1", requests.PrescriptionRevision{"state": "submitted"})

		assert.NoError(t, err)
		assert.EqualValues(t, 2, revised["revisionCount"])
	})

	t.Run("Requires Prescription ID", func(t *testing.T) {
		prescriptionClient := newTestPrescriptionClient("http://127.0.0.1:1")

		_, err := prescriptionClient.CreatePrescriptionRevision(context.Background(), "", requests.PrescriptionRevision{})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	})
}

func TestPrescriptionClient_Lists(t *testing.T) {
	t.Run("GetPrescriptions Reads 404 As Empty", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/v1/prescriptions", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		prescriptionClient := newTestPrescriptionClient(server.URL)

		prescriptions, err := prescriptionClient.GetPrescriptions(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, prescriptions)
	})

	t.Run("GetPrescriptionsForClinic Hits Scoped Path", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/v1/clinics/c1/prescriptions", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":"rx1"},{"id":"rx2"}]`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		prescriptionClient := newTestPrescriptionClient(server.URL)

		prescriptions, err := prescriptionClient.GetPrescriptionsForClinic(context.Background(), "c1")

		assert.NoError(t, err)
		assert.Len(t, prescriptions, 2)
	})
}

func TestPrescriptionClient_DeletePrescription(t *testing.T) {
	t.Run("Accepts 204", func(t *testing.T) {
		router := chi.NewRouter()
		router.Delete("/v1/prescriptions/rx1", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		prescriptionClient := newTestPrescriptionClient(server.URL)

		err := prescriptionClient.DeletePrescription(context.Background(), "rx1")

		assert.NoError(t, err)
	})
}
