package prescriptions

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

	"go.uber.org/zap"
)

type prescriptionClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewPrescriptionClient(restClient contracts.RestClient, logger *zap.Logger) contracts.PrescriptionClient {
	return &prescriptionClient{
		Rest: restClient,
		Log:  logger,
	}
}

func (c *prescriptionClient) CreatePrescription(ctx context.Context, prescription requests.Prescription) (responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("prescriptionClient.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var created responses.Prescription
	createdMap := statusmap.Map{constvars.StatusCreated: statusmap.Body}
	if err := c.Rest.DoPostWithToken(ctx, constvars.EndpointPrescriptions, prescription, createdMap, &created); err != nil {
		return nil, err
	}

	c.Log.Info("prescriptionClient.CreatePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return created, nil
}

func (c *prescriptionClient) CreatePrescriptionRevision(ctx context.Context, prescriptionID string, revision requests.PrescriptionRevision) (responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("prescriptionClient.CreatePrescriptionRevision called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	if prescriptionID == "" {
		return nil, exceptions.ErrMissingPathSegment("prescriptionId")
	}

	var revised responses.Prescription
	path := fmt.Sprintf("%s/%s/revisions", constvars.EndpointPrescriptions, prescriptionID)
	okMap := statusmap.Map{constvars.StatusOK: statusmap.Body}
	if err := c.Rest.DoPostWithToken(ctx, path, revision, okMap, &revised); err != nil {
		return nil, err
	}
	return revised, nil
}

func (c *prescriptionClient) DeletePrescription(ctx context.Context, prescriptionID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("prescriptionClient.DeletePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	if prescriptionID == "" {
		return exceptions.ErrMissingPathSegment("prescriptionId")
	}

	path := fmt.Sprintf("%s/%s", constvars.EndpointPrescriptions, prescriptionID)
	deletedMap := statusmap.Map{constvars.StatusOK: statusmap.Null, constvars.StatusNoContent: statusmap.Null}
	return c.Rest.DoDeleteWithToken(ctx, path, deletedMap, nil)
}

func (c *prescriptionClient) GetPrescriptions(ctx context.Context) ([]responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("prescriptionClient.GetPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var prescriptions []responses.Prescription
	listMap := statusmap.Map{constvars.StatusOK: statusmap.Body, constvars.StatusNotFound: statusmap.EmptyList}
	if err := c.Rest.DoGetWithToken(ctx, constvars.EndpointPrescriptions, listMap, &prescriptions); err != nil {
		return nil, err
	}

	c.Log.Info("prescriptionClient.GetPrescriptions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(prescriptions)),
	)
	return prescriptions, nil
}

func (c *prescriptionClient) GetPrescriptionsForClinic(ctx context.Context, clinicID string) ([]responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("prescriptionClient.GetPrescriptionsForClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}

	var prescriptions []responses.Prescription
	path := fmt.Sprintf("%s/%s/prescriptions", constvars.EndpointClinics, clinicID)
	listMap := statusmap.Map{constvars.StatusOK: statusmap.Body, constvars.StatusNotFound: statusmap.EmptyList}
	if err := c.Rest.DoGetWithToken(ctx, path, listMap, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (c *prescriptionClient) CreateClinicPrescription(ctx context.Context, clinicID string, prescription requests.Prescription) (responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("prescriptionClient.CreateClinicPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}

	var created responses.Prescription
	path := fmt.Sprintf("%s/%s/prescriptions", constvars.EndpointClinics, clinicID)
	createdMap := statusmap.Map{constvars.StatusCreated: statusmap.Body}
	if err := c.Rest.DoPostWithToken(ctx, path, prescription, createdMap, &created); err != nil {
		return nil, err
	}
	return created, nil
}
