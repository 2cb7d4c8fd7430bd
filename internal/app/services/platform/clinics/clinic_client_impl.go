package clinics

import (
	"context"
	"fmt"

	"platform-client/internal/app/contracts"
	"platform-client/internal/pkg/constvars"
	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/dto/responses"
	"platform-client/internal/pkg/exceptions"
	"platform-client/internal/pkg/queries"
	"platform-client/internal/pkg/statusmap"
	"platform-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// Status maps shared by the clinic endpoints. List lookups read a missing
// collection as empty; detail lookups read a missing record as a nil result.
var (
	listStatusMap   = statusmap.Map{constvars.StatusOK: statusmap.Body, constvars.StatusNotFound: statusmap.EmptyList}
	detailStatusMap = statusmap.Map{constvars.StatusOK: statusmap.Body, constvars.StatusNotFound: statusmap.Null}
)

type clinicClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewClinicClient(restClient contracts.RestClient, logger *zap.Logger) contracts.ClinicClient {
	return &clinicClient{
		Rest: restClient,
		Log:  logger,
	}
}

func (c *clinicClient) GetClinics(ctx context.Context, options *requests.ListOptions) ([]responses.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetClinics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	path, err := queries.AppendToPath(constvars.EndpointClinics, options.Params())
	if err != nil {
		return nil, err
	}

	var clinics []responses.Clinic
	if err := c.Rest.DoGetWithToken(ctx, path, listStatusMap, &clinics); err != nil {
		return nil, err
	}

	c.Log.Info("clinicClient.GetClinics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(clinics)),
	)
	return clinics, nil
}

func (c *clinicClient) CreateClinic(ctx context.Context, clinic *requests.Clinic) (*responses.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.CreateClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(clinic); err != nil {
		return nil, err
	}

	created := new(responses.Clinic)
	if err := c.Rest.DoPostWithToken(ctx, constvars.EndpointClinics, clinic, detailStatusMap, created); err != nil {
		return nil, err
	}

	c.Log.Info("clinicClient.CreateClinic succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, created.ID),
	)
	return created, nil
}

func (c *clinicClient) GetClinic(ctx context.Context, clinicID string) (*responses.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}

	clinic := new(responses.Clinic)
	path := fmt.Sprintf("%s/%s", constvars.EndpointClinics, clinicID)
	if err := c.Rest.DoGetWithToken(ctx, path, detailStatusMap, clinic); err != nil {
		return nil, err
	}
	return clinic, nil
}

func (c *clinicClient) UpdateClinic(ctx context.Context, clinicID string, clinic *requests.Clinic) (*responses.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.UpdateClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}
	if err := utils.ValidateStruct(clinic); err != nil {
		return nil, err
	}

	updated := new(responses.Clinic)
	path := fmt.Sprintf("%s/%s", constvars.EndpointClinics, clinicID)
	if err := c.Rest.DoPutWithToken(ctx, path, clinic, detailStatusMap, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *clinicClient) DeleteClinic(ctx context.Context, clinicID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.DeleteClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return exceptions.ErrMissingPathSegment("clinicId")
	}

	path := fmt.Sprintf("%s/%s", constvars.EndpointClinics, clinicID)
	return c.Rest.DoDeleteWithToken(ctx, path, detailStatusMap, nil)
}

func (c *clinicClient) GetCliniciansFromClinic(ctx context.Context, clinicID string, options *requests.ListOptions) ([]responses.Clinician, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetCliniciansFromClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}

	path, err := queries.AppendToPath(fmt.Sprintf("%s/%s/clinicians", constvars.EndpointClinics, clinicID), options.Params())
	if err != nil {
		return nil, err
	}

	var clinicians []responses.Clinician
	if err := c.Rest.DoGetWithToken(ctx, path, listStatusMap, &clinicians); err != nil {
		return nil, err
	}
	return clinicians, nil
}

func (c *clinicClient) GetClinician(ctx context.Context, clinicID, clinicianID string) (*responses.Clinician, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetClinician called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingClinicianIDKey, clinicianID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}
	if clinicianID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicianId")
	}

	clinician := new(responses.Clinician)
	path := fmt.Sprintf("%s/%s/clinicians/%s", constvars.EndpointClinics, clinicID, clinicianID)
	if err := c.Rest.DoGetWithToken(ctx, path, detailStatusMap, clinician); err != nil {
		return nil, err
	}
	return clinician, nil
}

func (c *clinicClient) UpdateClinician(ctx context.Context, clinicID, clinicianID string, clinician *requests.Clinician) (*responses.Clinician, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.UpdateClinician called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingClinicianIDKey, clinicianID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}
	if clinicianID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicianId")
	}

	updated := new(responses.Clinician)
	path := fmt.Sprintf("%s/%s/clinicians/%s", constvars.EndpointClinics, clinicID, clinicianID)
	if err := c.Rest.DoPutWithToken(ctx, path, clinician, detailStatusMap, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *clinicClient) DeleteClinicianFromClinic(ctx context.Context, clinicID, clinicianID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.DeleteClinicianFromClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingClinicianIDKey, clinicianID),
	)

	if clinicID == "" {
		return exceptions.ErrMissingPathSegment("clinicId")
	}
	if clinicianID == "" {
		return exceptions.ErrMissingPathSegment("clinicianId")
	}

	path := fmt.Sprintf("%s/%s/clinicians/%s", constvars.EndpointClinics, clinicID, clinicianID)
	return c.Rest.DoDeleteWithToken(ctx, path, detailStatusMap, nil)
}

func (c *clinicClient) GetPatientsForClinic(ctx context.Context, clinicID string, options *requests.ListOptions) ([]responses.ClinicPatient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetPatientsForClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}

	path, err := queries.AppendToPath(fmt.Sprintf("%s/%s/patients", constvars.EndpointClinics, clinicID), options.Params())
	if err != nil {
		return nil, err
	}

	var patients []responses.ClinicPatient
	if err := c.Rest.DoGetWithToken(ctx, path, listStatusMap, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *clinicClient) CreateCustodialPatientAccount(ctx context.Context, clinicID string, patient *requests.CustodialPatient) (*responses.ClinicPatient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.CreateCustodialPatientAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}
	if err := utils.ValidateStruct(patient); err != nil {
		return nil, err
	}

	created := new(responses.ClinicPatient)
	path := fmt.Sprintf("%s/%s/patients", constvars.EndpointClinics, clinicID)
	if err := c.Rest.DoPostWithToken(ctx, path, patient, detailStatusMap, created); err != nil {
		return nil, err
	}

	c.Log.Info("clinicClient.CreateCustodialPatientAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, created.ID),
	)
	return created, nil
}

func (c *clinicClient) GetPatientFromClinic(ctx context.Context, clinicID, patientID string) (*responses.ClinicPatient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetPatientFromClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}
	if patientID == "" {
		return nil, exceptions.ErrMissingPathSegment("patientId")
	}

	patient := new(responses.ClinicPatient)
	path := fmt.Sprintf("%s/%s/patients/%s", constvars.EndpointClinics, clinicID, patientID)
	if err := c.Rest.DoGetWithToken(ctx, path, detailStatusMap, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *clinicClient) UpdateClinicPatient(ctx context.Context, clinicID, patientID string, patient *requests.CustodialPatient) (*responses.ClinicPatient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.UpdateClinicPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}
	if patientID == "" {
		return nil, exceptions.ErrMissingPathSegment("patientId")
	}

	updated := new(responses.ClinicPatient)
	path := fmt.Sprintf("%s/%s/patients/%s", constvars.EndpointClinics, clinicID, patientID)
	if err := c.Rest.DoPutWithToken(ctx, path, patient, detailStatusMap, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *clinicClient) UpdatePatientPermissions(ctx context.Context, clinicID, patientID string, permissions requests.Permissions) (requests.Permissions, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.UpdatePatientPermissions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}
	if patientID == "" {
		return nil, exceptions.ErrMissingPathSegment("patientId")
	}

	var updated requests.Permissions
	path := fmt.Sprintf("%s/%s/patients/%s/permissions", constvars.EndpointClinics, clinicID, patientID)
	if err := c.Rest.DoPutWithToken(ctx, path, permissions, detailStatusMap, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *clinicClient) InviteClinician(ctx context.Context, clinicID string, invite *requests.ClinicianInvite) (*responses.Invite, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.InviteClinician called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}
	if err := utils.ValidateStruct(invite); err != nil {
		return nil, err
	}

	created := new(responses.Invite)
	path := fmt.Sprintf("%s/%s/invites/clinicians", constvars.EndpointClinics, clinicID)
	if err := c.Rest.DoPostWithToken(ctx, path, invite, detailStatusMap, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *clinicClient) ResendClinicianInvite(ctx context.Context, clinicID, inviteID string) (*responses.Invite, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.ResendClinicianInvite called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingInviteIDKey, inviteID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}
	if inviteID == "" {
		return nil, exceptions.ErrMissingPathSegment("inviteId")
	}

	resent := new(responses.Invite)
	path := fmt.Sprintf("%s/%s/invites/clinicians/%s", constvars.EndpointClinics, clinicID, inviteID)
	if err := c.Rest.DoPatchWithToken(ctx, path, nil, detailStatusMap, resent); err != nil {
		return nil, err
	}
	return resent, nil
}

func (c *clinicClient) DeleteClinicianInvite(ctx context.Context, clinicID, inviteID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.DeleteClinicianInvite called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingInviteIDKey, inviteID),
	)

	if clinicID == "" {
		return exceptions.ErrMissingPathSegment("clinicId")
	}
	if inviteID == "" {
		return exceptions.ErrMissingPathSegment("inviteId")
	}

	path := fmt.Sprintf("%s/%s/invites/clinicians/%s", constvars.EndpointClinics, clinicID, inviteID)
	return c.Rest.DoDeleteWithToken(ctx, path, detailStatusMap, nil)
}

func (c *clinicClient) GetPatientInvites(ctx context.Context, clinicID string) ([]responses.Invite, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetPatientInvites called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if clinicID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicId")
	}

	var invites []responses.Invite
	path := fmt.Sprintf("%s/%s/invites/patients", constvars.EndpointClinics, clinicID)
	if err := c.Rest.DoGetWithToken(ctx, path, listStatusMap, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

func (c *clinicClient) AcceptPatientInvitation(ctx context.Context, clinicID, inviteID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.AcceptPatientInvitation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingInviteIDKey, inviteID),
	)

	if clinicID == "" {
		return exceptions.ErrMissingPathSegment("clinicId")
	}
	if inviteID == "" {
		return exceptions.ErrMissingPathSegment("inviteId")
	}

	path := fmt.Sprintf("%s/%s/invites/patients/%s", constvars.EndpointClinics, clinicID, inviteID)
	return c.Rest.DoPutWithToken(ctx, path, nil, detailStatusMap, nil)
}

func (c *clinicClient) GetClinicsForPatient(ctx context.Context, userID string, options *requests.ListOptions) ([]responses.ClinicRelationship, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetClinicsForPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if userID == "" {
		return nil, exceptions.ErrMissingPathSegment("userId")
	}

	path, err := queries.AppendToPath(fmt.Sprintf("%s/%s/clinics", constvars.EndpointPatients, userID), options.Params())
	if err != nil {
		return nil, err
	}

	var relationships []responses.ClinicRelationship
	if err := c.Rest.DoGetWithToken(ctx, path, listStatusMap, &relationships); err != nil {
		return nil, err
	}
	return relationships, nil
}

func (c *clinicClient) GetClinicianInvites(ctx context.Context, userID string) ([]responses.Invite, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetClinicianInvites called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if userID == "" {
		return nil, exceptions.ErrMissingPathSegment("userId")
	}

	var invites []responses.Invite
	path := fmt.Sprintf("%s/%s/invites", constvars.EndpointClinicians, userID)
	if err := c.Rest.DoGetWithToken(ctx, path, listStatusMap, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

func (c *clinicClient) AcceptClinicianInvite(ctx context.Context, userID, inviteID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.AcceptClinicianInvite called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingInviteIDKey, inviteID),
	)

	if userID == "" {
		return exceptions.ErrMissingPathSegment("userId")
	}
	if inviteID == "" {
		return exceptions.ErrMissingPathSegment("inviteId")
	}

	path := fmt.Sprintf("%s/%s/invites/%s", constvars.EndpointClinicians, userID, inviteID)
	return c.Rest.DoPutWithToken(ctx, path, nil, detailStatusMap, nil)
}

func (c *clinicClient) DismissClinicianInvite(ctx context.Context, userID, inviteID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.DismissClinicianInvite called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingInviteIDKey, inviteID),
	)

	if userID == "" {
		return exceptions.ErrMissingPathSegment("userId")
	}
	if inviteID == "" {
		return exceptions.ErrMissingPathSegment("inviteId")
	}

	path := fmt.Sprintf("%s/%s/invites/%s", constvars.EndpointClinicians, userID, inviteID)
	return c.Rest.DoDeleteWithToken(ctx, path, detailStatusMap, nil)
}

func (c *clinicClient) GetClinicsForClinician(ctx context.Context, clinicianID string, options *requests.ListOptions) ([]responses.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.GetClinicsForClinician called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicianIDKey, clinicianID),
	)

	if clinicianID == "" {
		return nil, exceptions.ErrMissingPathSegment("clinicianId")
	}

	path, err := queries.AppendToPath(fmt.Sprintf("%s/%s/clinics", constvars.EndpointClinicians, clinicianID), options.Params())
	if err != nil {
		return nil, err
	}

	var clinics []responses.Clinic
	if err := c.Rest.DoGetWithToken(ctx, path, listStatusMap, &clinics); err != nil {
		return nil, err
	}
	return clinics, nil
}

func (c *clinicClient) InviteClinic(ctx context.Context, patientID string, invite *requests.ClinicInvite) (*responses.Invite, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicClient.InviteClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if patientID == "" {
		return nil, exceptions.ErrMissingPathSegment("patientId")
	}
	if err := utils.ValidateStruct(invite); err != nil {
		return nil, err
	}

	created := new(responses.Invite)
	path := fmt.Sprintf("%s/send/invite/%s/clinic", constvars.EndpointConfirm, patientID)
	if err := c.Rest.DoPostWithToken(ctx, path, invite, statusmap.Map{constvars.StatusOK: statusmap.Body}, created); err != nil {
		return nil, err
	}
	return created, nil
}
