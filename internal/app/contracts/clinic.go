package contracts

import (
	"context"

	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/dto/responses"
)

type ClinicClient interface {
	GetClinics(ctx context.Context, options *requests.ListOptions) ([]responses.Clinic, error)
	CreateClinic(ctx context.Context, clinic *requests.Clinic) (*responses.Clinic, error)
	GetClinic(ctx context.Context, clinicID string) (*responses.Clinic, error)
	UpdateClinic(ctx context.Context, clinicID string, clinic *requests.Clinic) (*responses.Clinic, error)
	DeleteClinic(ctx context.Context, clinicID string) error

	GetCliniciansFromClinic(ctx context.Context, clinicID string, options *requests.ListOptions) ([]responses.Clinician, error)
	GetClinician(ctx context.Context, clinicID, clinicianID string) (*responses.Clinician, error)
	UpdateClinician(ctx context.Context, clinicID, clinicianID string, clinician *requests.Clinician) (*responses.Clinician, error)
	DeleteClinicianFromClinic(ctx context.Context, clinicID, clinicianID string) error

	GetPatientsForClinic(ctx context.Context, clinicID string, options *requests.ListOptions) ([]responses.ClinicPatient, error)
	CreateCustodialPatientAccount(ctx context.Context, clinicID string, patient *requests.CustodialPatient) (*responses.ClinicPatient, error)
	GetPatientFromClinic(ctx context.Context, clinicID, patientID string) (*responses.ClinicPatient, error)
	UpdateClinicPatient(ctx context.Context, clinicID, patientID string, patient *requests.CustodialPatient) (*responses.ClinicPatient, error)
	UpdatePatientPermissions(ctx context.Context, clinicID, patientID string, permissions requests.Permissions) (requests.Permissions, error)

	InviteClinician(ctx context.Context, clinicID string, invite *requests.ClinicianInvite) (*responses.Invite, error)
	ResendClinicianInvite(ctx context.Context, clinicID, inviteID string) (*responses.Invite, error)
	DeleteClinicianInvite(ctx context.Context, clinicID, inviteID string) error
	GetPatientInvites(ctx context.Context, clinicID string) ([]responses.Invite, error)
	AcceptPatientInvitation(ctx context.Context, clinicID, inviteID string) error

	GetClinicsForPatient(ctx context.Context, userID string, options *requests.ListOptions) ([]responses.ClinicRelationship, error)
	GetClinicianInvites(ctx context.Context, userID string) ([]responses.Invite, error)
	AcceptClinicianInvite(ctx context.Context, userID, inviteID string) error
	DismissClinicianInvite(ctx context.Context, userID, inviteID string) error
	GetClinicsForClinician(ctx context.Context, clinicianID string, options *requests.ListOptions) ([]responses.Clinic, error)

	InviteClinic(ctx context.Context, patientID string, invite *requests.ClinicInvite) (*responses.Invite, error)
}
