package contracts

import (
	"context"

	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/dto/responses"
)

type PrescriptionClient interface {
	CreatePrescription(ctx context.Context, prescription requests.Prescription) (responses.Prescription, error)
	CreatePrescriptionRevision(ctx context.Context, prescriptionID string, revision requests.PrescriptionRevision) (responses.Prescription, error)
	DeletePrescription(ctx context.Context, prescriptionID string) error
	GetPrescriptions(ctx context.Context) ([]responses.Prescription, error)
	GetPrescriptionsForClinic(ctx context.Context, clinicID string) ([]responses.Prescription, error)
	CreateClinicPrescription(ctx context.Context, clinicID string, prescription requests.Prescription) (responses.Prescription, error)
}
