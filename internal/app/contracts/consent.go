package contracts

import (
	"context"

	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/dto/responses"
)

type ConsentClient interface {
	GetLatestConsentByType(ctx context.Context, consentType string) (*responses.Consent, error)
	GetUserConsentRecords(ctx context.Context, userID, consentType string) ([]responses.UserConsentRecord, error)
	CreateUserConsentRecord(ctx context.Context, userID string, record *requests.ConsentRecord) (*responses.UserConsentRecord, error)
	UpdateUserConsentRecord(ctx context.Context, userID, recordID string, updates *requests.ConsentRecordUpdate) (*responses.UserConsentRecord, error)
	RevokeUserConsentRecord(ctx context.Context, userID, recordID string) error
}
