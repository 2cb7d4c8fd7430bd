package consents

import (
	"context"
	"fmt"
	"net/url"

	"platform-client/internal/app/contracts"
	"platform-client/internal/pkg/constvars"
	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/dto/responses"
	"platform-client/internal/pkg/exceptions"
	"platform-client/internal/pkg/statusmap"
	"platform-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type consentClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewConsentClient(restClient contracts.RestClient, logger *zap.Logger) contracts.ConsentClient {
	return &consentClient{
		Rest: restClient,
		Log:  logger,
	}
}

func (c *consentClient) GetLatestConsentByType(ctx context.Context, consentType string) (*responses.Consent, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("consentClient.GetLatestConsentByType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentTypeKey, consentType),
	)

	if consentType == "" {
		return nil, exceptions.ErrMissingPathSegment("consentType")
	}

	consent := new(responses.Consent)
	path := fmt.Sprintf("%s/%s", constvars.EndpointConsents, url.PathEscape(consentType))
	consentMap := statusmap.Map{constvars.StatusOK: statusmap.Body, constvars.StatusNotFound: statusmap.Null}
	if err := c.Rest.DoGetWithToken(ctx, path, consentMap, consent); err != nil {
		return nil, err
	}
	return consent, nil
}

func (c *consentClient) GetUserConsentRecords(ctx context.Context, userID, consentType string) ([]responses.UserConsentRecord, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("consentClient.GetUserConsentRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingConsentTypeKey, consentType),
	)

	if userID == "" {
		return nil, exceptions.ErrMissingPathSegment("userId")
	}
	if consentType == "" {
		return nil, exceptions.ErrMissingPathSegment("consentType")
	}

	var records []responses.UserConsentRecord
	path := fmt.Sprintf("%s/%s/consents?%s=%s", constvars.EndpointUsers, userID, constvars.QueryParamType, url.QueryEscape(consentType))
	listMap := statusmap.Map{constvars.StatusOK: statusmap.Body, constvars.StatusNotFound: statusmap.EmptyList}
	if err := c.Rest.DoGetWithToken(ctx, path, listMap, &records); err != nil {
		return nil, err
	}

	c.Log.Info("consentClient.GetUserConsentRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(records)),
	)
	return records, nil
}

func (c *consentClient) CreateUserConsentRecord(ctx context.Context, userID string, record *requests.ConsentRecord) (*responses.UserConsentRecord, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("consentClient.CreateUserConsentRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if userID == "" {
		return nil, exceptions.ErrMissingPathSegment("userId")
	}
	if err := utils.ValidateStruct(record); err != nil {
		return nil, err
	}

	created := new(responses.UserConsentRecord)
	path := fmt.Sprintf("%s/%s/consents", constvars.EndpointUsers, userID)
	okMap := statusmap.Map{constvars.StatusOK: statusmap.Body}
	if err := c.Rest.DoPostWithToken(ctx, path, record, okMap, created); err != nil {
		return nil, err
	}

	c.Log.Info("consentClient.CreateUserConsentRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, created.ID),
	)
	return created, nil
}

func (c *consentClient) UpdateUserConsentRecord(ctx context.Context, userID, recordID string, updates *requests.ConsentRecordUpdate) (*responses.UserConsentRecord, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("consentClient.UpdateUserConsentRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	if userID == "" {
		return nil, exceptions.ErrMissingPathSegment("userId")
	}
	if recordID == "" {
		return nil, exceptions.ErrMissingPathSegment("recordId")
	}
	if err := utils.ValidateStruct(updates); err != nil {
		return nil, err
	}

	updated := new(responses.UserConsentRecord)
	path := fmt.Sprintf("%s/%s/consents/%s", constvars.EndpointUsers, userID, recordID)
	okMap := statusmap.Map{constvars.StatusOK: statusmap.Body}
	if err := c.Rest.DoPatchWithToken(ctx, path, updates, okMap, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *consentClient) RevokeUserConsentRecord(ctx context.Context, userID, recordID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("consentClient.RevokeUserConsentRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	if userID == "" {
		return exceptions.ErrMissingPathSegment("userId")
	}
	if recordID == "" {
		return exceptions.ErrMissingPathSegment("recordId")
	}

	path := fmt.Sprintf("%s/%s/consents/%s", constvars.EndpointUsers, userID, recordID)
	revokedMap := statusmap.Map{constvars.StatusNoContent: statusmap.Null}
	return c.Rest.DoDeleteWithToken(ctx, path, revokedMap, nil)
}
