package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"platform-client/internal/app/config"
	"platform-client/internal/app/contracts"
	"platform-client/internal/pkg/constvars"
	"platform-client/internal/pkg/exceptions"
	"platform-client/internal/pkg/statusmap"
	"platform-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type restClient struct {
	BaseUrl       string
	HttpClient    *http.Client
	TokenProvider contracts.TokenProvider
	Limiter       *rate.Limiter
	Log           *zap.Logger
}

// NewRestClient builds the transport adapter for one client instance. A zero
// RequestsPerSecond disables request pacing.
func NewRestClient(internalConfig *config.InternalConfig, tokenProvider contracts.TokenProvider, logger *zap.Logger) contracts.RestClient {
	var limiter *rate.Limiter
	if internalConfig.Platform.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(internalConfig.Platform.RequestsPerSecond), 1)
	}
	return &restClient{
		BaseUrl: internalConfig.Platform.BaseUrl,
		HttpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Platform.RequestTimeoutInSeconds) * time.Second,
		},
		TokenProvider: tokenProvider,
		Limiter:       limiter,
		Log:           logger,
	}
}

func (c *restClient) Do(ctx context.Context, method, path string, body interface{}, basicAuth *contracts.BasicAuth) (*contracts.RawResponse, error) {
	requestID := utils.GetRequestID(ctx)
	url := c.BaseUrl + path
	c.Log.Debug("restClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingURLKey, url),
	)

	var requestBody io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("restClient.Do error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		requestBody = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		c.Log.Error("restClient.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if basicAuth != nil {
		req.SetBasicAuth(basicAuth.Username, basicAuth.Password)
	} else if token := c.TokenProvider.UserToken(); token != "" {
		req.Header.Set(constvars.HeaderSessionToken, token)
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			c.Log.Error("restClient.Do error waiting for rate limiter",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrRateLimiterWait(err)
		}
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.Log.Error("restClient.Do deadline exceeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		c.Log.Error("restClient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("restClient.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	c.Log.Debug("restClient.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return &contracts.RawResponse{
		StatusCode: resp.StatusCode,
		Body:       responseBody,
		Header:     resp.Header,
	}, nil
}

func (c *restClient) doWithToken(ctx context.Context, method, path string, body interface{}, statusMap statusmap.Map, out interface{}) error {
	resp, err := c.Do(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	return statusMap.Resolve(resp.StatusCode, resp.Body, out)
}

func (c *restClient) DoGetWithToken(ctx context.Context, path string, statusMap statusmap.Map, out interface{}) error {
	return c.doWithToken(ctx, constvars.MethodGet, path, nil, statusMap, out)
}

func (c *restClient) DoPostWithToken(ctx context.Context, path string, body interface{}, statusMap statusmap.Map, out interface{}) error {
	return c.doWithToken(ctx, constvars.MethodPost, path, body, statusMap, out)
}

func (c *restClient) DoPutWithToken(ctx context.Context, path string, body interface{}, statusMap statusmap.Map, out interface{}) error {
	return c.doWithToken(ctx, constvars.MethodPut, path, body, statusMap, out)
}

func (c *restClient) DoPatchWithToken(ctx context.Context, path string, body interface{}, statusMap statusmap.Map, out interface{}) error {
	return c.doWithToken(ctx, constvars.MethodPatch, path, body, statusMap, out)
}

func (c *restClient) DoDeleteWithToken(ctx context.Context, path string, statusMap statusmap.Map, out interface{}) error {
	return c.doWithToken(ctx, constvars.MethodDelete, path, nil, statusMap, out)
}
