package devices

import (
	"context"

	"platform-client/internal/app/contracts"
	"platform-client/internal/pkg/constvars"
	"platform-client/internal/pkg/dto/responses"
	"platform-client/internal/pkg/statusmap"
	"platform-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// A catalog endpoint answering 404 means no devices of that kind are
// published yet.
var catalogStatusMap = statusmap.Map{constvars.StatusOK: statusmap.Body, constvars.StatusNotFound: statusmap.EmptyList}

type deviceClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewDeviceClient(restClient contracts.RestClient, logger *zap.Logger) contracts.DeviceClient {
	return &deviceClient{
		Rest: restClient,
		Log:  logger,
	}
}

func (c *deviceClient) GetCGMDevices(ctx context.Context) ([]responses.Device, error) {
	return c.getCatalog(ctx, "deviceClient.GetCGMDevices", constvars.EndpointDevicesCGMs)
}

func (c *deviceClient) GetPumpDevices(ctx context.Context) ([]responses.Device, error) {
	return c.getCatalog(ctx, "deviceClient.GetPumpDevices", constvars.EndpointDevicesPumps)
}

func (c *deviceClient) getCatalog(ctx context.Context, operation, path string) ([]responses.Device, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var devices []responses.Device
	if err := c.Rest.DoGetWithToken(ctx, path, catalogStatusMap, &devices); err != nil {
		return nil, err
	}

	c.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(devices)),
	)
	return devices, nil
}
