package contracts

import (
	"context"

	"platform-client/internal/pkg/dto/responses"
)

type DeviceClient interface {
	GetCGMDevices(ctx context.Context) ([]responses.Device, error)
	GetPumpDevices(ctx context.Context) ([]responses.Device, error)
}
