package feeds

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shenikar/alertcare_dispatch/internal/models"
)

const transportPath = "/facilities/{facilityId}/transport"

type TransportTrackerClient struct {
	client *resty.Client
}

func NewTransportTrackerClient(baseURL string, timeout time.Duration) *TransportTrackerClient {
	return &TransportTrackerClient{client: newRestyClient(baseURL, timeout)}
}

func (c *TransportTrackerClient) Transport(ctx context.Context, facilityID string) (*models.TransportStatus, error) {
	return getJSON[models.TransportStatus](ctx, c.client, "transport tracker", transportPath, facilityID)
}
