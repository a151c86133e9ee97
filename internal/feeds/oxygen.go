package feeds

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shenikar/alertcare_dispatch/internal/models"
)

const oxygenPath = "/facilities/{facilityId}/oxygen"

type OxygenSensorClient struct {
	client *resty.Client
}

func NewOxygenSensorClient(baseURL string, timeout time.Duration) *OxygenSensorClient {
	return &OxygenSensorClient{client: newRestyClient(baseURL, timeout)}
}

// OxygenPressure возвращает давление в магистрали кислорода, psi
func (c *OxygenSensorClient) OxygenPressure(ctx context.Context, facilityID string) (*models.OxygenReading, error) {
	return getJSON[models.OxygenReading](ctx, c.client, "oxygen sensor", oxygenPath, facilityID)
}
