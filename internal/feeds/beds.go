package feeds

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shenikar/alertcare_dispatch/internal/models"
)

const bedCensusPath = "/facilities/{facilityId}/beds"

// BedCensusClient опрашивает ADT систему учреждения
type BedCensusClient struct {
	client *resty.Client
}

func NewBedCensusClient(baseURL string, timeout time.Duration) *BedCensusClient {
	return &BedCensusClient{client: newRestyClient(baseURL, timeout)}
}

func (c *BedCensusClient) BedCensus(ctx context.Context, facilityID string) (*models.BedCensus, error) {
	return getJSON[models.BedCensus](ctx, c.client, "bed census", bedCensusPath, facilityID)
}
