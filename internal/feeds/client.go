// Package feeds содержит HTTP адаптеры фидов ресурсов учреждения:
// коечный фонд (ADT), датчик давления кислорода, трекер скорой помощи.
package feeds

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// StatusError - фид ответил не 2xx
type StatusError struct {
	Feed       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s feed returned status %d: %s", e.Feed, e.StatusCode, e.Body)
}

// newRestyClient создает клиента без повторов: таймаут фида трактуется как отказ
func newRestyClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

func getJSON[T any](ctx context.Context, client *resty.Client, feed, path, facilityID string) (*T, error) {
	var out T
	resp, err := client.R().
		SetContext(ctx).
		SetPathParam("facilityId", facilityID).
		SetResult(&out).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s feed request failed: %w", feed, err)
	}
	if resp.IsError() {
		return nil, &StatusError{Feed: feed, StatusCode: resp.StatusCode(), Body: strings.TrimSpace(resp.String())}
	}
	return &out, nil
}
