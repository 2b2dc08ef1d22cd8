package backend

import (
	"context"
	"errors"
	"net/http"

	"tradeworker/internal/models"
)

func (c *Client) DailyMetrics(ctx context.Context) (*models.DailyMetrics, error) {
	var out models.DailyMetrics

	if err := c.doRequest(ctx, http.MethodGet, "/metrics/btc/daily/latest", nil, nil, &out); err != nil {
		return nil, noData(err)
	}

	return &out, nil
}

func (c *Client) LiquidityStatus(ctx context.Context) (*models.LiquidityStatus, error) {
	var out models.LiquidityStatus

	if err := c.doRequest(ctx, http.MethodGet, "/liquidity/global/latest", nil, nil, &out); err != nil {
		return nil, noData(err)
	}

	return &out, nil
}

func noData(err error) error {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) && fetchErr.Status == http.StatusNotFound {
		return ErrNoData
	}
	return err
}
