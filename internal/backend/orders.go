package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"tradeworker/internal/models"
)

// CreateBracket отправляет OCO-заявку. Цены считает бэкенд по переданным
// процентам от рыночной цены на момент исполнения.
func (c *Client) CreateBracket(ctx context.Context, intent models.BracketIntent) (*models.BracketResult, error) {
	var out models.BracketResult

	if err := c.doRequest(ctx, http.MethodPost, "/api/binance/margin/order/oco", nil, intent, &out); err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return nil, &SubmissionError{Status: fetchErr.Status}
		}
		return nil, err
	}

	return &out, nil
}

func (c *Client) OpenOrders(ctx context.Context, symbol string, isolated bool) (models.OpenOrdersPage, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("isolated", strconv.FormatBool(isolated))

	var out models.OpenOrdersPage

	if err := c.doRequest(ctx, http.MethodGet, "/api/binance/margin/open-orders", params, nil, &out); err != nil {
		return models.OpenOrdersPage{}, err
	}

	return out, nil
}
