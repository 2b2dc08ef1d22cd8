package backend

import (
	"context"
	"net/http"

	"tradeworker/internal/models"
)

// MarginAccount запрашивает снимок маржинального счёта. Снимок
// неизменяем: повторный запрос заменяет его целиком.
func (c *Client) MarginAccount(ctx context.Context) (*models.MarginAccount, error) {
	var out models.MarginAccount

	if err := c.doRequest(ctx, http.MethodGet, "/api/binance/margin-account", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
