package dashboard

import (
	"context"

	"tradeworker/internal/models"
)

type BackendClient interface {
	MarginAccount(ctx context.Context) (*models.MarginAccount, error)
	CreateBracket(ctx context.Context, intent models.BracketIntent) (*models.BracketResult, error)
	OpenOrders(ctx context.Context, symbol string, isolated bool) (models.OpenOrdersPage, error)
	DailyMetrics(ctx context.Context) (*models.DailyMetrics, error)
	LiquidityStatus(ctx context.Context) (*models.LiquidityStatus, error)
}
