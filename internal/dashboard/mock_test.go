package dashboard

import (
	"context"
	"sync/atomic"

	"tradeworker/internal/logger"
	"tradeworker/internal/models"
)

type fakeBackend struct {
	account    *models.MarginAccount
	accountErr error

	bracket      *models.BracketResult
	bracketErr   error
	bracketCalls atomic.Int32
	bracketGate  chan struct{}

	page    models.OpenOrdersPage
	pageErr error

	metrics      *models.DailyMetrics
	metricsErr   error
	liquidity    *models.LiquidityStatus
	liquidityErr error
}

func (f *fakeBackend) MarginAccount(ctx context.Context) (*models.MarginAccount, error) {
	return f.account, f.accountErr
}

func (f *fakeBackend) CreateBracket(ctx context.Context, intent models.BracketIntent) (*models.BracketResult, error) {
	f.bracketCalls.Add(1)
	if f.bracketGate != nil {
		<-f.bracketGate
	}
	return f.bracket, f.bracketErr
}

func (f *fakeBackend) OpenOrders(ctx context.Context, symbol string, isolated bool) (models.OpenOrdersPage, error) {
	return f.page, f.pageErr
}

func (f *fakeBackend) DailyMetrics(ctx context.Context) (*models.DailyMetrics, error) {
	return f.metrics, f.metricsErr
}

func (f *fakeBackend) LiquidityStatus(ctx context.Context) (*models.LiquidityStatus, error) {
	return f.liquidity, f.liquidityErr
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error"})
}

func listID(id int64) *int64 {
	return &id
}
