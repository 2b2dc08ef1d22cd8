package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"tradeworker/internal/backend"
	"tradeworker/internal/logger"
	"tradeworker/internal/models"
)

// MarketContext — рыночные карточки: дневные метрики и глобальная
// ликвидность. Каждая загружается независимо и может отсутствовать.
type MarketContext struct {
	Metrics      *models.DailyMetrics
	Liquidity    *models.LiquidityStatus
	MetricsErr   error
	LiquidityErr error
}

type ContextLoader struct {
	client BackendClient
	log    *logrus.Entry
}

func NewContextLoader(client BackendClient, log *logger.Logger) *ContextLoader {
	return &ContextLoader{
		client: client,
		log:    log.WithComponent("market_context"),
	}
}

func (l *ContextLoader) Load(ctx context.Context) MarketContext {
	var mc MarketContext
	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()
		mc.Metrics, mc.MetricsErr = l.client.DailyMetrics(ctx)
		l.warn("метрики", mc.MetricsErr)
	}()

	go func() {
		defer wg.Done()
		mc.Liquidity, mc.LiquidityErr = l.client.LiquidityStatus(ctx)
		l.warn("ликвидность", mc.LiquidityErr)
	}()

	wg.Wait()

	return mc
}

func (l *ContextLoader) warn(what string, err error) {
	if err == nil || errors.Is(err, backend.ErrNoData) {
		return
	}
	l.log.WithError(err).Warn("Не удалось загрузить " + what + ".")
}
