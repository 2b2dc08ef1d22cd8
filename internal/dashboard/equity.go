package dashboard

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"tradeworker/internal/logger"
	"tradeworker/internal/models"
)

// AccountView держит последний снимок маржинального счёта. Снимок
// загружается один раз за сессию и заменяется целиком при ручном
// обновлении.
type AccountView struct {
	client BackendClient
	log    *logger.Logger

	mu      sync.Mutex
	account *models.MarginAccount
}

func NewAccountView(client BackendClient, log *logger.Logger) *AccountView {
	return &AccountView{
		client: client,
		log:    log,
	}
}

func (v *AccountView) Load(ctx context.Context) (*models.MarginAccount, error) {
	account, err := v.client.MarginAccount(ctx)
	if err != nil {
		v.log.WithComponent("account").WithError(err).Warn("Не удалось загрузить маржинальный счёт.")
		return nil, err
	}

	v.mu.Lock()
	v.account = account
	v.mu.Unlock()

	return account, nil
}

func (v *AccountView) Account() *models.MarginAccount {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.account
}

// Equity считает стоимость счёта в валюте котировки: netBase * lastPrice.
// Пока нет снимка или живой цены — false, отображается заглушка.
func Equity(account *models.MarginAccount, lastPrice float64, hasPrice bool) (decimal.Decimal, bool) {
	if account == nil || !hasPrice {
		return decimal.Decimal{}, false
	}
	return account.TotalNetAssetOfBtc.Mul(decimal.NewFromFloat(lastPrice)), true
}

// NonZeroAssets — представление для отображения, исходный снимок не меняет.
func NonZeroAssets(account *models.MarginAccount) []models.MarginAsset {
	if account == nil {
		return nil
	}

	var assets []models.MarginAsset
	for _, asset := range account.UserAssets {
		if !asset.NetAsset.IsZero() {
			assets = append(assets, asset)
		}
	}
	return assets
}
