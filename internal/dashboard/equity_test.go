package dashboard

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeworker/internal/models"
)

func account(netBase string, assets ...models.MarginAsset) *models.MarginAccount {
	return &models.MarginAccount{
		TotalNetAssetOfBtc: decimal.RequireFromString(netBase),
		UserAssets:         assets,
	}
}

func TestEquityPlaceholder(t *testing.T) {
	// заглушка, пока нет снимка или живой цены
	_, ok := Equity(nil, 65000.10, true)
	assert.False(t, ok)

	_, ok = Equity(account("0.5834"), 0, false)
	assert.False(t, ok)

	_, ok = Equity(nil, 0, false)
	assert.False(t, ok)
}

func TestEquityProduct(t *testing.T) {
	equity, ok := Equity(account("0.5834"), 65000.10, true)
	require.True(t, ok)

	want := decimal.RequireFromString("0.5834").Mul(decimal.NewFromFloat(65000.10))
	assert.True(t, equity.Equal(want), "equity=%s want=%s", equity, want)

	got, _ := equity.Float64()
	assert.InEpsilon(t, 0.5834*65000.10, got, 1e-9)
}

func TestNonZeroAssets(t *testing.T) {
	acct := account("1",
		models.MarginAsset{Asset: "BTC", NetAsset: decimal.RequireFromString("0.5834")},
		models.MarginAsset{Asset: "USDC", NetAsset: decimal.Zero},
		models.MarginAsset{Asset: "ETH", NetAsset: decimal.RequireFromString("-0.2")},
	)

	assets := NonZeroAssets(acct)
	require.Len(t, assets, 2)
	assert.Equal(t, "BTC", assets[0].Asset)
	assert.Equal(t, "ETH", assets[1].Asset)

	// фильтр — представление, исходный снимок не меняется
	assert.Len(t, acct.UserAssets, 3)

	assert.Nil(t, NonZeroAssets(nil))
}

func TestAccountViewLoad(t *testing.T) {
	fake := &fakeBackend{account: account("0.5834")}
	view := NewAccountView(fake, testLogger())

	assert.Nil(t, view.Account())

	loaded, err := view.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.5834", loaded.TotalNetAssetOfBtc.String())
	assert.Same(t, loaded, view.Account())
}

func TestAccountViewLoadError(t *testing.T) {
	fake := &fakeBackend{accountErr: assert.AnError}
	view := NewAccountView(fake, testLogger())

	_, err := view.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, view.Account())
}
