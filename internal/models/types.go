package models

import (
	"github.com/shopspring/decimal"
)

type OrderSide string
type OrderType string
type OrderStatus string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"

	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderStatusFilled          OrderStatus = "FILLED"
	OrderStatusCanceled        OrderStatus = "CANCELED"
)

type MarginAsset struct {
	Asset    string          `json:"asset"`
	Free     decimal.Decimal `json:"free"`
	Locked   decimal.Decimal `json:"locked"`
	Borrowed decimal.Decimal `json:"borrowed"`
	Interest decimal.Decimal `json:"interest"`
	NetAsset decimal.Decimal `json:"netAsset"`
}

type MarginAccount struct {
	BorrowEnabled       bool            `json:"borrowEnabled"`
	MarginLevel         decimal.Decimal `json:"marginLevel"`
	TotalAssetOfBtc     decimal.Decimal `json:"totalAssetOfBtc"`
	TotalLiabilityOfBtc decimal.Decimal `json:"totalLiabilityOfBtc"`
	TotalNetAssetOfBtc  decimal.Decimal `json:"totalNetAssetOfBtc"`
	TradeEnabled        bool            `json:"tradeEnabled"`
	TransferEnabled     bool            `json:"transferEnabled"`
	UserAssets          []MarginAsset   `json:"userAssets"`
}

type BracketIntent struct {
	Symbol            string    `json:"symbol"`
	Side              OrderSide `json:"side"`
	TakeProfitPercent float64   `json:"takeProfitPercent"`
	StopLossPercent   float64   `json:"stopLossPercent"`
	Isolated          bool      `json:"isolated"`
	Leverage          int       `json:"leverage"`
}

type OrderRef struct {
	OrderID       int64           `json:"orderId"`
	ClientOrderID string          `json:"clientOrderId,omitempty"`
	Status        OrderStatus     `json:"status,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StopPrice     decimal.Decimal `json:"stopPrice"`
	Type          OrderType       `json:"type,omitempty"`
	Side          OrderSide       `json:"side,omitempty"`
}

type BracketResult struct {
	Symbol          string          `json:"symbol"`
	EntrySide       OrderSide       `json:"entrySide"`
	Quantity        decimal.Decimal `json:"quantity"`
	ReferencePrice  decimal.Decimal `json:"referencePrice"`
	TakeProfitPrice decimal.Decimal `json:"takeProfitPrice"`
	StopLossPrice   decimal.Decimal `json:"stopLossPrice"`
	BorrowAsset     string          `json:"borrowAsset,omitempty"`
	BorrowAmount    decimal.Decimal `json:"borrowAmount"`
	BorrowOrder     *OrderRef       `json:"borrowOrder,omitempty"`
	EntryOrder      *OrderRef       `json:"entryOrder,omitempty"`
	OCOOrder        *OrderRef       `json:"ocoOrder,omitempty"`
}

type OpenOrder struct {
	OrderID           int64           `json:"orderId,omitempty"`
	ClientOrderID     string          `json:"clientOrderId,omitempty"`
	OrderListID       *int64          `json:"orderListId,omitempty"`
	ListClientOrderID string          `json:"listClientOrderId,omitempty"`
	Status            OrderStatus     `json:"status,omitempty"`
	Price             decimal.Decimal `json:"price"`
	StopPrice         decimal.Decimal `json:"stopPrice"`
	Type              OrderType       `json:"type,omitempty"`
	Side              OrderSide       `json:"side,omitempty"`
}

type OpenOrdersPage struct {
	HasOpenOrders bool        `json:"hasOpenOrders"`
	Orders        []OpenOrder `json:"orders"`
}

type Highlight struct {
	ListID            string `json:"list_id"`
	ListClientOrderID string `json:"list_client_order_id"`
}

type DailyMetrics struct {
	ID                           int64    `json:"id"`
	AsOf                         string   `json:"asOf"`
	Return1D                     *float64 `json:"return1d"`
	Return3D                     *float64 `json:"return3d"`
	RealizedVol7D                *float64 `json:"realizedVol7d"`
	ATR14                        *float64 `json:"atr14"`
	DeltaOpenInterest24H         *float64 `json:"deltaOpenInterest24h"`
	FundingRateZScore30D         *float64 `json:"fundingRateZScore30d"`
	TakerBuySellRatio24H         *float64 `json:"takerBuySellRatio24h"`
	LiquidationLongVolumeUSD24H  *float64 `json:"liquidationLongVolumeUsd24h"`
	LiquidationShortVolumeUSD24H *float64 `json:"liquidationShortVolumeUsd24h"`
	VolumeRelative24H            *float64 `json:"volumeRelative24h"`
}

type LiquidityStatus struct {
	Date         string   `json:"date,omitempty"`
	M2Value      *float64 `json:"m2Value"`
	Regime       string   `json:"regime"`
	YoYChangePct float64  `json:"yoyChangePct"`
}
