package dashhttp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tradeworker/internal/backend"
	"tradeworker/internal/dashboard"
	"tradeworker/internal/feed"
	"tradeworker/internal/models"
)

type handlers struct {
	cfg ServerConfig
}

type summaryResponse struct {
	Symbol       string               `json:"symbol"`
	FeedStatus   string               `json:"feedStatus"`
	LastPrice    *float64             `json:"lastPrice"`
	NetBase      *decimal.Decimal     `json:"netBase"`
	Equity       *decimal.Decimal     `json:"equity"`
	Assets       []models.MarginAsset `json:"assets"`
	AccountError string               `json:"accountError,omitempty"`
}

func (h *handlers) summary(c *gin.Context) {
	resp := summaryResponse{
		Symbol:     h.cfg.Symbol,
		FeedStatus: string(feedStatus(h.cfg)),
	}

	price, hasPrice := lastPrice(h.cfg)
	if hasPrice {
		resp.LastPrice = &price
	}

	account := h.cfg.Accounts.Account()
	if account == nil {
		loaded, err := h.cfg.Accounts.Load(c.Request.Context())
		if err != nil {
			resp.AccountError = err.Error()
		} else {
			account = loaded
		}
	}

	if account != nil {
		netBase := account.TotalNetAssetOfBtc
		resp.NetBase = &netBase
		resp.Assets = dashboard.NonZeroAssets(account)
	}

	if equity, ok := dashboard.Equity(account, price, hasPrice); ok {
		resp.Equity = &equity
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handlers) openOrders(c *gin.Context) {
	groups, err := h.cfg.OpenOrders.Load(c.Request.Context(), h.cfg.Symbol, h.cfg.Isolated)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasOpenOrders": len(groups) > 0,
		"groups":        groups,
	})
}

func (h *handlers) propose(c *gin.Context) {
	var intent models.BracketIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не удалось разобрать заявку."})
		return
	}

	staged, err := h.cfg.Orders.Propose(intent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, staged)
}

func (h *handlers) confirm(c *gin.Context) {
	result, err := h.cfg.Orders.Confirm(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handlers) marketContext(c *gin.Context) {
	mc := h.cfg.Context.Load(c.Request.Context())

	resp := gin.H{
		"metrics":   mc.Metrics,
		"liquidity": mc.Liquidity,
	}
	if mc.MetricsErr != nil {
		resp["metricsError"] = mc.MetricsErr.Error()
	}
	if mc.LiquidityErr != nil {
		resp["liquidityError"] = mc.LiquidityErr.Error()
	}

	c.JSON(http.StatusOK, resp)
}

func writeError(c *gin.Context, err error) {
	var fetchErr *backend.FetchError
	var submitErr *backend.SubmissionError

	switch {
	case errors.Is(err, dashboard.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, dashboard.ErrNoIntent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, backend.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "upstreamStatus": fetchErr.Status})
	case errors.As(err, &submitErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "upstreamStatus": submitErr.Status})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func feedStatus(cfg ServerConfig) feed.Status {
	if cfg.Feed == nil {
		return feed.StatusClosed
	}
	return cfg.Feed.Status()
}

func lastPrice(cfg ServerConfig) (float64, bool) {
	if cfg.Feed == nil {
		return 0, false
	}
	return cfg.Feed.LastPrice()
}
