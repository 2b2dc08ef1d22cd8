package dashhttp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tradeworker/internal/dashboard"
	"tradeworker/internal/feed"
	"tradeworker/internal/logger"
)

// Server — локальный JSON-интерфейс, который читает веб-морда.
type Server struct {
	addr   string
	router *gin.Engine
}

type ServerConfig struct {
	Addr     string
	Symbol   string
	Isolated bool

	Feed       *feed.Subscription
	Accounts   *dashboard.AccountView
	Orders     *dashboard.OrderWorkflow
	OpenOrders *dashboard.Reconciler
	Context    *dashboard.ContextLoader

	Log *logger.Logger
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Accounts == nil || cfg.Orders == nil || cfg.OpenOrders == nil {
		return nil, errors.New("Серверу не переданы компоненты дашборда.")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":9980"
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &handlers{cfg: cfg}
	api := router.Group("/api/dashboard")
	api.GET("/summary", h.summary)
	api.GET("/open-orders", h.openOrders)
	api.POST("/orders/propose", h.propose)
	api.POST("/orders/confirm", h.confirm)
	api.GET("/market-context", h.marketContext)

	return &Server{addr: cfg.Addr, router: router}, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(logrus.Fields{
			"component": "http",
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"took":      time.Since(start).String(),
		}).Debug("HTTP запрос обработан.")
	}
}
