package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tradeworker/internal/backend"
	"tradeworker/internal/config"
	"tradeworker/internal/dashboard"
	"tradeworker/internal/feed"
	"tradeworker/internal/logger"
	"tradeworker/internal/store"
	dashhttp "tradeworker/internal/transport/http"
)

func main() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Runtime.Log.Level,
		Format:     cfg.Runtime.Log.Format,
		Output:     cfg.Runtime.Log.File,
		MaxSize:    cfg.Runtime.Log.MaxSize,
		MaxBackups: cfg.Runtime.Log.MaxBackups,
		MaxAge:     cfg.Runtime.Log.MaxAge,
		Compress:   cfg.Runtime.Log.Compress,
	})

	log.Info("Дашборд запущен.")

	st, err := store.OpenPebble(cfg.Runtime.StorePath)
	if err != nil {
		log.WithError(err).Fatal("Не удалось открыть хранилище.")
	}
	defer st.Close()

	client := backend.New(cfg.Backend.BaseUrl, log)

	sub := feed.New(cfg.Feed.WSUrl, log).Subscribe(cfg.Bot.Symbol)
	defer sub.Disconnect()

	accounts := dashboard.NewAccountView(client, log)
	orders := dashboard.NewOrderWorkflow(client, st, log)
	openOrders := dashboard.NewReconciler(client, st, log)
	contextLoader := dashboard.NewContextLoader(client, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := accounts.Load(ctx); err != nil {
		log.WithError(err).Warn("Маржинальный счёт недоступен, будет заглушка.")
	}

	srv, err := dashhttp.NewServer(dashhttp.ServerConfig{
		Addr:       cfg.Runtime.HTTPAddr,
		Symbol:     cfg.Bot.Symbol,
		Isolated:   cfg.Bot.Isolated,
		Feed:       sub,
		Accounts:   accounts,
		Orders:     orders,
		OpenOrders: openOrders,
		Context:    contextLoader,
		Log:        log,
	})
	if err != nil {
		log.WithError(err).Fatal("Не удалось создать HTTP сервер.")
	}

	go func() {
		if err := srv.Start(ctx); err != nil {
			log.WithError(err).Fatal("HTTP сервер завершился с ошибкой.")
		}
	}()

	<-sigCh
	cancel()
	log.Info("Дашборд остановлен.")
}
