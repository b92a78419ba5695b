package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/athebyme/gomarket-platform/storefront-service/docs"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/api"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/api/handlers"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить веб-витрину и JSON API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("Инициализация сервиса",
		interfaces.LogField{Key: "app_name", Value: cfg.AppName},
		interfaces.LogField{Key: "version", Value: cfg.Version},
		interfaces.LogField{Key: "env", Value: cfg.ENV},
		interfaces.LogField{Key: "catalog_url", Value: cfg.Catalog.BaseURL},
	)

	storefrontService := newStorefrontService(cfg, log)
	log.Info("Сервис витрины инициализирован")

	router := api.SetupRouter(storefrontService, log, api.RouterOptions{
		Handlers: handlers.Options{
			AppName:  cfg.AppName,
			PageSize: cfg.Storefront.PageSize,
			Locale:   cfg.Storefront.Locale,
			Display:  displayOptions(cfg),
		},
		CORSAllowedOrigins: cfg.Security.CORSAllowOrigins,
		RequestTimeout:     cfg.Server.RequestTimeout,
		MetricsEnabled:     cfg.Metrics.Enabled,
		MetricsEndpoint:    cfg.Metrics.Endpoint,
	})
	log.Info("Маршрутизатор настроен")

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Сервер запущен", interfaces.LogField{Key: "address", Value: server.Addr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Error("Ошибка запуска сервера", interfaces.LogField{Key: "error", Value: err.Error()})
		return err
	case <-quit:
		log.Info("Получен сигнал завершения, выполняется graceful shutdown...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Ошибка при graceful shutdown", interfaces.LogField{Key: "error", Value: err.Error()})
		return err
	}

	log.Info("Сервер корректно завершил работу")
	return nil
}
