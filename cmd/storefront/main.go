package main

import (
	"fmt"
	"os"
	"time"

	"github.com/athebyme/gomarket-platform/storefront-service/config"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/adapters/catalogapi"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/adapters/logger"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/display"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/services"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"github.com/spf13/cobra"
)

var (
	configName string
	catalogURL string
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Витрина каталога автозапчастей",
	Long: `Витрина поверх удаленного API каталога.

Товары, категории и марки загружаются один раз, после чего поиск,
фильтры, сортировка и пагинация выполняются локально.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configName, "config", "c", "", "Имя файла конфигурации без расширения (по умолчанию config)")
	rootCmd.PersistentFlags().StringVar(&catalogURL, "catalog-url", "", "Корень API каталога (перекрывает catalog.baseURL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig загружает конфигурацию с учетом флагов
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configName)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if catalogURL != "" {
		cfg.Catalog.BaseURL = catalogURL
	}
	return cfg, nil
}

// newLogger создает логгер по настройкам
func newLogger(cfg *config.Config, fileOnly bool) (interfaces.LoggerPort, error) {
	log, err := logger.NewZapLogger(logger.Options{
		Level:        cfg.LogLevel,
		IsProduction: cfg.IsProduction(),
		FileName:     cfg.Logger.File,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
		FileOnly:     fileOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	return log, nil
}

// newStorefrontService собирает сервис витрины поверх API каталога
func newStorefrontService(cfg *config.Config, log interfaces.LoggerPort) *services.StorefrontService {
	timeout := cfg.Catalog.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := catalogapi.NewClient(cfg.Catalog.BaseURL, timeout, log)
	return services.NewStorefrontService(client, log, cfg.Catalog.FetchLimit)
}

// displayOptions параметры отображения товаров
func displayOptions(cfg *config.Config) display.Options {
	return display.Options{
		MediaBaseURL:      cfg.Catalog.MediaBaseURL,
		Locale:            cfg.Storefront.Locale,
		Currency:          cfg.Storefront.Currency,
		LowStockThreshold: cfg.Storefront.LowStockThreshold,
	}
}
