package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/adapters/logger"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/tui"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Открыть витрину в терминале",
	Long: `Терминальная витрина поверх тех же контроллеров, что и веб-версия.

Журнал пишется только в файл logger.file, чтобы не портить экран.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var log interfaces.LoggerPort = logger.NewNopLogger()
	if cfg.Logger.File != "" {
		if log, err = newLogger(cfg, true); err != nil {
			return err
		}
		defer log.Sync()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, newStorefrontService(cfg, log), log, tui.Options{
		PageSize: cfg.Storefront.PageSize,
		Locale:   cfg.Storefront.Locale,
		Display:  displayOptions(cfg),
	})
}
