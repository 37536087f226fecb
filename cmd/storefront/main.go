// Package main запускает HTTP-сервер сервиса витрины ресторана.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/selvadigital/storefront-system/internal/assist"
	"github.com/selvadigital/storefront-system/internal/config"
	"github.com/selvadigital/storefront-system/internal/handler"
	"github.com/selvadigital/storefront-system/internal/repository"
	"github.com/selvadigital/storefront-system/internal/schedule"
	"github.com/selvadigital/storefront-system/internal/service"
)

// Период фонового опроса расписания.
const schedulePollPeriod = 30 * time.Second

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	repo, err := repository.NewPostgresRepository(cfg.DatabaseURI)
	if err != nil {
		sugar.Fatalw("database initialization error", "error", err.Error())
	}
	defer repo.Close()

	var assistClient *assist.Client
	if cfg.OpenAIAPIKey != "" {
		assistClient, err = assist.NewClient(cfg.OpenAIAPIKey)
		if err != nil {
			// Генерация контента необязательна: работаем с значениями по умолчанию
			sugar.Warnw("assist client unavailable, using fallbacks", "error", err.Error())
			assistClient = nil
		}
	}

	resolver := schedule.NewResolver(cfg.TimeZone)

	svc := service.NewService(repo, assistClient, resolver, cfg.CheckoutURL)
	defer svc.Close()

	h := handler.NewHandler(svc, logger)
	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск фонового опроса расписания
	g.Go(func() error {
		watcher := schedule.NewWatcher(resolver, schedulePollPeriod, func(st schedule.Status) {
			sugar.Infow("schedule status", "open", st.Open, "variant", st.Variant)
		})
		watcher.Run(ctx)
		return nil
	})

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting storefront server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
