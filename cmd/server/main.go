package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vero4ka/botutils/application/port"
	"github.com/vero4ka/botutils/application/usecase"
	"github.com/vero4ka/botutils/infrastructure/config"
	"github.com/vero4ka/botutils/infrastructure/facebook"
	"github.com/vero4ka/botutils/infrastructure/messagebuilder"
	"github.com/vero4ka/botutils/infrastructure/telegram"
	"github.com/vero4ka/botutils/infrastructure/valkey"
	httpInterface "github.com/vero4ka/botutils/interface/http"
	"github.com/vero4ka/botutils/interface/http/handler"
	"github.com/vero4ka/botutils/pkg/logger"
)

func main() {
	log := logger.New("info")
	slog.SetDefault(log)

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log = logger.New(cfg.Server.LogLevel)
	slog.SetDefault(log)

	fileCfg, err := config.LoadFromFile(cfg.ConfigPath)
	if err != nil {
		log.Error("failed to load file config", "error", err, "path", cfg.ConfigPath)
		os.Exit(1)
	}
	cfg.ApplyFileConfig(fileCfg)

	log.Info("starting botutils gateway",
		logger.ApplicationFields("startup",
			slog.String("addr", cfg.Server.Addr()),
			slog.String("messenger_api_version", cfg.Messenger.APIVersion),
			slog.Bool("telegram_enabled", cfg.Telegram.Enabled()),
		),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		cancel()
		log.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	cancel()
	log.Info("connected to valkey", "addr", cfg.Redis.Addr)

	deliveryRepo := valkey.NewDeliveryRepository(redisClient, fileCfg.DeliveryTTL(), log.With("component", "valkey"))

	fbClient := facebook.NewClient(
		cfg.Messenger.APIURL,
		cfg.Messenger.PageAccessToken,
		log.With("component", "messenger_client"),
		facebook.WithAPIVersion(cfg.Messenger.APIVersion),
		facebook.WithTimeout(cfg.Messenger.Timeout),
	)

	var tgSender port.TelegramSender
	if cfg.Telegram.Enabled() {
		bot, err := telegram.NewBot(cfg.Telegram.Token, cfg.Telegram.APIURL)
		if err != nil {
			log.Error("failed to create telegram bot", "error", err)
			os.Exit(1)
		}
		tgSender = telegram.NewMarkdownSender(telegram.NewTelebotAdapter(bot))
	}

	msgBuilder := messagebuilder.NewBuilder(fileCfg)

	sendMessengerUC := usecase.NewSendMessengerUseCase(
		fbClient,
		msgBuilder,
		deliveryRepo,
		log.With("component", "send_messenger_usecase"),
	)
	sendTelegramUC := usecase.NewSendTelegramUseCase(
		tgSender,
		deliveryRepo,
		log.With("component", "send_telegram_usecase"),
	)
	getDeliveryUC := usecase.NewGetDeliveryUseCase(deliveryRepo)

	messengerHandler := handler.NewMessengerHandler(sendMessengerUC, log.With("component", "messenger_handler"))
	telegramHandler := handler.NewTelegramHandler(sendTelegramUC, log.With("component", "telegram_handler"))
	deliveryHandler := handler.NewDeliveryHandler(getDeliveryUC, log.With("component", "delivery_handler"))
	healthHandler := handler.NewHealthHandler(deliveryRepo)

	gin.SetMode(gin.ReleaseMode)
	router := httpInterface.NewRouter(log, messengerHandler, telegramHandler, deliveryHandler, healthHandler)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Messenger.Timeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("server started", "addr", cfg.Server.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server error", "error", err)
	case <-quit:
		log.Info("shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Error("failed to close redis client", "error", err)
	}

	log.Info("server stopped")
}
