package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/epayco-charge/internal/config"
	"github.com/xavierca1/epayco-charge/internal/infra/http/handlers"
	"github.com/xavierca1/epayco-charge/internal/infra/http/middleware"
	"github.com/xavierca1/epayco-charge/internal/infra/integration/billing"
	"github.com/xavierca1/epayco-charge/internal/infra/integration/epayco"
	"github.com/xavierca1/epayco-charge/internal/infra/logger"
	"github.com/xavierca1/epayco-charge/internal/infra/mail"
	"github.com/xavierca1/epayco-charge/internal/infra/queue"
	"github.com/xavierca1/epayco-charge/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("❌ Logger: %v", err)
	}
	defer zlog.Sync()

	httpClient := &http.Client{Timeout: cfg.Server.HTTPClientTimeout}

	// 1. Gateways e Adapters
	gateway := epayco.NewClient(epayco.Options{
		PublicKey:  cfg.Epayco.PublicKey,
		PrivateKey: cfg.Epayco.PrivateKey,
		Test:       cfg.Epayco.Test,
		Language:   cfg.Epayco.Language,
		BaseURL:    cfg.Epayco.BaseURL,
	}, httpClient)
	billingClient := billing.NewClient(cfg.Billing.BaseURL, httpClient)

	var notifier usecase.Notifier
	switch cfg.Notification.Driver {
	case config.NotifierSMTP:
		notifier = mail.NewSMTPNotifier(mail.SMTPConfig{
			Host:     cfg.Notification.SMTPHost,
			Port:     cfg.Notification.SMTPPort,
			User:     cfg.Notification.SMTPUser,
			Password: cfg.Notification.SMTPPass,
			From:     cfg.Notification.SMTPFrom,
		}, zlog)
	default:
		notifier = mail.NewHTTPNotifier(cfg.Notification.URL, httpClient, zlog)
	}

	// 2. Eventos (opcional)
	var events usecase.EventPublisher
	var rabbitConn handlers.ConnectionState
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			zlog.Fatal("falha ao conectar no RabbitMQ", zap.Error(err))
		}
		defer rabbitMQ.Close()
		events = queue.NewProducer(rabbitMQ.Ch)
		rabbitConn = rabbitMQ.Conn
	} else {
		zlog.Warn("RABBITMQ_URL vazio: eventos de cargo desativados")
	}

	// 3. UseCase
	processChargeUC := usecase.NewProcessChargeUseCase(
		gateway,
		billingClient,
		notifier,
		events,
		middleware.Recorder{},
		usecase.CallbackURLs{
			Response:     cfg.Epayco.URLResponse,
			Confirmation: cfg.Epayco.URLConfirmation,
		},
		zlog,
	)

	// 4. Handlers + Router
	chargeHandler := handlers.NewChargeHandler(processChargeUC, zlog)
	healthHandler := handlers.NewHealthHandler(rabbitConn, map[string]string{
		"epayco":        cfg.Epayco.BaseURL,
		"ms-negocio":    cfg.Billing.BaseURL,
		"notifications": cfg.Notification.URL,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: newRouter(cfg.Server.AllowedOrigins, chargeHandler, healthHandler),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Info("🔥 servidor de cobranças rodando", zap.String("addr", srv.Addr), zap.Bool("epayco_test", cfg.Epayco.Test))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("servidor caiu", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("erro no shutdown", zap.Error(err))
	}
}
