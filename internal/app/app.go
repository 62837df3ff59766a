package app

import (
	"context"
	"embed"
	"fmt"
	"log"

	"paymee-bridge/config"
	"paymee-bridge/internal/controller/rest"
	"paymee-bridge/internal/controller/rest/handlers"
	"paymee-bridge/internal/domain/checkout"
	"paymee-bridge/internal/domain/payment"
	"paymee-bridge/internal/external/kafka"
	"paymee-bridge/internal/external/paymee"
	"paymee-bridge/internal/notifier"
	payment_repo "paymee-bridge/internal/repo/payment"
	"paymee-bridge/internal/webhook"
	"paymee-bridge/pkg/health"
	"paymee-bridge/pkg/logger"
	"paymee-bridge/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

const (
	WebhookModeSync  = "sync"
	WebhookModeKafka = "kafka"
)

func Run(cfg config.Config) {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogConsole})

	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		log.Fatalf("app - Run - postgres.New: %v", err)
	}
	defer pg.Close()

	if err = ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		log.Fatalf("app - Run - ApplyMigrations: %v", err)
	}

	repo := payment_repo.NewPgPaymentRepo(pg)
	paymentService := payment.NewService(repo, cfg.InvoicePrefix)

	gateway := paymee.New(paymee.Config{
		APIKey:   cfg.PayMeeAPIKey,
		APIToken: cfg.PayMeeAPIToken,
		Sandbox:  cfg.PayMeeSandbox,
		BaseURL:  cfg.PayMeeBaseURL,
		Timeout:  cfg.HTTPPayMeeClientTimeout,
		Debug:    cfg.PayMeeDebug,
	})

	checkoutService := checkout.NewService(gateway, paymentService, checkout.BuilderConfig{
		InvoicePrefix: cfg.InvoicePrefix,
		CallbackURL:   cfg.IPNCallbackURL,
		SendOnlyTotal: cfg.SendOnlyTotal,
	})

	hostClient := notifier.NewHTTPClient(notifier.HTTPClientConfig{
		BaseURL:        cfg.HostBaseURL,
		Timeout:        cfg.HostClientTimeout,
		RetryAttempts:  cfg.HostRetryAttempts,
		RetryBaseDelay: cfg.HostRetryBaseDelay,
		RetryMaxDelay:  cfg.HostRetryMaxDelay,
	})
	defer hostClient.Close()

	syncProcessor := webhook.NewSyncProcessor(paymentService, hostClient)

	checkers := []health.Checker{
		health.NewPostgresChecker(pg.Pool),
		health.NewUpstreamChecker("paymee", gateway.BaseURL()),
	}

	var ipnProcessor webhook.Processor = syncProcessor

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch cfg.WebhookMode {
	case WebhookModeKafka:
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaNotificationsTopic)
		defer publisher.Close()

		ipnProcessor = webhook.NewKafkaProcessor(publisher)
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))

		StartWorkers(ctx, cfg, syncProcessor)
	case WebhookModeSync:
		// notifications applied inline on the IPN request
	default:
		log.Fatalf("app - Run - unknown webhook mode: %q", cfg.WebhookMode)
	}

	router := rest.NewRouter(
		handlers.NewCheckoutHandler(checkoutService),
		handlers.NewPaymentHandler(paymentService),
		handlers.NewIPNHandler(ipnProcessor),
		health.NewRegistry(checkers...),
	)

	engine := NewGinEngine()
	router.SetUp(engine)

	if err = engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("app - Run - engine.Run: %v", err)
	}
}
