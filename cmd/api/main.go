package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker"

	"github.com/filings-platform/accounts-service/internal/api/handlers"
	"github.com/filings-platform/accounts-service/internal/application"
	"github.com/filings-platform/accounts-service/internal/domain"
	infraevents "github.com/filings-platform/accounts-service/internal/infrastructure/events"
	mongoRepo "github.com/filings-platform/accounts-service/internal/infrastructure/mongodb"
	"github.com/filings-platform/accounts-service/internal/infrastructure/transactions"
	"github.com/filings-platform/accounts-service/internal/registry"
	"github.com/filings-platform/accounts-service/pkg/events"
	"github.com/filings-platform/accounts-service/pkg/kafka"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/metrics"
	"github.com/filings-platform/accounts-service/pkg/middleware"
	"github.com/filings-platform/accounts-service/pkg/mongodb"
	"github.com/filings-platform/accounts-service/pkg/outbox"
	"github.com/filings-platform/accounts-service/pkg/resilience"
	"github.com/filings-platform/accounts-service/pkg/tracing"
)

const serviceName = "accounts-service"

func main() {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	config, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(context.Background(), config, signalCh); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, config *Config, signalCh <-chan os.Signal) error {
	logConfig := logging.DefaultConfig(serviceName)
	logConfig.Level = logging.LogLevel(config.LogLevel)
	logger := logging.New(logConfig)
	logger.SetDefault()

	logger.Info("Starting accounts-service API")

	// OpenTelemetry tracing
	tracingConfig := tracing.DefaultConfig(serviceName)
	tracingConfig.OTLPEndpoint = config.OTLPEndpoint
	tracingConfig.Environment = config.Environment
	tracingConfig.Enabled = config.TracingEnabled

	tracerProvider, err := tracing.Initialize(ctx, tracingConfig)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize tracing")
		// Continue without tracing - don't exit
	} else if tracerProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Error("Failed to shutdown tracer")
			}
		}()
		logger.Info("Tracing initialized", "endpoint", tracingConfig.OTLPEndpoint)
	}

	// Prometheus metrics
	m := metrics.New(metrics.DefaultConfig(serviceName))
	logger.Info("Metrics initialized")

	// MongoDB with instrumentation
	mongoClient, err := mongodb.NewClient(ctx, config.MongoDB)
	if err != nil {
		logger.WithError(err).Error("Failed to connect to MongoDB")
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	mongoDB := mongodb.NewInstrumentedClient(mongoClient, m, logger)
	defer mongoDB.Close(ctx)
	logger.Info("Connected to MongoDB", "database", config.MongoDB.Database)

	// Kafka producer with instrumentation
	kafkaProducer := kafka.NewProducer(config.Kafka)
	instrumentedProducer := kafka.NewInstrumentedProducer(kafkaProducer, m, logger)
	defer func() {
		_ = instrumentedProducer.Close()
	}()
	logger.Info("Kafka producer initialized", "brokers", config.Kafka.Brokers)

	// Transactional outbox: events are staged in mongo alongside resource
	// writes and delivered by the background publisher.
	outboxRepo := mongoRepo.NewOutboxRepository(mongoDB.Collection("outbox"))
	if err := outboxRepo.EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Warn("Failed to create outbox indexes")
	}

	outboxPublisher := outbox.NewPublisher(outboxRepo, instrumentedProducer, logger, m, config.Outbox)
	if err := outboxPublisher.Start(ctx); err != nil {
		logger.WithError(err).Error("Failed to start outbox publisher")
		return fmt.Errorf("failed to start outbox publisher: %w", err)
	}
	defer func() {
		_ = outboxPublisher.Stop()
	}()
	logger.Info("Outbox publisher started")

	eventFactory := events.NewEventFactory(events.SourceAccountsService)
	recorder := infraevents.NewOutboxRecorder(eventFactory, outboxRepo)

	// Transaction service client; breaker state surfaces in metrics
	var breakerHook resilience.StateChangeHook = func(name string, from, to gobreaker.State) {
		m.SetCircuitBreakerState(name, int(to))
		if to == gobreaker.StateOpen {
			m.RecordCircuitBreakerTrip(name)
		}
	}
	txClient := transactions.NewClient(config.Transactions, logger, breakerHook)

	// Per-kind storage and transformer registries
	reg := registry.New()
	for _, kind := range domain.AllKinds() {
		factory, ok := domain.DocumentFactoryFor(kind)
		if !ok {
			return fmt.Errorf("no document factory for kind %s", kind)
		}
		transformer, ok := application.TransformerFor(kind)
		if !ok {
			return fmt.Errorf("no transformer for kind %s", kind)
		}

		collection := mongoDB.Collection(collectionName(kind))
		reg.RegisterAdapter(kind, mongoRepo.NewDocumentRepository(collection, factory))
		reg.RegisterTransformer(kind, transformer)
	}
	reg.Seal()
	if err := reg.AssertTotal(domain.AllKinds()); err != nil {
		logger.WithError(err).Error("Resource registry is incomplete")
		return err
	}
	logger.Info("Resource registry sealed", "kinds", len(domain.AllKinds()))

	// Parent link stores: the company account links onto the external
	// transaction; the small-full links onto the company account document;
	// periods and notes link onto the small-full document addressed by
	// company account id.
	companyAccountLinks := mongoRepo.NewLinkStore(mongoDB.Collection(collectionName(domain.KindCompanyAccount)))
	smallFullLinks := mongoRepo.NewDerivedLinkStore(
		mongoDB.Collection(collectionName(domain.KindSmallFull)),
		domain.KindSmallFull.PathSegment(),
	)

	services := make(map[domain.ResourceKind]*application.ResourceService, len(domain.AllKinds()))
	for _, kind := range domain.AllKinds() {
		adapter, appErr := reg.Adapter(kind)
		if appErr != nil {
			return appErr
		}
		transformer, appErr := reg.Transformer(kind)
		if appErr != nil {
			return appErr
		}

		var parents domain.ParentLinkStore
		switch kind {
		case domain.KindCompanyAccount:
			parents = txClient
		case domain.KindSmallFull:
			parents = companyAccountLinks
		default:
			parents = smallFullLinks
		}

		services[kind] = application.NewResourceService(kind, adapter, transformer, parents, recorder, logger, m)
	}

	closureService := application.NewClosureService(reg, txClient, recorder, logger, m)

	// Gin router with the standard middleware chain
	router := gin.New()
	middleware.Setup(router, middleware.DefaultConfig(serviceName, logger.Logger))
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.SimpleTracingMiddleware(serviceName))
	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	router.GET("/health", middleware.HealthCheck(serviceName))
	router.GET("/ready", middleware.ReadinessCheck(serviceName, func() error {
		return mongoDB.HealthCheck(ctx)
	}))
	router.GET("/metrics", middleware.MetricsEndpoint(m))

	// Filing routes
	companyAccounts := router.Group("/transactions/:transactionId/company-accounts")

	handlers.NewCompanyAccountHandlers(services[domain.KindCompanyAccount], logger).
		RegisterRoutes(companyAccounts)
	handlers.NewClosureHandlers(closureService, logger).
		RegisterRoutes(companyAccounts)

	smallFull := companyAccounts.Group("/:companyAccountId/small-full")
	handlers.NewSmallFullHandlers(services[domain.KindSmallFull], logger).
		RegisterRoutes(smallFull)

	handlers.NewPeriodHandlers(services[domain.KindCurrentPeriod], logger).
		RegisterRoutes(smallFull.Group("/current-period"))
	handlers.NewPeriodHandlers(services[domain.KindPreviousPeriod], logger).
		RegisterRoutes(smallFull.Group("/previous-period"))

	noteServices := make(map[domain.ResourceKind]*application.ResourceService, len(domain.NoteKinds()))
	for _, kind := range domain.NoteKinds() {
		noteServices[kind] = services[kind]
	}
	handlers.NewNoteHandlers(noteServices, logger).RegisterRoutes(smallFull)

	// Start server
	srv := &http.Server{
		Addr:         config.ServerAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
		}
	}()
	logger.Info("Server started", "addr", config.ServerAddr)

	select {
	case <-signalCh:
	case <-ctx.Done():
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server stopped")
	return nil
}

// collectionName derives the mongo collection for a kind from its path
// segment
func collectionName(kind domain.ResourceKind) string {
	return strings.ReplaceAll(kind.PathSegment(), "-", "_")
}
