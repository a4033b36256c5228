package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ecocollect/waste-service/internal/cache"
	"github.com/ecocollect/waste-service/internal/db"
	"github.com/ecocollect/waste-service/internal/kafka"
	"github.com/ecocollect/waste-service/internal/logger"
	"github.com/ecocollect/waste-service/internal/repository/postgresql"
	"github.com/ecocollect/waste-service/internal/server"
	"github.com/ecocollect/waste-service/internal/storage"
)

func main() {
	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.GetPool().Close()

	requestRepo := postgresql.NewRequestRepo(database)
	submissionRepo := postgresql.NewSubmissionRepo(database)
	paybackRepo := postgresql.NewPaybackRepo(database)
	notificationRepo := postgresql.NewNotificationRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	seedAdmin(ctx, userRepo, log)

	requestCache := cache.NewRequestCache(requestRepo, log)
	if err := requestCache.LoadInitialData(ctx); err != nil {
		log.Warn("active request cache warmup failed", zap.Error(err))
	}

	maxPerDay := storage.DefaultMaxPerDay
	if raw := os.Getenv("MAX_PER_DAY"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			maxPerDay = v
		}
	}

	scheduler := storage.NewScheduler(database, requestRepo, notificationRepo, outboxRepo, requestCache, maxPerDay, log)
	lifecycle := storage.NewLifecycle(database, requestRepo, notificationRepo, outboxRepo, requestCache, maxPerDay, log)
	ledger := storage.NewLedger(database, submissionRepo, paybackRepo, notificationRepo, outboxRepo, log)
	notifications := storage.NewNotifications(notificationRepo)

	producer := newProducer(log)
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	}, log)

	auditStore := server.NewOutboxAuditStore(database, outboxRepo)
	auditManager := server.NewAuditManager(2, 5, 500*time.Millisecond, auditStore, log)

	srv := server.New(scheduler, lifecycle, ledger, notifications, userRepo, auditManager, log)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.Run(groupCtx, port)
	})
	group.Go(func() error {
		publisher.Run(groupCtx)
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal("service exited with error", zap.Error(err))
	}
	log.Info("service stopped")
}

// seedAdmin creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD so a fresh deployment has a usable login. Existing
// accounts are left untouched.
func seedAdmin(ctx context.Context, users storage.UserRepository, log *zap.Logger) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}
	if err := users.EnsureUser(ctx, email, "Admin", password, "admin"); err != nil {
		log.Fatal("admin seed failed", zap.Error(err))
	}
	log.Info("admin account ensured", zap.String("email", email))
}

// newProducer connects to Kafka when brokers are configured and falls
// back to the console producer for local runs without a broker.
func newProducer(log *zap.Logger) kafka.Producer {
	brokersEnv := os.Getenv("KAFKA_BROKERS")
	if brokersEnv == "" {
		log.Info("KAFKA_BROKERS not set, using console producer")
		return kafka.NewConsoleProducer()
	}
	brokers := strings.Split(brokersEnv, ",")
	log.Info("using kafka producer", zap.Strings("brokers", brokers))
	return kafka.NewKafkaProducer(brokers)
}
