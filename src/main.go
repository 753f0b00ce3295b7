package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"mergington-api/src/config"
	"mergington-api/src/database"
	"mergington-api/src/jobs"
	"mergington-api/src/metrics"
	"mergington-api/src/seeder"
	"mergington-api/src/server"
	"mergington-api/src/services/activities"
	"mergington-api/src/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// @title        Mergington High School API
// @version      1.0
// @description  API for viewing and signing up for extracurricular activities
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("❌ Error creating logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// โหลดกิจกรรมตั้งต้น แล้วสร้าง registry (อยู่ใน memory เท่านั้น)
	seed, err := seeder.LoadActivities(cfg.SeedFile)
	if err != nil {
		return err
	}
	registry, err := activities.NewRegistry(seed)
	if err != nil {
		return fmt.Errorf("seeding registry: %w", err)
	}
	logger.Info("registry seeded", zap.Int("activities", registry.Len()))

	// Redis ไม่บังคับ: มี Redis → แจ้งเตือนผ่านคิว asynq
	var rdb *redis.Client
	sender := jobs.NewMailSender(cfg.SMTP, logger)
	if cfg.RedisURI != "" {
		rdb, err = database.NewRedisClient(ctx, cfg.RedisURI)
		if err != nil {
			return err
		}
		defer rdb.Close()

		worker := jobs.NewWorker(database.AsynqRedisOpt(cfg.RedisURI), cfg.NotifyQueue, sender, logger)
		if err := worker.Start(); err != nil {
			return fmt.Errorf("starting worker: %w", err)
		}
		defer worker.Shutdown()
		logger.Info("✅ notification worker started", zap.String("queue", cfg.NotifyQueue))
	} else {
		logger.Warn("⚠️ REDIS_URI not set, notifications are delivered in-process")
	}

	asynqClient := database.NewAsynqClient(cfg.RedisURI)
	if asynqClient != nil {
		defer asynqClient.Close()
	}
	notifier := jobs.NewNotifier(asynqClient, cfg.NotifyQueue, sender, logger)
	defer notifier.Wait()

	m := metrics.New()
	service := activities.NewService(registry, logger,
		activities.WithMetrics(m),
		activities.WithNotifier(notifier),
	)

	app := server.New(server.Options{
		Logger:         logger,
		Activities:     service,
		Metrics:        m,
		Redis:          rdb,
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	logger.Info("Server is running", zap.String("port", cfg.Port))
	return app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.Port)))
}
