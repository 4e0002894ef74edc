package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/julisunkan/maka/internal/cache"
	"github.com/julisunkan/maka/internal/config"
	"github.com/julisunkan/maka/internal/db"
	workerHandler "github.com/julisunkan/maka/internal/handler/worker"
	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/repository/mariadb"
	"github.com/julisunkan/maka/internal/storage"
	"github.com/julisunkan/maka/internal/task"
	mediaSvc "github.com/julisunkan/maka/internal/usecase/media"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	uploadStrg := initStorage(ctx, cfg.UploadDir)
	subtitleStrg := initStorage(ctx, cfg.SubtitleDir)

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	subRepo := mariadb.NewSubtitleRepository(database.DB)
	ca := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)

	convertSvc := mediaSvc.NewSubtitleConverter(subRepo, subtitleStrg)
	deleteSvc := mediaSvc.NewMediaDeleter(mediaRepo, subRepo, uploadStrg, subtitleStrg, ca)
	cleanSvc := mediaSvc.NewCleaner(deleteSvc, mediaRepo)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeConvertSubtitle, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseConvertSubtitlePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.ConvertSubtitleHandler(ctx, p, convertSvc)
	})
	mux.HandleFunc(task.TypeCleanupMedia, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseCleanupMediaPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.CleanupMediaHandler(ctx, p, cleanSvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initStorage(ctx context.Context, dir string) port.Storage {
	strg, err := storage.NewDiskStorage(dir)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize storage at %q: %v", dir, err)
		os.Exit(1)
	}

	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Worker gracefully stopped")
}
