package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/julisunkan/maka/internal/cache"
	"github.com/julisunkan/maka/internal/config"
	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/repository/mariadb"
	"github.com/julisunkan/maka/internal/storage"
	mediaSvc "github.com/julisunkan/maka/internal/usecase/media"
)

// One-shot cleanup, handy for cron when no worker is running.
func main() {
	hours := flag.Int("hours", 24, "delete medias uploaded more than this many hours ago")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("DB close error: %v", err)
		}
	}()

	uploadStrg := initStorage(cfg.UploadDir)
	subtitleStrg := initStorage(cfg.SubtitleDir)

	var ca port.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	}

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	subRepo := mariadb.NewSubtitleRepository(database.DB)
	deleteSvc := mediaSvc.NewMediaDeleter(mediaRepo, subRepo, uploadStrg, subtitleStrg, ca)
	cleaner := mediaSvc.NewCleaner(deleteSvc, mediaRepo)

	report, err := cleaner.CleanupOlderThan(context.Background(), time.Duration(*hours)*time.Hour)
	if err != nil {
		log.Fatalf("❌  Cleanup failed: %v", err)
	}
	log.Printf("✅  Cleanup completed: %d medias deleted, %d bytes freed", report.DeletedCount, report.FreedBytes)
}

func initDb(cfg *config.Settings) *db.Database {
	log.Println("initialising database...")
	database, err := db.New(db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("❌  Failed to connect to db: %v", err)
	}
	return database
}

func initStorage(dir string) port.Storage {
	strg, err := storage.NewDiskStorage(dir)
	if err != nil {
		log.Fatalf("❌  Failed to initialize storage at %q: %v", dir, err)
	}
	return strg
}
