package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/julisunkan/maka/internal/cache"
	"github.com/julisunkan/maka/internal/config"
	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/handler"
	"github.com/julisunkan/maka/internal/handler/api"
	"github.com/julisunkan/maka/internal/logger"
	cMiddleware "github.com/julisunkan/maka/internal/middleware"
	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/renderer"
	"github.com/julisunkan/maka/internal/repository/mariadb"
	"github.com/julisunkan/maka/internal/storage"
	"github.com/julisunkan/maka/internal/task"
	"github.com/julisunkan/maka/internal/upstream"
	"github.com/julisunkan/maka/internal/usecase/analytics"
	"github.com/julisunkan/maka/internal/usecase/browse"
	mediaSvc "github.com/julisunkan/maka/internal/usecase/media"
	"github.com/julisunkan/maka/internal/usecase/playlist"
	"github.com/julisunkan/maka/internal/usecase/proxy"
	"github.com/julisunkan/maka/internal/usecase/stream"
	"github.com/julisunkan/maka/internal/vpn"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	uploadStrg := initStorage(ctx, cfg.UploadDir)
	subtitleStrg := initStorage(ctx, cfg.SubtitleDir)
	vpnStrg := initStorage(ctx, cfg.VPNDir)

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	subRepo := mariadb.NewSubtitleRepository(database.DB)
	analyticsRepo := mariadb.NewAnalyticsRepository(database.DB)
	vpnRepo := mariadb.NewVPNConfigRepository(database.DB)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured: caching and background tasks are disabled")
	}

	fetcher := upstream.NewClient()
	vpnMgr := vpn.NewManager(vpnRepo, vpnStrg, vpn.NewOpenVPNRunner(cfg.OpenVPNBinary), cfg.VPNDir, db.NewUUID)

	r := initRouter(ctx)

	streamSvc := stream.NewMediaStreamer(mediaRepo, uploadStrg)
	r.With(cMiddleware.WithFilename()).
		Get("/stream/{filename}", api.StreamMediaHandler(streamSvc))

	proxySvc := proxy.NewResourceProxier(fetcher, port.FetchOptions{Timeout: cfg.ProxyFetchTimeout})
	proxyHandler := api.ProxyResourceHandler(proxySvc)
	r.Get("/proxy_resource/*", proxyHandler)
	r.Options("/proxy_resource/*", proxyHandler)

	playlistSvc := playlist.NewPlaylistParser(fetcher, vpnMgr, port.FetchOptions{Timeout: cfg.PlaylistFetchTimeout})
	r.Post("/parse_playlist", api.ParsePlaylistHandler(playlistSvc))

	browseSvc := browse.NewPageBrowser(fetcher, vpnMgr, port.FetchOptions{Timeout: cfg.BrowseFetchTimeout})
	r.Post("/proxy_browse", api.ProxyBrowseHandler(browseSvc))

	uploadSvc := mediaSvc.NewMediaUploader(mediaRepo, uploadStrg, db.NewUUID, cfg.MaxUploadSize)
	r.Post("/upload", api.UploadMediaHandler(uploadSvc))

	recordingSvc := mediaSvc.NewRecordingUploader(mediaRepo, uploadStrg, db.NewUUID, cfg.MaxUploadSize)
	r.Post("/upload_recording", api.UploadRecordingHandler(recordingSvc))

	subtitleSvc := mediaSvc.NewSubtitleUploader(mediaRepo, subRepo, subtitleStrg, dispatcher, db.NewUUID, cfg.MaxSubtitleSize)
	r.Post("/upload_subtitle", api.UploadSubtitleHandler(subtitleSvc))
	r.With(cMiddleware.WithFilename()).
		Get("/subtitles/{filename}", api.GetSubtitleHandler(subtitleStrg))

	metadataSvc := mediaSvc.NewMetadataGetter(mediaRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithFilename()).
		Get("/metadata/{filename}", api.GetMetadataHandler(rendererSvc, metadataSvc))

	listSvc := mediaSvc.NewMediaLister(mediaRepo)
	r.Get("/medias", api.ListMediaHandler(listSvc))

	deleteSvc := mediaSvc.NewMediaDeleter(mediaRepo, subRepo, uploadStrg, subtitleStrg, ca)
	r.With(cMiddleware.WithFilename()).
		Delete("/delete/{filename}", api.DeleteMediaHandler(deleteSvc))

	analyticsSvc := analytics.NewAnalyticsRecorder(mediaRepo, analyticsRepo, ca)
	r.Post("/update_analytics", api.UpdateAnalyticsHandler(analyticsSvc))

	r.Post("/cleanup", api.CleanupHandler(dispatcher))

	r.Post("/vpn/upload", api.UploadVPNConfigHandler(vpnMgr))
	r.With(cMiddleware.WithID()).
		Post("/vpn/activate/{id}", api.ActivateVPNHandler(vpnMgr))
	r.Post("/vpn/deactivate", api.DeactivateVPNHandler(vpnMgr))
	r.Get("/vpn/status", api.VPNStatusHandler(vpnMgr))
	r.With(cMiddleware.WithID()).
		Delete("/vpn/{id}", api.DeleteVPNConfigHandler(vpnMgr))

	listenRouter(ctx, r, cfg, database)
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

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, dir string) port.Storage {
	strg, err := storage.NewDiskStorage(dir)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize storage at %q: %v", dir, err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
